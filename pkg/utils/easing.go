package utils

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// Easing Functions (缓动函数)
//
// 飞入购物车动画的节奏由 CSS 风格的 cubic-bezier 曲线控制：
// 曲线端点固定为 (0,0) 和 (1,1)，配置只给出两个控制点 (x1,y1) 和 (x2,y2)。
// 输入进度 t ∈ [0, 1]，输出缓动后的进度，y 控制点超出 [0,1] 时输出可以越界（回弹效果）。
//
// 参考：https://www.w3.org/TR/css-easing-1/#cubic-bezier-easing-functions

// 求解精度
const (
	bezierNewtonIterations = 8
	bezierEpsilon          = 1e-7
)

// BezierCurve 三次贝塞尔缓动曲线
// 多项式系数在创建时预计算，Ease 调用不分配内存
type BezierCurve struct {
	ax, bx, cx float64
	ay, by, cy float64
	linear     bool
}

// NewBezierCurve 创建 cubic-bezier(x1, y1, x2, y2) 缓动曲线
// 调用方负责保证 x1、x2 位于 [0, 1]（配置加载时已校验）
func NewBezierCurve(x1, y1, x2, y2 float64) *BezierCurve {
	c := &BezierCurve{
		linear: x1 == y1 && x2 == y2,
	}

	// B(t) = ((a*t + b)*t + c)*t
	c.cx = 3 * x1
	c.bx = 3*(x2-x1) - c.cx
	c.ax = 1 - c.cx - c.bx

	c.cy = 3 * y1
	c.by = 3*(y2-y1) - c.cy
	c.ay = 1 - c.cy - c.by

	return c
}

func (c *BezierCurve) sampleX(s float64) float64 {
	return ((c.ax*s+c.bx)*s + c.cx) * s
}

func (c *BezierCurve) sampleY(s float64) float64 {
	return ((c.ay*s+c.by)*s + c.cy) * s
}

func (c *BezierCurve) sampleDerivativeX(s float64) float64 {
	return (3*c.ax*s+2*c.bx)*s + c.cx
}

// solveX 求解 x(s) = x 的曲线参数 s
// 先用牛顿迭代，导数过小或不收敛时退回二分法
func (c *BezierCurve) solveX(x float64) float64 {
	s := x
	for i := 0; i < bezierNewtonIterations; i++ {
		x2 := c.sampleX(s) - x
		if math.Abs(x2) < bezierEpsilon {
			return s
		}
		d := c.sampleDerivativeX(s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x2 / d
	}

	lo, hi := 0.0, 1.0
	s = x
	for lo < hi {
		x2 := c.sampleX(s)
		if math.Abs(x2-x) < bezierEpsilon {
			return s
		}
		if x > x2 {
			lo = s
		} else {
			hi = s
		}
		s = (hi-lo)*0.5 + lo
		if hi-lo < bezierEpsilon {
			break
		}
	}
	return s
}

// Ease 返回进度 t 对应的缓动值
// t <= 0 返回 0，t >= 1 返回 1（端点精确）
func (c *BezierCurve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if c.linear {
		return t
	}
	return c.sampleY(c.solveX(t))
}

// 常用 CSS 关键字曲线
var (
	EaseCSS       = NewBezierCurve(0.25, 0.1, 0.25, 1)
	EaseInCSS     = NewBezierCurve(0.42, 0, 1, 1)
	EaseOutCSS    = NewBezierCurve(0, 0, 0.58, 1)
	EaseInOutCSS  = NewBezierCurve(0.42, 0, 0.58, 1)
	EaseLinearCSS = NewBezierCurve(0, 0, 1, 1)
)

// BezierTweenFunc 把贝塞尔曲线适配为 gween 的缓动函数
//
// gween 的签名为 f(t, b, c, d)：t 为已用时间，b 为起始值，c 为变化量，d 为总时长
func BezierTweenFunc(curve *BezierCurve) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve.Ease(float64(t/d)))
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SampleKeyframes 在关键帧序列上做分段线性插值
//
// 参数：
//   - times: 严格递增的归一化时间点
//   - values: 与 times 等长的数值
//   - t: 查询进度（缓动后的进度可能越界，越界时沿首/尾线段外推）
func SampleKeyframes(times, values []float64, t float64) float64 {
	n := len(times)
	if n == 0 || len(values) != n {
		return 0
	}
	if n == 1 {
		return values[0]
	}

	// 找到 t 所在的线段 [i-1, i]
	i := sort.SearchFloat64s(times, t)
	if i <= 0 {
		i = 1
	}
	if i >= n {
		i = n - 1
	}

	t0, t1 := times[i-1], times[i]
	if t == t1 || t1 == t0 {
		return values[i]
	}
	return Lerp(values[i-1], values[i], (t-t0)/(t1-t0))
}
