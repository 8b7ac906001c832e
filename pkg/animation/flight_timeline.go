// Package animation 把动画实例和配置转换为逐帧的视觉状态
//
// 路径形状（flightpath 关键帧）与节奏（各轴 cubic-bezier 缓动）相互独立：
// 缓动决定"当前走到路径的哪个进度"，关键帧决定"这个进度对应的位置"。
package animation

import (
	"github.com/gonewx/cartfly/internal/flightpath"
	"github.com/gonewx/cartfly/pkg/config"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/gonewx/cartfly/pkg/utils"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// 透明度关键帧（时间相对于透明度动画的时长 speed*0.8）
var (
	opacityTimes     = []float64{0, 0.3, 0.7, 1}
	opacityValues    = []float64{1, 1, 0.9, 0.8}
	opacityFadeValue = []float64{1, 1, 0.6, 0}
)

// opacityDurationRatio 透明度动画时长占 speed 的比例
const opacityDurationRatio = 0.8

// 光晕与阴影关键帧（时间相对于 speed）
var (
	glowTimes          = []float64{0, 0.2, 0.6, 1}
	glowValues         = []float64{0, 0.5, 0.3, 0}
	shadowTimes        = []float64{0, 0.5, 1}
	shadowOffsetValues = []float64{10, 5, 2}
	shadowAlphaValues  = []float64{0.2, 0.3, 0.2}
)

// FlightFrame 飞行元素在某一时刻的视觉状态
type FlightFrame struct {
	X        float64 // 相对商品左上角的水平偏移
	Y        float64 // 相对商品左上角的垂直偏移
	Opacity  float64 // 0.0 ~ 1.0
	Rotation float64 // 角度（度）
	Scale    float64 // 1.0 = 原始尺寸
	Blur     float64 // 模糊半径（像素）
	Glow     float64 // 光晕叠加层透明度

	ShadowOffset float64 // 投影向下偏移（像素）
	ShadowAlpha  float64 // 投影透明度
	Started      bool    // 是否已过延迟
	Done         bool    // 是否已到 speed+delay
}

// FlightTimeline 单个飞行元素的动画时间线
//
// 各属性的补间由 gween 驱动：
//   - X/Y 进度：0→1，分别使用 x_easing / y_easing
//   - 旋转：0→rotation*方向，ease-in-out
//   - 缩放：1→FlightEndSize/width，使用 scale_easing
//   - 透明度、模糊、光晕、投影：gween.Sequence 多段补间
type FlightTimeline struct {
	distanceX float64
	distanceY float64
	speed     float64
	delay     float64
	elapsed   float64

	xProgress *gween.Tween
	yProgress *gween.Tween
	rotation  *gween.Tween
	scale     *gween.Tween // 为 nil 时保持 1.0
	opacity   *gween.Sequence
	blur      *gween.Sequence // 为 nil 时无模糊
	glow      *gween.Sequence
	shadowOff *gween.Sequence
	shadowA   *gween.Sequence

	// 路径：keyframes 非 nil 时使用采样路径，parabola 为 true 时使用三点抛物线
	keyframes *flightpath.PathKeyframes
	parabola  bool
	parabolaX []float64
	parabolaY []float64

	frame FlightFrame
}

// NewFlightTimeline 根据实例及其配置快照创建时间线
func NewFlightTimeline(instance game.AnimationInstance) *FlightTimeline {
	cfg := instance.Config
	speed := float32(cfg.Speed)

	tl := &FlightTimeline{
		distanceX: instance.DistanceX,
		distanceY: instance.DistanceY,
		speed:     cfg.Speed,
		delay:     cfg.Delay,
		xProgress: gween.New(0, 1, speed, utils.BezierTweenFunc(cfg.XEasing.Curve())),
		yProgress: gween.New(0, 1, speed, utils.BezierTweenFunc(cfg.YEasing.Curve())),
	}

	direction := float32(flightpath.CalculateRotationDirection(instance.DistanceX))
	tl.rotation = gween.New(0, float32(cfg.Rotation)*direction, speed, utils.BezierTweenFunc(utils.EaseInOutCSS))

	if cfg.Scale && instance.Width > 0 {
		tl.scale = gween.New(1, float32(config.FlightEndSize/instance.Width), speed, utils.BezierTweenFunc(cfg.ScaleEasing.Curve()))
	}

	tl.opacity = newOpacitySequence(cfg)
	tl.glow = newKeyframeSequence(glowTimes, glowValues, cfg.Speed)
	tl.shadowOff = newKeyframeSequence(shadowTimes, shadowOffsetValues, cfg.Speed)
	tl.shadowA = newKeyframeSequence(shadowTimes, shadowAlphaValues, cfg.Speed)
	if cfg.Blur > 0 {
		half := speed / 2
		tl.blur = gween.NewSequence(
			gween.New(0, float32(cfg.Blur), half, ease.OutQuad),
			gween.New(float32(cfg.Blur), 0, half, ease.InQuad),
		)
	}

	tl.buildPath(cfg)
	tl.frame = tl.sample()
	return tl
}

func newOpacitySequence(cfg config.AnimationConfig) *gween.Sequence {
	values := opacityValues
	if cfg.Fade {
		values = opacityFadeValue
	}
	return newKeyframeSequence(opacityTimes, values, cfg.Speed*opacityDurationRatio)
}

// newKeyframeSequence 把 (时间, 值) 关键帧转换为逐段线性的 gween 序列
// times 为 0~1 的相对时间，total 为总时长（秒）
func newKeyframeSequence(times, values []float64, total float64) *gween.Sequence {
	seq := gween.NewSequence()
	for i := 1; i < len(times); i++ {
		d := float32((times[i] - times[i-1]) * total)
		seq.Add(gween.New(float32(values[i-1]), float32(values[i]), d, ease.Linear))
	}
	return seq
}

// buildPath 选择路径类型对应的位置轨道
func (tl *FlightTimeline) buildPath(cfg config.AnimationConfig) {
	switch {
	case flightpath.UsesParabola(cfg.PathType, cfg.PathHeight):
		px := flightpath.ParabolaXAnimation(tl.distanceX)
		py := flightpath.CalculateParabolaYAnimation(tl.distanceY, cfg.PathHeight)
		tl.parabola = true
		tl.parabolaX = px[:]
		tl.parabolaY = py[:]
	default:
		// straight 以及 path_height 为 0 的 parabola 返回 nil，按直线处理
		tl.keyframes = flightpath.GeneratePathKeyframes(
			cfg.PathType,
			tl.distanceX, tl.distanceY,
			cfg.PathHeight,
			flightpath.DefaultSampleCount,
			cfg.SpiralTurns,
		)
	}
}

// Update 推进时间线并返回最新的视觉状态
// deltaTime 为本帧经过的时间（秒）
func (tl *FlightTimeline) Update(deltaTime float64) FlightFrame {
	if deltaTime < 0 {
		deltaTime = 0
	}
	before := tl.elapsed - tl.delay
	tl.elapsed += deltaTime
	after := tl.elapsed - tl.delay

	// 只把越过延迟之后的那部分时间交给补间
	if after > 0 {
		if before < 0 {
			before = 0
		}
		step := float32(after - before)
		if after >= tl.speed {
			// float32 累加可能差一点到不了终点，结束时直接越过所有补间的时长
			step = float32(tl.speed) + 1
		}
		tl.xProgress.Update(step)
		tl.yProgress.Update(step)
		tl.rotation.Update(step)
		if tl.scale != nil {
			tl.scale.Update(step)
		}
		tl.opacity.Update(step)
		if tl.blur != nil {
			tl.blur.Update(step)
		}
		tl.glow.Update(step)
		tl.shadowOff.Update(step)
		tl.shadowA.Update(step)
	}

	tl.frame = tl.sample()
	return tl.frame
}

// Frame 返回最近一次计算的视觉状态
func (tl *FlightTimeline) Frame() FlightFrame {
	return tl.frame
}

// Elapsed 返回自生成以来经过的时间（秒）
func (tl *FlightTimeline) Elapsed() float64 {
	return tl.elapsed
}

// sample 根据各补间的当前值计算视觉状态
func (tl *FlightTimeline) sample() FlightFrame {
	px, _ := tl.xProgress.Update(0)
	py, _ := tl.yProgress.Update(0)

	frame := FlightFrame{
		Opacity: 1,
		Scale:   1,
		Started: tl.elapsed > tl.delay,
		Done:    tl.elapsed-tl.delay >= tl.speed,
	}
	frame.X, frame.Y = tl.position(float64(px), float64(py))

	rotation, _ := tl.rotation.Update(0)
	frame.Rotation = float64(rotation)

	if tl.scale != nil {
		scale, _ := tl.scale.Update(0)
		frame.Scale = float64(scale)
	}

	shadowOffset, _, _ := tl.shadowOff.Update(0)
	shadowAlpha, _, _ := tl.shadowA.Update(0)
	frame.ShadowOffset = float64(shadowOffset)
	frame.ShadowAlpha = float64(shadowAlpha)

	if tl.elapsed > tl.delay {
		glow, _, _ := tl.glow.Update(0)
		frame.Glow = float64(glow)
		opacity, _, _ := tl.opacity.Update(0)
		frame.Opacity = float64(opacity)
		if tl.blur != nil {
			blur, _, _ := tl.blur.Update(0)
			frame.Blur = float64(blur)
		}
	}

	return frame
}

// position 把两个轴的缓动进度映射到路径上的位置
func (tl *FlightTimeline) position(px, py float64) (float64, float64) {
	switch {
	case tl.keyframes != nil:
		return utils.SampleKeyframes(tl.keyframes.Times, tl.keyframes.X, px),
			utils.SampleKeyframes(tl.keyframes.Times, tl.keyframes.Y, py)
	case tl.parabola:
		times := flightpath.ParabolaTimes[:]
		return utils.SampleKeyframes(times, tl.parabolaX, px),
			utils.SampleKeyframes(times, tl.parabolaY, py)
	default:
		return tl.distanceX * px, tl.distanceY * py
	}
}
