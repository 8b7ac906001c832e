package game

// Position 二维偏移量（拖拽偏移、显示坐标）
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect 共享坐标系中的矩形（窗口逻辑坐标）
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center 返回矩形中心点
func (r Rect) Center() Position {
	return Position{
		X: r.Left + r.Width/2,
		Y: r.Top + r.Height/2,
	}
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// RectProvider 几何信息提供者
//
// 每次调用都返回元素当前的矩形（反映最新拖拽位置，不做缓存）。
// 元素尚未挂载或尚未测量时返回 false。
type RectProvider interface {
	Rect() (Rect, bool)
}

// RectFunc 函数适配器，让普通函数实现 RectProvider
type RectFunc func() (Rect, bool)

// Rect 实现 RectProvider
func (f RectFunc) Rect() (Rect, bool) {
	return f()
}
