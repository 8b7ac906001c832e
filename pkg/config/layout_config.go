package config

// 演示窗口布局常量
// 所有坐标均为窗口逻辑坐标（左上角为原点）
const (
	// DemoWindowWidth 演示窗口逻辑宽度
	DemoWindowWidth = 960

	// DemoWindowHeight 演示窗口逻辑高度
	DemoWindowHeight = 640

	// ProductSize 商品图标边长（像素）
	ProductSize = 160.0

	// ProductStartX 商品图标初始左上角 X（窗口居中）
	ProductStartX = (DemoWindowWidth - ProductSize) / 2

	// ProductStartY 商品图标初始左上角 Y
	ProductStartY = 260.0

	// CartSize 购物车按钮边长（像素）
	CartSize = 64.0

	// CartStartX 购物车按钮初始左上角 X（右上角留 24 像素边距）
	CartStartX = DemoWindowWidth - CartSize - 24

	// CartStartY 购物车按钮初始左上角 Y
	CartStartY = 24.0

	// FlightEndSize 飞行元素缩小后的边长（像素）
	FlightEndSize = 32.0

	// ClickSlop 按下到松开的位移小于该值时视为点击而非拖拽（像素）
	ClickSlop = 4.0
)
