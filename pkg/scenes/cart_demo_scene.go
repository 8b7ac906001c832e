package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strconv"

	"github.com/gonewx/cartfly/pkg/components"
	"github.com/gonewx/cartfly/pkg/config"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/gonewx/cartfly/pkg/systems"
	"github.com/gonewx/cartfly/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// 可拖拽元素名称
const (
	ProductName = "product"
	CartName    = "cart"
)

// blurGhosts 模糊效果使用的残影数量
const blurGhosts = 4

var (
	backgroundColor = color.RGBA{R: 245, G: 245, B: 240, A: 255}
	productColor    = color.RGBA{R: 232, G: 96, B: 76, A: 255}
	productAccent   = color.RGBA{R: 255, G: 214, B: 102, A: 255}
	cartColor       = color.RGBA{R: 52, G: 120, B: 246, A: 255}
	cartWheelColor  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	outlineColor    = color.RGBA{R: 60, G: 60, B: 60, A: 255}

	// glowTint 光晕叠加色（RGB），alpha 每帧填入
	glowTint = [4]float32{0.55, 0.45, 1, 0}
)

// numberKeys 切换动画配置的按键，依次对应目录中的第 1~9 个配置
var numberKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// CartDemoScene 飞入购物车演示场景
//
// 场景包含一个商品和一个购物车，二者都可以拖拽（鼠标或触摸）。
// 点击商品（按下到松开位移不超过 ClickSlop）会生成一个飞向购物车的动画实例。
// 数字键 1~9 切换后续生成所用的动画配置，Esc 退出。
type CartDemoScene struct {
	catalog    *config.AnimationCatalog
	configName string

	scheduler *game.TickScheduler
	manager   *game.CartAnimationManager

	world   donburi.World
	flights *systems.FlightSystem
	drag    *systems.DragSystem
	pointer *utils.PointerTracker

	productImage *ebiten.Image
	cartImage    *ebiten.Image

	quitRequested bool
	disposed      bool
}

// NewCartDemoScene 创建演示场景
//
// 参数：
//   - catalog: 动画配置目录
//   - presetName: 初始配置名称，为空时使用目录的默认配置
func NewCartDemoScene(catalog *config.AnimationCatalog, presetName string) (*CartDemoScene, error) {
	if presetName == "" {
		presetName = catalog.DefaultName()
	}
	cfg, err := catalog.Get(presetName)
	if err != nil {
		return nil, fmt.Errorf("选择动画配置失败: %w", err)
	}

	world := donburi.NewWorld()
	drag := systems.NewDragSystem(config.DemoWindowWidth, config.DemoWindowHeight, config.ClickSlop)
	drag.Add(ProductName, game.Rect{
		Left:   config.ProductStartX,
		Top:    config.ProductStartY,
		Width:  config.ProductSize,
		Height: config.ProductSize,
	})
	drag.Add(CartName, game.Rect{
		Left:   config.CartStartX,
		Top:    config.CartStartY,
		Width:  config.CartSize,
		Height: config.CartSize,
	})

	scheduler := game.NewTickScheduler()
	manager := game.NewCartAnimationManager(cfg, scheduler, drag.Provider(ProductName), drag.Provider(CartName))

	scene := &CartDemoScene{
		catalog:    catalog,
		configName: presetName,
		scheduler:  scheduler,
		manager:    manager,
		world:      world,
		flights:    systems.NewFlightSystem(world),
		drag:       drag,
		pointer:    utils.NewPointerTracker(),
	}

	log.Printf("[CartDemoScene] Created with config %q (%d presets available)", presetName, len(catalog.Names()))
	return scene, nil
}

// Update 处理输入并推进定时器和动画
func (s *CartDemoScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	s.handleKeyboard()
	s.handlePointer()
	s.step(deltaTime)
}

// step 推进定时器，并把活动列表同步到飞行实体
func (s *CartDemoScene) step(deltaTime float64) {
	s.scheduler.AdvanceSeconds(deltaTime)
	s.flights.Sync(s.manager.Active())
	s.flights.Update(deltaTime)
}

func (s *CartDemoScene) handleKeyboard() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.quitRequested = true
		return
	}
	for i, key := range numberKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectConfigAt(i)
			return
		}
	}
}

func (s *CartDemoScene) handlePointer() {
	event := s.pointer.Poll()
	x, y := float64(event.X), float64(event.Y)

	switch event.Phase {
	case utils.PointerDown:
		s.PointerDown(x, y)
	case utils.PointerMove:
		s.PointerMove(x, y)
	case utils.PointerUp:
		s.PointerMove(x, y)
		s.PointerUp()
	}
}

// PointerDown 指针按下
func (s *CartDemoScene) PointerDown(x, y float64) {
	s.drag.Grab(x, y)
}

// PointerMove 指针移动（按下状态）
func (s *CartDemoScene) PointerMove(x, y float64) {
	s.drag.DragTo(x, y)
}

// PointerUp 指针松开，点击商品时生成飞行动画
func (s *CartDemoScene) PointerUp() {
	name, clicked := s.drag.Release()
	if name != ProductName || !clicked {
		return
	}
	if id, ok := s.manager.Spawn(); ok {
		log.Printf("[CartDemoScene] Spawned %s with config %q", id, s.configName)
	}
}

// SelectConfigAt 切换到目录中第 index 个配置（从 0 开始）
// 只影响之后生成的实例，飞行中的实例保持生成时的配置
func (s *CartDemoScene) SelectConfigAt(index int) bool {
	name, ok := s.catalog.NameAt(index)
	if !ok {
		return false
	}
	return s.SelectConfig(name)
}

// SelectConfig 按名称切换配置
func (s *CartDemoScene) SelectConfig(name string) bool {
	cfg, err := s.catalog.Get(name)
	if err != nil {
		log.Printf("[CartDemoScene] Warning: %v", err)
		return false
	}
	s.manager.SetConfig(cfg)
	s.configName = name
	log.Printf("[CartDemoScene] Switched to config %q", name)
	return true
}

// ConfigName 返回当前配置名称
func (s *CartDemoScene) ConfigName() string {
	return s.configName
}

// Manager 返回动画生命周期管理器
func (s *CartDemoScene) Manager() *game.CartAnimationManager {
	return s.manager
}

// Flights 返回飞行系统
func (s *CartDemoScene) Flights() *systems.FlightSystem {
	return s.flights
}

// QuitRequested 是否按下了 Esc
func (s *CartDemoScene) QuitRequested() bool {
	return s.quitRequested
}

// Dispose 实现 game.Disposable，取消所有尚未执行的移除任务
func (s *CartDemoScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.manager.Teardown()
	log.Printf("[CartDemoScene] Disposed")
}

// Draw 绘制场景
func (s *CartDemoScene) Draw(screen *ebiten.Image) {
	s.ensureImages()
	screen.Fill(backgroundColor)

	// 按叠放顺序绘制可拖拽元素
	for _, name := range s.drag.Order() {
		item := s.drag.Get(name)
		rect, ok := item.Rect()
		if !ok {
			continue
		}
		img := s.cartImage
		if name == ProductName {
			img = s.productImage
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(rect.Left, rect.Top)
		screen.DrawImage(img, op)
	}

	// 飞行元素画在最上层，后生成的在上
	for _, flight := range s.flights.Flights() {
		s.drawFlight(screen, flight)
	}

	s.drawHUD(screen)
}

// drawFlight 以元素中心为变换原点绘制飞行中的商品副本
func (s *CartDemoScene) drawFlight(screen *ebiten.Image, flight *components.FlightComponent) {
	frame := flight.Frame
	if frame.Opacity <= 0 {
		return
	}

	origin := flight.Origin
	bounds := s.productImage.Bounds()
	sx := origin.Width / float64(bounds.Dx())
	sy := origin.Height / float64(bounds.Dy())

	draw := func(dx, dy float64, tint [4]float32) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Scale(sx*frame.Scale, sy*frame.Scale)
		op.GeoM.Rotate(frame.Rotation * math.Pi / 180)
		op.GeoM.Translate(origin.Left+origin.Width/2+frame.X+dx, origin.Top+origin.Height/2+frame.Y+dy)
		// 颜色为预乘 alpha
		op.ColorScale.Scale(tint[0]*tint[3], tint[1]*tint[3], tint[2]*tint[3], tint[3])
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.productImage, op)
	}
	plain := func(alpha float64) [4]float32 {
		return [4]float32{1, 1, 1, float32(alpha)}
	}

	// 投影：黑色副本向下偏移
	if frame.ShadowAlpha > 0 {
		draw(0, frame.ShadowOffset, [4]float32{0, 0, 0, float32(frame.ShadowAlpha * frame.Opacity)})
	}

	if frame.Blur <= 0 {
		draw(0, 0, plain(frame.Opacity))
	} else {
		// 模糊：主体加上一圈半透明残影
		alpha := frame.Opacity / (blurGhosts + 1)
		for i := 0; i < blurGhosts; i++ {
			angle := 2 * math.Pi * float64(i) / blurGhosts
			draw(math.Cos(angle)*frame.Blur, math.Sin(angle)*frame.Blur, plain(alpha))
		}
		draw(0, 0, plain(frame.Opacity-alpha*2))
	}

	// 光晕：蓝紫色叠加层
	if frame.Glow > 0 {
		glow := glowTint
		glow[3] = float32(frame.Glow * frame.Opacity)
		draw(0, 0, glow)
	}
}

// configSummary 当前配置的参数摘要，旋转或模糊为 0 时省略对应项
// 调试字体只含 ASCII，角度单位写作 deg
func configSummary(cfg config.AnimationConfig) string {
	summary := fmt.Sprintf("%s | Speed: %ss", cfg.PathType, strconv.FormatFloat(cfg.Speed, 'f', -1, 64))
	if cfg.Rotation != 0 {
		summary += fmt.Sprintf(" | Rotation: %sdeg", strconv.FormatFloat(cfg.Rotation, 'f', -1, 64))
	}
	if cfg.Blur != 0 {
		summary += fmt.Sprintf(" | Blur: %spx", strconv.FormatFloat(cfg.Blur, 'f', -1, 64))
	}
	return summary
}

func (s *CartDemoScene) drawHUD(screen *ebiten.Image) {
	display := s.catalog.DisplayName(s.configName)
	presets := ""
	for i, name := range s.catalog.Names() {
		if i >= len(numberKeys) {
			break
		}
		mark := " "
		if name == s.configName {
			mark = "*"
		}
		presets += fmt.Sprintf("%s%d:%s ", mark, i+1, name)
	}

	lines := []string{
		presets,
		fmt.Sprintf("Config: %s (%s)", s.configName, display),
		configSummary(s.manager.Config()),
		fmt.Sprintf("In flight: %d  Pending: %d", s.flights.Count(), s.manager.Pending()),
		"Click product: fly to cart | Drag: move | 1-9: config | Esc: quit",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, config.DemoWindowHeight-92+i*16)
	}
}

// ensureImages 首次绘制时生成商品和购物车图片
func (s *CartDemoScene) ensureImages() {
	if s.productImage == nil {
		size := float32(config.ProductSize)
		img := ebiten.NewImage(int(config.ProductSize), int(config.ProductSize))
		vector.DrawFilledRect(img, 0, 0, size, size, productColor, true)
		vector.DrawFilledCircle(img, size/2, size/2, size/4, productAccent, true)
		vector.StrokeRect(img, 1, 1, size-2, size-2, 2, outlineColor, true)
		s.productImage = img
	}
	if s.cartImage == nil {
		size := float32(config.CartSize)
		img := ebiten.NewImage(int(config.CartSize), int(config.CartSize))
		vector.DrawFilledRect(img, size*0.1, size*0.2, size*0.8, size*0.5, cartColor, true)
		vector.StrokeLine(img, 0, size*0.1, size*0.1, size*0.2, 3, outlineColor, true)
		vector.DrawFilledCircle(img, size*0.3, size*0.82, size*0.1, cartWheelColor, true)
		vector.DrawFilledCircle(img, size*0.7, size*0.82, size*0.1, cartWheelColor, true)
		s.cartImage = img
	}
}
