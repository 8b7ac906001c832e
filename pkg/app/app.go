// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被测试和其他入口复用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/cartfly/pkg/config"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/gonewx/cartfly/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Preset 初始动画配置名称，为空则使用配置文件中的默认配置
	Preset string
	// CatalogPath 动画配置文件路径（嵌入资源中的路径）
	CatalogPath string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.CartDemoScene
	verbose      bool
	terminated   bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	catalogPath := cfg.CatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath
	}

	catalog, err := config.LoadAnimationCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载动画配置: %s (%d 个预设)", catalogPath, len(catalog.Names()))

	scene, err := scenes.NewCartDemoScene(catalog, cfg.Preset)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Starting with config: %s", scene.ConfigName())

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.terminated {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	if a.scene.QuitRequested() {
		log.Printf("[App] Esc pressed, shutting down")
		a.Shutdown()
		return ebiten.Termination
	}
	return nil
}

// Shutdown 释放当前场景（取消所有待执行的移除任务）
// 可以重复调用
func (a *App) Shutdown() {
	if a.terminated {
		return
	}
	a.terminated = true
	a.sceneManager.Shutdown()
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.DemoWindowWidth, config.DemoWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Scene 返回演示场景
func (a *App) Scene() *scenes.CartDemoScene {
	return a.scene
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
