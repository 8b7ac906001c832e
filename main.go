// 飞入购物车动画演示
//
// 用法：
//
//	go run . --preset=spiral --verbose
//
// 操作：点击商品飞入购物车，拖拽移动商品或购物车，数字键 1~9 切换动画配置，Esc 退出。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/cartfly/pkg/app"
	"github.com/gonewx/cartfly/pkg/config"
	"github.com/gonewx/cartfly/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", config.DefaultCatalogPath, "动画配置文件路径（嵌入资源中的路径）")
	preset     = flag.String("preset", "", "初始动画配置名称（为空则使用配置文件中的默认配置）")
	verbose    = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		Preset:      *preset,
		CatalogPath: *configPath,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.DemoWindowWidth, config.DemoWindowHeight)
	ebiten.SetWindowTitle("Fly to Cart")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// 关闭窗口时先释放场景，取消所有待执行的移除任务
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&windowGuard{App: gameApp}); err != nil {
		log.Fatal(err)
	}
	gameApp.Shutdown()
}

// windowGuard 在窗口关闭请求时结束游戏循环
type windowGuard struct {
	*app.App
}

func (w *windowGuard) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.Shutdown()
		return ebiten.Termination
	}
	return w.App.Update()
}
