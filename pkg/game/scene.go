package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a demo scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - SceneManager 切换到其他场景
//   - 窗口关闭或按 Esc 退出
type Disposable interface {
	// Dispose 释放场景持有的资源（例如取消尚未执行的定时任务）
	// 可能被调用多次，实现必须是幂等的
	Dispose()
}
