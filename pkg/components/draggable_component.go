package components

import (
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/solarlune/resolv"
)

// TagDraggable resolv 空间中可拖拽物体的标签
const TagDraggable = "draggable"

// DraggableComponent 可拖拽元素（商品、购物车）
//
// 位置存放在 resolv.Object 中，Rect() 每次读取最新位置，
// 因此可以直接作为 game.RectProvider 交给动画生命周期管理器。
type DraggableComponent struct {
	Name   string
	Object *resolv.Object
	Home   game.Position // 初始左上角
}

// Rect 实现 game.RectProvider
// 物体尚未加入空间时视为未挂载
func (d *DraggableComponent) Rect() (game.Rect, bool) {
	if d == nil || d.Object == nil || d.Object.Space == nil {
		return game.Rect{}, false
	}
	return game.Rect{
		Left:   d.Object.X,
		Top:    d.Object.Y,
		Width:  d.Object.W,
		Height: d.Object.H,
	}, true
}

// Offset 返回相对初始位置的拖拽偏移
func (d *DraggableComponent) Offset() game.Position {
	return game.Position{
		X: d.Object.X - d.Home.X,
		Y: d.Object.Y - d.Home.Y,
	}
}
