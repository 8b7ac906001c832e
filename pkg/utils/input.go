package utils

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerPhase 指针事件阶段
type PointerPhase int

const (
	// PointerIdle 无事件
	PointerIdle PointerPhase = iota
	// PointerDown 刚按下
	PointerDown
	// PointerMove 按住并移动
	PointerMove
	// PointerUp 刚释放
	PointerUp
)

// PointerSample 一帧的原始指针输入
type PointerSample struct {
	Pressed bool
	X, Y    int
	// Touch 为 true 时 TouchID 有效
	Touch   bool
	TouchID ebiten.TouchID
}

// PointerEvent 指针事件
type PointerEvent struct {
	Phase PointerPhase
	X, Y  int
}

// PointerTracker 统一处理鼠标和触摸，跟踪单个指针的按下、移动、释放
//
// 触摸释放时已经读不到位置，使用最后一次记录的位置。
type PointerTracker struct {
	down    bool
	touch   bool
	touchID ebiten.TouchID
	lastX   int
	lastY   int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 读取本帧的 ebiten 输入并返回指针事件
// 每帧调用一次
func (p *PointerTracker) Poll() PointerEvent {
	return p.Feed(p.sample())
}

// sample 采集原始输入，优先跟踪已按下的触摸，其次新的触摸，最后是鼠标左键
func (p *PointerTracker) sample() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)

	if p.down && p.touch {
		if slices.Contains(touchIDs, p.touchID) {
			x, y := ebiten.TouchPosition(p.touchID)
			return PointerSample{Pressed: true, X: x, Y: y, Touch: true, TouchID: p.touchID}
		}
		return PointerSample{Touch: true, TouchID: p.touchID}
	}

	if !p.down && len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{Pressed: true, X: x, Y: y, Touch: true, TouchID: touchIDs[0]}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// Feed 根据一帧的原始输入推进状态
func (p *PointerTracker) Feed(s PointerSample) PointerEvent {
	switch {
	case !p.down && s.Pressed:
		p.down = true
		p.touch = s.Touch
		p.touchID = s.TouchID
		p.lastX, p.lastY = s.X, s.Y
		return PointerEvent{Phase: PointerDown, X: s.X, Y: s.Y}

	case p.down && s.Pressed:
		if s.X == p.lastX && s.Y == p.lastY {
			return PointerEvent{Phase: PointerIdle, X: s.X, Y: s.Y}
		}
		p.lastX, p.lastY = s.X, s.Y
		return PointerEvent{Phase: PointerMove, X: s.X, Y: s.Y}

	case p.down && !s.Pressed:
		p.down = false
		// 鼠标释放时位置仍然有效
		if !p.touch {
			p.lastX, p.lastY = s.X, s.Y
		}
		p.touch = false
		return PointerEvent{Phase: PointerUp, X: p.lastX, Y: p.lastY}
	}

	return PointerEvent{Phase: PointerIdle, X: s.X, Y: s.Y}
}

// IsDown 是否处于按下状态
func (p *PointerTracker) IsDown() bool {
	return p.down
}

// Reset 清除跟踪状态
func (p *PointerTracker) Reset() {
	*p = PointerTracker{}
}
