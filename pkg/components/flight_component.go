package components

import (
	"github.com/gonewx/cartfly/pkg/animation"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/yohamta/donburi"
)

// FlightComponent 飞行中的商品元素
// 每个动画实例对应一个实体，实例从活动列表移除时实体随之销毁
type FlightComponent struct {
	InstanceID string                    // 对应的 AnimationInstance.ID
	Order      uint64                    // 生成顺序，越大越晚生成（绘制在上层）
	Origin     game.Rect                 // 生成时商品元素的矩形
	Timeline   *animation.FlightTimeline // 动画时间线
	Frame      animation.FlightFrame     // 最近一次计算的视觉状态
}

// Flight donburi 组件类型
var Flight = donburi.NewComponentType[FlightComponent]()
