package systems

import (
	"log"
	"sort"

	"github.com/gonewx/cartfly/pkg/animation"
	"github.com/gonewx/cartfly/pkg/components"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// FlightSystem 把动画生命周期管理器的活动列表映射为 ECS 实体
//
// 每帧调用 Sync(manager.Active())：
//   - 新出现的实例创建实体并构建时间线
//   - 已从列表移除的实例销毁实体（视觉元素随之消失）
//
// 然后调用 Update(deltaTime) 推进所有时间线。
type FlightSystem struct {
	world    donburi.World
	query    *donburi.Query
	entities map[string]donburi.Entity // 实例 ID -> 实体
	order    uint64
}

// NewFlightSystem 创建飞行系统
func NewFlightSystem(world donburi.World) *FlightSystem {
	return &FlightSystem{
		world:    world,
		query:    donburi.NewQuery(filter.Contains(components.Flight)),
		entities: make(map[string]donburi.Entity),
	}
}

// Sync 让实体集合与活动列表保持一致
//
// 返回：
//   - added: 新建的实体数量
//   - removed: 销毁的实体数量
func (s *FlightSystem) Sync(active []game.AnimationInstance) (added, removed int) {
	seen := make(map[string]struct{}, len(active))

	for _, inst := range active {
		seen[inst.ID] = struct{}{}
		if _, exists := s.entities[inst.ID]; exists {
			continue
		}

		s.order++
		timeline := animation.NewFlightTimeline(inst)
		entity := s.world.Create(components.Flight)
		entry := s.world.Entry(entity)
		components.Flight.SetValue(entry, components.FlightComponent{
			InstanceID: inst.ID,
			Order:      s.order,
			Origin: game.Rect{
				Left:   inst.Left,
				Top:    inst.Top,
				Width:  inst.Width,
				Height: inst.Height,
			},
			Timeline: timeline,
			Frame:    timeline.Frame(),
		})
		s.entities[inst.ID] = entity
		added++
	}

	for id, entity := range s.entities {
		if _, ok := seen[id]; ok {
			continue
		}
		if s.world.Valid(entity) {
			s.world.Remove(entity)
		}
		delete(s.entities, id)
		removed++
	}

	if added > 0 || removed > 0 {
		log.Printf("[FlightSystem] Sync: +%d -%d, %d in flight", added, removed, len(s.entities))
	}
	return added, removed
}

// Update 推进所有飞行元素的时间线
func (s *FlightSystem) Update(deltaTime float64) {
	s.query.Each(s.world, func(entry *donburi.Entry) {
		flight := components.Flight.Get(entry)
		flight.Frame = flight.Timeline.Update(deltaTime)
	})
}

// Flights 返回所有飞行元素（按生成顺序，先生成的在前）
func (s *FlightSystem) Flights() []*components.FlightComponent {
	flights := make([]*components.FlightComponent, 0, len(s.entities))
	s.query.Each(s.world, func(entry *donburi.Entry) {
		flights = append(flights, components.Flight.Get(entry))
	})
	sort.Slice(flights, func(i, j int) bool {
		return flights[i].Order < flights[j].Order
	})
	return flights
}

// Count 返回飞行元素数量
func (s *FlightSystem) Count() int {
	return s.query.Count(s.world)
}
