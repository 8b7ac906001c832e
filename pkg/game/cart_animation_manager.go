package game

import (
	"log"
	"sync"

	"github.com/gonewx/cartfly/pkg/config"
	"github.com/google/uuid"
)

// maxIDAttempts 生成唯一 ID 的最大尝试次数
const maxIDAttempts = 8

// AnimationInstance 一个正在飞行的动画实例
//
// 在 Spawn 时创建，之后不可变；动画结束时从活动列表中整体移除，而不是原地修改。
type AnimationInstance struct {
	ID string

	// 商品元素在生成时刻的矩形
	Left   float64
	Top    float64
	Width  float64
	Height float64

	// 从商品中心指向购物车中心的向量
	DistanceX float64
	DistanceY float64

	// 生成时刻的配置快照，切换配置不影响已在飞行的实例
	Config config.AnimationConfig
}

// CartAnimationManager 飞入购物车动画的生命周期管理器
//
// 职责：
//   - 每次 Spawn 根据两个元素的当前矩形生成一个动画实例
//   - 为每个实例安排一个 speed+delay 秒后执行的移除任务
//   - Teardown 时取消所有尚未执行的移除任务
//
// 活动列表只通过"追加"和"按 ID 过滤"两种整体替换的方式修改，
// Active() 返回的切片永远不会被原地修改。
type CartAnimationManager struct {
	mu sync.Mutex

	cfg       config.AnimationConfig
	scheduler Scheduler
	origin    RectProvider // 商品元素
	target    RectProvider // 购物车元素

	active    []AnimationInstance
	pending   map[string]TaskHandle // 动画 ID -> 待执行的移除任务
	listeners []func([]AnimationInstance)
	closed    bool

	newID func() string
}

// NewCartAnimationManager 创建动画生命周期管理器
//
// 参数：
//   - cfg: 初始动画配置
//   - scheduler: 延迟任务调度器（游戏循环中使用 TickScheduler）
//   - origin: 商品元素的几何信息提供者
//   - target: 购物车元素的几何信息提供者
func NewCartAnimationManager(cfg config.AnimationConfig, scheduler Scheduler, origin, target RectProvider) *CartAnimationManager {
	return &CartAnimationManager{
		cfg:       cfg,
		scheduler: scheduler,
		origin:    origin,
		target:    target,
		pending:   make(map[string]TaskHandle),
		newID:     uuid.NewString,
	}
}

// SetIDGenerator 替换 ID 生成函数
func (m *CartAnimationManager) SetIDGenerator(fn func() string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newID = fn
}

// SetConfig 整体切换动画配置，只影响之后生成的实例
func (m *CartAnimationManager) SetConfig(cfg config.AnimationConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

// Config 返回当前动画配置
func (m *CartAnimationManager) Config() config.AnimationConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// OnChange 注册活动列表变化的监听函数
// 监听函数在锁外调用，参数为变化后的列表快照
func (m *CartAnimationManager) OnChange(fn func([]AnimationInstance)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Spawn 生成一个飞入购物车的动画实例
//
// 任一元素的矩形不可用（尚未挂载）或管理器已销毁时静默返回，不视为错误。
//
// 返回：
//   - string: 新实例的 ID
//   - bool: 是否生成了实例
func (m *CartAnimationManager) Spawn() (string, bool) {
	// 每次都重新查询，反映元素当前的拖拽位置
	originRect, ok := m.origin.Rect()
	if !ok {
		return "", false
	}
	targetRect, ok := m.target.Rect()
	if !ok {
		return "", false
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", false
	}

	id := m.uniqueIDLocked()
	if id == "" {
		m.mu.Unlock()
		log.Printf("[CartAnimationManager] Warning: failed to generate a unique animation id")
		return "", false
	}

	originCenter := originRect.Center()
	targetCenter := targetRect.Center()
	cfg := m.cfg

	instance := AnimationInstance{
		ID:        id,
		Left:      originRect.Left,
		Top:       originRect.Top,
		Width:     originRect.Width,
		Height:    originRect.Height,
		DistanceX: targetCenter.X - originCenter.X,
		DistanceY: targetCenter.Y - originCenter.Y,
		Config:    cfg,
	}

	next := make([]AnimationInstance, len(m.active), len(m.active)+1)
	copy(next, m.active)
	m.active = append(next, instance)

	// 回调需要持有锁才能修改状态，因此即使任务立即触发也会看到已登记的句柄
	m.pending[id] = m.scheduler.AfterFunc(cfg.Duration(), func() {
		m.complete(id)
	})

	snapshot, listeners := m.active, m.listeners
	m.mu.Unlock()

	notify(listeners, snapshot)
	return id, true
}

// uniqueIDLocked 生成一个当前未被跟踪的 ID，调用方必须持有锁
func (m *CartAnimationManager) uniqueIDLocked() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := m.newID()
		if id == "" {
			continue
		}
		if _, exists := m.pending[id]; !exists {
			return id
		}
	}
	return ""
}

// complete 动画结束：按 ID 从活动列表移除实例
// ID 已不在跟踪中（例如 Teardown 之后）时不做任何事
func (m *CartAnimationManager) complete(id string) {
	m.mu.Lock()
	if _, tracked := m.pending[id]; !tracked {
		m.mu.Unlock()
		return
	}
	delete(m.pending, id)

	next := make([]AnimationInstance, 0, len(m.active))
	for _, inst := range m.active {
		if inst.ID != id {
			next = append(next, inst)
		}
	}
	m.active = next

	snapshot, listeners := m.active, m.listeners
	m.mu.Unlock()

	notify(listeners, snapshot)
}

// Teardown 取消所有尚未执行的移除任务并清空跟踪
//
// 所属的 UI 作用域销毁时调用。之后活动列表不再变化，Spawn 变为空操作。可重复调用。
func (m *CartAnimationManager) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true

	for id, handle := range m.pending {
		handle.Stop()
		delete(m.pending, id)
	}
	m.listeners = nil

	log.Printf("[CartAnimationManager] Teardown: %d animation(s) abandoned", len(m.active))
}

// Active 返回当前活动实例列表（生成顺序，后生成的绘制在上层）
// 返回的切片不会被修改，调用方不应修改它
func (m *CartAnimationManager) Active() []AnimationInstance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Pending 返回尚未执行的移除任务数量
func (m *CartAnimationManager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// IsClosed 返回管理器是否已销毁
func (m *CartAnimationManager) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func notify(listeners []func([]AnimationInstance), snapshot []AnimationInstance) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}
