package game

import (
	"math"
	"sort"
	"sync"
	"time"
)

// TaskHandle 可取消的延迟任务句柄
type TaskHandle interface {
	// Stop 取消尚未执行的任务
	// 返回 true 表示成功取消；任务已执行或已取消时返回 false（不报错）
	Stop() bool
}

// Scheduler 延迟任务调度器
// 动画生命周期管理器通过它安排"动画结束后移除实例"的回调
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) TaskHandle
}

// RealTimeScheduler 基于 time.AfterFunc 的实时调度器
// 回调在独立的 goroutine 中执行
type RealTimeScheduler struct{}

// AfterFunc 实现 Scheduler
func (RealTimeScheduler) AfterFunc(d time.Duration, f func()) TaskHandle {
	return time.AfterFunc(d, f)
}

// TickScheduler 协作式调度器
//
// 回调不会自行触发，只在调用方执行 Advance 时、在调用方的 goroutine 上按到期顺序执行。
// 游戏主循环每个 tick 调用一次 Advance，测试中可以精确控制时间推进。
type TickScheduler struct {
	mu      sync.Mutex
	elapsed float64       // 累计秒数
	now     time.Duration // elapsed 四舍五入到纳秒
	seq     uint64
	tasks   []*tickTask // 按 (due, seq) 排序
}

type tickTask struct {
	scheduler *TickScheduler
	due       time.Duration
	seq       uint64
	fn        func()
	stopped   bool
	fired     bool
}

// NewTickScheduler 创建协作式调度器，时钟从 0 开始
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// AfterFunc 实现 Scheduler
func (s *TickScheduler) AfterFunc(d time.Duration, f func()) TaskHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	task := &tickTask{
		scheduler: s,
		due:       s.now + d,
		seq:       s.seq,
		fn:        f,
	}

	// 插入到有序位置，同一时刻到期的任务保持创建顺序
	i := sort.Search(len(s.tasks), func(i int) bool {
		t := s.tasks[i]
		return t.due > task.due || (t.due == task.due && t.seq > task.seq)
	})
	s.tasks = append(s.tasks, nil)
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = task

	return task
}

// Advance 推进时钟并执行所有到期的回调
//
// 返回：
//   - int: 本次执行的回调数量
func (s *TickScheduler) Advance(dt time.Duration) int {
	return s.advance(dt.Seconds())
}

// AdvanceSeconds 以秒为单位推进时钟（游戏循环的 deltaTime）
func (s *TickScheduler) AdvanceSeconds(deltaTime float64) int {
	return s.advance(deltaTime)
}

// advance 时钟以浮点秒累计，换算为纳秒时四舍五入（不截断）
func (s *TickScheduler) advance(seconds float64) int {
	s.mu.Lock()
	if seconds > 0 {
		s.elapsed += seconds
		s.now = time.Duration(math.Round(s.elapsed * float64(time.Second)))
	}
	n := 0
	for n < len(s.tasks) && s.tasks[n].due <= s.now {
		n++
	}
	due := make([]*tickTask, n)
	copy(due, s.tasks[:n])
	s.tasks = s.tasks[n:]
	s.mu.Unlock()

	ran := 0
	for _, task := range due {
		// 同一批次中前面的回调可能取消了后面的任务
		s.mu.Lock()
		if task.stopped {
			s.mu.Unlock()
			continue
		}
		task.fired = true
		s.mu.Unlock()

		task.fn()
		ran++
	}
	return ran
}

// Now 返回调度器当前时间
func (s *TickScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Len 返回尚未执行的任务数量
func (s *TickScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Stop 实现 TaskHandle
func (t *tickTask) Stop() bool {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	for i, other := range s.tasks {
		if other == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return true
}
