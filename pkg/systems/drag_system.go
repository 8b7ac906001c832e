package systems

import (
	"math"

	"github.com/gonewx/cartfly/pkg/components"
	"github.com/gonewx/cartfly/pkg/game"
	"github.com/solarlune/resolv"
)

// dragCellSize resolv 空间的格子大小（像素）
const dragCellSize = 16

// tagPointer 点击探针的标签
const tagPointer = "pointer"

// DragSystem 管理可拖拽元素的位置
//
// 元素存放在 resolv.Space 中；命中测试使用一个 1x1 的探针物体，
// 先用空间格子做粗筛，再用精确的矩形判断，后加入（或最近拖动）的元素优先。
// 按下到松开的位移小于 clickSlop 时视为点击。
type DragSystem struct {
	space     *resolv.Space
	cursor    *resolv.Object
	items     map[string]*components.DraggableComponent
	order     []string // 叠放顺序，末尾在最上层
	clickSlop float64

	grabbed   *components.DraggableComponent
	grabX     float64
	grabY     float64
	startLeft float64
	startTop  float64
	maxTravel float64
	boundsW   float64
	boundsH   float64
}

// NewDragSystem 创建拖拽系统
//
// 参数：
//   - width, height: 可拖拽区域大小（窗口逻辑尺寸），元素不会被拖出该区域
//   - clickSlop: 点击判定的最大位移（像素）
func NewDragSystem(width, height int, clickSlop float64) *DragSystem {
	space := resolv.NewSpace(width, height, dragCellSize, dragCellSize)
	cursor := resolv.NewObject(0, 0, 1, 1, tagPointer)
	space.Add(cursor)

	return &DragSystem{
		space:     space,
		cursor:    cursor,
		items:     make(map[string]*components.DraggableComponent),
		clickSlop: clickSlop,
		boundsW:   float64(width),
		boundsH:   float64(height),
	}
}

// Add 注册一个可拖拽元素，同名元素会被替换
func (d *DragSystem) Add(name string, rect game.Rect) *components.DraggableComponent {
	if old, ok := d.items[name]; ok {
		d.space.Remove(old.Object)
		d.removeFromOrder(name)
	}

	obj := resolv.NewObject(rect.Left, rect.Top, rect.Width, rect.Height, components.TagDraggable)
	item := &components.DraggableComponent{
		Name:   name,
		Object: obj,
		Home:   game.Position{X: rect.Left, Y: rect.Top},
	}
	obj.Data = item
	d.space.Add(obj)

	d.items[name] = item
	d.order = append(d.order, name)
	return item
}

// Get 按名称获取可拖拽元素，不存在时返回 nil
func (d *DragSystem) Get(name string) *components.DraggableComponent {
	return d.items[name]
}

// Provider 返回元素的几何信息提供者
// 元素稍后才注册或已被移除时，查询结果为"未挂载"
func (d *DragSystem) Provider(name string) game.RectProvider {
	return game.RectFunc(func() (game.Rect, bool) {
		return d.items[name].Rect()
	})
}

// Remove 移除元素
func (d *DragSystem) Remove(name string) {
	item, ok := d.items[name]
	if !ok {
		return
	}
	if d.grabbed == item {
		d.grabbed = nil
	}
	d.space.Remove(item.Object)
	delete(d.items, name)
	d.removeFromOrder(name)
}

// HitTest 返回点 (x, y) 处最上层的元素名称
func (d *DragSystem) HitTest(x, y float64) (string, bool) {
	d.cursor.X, d.cursor.Y = x, y
	d.cursor.Update()

	check := d.cursor.Check(0, 0, components.TagDraggable)
	if check == nil {
		return "", false
	}

	best := -1
	for _, obj := range check.ObjectsByTags(components.TagDraggable) {
		item, ok := obj.Data.(*components.DraggableComponent)
		if !ok {
			continue
		}
		r, _ := item.Rect()
		if !r.Contains(x, y) {
			continue
		}
		if idx := d.indexOf(item.Name); idx > best {
			best = idx
		}
	}
	if best < 0 {
		return "", false
	}
	return d.order[best], true
}

// Grab 在 (x, y) 处按下，抓取最上层的元素
func (d *DragSystem) Grab(x, y float64) (string, bool) {
	name, ok := d.HitTest(x, y)
	if !ok {
		return "", false
	}

	item := d.items[name]
	d.grabbed = item
	d.grabX, d.grabY = x, y
	d.startLeft, d.startTop = item.Object.X, item.Object.Y
	d.maxTravel = 0

	// 被抓取的元素移到最上层
	d.removeFromOrder(name)
	d.order = append(d.order, name)
	return name, true
}

// DragTo 拖动当前抓取的元素，指针移动到 (x, y)
func (d *DragSystem) DragTo(x, y float64) {
	if d.grabbed == nil {
		return
	}

	dx, dy := x-d.grabX, y-d.grabY
	d.maxTravel = math.Max(d.maxTravel, math.Hypot(dx, dy))

	obj := d.grabbed.Object
	obj.X = clamp(d.startLeft+dx, 0, d.boundsW-obj.W)
	obj.Y = clamp(d.startTop+dy, 0, d.boundsH-obj.H)
	obj.Update()
}

// Release 松开指针
//
// 返回：
//   - name: 被松开的元素名称（没有抓取任何元素时为空）
//   - clicked: 位移未超过 clickSlop，视为点击
func (d *DragSystem) Release() (name string, clicked bool) {
	if d.grabbed == nil {
		return "", false
	}
	name = d.grabbed.Name
	clicked = d.maxTravel <= d.clickSlop
	d.grabbed = nil
	return name, clicked
}

// Dragging 返回当前抓取的元素名称
func (d *DragSystem) Dragging() (string, bool) {
	if d.grabbed == nil {
		return "", false
	}
	return d.grabbed.Name, true
}

// Order 返回叠放顺序（末尾在最上层）
func (d *DragSystem) Order() []string {
	order := make([]string, len(d.order))
	copy(order, d.order)
	return order
}

func (d *DragSystem) indexOf(name string) int {
	for i, n := range d.order {
		if n == name {
			return i
		}
	}
	return -1
}

func (d *DragSystem) removeFromOrder(name string) {
	if i := d.indexOf(name); i >= 0 {
		d.order = append(d.order[:i], d.order[i+1:]...)
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
