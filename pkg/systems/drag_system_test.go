package systems

import (
	"testing"

	"github.com/gonewx/cartfly/pkg/game"
)

func newTestDragSystem() *DragSystem {
	d := NewDragSystem(960, 640, 4)
	d.Add("product", game.Rect{Left: 100, Top: 260, Width: 160, Height: 160})
	d.Add("cart", game.Rect{Left: 800, Top: 24, Width: 64, Height: 64})
	return d
}

func TestDragSystemHitTest(t *testing.T) {
	d := newTestDragSystem()

	tests := []struct {
		name   string
		x, y   float64
		want   string
		wantOK bool
	}{
		{"product center", 180, 340, "product", true},
		{"product top-left corner", 100, 260, "product", true},
		{"product right edge excluded", 260, 300, "", false},
		{"cart", 830, 50, "cart", true},
		{"empty area", 500, 500, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.HitTest(tt.x, tt.y)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("HitTest(%v,%v) = (%q,%v), want (%q,%v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDragSystemClick(t *testing.T) {
	d := newTestDragSystem()

	if name, ok := d.Grab(150, 300); !ok || name != "product" {
		t.Fatalf("Grab = (%q,%v), want product", name, ok)
	}
	d.DragTo(152, 302)

	name, clicked := d.Release()
	if name != "product" || !clicked {
		t.Errorf("Release = (%q,%v), want (product,true)", name, clicked)
	}

	// 小幅移动仍然生效
	offset := d.Get("product").Offset()
	if offset.X != 2 || offset.Y != 2 {
		t.Errorf("Offset = %+v, want (2,2)", offset)
	}
}

func TestDragSystemDragIsNotClick(t *testing.T) {
	d := newTestDragSystem()

	d.Grab(830, 50)
	d.DragTo(730, 150)
	// 移回原处：最大位移仍然超过阈值
	d.DragTo(830, 50)

	name, clicked := d.Release()
	if name != "cart" || clicked {
		t.Errorf("Release = (%q,%v), want (cart,false)", name, clicked)
	}
}

func TestDragSystemRectFollowsDrag(t *testing.T) {
	d := newTestDragSystem()
	provider := d.Provider("cart")

	d.Grab(830, 50)
	d.DragTo(630, 250)
	d.Release()

	r, ok := provider.Rect()
	if !ok {
		t.Fatal("Expected cart to be mounted")
	}
	if r.Left != 600 || r.Top != 224 {
		t.Errorf("Rect = %+v, want Left=600 Top=224", r)
	}

	// 新位置可以被命中，旧位置不行
	if name, ok := d.HitTest(610, 230); !ok || name != "cart" {
		t.Errorf("HitTest at new position = (%q,%v)", name, ok)
	}
	if _, ok := d.HitTest(830, 50); ok {
		t.Error("Old position should no longer hit the cart")
	}
}

func TestDragSystemClampsToBounds(t *testing.T) {
	d := newTestDragSystem()

	d.Grab(830, 50)
	d.DragTo(2000, -500)
	d.Release()

	r, _ := d.Get("cart").Rect()
	if r.Left != 960-64 || r.Top != 0 {
		t.Errorf("Rect = %+v, want Left=%d Top=0", r, 960-64)
	}
}

func TestDragSystemGrabRaises(t *testing.T) {
	d := newTestDragSystem()

	// 把购物车拖到商品上方
	d.Grab(830, 50)
	d.DragTo(830-700+20, 50+260)
	d.Release()

	if name, _ := d.HitTest(150, 300); name != "cart" {
		t.Fatalf("Expected cart on top, got %q", name)
	}

	// 抓取商品后商品在最上层
	d.Grab(250, 400)
	d.Release()
	order := d.Order()
	if order[len(order)-1] != "product" {
		t.Errorf("Expected product on top, order = %v", order)
	}
}

func TestDragSystemProviderUnmounted(t *testing.T) {
	d := NewDragSystem(960, 640, 4)
	provider := d.Provider("cart")

	if _, ok := provider.Rect(); ok {
		t.Error("Expected unmounted before Add")
	}

	d.Add("cart", game.Rect{Left: 10, Top: 10, Width: 64, Height: 64})
	if _, ok := provider.Rect(); !ok {
		t.Error("Expected mounted after Add")
	}

	d.Remove("cart")
	if _, ok := provider.Rect(); ok {
		t.Error("Expected unmounted after Remove")
	}
}

func TestDragSystemReleaseWithoutGrab(t *testing.T) {
	d := newTestDragSystem()

	if _, ok := d.Grab(500, 500); ok {
		t.Fatal("Grab on empty area should fail")
	}
	d.DragTo(600, 600)
	if name, clicked := d.Release(); name != "" || clicked {
		t.Errorf("Release = (%q,%v), want empty", name, clicked)
	}
}
