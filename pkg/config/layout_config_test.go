package config

import "testing"

func TestLayoutFitsWindow(t *testing.T) {
	tests := []struct {
		name            string
		left, top, w, h float64
	}{
		{"商品", ProductStartX, ProductStartY, ProductSize, ProductSize},
		{"购物车", CartStartX, CartStartY, CartSize, CartSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.left < 0 || tt.top < 0 {
				t.Errorf("左上角 (%v,%v) 超出窗口", tt.left, tt.top)
			}
			if tt.left+tt.w > DemoWindowWidth || tt.top+tt.h > DemoWindowHeight {
				t.Errorf("右下角 (%v,%v) 超出窗口 %dx%d", tt.left+tt.w, tt.top+tt.h, DemoWindowWidth, DemoWindowHeight)
			}
		})
	}
}

func TestLayoutProductAndCartDisjoint(t *testing.T) {
	overlapX := ProductStartX < CartStartX+CartSize && CartStartX < ProductStartX+ProductSize
	overlapY := ProductStartY < CartStartY+CartSize && CartStartY < ProductStartY+ProductSize
	if overlapX && overlapY {
		t.Error("商品和购物车的初始位置不应重叠")
	}
}

func TestFlightEndSizeSmallerThanProduct(t *testing.T) {
	if FlightEndSize <= 0 || FlightEndSize >= ProductSize {
		t.Errorf("FlightEndSize = %v，应在 (0, %v) 内", FlightEndSize, ProductSize)
	}
}
