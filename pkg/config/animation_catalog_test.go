package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gonewx/cartfly/internal/flightpath"
)

func loadTestCatalog(t *testing.T) *AnimationCatalog {
	t.Helper()
	data, err := os.ReadFile("../../data/animation_configs.yaml")
	if err != nil {
		t.Fatalf("读取配置文件失败: %v", err)
	}
	catalog, err := ParseAnimationCatalog(data)
	if err != nil {
		t.Fatalf("解析配置失败: %v", err)
	}
	return catalog
}

func TestAnimationCatalog_Builtin(t *testing.T) {
	catalog := loadTestCatalog(t)

	t.Run("预设顺序", func(t *testing.T) {
		want := []string{"original", "fast", "smooth", "bouncy", "elegant", "spiral", "elastic", "magical", "minimal"}
		got := catalog.Names()
		if len(got) != len(want) {
			t.Fatalf("期望 %d 个预设，实际 %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("第 %d 个预设期望 %s，实际 %s", i, want[i], got[i])
			}
		}
	})

	t.Run("默认配置", func(t *testing.T) {
		if catalog.DefaultName() != "original" {
			t.Errorf("期望默认配置 original，实际 %s", catalog.DefaultName())
		}
		def := catalog.Default()
		if def.Speed != 0.8 || def.Delay != 0.1 {
			t.Errorf("默认配置 speed/delay = %v/%v，期望 0.8/0.1", def.Speed, def.Delay)
		}
		if def.XEasing != (CubicBezier{0.59, -0.75, 0.91, 0.5}) {
			t.Errorf("x_easing = %v", def.XEasing)
		}
	})

	t.Run("spiral 预设", func(t *testing.T) {
		cfg, err := catalog.Get("magical")
		if err != nil {
			t.Fatalf("获取 magical 配置失败: %v", err)
		}
		if cfg.PathType != flightpath.PathSpiral {
			t.Errorf("期望 path_type spiral，实际 %s", cfg.PathType)
		}
		if cfg.SpiralTurns != 3 {
			t.Errorf("期望 spiral_turns 3，实际 %d", cfg.SpiralTurns)
		}
		if cfg.PathHeight != 180 {
			t.Errorf("期望 path_height 180，实际 %v", cfg.PathHeight)
		}
	})

	t.Run("未填写 spiral_turns 时补全默认值", func(t *testing.T) {
		cfg, err := catalog.Get("bouncy")
		if err != nil {
			t.Fatalf("获取 bouncy 配置失败: %v", err)
		}
		if cfg.SpiralTurns != 1 {
			t.Errorf("期望 spiral_turns 默认 1，实际 %d", cfg.SpiralTurns)
		}
	})

	t.Run("显示名称", func(t *testing.T) {
		if got := catalog.DisplayName("elastic"); got != "Elastic" {
			t.Errorf("期望 Elastic，实际 %s", got)
		}
		if got := catalog.DisplayName("nope"); got != "nope" {
			t.Errorf("未知名称应原样返回，实际 %s", got)
		}
	})

	t.Run("按序号取名称", func(t *testing.T) {
		if name, ok := catalog.NameAt(5); !ok || name != "spiral" {
			t.Errorf("NameAt(5) = %s, %v，期望 spiral, true", name, ok)
		}
		if _, ok := catalog.NameAt(9); ok {
			t.Error("NameAt(9) 应该越界")
		}
		if _, ok := catalog.NameAt(-1); ok {
			t.Error("NameAt(-1) 应该越界")
		}
	})

	t.Run("未知配置", func(t *testing.T) {
		_, err := catalog.Get("turbo")
		if !errors.Is(err, ErrUnknownConfig) {
			t.Errorf("期望 ErrUnknownConfig，实际 %v", err)
		}
	})

	t.Run("所有预设通过校验", func(t *testing.T) {
		for _, name := range catalog.Names() {
			cfg, _ := catalog.Get(name)
			if err := cfg.Validate(); err != nil {
				t.Errorf("预设 %s 校验失败: %v", name, err)
			}
		}
	})

	t.Run("Names 返回副本", func(t *testing.T) {
		names := catalog.Names()
		names[0] = "hacked"
		if catalog.Names()[0] != "original" {
			t.Error("修改 Names() 的返回值不应影响目录")
		}
	})
}

func TestParseAnimationCatalog_Defaults(t *testing.T) {
	data := []byte(`
presets:
  - name: bare
    speed: 0.5
`)
	catalog, err := ParseAnimationCatalog(data)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	if catalog.DefaultName() != "bare" {
		t.Errorf("未指定 default 时应使用第一个预设，实际 %s", catalog.DefaultName())
	}

	cfg := catalog.Default()
	if cfg.PathType != flightpath.PathStraight {
		t.Errorf("path_type 默认应为 straight，实际 %s", cfg.PathType)
	}
	if !cfg.Scale {
		t.Error("scale 默认应为 true")
	}
	if cfg.Fade {
		t.Error("fade 默认应为 false")
	}
	if cfg.Rotation != 0 || cfg.Blur != 0 {
		t.Errorf("rotation/blur 默认应为 0，实际 %v/%v", cfg.Rotation, cfg.Blur)
	}
	if cfg.SpiralTurns != 1 {
		t.Errorf("spiral_turns 默认应为 1，实际 %d", cfg.SpiralTurns)
	}
	if cfg.XEasing != (CubicBezier{0.25, 0.1, 0.25, 1}) {
		t.Errorf("x_easing 默认应为 CSS ease，实际 %v", cfg.XEasing)
	}
	if catalog.DisplayName("bare") != "bare" {
		t.Errorf("display_name 默认应为 name，实际 %s", catalog.DisplayName("bare"))
	}
}

func TestParseAnimationCatalog_Errors(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantErrIs error
	}{
		{"空目录", "presets: []\n", ErrInvalidConfig},
		{"speed 为 0", "presets:\n  - name: a\n    speed: 0\n", ErrInvalidConfig},
		{"负 delay", "presets:\n  - name: a\n    speed: 1\n    delay: -0.1\n", ErrInvalidConfig},
		{"负 path_height", "presets:\n  - name: a\n    speed: 1\n    path_height: -5\n", ErrInvalidConfig},
		{"未知路径类型", "presets:\n  - name: a\n    speed: 1\n    path_type: zigzag\n", ErrInvalidConfig},
		{"spiral_turns 为 0", "presets:\n  - name: a\n    speed: 1\n    spiral_turns: 0\n", ErrInvalidConfig},
		{"贝塞尔 x 越界", "presets:\n  - name: a\n    speed: 1\n    x_easing: [1.2, 0, 0.5, 1]\n", ErrInvalidConfig},
		{"未知默认配置", "default: b\npresets:\n  - name: a\n    speed: 1\n", ErrUnknownConfig},
		{"缺少名称", "presets:\n  - speed: 1\n", nil},
		{"重复名称", "presets:\n  - name: a\n    speed: 1\n  - name: a\n    speed: 2\n", nil},
		{"贝塞尔元素个数错误", "presets:\n  - name: a\n    speed: 1\n    x_easing: [0.5, 0, 0.5]\n", nil},
		{"非法 YAML", "presets: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnimationCatalog([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误，但没有错误")
			}
			if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
				t.Errorf("期望错误为 %v，实际 %v", tt.wantErrIs, err)
			}
		})
	}
}

func TestAnimationConfig_Duration(t *testing.T) {
	cfg := AnimationConfig{Speed: 0.8, Delay: 0.1}
	if got := cfg.Duration(); got != 900*time.Millisecond {
		t.Errorf("Duration() = %v，期望 900ms", got)
	}
}

func TestLoadAnimationCatalog_NotInitialized(t *testing.T) {
	_, err := LoadAnimationCatalog(DefaultCatalogPath)
	if err == nil {
		t.Fatal("embedded 未初始化时应返回错误")
	}
}
