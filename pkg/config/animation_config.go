package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gonewx/cartfly/internal/flightpath"
	"github.com/gonewx/cartfly/pkg/utils"
)

// ErrInvalidConfig 表示动画配置的取值不合法
var ErrInvalidConfig = errors.New("invalid animation config")

// CubicBezier CSS 风格的三次贝塞尔缓动控制点 [x1, y1, x2, y2]
// x1、x2 必须位于 [0, 1]，y 值不受限制（允许回弹）
type CubicBezier [4]float64

// Curve 返回可求值的缓动曲线
func (c CubicBezier) Curve() *utils.BezierCurve {
	return utils.NewBezierCurve(c[0], c[1], c[2], c[3])
}

func (c CubicBezier) validate() error {
	if c[0] < 0 || c[0] > 1 || c[2] < 0 || c[2] > 1 {
		return fmt.Errorf("cubic-bezier x control points must be in [0, 1], got %v", c)
	}
	return nil
}

// AnimationConfig 飞入购物车动画的一组完整参数
//
// 配置是不可变的值类型：切换配置时整体替换，从不局部合并。
// 可选字段在加载时一次性补全默认值（见 resolveAnimationConfig），使用方不需要再做兜底判断。
type AnimationConfig struct {
	Speed       float64             `yaml:"speed"`        // 动画时长（秒），> 0
	Delay       float64             `yaml:"delay"`        // 开始前的延迟（秒），>= 0
	XEasing     CubicBezier         `yaml:"x_easing"`     // X 轴缓动曲线
	YEasing     CubicBezier         `yaml:"y_easing"`     // Y 轴缓动曲线
	ScaleEasing CubicBezier         `yaml:"scale_easing"` // 缩放缓动曲线
	PathType    flightpath.PathType `yaml:"path_type"`    // 路径类型
	PathHeight  float64             `yaml:"path_height"`  // 弧线/回弹/螺旋半径（像素），>= 0
	Rotation    float64             `yaml:"rotation"`     // 旋转角度（度）
	Blur        float64             `yaml:"blur"`         // 模糊强度（像素）
	Scale       bool                `yaml:"scale"`        // 是否缩小
	Fade        bool                `yaml:"fade"`         // 是否淡出
	SpiralTurns int                 `yaml:"spiral_turns"` // 螺旋圈数，仅 spiral 使用
}

// Duration 返回一次动画从生成到结束的总时长（speed + delay）
func (c AnimationConfig) Duration() time.Duration {
	return time.Duration(math.Round((c.Speed + c.Delay) * float64(time.Second)))
}

// Validate 校验配置取值
func (c AnimationConfig) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be > 0, got %v", ErrInvalidConfig, c.Speed)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must be >= 0, got %v", ErrInvalidConfig, c.Delay)
	}
	if c.PathHeight < 0 {
		return fmt.Errorf("%w: path_height must be >= 0, got %v", ErrInvalidConfig, c.PathHeight)
	}
	if !c.PathType.Valid() {
		return fmt.Errorf("%w: unknown path_type %q", ErrInvalidConfig, c.PathType)
	}
	if c.SpiralTurns < 1 {
		return fmt.Errorf("%w: spiral_turns must be >= 1, got %d", ErrInvalidConfig, c.SpiralTurns)
	}
	for name, curve := range map[string]CubicBezier{
		"x_easing":     c.XEasing,
		"y_easing":     c.YEasing,
		"scale_easing": c.ScaleEasing,
	} {
		if err := curve.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// animationConfigYAML YAML 中的原始配置，可选字段使用指针区分"未填写"
type animationConfigYAML struct {
	Name        string              `yaml:"name"`
	DisplayName string              `yaml:"display_name"`
	Speed       float64             `yaml:"speed"`
	Delay       float64             `yaml:"delay"`
	XEasing     *CubicBezier        `yaml:"x_easing"`
	YEasing     *CubicBezier        `yaml:"y_easing"`
	ScaleEasing *CubicBezier        `yaml:"scale_easing"`
	PathType    flightpath.PathType `yaml:"path_type"`
	PathHeight  float64             `yaml:"path_height"`
	Rotation    *float64            `yaml:"rotation,omitempty"`
	Blur        *float64            `yaml:"blur,omitempty"`
	Scale       *bool               `yaml:"scale,omitempty"`
	Fade        *bool               `yaml:"fade,omitempty"`
	SpiralTurns *int                `yaml:"spiral_turns,omitempty"`
}

// 可选字段的默认值
const (
	defaultRotation    = 0.0
	defaultBlur        = 0.0
	defaultScale       = true
	defaultFade        = false
	defaultSpiralTurns = 1
)

// resolveAnimationConfig 补全默认值并校验
func resolveAnimationConfig(raw animationConfigYAML) (AnimationConfig, error) {
	cfg := AnimationConfig{
		Speed:       raw.Speed,
		Delay:       raw.Delay,
		XEasing:     [4]float64{0.25, 0.1, 0.25, 1}, // CSS "ease"
		YEasing:     [4]float64{0.25, 0.1, 0.25, 1},
		ScaleEasing: [4]float64{0.25, 0.1, 0.25, 1},
		PathType:    raw.PathType,
		PathHeight:  raw.PathHeight,
		Rotation:    defaultRotation,
		Blur:        defaultBlur,
		Scale:       defaultScale,
		Fade:        defaultFade,
		SpiralTurns: defaultSpiralTurns,
	}

	if cfg.PathType == "" {
		cfg.PathType = flightpath.PathStraight
	}
	if raw.XEasing != nil {
		cfg.XEasing = *raw.XEasing
	}
	if raw.YEasing != nil {
		cfg.YEasing = *raw.YEasing
	}
	if raw.ScaleEasing != nil {
		cfg.ScaleEasing = *raw.ScaleEasing
	}
	if raw.Rotation != nil {
		cfg.Rotation = *raw.Rotation
	}
	if raw.Blur != nil {
		cfg.Blur = *raw.Blur
	}
	if raw.Scale != nil {
		cfg.Scale = *raw.Scale
	}
	if raw.Fade != nil {
		cfg.Fade = *raw.Fade
	}
	if raw.SpiralTurns != nil {
		cfg.SpiralTurns = *raw.SpiralTurns
	}

	if err := cfg.Validate(); err != nil {
		return AnimationConfig{}, err
	}
	return cfg, nil
}
