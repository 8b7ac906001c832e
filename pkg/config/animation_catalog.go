package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/cartfly/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfig 表示目录中没有该名称的配置
var ErrUnknownConfig = errors.New("unknown animation config")

// DefaultCatalogPath 内置配置目录文件
const DefaultCatalogPath = "data/animation_configs.yaml"

// animationCatalogYAML 配置目录文件的顶层结构
type animationCatalogYAML struct {
	Default string                `yaml:"default"`
	Presets []animationConfigYAML `yaml:"presets"`
}

// AnimationCatalog 固定的、按名称选择的动画配置目录
// 加载完成后只读，可在多个 goroutine 间共享
type AnimationCatalog struct {
	names        []string                   // 保持文件中的顺序（决定数字键绑定）
	presets      map[string]AnimationConfig // 按名称索引
	displayNames map[string]string
	defaultName  string
}

// LoadAnimationCatalog 从嵌入资源加载配置目录
//
// 参数：
//   - path: 嵌入资源路径，如 "data/animation_configs.yaml"
//
// 返回：
//   - *AnimationCatalog: 配置目录
//   - error: 读取、解析或校验错误
func LoadAnimationCatalog(path string) (*AnimationCatalog, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	catalog, err := ParseAnimationCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("无法解析配置文件 %s: %w", path, err)
	}
	return catalog, nil
}

// ParseAnimationCatalog 解析 YAML 格式的配置目录
// 每个预设的可选字段在这里一次性补全默认值
func ParseAnimationCatalog(data []byte) (*AnimationCatalog, error) {
	var raw animationCatalogYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("无法解析 YAML: %w", err)
	}

	if len(raw.Presets) == 0 {
		return nil, fmt.Errorf("%w: catalog has no presets", ErrInvalidConfig)
	}

	catalog := &AnimationCatalog{
		names:        make([]string, 0, len(raw.Presets)),
		presets:      make(map[string]AnimationConfig, len(raw.Presets)),
		displayNames: make(map[string]string, len(raw.Presets)),
	}

	for i, preset := range raw.Presets {
		if preset.Name == "" {
			return nil, fmt.Errorf("预设 #%d 缺少 'name' 字段", i)
		}
		if _, exists := catalog.presets[preset.Name]; exists {
			return nil, fmt.Errorf("重复的预设名称: %s", preset.Name)
		}

		cfg, err := resolveAnimationConfig(preset)
		if err != nil {
			return nil, fmt.Errorf("预设 %s: %w", preset.Name, err)
		}

		displayName := preset.DisplayName
		if displayName == "" {
			displayName = preset.Name
		}

		catalog.names = append(catalog.names, preset.Name)
		catalog.presets[preset.Name] = cfg
		catalog.displayNames[preset.Name] = displayName
	}

	// 未指定默认配置时使用第一个
	catalog.defaultName = raw.Default
	if catalog.defaultName == "" {
		catalog.defaultName = catalog.names[0]
	}
	if _, ok := catalog.presets[catalog.defaultName]; !ok {
		return nil, fmt.Errorf("%w: default %q", ErrUnknownConfig, catalog.defaultName)
	}

	return catalog, nil
}

// Names 返回所有配置名称（文件中的顺序）
func (c *AnimationCatalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Get 按名称获取配置
func (c *AnimationCatalog) Get(name string) (AnimationConfig, error) {
	cfg, ok := c.presets[name]
	if !ok {
		return AnimationConfig{}, fmt.Errorf("%w: %q", ErrUnknownConfig, name)
	}
	return cfg, nil
}

// NameAt 返回第 index 个配置名称（从 0 开始），越界时返回 false
func (c *AnimationCatalog) NameAt(index int) (string, bool) {
	if index < 0 || index >= len(c.names) {
		return "", false
	}
	return c.names[index], true
}

// DisplayName 返回配置的显示名称，未知名称原样返回
func (c *AnimationCatalog) DisplayName(name string) string {
	if dn, ok := c.displayNames[name]; ok {
		return dn
	}
	return name
}

// DefaultName 返回默认配置名称
func (c *AnimationCatalog) DefaultName() string {
	return c.defaultName
}

// Default 返回默认配置
func (c *AnimationCatalog) Default() AnimationConfig {
	return c.presets[c.defaultName]
}
