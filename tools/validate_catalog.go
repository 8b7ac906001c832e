package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/gonewx/cartfly/pkg/config"
	"gopkg.in/yaml.v3"
)

// knownKeys 预设中允许出现的字段
var knownKeys = map[string]bool{
	"name": true, "display_name": true,
	"speed": true, "delay": true,
	"x_easing": true, "y_easing": true, "scale_easing": true,
	"path_type": true, "path_height": true, "spiral_turns": true,
	"rotation": true, "blur": true, "scale": true, "fade": true,
}

type rawCatalog struct {
	Default string                   `yaml:"default"`
	Presets []map[string]interface{} `yaml:"presets"`
}

func main() {
	path := config.DefaultCatalogPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}

	// 拼写错误的字段会被加载器静默忽略，这里单独检查
	unknown := 0
	for i, preset := range raw.Presets {
		keys := make([]string, 0, len(preset))
		for key := range preset {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !knownKeys[key] {
				fmt.Printf("❌ 第 %d 个预设 (%v) 包含未知字段: %s\n", i+1, preset["name"], key)
				unknown++
			}
		}
	}

	catalog, err := config.ParseAnimationCatalog(data)
	if err != nil {
		fmt.Printf("❌ 配置校验失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 预设数量: %d，默认: %s\n", len(catalog.Names()), catalog.DefaultName())
	for i, name := range catalog.Names() {
		cfg, _ := catalog.Get(name)
		fmt.Printf("  [%d] %-10s %-8s %v\n", i+1, name, cfg.PathType, cfg.Duration())
	}

	if unknown > 0 {
		fmt.Printf("❌ 有 %d 个未知字段\n", unknown)
		os.Exit(1)
	}
}
