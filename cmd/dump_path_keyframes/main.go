// cmd/dump_path_keyframes/main.go
// 打印动画配置及其生成的路径关键帧（YAML）
//
// 用法：
//   go run ./cmd/dump_path_keyframes --preset=spiral --dx=400 --dy=-220
//   go run ./cmd/dump_path_keyframes --preset=elastic --samples=20

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/cartfly/internal/flightpath"
	"github.com/gonewx/cartfly/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	catalogPath = flag.String("catalog", config.DefaultCatalogPath, "动画配置文件路径")
	preset      = flag.String("preset", "", "动画配置名称（为空则使用默认配置）")
	distanceX   = flag.Float64("dx", 400, "水平距离（目标中心 - 起点中心）")
	distanceY   = flag.Float64("dy", -220, "垂直距离（目标中心 - 起点中心）")
	samples     = flag.Int("samples", flightpath.DefaultSampleCount, "spiral/elastic 路径的采样段数")
)

// parabolaTracks 三点抛物线轨道
type parabolaTracks struct {
	X     [3]float64 `yaml:"x"`
	Y     [3]float64 `yaml:"y"`
	Times [3]float64 `yaml:"times"`
}

// pathDump 输出结构
type pathDump struct {
	Preset            string                    `yaml:"preset"`
	DistanceX         float64                   `yaml:"dx"`
	DistanceY         float64                   `yaml:"dy"`
	RotationDirection int                       `yaml:"rotation_direction"`
	Duration          string                    `yaml:"duration"`
	Config            config.AnimationConfig    `yaml:"config"`
	Keyframes         *flightpath.PathKeyframes `yaml:"keyframes,omitempty"`
	Parabola          *parabolaTracks           `yaml:"parabola,omitempty"`
}

// buildDump 解析配置并生成路径数据
func buildDump(catalog *config.AnimationCatalog, name string, dx, dy float64, sampleCount int) (*pathDump, error) {
	if name == "" {
		name = catalog.DefaultName()
	}
	cfg, err := catalog.Get(name)
	if err != nil {
		return nil, err
	}

	dump := &pathDump{
		Preset:            name,
		DistanceX:         dx,
		DistanceY:         dy,
		RotationDirection: flightpath.CalculateRotationDirection(dx),
		Duration:          cfg.Duration().String(),
		Config:            cfg,
	}

	if flightpath.UsesParabola(cfg.PathType, cfg.PathHeight) {
		dump.Parabola = &parabolaTracks{
			X:     flightpath.ParabolaXAnimation(dx),
			Y:     flightpath.CalculateParabolaYAnimation(dy, cfg.PathHeight),
			Times: flightpath.ParabolaTimes,
		}
		return dump, nil
	}

	dump.Keyframes = flightpath.GeneratePathKeyframes(cfg.PathType, dx, dy, cfg.PathHeight, sampleCount, cfg.SpiralTurns)
	return dump, nil
}

func main() {
	flag.Parse()

	data, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Fatalf("读取配置文件失败: %v", err)
	}
	catalog, err := config.ParseAnimationCatalog(data)
	if err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	dump, err := buildDump(catalog, *preset, *distanceX, *distanceY, *samples)
	if err != nil {
		log.Fatalf("生成路径失败: %v (可用配置: %v)", err, catalog.Names())
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		log.Fatalf("序列化失败: %v", err)
	}
	fmt.Print(string(out))
}
