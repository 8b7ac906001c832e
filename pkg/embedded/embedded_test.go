package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/animation_configs.yaml": &fstest.MapFile{Data: []byte("presets: []\n")},
		"data/extra/a.yaml":           &fstest.MapFile{Data: []byte("a: 1\n")},
		"data/extra/b.yaml":           &fstest.MapFile{Data: []byte("b: 2\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("data/animation_configs.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestExistsNotInitialized 测试未初始化时调用 Exists
func TestExistsNotInitialized(t *testing.T) {
	initialized = false

	if Exists("data/animation_configs.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/animation_configs.yaml", "presets: []\n", false},
		{"带 ./ 前缀", "./data/animation_configs.yaml", "presets: []\n", false},
		{"未知前缀", "assets/item.png", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) 期望返回错误", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) 返回错误: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestGlob(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	files, err := Glob("data/extra/*.yaml")
	if err != nil {
		t.Fatalf("Glob 返回错误: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("期望匹配 2 个文件，实际 %d: %v", len(files), files)
	}

	if !Exists("data/extra/a.yaml") {
		t.Error("data/extra/a.yaml 应该存在")
	}
}
