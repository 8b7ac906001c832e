package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	disposed     int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Dispose counts Dispose calls.
func (m *MockScene) Dispose() {
	m.disposed++
}

// plainScene does not implement Disposable.
type plainScene struct{}

func (plainScene) Update(float64) {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Shutdown()    // Should not panic
}

// TestSceneManagerSwitchDisposesPrevious verifies that the replaced scene is disposed.
func TestSceneManagerSwitchDisposesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.disposed != 0 {
		t.Errorf("switching to the same scene disposed it %d times", scene1.disposed)
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if scene1.disposed != 1 {
		t.Errorf("scene1 disposed %d times, want 1", scene1.disposed)
	}
	if scene1.updateCalled {
		t.Error("scene1 should not have been updated")
	}
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}

	sm.Shutdown()
	if scene2.disposed != 1 {
		t.Errorf("scene2 disposed %d times after Shutdown, want 1", scene2.disposed)
	}

	// 非 Disposable 场景直接替换
	sm.SwitchTo(plainScene{})
	sm.SwitchTo(&MockScene{})
}
