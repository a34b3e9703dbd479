package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/Carmen-Shannon/oxy-csm/engine/game_object"
	"github.com/Carmen-Shannon/oxy-csm/engine/profiler"
	"github.com/Carmen-Shannon/oxy-csm/engine/scene"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestScene() scene.Scene {
	return scene.NewScene("engine-test", camera.NewCamera(), scene.WithComputeWorkers(1))
}

func TestNewEnginePanicsWithoutScene(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil scene")
		}
	}()
	NewEngine(nil)
}

func TestTickAppliesInput(t *testing.T) {
	e := NewEngine(newTestScene(), WithController(camera.NewCameraController(camera.WithMoveSpeed(60), camera.WithTickRate(60))))

	e.Input().ProcessKey(glfw.KeyW, glfw.Press)
	e.Input().ProcessKey(glfw.KeyW, glfw.Press)
	e.Input().ProcessKey(glfw.KeyD, glfw.Press)
	e.Tick()

	got := e.Scene().Camera().Position
	if got != (mgl32.Vec3{1, 0, -2}) {
		t.Errorf("camera position = %v, want (1, 0, -2)", got)
	}
	if e.Input().Len() != 0 {
		t.Errorf("input queue not drained: %d left", e.Input().Len())
	}
	if !e.Running() {
		t.Error("engine stopped without escape")
	}
}

func TestEscapeQuits(t *testing.T) {
	e := NewEngine(newTestScene())
	e.Input().ProcessKey(glfw.KeyEscape, glfw.Press)
	e.Tick()
	if e.Running() {
		t.Error("escape should stop the engine")
	}
	// Quit is idempotent.
	e.Quit()
}

func TestTickBuildsFrame(t *testing.T) {
	s := newTestScene()
	id := s.Add(game_object.NewGameObject(
		game_object.WithLocalBounds(common.NewAABB(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})),
		game_object.WithPosition(0, 0, -10),
	))

	clock := time.Unix(0, 0)
	p := profiler.NewProfiler(
		profiler.WithUpdateInterval(time.Second),
		profiler.WithQuiet(true),
		profiler.WithClock(func() time.Time { return clock }),
	)
	e := NewEngine(s, WithProfiling(true), WithProfiler(p))

	var frames []scene.FrameData
	e.SetFrameCallback(func(fd scene.FrameData) { frames = append(frames, fd) })

	fd := e.Tick()
	if len(fd.Visible) != 1 || fd.Visible[0] != id {
		t.Errorf("visible = %v, want [%d]", fd.Visible, id)
	}
	if len(fd.Cascades) == 0 {
		t.Error("no cascades in frame")
	}

	clock = clock.Add(time.Second)
	e.Tick()
	if len(frames) != 2 {
		t.Errorf("frame callback called %d times, want 2", len(frames))
	}
	if r := p.Last(); r.AvgVisible != 1 {
		t.Errorf("profiler avg visible = %v, want 1", r.AvgVisible)
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	e := NewEngine(newTestScene(), WithTickRate(500))
	ticks := 0
	e.SetFrameCallback(func(scene.FrameData) {
		ticks++
		if ticks == 3 {
			e.Quit()
		}
	})

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Quit")
	}
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3", ticks)
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(0); got != time.Second/60 {
		t.Errorf("tickInterval(0) = %v", got)
	}
	if got := tickInterval(100); got != 10*time.Millisecond {
		t.Errorf("tickInterval(100) = %v", got)
	}
}
