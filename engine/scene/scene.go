package scene

import (
	"log"
	"maps"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-csm/common"
	"github.com/Carmen-Shannon/oxy-csm/engine/camera"
	"github.com/Carmen-Shannon/oxy-csm/engine/game_object"
	"github.com/Carmen-Shannon/oxy-csm/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameData is everything the render passes need for one frame: the camera
// transforms, the culling result and the fitted shadow cascades.
type FrameData struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	Frustum        common.Frustum

	// Visible holds the IDs of enabled objects that passed frustum culling, ascending.
	Visible []uint64
	// Culled counts enabled objects rejected by frustum culling. Disabled objects
	// are neither visible nor culled.
	Culled int

	// CameraData is the camera uniform buffer (see camera.GPUCameraUniform).
	CameraData []byte

	Cascades []light.Cascade
	// ShadowData is the cascade storage buffer (see light.MarshalCascades).
	ShadowData []byte
	// CascadeFitTime is how long fitting the cascades took.
	CascadeFitTime time.Duration
}

// Scene holds a Camera, a SunLight and a registry of GameObjects, and turns them
// into per-frame FrameData.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns a pointer to the scene's camera so input handling can move it.
	// The pointer must not be used concurrently with Frame.
	//
	// Returns:
	//   - *camera.Camera: the scene's camera
	Camera() *camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Sun returns the scene's directional light.
	//
	// Returns:
	//   - light.SunLight: the sun
	Sun() light.SunLight

	// SetSun replaces the scene's directional light.
	//
	// Parameters:
	//   - sun: the new sun
	SetSun(sun light.SunLight)

	// CascadeBuilder returns the builder used to fit shadow cascades each frame.
	//
	// Returns:
	//   - light.CascadeBuilder: the cascade builder
	CascadeBuilder() light.CascadeBuilder

	// CullingDisabled reports whether frustum culling is bypassed.
	CullingDisabled() bool

	// SetCullingDisabled bypasses frustum culling when true; every enabled object is visible.
	//
	// Parameters:
	//   - disabled: true to disable culling
	SetCullingDisabled(disabled bool)

	// Count returns the number of registered objects.
	Count() int

	// Add registers obj with the scene. Objects with ID 0 are assigned a fresh ID.
	// Adding an object whose ID is already registered replaces the previous object.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get returns the object registered under id, or nil.
	//
	// Parameters:
	//   - id: the object ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove unregisters the object with the given ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the object ID
	Remove(id uint64)

	// Clear unregisters every object.
	Clear()

	// Frame computes the camera matrices, culls every enabled object against the
	// view frustum and fits the shadow cascades for the current camera and sun.
	//
	// Returns:
	//   - FrameData: the per-frame render inputs
	Frame() FrameData
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	cam camera.Camera
	sun light.SunLight

	cullingDisabled bool

	cascades            light.CascadeBuilder
	cascadeOptions      []light.CascadeBuilderOption
	shadowMapResolution uint32
	shadowBias          float32
	shadowNormalBias    float32

	// computePool fits cascades in parallel when more than one worker is configured.
	// Workers persist across frames.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene viewed through cam and lit by a default sun.
// The cascade builder is created after the options are applied and panics if the
// resulting shadow configuration is invalid.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to view the scene through
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:                  &sync.RWMutex{},
		name:                name,
		active:              true,
		registry:            make(map[uint64]game_object.GameObject),
		nextID:              1,
		cam:                 cam,
		sun:                 light.NewSunLight(),
		computeWorkers:      max(runtime.NumCPU()-1, 1),
		shadowMapResolution: light.ShadowMapResolution,
		shadowBias:          light.DefaultShadowBias,
		shadowNormalBias:    light.DefaultShadowNormalBiasScale,
	}

	for _, option := range options {
		option(s)
	}

	cascadeOpts := append([]light.CascadeBuilderOption{
		light.WithResolution(s.shadowMapResolution),
	}, s.cascadeOptions...)

	// A single worker gains nothing over fitting inline.
	if s.computeWorkers > 1 {
		s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 256, 1*time.Second)
		cascadeOpts = append(cascadeOpts, light.WithWorkerPool(s.computePool))
	}
	s.cascades = light.NewCascadeBuilder(cascadeOpts...)

	log.Printf("[Scene] %s: %d cascades at %dpx, %d compute workers",
		s.name, s.cascades.Count(), s.cascades.Resolution(), s.computeWorkers)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() *camera.Camera {
	return &s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Sun() light.SunLight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sun
}

func (s *scene) SetSun(sun light.SunLight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sun = sun
}

func (s *scene) CascadeBuilder() light.CascadeBuilder {
	return s.cascades
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

// add registers obj. Caller must hold s.mu write lock.
func (s *scene) add(obj game_object.GameObject) uint64 {
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
	}
	if obj.ID() >= s.nextID {
		s.nextID = obj.ID() + 1
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
}

func (s *scene) Frame() FrameData {
	// Write lock: WorldBounds refreshes each object's cached transform.
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.cam.ViewMatrix()
	proj := s.cam.ProjectionMatrix()
	viewProj := proj.Mul4(view)

	fd := FrameData{
		View:           view,
		Projection:     proj,
		ViewProjection: viewProj,
		Frustum:        common.ExtractFrustumPlanes(viewProj),
		Visible:        make([]uint64, 0, len(s.registry)),
	}
	camUniform := camera.NewGPUCameraUniform(s.cam)
	fd.CameraData = camUniform.Marshal()

	for _, id := range slices.Sorted(maps.Keys(s.registry)) {
		obj := s.registry[id]
		if !obj.Enabled() {
			continue
		}
		if s.cullingDisabled || common.IsAABBInFrustum(obj.WorldBounds(), fd.Frustum) {
			fd.Visible = append(fd.Visible, id)
		} else {
			fd.Culled++
		}
	}

	start := time.Now()
	fd.Cascades = s.cascades.ComputeCascades(s.sun, s.cam)
	fd.CascadeFitTime = time.Since(start)
	fd.ShadowData = light.MarshalCascades(fd.Cascades, s.cascades.Resolution(), s.shadowBias, s.shadowNormalBias)

	return fd
}
