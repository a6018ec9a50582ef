package particles

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/bogste/pixelfolio/shared/gamemath"
	"github.com/bogste/pixelfolio/shared/sprite"
)

// Mode selects the warp direction.
type Mode int

const (
	// Shed pulls the sprite's pixels into the portal.
	Shed Mode = iota
	// Integrate flies them back out to the sprite.
	Integrate
)

func (m Mode) String() string {
	if m == Integrate {
		return "integrate"
	}
	return "shed"
}

// WarpParams tune the warp simulation.
type WarpParams struct {
	// ShedDuration is the number of ticks progress takes to reach 1.
	ShedDuration int `yaml:"shed_duration"`
	// TravelBuffer extra ticks before completion is forced.
	TravelBuffer int `yaml:"travel_buffer"`
	// DisplayPixel is the on-screen size of one sprite cell.
	DisplayPixel float64 `yaml:"display_pixel"`
	ConsumeRadius float64 `yaml:"consume_radius"`
	ArriveRadius  float64 `yaml:"arrive_radius"`
	SpawnRadius   float64 `yaml:"spawn_radius"`
}

// DefaultWarpParams returns the tuned constants.
func DefaultWarpParams() WarpParams {
	return WarpParams{
		ShedDuration:  60,
		TravelBuffer:  90,
		DisplayPixel:  1.5,
		ConsumeRadius: 20,
		ArriveRadius:  5,
		SpawnRadius:   20,
	}
}

// ForceCompleteFrame is the tick at which the simulation reports Done even if
// particles are still travelling.
func (p WarpParams) ForceCompleteFrame() int {
	return p.ShedDuration + p.TravelBuffer
}

type warpParticle struct {
	key   sprite.PixelKey
	color color.RGBA

	x, y   float64
	tx, ty float64

	threshold   float64
	angleOffset float64

	shed     bool
	consumed bool
	scale    float64
	opacity  float64
}

// WarpTick is the result of one warp step.
type WarpTick struct {
	Status Status
	// InFlight holds the sprite cells the particles currently own. The
	// character renderer skips them.
	InFlight map[sprite.PixelKey]struct{}
	Quads    []Quad
}

// WarpSystem turns the character sprite into particles and back.
type WarpSystem struct {
	Params WarpParams
	// Mirror lays the batch out flipped horizontally, matching a character
	// facing left. Read on Activate.
	Mirror bool

	sprite *sprite.Sprite
	rng    *rand.Rand

	mode      Mode
	particles []warpParticle
	portal    Point
	progress  float64
	frame     int
	active    bool
	finished  bool
}

// NewWarpSystem creates an idle system for a sprite.
func NewWarpSystem(sp *sprite.Sprite, p WarpParams, rng *rand.Rand) *WarpSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(3, 5))
	}
	return &WarpSystem{Params: p, sprite: sp, rng: rng}
}

// Active reports whether a batch exists.
func (w *WarpSystem) Active() bool {
	return w.active
}

// Mode returns the mode of the current batch.
func (w *WarpSystem) Mode() Mode {
	return w.mode
}

// Activate builds a new batch. feet is the bottom-centre of the character on
// screen. It is a no-op returning false while a batch is still alive.
func (w *WarpSystem) Activate(mode Mode, feet, portal Point) bool {
	if w.active {
		return false
	}
	p := w.Params
	displayW := float64(w.sprite.Cols) * p.DisplayPixel
	displayH := float64(w.sprite.Rows) * p.DisplayPixel
	left := feet.X - displayW/2
	top := feet.Y - displayH

	opaque := w.sprite.Opaque()
	w.particles = make([]warpParticle, 0, len(opaque))
	for _, px := range opaque {
		col := px.Col
		if w.Mirror {
			col = w.sprite.Cols - 1 - col
		}
		sx := left + float64(col)*p.DisplayPixel
		sy := top + float64(px.Row)*p.DisplayPixel
		wp := warpParticle{
			key:         px.PixelKey,
			color:       px.Color,
			tx:          sx,
			ty:          sy,
			threshold:   gamemath.ShedThreshold(px.Col, px.Row),
			angleOffset: gamemath.AngleOffset(px.Col, px.Row),
		}
		if mode == Integrate {
			angle := w.rng.Float64() * math.Pi * 2
			dist := w.rng.Float64() * p.SpawnRadius
			wp.x = portal.X + math.Cos(angle)*dist
			wp.y = portal.Y + math.Sin(angle)*dist
		} else {
			wp.x, wp.y = sx, sy
			wp.scale, wp.opacity = 1, 1
		}
		w.particles = append(w.particles, wp)
	}

	w.mode = mode
	w.portal = portal
	w.progress = 0
	w.frame = 0
	w.active = true
	w.finished = false
	return true
}

// Deactivate drops the batch immediately.
func (w *WarpSystem) Deactivate() {
	w.particles = nil
	w.progress = 0
	w.frame = 0
	w.active = false
	w.finished = false
}

// Tick advances one frame.
func (w *WarpSystem) Tick() WarpTick {
	if !w.active || w.finished {
		return WarpTick{Status: Idle}
	}

	w.frame++
	w.progress += 1 / float64(w.Params.ShedDuration)
	progress := math.Min(1, w.progress)

	out := WarpTick{
		Status:   Running,
		InFlight: make(map[sprite.PixelKey]struct{}, len(w.particles)),
	}

	allFinished := true
	for i := range w.particles {
		pt := &w.particles[i]
		var finished bool
		if w.mode == Shed {
			finished = w.stepShed(pt, progress, &out)
		} else {
			finished = w.stepIntegrate(pt, progress, &out)
		}
		if !finished {
			allFinished = false
		}
	}

	if allFinished || w.frame >= w.Params.ForceCompleteFrame() {
		w.finished = true
		out.Status = Done
	}
	return out
}

// Forced reports whether the last batch hit the frame cap.
func (w *WarpSystem) Forced() bool {
	return w.finished && w.frame >= w.Params.ForceCompleteFrame()
}

// stepShed moves one particle toward the portal. Consumed particles stay in
// flight: the sprite cell is gone for good.
func (w *WarpSystem) stepShed(pt *warpParticle, progress float64, out *WarpTick) bool {
	if pt.consumed {
		out.InFlight[pt.key] = struct{}{}
		return true
	}
	if !pt.shed && progress >= pt.threshold {
		pt.shed = true
	}
	if !pt.shed {
		return false
	}
	out.InFlight[pt.key] = struct{}{}

	nx, ny, dist := gamemath.Direction(pt.x, pt.y, w.portal.X, w.portal.Y)
	if dist < w.Params.ConsumeRadius {
		pt.consumed = true
		pt.scale, pt.opacity = 0, 0
		return false
	}

	near := math.Max(0, 1-dist/150)
	radial := 14 + near*8
	tangential := near * radial * 0.35
	sign := spiralSign(pt.angleOffset)
	tx, ty := -ny*sign, nx*sign

	pt.x += nx*radial + tx*tangential
	pt.y += ny*radial + ty*tangential
	pt.scale = math.Min(1, dist/80)
	pt.opacity = math.Min(1, dist/50)
	out.Quads = append(out.Quads, w.quad(pt))
	return false
}

// stepIntegrate flies one particle home. Cells are released in reverse shed
// order: the last to leave is the first to return.
func (w *WarpSystem) stepIntegrate(pt *warpParticle, progress float64, out *WarpTick) bool {
	if pt.consumed {
		return true
	}
	if !pt.shed && progress >= 1-pt.threshold {
		pt.shed = true
	}
	out.InFlight[pt.key] = struct{}{}
	if !pt.shed {
		return false
	}

	nx, ny, dist := gamemath.Direction(pt.x, pt.y, pt.tx, pt.ty)
	if dist < w.Params.ArriveRadius {
		pt.consumed = true
		return false
	}

	speed := 20 + math.Max(0, 1-dist/100)*15

	px, py := pt.x-w.portal.X, pt.y-w.portal.Y
	fromPortal := gamemath.Distance(w.portal.X, w.portal.Y, pt.x, pt.y)
	norm := fromPortal
	if norm == 0 {
		norm = 1
	}
	sign := spiralSign(pt.angleOffset)
	tanX, tanY := -(py/norm)*sign, (px/norm)*sign
	swirl := 12 * math.Min(1, dist/100)

	pt.x += nx*speed + tanX*swirl
	pt.y += ny*speed + tanY*swirl

	journey := math.Min(1, fromPortal/150)
	pt.scale = math.Min(1, journey+0.1)
	pt.opacity = math.Min(1, journey+0.2)
	out.Quads = append(out.Quads, w.quad(pt))
	return false
}

func (w *WarpSystem) quad(pt *warpParticle) Quad {
	size := math.Max(0.5, w.Params.DisplayPixel*pt.scale)
	return Quad{
		X:     math.Floor(pt.x - size/2),
		Y:     math.Floor(pt.y - size/2),
		Size:  math.Ceil(size),
		Color: pt.color,
		Alpha: pt.opacity,
	}
}

func spiralSign(angleOffset float64) float64 {
	if angleOffset > 0 {
		return 1
	}
	return -1
}
