package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// DustParams tune the impact burst. Velocities are per frame.
type DustParams struct {
	Count       int     `yaml:"count"`
	BaseLife    int     `yaml:"base_life"`
	LifeJitter  int     `yaml:"life_jitter"`
	AngleJitter float64 `yaml:"angle_jitter"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedJitter float64 `yaml:"speed_jitter"`
	Lift        float64 `yaml:"lift"`
	Gravity     float64 `yaml:"gravity"`
	Friction    float64 `yaml:"friction"`
	ColorJitter float64 `yaml:"color_jitter"`
	SizeMin     float64 `yaml:"size_min"`
	SizeJitter  float64 `yaml:"size_jitter"`
}

// DefaultDustParams returns the tuned constants.
func DefaultDustParams() DustParams {
	return DustParams{
		Count:       24,
		BaseLife:    20,
		LifeJitter:  8,
		AngleJitter: 0.5,
		SpeedMin:    2,
		SpeedJitter: 5,
		Lift:        2,
		Gravity:     0.15,
		Friction:    0.96,
		ColorJitter: 60,
		SizeMin:     2,
		SizeJitter:  3,
	}
}

// MaxLife is the longest a particle can live.
func (p DustParams) MaxLife() int {
	return p.BaseLife + p.LifeJitter - 1
}

type dustParticle struct {
	x, y, vx, vy float64
	size         float64
	opacity      float64
	color        color.RGBA
	life         int
	maxLife      int
}

// DustBurst is a one-shot radial puff of pixels.
type DustBurst struct {
	Params DustParams

	rng       *rand.Rand
	origin    Point
	particles []dustParticle
	active    bool
}

// NewDustBurst creates an idle burst.
func NewDustBurst(p DustParams, rng *rand.Rand) *DustBurst {
	if rng == nil {
		rng = rand.New(rand.NewPCG(17, 19))
	}
	return &DustBurst{Params: p, rng: rng}
}

// Active reports whether a burst is in progress.
func (d *DustBurst) Active() bool {
	return d.active
}

// Len is the number of particles in the current burst.
func (d *DustBurst) Len() int {
	return len(d.particles)
}

// Trigger starts a burst at origin. It does nothing and returns false while a
// burst is still running.
func (d *DustBurst) Trigger(origin Point, base color.RGBA) bool {
	if d.active {
		return false
	}
	p := d.Params
	r := d.rng
	d.particles = make([]dustParticle, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		angle := math.Pi*2*float64(i)/float64(p.Count) + (r.Float64()-0.5)*p.AngleJitter
		speed := p.SpeedMin + r.Float64()*p.SpeedJitter
		lifeJitter := 0
		if p.LifeJitter > 0 {
			lifeJitter = r.IntN(p.LifeJitter)
		}
		d.particles = append(d.particles, dustParticle{
			vx:      math.Cos(angle) * speed,
			vy:      math.Sin(angle)*speed - p.Lift,
			size:    p.SizeMin + r.Float64()*p.SizeJitter,
			opacity: 1,
			color: color.RGBA{
				R: d.jitter(base.R),
				G: d.jitter(base.G),
				B: d.jitter(base.B),
				A: 0xff,
			},
			maxLife: p.BaseLife + lifeJitter,
		})
	}
	d.origin = origin
	d.active = true
	return true
}

func (d *DustBurst) jitter(c uint8) uint8 {
	delta := math.Floor((d.rng.Float64() - 0.5) * d.Params.ColorJitter)
	return uint8(math.Max(0, math.Min(255, float64(c)+delta)))
}

// Deactivate drops the burst immediately.
func (d *DustBurst) Deactivate() {
	d.particles = nil
	d.active = false
}

// Tick advances one frame. Done is returned on the frame the last particle
// outlives its lifetime.
func (d *DustBurst) Tick() Status {
	if !d.active {
		return Idle
	}
	p := d.Params
	allDead := true
	for i := range d.particles {
		dp := &d.particles[i]
		dp.life++
		if dp.life > dp.maxLife {
			continue
		}
		allDead = false
		dp.x += dp.vx
		dp.y += dp.vy
		dp.vy += p.Gravity
		dp.vx *= p.Friction
		dp.opacity = math.Max(0, 1-float64(dp.life)/float64(dp.maxLife))
	}
	if allDead {
		d.Deactivate()
		return Done
	}
	return Running
}

// Quads returns the visible particles.
func (d *DustBurst) Quads() []Quad {
	if !d.active {
		return nil
	}
	out := make([]Quad, 0, len(d.particles))
	for _, dp := range d.particles {
		if dp.life > dp.maxLife {
			continue
		}
		out = append(out, Quad{
			X:     math.Floor(d.origin.X + dp.x),
			Y:     math.Floor(d.origin.Y + dp.y),
			Size:  math.Ceil(dp.size),
			Color: dp.color,
			Alpha: dp.opacity,
		})
	}
	return out
}
