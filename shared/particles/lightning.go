package particles

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// LightningParams tune the trail. Times are in seconds.
type LightningParams struct {
	Step         float64 `yaml:"step"`
	DecayFrames  int     `yaml:"decay_frames"`
	SourceHeight float64 `yaml:"source_height"`
	Snap         float64 `yaml:"snap"`
	SparkGravity float64 `yaml:"spark_gravity"`
}

// DefaultLightningParams returns the tuned constants.
func DefaultLightningParams() LightningParams {
	return LightningParams{
		Step:         1.0 / 60,
		DecayFrames:  30,
		SourceHeight: 40,
		Snap:         4,
		SparkGravity: 40,
	}
}

var (
	boltWhite  = color.RGBA{255, 255, 200, 255}
	boltYellow = color.RGBA{255, 220, 50, 255}
	boltAmber  = color.RGBA{255, 180, 20, 255}
	arcGold    = color.RGBA{255, 230, 80, 255}
	arcOrange  = color.RGBA{255, 200, 40, 255}
	trailGold  = color.RGBA{255, 210, 30, 255}
	branchGold = color.RGBA{255, 220, 60, 255}
	sparkHot   = color.RGBA{255, 220, 50, 255}
	sparkPale  = color.RGBA{255, 250, 180, 255}
)

type lightningPhase int

const (
	phaseOff lightningPhase = iota
	phaseActive
	phaseDecay
)

type ghost struct {
	x, y    float64
	opacity float64
	born    float64
	life    float64
}

type liveBolt struct {
	points []Point
	born   float64
	life   float64
	color  color.RGBA
	width  float64
}

type spark struct {
	x, y, vx, vy float64
	size         float64
	born, life   float64
	color        color.RGBA
}

// LightningTrail follows a moving source with short-lived bolts and, once
// deactivated, fades out with branching arcs and falling sparks.
type LightningTrail struct {
	Params LightningParams

	rng *rand.Rand

	phase      lightningPhase
	source     Point
	prevX      float64
	intensity  float64
	time       float64
	lastGhost  float64
	decayFrame int

	ghosts  []ghost
	bolts   []liveBolt
	sparks  []spark
	streaks []Quad
}

// NewLightningTrail creates an idle trail.
func NewLightningTrail(p LightningParams, rng *rand.Rand) *LightningTrail {
	if rng == nil {
		rng = rand.New(rand.NewPCG(11, 13))
	}
	return &LightningTrail{Params: p, rng: rng}
}

// Running reports whether the trail is active or decaying.
func (l *LightningTrail) Running() bool {
	return l.phase != phaseOff
}

// Decaying reports whether the trail is in its fade-out.
func (l *LightningTrail) Decaying() bool {
	return l.phase == phaseDecay
}

// Update advances one frame. The source sits SourceHeight above groundY.
// Flipping active to false starts the decay; Done is returned once the decay
// window is over and nothing is left alive. Turning active back on during the
// decay drops the fade and starts over.
func (l *LightningTrail) Update(sourceX, groundY, intensity float64, active bool) Status {
	switch {
	case l.phase == phaseOff && !active:
		return Idle
	case l.phase == phaseOff, l.phase == phaseDecay && active:
		// Reactivating mid-fade starts a fresh trail.
		l.start(sourceX)
	case l.phase == phaseActive && !active:
		l.phase = phaseDecay
		l.decayFrame = 0
	}

	dt := l.Params.Step
	l.time += dt
	l.source = Point{X: sourceX, Y: groundY - l.Params.SourceHeight}
	l.intensity = math.Max(0, math.Min(1, intensity))
	l.streaks = nil

	if l.phase == phaseDecay {
		l.decay()
	} else if l.intensity > 0.05 {
		l.generate()
	}
	l.prevX = l.source.X

	l.expire(dt)

	if l.phase == phaseDecay && l.decayFrame > l.Params.DecayFrames &&
		len(l.bolts) == 0 && len(l.sparks) == 0 {
		l.Stop()
		return Done
	}
	return Running
}

// Stop clears everything without a fade-out.
func (l *LightningTrail) Stop() {
	l.phase = phaseOff
	l.ghosts = nil
	l.bolts = nil
	l.sparks = nil
	l.streaks = nil
	l.decayFrame = 0
	l.time = 0
	l.lastGhost = 0
}

func (l *LightningTrail) start(sourceX float64) {
	l.Stop()
	l.phase = phaseActive
	l.prevX = sourceX
}

func (l *LightningTrail) generate() {
	r := l.rng
	inten := l.intensity
	src := l.source

	interval := 0.05
	if inten > 0.7 {
		interval = 0.025
	}
	if l.time-l.lastGhost > interval {
		l.ghosts = append(l.ghosts, ghost{
			x: src.X, y: src.Y,
			opacity: 0.4 * inten,
			born:    l.time,
			life:    0.6 + inten*0.3,
		})
		l.lastGhost = l.time
	}

	// Arcs from the source back to a recent ghost.
	if r.Float64() < 0.8*inten {
		var recent []ghost
		for _, g := range l.ghosts {
			if l.time-g.born < 0.25 {
				recent = append(recent, g)
			}
		}
		if len(recent) > 0 {
			g := recent[r.IntN(len(recent))]
			to := Point{X: g.x + (r.Float64()-0.5)*20, Y: g.y + (r.Float64()-0.5)*30}
			c := boltAmber
			switch b := r.Float64(); {
			case b > 0.6:
				c = boltWhite
			case b > 0.3:
				c = boltYellow
			}
			l.bolts = append(l.bolts, liveBolt{
				points: GenerateBolt(r, src, to, 4, 15),
				born:   l.time,
				life:   0.04 + r.Float64()*0.06,
				color:  c,
				width:  float64(1 + r.IntN(2)),
			})
		}
	}

	// Ambient arcs.
	if r.Float64() < 0.6*inten {
		from := Point{X: src.X + (r.Float64()-0.5)*30, Y: src.Y - 10}
		angle := r.Float64() * math.Pi * 2
		length := 12 + r.Float64()*45
		to := Point{X: from.X + math.Cos(angle)*length, Y: from.Y + math.Sin(angle)*length}
		c := arcOrange
		if r.Float64() > 0.5 {
			c = arcGold
		}
		l.bolts = append(l.bolts, liveBolt{
			points: GenerateBolt(r, from, to, 3, 8),
			born:   l.time,
			life:   0.03 + r.Float64()*0.05,
			color:  c,
			width:  1,
		})
	}

	// Long bolt trailing opposite the direction of travel.
	if inten > 0.5 && r.Float64() < 0.3*inten {
		from := Point{X: src.X, Y: src.Y + (r.Float64()-0.5)*20}
		dir := 1.0
		if src.X-l.prevX < 0 {
			dir = -1
		}
		to := Point{
			X: from.X - dir*(60+r.Float64()*100),
			Y: from.Y + (r.Float64()-0.5)*50,
		}
		l.bolts = append(l.bolts, liveBolt{
			points: GenerateBolt(r, from, to, 5, 20),
			born:   l.time,
			life:   0.06 + r.Float64()*0.06,
			color:  trailGold,
			width:  2,
		})
	}

	if inten > 0.3 {
		strength := math.Min((inten-0.3)/0.7, 1)
		for i := 0; float64(i) < 10*strength; i++ {
			y := src.Y + (r.Float64()-0.5)*80
			l.streaks = append(l.streaks, Quad{
				X:     src.X - (r.Float64()-0.5)*200,
				Y:     l.snap(y),
				Size:  30 + r.Float64()*100*strength,
				Color: boltYellow,
				Alpha: 0.02 + r.Float64()*0.04*strength,
			})
		}
	}
}

func (l *LightningTrail) decay() {
	r := l.rng
	l.decayFrame++
	if l.decayFrame > l.Params.DecayFrames || r.Float64() <= 0.35 {
		return
	}
	src := l.source

	angle := r.Float64() * math.Pi * 2
	life := 0.08 + r.Float64()*0.12
	for _, line := range GenerateBranch(r, src, angle, 25+r.Float64()*55, 0) {
		if len(line) < 2 {
			continue
		}
		l.bolts = append(l.bolts, liveBolt{points: line, born: l.time, life: life, color: branchGold, width: 1})
	}

	for i := 0; i < 3; i++ {
		size := l.Params.Snap
		if r.Float64() > 0.5 {
			size *= 2
		}
		c := sparkPale
		if r.Float64() > 0.5 {
			c = sparkHot
		}
		l.sparks = append(l.sparks, spark{
			x:     l.snap(src.X + (r.Float64()-0.5)*100),
			y:     l.snap(src.Y + (r.Float64()-0.5)*70),
			vx:    (r.Float64() - 0.5) * 80,
			vy:    (r.Float64()-0.5)*50 - 25,
			size:  size,
			born:  l.time,
			life:  0.3 + r.Float64()*0.6,
			color: c,
		})
	}
}

func (l *LightningTrail) expire(dt float64) {
	ghosts := l.ghosts[:0]
	for _, g := range l.ghosts {
		t := (l.time - g.born) / g.life
		g.opacity *= 1 - t*0.8
		if t < 1 {
			ghosts = append(ghosts, g)
		}
	}
	l.ghosts = ghosts

	bolts := l.bolts[:0]
	for _, b := range l.bolts {
		if l.time-b.born < b.life {
			bolts = append(bolts, b)
		}
	}
	l.bolts = bolts

	sparks := l.sparks[:0]
	for _, s := range l.sparks {
		s.x += s.vx * dt
		s.y += s.vy * dt
		s.vy += l.Params.SparkGravity * dt
		if l.time-s.born < s.life {
			sparks = append(sparks, s)
		}
	}
	l.sparks = sparks
}

func (l *LightningTrail) snap(v float64) float64 {
	if l.Params.Snap <= 0 {
		return v
	}
	return math.Round(v/l.Params.Snap) * l.Params.Snap
}

// Bolts returns the live bolts, snapped to the pixel grid, with their fade.
func (l *LightningTrail) Bolts() []Bolt {
	out := make([]Bolt, 0, len(l.bolts))
	for _, b := range l.bolts {
		pts := make([]Point, len(b.points))
		for i, p := range b.points {
			pts[i] = Point{X: l.snap(p.X), Y: l.snap(p.Y)}
		}
		out = append(out, Bolt{
			Points: pts,
			Color:  b.color,
			Width:  b.width,
			Alpha:  1 - (l.time-b.born)/b.life,
		})
	}
	return out
}

// Sparks returns the decay particles.
func (l *LightningTrail) Sparks() []Quad {
	out := make([]Quad, 0, len(l.sparks))
	for _, s := range l.sparks {
		out = append(out, Quad{
			X:     l.snap(s.x),
			Y:     l.snap(s.y),
			Size:  s.size,
			Color: s.color,
			Alpha: math.Max(0, 1-(l.time-s.born)/s.life),
		})
	}
	return out
}

// Streaks returns this frame's speed streaks. Size is the streak length;
// every streak is Snap pixels tall.
func (l *LightningTrail) Streaks() []Quad {
	return l.streaks
}

// Ghosts returns the trailing afterimage positions.
func (l *LightningTrail) Ghosts() []Quad {
	out := make([]Quad, 0, len(l.ghosts))
	for _, g := range l.ghosts {
		out = append(out, Quad{X: g.x, Y: g.y, Size: l.Params.Snap, Color: boltYellow, Alpha: g.opacity})
	}
	return out
}
