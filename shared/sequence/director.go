package sequence

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/bogste/pixelfolio/shared/character"
	"github.com/bogste/pixelfolio/shared/gamemath"
	"github.com/bogste/pixelfolio/shared/particles"
	"github.com/bogste/pixelfolio/shared/sprite"
	"github.com/bogste/pixelfolio/shared/zones"
)

// Input is sampled once per frame.
type Input struct {
	CursorX   float64
	ViewportW float64
	ViewportH float64
	Jump      bool
	Cancel    bool
}

// Target is what a headbutt aims at. X, Y is the bottom centre of the icon on
// screen; Color tints the dust.
type Target struct {
	Icon    string
	Section string
	X, Y    float64
	Color   color.RGBA
}

// Frame is everything the renderer and UI shell need for one frame. Slices
// and maps are rebuilt every tick.
type Frame struct {
	Number   int
	State    character.State
	NearZone string
	Events   []Event
	// InFlight are sprite cells currently drawn as particles.
	InFlight map[sprite.PixelKey]struct{}

	WarpQuads []particles.Quad
	DustQuads []particles.Quad
	Sparks    []particles.Quad
	Streaks   []particles.Quad
	Ghosts    []particles.Quad
	Bolts     []particles.Bolt

	ShiverIntensity float64
	GroundY         float64
	Portal          particles.Point
	OpenSection     string
}

type timer struct {
	at    int
	event Event
}

// Director owns the character and the three effect systems. It is the only
// writer of their state.
type Director struct {
	cfg     Config
	machine *character.Machine
	sprite  *sprite.Sprite

	state   character.State
	slot    character.Trigger
	slotSet bool

	warp  *particles.WarpSystem
	trail *particles.LightningTrail
	dust  *particles.DustBurst

	trailActive bool
	inFlight    map[sprite.PixelKey]struct{}
	warpQuads   []particles.Quad

	target      Target
	warpSection string
	openSection string
	deferred    []Event
	timers      []timer

	viewW, viewH float64
	frame        int
}

// NewDirector wires the engine for a viewport. All randomness derives from
// seed so a run can be replayed.
func NewDirector(cfg Config, sp *sprite.Sprite, seed uint64, viewportW, viewportH float64) *Director {
	if sp == nil {
		sp = sprite.Boule()
	}
	d := &Director{
		cfg:     cfg,
		sprite:  sp,
		machine: character.NewMachine(cfg.Character, rand.New(rand.NewPCG(seed, 1))),
		warp:    particles.NewWarpSystem(sp, cfg.Warp, rand.New(rand.NewPCG(seed, 2))),
		trail:   particles.NewLightningTrail(cfg.Lightning, rand.New(rand.NewPCG(seed, 3))),
		dust:    particles.NewDustBurst(cfg.Dust, rand.New(rand.NewPCG(seed, 4))),
		viewW:   viewportW,
		viewH:   viewportH,
	}
	d.state = d.machine.New(viewportW)
	return d
}

// State returns the current character state.
func (d *Director) State() character.State {
	return d.state
}

// Machine exposes the character machine's parameters to renderers.
func (d *Director) Machine() *character.Machine {
	return d.machine
}

// OpenSection is the id of the section on screen, if any.
func (d *Director) OpenSection() string {
	return d.openSection
}

// Busy reports whether a sequence is in progress or a trigger is waiting.
func (d *Director) Busy() bool {
	return d.state.Warp != character.Idle || d.slotSet || d.openSection != ""
}

// Queue puts a trigger in the single slot. It fails if the slot is taken.
func (d *Director) Queue(t character.Trigger) bool {
	if d.slotSet {
		return false
	}
	d.slot = t
	d.slotSet = true
	return true
}

// Headbutt starts a sprint-jump-impact sequence at an icon. It is ignored
// while anything else is in flight.
func (d *Director) Headbutt(t Target) bool {
	if d.Busy() {
		return false
	}
	ground := d.groundY()
	top := ground - float64(d.sprite.Rows)*d.cfg.Warp.DisplayPixel
	rise := top - t.Y
	if rise < 0 {
		rise = 0
	}
	if !d.Queue(character.Sprint(t.X, rise/d.cfg.YScale(), d.cfg.Character.ApexFrames)) {
		return false
	}
	d.target = t
	return true
}

// EnterZone acts on a hotspot: door zones warp, block zones open directly.
func (d *Director) EnterZone(id string) bool {
	if d.Busy() {
		return false
	}
	z, ok := zones.Find(d.cfg.Zones, id)
	if !ok {
		return false
	}
	if z.Kind == zones.Block {
		d.open(z.ID, &d.deferred)
		return true
	}
	if !d.Queue(character.Trigger{Kind: character.TriggerShiver}) {
		return false
	}
	d.warpSection = z.ID
	return true
}

// CloseSection hides the open section. A warped character comes back out.
func (d *Director) CloseSection() {
	d.closeSection(&d.deferred)
}

func (d *Director) closeSection(events *[]Event) {
	if d.openSection == "" {
		return
	}
	*events = append(*events, Event{Kind: EventCloseSection, Section: d.openSection})
	d.openSection = ""
	if d.state.Warp == character.Warped {
		d.Queue(character.Trigger{Kind: character.TriggerWarpOut})
	}
}

func (d *Director) open(id string, events *[]Event) {
	d.openSection = id
	*events = append(*events, Event{Kind: EventOpenSection, Section: id})
}

func (d *Director) groundY() float64 {
	return d.cfg.GroundYPercent / 100 * d.viewH
}

func (d *Director) portal() particles.Point {
	return particles.Point{
		X: d.cfg.PortalXPercent / 100 * d.viewW,
		Y: d.cfg.PortalYPercent / 100 * d.viewH,
	}
}

// Tick runs one frame: consume the trigger, advance the character, react to
// the transition, step the effects, then report.
func (d *Director) Tick(in Input) Frame {
	d.frame++
	if in.ViewportW > 0 {
		d.viewW = in.ViewportW
	}
	if in.ViewportH > 0 {
		d.viewH = in.ViewportH
	}

	events := d.deferred
	d.deferred = nil

	prev := d.state
	next := prev
	if d.slotSet {
		t := d.slot
		d.slotSet = false
		var ok bool
		if next, ok = d.machine.Apply(next, t); !ok {
			log.Printf("Warning: trigger %s ignored in state %s", t.Kind, prev.Warp)
		}
	}
	if in.Jump && next.Warp == character.Idle {
		next = d.machine.Jump(next)
	}
	cursor := gamemath.Clamp(in.CursorX, 0, d.viewW)
	next = d.machine.Advance(next, cursor, d.viewW)
	d.state = next

	d.handleEdges(prev, next, &events)

	if in.Cancel {
		d.closeSection(&events)
	}

	d.stepWarp(&events)
	d.stepTrail()
	d.dust.Tick()
	d.fireTimers(&events)

	return d.frameOut(events)
}

func (d *Director) handleEdges(prev, next character.State, events *[]Event) {
	entered := prev.Warp != next.Warp

	if next.ForcedExit {
		log.Printf("Warning: %s forced to %s by safety cap at frame %d", prev.Warp, next.Warp, d.frame)
		*events = append(*events, Event{Kind: EventForced, From: prev.Warp})
	}

	feet := particles.Point{X: next.X, Y: d.groundY()}
	d.warp.Mirror = next.Direction == character.Left

	switch {
	case entered && next.Warp == character.WarpingIn:
		d.warp.Activate(particles.Shed, feet, d.portal())

	case entered && next.Warp == character.WarpingOut:
		d.warp.Deactivate()
		d.warp.Activate(particles.Integrate, feet, d.portal())

	case entered && prev.Warp == character.WarpingIn && next.Warp == character.Warped:
		d.warp.Deactivate()
		d.inFlight = nil
		d.warpQuads = nil
		section := d.warpSection
		d.warpSection = ""
		if section != "" {
			d.open(section, events)
		}

	case entered && prev.Warp == character.WarpingOut && next.Warp == character.Idle:
		d.warp.Deactivate()
		d.inFlight = nil
		d.warpQuads = nil
		*events = append(*events, Event{Kind: EventWarpFinished})

	case entered && next.Warp == character.HeadbuttSprint:
		d.trailActive = true

	case !entered && next.Warp == character.HeadbuttJump && prev.VelocityY < 0 && next.VelocityY >= 0:
		d.impact(events)

	case entered && prev.Warp == character.HeadbuttFalling && next.Warp == character.Idle:
		d.trailActive = false
		section := d.target.Section
		d.target = Target{}
		if section != "" {
			d.open(section, events)
		}

	case entered && next.Warp == character.Idle && prev.Warp.Headbutt():
		// Sprint or jump cut short by a cap.
		d.trailActive = false
		d.target = Target{}
	}
}

func (d *Director) impact(events *[]Event) {
	t := d.target
	*events = append(*events, Event{Kind: EventImpact, Icon: t.Icon, Section: t.Section})
	d.dust.Trigger(particles.Point{X: t.X, Y: t.Y}, t.Color)
	d.trailActive = false
	if !d.Queue(character.Trigger{Kind: character.TriggerFall}) {
		log.Printf("Warning: fall trigger dropped at frame %d", d.frame)
	}
	d.timers = append(d.timers, timer{
		at:    d.frame + d.cfg.IconPopDelay,
		event: Event{Kind: EventIconPop, Icon: t.Icon, Section: t.Section},
	})
}

func (d *Director) stepWarp(events *[]Event) {
	tick := d.warp.Tick()
	if tick.Status == particles.Idle {
		return
	}
	d.inFlight = tick.InFlight
	d.warpQuads = tick.Quads
	if tick.Status != particles.Done {
		return
	}
	if d.warp.Forced() {
		log.Printf("Warning: %s particles forced complete at frame %d", d.warp.Mode(), d.frame)
	}
	if !d.Queue(character.Trigger{Kind: character.TriggerWarpComplete}) {
		log.Printf("Warning: warp completion dropped at frame %d", d.frame)
	}
}

func (d *Director) stepTrail() {
	intensity := 1.0
	if d.state.Warp == character.HeadbuttSprint && d.cfg.Character.SprintMaxSpeed > 0 {
		intensity = d.state.SprintSpeed / d.cfg.Character.SprintMaxSpeed
	}
	d.trail.Update(d.state.X, d.groundY(), intensity, d.trailActive)
}

func (d *Director) fireTimers(events *[]Event) {
	kept := d.timers[:0]
	for _, t := range d.timers {
		if t.at <= d.frame {
			*events = append(*events, t.event)
			continue
		}
		kept = append(kept, t)
	}
	d.timers = kept
}

func (d *Director) frameOut(events []Event) Frame {
	f := Frame{
		Number:          d.frame,
		State:           d.state,
		Events:          events,
		InFlight:        d.inFlight,
		WarpQuads:       d.warpQuads,
		DustQuads:       d.dust.Quads(),
		Sparks:          d.trail.Sparks(),
		Streaks:         d.trail.Streaks(),
		Ghosts:          d.trail.Ghosts(),
		Bolts:           d.trail.Bolts(),
		ShiverIntensity: d.machine.ShiverIntensity(d.state),
		GroundY:         d.groundY(),
		Portal:          d.portal(),
		OpenSection:     d.openSection,
	}
	if d.state.Warp == character.Idle {
		if id, ok := zones.Resolve(d.state.X, d.viewW, d.cfg.Zones, d.cfg.ZoneThreshold); ok {
			f.NearZone = id
		}
	}
	return f
}
