package character

// Params are the load-time physics constants. Frame counts assume 60 ticks
// per second.
type Params struct {
	Speed        float64 `yaml:"speed"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Gravity      float64 `yaml:"gravity"`

	SpriteCols int `yaml:"sprite_cols"`
	PixelSize  int `yaml:"pixel_size"`

	DeadZone float64 `yaml:"dead_zone"`
	Easing   float64 `yaml:"easing"`
	Margin   float64 `yaml:"margin"`
	WalkStep float64 `yaml:"walk_step"`

	ShiverFrames  int `yaml:"shiver_frames"`
	WarpMaxFrames int `yaml:"warp_max_frames"`

	SprintAccel     float64 `yaml:"sprint_accel"`
	SprintMaxSpeed  float64 `yaml:"sprint_max_speed"`
	SprintMaxFrames int     `yaml:"sprint_max_frames"`

	ApexFrames    int `yaml:"apex_frames"`
	JumpCapBuffer int `yaml:"jump_cap_buffer"`

	BlinkMin    int `yaml:"blink_min"`
	BlinkJitter int `yaml:"blink_jitter"`
	BlinkWindow int `yaml:"blink_window"`
}

// DefaultParams returns the tuned constants.
func DefaultParams() Params {
	return Params{
		Speed:        3.5,
		JumpVelocity: -12,
		Gravity:      0.6,

		SpriteCols: 32,
		PixelSize:  4,

		DeadZone: 8,
		Easing:   0.08,
		Margin:   10,
		WalkStep: 0.15,

		ShiverFrames:  30,
		WarpMaxFrames: 240,

		SprintAccel:     0.6,
		SprintMaxSpeed:  14,
		SprintMaxFrames: 180,

		ApexFrames:    18,
		JumpCapBuffer: 30,

		BlinkMin:    180,
		BlinkJitter: 120,
		BlinkWindow: 6,
	}
}

// HalfWidth is half the sprite width in world pixels.
func (p Params) HalfWidth() float64 {
	return float64(p.SpriteCols*p.PixelSize) / 2
}

// Bounds returns the allowed x range for a viewport width. A viewport too
// narrow for the sprite collapses to its centre.
func (p Params) Bounds(viewportW float64) (lo, hi float64) {
	lo = p.HalfWidth() + p.Margin
	hi = viewportW - p.HalfWidth() - p.Margin
	if hi < lo {
		mid := viewportW / 2
		return mid, mid
	}
	return lo, hi
}

// JumpCap is the frame budget for headbutt_jump and headbutt_falling.
func (p Params) JumpCap(apexFrames int) int {
	return 2*apexFrames + p.JumpCapBuffer
}
