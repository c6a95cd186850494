package tilt

// DefaultEasing is the transition curve used when Config.Easing is empty.
// The closing parenthesis is optional; ParseEasing accepts both forms.
const DefaultEasing = "cubic-bezier(0.03, 0.98, 0.52, 0.99)"

// Config controls a Controller. It is copied at construction and never
// changes afterwards.
type Config struct {
	// Reverse inverts both tilt directions.
	Reverse bool
	// Max is the full tilt range in degrees; each axis swings ±Max/2.
	Max float64
	// Perspective is the viewer distance in pixels.
	Perspective float64
	// Easing names the transition curve. See ParseEasing.
	Easing string
	// Scale is the uniform scale applied while the pointer tracks the surface.
	Scale float64
	// Speed is the transition duration in milliseconds.
	Speed float64
	// Transition enables eased motion on enter and leave.
	Transition bool
	// Axis locks one rotation at zero.
	Axis Axis
	// Reset returns the surface to neutral when the pointer leaves.
	Reset bool
}

// DefaultConfig returns the default tilt settings.
func DefaultConfig() Config {
	return Config{
		Max:         6,
		Perspective: 1000,
		Easing:      DefaultEasing,
		Scale:       0.96,
		Speed:       1000,
		Transition:  true,
		Axis:        AxisNone,
		Reset:       true,
	}
}

// Option overrides one Config field.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithReverse sets Config.Reverse.
func WithReverse(reverse bool) Option {
	return func(c *Config) { c.Reverse = reverse }
}

// WithMax sets Config.Max.
func WithMax(degrees float64) Option {
	return func(c *Config) { c.Max = degrees }
}

// WithPerspective sets Config.Perspective.
func WithPerspective(px float64) Option {
	return func(c *Config) { c.Perspective = px }
}

// WithEasing sets Config.Easing.
func WithEasing(easing string) Option {
	return func(c *Config) { c.Easing = easing }
}

// WithScale sets Config.Scale.
func WithScale(scale float64) Option {
	return func(c *Config) { c.Scale = scale }
}

// WithSpeed sets Config.Speed.
func WithSpeed(ms float64) Option {
	return func(c *Config) { c.Speed = ms }
}

// WithTransition sets Config.Transition.
func WithTransition(enabled bool) Option {
	return func(c *Config) { c.Transition = enabled }
}

// WithAxis sets Config.Axis.
func WithAxis(axis Axis) Option {
	return func(c *Config) { c.Axis = axis }
}

// WithReset sets Config.Reset.
func WithReset(reset bool) Option {
	return func(c *Config) { c.Reset = reset }
}
