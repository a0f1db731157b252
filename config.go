package ink

// Config tunes point capture and simplification.
// All values must be non-negative; use Validate at the boundary.
type Config struct {
	// Epsilon is the maximum perpendicular deviation tolerated when a
	// point is dropped during simplification.
	Epsilon float64 `json:"epsilon"`

	// MinDistance rejects committed segments shorter than this.
	MinDistance float64 `json:"minDistance"`

	// Quantization snaps coordinates to this grid step. Zero disables
	// quantization.
	Quantization float64 `json:"quantization"`
}

// DefaultConfig returns the capture configuration used by the
// reference host: quarter-pixel quantization, one-pixel minimum
// segment length, and a two-pixel simplification tolerance.
func DefaultConfig() Config {
	return Config{
		Epsilon:      2,
		MinDistance:  1,
		Quantization: 0.25,
	}
}

// Validate reports the first negative field, if any. Zero values are
// legal; they disable the corresponding filter.
func (c Config) Validate() error {
	switch {
	case c.Epsilon < 0:
		return &ConfigError{Field: "epsilon", Value: c.Epsilon}
	case c.MinDistance < 0:
		return &ConfigError{Field: "minDistance", Value: c.MinDistance}
	case c.Quantization < 0:
		return &ConfigError{Field: "quantization", Value: c.Quantization}
	}
	return nil
}

// Viewport is the rectangular region currently rendered. A zero-area
// viewport is degenerate but legal; culling against it simply keeps
// only strokes touching the degenerate rectangle.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
