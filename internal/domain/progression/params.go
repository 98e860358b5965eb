package progression

// Params defines the configurable parameters for the progression rules.
type Params struct {
	// XPPerLevel is the amount of experience that spans one level.
	// Level is floor(experience/XPPerLevel) + 1.
	XPPerLevel int

	// PassThreshold is the minimum score on a lesson attempt that counts
	// as completing the lesson.
	PassThreshold int

	// MaxHearts caps the hearts currency when hearts are refilled.
	MaxHearts int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values leave the corresponding default in place.
type ParamsConfig struct {
	XPPerLevel    int
	PassThreshold int
	MaxHearts     int
}

// NewDefaultParams creates a new Params instance with default values:
// 100 XP per level, a pass threshold of 80/100, and 5 hearts.
func NewDefaultParams() *Params {
	return &Params{
		XPPerLevel:    100,
		PassThreshold: 80,
		MaxHearts:     5,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.XPPerLevel > 0 {
		params.XPPerLevel = config.XPPerLevel
	}
	if config.PassThreshold > 0 {
		params.PassThreshold = config.PassThreshold
	}
	if config.MaxHearts > 0 {
		params.MaxHearts = config.MaxHearts
	}

	return params
}
