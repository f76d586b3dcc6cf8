package wave

// DrawMode is how sampled points are put on screen.
type DrawMode int

const (
	Curve DrawMode = iota
	Circle
	CircleTransparent

	drawModeCount = int(CircleTransparent) + 1
)

func (m DrawMode) String() string {
	switch m {
	case Curve:
		return "curve"
	case Circle:
		return "circle"
	case CircleTransparent:
		return "circle (transparent)"
	}
	return "unknown"
}

// Next cycles Curve -> Circle -> CircleTransparent -> Curve.
func (m DrawMode) Next() DrawMode {
	n := m + 1
	if int(n) >= drawModeCount || n < 0 {
		return Curve
	}
	return n
}

const (
	DefaultAmplitude    = 4.0
	DefaultInterval     = 0.1
	DefaultPeriod       = 1.0
	DefaultMarkerRadius = 24.0

	MinInterval  = 0.1
	MinPeriod    = 0.1
	MinFrameRate = 1

	AmplitudeStep = 5.0
	PeriodStep    = 0.1
	IntervalStep  = 0.1
	FrameRateStep = 10
	RadiusStep    = 1.0

	// PhaseStep is how far the wave scrolls every frame.
	PhaseStep = 1.0
)

// State holds every parameter of the plotted wave.
type State struct {
	Amplitude     float64
	Interval      float64
	Period        float64
	PhaseShift    float64
	VerticalShift float64
	Function      Function
	Mode          DrawMode
	FrameRate     int
	MarkerRadius  float64
}

// NewState returns the startup parameters for a loop running at fps.
func NewState(fps int) State {
	s := State{
		Amplitude:    DefaultAmplitude,
		Interval:     DefaultInterval,
		Period:       DefaultPeriod,
		Function:     Sine,
		Mode:         Curve,
		FrameRate:    fps,
		MarkerRadius: DefaultMarkerRadius,
	}
	s.clamp()
	return s
}

// Advance moves the wave forward by one frame.
func (s *State) Advance() {
	s.PhaseShift += PhaseStep
}

// Apply performs a single action and reports whether the frame rate changed.
// Close and unknown actions leave the state untouched.
func (s *State) Apply(a Action) (frameRateChanged bool) {
	switch a {
	case AmplitudeUp:
		s.Amplitude += AmplitudeStep
	case AmplitudeDown:
		s.Amplitude -= AmplitudeStep
	case PeriodDown:
		s.Period -= PeriodStep
	case PeriodUp:
		s.Period += PeriodStep
	case FrameRateUp:
		s.FrameRate += FrameRateStep
		frameRateChanged = true
	case FrameRateDown:
		s.FrameRate -= FrameRateStep
		frameRateChanged = true
	case RadiusUp:
		s.MarkerRadius += RadiusStep
	case RadiusDown:
		s.MarkerRadius -= RadiusStep
	case IntervalDown:
		s.Interval -= IntervalStep
	case IntervalUp:
		s.Interval += IntervalStep
	case NextDrawMode:
		s.Mode = s.Mode.Next()
	case NextFunction:
		s.Function = s.Function.Next()
	}
	s.clamp()
	return frameRateChanged
}

// clamp restores the lower bounds. MarkerRadius has no bound.
func (s *State) clamp() {
	if s.Interval < MinInterval {
		s.Interval = MinInterval
	}
	if s.Period < MinPeriod {
		s.Period = MinPeriod
	}
	if s.FrameRate < MinFrameRate {
		s.FrameRate = MinFrameRate
	}
	if !s.Function.Valid() {
		s.Function = Sine
	}
}
