package wave

// Action is a single user request against the wave parameters.
type Action int

const (
	None Action = iota
	Close
	AmplitudeUp
	AmplitudeDown
	PeriodDown
	PeriodUp
	FrameRateUp
	FrameRateDown
	RadiusUp
	RadiusDown
	IntervalDown
	IntervalUp
	NextDrawMode
	NextFunction
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case Close:
		return "close"
	case AmplitudeUp:
		return "amplitude+"
	case AmplitudeDown:
		return "amplitude-"
	case PeriodDown:
		return "period-"
	case PeriodUp:
		return "period+"
	case FrameRateUp:
		return "fps+"
	case FrameRateDown:
		return "fps-"
	case RadiusUp:
		return "radius+"
	case RadiusDown:
		return "radius-"
	case IntervalDown:
		return "interval-"
	case IntervalUp:
		return "interval+"
	case NextDrawMode:
		return "mode"
	case NextFunction:
		return "function"
	}
	return "unknown"
}
