package config

// DotPhaseID is the animation phase of a single dot
type DotPhaseID int

const (
	DotRest DotPhaseID = iota
	DotDisplacing
	DotReturning
)

func (p DotPhaseID) String() string {
	switch p {
	case DotRest:
		return "rest"
	case DotDisplacing:
		return "displacing"
	case DotReturning:
		return "returning"
	}
	return "unknown"
}

// IntroStateID is the state of the intro overlay
type IntroStateID int

const (
	IntroActive IntroStateID = iota
	IntroFading
	IntroDismissed
)
