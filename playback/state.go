package playback

// State is the lifecycle of a scheduler run.
type State int32

const (
	StateRunning State = iota
	StateStopping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
