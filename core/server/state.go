package server

// State is a step of the server lifecycle.
type State int32

const (
	StateInit State = iota
	StatePortSelected
	StateServing
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePortSelected:
		return "port_selected"
	case StateServing:
		return "serving"
	case StateShuttingDown:
		return "shutting_down"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
