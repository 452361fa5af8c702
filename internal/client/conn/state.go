package conn

// State состояние соединения
type State int

const (
	Disconnected State = iota
	Connecting
	Open
	Closed
	Reconnecting
	PermanentlyClosed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Reconnecting:
		return "reconnecting"
	case PermanentlyClosed:
		return "permanently_closed"
	}
	return "unknown"
}
