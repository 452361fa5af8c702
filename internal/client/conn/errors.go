package conn

import "errors"

var (
	// ErrUnsupportedTransport is returned for a page URL that cannot be upgraded or a missing dialer
	ErrUnsupportedTransport = errors.New("unsupported transport")
	// ErrConnectionLost is returned by Run once the reconnect limit is exhausted
	ErrConnectionLost = errors.New("connection lost")
	// ErrNotConnected is returned when a write is attempted without an open connection
	ErrNotConnected = errors.New("not connected")
)
