package server

// Server defines the lifecycle contract for the listener group managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until every listener
	// stops.
	RunServer()

	// Shutdown gracefully stops the listeners and frees associated
	// resources.
	Shutdown()
}
