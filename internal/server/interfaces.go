package server

// Server is the lifecycle contract the main binary drives: [Server.RunServer]
// blocks serving the GhostNote API until a stop signal arrives or
// [Server.Shutdown] is called, and Shutdown drains in-flight requests before
// releasing the listener.
type Server interface {
	RunServer()
	Shutdown()
}
