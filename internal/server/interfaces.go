package server

// Server is the lifecycle of the account service process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then drains
	// in-flight requests. It returns early with an error if the listener
	// cannot be opened or serving fails.
	RunServer() error

	Shutdown()
}
