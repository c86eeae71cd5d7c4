// Package server wires and runs the application's HTTP listeners.
//
// It provides orchestration for the API server and the optional standalone
// metrics server, including startup, signal handling, and graceful shutdown
// of every enabled listener.
package server
