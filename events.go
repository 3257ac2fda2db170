package partsp

import (
	"log"
	"os"
)

// Package partsp — observability.
//
// The teacher (lvlath) is deliberately zero-dependency and reaches for the
// standard library's log package whenever its examples need to report
// something user-facing (see examples/dijkstra_city_route.go,
// examples/bfs_shortest_path_network.go). No repository in the retrieval
// pack imports a structured logging library. partsp follows suit: the
// only logging surface is the Logger interface in types.go, and the
// default implementation here is a thin wrapper over *log.Logger.

// StdLogger reports improvement events through the standard library's log
// package. It is safe for concurrent use: *log.Logger serializes its own
// writes internally.
type StdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a StdLogger writing to os.Stderr with the standard
// log package's default flags, mirroring the plain log.Printf style the
// teacher's examples use for user-facing output.
func NewStdLogger() *StdLogger {
	return &StdLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

// Improved implements Logger.
func (s *StdLogger) Improved(e Event) {
	if e.Worker < 0 {
		s.l.Printf("partsp: seed improvement cost=%g stack=%d", e.Cost, e.StackSize)
		return
	}
	s.l.Printf("partsp: worker %d improved incumbent cost=%g stack=%d", e.Worker, e.Cost, e.StackSize)
}
