// Package services implements the driving port interfaces.
// Services contain the core business logic: the domain classifier, the role
// lens builder, and the orchestrator that wires them behind the summary
// cache.
//
// Services are pure Go with no CGO. Classification and lens building perform
// no I/O at all; the only suspension points are the cache read and write in
// the orchestrator.
package services
