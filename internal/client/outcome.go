package client

import (
	"errors"
	"fmt"
)

// outcomeKind tags the result of a network attempt.
type outcomeKind int

const (
	// outcomeLive means the endpoint answered and the body decoded.
	outcomeLive outcomeKind = iota
	// outcomeDegraded covers every expected failure: forced mock mode,
	// transport errors, timeouts, non-2xx statuses and undecodable bodies.
	// The caller serves seed data instead.
	outcomeDegraded
	// outcomeDefect means the attempt could not even be built. It is
	// returned to the caller and never served from the seed.
	outcomeDefect
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeLive:
		return "live"
	case outcomeDegraded:
		return "degraded"
	case outcomeDefect:
		return "defect"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// outcome is the tagged result of one network attempt.
type outcome[T any] struct {
	kind  outcomeKind
	value T
	err   error
}

func live[T any](v T) outcome[T] {
	return outcome[T]{kind: outcomeLive, value: v}
}

func degraded[T any](reason error) outcome[T] {
	return outcome[T]{kind: outcomeDegraded, err: reason}
}

func defect[T any](err error) outcome[T] {
	return outcome[T]{kind: outcomeDefect, err: err}
}

// errForcedMock is the degradation reason when mock mode is forced.
var errForcedMock = errors.New("mock mode forced")

// statusError reports a non-2xx response.
type statusError struct {
	op     string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.op, e.status)
}
