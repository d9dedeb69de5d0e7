package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mindelay/core"
	"github.com/katalvlaran/mindelay/dijkstra"
	"github.com/katalvlaran/mindelay/internal/config"
	"github.com/katalvlaran/mindelay/loader"
)

// Kind classifies a failure into the fixed set of outcomes reported to users.
type Kind int

// Failure kinds. The zero value is not a valid Kind.
const (
	KindInvalidParameters Kind = iota + 1
	KindOutOfMemory
	KindInvalidNodeFile
	KindInvalidEdgeFile
	KindMalformedRecord
	KindDuplicateNode
	KindUnknownNode
	KindInvalidSource
	KindInvalidDest
	KindNoPath
	KindOutputCreation
	KindOutputWrite
	KindCanceled
	KindConfig
	KindInternal
)

var kindText = map[Kind]struct{ name, message string }{
	KindInvalidParameters: {"invalid_parameters", "Invalid number of parameters."},
	KindOutOfMemory:       {"out_of_memory", "Cannot allocate new memory."},
	KindInvalidNodeFile:   {"invalid_node_file", "Cannot open nodes file. No such file or directory."},
	KindInvalidEdgeFile:   {"invalid_edge_file", "Cannot open edges file. No such file or directory."},
	KindMalformedRecord:   {"malformed_record", "Malformed record in input file."},
	KindDuplicateNode:     {"duplicate_node", "Duplicate node id in nodes file."},
	KindUnknownNode:       {"unknown_node", "Edge references an unknown node."},
	KindInvalidSource:     {"invalid_source", "Invalid source node id."},
	KindInvalidDest:       {"invalid_dest", "Invalid destination node id."},
	KindNoPath:            {"no_path", "No path exists between these two nodes."},
	KindOutputCreation:    {"output_creation", "Cannot create new file to print data in."},
	KindOutputWrite:       {"output_write", "Cannot write shortest path output."},
	KindCanceled:          {"canceled", "Operation canceled."},
	KindConfig:            {"config", "Invalid configuration."},
	KindInternal:          {"internal", "Internal error."},
}

// String returns a snake_case name suitable for logs and metrics.
func (k Kind) String() string {
	if t, ok := kindText[k]; ok {
		return t.name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Message returns the one-line, user-facing description of k.
func (k Kind) Message() string {
	if t, ok := kindText[k]; ok {
		return t.message
	}
	return kindText[KindInternal].message
}

// Error is a classified failure. Err keeps the full cause for logs.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Message()
	}
	return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// newError wraps err with an explicit kind.
func newError(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

// Classify returns err as an *Error, deriving the Kind from the sentinel
// errors in its chain when err is not classified yet. Classify(nil) is nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return newError(kindOf(err), err)
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, core.ErrMaxNodesExceeded), errors.Is(err, core.ErrMaxEdgesExceeded):
		return KindOutOfMemory
	case errors.Is(err, loader.ErrNodesFile):
		return KindInvalidNodeFile
	case errors.Is(err, loader.ErrEdgesFile):
		return KindInvalidEdgeFile
	case errors.Is(err, loader.ErrMalformedRecord):
		return KindMalformedRecord
	case errors.Is(err, core.ErrDuplicateNode):
		return KindDuplicateNode
	case errors.Is(err, core.ErrUnknownNode):
		return KindUnknownNode
	case errors.Is(err, dijkstra.ErrInvalidDest):
		return KindInvalidDest
	case errors.Is(err, dijkstra.ErrInvalidSource):
		return KindInvalidSource
	case errors.Is(err, dijkstra.ErrNoPath):
		return KindNoPath
	case errors.Is(err, config.ErrInvalid):
		return KindConfig
	default:
		return KindInternal
	}
}

// Message returns the user-facing line for err, or "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return Classify(err).Kind.Message()
}

// ExitCode maps err to the process exit status: 0 for nil, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
