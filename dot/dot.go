// Package dot renders a shortest path as a Graphviz DOT digraph.
//
// Output format, one edge statement per hop in travel order:
//
//	digraph {
//		1 -> 2 [label=5];
//		2 -> 3 [label=3];
//	}
//
// A path with no hops (source == destination) renders as an empty digraph.
package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mindelay/dijkstra"
)

// ErrNilPath indicates Write was called without a path.
var ErrNilPath = errors.New("dot: path is nil")

// Options configures Write.
type Options struct {
	// Name is the graph id; empty renders an anonymous digraph.
	Name string
}

// Option represents a functional option for Write.
type Option func(*Options)

// WithName sets the digraph id. Names that are not plain identifiers are quoted.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// Write renders p to w. Output is buffered and flushed before returning; the
// first write or flush error is returned.
func Write(w io.Writer, p *dijkstra.Path, opts ...Option) error {
	if p == nil {
		return ErrNilPath
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	if cfg.Name == "" {
		_, _ = bw.WriteString("digraph {\n")
	} else {
		_, _ = fmt.Fprintf(bw, "digraph %s {\n", graphID(cfg.Name))
	}
	for _, h := range p.Hops {
		_, _ = fmt.Fprintf(bw, "\t%d -> %d [label=%d];\n", h.From, h.To, h.Weight)
	}
	_, _ = bw.WriteString("}\n")

	// bufio.Writer is sticky: Flush reports the first error of any write above.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}
	return nil
}

// graphID returns name unchanged if it is a DOT identifier, quoted otherwise.
func graphID(name string) string {
	if isIdent(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
}

func isIdent(s string) bool {
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
