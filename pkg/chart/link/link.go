// Package link routes the connectors between a person and their parents.
//
// Routing is a pure function of the two box centres and the orientation:
// paths start on the source box edge facing the parents and end on the
// target box edge facing the child, so boxes may be drawn before or after
// the connectors without the line ends showing.
package link

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pedigree/pkg/chart/geometry"
	"github.com/matzehuels/pedigree/pkg/chart/layout"
	"github.com/matzehuels/pedigree/pkg/chart/orientation"
)

// Routed pairs a link with its connector path.
type Routed struct {
	Link layout.Link
	Path geometry.Path
}

// Router computes connector paths. The zero value discards log output.
type Router struct {
	Logger *log.Logger
}

// NewRouter returns a router that logs skipped links to logger.
func NewRouter(logger *log.Logger) *Router {
	return &Router{Logger: logger}
}

func (r *Router) logger() *log.Logger {
	if r == nil || r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// Path returns the connector for l. Links without a target are drawn as
// straight segments through l.Stack; fewer than two stacked boxes yield an
// empty path.
func (r *Router) Path(l layout.Link, o orientation.Orientation) geometry.Path {
	if l.Source == nil {
		return nil
	}
	if l.Target == nil {
		return o.Stacked(l.Stack)
	}
	return o.Elbow(l.Source.Point(), l.Target.Point())
}

// Paths routes every link of res. Links whose endpoints do not belong to
// res are skipped and logged.
func (r *Router) Paths(res *layout.Result, o orientation.Orientation) []Routed {
	out := make([]Routed, 0, len(res.Links))
	for _, l := range res.Links {
		if !res.Contains(l.Source) || (l.Target != nil && !res.Contains(l.Target)) {
			r.logger().Warn("skipping detached link", "build", res.BuildID, "source", nodeID(l.Source), "target", nodeID(l.Target))
			continue
		}
		p := r.Path(l, o)
		if len(p) == 0 {
			r.logger().Debug("empty connector", "source", l.Source.ID)
			continue
		}
		out = append(out, Routed{Link: l, Path: p})
	}
	return out
}

func nodeID(p *layout.Positioned) any {
	if p == nil {
		return nil
	}
	return p.ID
}
