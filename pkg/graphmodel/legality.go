package graphmodel

import (
	gerrors "github.com/wesen/nodegraph/pkg/errors"
	"github.com/wesen/nodegraph/pkg/nodetype"
)

// CheckConnection reports why c may not be committed, or nil if it may.
// The checks, in order: both ports exist with the right direction, the
// input is free, the value types are compatible, and the new edge closes
// no cycle.
//
// The cycle check only explores what is reachable from c.To: the graph is
// acyclic before the edge is added, so the edge closes a cycle exactly
// when c.To already reaches c.From.
func CheckConnection(g *Graph, c Connection) error {
	src, dst := g.nodes[c.From], g.nodes[c.To]
	if src == nil || dst == nil {
		return gerrors.New(gerrors.ErrCodeUnknownNode, "connection %d→%d references a missing node", c.From, c.To)
	}
	out := src.Output(c.Output)
	if out == nil {
		return gerrors.New(gerrors.ErrCodeNotAnOutput, "%s has no output %q", src.Type.Name, c.Output)
	}
	in := dst.Input(c.Input)
	if in == nil {
		return gerrors.New(gerrors.ErrCodeNotAnInput, "%s has no input %q", dst.Type.Name, c.Input)
	}
	if _, taken := g.InputConnection(c.To, c.Input); taken {
		return gerrors.New(gerrors.ErrCodeInputOccupied, "%s.%s already has a connection", dst.Type.Name, c.Input)
	}
	if !nodetype.Compatible(out.Type, in.Type) {
		return gerrors.New(gerrors.ErrCodeTypeMismatch, "%s → %s", out.Type.Name, in.Type.Name)
	}
	if Reaches(g, c.To, c.From) {
		return gerrors.New(gerrors.ErrCodeCycle, "%s → %s closes a loop", src.Type.Name, dst.Type.Name)
	}
	return nil
}

// ConnectChecked commits c only if CheckConnection accepts it. On error the
// graph is unchanged.
func (g *Graph) ConnectChecked(c Connection) error {
	if err := CheckConnection(g, c); err != nil {
		return err
	}
	return g.Connect(c)
}
