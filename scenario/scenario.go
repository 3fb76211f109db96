package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/session"
)

// ErrInvalidPosition indicates a coordinate that is not a [row, col] pair.
var ErrInvalidPosition = errors.New("scenario: position must be a [row, col] pair")

// Scenario is a decoded grid layout.
type Scenario struct {
	Source   string
	Size     int
	Start    grid.Position
	End      grid.Position
	Barriers []Barrier
}

// Barrier is a named inclusive rectangle of barrier cells.
type Barrier struct {
	Name     string
	From, To grid.Position
}

// Cells lists the positions covered by b in row-major order.
func (b Barrier) Cells() []grid.Position {
	r0, r1 := min(b.From.Row, b.To.Row), max(b.From.Row, b.To.Row)
	c0, c1 := min(b.From.Col, b.To.Col), max(b.From.Col, b.To.Col)
	out := make([]grid.Position, 0, (r1-r0+1)*(c1-c0+1))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			out = append(out, grid.Pos(r, c))
		}
	}

	return out
}

// hclHeader is decoded first so `size` can feed the evaluation context.
type hclHeader struct {
	Size   int      `hcl:"size"`
	Remain hcl.Body `hcl:",remain"`
}

// hclLayout is the rest of the file.
type hclLayout struct {
	Start    []int         `hcl:"start"`
	End      []int         `hcl:"end"`
	Barriers []*hclBarrier `hcl:"barrier,block"`
}

type hclBarrier struct {
	Name string `hcl:"name,label"`
	From []int  `hcl:"from"`
	To   []int  `hcl:"to,optional"`
}

// Parse decodes a scenario from src; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

// LoadFile reads and decodes the scenario at path.
func LoadFile(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, diags)
	}
	sc, err := decode(file.Body, path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Scenario loaded.", "path", path, "size", sc.Size, "barrier_blocks", len(sc.Barriers))
	return sc, nil
}

func decode(body hcl.Body, source string) (*Scenario, error) {
	var header hclHeader
	if diags := gohcl.DecodeBody(body, nil, &header); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", source, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"size": cty.NumberIntVal(int64(header.Size)),
		},
	}
	var layout hclLayout
	if diags := gohcl.DecodeBody(header.Remain, evalCtx, &layout); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", source, diags)
	}

	sc := &Scenario{Source: source, Size: header.Size}
	var err error
	if sc.Start, err = toPosition(layout.Start, "start"); err != nil {
		return nil, err
	}
	if sc.End, err = toPosition(layout.End, "end"); err != nil {
		return nil, err
	}
	for _, b := range layout.Barriers {
		from, err := toPosition(b.From, "barrier "+b.Name+" from")
		if err != nil {
			return nil, err
		}
		to := from
		if b.To != nil {
			if to, err = toPosition(b.To, "barrier "+b.Name+" to"); err != nil {
				return nil, err
			}
		}
		sc.Barriers = append(sc.Barriers, Barrier{Name: b.Name, From: from, To: to})
	}

	return sc, nil
}

func toPosition(v []int, field string) (grid.Position, error) {
	if len(v) != 2 {
		return grid.Position{}, fmt.Errorf("%w: %s has %d elements", ErrInvalidPosition, field, len(v))
	}

	return grid.Pos(v[0], v[1]), nil
}

// Session builds a session with the scenario's size, endpoints and barriers.
// Any out-of-bounds coordinate or barrier over an endpoint is an error.
func (sc *Scenario) Session(opts ...session.Option) (*session.Session, error) {
	s, err := session.New(sc.Size, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Source, err)
	}
	if err := s.SetStart(sc.Start); err != nil {
		return nil, fmt.Errorf("scenario %s: start: %w", sc.Source, err)
	}
	if err := s.SetEnd(sc.End); err != nil {
		return nil, fmt.Errorf("scenario %s: end: %w", sc.Source, err)
	}
	for _, b := range sc.Barriers {
		for _, corner := range []grid.Position{b.From, b.To} {
			if !s.Grid().InBounds(corner) {
				return nil, fmt.Errorf("scenario %s: barrier %q: %w: %s in %dx%d grid",
					sc.Source, b.Name, grid.ErrOutOfBounds, corner, sc.Size, sc.Size)
			}
		}
		for _, p := range b.Cells() {
			if err := s.SetBarrier(p); err != nil {
				return nil, fmt.Errorf("scenario %s: barrier %q: %w", sc.Source, b.Name, err)
			}
		}
	}

	return s, nil
}
