// Package render draws grid state for headless collaborators: ASCII frames for
// terminals and logs, PNG snapshots for reports.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrCellSize indicates a non-positive pixel size per cell.
var ErrCellSize = errors.New("render: cell size must be positive")

// glyphs maps each state to its ASCII rune.
var glyphs = map[grid.CellState]byte{
	grid.Empty:   '.',
	grid.Start:   'S',
	grid.End:     'E',
	grid.Barrier: '#',
	grid.Open:    'o',
	grid.Closed:  'x',
	grid.Path:    '*',
}

// palette maps each state to its fill color.
var palette = map[grid.CellState]color.RGBA{
	grid.Empty:   {0, 0, 0, 255},
	grid.Start:   {0, 255, 0, 255},
	grid.End:     {255, 255, 0, 255},
	grid.Barrier: {255, 255, 255, 255},
	grid.Open:    {0, 0, 255, 255},
	grid.Closed:  {255, 0, 0, 255},
	grid.Path:    {0, 255, 255, 255},
}

var lineColor = color.RGBA{128, 128, 128, 255}

// Glyph returns the ASCII rune for s, '?' for unknown states.
func Glyph(s grid.CellState) byte {
	if b, ok := glyphs[s]; ok {
		return b
	}

	return '?'
}

// Text renders g as rows of glyphs, one line per grid row.
func Text(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Rows())
	g.Each(func(c *grid.Cell) {
		sb.WriteByte(Glyph(c.State()))
		if c.Position().Col == g.Rows()-1 {
			sb.WriteByte('\n')
		}
	})

	return sb.String()
}

// WriteText writes Text(g) to w.
func WriteText(w io.Writer, g *grid.Grid) error {
	_, err := io.WriteString(w, Text(g))
	return err
}

// draw paints g onto a new context with cellPx pixels per cell.
func draw(g *grid.Grid, cellPx int) (*gg.Context, error) {
	if cellPx <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrCellSize, cellPx)
	}
	side := g.Rows() * cellPx
	dc := gg.NewContext(side, side)

	// Rows run along x.
	g.Each(func(c *grid.Cell) {
		p := c.Position()
		dc.SetColor(palette[c.State()])
		dc.DrawRectangle(float64(p.Row*cellPx), float64(p.Col*cellPx), float64(cellPx), float64(cellPx))
		dc.Fill()
	})

	dc.SetColor(lineColor)
	dc.SetLineWidth(1)
	for i := 0; i <= g.Rows(); i++ {
		at := float64(i * cellPx)
		dc.DrawLine(0, at, float64(side), at)
		dc.DrawLine(at, 0, at, float64(side))
	}
	dc.Stroke()

	return dc, nil
}

// Image renders g as an RGBA image with cellPx pixels per cell.
func Image(g *grid.Grid, cellPx int) (image.Image, error) {
	dc, err := draw(g, cellPx)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// WritePNG encodes the rendered grid as PNG to w.
func WritePNG(w io.Writer, g *grid.Grid, cellPx int) error {
	dc, err := draw(g, cellPx)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// SavePNG writes the rendered grid to a PNG file at path.
func SavePNG(path string, g *grid.Grid, cellPx int) error {
	dc, err := draw(g, cellPx)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
