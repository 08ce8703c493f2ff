package main

import (
	"fmt"

	"github.com/npillmayer/glyphedit/outline"
	"github.com/pterm/pterm"
	"honnef.co/go/curve"
)

// glyphOp abandons the current session and opens another glyph of the font.
func glyphOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("which glyph? use 'glyph:<char>' or 'glyph:U+xxxx'"), false
	}
	return intp.openGlyph(name), false
}

func printOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	g := intp.session.Glyph()
	pterm.Printf("glyph    %q (U+%04X)\n", g.Name, g.Codepoint)
	pterm.Printf("advance  %.1f font units\n", g.Advance)
	pterm.Printf("outline  %d contours, %d points\n", len(g.Contours), intp.session.PointCount())
	return nil, false
}

func contoursOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	data := [][]string{
		{"Contour", "Points", "State", "Winding", "Active"},
	}
	active := intp.session.ActiveContour().ID()
	for _, c := range intp.session.Glyph().Contours {
		state := "open"
		if c.IsClosed() {
			state = "closed"
		}
		winding := "counter-clockwise"
		if c.IsClockwise() {
			winding = "clockwise"
		}
		mark := ""
		if c.ID() == active {
			mark = "*"
		}
		data = append(data, []string{
			c.ID().String(),
			fmt.Sprintf("%d", c.Len()),
			state,
			winding,
			mark,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// pointsOp lists the points of the active contour; 'points:all' lists every
// contour of the glyph.
func pointsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	contours := []*outline.Contour{intp.session.ActiveContour()}
	if op.arg == "all" {
		contours = intp.session.Glyph().Contours
	}
	data := [][]string{
		{"Contour", "Point", "Type", "X", "Y", "Smooth", "Sel"},
	}
	for _, c := range contours {
		for _, p := range c.Points() {
			smooth := ""
			if p.Smooth {
				smooth = "smooth"
			}
			sel := ""
			if intp.sel.Has(p.ID) {
				sel = "*"
			}
			data = append(data, []string{
				c.ID().String(),
				p.ID.String(),
				p.Type.String(),
				fmt.Sprintf("%.1f", p.Pos.X),
				fmt.Sprintf("%.1f", p.Pos.Y),
				smooth,
				sel,
			})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func segmentsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	c := intp.session.ActiveContour()
	data := [][]string{
		{"Seg", "Kind", "Points", "From", "To"},
	}
	n := 0
	for seg := range c.Segments() {
		data = append(data, []string{
			fmt.Sprintf("%d", n),
			formatKind(seg.Kind),
			fmt.Sprintf("%v", seg.PointIDs()),
			formatPt(seg.Start().Pos),
			formatPt(seg.End().Pos),
		})
		n++
	}
	if n == 0 {
		pterm.Printf("contour %v has no segments\n", c.ID())
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func formatKind(kind curve.PathSegmentKind) string {
	switch kind {
	case curve.LineKind:
		return "line"
	case curve.QuadKind:
		return "quadratic"
	case curve.CubicKind:
		return "cubic"
	}
	return "?"
}

func formatPt(p curve.Point) string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}
