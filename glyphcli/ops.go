package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/outline"
	"github.com/npillmayer/glyphedit/pattern"
	"github.com/pterm/pterm"
	"honnef.co/go/curve"
)

// remember pushes an undo snapshot; 'restore' pops it.
func (intp *Intp) remember() {
	intp.undo = append(intp.undo, intp.session.Snapshot())
}

// selectedIDs returns the selection in stable point-identity order.
func (intp *Intp) selectedIDs() []outline.PointID {
	ids := make([]outline.PointID, 0, len(intp.sel))
	for id := range intp.sel {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func floatArgs(op *Op) (dx float64, dy float64, err error) {
	if op.arg == "" || op.arg2 == "" {
		return 0, 0, fmt.Errorf("expected a vector, e.g. '%s:10:-5'", opNames[op.code])
	}
	if dx, err = strconv.ParseFloat(op.arg, 64); err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", op.arg)
	}
	if dy, err = strconv.ParseFloat(op.arg2, 64); err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", op.arg2)
	}
	return dx, dy, nil
}

// --- Selection --------------------------------------------------------

// selectOp toggles a point in and out of the selection; without argument it
// lists the current selection.
func selectOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		pterm.Printf("selected: %v\n", intp.selectedIDs())
		return nil, false
	}
	id, err := outline.ParsePointID(arg)
	if err != nil {
		return err, false
	}
	if _, _, ok := intp.session.FindPoint(id); !ok {
		return fmt.Errorf("no point %v in glyph", id), false
	}
	if intp.sel.Has(id) {
		delete(intp.sel, id)
		pterm.Printf("deselected %v\n", id)
	} else {
		intp.sel.Add(id)
		pterm.Printf("selected %v\n", id)
	}
	return nil, false
}

func clearOp(intp *Intp, op *Op) (error, bool) {
	intp.sel = pattern.NewSelection()
	pterm.Println("selection cleared")
	return nil, false
}

// --- Dragging ---------------------------------------------------------

// dragOp translates the selected points and lets the rule table drag
// control handles along.
func dragOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	if len(intp.sel) == 0 {
		return ERR_NO_SELECTION, false
	}
	dx, dy, err := floatArgs(op)
	if err != nil {
		return err, false
	}
	intp.remember()
	applied := intp.session.Apply(edit.Edit{
		Move:     curve.Vec(dx, dy),
		Targets:  intp.selectedIDs(),
		Selected: intp.sel,
	})
	data := [][]string{
		{"Point", "Rule", "From", "To"},
	}
	for _, id := range applied.Affected {
		rule := "-"
		if r, ok := applied.Rules[id]; ok {
			rule = r.String()
		}
		data = append(data, []string{
			id.String(),
			rule,
			formatPt(applied.Before[id]),
			formatPt(applied.After[id]),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// moveOp translates the selected points literally, without consulting the
// rule table.
func moveOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	if len(intp.sel) == 0 {
		return ERR_NO_SELECTION, false
	}
	dx, dy, err := floatArgs(op)
	if err != nil {
		return err, false
	}
	intp.remember()
	moved := intp.session.MovePoints(curve.Vec(dx, dy), intp.selectedIDs()...)
	pterm.Printf("moved %v\n", moved)
	return nil, false
}

// --- Point and contour surgery ----------------------------------------

func smoothOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("which anchor? use 'smooth:p<n>'"), false
	}
	id, err := outline.ParsePointID(arg)
	if err != nil {
		return err, false
	}
	intp.remember()
	if !intp.session.ToggleSmooth(id) {
		intp.undo = intp.undo[:len(intp.undo)-1]
		return fmt.Errorf("%v is not an anchor of the glyph", id), false
	}
	c, i, _ := intp.session.FindPoint(id)
	pterm.Printf("%v\n", c.At(i))
	return nil, false
}

// upgradeOp replaces the line segment starting at an anchor by an
// equivalent cubic with two fresh handles.
func upgradeOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("which segment start? use 'upgrade:p<n>'"), false
	}
	id, err := outline.ParsePointID(arg)
	if err != nil {
		return err, false
	}
	intp.remember()
	if _, ok := intp.session.UpgradeLine(id); !ok {
		intp.undo = intp.undo[:len(intp.undo)-1]
		return fmt.Errorf("no line segment starts at %v", id), false
	}
	pterm.Printf("line at %v upgraded to a cubic\n", id)
	return nil, false
}

func activeOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("which contour? use 'active:c<n>'"), false
	}
	id, err := outline.ParseContourID(arg)
	if err != nil {
		return err, false
	}
	if !intp.session.SetActiveContour(id) {
		return fmt.Errorf("no contour %v in glyph", id), false
	}
	return nil, false
}

func newContourOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	id := intp.session.NewContour()
	pterm.Printf("contour %v is now active\n", id)
	return nil, false
}

func closeOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	intp.remember()
	if !intp.session.CloseActive() {
		intp.undo = intp.undo[:len(intp.undo)-1]
		return fmt.Errorf("cannot close empty contour %v", intp.session.ActiveContour().ID()), false
	}
	return nil, false
}

func openOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	intp.remember()
	intp.session.OpenActive()
	return nil, false
}

func reverseOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	intp.remember()
	intp.session.ActiveContour().Reverse()
	return nil, false
}

// --- Undo -------------------------------------------------------------

func snapshotOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	intp.remember()
	pterm.Printf("snapshot taken, undo depth %d\n", len(intp.undo))
	return nil, false
}

func restoreOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkSession(); err != nil {
		return err, false
	}
	if len(intp.undo) == 0 {
		return fmt.Errorf("nothing to restore"), false
	}
	snap := intp.undo[len(intp.undo)-1]
	intp.undo = intp.undo[:len(intp.undo)-1]
	intp.session.Restore(snap)
	intp.sel = pattern.NewSelection()
	pterm.Printf("restored, undo depth %d\n", len(intp.undo))
	return nil, false
}
