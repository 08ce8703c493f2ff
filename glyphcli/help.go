package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "pattern", "patterns", "token", "tokens":
		pterm.Info.Println("Neighborhood patterns")
		pterm.Println(`
	Dragging a point classifies its neighborhood into a string of tokens:
	+---+----------------------------------------+
	| N | no point (open contour ends here)      |
	| C | corner anchor                          |
	| S | smooth anchor                          |
	| H | control handle                         |
	| @ | neighbor that is part of the selection |
	+---+----------------------------------------+
	The dragged point sits in the middle of the window. Windows of width
	3 are tried first, then width 5.
	`)
	case "rule", "rules", "drag":
		pterm.Info.Println("Drag rules")
		pterm.Println(`
	'drag:<dx>:<dy>' moves every selected point and matches each one
	against the rule table:
	+-------------------+-------------------------------------------+
	| move-right-handle | anchor drags its following handle along   |
	| move-left-handle  | anchor drags its preceding handle along   |
	| move-both-handles | smooth anchor drags both handles along    |
	| maintain-tangency | handle rotates the opposite handle about  |
	|                   | its smooth anchor, keeping them collinear |
	+-------------------+-------------------------------------------+
	A miss is fine: the point simply moves by the drag vector.
	'move:<dx>:<dy>' skips the rule table entirely.
	`)
	case "undo", "snapshot", "restore":
		pterm.Info.Println("Undo")
		pterm.Println(`
	Editing commands push a snapshot of the glyph before they mutate it.
	'restore' pops the newest snapshot; 'snapshot' pushes one explicitly.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	glyph:<char>     open another glyph, e.g. glyph:e or glyph:U+0065
	print            glyph summary
	contours         list contours        active:c<n>  switch active contour
	points[:all]     list points          segments     list segments
	select:p<n>      toggle selection     clear        empty the selection
	drag:<dx>:<dy>   drag selection with constraint rules
	move:<dx>:<dy>   move selection without rules
	smooth:p<n>      toggle corner/smooth
	upgrade:p<n>     replace a line segment by a cubic
	close open reverse new                active contour surgery
	snapshot restore                      undo stack
	help[:pattern|rules|undo]             more on a topic
	quit             leave (or <ctrl>D)
	`)
	}
}
