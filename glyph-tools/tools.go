package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/internal/fontload"
	"github.com/npillmayer/glyphedit/outline"
	"github.com/thatisuday/commando"
	"honnef.co/go/curve"
)

func main() {
	commando.
		SetExecutableName("glyph-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting and batch-editing glyph outlines.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("info").
		SetDescription("Print diagnostics for a font and optionally for a list of its glyphs.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "OpenType font file path, or '-' for the embedded Roboto", "").
		AddArgument("glyphs...", "glyphs to summarize (chars or U+xxxx, variadic argument parts joined by comma by commando)", "").
		SetAction(runInfoCommand)

	commando.
		Register("outline").
		SetDescription("Print the contours and points of one glyph, optionally with its segment walk.").
		SetShortDescription("glyph outline dump").
		AddArgument("font", "OpenType font file path, or '-' for the embedded Roboto", "").
		AddArgument("glyph", "glyph to dump (char or U+xxxx)", "").
		AddFlag("segments,s", "print the segment walk as well", commando.Bool, nil).
		SetAction(runOutlineCommand)

	commando.
		Register("drag").
		SetDescription("Drag points of a glyph outline and print which rules fired and what moved.").
		SetShortDescription("batch drag").
		AddArgument("font", "OpenType font file path, or '-' for the embedded Roboto", "").
		AddArgument("glyph", "glyph to edit (char or U+xxxx)", "").
		AddArgument("points...", "points to drag (e.g. p3,p7)", "").
		AddFlag("by,b", "drag vector 'dx,dy'", commando.String, "0,0").
		SetAction(runDragCommand)

	commando.Parse(nil)
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	fmt.Printf("Font: %s\n", f.Fontname)
	fmt.Printf("Units/em: %d\n", f.SFNT.UnitsPerEm())
	for _, g := range splitCSVSpace(args["glyphs"].Value) {
		session := mustOpenGlyph(f, g)
		glyph := session.Glyph()
		closed, smooth := 0, 0
		for _, c := range glyph.Contours {
			if c.IsClosed() {
				closed++
			}
			for _, p := range c.Points() {
				if p.Smooth {
					smooth++
				}
			}
		}
		fmt.Printf("Glyph %q (U+%04X): advance=%.1f contours=%d (%d closed) points=%d (%d smooth)\n",
			glyph.Name, glyph.Codepoint, glyph.Advance,
			len(glyph.Contours), closed, session.PointCount(), smooth)
	}
}

func runOutlineCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	session := mustOpenGlyph(f, args["glyph"].Value)
	for _, c := range session.Glyph().Contours {
		state := "open"
		if c.IsClosed() {
			state = "closed"
		}
		winding := "counter-clockwise"
		if c.IsClockwise() {
			winding = "clockwise"
		}
		fmt.Printf("contour %v: %d points, %s, %s\n", c.ID(), c.Len(), state, winding)
		for _, p := range c.Points() {
			fmt.Printf("  %v\n", p)
		}
		if mustFlagBool(flags["segments"], "segments") {
			for seg := range c.Segments() {
				bbox := seg.BoundingBox()
				fmt.Printf("  %v bbox=(%.1f,%.1f)-(%.1f,%.1f)\n", seg, bbox.X0, bbox.Y0, bbox.X1, bbox.Y1)
			}
		}
	}
}

func runDragCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	f := mustLoadFont(args["font"].Value)
	session := mustOpenGlyph(f, args["glyph"].Value)
	delta, err := parseVector(flags["by"])
	if err != nil {
		fatalf("%v", err)
	}
	var targets []outline.PointID
	for _, p := range splitCSVSpace(args["points"].Value) {
		id, err := outline.ParsePointID(p)
		if err != nil {
			fatalf("%v", err)
		}
		if _, _, ok := session.FindPoint(id); !ok {
			fatalf("no point %v in glyph %q", id, args["glyph"].Value)
		}
		targets = append(targets, id)
	}
	if len(targets) == 0 {
		fatalf("no points to drag")
	}
	applied := session.Apply(edit.Edit{Move: delta, Targets: targets})
	fmt.Println(formatAppliedEdit(applied))
	for _, id := range targets {
		if rule, ok := applied.Rules[id]; ok {
			fmt.Printf("rule %s fired for %v\n", rule, id)
		}
	}
}

// formatAppliedEdit prints every moved point in a compact run format, e.g.
// [p3 (150.0,100.0)->(150.0,50.0)|p1 (50.0,0.0)->(150.0,150.0)]
func formatAppliedEdit(applied edit.AppliedEdit) string {
	b := strings.Builder{}
	for _, id := range applied.Affected {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		from := applied.Before[id]
		to := applied.After[id]
		b.WriteString(fmt.Sprintf("%v (%.1f,%.1f)->(%.1f,%.1f)", id, from.X, from.Y, to.X, to.Y))
	}
	return "[" + b.String() + "]"
}

func parseVector(flag commando.FlagValue) (curve.Vec2, error) {
	s, err := flag.GetString()
	if err != nil {
		return curve.Vec2{}, fmt.Errorf("invalid --by flag: %w", err)
	}
	parts := splitCSVSpace(s)
	if len(parts) != 2 {
		return curve.Vec2{}, fmt.Errorf("drag vector %q is not of the form 'dx,dy'", s)
	}
	dx, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return curve.Vec2{}, fmt.Errorf("invalid drag vector %q: %w", s, err)
	}
	dy, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return curve.Vec2{}, fmt.Errorf("invalid drag vector %q: %w", s, err)
	}
	return curve.Vec(dx, dy), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustLoadFont(path string) *fontload.ScalableFont {
	path = strings.TrimSpace(path)
	if path == "" {
		fatalf("font path is required")
	}
	var f *fontload.ScalableFont
	var err error
	if path == "-" {
		f, err = fontload.LoadEmbedded("common/Roboto-Regular.ttf")
	} else {
		f, err = fontload.LoadOpenTypeFont(path)
	}
	if err != nil {
		fatalf("cannot load font %s: %v", path, err)
	}
	return f
}

func mustOpenGlyph(f *fontload.ScalableFont, name string) *edit.Session {
	r, err := parseGlyphName(name)
	if err != nil {
		fatalf("%v", err)
	}
	session, err := fontload.GlyphSession(f, r)
	if err != nil {
		fatalf("cannot open glyph %q: %v", name, err)
	}
	return session
}

func parseGlyphName(name string) (rune, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("glyph name is empty")
	}
	hex := name
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	default:
		runes := []rune(name)
		if len(runes) != 1 {
			return 0, fmt.Errorf("glyph %q is neither a single character nor a codepoint", name)
		}
		return runes[0], nil
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", name, err)
	}
	return rune(u), nil
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "glyph-tools: "+format+"\n", args...)
	os.Exit(1)
}
