package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glyphedit/edit"
	"github.com/npillmayer/glyphedit/internal/fontload"
	"github.com/npillmayer/glyphedit/pattern"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'glyphedit.cli'
func tracer() tracing.Trace {
	return tracing.Select("glyphedit.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.glyphedit.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (default is the embedded Roboto)")
	glyphname := flag.String("glyph", "o", "Glyph to edit: a character or U+xxxx")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)            // will set the correct level later
	pterm.Info.Println("Welcome to the glyph editor CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("glyph > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, sel: pattern.NewSelection()}
	//
	// load font to use and seed a session on one of its glyphs
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if err := intp.openGlyph(*glyphname); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font    *fontload.ScalableFont
	session *edit.Session
	sel     pattern.Selection
	undo    []edit.Snapshot
	repl    *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.session == nil {
		return "()"
	}
	g := intp.session.Glyph()
	return fmt.Sprintf("( glyph=%q  contours=%d  active=%v  selected=%d  undo=%d )",
		g.Name, len(g.Contours), intp.session.ActiveContour().ID(), len(intp.sel), len(intp.undo))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
	arg2 string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	GLYPH
	POINTS
	CONTOURS
	SEGMENTS
	ACTIVE
	NEWCONTOUR
	SELECT
	CLEAR
	DRAG
	MOVE
	SMOOTH
	UPGRADE
	CLOSE
	OPEN
	REVERSE
	SNAPSHOT
	RESTORE
	PRINT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"glyph":    GLYPH,
	"points":   POINTS,
	"contours": CONTOURS,
	"segments": SEGMENTS,
	"active":   ACTIVE,
	"new":      NEWCONTOUR,
	"select":   SELECT,
	"clear":    CLEAR,
	"drag":     DRAG,
	"move":     MOVE,
	"smooth":   SMOOTH,
	"upgrade":  UPGRADE,
	"close":    CLOSE,
	"open":     OPEN,
	"reverse":  REVERSE,
	"snapshot": SNAPSHOT,
	"restore":  RESTORE,
	"print":    PRINT,
}

var opNames = []string{
	"quit",
	"help",
	"glyph",
	"points",
	"contours",
	"segments",
	"active",
	"new",
	"select",
	"clear",
	"drag",
	"move",
	"smooth",
	"upgrade",
	"close",
	"open",
	"reverse",
	"snapshot",
	"restore",
	"print",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].arg2 = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "drag:10:-5" or "select:p3" or "help:rules"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].arg2 = getOptArg(c, 2)
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[command.op[i].code])
		} else {
			tracer().Debugf("%s: argument '%s'", opNames[command.op[i].code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:       quitOp,
	HELP:       helpOp,
	GLYPH:      glyphOp,
	POINTS:     pointsOp,
	CONTOURS:   contoursOp,
	SEGMENTS:   segmentsOp,
	ACTIVE:     activeOp,
	NEWCONTOUR: newContourOp,
	SELECT:     selectOp,
	CLEAR:      clearOp,
	DRAG:       dragOp,
	MOVE:       moveOp,
	SMOOTH:     smoothOp,
	UPGRADE:    upgradeOp,
	CLOSE:      closeOp,
	OPEN:       openOp,
	REVERSE:    reverseOp,
	SNAPSHOT:   snapshotOp,
	RESTORE:    restoreOp,
	PRINT:      printOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	if fontname == "" {
		intp.font, err = fontload.LoadEmbedded("common/Roboto-Regular.ttf")
	} else {
		intp.font, err = fontload.LoadOpenTypeFont(fontname)
	}
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	pterm.Printf("font: %s, %d units/em\n", intp.font.Fontname, intp.font.SFNT.UnitsPerEm())
	return nil
}

func (intp *Intp) openGlyph(glyphname string) error {
	r, err := runeArg(glyphname)
	if err != nil {
		return err
	}
	session, err := fontload.GlyphSession(intp.font, r)
	if err != nil {
		tracer().Errorf("cannot open glyph %q: %s", glyphname, err)
		return err
	}
	intp.session = session
	intp.sel = pattern.NewSelection()
	intp.undo = intp.undo[:0]
	pterm.Printf("editing %v\n", session.Glyph())
	return nil
}

// runeArg reads a glyph name: a single character or a U+xxxx codepoint.
func runeArg(s string) (rune, error) {
	if hex, ok := strings.CutPrefix(s, "U+"); ok {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("not a codepoint: %q", s)
		}
		return rune(n), nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single character, have %q", s)
	}
	return runes[0], nil
}

// ----------------------------------------------------------------------

var ERR_NO_SESSION = errors.New("no glyph under edit")
var ERR_NO_SELECTION = errors.New("selection is empty, use 'select:p<n>'")

func (intp *Intp) checkSession() error {
	if intp.session == nil {
		return ERR_NO_SESSION
	}
	return nil
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) noArg() bool {
	return op.arg == ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
