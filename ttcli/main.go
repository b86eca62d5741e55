package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sfntmetrics"
	"github.com/pterm/pterm"
)

// tracer traces with key 'sfnt.metrics'
func tracer() tracing.Trace {
	return tracing.Select("sfnt.metrics")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.sfnt.metrics": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontpath := flag.String("font", "", "TrueType font file to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)            // will set the correct level later
	pterm.Info.Println("Welcome to TrueType metrics CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ttf > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to use
	if err := intp.loadFont(*fontpath); err != nil { // font path provided by flag
		tracer().Errorf("%v", err)
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
	font *sfntmetrics.Font
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s )", intp.font.Fontname)
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
		cmd, err := parseCommand(line)
		if err != nil {
			tracer().Errorf("%v", err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf("%v", err)
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

// Command is a sequence of steps, executed left to right. A step 'quit'
// terminates the sequence.
type Command []Op

const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	TABLES
	HEAD
	HHEA
	METRICS
	WIDTHS
	GLYPH
	NAMES
	CMAP
	DESCRIPTOR
	WARNINGS
)

var opMap = map[string]int{
	"quit":       QUIT,
	"help":       HELP,
	"tables":     TABLES,
	"head":       HEAD,
	"hhea":       HHEA,
	"metrics":    METRICS,
	"widths":     WIDTHS,
	"glyph":      GLYPH,
	"names":      NAMES,
	"cmap":       CMAP,
	"descriptor": DESCRIPTOR,
	"warnings":   WARNINGS,
}

var opNames = []string{
	"quit",
	"help",
	"tables",
	"head",
	"hhea",
	"metrics",
	"widths",
	"glyph",
	"names",
	"cmap",
	"descriptor",
	"warnings",
}

// parseCommand splits a line into steps, e.g. "head widths:32:126".
// Unknown op-codes are treated as a call for help.
func parseCommand(line string) (Command, error) {
	steps := strings.Fields(line)
	if len(steps) > maxSteps {
		return nil, fmt.Errorf("too many steps in command: %d", len(steps))
	}
	command := make(Command, 0, len(steps))
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "widths:32:126" or "glyph:5" or "cmap:A"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		if code == QUIT {
			return append(command, Op{code: QUIT}), nil
		}
		command = append(command, Op{code: code, arg: getOptArg(c, 1), arg2: getOptArg(c, 2)})
		tracer().Debugf("parsed command: %s %v", opNames[code], c[1:])
	}
	return command, nil
}

// maxSteps limits the number of steps on a single input line.
const maxSteps = 32

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:       quitOp,
	HELP:       helpOp,
	TABLES:     tablesOp,
	HEAD:       headOp,
	HHEA:       hheaOp,
	METRICS:    metricsOp,
	WIDTHS:     widthsOp,
	GLYPH:      glyphOp,
	NAMES:      namesOp,
	CMAP:       cmapOp,
	DESCRIPTOR: descriptorOp,
	WARNINGS:   warningsOp,
}

func (intp *Intp) execute(cmd Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd)
	for _, c := range cmd {
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

var errNoFont = errors.New("no font file given; use flag -font")

func (intp *Intp) loadFont(path string) (err error) {
	if path == "" {
		return errNoFont
	}
	intp.font, err = sfntmetrics.LoadFontFile(path)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", path, err)
		return err
	}
	tracer().Infof("loaded font = %s", intp.font.Fontname)
	if n := len(intp.font.Warnings()); n > 0 {
		pterm.Info.Printf("font has %d warning(s), see command 'warnings'\n", n)
	}
	return nil
}

// ----------------------------------------------------------------------

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
