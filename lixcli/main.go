package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/linstore"
	"github.com/npillmayer/linstore/capacity"
	"github.com/npillmayer/linstore/storage"
)

// tracer traces with key 'linstore.cli'
func tracer() tracing.Trace {
	return tracing.Select("linstore.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	growth := flag.String("growth", "exact", "Growth policy [exact|doubling]")
	initial := flag.Int("capacity", 8, "Initial storage capacity")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.linstore.cli":      "Info",
		"trace.linstore.capacity": "Info",
		"trace.linstore.storage":  "Error",
		"capacity.growth":         *growth,
		"storage.capacity":        strconv.Itoa(*initial),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the linear storage CLI")
	//
	// set up REPL
	repl, err := readline.New("lix > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	if err := intp.configure(conf); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("linstore.capacity").SetTraceLevel(tracing.LevelDebug)
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
	repl   *readline.Instance
	growth capacity.Growth
	policy string
	engine *linstore.Engine[string]
}

// configure reads growth policy and initial capacity from conf and creates an
// empty engine.
func (intp *Intp) configure(conf testconfig.Conf) error {
	policy := confString(conf, "capacity.growth", "exact")
	g, ok := capacity.GrowthByName(policy)
	if !ok {
		return errors.Newf("unknown growth policy: %s", policy)
	}
	intp.growth, intp.policy = g, policy
	initial, err := strconv.Atoi(confString(conf, "storage.capacity", "8"))
	if err != nil {
		return errors.Wrap(err, "storage capacity")
	}
	return intp.newEngine(initial)
}

// newEngine replaces the working engine. A rejected capacity keeps the old one.
func (intp *Intp) newEngine(initial int) error {
	engine, err := linstore.New[string](initial, capacity.WithGrowth(intp.growth))
	if err != nil {
		return err
	}
	intp.engine = engine
	tracer().Infof("new storage of capacity %d, growth policy %s", initial, intp.policy)
	return nil
}

func confString(conf testconfig.Conf, key, def string) string {
	v, ok := conf[key]
	if !ok {
		return def
	}
	if s := fmt.Sprint(v); s != "" && s != "<nil>" {
		return s
	}
	return def
}

func (intp *Intp) String() string {
	if intp == nil || intp.engine == nil {
		return "()"
	}
	return fmt.Sprintf("( %s, growth=%s )", intp.engine.Registry(), intp.policy)
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
	args []string
}

type Command struct {
	ops []Op
}

const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	NEW
	INIT
	FILL
	GET
	SET
	HEAD
	TAIL
	MIDDLE
	PRINT
	STATS
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"new":    NEW,
	"init":   INIT,
	"fill":   FILL,
	"get":    GET,
	"set":    SET,
	"head":   HEAD,
	"tail":   TAIL,
	"middle": MIDDLE,
	"print":  PRINT,
	"stats":  STATS,
}

var opNames = []string{
	"quit",
	"help",
	"new",
	"init",
	"fill",
	"get",
	"set",
	"head",
	"tail",
	"middle",
	"print",
	"stats",
}

// parseCommand splits a line into steps, e.g. "middle:2:3 print".
// Unknown steps are turned into a HELP step.
func (intp *Intp) parseCommand(line string) (*Command, error) {
	steps := strings.Fields(line)
	cmd := &Command{ops: make([]Op, 0, len(steps))}
	for _, step := range steps {
		c := strings.Split(step, ":") // e.g.  "middle:2:3" or "set:4:x" or "help:middle"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			tracer().Infof("unknown command '%s'", c[0])
			code = HELP
		}
		op := Op{code: code, args: c[1:]}
		cmd.ops = append(cmd.ops, op)
		if code == QUIT {
			break
		}
		tracer().Debugf("parsed command: %s %v", opNames[code], op.args)
	}
	if len(cmd.ops) == 0 {
		return nil, errors.New("empty command")
	}
	return cmd, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	NEW:    newOp,
	INIT:   initOp,
	FILL:   fillOp,
	GET:    getOp,
	SET:    setOp,
	HEAD:   headOp,
	TAIL:   tailOp,
	MIDDLE: middleOp,
	PRINT:  printOp,
	STATS:  statsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.ops)
	for _, c := range cmd.ops {
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(describe(err))
			return
		}
		if stop {
			return
		}
	}
	return
}

// describe prefixes an error with its failure class.
func describe(err error) string {
	var serr *storage.Error
	if errors.As(err, &serr) {
		return fmt.Sprintf("%s: %s", strings.ToUpper(serr.Kind.String()), err)
	}
	return err.Error()
}

// --- Arguments --------------------------------------------------------

var errMissingArg = errors.New("missing argument")

func (op *Op) arg(inx int) (string, bool) {
	if inx < len(op.args) && op.args[inx] != "" {
		return op.args[inx], true
	}
	return "", false
}

func (op *Op) intArg(inx int) (int, error) {
	s, ok := op.arg(inx)
	if !ok {
		return 0, errors.Wrapf(errMissingArg, "%s: argument #%d", opNames[op.code], inx+1)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: argument #%d is not a number", opNames[op.code], inx+1)
	}
	return n, nil
}
