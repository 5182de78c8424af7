package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"github.com/jobline-sh/jobline/core/config"
	"github.com/jobline-sh/jobline/core/jobs"
	"github.com/jobline-sh/jobline/core/logger"
)

// Env is the playground state a meta command runs against.
type Env struct {
	// Args is the command's argument vector. Args[0] is the command name
	// without the leading colon.
	Args []string
	// Line is the raw input after the command name with spacing intact,
	// for commands that re-parse their operand as shell input.
	Line string

	Stdout io.Writer
	Stderr io.Writer

	Jobs    *jobs.Table
	Config  *config.Configuration
	Printer *ColorPrinter
	Log     *logger.SessionLogger
}

// Sprintf colors the formatted string when the env has a printer that says
// color is on.
func (e *Env) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if e.Printer == nil {
		return fmt.Sprintf(format, a...)
	}
	return e.Printer.Sprintf(col, format, a...)
}

// Record logs the event if the env has a logger attached.
func (e *Env) Record(event logger.Event) {
	if e.Log != nil {
		e.Log.Record(event)
	}
}

// CommandFunc runs a meta command and returns its exit code.
type CommandFunc func(env *Env) int

// Command is one registered meta command.
type Command struct {
	// Name invokes the command after the leading colon.
	Name string
	// Short holds a one line description of the command.
	Short string
	Run   CommandFunc
}

// AllCommands holds all registered meta commands by name.
var AllCommands = make(map[string]*Command)

func register(cmd *Command) {
	AllCommands[cmd.Name] = cmd
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a sone line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(env *Env, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(env.Args, nil); err != nil {
		fmt.Fprintf(env.Stderr, "error: %s\n\n", err)

		s.PrintHelp(env.Stdout)
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(env.Stdout)
		return 0
	}

	return callback()
}

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter colors output according to a configured mode.
type ColorPrinter struct {
	mode  string
	isTTY func() bool
}

// NewColorPrinter builds a printer for the given mode. The isTTY callback
// is only consulted for "auto".
func NewColorPrinter(mode string, isTTY func() bool) *ColorPrinter {
	return &ColorPrinter{mode: mode, isTTY: isTTY}
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c.mode == config.ColorNever:
		return false
	case c.mode == config.ColorAlways:
		return true
	default:
		return c.isTTY != nil && c.isTTY()
	}
}

func (c *ColorPrinter) Sprintf(color *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		return color.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
