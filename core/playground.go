// Package core wires the parser, job table, configuration, and event log
// into an interactive playground.
package core

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/abiosoft/readline"

	"github.com/jobline-sh/jobline/commands"
	"github.com/jobline-sh/jobline/core/config"
	"github.com/jobline-sh/jobline/core/jobs"
	"github.com/jobline-sh/jobline/core/logger"
	"github.com/jobline-sh/jobline/core/pipeline"
	"github.com/jobline-sh/jobline/core/token"
)

// Playground reads lines, parses each into a pipeline request, and
// registers the result in a job table. Lines starting with ':' run
// meta commands instead.
type Playground struct {
	Config   *config.Configuration
	Jobs     *jobs.Table
	Readline *readline.Instance
	Log      *logger.SessionLogger

	printer *commands.ColorPrinter
	out     io.Writer
	errOut  io.Writer
	parsed  int
}

// NewPlayground builds a playground reading from stdin. History is kept
// in the configuration directory when one is attached.
func NewPlayground(configuration *config.Configuration, stdin io.ReadCloser, stdout, stderr io.Writer, sessionLog *logger.SessionLogger) (*Playground, error) {
	historyFile := configuration.HistoryPath()
	if configuration.HistoryLimit == 0 {
		historyFile = "" // a zero limit keeps no history at all
	}

	cfg := &readline.Config{
		Prompt:       configuration.Prompt,
		Stdin:        readline.NewCancelableStdin(stdin),
		Stdout:       stdout,
		Stderr:       stderr,
		HistoryFile:  historyFile,
		HistoryLimit: configuration.HistoryLimit,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	// Init filled in terminal detection, reuse it for "auto" color.
	return &Playground{
		Config:   configuration,
		Jobs:     jobs.NewTable(),
		Readline: rl,
		Log:      sessionLog,
		printer:  commands.NewColorPrinter(configuration.Color, cfg.FuncIsTerminal),
		out:      rl,
		errOut:   stderr,
	}, nil
}

// Prompt expands prompt escapes. \j is the number of jobs in the table,
// matching the bash escape of the same name.
func (p *Playground) Prompt() string {
	prompt := p.Config.Prompt
	prompt = strings.ReplaceAll(prompt, `\j`, strconv.Itoa(p.Jobs.Len()))
	return prompt
}

// Run reads lines until EOF or an exit command.
func (p *Playground) Run() {
	for {
		p.Readline.SetPrompt(p.Prompt())
		line, err := p.Readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Ctrl-C drops the partial line.

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(line) == 0:
			continue // empty line

		default:
			if p.HandleLine(line) {
				return
			}
		}
	}
}

// HandleLine runs one line of input and reports whether the playground
// should exit.
func (p *Playground) HandleLine(line string) bool {
	trimmed := token.Trim(line)
	switch {
	case trimmed == "exit" || trimmed == "quit":
		return true

	case strings.HasPrefix(trimmed, ":"):
		p.runMeta(strings.TrimPrefix(trimmed, ":"))
		return false
	}

	p.parsed++
	req := pipeline.Parse(line)
	p.record(&logger.LineParsed{
		Raw:        req.Raw,
		Stages:     req.NumProcs(),
		Pipes:      req.NumPipes(),
		Foreground: req.Foreground,
	})

	if req.NumProcs() == 0 {
		fmt.Fprintln(p.out, "(no stages)")
		return false
	}

	id := p.Jobs.Add(req)
	p.record(&logger.JobAdded{
		JobID:   id,
		Command: req.Procs[0].Args[0],
		Stages:  req.NumProcs(),
	})
	fmt.Fprintln(p.out, req.String())
	return false
}

func (p *Playground) runMeta(line string) {
	args := token.Fields(line)
	if len(args) == 0 {
		fmt.Fprintln(p.errOut, "missing command name (try :help)")
		return
	}

	cmd, ok := commands.AllCommands[args[0]]
	if !ok {
		fmt.Fprintf(p.errOut, "%s: unknown command (try :help)\n", args[0])
		return
	}

	p.record(&logger.MetaCommand{Name: args[0]})
	cmd.Run(&commands.Env{
		Args:    args,
		Line:    token.Rest(line, 1),
		Stdout:  p.out,
		Stderr:  p.errOut,
		Jobs:    p.Jobs,
		Config:  p.Config,
		Printer: p.printer,
		Log:     p.Log,
	})
}

func (p *Playground) record(event logger.Event) {
	if p.Log != nil {
		p.Log.Record(event)
	}
}

// Close records the session end and releases the readline instance.
func (p *Playground) Close() error {
	p.record(&logger.SessionClosed{LinesParsed: p.parsed})
	if p.Readline != nil {
		return p.Readline.Close()
	}
	return nil
}
