package pipeline

import (
	"fmt"

	"github.com/jobline-sh/jobline/core/token"
)

// Code identifies a class of suspicious input.
type Code string

const (
	// CodeUnclosedQuote: the line ended inside a double-quoted literal and
	// the literal's fragments were dropped.
	CodeUnclosedQuote Code = "unclosed-quote"
	// CodeDanglingOperator: the line ends with an operator that has nothing
	// to act on.
	CodeDanglingOperator Code = "dangling-operator"
	// CodeOperatorStage: a stage's command name is an operator token.
	CodeOperatorStage Code = "operator-stage"
	// CodeIgnoredBackground: a '&' token before the end of the line is
	// dropped without backgrounding anything.
	CodeIgnoredBackground Code = "ignored-background"
	// CodeDuplicateRedirect: a stream is redirected more than once and only
	// the first redirection takes effect.
	CodeDuplicateRedirect Code = "duplicate-redirect"
)

// Problem is one lint finding. Findings never change how a line parses.
type Problem struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Code, p.Message)
}

// Lint reports constructs the parser accepts silently but almost certainly
// not the way the author meant them. The parse result for the line is
// exactly what Parse returns; findings are advisory.
func Lint(line string) []Problem {
	raw := token.Trim(line)
	tokens := token.Split(raw)

	var problems []Problem
	report := func(code Code, format string, args ...interface{}) {
		problems = append(problems, Problem{
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if token.Unclosed(raw) {
		report(CodeUnclosedQuote, "line ends inside an open double quote; the unfinished literal is dropped")
	}

	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last == OpPipe || isRedirectOp(last) {
			report(CodeDanglingOperator, "%q at the end of the line has no operand and does nothing", last)
		}
	}

	for i, p := range stages(tokens) {
		if IsOperator(p.Args[0]) {
			report(CodeOperatorStage, "stage %d has operator %q as its command name", i, p.Args[0])
		}
	}

	backgrounds := 0
	for _, tok := range tokens {
		if tok == OpBackground {
			backgrounds++
		}
	}
	// A final "&" token backgrounds the job only when it also ends the
	// raw line, so only that one is not ignored.
	if n := len(tokens); n > 0 && tokens[n-1] == OpBackground &&
		len(raw) > 0 && raw[len(raw)-1] == '&' {
		backgrounds--
	}
	if backgrounds > 0 {
		report(CodeIgnoredBackground, "'&' backgrounds the job only as the last character of the line; elsewhere it is dropped")
	}

	for _, c := range redirectCounts(tokens) {
		if c.count > 1 {
			report(CodeDuplicateRedirect, "%s is redirected %d times; only the first takes effect", c.stream, c.count)
		}
	}

	return problems
}

type streamCount struct {
	stream string
	count  int
}

// redirectCounts tallies redirections per stream. An operator only counts
// when a target token follows it.
func redirectCounts(tokens []string) []streamCount {
	counts := []streamCount{{stream: "stdin"}, {stream: "stdout"}, {stream: "stderr"}}
	for i := 1; i < len(tokens); i++ {
		switch tokens[i-1] {
		case OpStdin:
			counts[0].count++
		case OpStdout, OpStdoutAppend:
			counts[1].count++
		case OpStderr, OpStderrAppend:
			counts[2].count++
		}
	}
	return counts
}
