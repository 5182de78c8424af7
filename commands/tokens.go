package commands

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/jobline-sh/jobline/core/token"
)

var tokensCmd = &Command{
	Name:  "tokens",
	Short: "Show how a line splits into tokens.",
	Run:   Tokens,
}

// Tokens prints one normalized token per line. With -p the line is split by
// a strict POSIX lexer instead, for comparing the two behaviors.
func Tokens(env *Env) int {
	line := env.Line
	posix := false
	if fields := token.Fields(line); len(fields) > 0 && (fields[0] == "-p" || fields[0] == "--posix") {
		posix = true
		line = token.Rest(line, 1)
	}

	if posix {
		toks, err := shlex.Split(line, true)
		if err != nil {
			fmt.Fprintf(env.Stderr, "posix: %v\n", err)
			return 1
		}
		printTokens(env, toks)
		return 0
	}

	printTokens(env, token.Split(line))
	if token.Unclosed(line) {
		fmt.Fprintln(env.Stdout, env.Sprintf(ColorBoldRed, "(open quote: unfinished literal dropped)"))
	}
	return 0
}

func printTokens(env *Env, toks []string) {
	for i, tok := range toks {
		fmt.Fprintf(env.Stdout, "%d: %q\n", i, tok)
	}
}

func init() {
	register(tokensCmd)
}
