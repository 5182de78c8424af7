package pipeline

import "encoding/json"

// Operator tokens recognized by the builder. Tokens are matched whole, so
// ">>" is never mistaken for ">".
const (
	OpPipe         = "|"
	OpBackground   = "&"
	OpStdin        = "<"
	OpStdout       = ">"
	OpStdoutAppend = ">>"
	OpStderr       = "e>"
	OpStderrAppend = "e>>"
)

// IsOperator reports whether tok is a control or redirection operator.
func IsOperator(tok string) bool {
	return tok == OpPipe || tok == OpBackground || isRedirectOp(tok)
}

// isRedirectOp reports whether tok names a stream redirection. Pipe and
// background markers are control operators, not redirections.
func isRedirectOp(tok string) bool {
	switch tok {
	case OpStdin, OpStdout, OpStdoutAppend, OpStderr, OpStderrAppend:
		return true
	}
	return false
}

// Mode distinguishes how an output target is opened.
type Mode int

const (
	// ModeNone marks targets that are read or inherited rather than opened
	// for writing.
	ModeNone Mode = iota
	// ModeTruncate opens the target write-only, creating or truncating it.
	ModeTruncate
	// ModeAppend opens the target write-only, appending to it.
	ModeAppend
)

func (m Mode) String() string {
	switch m {
	case ModeTruncate:
		return "truncate"
	case ModeAppend:
		return "append"
	default:
		return "none"
	}
}

// MarshalJSON encodes the mode as its lowercase name.
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

type targetKind int

const (
	kindStandardIn targetKind = iota
	kindStandardOut
	kindStandardError
	kindFile
)

// Target is where a standard stream of a pipeline connects: one of the
// three inherited standard streams, or an explicit file path named by a
// redirection.
type Target struct {
	kind targetKind
	path string
}

// The inherited stream targets. A stage whose stream was never redirected
// keeps one of these.
var (
	StandardIn    = Target{kind: kindStandardIn}
	StandardOut   = Target{kind: kindStandardOut}
	StandardError = Target{kind: kindStandardError}
)

// File returns a Target naming an explicit path.
func File(path string) Target {
	return Target{kind: kindFile, path: path}
}

// IsDefault reports whether the target is an inherited standard stream.
func (t Target) IsDefault() bool {
	return t.kind != kindFile
}

// Path returns the explicit file path and whether one is set.
func (t Target) Path() (string, bool) {
	return t.path, t.kind == kindFile
}

func (t Target) String() string {
	switch t.kind {
	case kindStandardIn:
		return "STDIN_FILENO"
	case kindStandardOut:
		return "STDOUT_FILENO"
	case kindStandardError:
		return "STDERR_FILENO"
	default:
		return t.path
	}
}

// MarshalJSON encodes inherited streams as {"standard": name} and explicit
// targets as {"path": name}.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.kind == kindFile {
		return json.Marshal(struct {
			Path string `json:"path"`
		}{t.path})
	}
	var name string
	switch t.kind {
	case kindStandardIn:
		name = "stdin"
	case kindStandardOut:
		name = "stdout"
	default:
		name = "stderr"
	}
	return json.Marshal(struct {
		Standard string `json:"standard"`
	}{name})
}

// Redirect pairs a stream target with the open mode the operator implies.
type Redirect struct {
	Target Target `json:"target"`
	Mode   Mode   `json:"mode"`
}

// redirects extracts the three stream descriptors from a token list. Only
// the first operator for each stream takes effect, the token after an
// operator is its target no matter what it looks like, and an operator
// that ends the line has no target and is ignored.
func redirects(tokens []string) (stdin, stdout, stderr Redirect) {
	stdin = Redirect{Target: StandardIn}
	stdout = Redirect{Target: StandardOut}
	stderr = Redirect{Target: StandardError}

	var haveIn, haveOut, haveErr bool
	for i := 1; i < len(tokens); i++ {
		switch tokens[i-1] {
		case OpStdin:
			if !haveIn {
				stdin = Redirect{Target: File(tokens[i])}
				haveIn = true
			}
		case OpStdout, OpStdoutAppend:
			if !haveOut {
				stdout = Redirect{Target: File(tokens[i]), Mode: outMode(tokens[i-1])}
				haveOut = true
			}
		case OpStderr, OpStderrAppend:
			if !haveErr {
				stderr = Redirect{Target: File(tokens[i]), Mode: outMode(tokens[i-1])}
				haveErr = true
			}
		}
	}
	return stdin, stdout, stderr
}

func outMode(op string) Mode {
	if op == OpStdoutAppend || op == OpStderrAppend {
		return ModeAppend
	}
	return ModeTruncate
}
