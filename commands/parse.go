package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/jobline-sh/jobline/core/pipeline"
	"github.com/jobline-sh/jobline/core/token"
)

var parseCmd = &Command{
	Name:  "parse",
	Short: "Parse a line without registering it and print the result.",
	Run:   Parse,
}

// Parse renders the pipeline for the line after the command name. The -o
// flag selects the text, json or yaml rendering.
func Parse(env *Env) int {
	line := env.Line
	format := "text"
	if fields := token.Fields(line); len(fields) >= 2 && (fields[0] == "-o" || fields[0] == "--output") {
		format = fields[1]
		line = token.Rest(line, 2)
	}

	req := pipeline.Parse(line)
	if err := WriteRequest(env.Stdout, req, format); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return 1
	}
	return 0
}

// WriteRequest renders req to w as text, json or yaml.
func WriteRequest(w io.Writer, req *pipeline.Request, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, req.String())
		return err
	case "json":
		out, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(out))
		return err
	default:
		return fmt.Errorf("unknown output format %q, want text, json or yaml", format)
	}
}

func init() {
	register(parseCmd)
}
