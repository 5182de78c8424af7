package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"
)

var helpCmd = &Command{
	Name:  "help",
	Short: "List the available commands.",
	Run:   Help,
}

// Help lists the registered meta commands.
func Help(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "help",
		Short: helpCmd.Short,
	}

	return cmd.Run(env, func() int {
		var names []string
		for name := range AllCommands {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(env.Stdout, 0, 8, 2, ' ', 0)
		for _, name := range names {
			fmt.Fprintf(w, ":%s\t%s\n", name, AllCommands[name].Short)
		}
		w.Flush()

		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, `Anything else is parsed as shell input. Type "exit" to quit.`)
		return 0
	})
}

func init() {
	register(helpCmd)
}
