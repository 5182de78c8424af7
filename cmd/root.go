package cmd

import (
	"bufio"
	"errors"
	"io/fs"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// forEachInputLine calls callback with the joined arguments, or with every
// line of stdin when no arguments were given.
func forEachInputLine(cmd *cobra.Command, args []string, callback func(line string) error) error {
	if len(args) > 0 {
		return callback(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := callback(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobline",
	Short: "Quote aware shell line parser",
	Long:  `Parses shell style input lines into job pipelines.`,
	// Run: func(cmd *cobra.Command, args []string) { },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
