package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/internal/config"
)

// NewCmdRoot assembles the command tree around a.
func NewCmdRoot(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "Explore the word-adjacency graph of a text corpus.",
		Long: `wordgraph turns a text file into a directed graph of adjacent words and
answers questions about it: bridge words, bridge-word text expansion,
shortest paths and random walks. Graphs are exported as Graphviz DOT.

  wordgraph -f corpus.txt bridge explore new
  wordgraph -f corpus.txt path to new`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	v := a.loader.Viper()
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.wordgraph/config.yaml)")
	flags.StringVarP(&a.format, "output", "o", outputText, "result format: text, yaml or json")
	flags.StringP("corpus", "f", "", "corpus text file")
	flags.String("output-dir", ".", "directory for generated files")
	flags.Int64("seed", 0, "random seed (0 = time based)")
	flags.Bool("render", true, "run Graphviz on generated DOT files")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	v.BindPFlag(config.KeyCorpus, flags.Lookup("corpus"))
	v.BindPFlag(config.KeyOutputDir, flags.Lookup("output-dir"))
	v.BindPFlag(config.KeySeed, flags.Lookup("seed"))
	v.BindPFlag(config.KeyRenderEnabled, flags.Lookup("render"))
	v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	cmd.AddCommand(
		newCmdShow(a),
		newCmdBridge(a),
		newCmdGenerate(a),
		newCmdPath(a),
		newCmdWalk(a),
		newCmdMenu(a),
	)

	return cmd
}
