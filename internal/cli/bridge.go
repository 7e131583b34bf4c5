package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/core"
)

func newCmdBridge(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "List the bridge words from WORD1 to WORD2",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.runBridge(g, args[0], args[1])
		},
	}
}

func (a *App) runBridge(g *core.Graph, w1, w2 string) error {
	res, err := bridge.Query(g, w1, w2)
	if err != nil {
		return err
	}

	return a.emit(res)
}

// generated pairs the input text with its bridge-word expansion.
type generated struct {
	Input  string `json:"input"  yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

func (g generated) String() string { return g.Output }

func newCmdGenerate(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Insert a bridge word between every adjacent pair of TEXT",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.runGenerate(g, strings.Join(args, " "))
		},
	}
}

func (a *App) runGenerate(g *core.Graph, text string) error {
	out, err := bridge.GenerateText(g, text, bridge.WithRand(a.rng))
	if err != nil {
		return err
	}
	a.notef("Modified text with bridge words:\n")

	return a.emit(generated{Input: text, Output: out})
}
