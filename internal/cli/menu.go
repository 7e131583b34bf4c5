package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/core"
)

const menuText = `1. Show directed graph
2. Query bridge words
3. Generate new text
4. Calc shortest path
5. Random walk
0. Exit
`

func newCmdMenu(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive numbered menu over stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.runMenu(cmd.Context(), g)
		},
	}
}

// runMenu loops until "0" or end of input. Query errors end the loop.
func (a *App) runMenu(ctx context.Context, g *core.Graph) error {
	for {
		a.notef("%s", menuText)
		line, ok := a.readLine()
		if !ok {
			return nil
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = -1
		}

		var err error

		switch choice {
		case 0:
			return nil
		case 1:
			err = a.runShow(ctx, g)
		case 2:
			w1, ok1 := a.prompt("Enter word1: ")
			w2, ok2 := a.prompt("Enter word2: ")
			if !ok1 || !ok2 {
				return nil
			}
			err = a.runBridge(g, w1, w2)
		case 3:
			text, ok := a.prompt("Enter your text:\n")
			if !ok {
				return nil
			}
			err = a.runGenerate(g, text)
		case 4:
			from, ok1 := a.prompt("Enter the first word: ")
			to, ok2 := a.prompt("Enter the second word (empty for all words): ")
			if !ok1 || !ok2 {
				return nil
			}
			err = a.runPath(ctx, g, from, strings.TrimSpace(to))
		case 5:
			err = a.runWalk(g, walkFlags{interactive: true})
		default:
			a.notef("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) prompt(msg string) (string, bool) {
	a.notef("%s", msg)

	return a.readLine()
}
