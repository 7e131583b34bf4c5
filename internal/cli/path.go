package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/dot"
	"github.com/katalvlaran/wordgraph/internal/render"
)

func newCmdPath(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM [TO]",
		Short: "Shortest weighted path from FROM to TO, or to every word",
		Long: `Path length is the sum of edge weights along the path. With TO the path is
also exported as DOT with its edges highlighted. Without TO one result per
other word is printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			to := ""
			if len(args) == 2 {
				to = args[1]
			}
			return a.runPath(cmd.Context(), g, args[0], to)
		},
	}
}

// runPath answers a single-pair query, or a single-source query when to
// is empty.
func (a *App) runPath(ctx context.Context, g *core.Graph, from, to string) error {
	if to == "" {
		res, err := dijkstra.ShortestPathsFrom(g, from)
		if err != nil {
			return err
		}
		return a.emit(res)
	}

	res, err := dijkstra.ShortestPath(g, from, to)
	if err != nil {
		return err
	}
	if err := a.emit(res); err != nil {
		return err
	}
	if res.Status != dijkstra.PathFound {
		return nil
	}

	text, err := dot.Export(g, dot.WithHighlight(res.Path))
	if err != nil {
		return err
	}
	dotPath, img, err := a.renderer.Publish(ctx, render.ShortestPathFile, text)
	if err != nil {
		return err
	}
	a.reportSaved("Shortest path", dotPath, img)

	return nil
}
