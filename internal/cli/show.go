package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/dot"
	"github.com/katalvlaran/wordgraph/internal/render"
)

// adjacency is one line of the graph listing.
type adjacency struct {
	Word      string          `json:"word"      yaml:"word"`
	Neighbors []core.Neighbor `json:"neighbors" yaml:"neighbors"`
}

// listing is the whole graph in vertex enumeration order.
type listing []adjacency

// String renders "word -> next(weight) next(weight)" lines.
func (l listing) String() string {
	lines := make([]string, len(l))
	for i, adj := range l {
		var b strings.Builder
		b.WriteString(adj.Word)
		b.WriteString(" ->")
		for _, nb := range adj.Neighbors {
			fmt.Fprintf(&b, " %s(%d)", nb.ID, nb.Weight)
		}
		lines[i] = b.String()
	}

	return strings.Join(lines, "\n")
}

func listGraph(g *core.Graph) (listing, error) {
	vertices := g.Vertices()
	out := make(listing, 0, len(vertices))
	for _, v := range vertices {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		out = append(out, adjacency{Word: v, Neighbors: nbrs})
	}

	return out, nil
}

func newCmdShow(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the adjacency listing and export the graph as DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.runShow(cmd.Context(), g)
		},
	}
}

func (a *App) runShow(ctx context.Context, g *core.Graph) error {
	l, err := listGraph(g)
	if err != nil {
		return err
	}
	if err := a.emit(l); err != nil {
		return err
	}
	st := g.Stats()
	a.log.Info("graph stats",
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"total_weight", st.TotalWeight,
		"dead_ends", st.DeadEnds,
	)

	text, err := dot.Export(g)
	if err != nil {
		return err
	}
	dotPath, img, err := a.renderer.Publish(ctx, render.GraphFile, text)
	if err != nil {
		return err
	}
	a.reportSaved("Graph", dotPath, img)

	return nil
}

// reportSaved tells the user where exported files went.
func (a *App) reportSaved(what, dotPath, img string) {
	if img != "" {
		a.notef("%s visualization saved as: %s\n", what, img)
		return
	}
	a.notef("%s description saved as: %s\n", what, dotPath)
}
