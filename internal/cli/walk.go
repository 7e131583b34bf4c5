package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/render"
	"github.com/katalvlaran/wordgraph/walk"
)

type walkFlags struct {
	interactive bool
	start       string
}

func newCmdWalk(a *App) *cobra.Command {
	var f walkFlags
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Random walk until a dead end or a repeated edge",
		Long: `Starts at a random word and follows random outgoing edges. The walk ends at
a word without successors or when it draws an edge it already crossed.
With --interactive each step waits for a line on stdin; "stop" ends the walk.
The result is also written to random_walk.txt.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return a.runWalk(g, f)
		},
	}
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "confirm every step on stdin")
	cmd.Flags().StringVar(&f.start, "start", "", "start word instead of a random one")

	return cmd
}

func (a *App) runWalk(g *core.Graph, f walkFlags) error {
	opts := []walk.Option{walk.WithRand(a.rng)}
	if f.start != "" {
		opts = append(opts, walk.WithStart(f.start))
	}
	if f.interactive {
		a.notef("Press Enter to continue or type 'stop' to end:\n")
		opts = append(opts, walk.WithContinue(func(s walk.Step) bool {
			a.notef("%s -> %s ", s.From, s.To)
			line, ok := a.readLine()
			return !ok || !walk.IsStopDirective(line)
		}))
	}

	res, err := walk.Walk(g, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("walk finished", "reason", res.Reason, "steps", len(res.Steps))

	a.notef("Random walk result:\n")
	if err := a.emit(res); err != nil {
		return err
	}
	path, err := a.renderer.SaveText(render.RandomWalkFile, res.String())
	if err != nil {
		return err
	}
	a.notef("Random walk result saved to %s\n", path)

	return nil
}
