// Command konig generates random graphs for competitive-programming test
// inputs. It is a thin collaborator over the graph package: every
// interesting algorithm lives there, not here.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/algorithm-ninja/konig/graph"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "konig:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("konig", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("n", 0, "vertex count")
	seed := fs.Uint64("seed", 1, "PRNG seed")
	directed := fs.Bool("directed", false, "build a directed graph")
	shape := fs.String("shape", "", "path|cycle|star|wheel|clique|tree|forest|edges|dag|connect")
	m := fs.Int("m", 0, "edge count, for -shape=edges|forest|dag")
	weighted := fs.Bool("weighted", false, "emit a weight column (u+v) per edge")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []graph.Option
	opts = append(opts, graph.WithSeed(*seed))
	if *weighted {
		opts = append(opts, graph.WithWeighter(func(u, v int) (int64, bool) {
			return int64(u + v), true
		}))
	}

	var g *graph.Graph
	var err error
	if *directed {
		g, err = graph.NewDirected(*n, opts...)
	} else {
		g, err = graph.NewUndirected(*n, opts...)
	}
	if err != nil {
		return err
	}

	if err := applyShape(g, *shape, *m); err != nil {
		return err
	}

	_, err = g.WriteTo(stdout)

	return err
}

func applyShape(g *graph.Graph, shape string, m int) error {
	switch shape {
	case "", "none":
		return nil
	case "path":
		return g.BuildPath()
	case "cycle":
		return g.BuildCycle()
	case "star":
		return g.BuildStar()
	case "wheel":
		return g.BuildWheel()
	case "clique":
		return g.BuildClique()
	case "tree":
		return g.BuildTree()
	case "forest":
		return g.BuildForest(m)
	case "edges":
		return g.AddEdges(m)
	case "dag":
		return g.BuildDAG(m)
	case "connect":
		return g.Connect()
	default:
		return fmt.Errorf("unknown -shape %q", shape)
	}
}
