package cmd

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nngcluster/cluster"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
)

var (
	graphInput  string
	graphOutput string
	graphMethod string
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Select seeds directly over a precomputed nearest-neighbor digraph",
	Long: `graph reads a tail,head edge list (a nearest-neighbor digraph built
elsewhere) and runs one of the six seed-selection heuristics over it
directly, without touching a search oracle.`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVarP(&graphInput, "input", "i", "", "CSV edge list of tail,head pairs (required)")
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "labels.csv", "CSV file to write point,label pairs to")
	graphCmd.Flags().StringVar(&graphMethod, "method", "lexical", "seed method: lexical, inwards_order, inwards_updating, inwards_alt_updating, exclusion_order, exclusion_updating")
	graphCmd.MarkFlagRequired("input")
}

func runGraph(cmd *cobra.Command, args []string) error {
	log := Logger()

	edges, err := readEdgeListCSV(graphInput)
	if err != nil {
		return err
	}

	g, gErr := buildDigraph(edges)
	if gErr != nil {
		return gErr
	}
	log.Info("loaded digraph: %d vertices, %d arcs", g.Vertices(), g.Arcs())

	method, err := parseSeedMethod(graphMethod)
	if err != nil {
		return err
	}

	c, cErr := cluster.NNGClusteringFromGraph(g, method)
	if cErr != nil {
		return errors.Errorf("seed selection failed: %s", cErr.Error())
	}

	unassignedCount := 0
	for _, l := range c.Label() {
		if l == ids.CNA {
			unassignedCount++
		}
	}
	log.Info("formed %d clusters, %d points unassigned", c.NumClusters(), unassignedCount)

	if err := writeLabelsCSV(graphOutput, c.Label()); err != nil {
		return err
	}
	log.Info("wrote labels to %s", graphOutput)
	return nil
}

// buildDigraph assembles a CSR digraph.Digraph from an unsorted edge
// list, grouping arcs by tail (digraph.Digraph requires a tail-sorted
// Head buffer).
func buildDigraph(edges [][2]int) (*digraph.Digraph, error) {
	n := 0
	for _, e := range edges {
		if e[0]+1 > n {
			n = e[0] + 1
		}
		if e[1]+1 > n {
			n = e[1] + 1
		}
	}

	byTail := make([][]int, n)
	for _, e := range edges {
		byTail[e[0]] = append(byTail[e[0]], e[1])
	}
	for _, row := range byTail {
		sort.Ints(row)
	}

	g, err := digraph.Init(n, len(edges))
	if err != nil {
		return nil, err
	}
	tailPtr := g.TailPtr()
	head := g.HeadMut()
	count := 0
	for v, row := range byTail {
		tailPtr[v] = count
		for _, x := range row {
			head[count] = x
			count++
		}
	}
	tailPtr[n] = count
	return g, nil
}

func parseSeedMethod(s string) (cluster.SeedMethod, error) {
	switch s {
	case "lexical", "":
		return cluster.Lexical, nil
	case "inwards_order":
		return cluster.InwardsOrder, nil
	case "inwards_updating":
		return cluster.InwardsUpdating, nil
	case "inwards_alt_updating":
		return cluster.InwardsAltUpdating, nil
	case "exclusion_order":
		return cluster.ExclusionOrder, nil
	case "exclusion_updating":
		return cluster.ExclusionUpdating, nil
	default:
		return 0, errors.Errorf("unknown seed method %q", s)
	}
}
