package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nngcluster/cluster"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/oracle"
)

var (
	clusterInput       string
	clusterOutput      string
	clusterK           int
	clusterIndex       string
	clusterUnassigned  string
	clusterRadius      float64
	clusterBatchSize   int
	clusterPrimaryFile string
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster a point set via live nearest-neighbor search",
	Long: `cluster reads a point set and groups it into clusters of a seed
plus its k nearest neighbors (k+1 points each), searching for neighbors
live against the point set (no nearest-neighbor digraph is built up front).`,
	RunE: runCluster,
}

func init() {
	rootCmd.AddCommand(clusterCmd)

	clusterCmd.Flags().StringVarP(&clusterInput, "input", "i", "", "CSV file of points, one row per point (required)")
	clusterCmd.Flags().StringVarP(&clusterOutput, "output", "o", "labels.csv", "CSV file to write point,label pairs to")
	clusterCmd.Flags().IntVarP(&clusterK, "k", "k", 2, "neighbors claimed per seed (clusters are a seed plus k neighbors)")
	clusterCmd.Flags().StringVar(&clusterIndex, "index", "bruteforce", "search index: bruteforce or kdtree")
	clusterCmd.Flags().StringVar(&clusterUnassigned, "unassigned", "ignore", "disposition of an unseedable candidate: ignore or any_neighbor")
	clusterCmd.Flags().Float64Var(&clusterRadius, "radius", 0, "maximum squared-Euclidean neighbor distance; 0 means unconstrained")
	clusterCmd.Flags().IntVar(&clusterBatchSize, "batch-size", 0, "points per search call; 0 means a single batch covering every point")
	clusterCmd.Flags().StringVar(&clusterPrimaryFile, "primary", "", "optional file of point indices (one per line) eligible to become seeds")
	clusterCmd.MarkFlagRequired("input")
}

func runCluster(cmd *cobra.Command, args []string) error {
	log := Logger()

	points, err := readPointsCSV(clusterInput)
	if err != nil {
		return err
	}
	log.Info("loaded %d points from %s", len(points), clusterInput)

	u, err := parseUnassignedMethod(clusterUnassigned)
	if err != nil {
		return err
	}

	var primary []ids.PointIndex
	if clusterPrimaryFile != "" {
		primary, err = readIntListFile(clusterPrimaryFile)
		if err != nil {
			return err
		}
		log.Info("restricting candidates to %d primary points", len(primary))
	}

	oc, err := newOracle(clusterIndex, points)
	if err != nil {
		return err
	}
	defer oc.Close()

	radiusSet := clusterRadius > 0
	c, cErr := cluster.NNGClusteringBatches(context.Background(), len(points), nil, oc, clusterK, u, clusterRadius, radiusSet, primary, clusterBatchSize)
	if cErr != nil {
		return errors.Errorf("clustering failed: %s", cErr.Error())
	}

	unassignedCount := 0
	for _, l := range c.Label() {
		if l == ids.CNA {
			unassignedCount++
		}
	}
	log.Info("formed %d clusters, %d points unassigned", c.NumClusters(), unassignedCount)

	if err := writeLabelsCSV(clusterOutput, c.Label()); err != nil {
		return err
	}
	log.Info("wrote labels to %s", clusterOutput)
	return nil
}

func newOracle(name string, points [][]float64) (oracle.Oracle, error) {
	switch name {
	case "bruteforce", "":
		oc, err := oracle.NewBruteForce(points, nil)
		if err != nil {
			return nil, err
		}
		return oc, nil
	case "kdtree":
		oc, err := oracle.NewKDTree(points, nil)
		if err != nil {
			return nil, err
		}
		return oc, nil
	default:
		return nil, errors.Errorf("unknown search index %q (valid: bruteforce, kdtree)", name)
	}
}

func parseUnassignedMethod(s string) (cluster.UnassignedMethod, error) {
	switch s {
	case "ignore", "":
		return cluster.Ignore, nil
	case "any_neighbor":
		return cluster.AnyNeighbor, nil
	default:
		return 0, errors.Errorf("unknown unassigned method %q (valid: ignore, any_neighbor)", s)
	}
}
