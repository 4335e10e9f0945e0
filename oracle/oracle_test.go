package oracle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nngcluster/oracle"
)

func onedPoints(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := 0; i < n; i++ {
		pts[i] = []float64{float64(i)}
	}
	return pts
}

func TestBruteForce_UniformLine(t *testing.T) {
	bf, err := oracle.NewBruteForce(onedPoints(10), nil)
	require.Nil(t, err)
	defer bf.Close()

	numOK, out, sErr := bf.Search(context.Background(), []int{5}, 2, 0, false)
	require.NoError(t, sErr)
	require.Equal(t, 1, numOK)
	require.ElementsMatch(t, []int{4, 6}, out)
}

func TestBruteForce_RadiusExcludesFarNeighbors(t *testing.T) {
	bf, err := oracle.NewBruteForce(onedPoints(10), nil)
	require.Nil(t, err)
	defer bf.Close()

	// radius=1 (squared Euclidean) admits only the immediate neighbors,
	// which is exactly 2 - a success.
	numOK, out, sErr := bf.Search(context.Background(), []int{5}, 2, 1, true)
	require.NoError(t, sErr)
	require.Equal(t, 1, numOK)
	require.ElementsMatch(t, []int{4, 6}, out)

	// radius=0 admits no neighbors at all - a failed row, all PNA.
	numOK2, out2, sErr2 := bf.Search(context.Background(), []int{5}, 2, 0, true)
	require.NoError(t, sErr2)
	require.Equal(t, 0, numOK2)
	require.Equal(t, []int{-1, -1}, out2)
}

func TestBruteForce_MultipleQueries(t *testing.T) {
	bf, err := oracle.NewBruteForce(onedPoints(6), nil)
	require.Nil(t, err)
	defer bf.Close()

	numOK, out, sErr := bf.Search(context.Background(), []int{0, 5}, 1, 0, false)
	require.NoError(t, sErr)
	require.Equal(t, 2, numOK)
	require.Equal(t, 1, out[0])
	require.Equal(t, 4, out[1])
}

func TestKDTree_AgreesWithBruteForce(t *testing.T) {
	pts := onedPoints(30)
	bf, err := oracle.NewBruteForce(pts, nil)
	require.Nil(t, err)
	defer bf.Close()
	kd, err := oracle.NewKDTree(pts, nil)
	require.Nil(t, err)
	defer kd.Close()

	queries := []int{0, 7, 15, 29}
	_, bfOut, bErr := bf.Search(context.Background(), queries, 3, 0, false)
	require.NoError(t, bErr)
	_, kdOut, kErr := kd.Search(context.Background(), queries, 3, 0, false)
	require.NoError(t, kErr)

	for i := range queries {
		require.ElementsMatch(t, bfOut[i*3:(i+1)*3], kdOut[i*3:(i+1)*3], "query %d", queries[i])
	}
}
