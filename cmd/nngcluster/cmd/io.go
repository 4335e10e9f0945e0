package cmd

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// readPointsCSV reads a headerless CSV of points, one row per point, all
// rows the same width.
func readPointsCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	points := make([][]float64, len(rows))
	for i, row := range rows {
		pt := make([]float64, len(row))
		for j, cell := range row {
			v, pErr := strconv.ParseFloat(cell, 64)
			if pErr != nil {
				return nil, errors.Wrapf(pErr, "%s:%d: invalid coordinate %q", path, i+1, cell)
			}
			pt[j] = v
		}
		points[i] = pt
	}
	return points, nil
}

// readEdgeListCSV reads a headerless CSV of "tail,head" integer pairs.
func readEdgeListCSV(path string) ([][2]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	edges := make([][2]int, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, errors.Errorf("%s:%d: expected exactly 2 columns (tail,head), got %d", path, i+1, len(row))
		}
		tail, tErr := strconv.Atoi(row[0])
		if tErr != nil {
			return nil, errors.Wrapf(tErr, "%s:%d: invalid tail index %q", path, i+1, row[0])
		}
		head, hErr := strconv.Atoi(row[1])
		if hErr != nil {
			return nil, errors.Wrapf(hErr, "%s:%d: invalid head index %q", path, i+1, row[1])
		}
		edges[i] = [2]int{tail, head}
	}
	return edges, nil
}

// readIntListFile reads one integer per line, ignoring blank lines.
func readIntListFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	var out []int
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		v, pErr := strconv.Atoi(row[0])
		if pErr != nil {
			return nil, errors.Wrapf(pErr, "%s:%d: invalid index %q", path, i+1, row[0])
		}
		out = append(out, v)
	}
	return out, nil
}

// writeLabelsCSV writes one "point,label" row per point, in point-index order.
func writeLabelsCSV(path string, labels []int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i, label := range labels {
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(label)}); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
	}
	w.Flush()
	return w.Error()
}
