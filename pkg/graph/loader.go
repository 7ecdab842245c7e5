package graph

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadGraph loads a graph from a file, dispatching on the file extension:
// ".csv" is parsed as an adjacency matrix, everything else as an edge list.
// Load failures are fatal to the run and returned to the caller.
func LoadGraph(path string, directed bool) (*Graph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadAdjacencyMatrix(path, directed)
	default:
		return LoadEdgeList(path, directed)
	}
}

// LoadEdgeList loads a graph from an edge list file with one "source target"
// pair per line. Blank lines and lines starting with '#' are skipped. The
// vertex count is the maximum vertex id seen plus one.
func LoadEdgeList(path string, directed bool) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open edge list %s: %w", path, err)
	}
	defer file.Close()

	var edges [][2]int
	maxID := -1

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid edge on line %d of %s: %q", lineNum, path, line)
		}

		u, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid source on line %d of %s: %w", lineNum, path, err)
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid target on line %d of %s: %w", lineNum, path, err)
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("negative vertex id on line %d of %s", lineNum, path)
		}

		edges = append(edges, [2]int{u, v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read edge list %s: %w", path, err)
	}

	g := NewGraph(maxID+1, directed)
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// LoadAdjacencyMatrix loads a graph from a CSV adjacency matrix where row i,
// column j holds the entry for edge i -> j. Any entry greater than zero is an
// edge. For undirected graphs only the upper triangle (including the
// diagonal) is read so symmetric matrices do not produce duplicate edges.
func LoadAdjacencyMatrix(path string, directed bool) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open adjacency matrix %s: %w", path, err)
	}
	defer file.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cells := strings.Split(line, ",")
		row := make([]float64, len(cells))
		for j, cell := range cells {
			val, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid entry on line %d of %s: %w", lineNum, path, err)
			}
			row[j] = val
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adjacency matrix %s: %w", path, err)
	}

	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("adjacency matrix %s is not square: row %d has %d entries, expected %d", path, i, len(row), n)
		}
	}

	g := NewGraph(n, directed)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !directed && j < i {
				continue
			}
			if rows[i][j] > 0 {
				if err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}
