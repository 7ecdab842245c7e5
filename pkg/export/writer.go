// Package export implements the persistence boundary: the metrics table is
// written as a tabular CSV indexed by vertex id and as a gzip-compressed JSON
// bundle keyed by metric name. Both forms preserve the vertex-count alignment
// of every column; the missing marker round-trips as "NaN" in the CSV and as
// null in the bundle.
package export

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gilchrisn/network-metrics-service/pkg/metrics"
)

// WriteAll writes both persisted forms of the table into outputDir, creating
// the directory if needed. It returns the CSV path and the bundle path.
func WriteAll(table *metrics.Table, outputDir, prefix string) (string, string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(outputDir, fmt.Sprintf("%s_metrics.csv", prefix))
	if err := WriteCSV(table, csvPath); err != nil {
		return "", "", fmt.Errorf("failed to write csv: %w", err)
	}

	bundlePath := filepath.Join(outputDir, fmt.Sprintf("%s_metrics.json.gz", prefix))
	if err := WriteBundle(table, bundlePath); err != nil {
		return "", "", fmt.Errorf("failed to write bundle: %w", err)
	}

	return csvPath, bundlePath, nil
}

// WriteCSV writes the table with one row per vertex id and one column per
// metric. Missing values are rendered as "NaN".
func WriteCSV(table *metrics.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	names := table.Names()

	header := append([]string{"vertex_id"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for v := 0; v < table.NumVertices(); v++ {
		row[0] = strconv.Itoa(v)
		for i, name := range names {
			row[i+1] = formatValue(table.Column(name)[v])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteBundle writes the table as a gzip-compressed JSON object keyed by
// metric name, the compact multi-array form meant for programmatic reload.
func WriteBundle(table *metrics.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	gz := gzip.NewWriter(file)

	bundle := make(map[string]jsonColumn, table.Len())
	for _, name := range table.Names() {
		bundle[name] = jsonColumn(table.Column(name))
	}

	if err := json.NewEncoder(gz).Encode(bundle); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}

// ReadBundle loads a bundle written by WriteBundle, restoring nulls to NaN.
func ReadBundle(path string) (map[string][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle %s: %w", path, err)
	}
	defer gz.Close()

	var raw map[string][]*float64
	if err := json.NewDecoder(gz).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode bundle %s: %w", path, err)
	}

	out := make(map[string][]float64, len(raw))
	for name, column := range raw {
		values := make([]float64, len(column))
		for i, v := range column {
			if v == nil {
				values[i] = math.NaN()
			} else {
				values[i] = *v
			}
		}
		out[name] = values
	}
	return out, nil
}

// jsonColumn marshals a metric column with NaN encoded as null, since JSON
// has no NaN literal.
type jsonColumn []float64

func (c jsonColumn) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) {
			buf.WriteString("null")
		} else {
			buf.Write(strconv.AppendFloat(nil, v, 'g', -1, 64))
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
