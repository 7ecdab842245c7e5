package metrics

// Table is the aggregated result of a computation run: a mapping from metric
// name to a per-vertex column. Every column has exactly NumVertices entries,
// index-aligned with the graph's vertex index space, with NaN marking vertices
// for which no valid value was computed.
type Table struct {
	numVertices int
	columns     map[string][]float64
	order       []string
}

// NewTable creates an empty table for a graph with n vertices.
func NewTable(n int) *Table {
	return &Table{
		numVertices: n,
		columns:     make(map[string][]float64),
	}
}

// NumVertices returns the shared column length.
func (t *Table) NumVertices() int {
	return t.numVertices
}

// Set stores a metric column, defensively re-sanitizing it to the table's
// vertex count so the length invariant always holds. Setting an existing name
// replaces its column without changing the name order.
func (t *Table) Set(name string, values []float64) {
	if _, exists := t.columns[name]; !exists {
		t.order = append(t.order, name)
	}
	t.columns[name] = Sanitize(values, t.numVertices)
}

// Column returns the column for a metric name, or nil if absent.
func (t *Table) Column(name string) []float64 {
	return t.columns[name]
}

// Names returns the metric names in insertion order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of metric columns.
func (t *Table) Len() int {
	return len(t.order)
}
