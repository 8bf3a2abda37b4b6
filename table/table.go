// Package table implements the UDF TableBuilder: it materialises the
// sparse per-sensor sample streams produced by the body parser into a
// dense, column-oriented table, and implements the separate scaling pass.
package table

import (
	"fmt"

	"github.com/arloliu/udf/body"
	"github.com/arloliu/udf/errs"
	"github.com/arloliu/udf/header"
	"github.com/arloliu/udf/wiretype"
)

// Table is a dense columnar result: Columns[0] is always "Time in ns"
// (non-null uint64), Columns[1] is always "Labels" (nullable utf8), and
// Columns[2:] are one per (sensor, axis) pair in ascending
// (sensor-tag, axis-index) order.
type Table struct {
	Columns  []*Column
	Metadata map[string]string
}

// RowCount returns the table's row count (equal to the length of the Time
// in ns column, per spec §8 invariant 1).
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}

	return t.Columns[0].Len()
}

// Release returns every column's pooled backing slice to internal/pool.
// Optional: see Column.Release.
func (t *Table) Release() {
	for _, c := range t.Columns {
		c.Release()
	}
}

// Column looks up a data column by its "<sensor>.<axis>" name.
func (t *Table) Column(name string) (*Column, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrColumnNotFound, name)
}

// Build materialises h's schemata and res's parsed streams into a dense
// Table, per spec §4.4.
func Build(h *header.Header, res *body.Result) (*Table, error) {
	rows := len(res.Timestamps)

	columns := make([]*Column, 0, 2+estimateAxisCount(h))
	columns = append(columns, newTimeColumn(append([]uint64(nil), res.Timestamps...)))
	columns = append(columns, buildLabelsColumn(res.Labels, rows))

	for _, tag := range h.Tags() {
		schema, ok := h.SensorByTag(tag)
		if !ok {
			continue
		}

		samples, ok := res.Samples[tag]
		if !ok {
			// Pruned by the body parser: zero events for this sensor.
			continue
		}

		for axisIdx, axis := range schema.Axes {
			col := newColumn(schema.Name+"."+axis.Name, axis.Type.Logical, rows, schema.ScalingFactor)

			axisSamples := samples.Axes[axisIdx]
			for k, v := range axisSamples.Values {
				row := axisSamples.TSIndices[k]
				if row < 0 || row >= rows {
					continue
				}
				col.set(row, v)
			}

			columns = append(columns, col)
		}
	}

	return &Table{
		Columns:  columns,
		Metadata: map[string]string{"Was Scaled": "False"},
	}, nil
}

func estimateAxisCount(h *header.Header) int {
	n := 0
	for _, tag := range h.Tags() {
		if s, ok := h.SensorByTag(tag); ok {
			n += len(s.Axes)
		}
	}

	return n
}

func buildLabelsColumn(labels []*string, rows int) *Column {
	col := newColumn("Labels", wiretype.UTF8, rows, 1.0)
	for i, l := range labels {
		if l != nil {
			col.set(i, *l)
		}
	}

	return col
}
