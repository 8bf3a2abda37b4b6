package table

import "github.com/arloliu/udf/errs"

// Scale returns a new Table where every data column (excluding "Time in
// ns" and "Labels") is promoted to float64 and each non-null cell is
// multiplied by its column's scaling_factor metadata, per spec §4.4.
//
// Scale refuses to run twice on the same lineage: once a table's
// "Was Scaled" metadata is "True", Scale returns errs.ErrAlreadyScaled
// rather than silently doubling the exponent.
func Scale(t *Table) (*Table, error) {
	if t.Metadata["Was Scaled"] == "True" {
		return nil, errs.ErrAlreadyScaled
	}

	out := &Table{
		Columns:  make([]*Column, len(t.Columns)),
		Metadata: map[string]string{"Was Scaled": "True"},
	}

	for i, c := range t.Columns {
		switch i {
		case 0, 1: // Time in ns, Labels: unchanged.
			out.Columns[i] = c
		default:
			out.Columns[i] = c.toFloat64(c.scalingFactor())
		}
	}

	return out, nil
}
