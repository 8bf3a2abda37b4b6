package table

import (
	"strconv"

	"github.com/arloliu/udf/internal/pool"
	"github.com/arloliu/udf/wiretype"
)

// Column is one dense, nullable column of the output table. Exactly one of
// the typed backing slices is populated, selected by Logical. Columns made
// by newColumn or by the scaling pass borrow their backing storage from
// internal/pool; the Time in ns column holds the timestamp slice it is
// given and is not pooled.
type Column struct {
	Name     string
	Logical  wiretype.Logical
	Metadata map[string]string

	// nonNullable is true only for the Time in ns column, which the
	// format guarantees has no nulls; valid is nil in that case.
	nonNullable bool
	valid       *bitmap

	i8  []int8
	u8  []uint8
	i16 []int16
	u16 []uint16
	i32 []int32
	u32 []uint32
	i64 []int64
	u64 []uint64
	f32 []float32
	f64 []float64
	str []string

	releasePooled func()
}

// newColumn allocates a Column with rows nulls of the given logical type.
func newColumn(name string, logical wiretype.Logical, rows int, scalingFactor float64) *Column {
	c := &Column{
		Name:     name,
		Logical:  logical,
		Metadata: map[string]string{"scaling_factor": strconv.FormatFloat(scalingFactor, 'g', -1, 64)},
		valid:    newBitmap(rows),
	}

	switch logical {
	case wiretype.Int8:
		c.i8, c.releasePooled = pool.GetInt8Slice(rows)
	case wiretype.Uint8:
		c.u8, c.releasePooled = pool.GetUint8Slice(rows)
	case wiretype.Int16:
		c.i16, c.releasePooled = pool.GetInt16Slice(rows)
	case wiretype.Uint16:
		c.u16, c.releasePooled = pool.GetUint16Slice(rows)
	case wiretype.Int32:
		c.i32, c.releasePooled = pool.GetInt32Slice(rows)
	case wiretype.Uint32:
		c.u32, c.releasePooled = pool.GetUint32Slice(rows)
	case wiretype.Int64:
		c.i64, c.releasePooled = pool.GetInt64Slice(rows)
	case wiretype.Uint64:
		c.u64, c.releasePooled = pool.GetUint64Slice(rows)
	case wiretype.Float32:
		c.f32, c.releasePooled = pool.GetFloat32Slice(rows)
	case wiretype.Float64:
		c.f64, c.releasePooled = pool.GetFloat64Slice(rows)
	case wiretype.UTF8:
		c.str, c.releasePooled = pool.GetStringSlice(rows)
	}

	return c
}

// newTimeColumn builds the always-valid, non-nullable "Time in ns" column.
func newTimeColumn(timestamps []uint64) *Column {
	return &Column{
		Name:        "Time in ns",
		Logical:     wiretype.Uint64,
		Metadata:    map[string]string{"scaling_factor": "1.0"},
		nonNullable: true,
		u64:         timestamps,
	}
}

// set writes v (as decoded by a wiretype.TypeDescriptor) into row.
func (c *Column) set(row int, v any) {
	c.valid.set(row)

	switch val := v.(type) {
	case int8:
		c.i8[row] = val
	case uint8:
		c.u8[row] = val
	case int16:
		c.i16[row] = val
	case uint16:
		c.u16[row] = val
	case int32:
		c.i32[row] = val
	case uint32:
		c.u32[row] = val
	case int64:
		c.i64[row] = val
	case uint64:
		c.u64[row] = val
	case float32:
		c.f32[row] = val
	case float64:
		c.f64[row] = val
	case string:
		c.str[row] = val
	}
}

// Len returns the column's row count.
func (c *Column) Len() int {
	switch {
	case c.i8 != nil:
		return len(c.i8)
	case c.u8 != nil:
		return len(c.u8)
	case c.i16 != nil:
		return len(c.i16)
	case c.u16 != nil:
		return len(c.u16)
	case c.i32 != nil:
		return len(c.i32)
	case c.u32 != nil:
		return len(c.u32)
	case c.i64 != nil:
		return len(c.i64)
	case c.u64 != nil:
		return len(c.u64)
	case c.f32 != nil:
		return len(c.f32)
	case c.f64 != nil:
		return len(c.f64)
	default:
		return len(c.str)
	}
}

// IsValid reports whether row holds a non-null value.
func (c *Column) IsValid(row int) bool {
	if c.nonNullable {
		return true
	}

	return c.valid.get(row)
}

// At returns the value at row and whether it is valid (non-null).
func (c *Column) At(row int) (any, bool) {
	if !c.IsValid(row) {
		return nil, false
	}

	switch c.Logical {
	case wiretype.Int8:
		return c.i8[row], true
	case wiretype.Uint8:
		return c.u8[row], true
	case wiretype.Int16:
		return c.i16[row], true
	case wiretype.Uint16:
		return c.u16[row], true
	case wiretype.Int32:
		return c.i32[row], true
	case wiretype.Uint32:
		return c.u32[row], true
	case wiretype.Int64:
		return c.i64[row], true
	case wiretype.Uint64:
		return c.u64[row], true
	case wiretype.Float32:
		return c.f32[row], true
	case wiretype.Float64:
		return c.f64[row], true
	case wiretype.UTF8:
		return c.str[row], true
	default:
		return nil, false
	}
}

// NonNullCount returns the number of valid (non-null) rows.
func (c *Column) NonNullCount() int {
	if c.nonNullable {
		return c.Len()
	}

	return c.valid.count()
}

// Release returns the column's pooled backing slice, if any, to
// internal/pool for reuse by a later Build/Scale call. Callers that hold a
// Table only briefly (e.g. immediately writing it out to a Parquet/CSV
// collaborator) may call Table.Release when done; it is optional bookkeeping,
// never required for correctness, since an unreleased slice is simply
// garbage-collected like any other.
func (c *Column) Release() {
	if c.releasePooled != nil {
		c.releasePooled()
	}
}

// scalingFactor reads back the column's scaling_factor metadata.
func (c *Column) scalingFactor() float64 {
	f, err := strconv.ParseFloat(c.Metadata["scaling_factor"], 64)
	if err != nil {
		return 1.0
	}

	return f
}

// toFloat64 returns a new Column with the same name, validity and
// scaling_factor metadata, but every valid cell promoted to float64 and
// multiplied by factor.
func (c *Column) toFloat64(factor float64) *Column {
	rows := c.Len()
	out := &Column{
		Name:        c.Name,
		Logical:     wiretype.Float64,
		Metadata:    map[string]string{"scaling_factor": c.Metadata["scaling_factor"]},
		nonNullable: c.nonNullable,
	}

	slice, release := pool.GetFloat64Slice(rows)
	out.f64 = slice
	out.releasePooled = release

	if !c.nonNullable {
		out.valid = newBitmap(rows)
	}

	for row := 0; row < rows; row++ {
		v, ok := c.At(row)
		if !ok {
			continue
		}

		if !c.nonNullable {
			out.valid.set(row)
		}
		out.f64[row] = toFloat64Scalar(v) * factor
	}

	return out
}

func toFloat64Scalar(v any) float64 {
	switch val := v.(type) {
	case int8:
		return float64(val)
	case uint8:
		return float64(val)
	case int16:
		return float64(val)
	case uint16:
		return float64(val)
	case int32:
		return float64(val)
	case uint32:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	case float64:
		return val
	default:
		return 0
	}
}
