// Package pool provides typed slice pools for reuse when materialising
// row-based body-parser output into dense table columns.
//
// table.Build allocates one backing slice per (sensor, axis) column, sized
// to the row count, on every decode. Pooling lets a process that decodes
// many UDF blobs in a row (a long-running ingest worker, say) reuse those
// allocations instead of feeding the GC a fresh slice per column per call.
package pool

import "sync"

// slicePool pools *[]T backing arrays for one column element type. Generic
// over T so every logical column type the wiretype registry
// produces (not just the three widest) gets a pooling benefit from one
// implementation, in the same spirit as internal/options' generic
// Option[T].
type slicePool[T any] struct {
	pool sync.Pool
}

func newSlicePool[T any]() *slicePool[T] {
	return &slicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// get retrieves and resizes a []T from the pool.
//
// The returned slice has length exactly size. If the pooled slice's
// capacity is insufficient, a new slice is allocated instead. The caller
// must call the returned cleanup function (typically via defer, or via
// table.Column.Release for longer-lived columns) to return the backing
// array to the pool.
func (p *slicePool[T]) get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var (
	int8Pool    = newSlicePool[int8]()
	uint8Pool   = newSlicePool[uint8]()
	int16Pool   = newSlicePool[int16]()
	uint16Pool  = newSlicePool[uint16]()
	int32Pool   = newSlicePool[int32]()
	uint32Pool  = newSlicePool[uint32]()
	int64Pool   = newSlicePool[int64]()
	uint64Pool  = newSlicePool[uint64]()
	float32Pool = newSlicePool[float32]()
	float64Pool = newSlicePool[float64]()
	stringPool  = newSlicePool[string]()
)

// GetInt8Slice retrieves and resizes an int8 slice from the pool. Backs the
// "s8" column type.
func GetInt8Slice(size int) ([]int8, func()) { return int8Pool.get(size) }

// GetUint8Slice retrieves and resizes a uint8 slice from the pool. Backs
// the "u8" column type.
func GetUint8Slice(size int) ([]uint8, func()) { return uint8Pool.get(size) }

// GetInt16Slice retrieves and resizes an int16 slice from the pool. Backs
// the "s16" column type.
func GetInt16Slice(size int) ([]int16, func()) { return int16Pool.get(size) }

// GetUint16Slice retrieves and resizes a uint16 slice from the pool. Backs
// the "u16" column type.
func GetUint16Slice(size int) ([]uint16, func()) { return uint16Pool.get(size) }

// GetInt32Slice retrieves and resizes an int32 slice from the pool. Backs
// the "s32" column type.
func GetInt32Slice(size int) ([]int32, func()) { return int32Pool.get(size) }

// GetUint32Slice retrieves and resizes a uint32 slice from the pool. Backs
// the "u32" and zero-extended "u24" column types.
func GetUint32Slice(size int) ([]uint32, func()) { return uint32Pool.get(size) }

// GetInt64Slice retrieves and resizes an int64 slice from the pool. Backs
// the "s64" column type.
//
// Example:
//
//	values, cleanup := pool.GetInt64Slice(1000)
//	defer cleanup()
//	// Use values slice...
func GetInt64Slice(size int) ([]int64, func()) { return int64Pool.get(size) }

// GetUint64Slice retrieves and resizes a uint64 slice from the pool. Backs
// the "u64" column type.
func GetUint64Slice(size int) ([]uint64, func()) { return uint64Pool.get(size) }

// GetFloat32Slice retrieves and resizes a float32 slice from the pool.
// Backs the "f" column type.
func GetFloat32Slice(size int) ([]float32, func()) { return float32Pool.get(size) }

// GetFloat64Slice retrieves and resizes a float64 slice from the pool.
// Backs the "d" column type, and every column once promoted by the scaling
// pass.
//
// Example:
//
//	values, cleanup := pool.GetFloat64Slice(1000)
//	defer cleanup()
//	// Use values slice...
func GetFloat64Slice(size int) ([]float64, func()) { return float64Pool.get(size) }

// GetStringSlice retrieves and resizes a string slice from the pool. Backs
// the "s"/"st" column types and the Labels column.
//
// Example:
//
//	tags, cleanup := pool.GetStringSlice(1000)
//	defer cleanup()
//	// Use tags slice...
func GetStringSlice(size int) ([]string, func()) { return stringPool.get(size) }
