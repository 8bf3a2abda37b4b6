package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceGetters enumerates one getter per pool, keyed by the UDF type
// mnemonic it backs, so the size/reuse/cleanup behaviour below is asserted
// once per pool instead of once per hand-picked type.
var sliceGetters = map[string]func(int) (int, func()){
	"s8":  func(n int) (int, func()) { s, c := GetInt8Slice(n); return len(s), c },
	"u8":  func(n int) (int, func()) { s, c := GetUint8Slice(n); return len(s), c },
	"s16": func(n int) (int, func()) { s, c := GetInt16Slice(n); return len(s), c },
	"u16": func(n int) (int, func()) { s, c := GetUint16Slice(n); return len(s), c },
	"s32": func(n int) (int, func()) { s, c := GetInt32Slice(n); return len(s), c },
	"u32": func(n int) (int, func()) { s, c := GetUint32Slice(n); return len(s), c },
	"s64": func(n int) (int, func()) { s, c := GetInt64Slice(n); return len(s), c },
	"u64": func(n int) (int, func()) { s, c := GetUint64Slice(n); return len(s), c },
	"f":   func(n int) (int, func()) { s, c := GetFloat32Slice(n); return len(s), c },
	"d":   func(n int) (int, func()) { s, c := GetFloat64Slice(n); return len(s), c },
	"s":   func(n int) (int, func()) { s, c := GetStringSlice(n); return len(s), c },
}

func TestSlicePools_SizeAndCleanup(t *testing.T) {
	for mnemonic, get := range sliceGetters {
		t.Run(mnemonic, func(t *testing.T) {
			n, cleanup := get(100)
			require.Equal(t, 100, n)

			require.NotPanics(t, cleanup)
		})
	}
}

func TestSlicePools_AllocatesLargerOnInsufficientCapacity(t *testing.T) {
	for mnemonic, get := range sliceGetters {
		t.Run(mnemonic, func(t *testing.T) {
			_, cleanup1 := get(10)
			cleanup1()

			n, cleanup2 := get(1000)
			defer cleanup2()

			require.Equal(t, 1000, n)
		})
	}
}

func TestGetInt64Slice_ReusesPooledArray(t *testing.T) {
	slice1, cleanup1 := GetInt64Slice(50)
	ptr1 := &slice1[0]
	cleanup1()

	slice2, cleanup2 := GetInt64Slice(50)
	defer cleanup2()
	ptr2 := &slice2[0]

	require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
}

func TestGetFloat64Slice_ReusesPooledArray(t *testing.T) {
	slice1, cleanup1 := GetFloat64Slice(50)
	ptr1 := &slice1[0]
	cleanup1()

	slice2, cleanup2 := GetFloat64Slice(50)
	defer cleanup2()
	ptr2 := &slice2[0]

	require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
}

func TestGetStringSlice_ReusesPooledArray(t *testing.T) {
	slice1, cleanup1 := GetStringSlice(50)
	ptr1 := &slice1[0]
	cleanup1()

	slice2, cleanup2 := GetStringSlice(50)
	defer cleanup2()
	ptr2 := &slice2[0]

	require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
}

func TestGetInt8Slice_ReusesPooledArray(t *testing.T) {
	slice1, cleanup1 := GetInt8Slice(50)
	ptr1 := &slice1[0]
	cleanup1()

	slice2, cleanup2 := GetInt8Slice(50)
	defer cleanup2()
	ptr2 := &slice2[0]

	require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
}

func TestSlicePoolConcurrency(t *testing.T) {
	const goroutines = 100

	for mnemonic, get := range sliceGetters {
		t.Run(mnemonic, func(t *testing.T) {
			done := make(chan bool, goroutines)

			for i := 0; i < goroutines; i++ {
				go func() {
					n, cleanup := get(50)
					defer cleanup()

					require.Equal(t, 50, n)
					done <- true
				}()
			}

			for i := 0; i < goroutines; i++ {
				<-done
			}
		})
	}
}
