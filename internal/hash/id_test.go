package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// knownDigests pins ID's output for a handful of inputs so a future change
// of hash algorithm would be caught here rather than as a silent
// SensorByName lookup failure downstream.
var knownDigests = []struct {
	name   string
	data   string
	digest uint64
}{
	{"empty name", "", 0xef46db3751d8e999},
	{"short name", "test", 0x4fdcca5ddb678139},
	{"sentence-length name", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	{"another name", "another test string", 0x212a22f593810bec},
}

func TestID_KnownDigests(t *testing.T) {
	for _, tt := range knownDigests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.digest, ID(tt.data))
		})
	}
}

// TestID_Deterministic exercises the property header.nameTracker relies on:
// hashing the same sensor name twice, whether at schema-parse time or from
// a later SensorByName call, must land on the same bucket.
func TestID_Deterministic(t *testing.T) {
	names := []string{"accel_x", "accel_y", "accel_z", "gyro_x", "temperature"}

	for _, name := range names {
		require.Equal(t, ID(name), ID(name), "ID must be stable for repeated calls on %q", name)
	}
}

func TestID_DifferentNamesUsuallyDiffer(t *testing.T) {
	names := []string{"accel_x", "accel_y", "accel_z", "gyro_x", "gyro_y", "gyro_z", "temperature", "humidity"}

	seen := make(map[uint64]string, len(names))
	for _, name := range names {
		id := ID(name)
		if prior, ok := seen[id]; ok {
			t.Fatalf("unexpected xxHash64 collision between %q and %q", prior, name)
		}
		seen[id] = name
	}
}

func BenchmarkID(b *testing.B) {
	const sensorName = "accelerometer_x_axis"

	b.ResetTimer()
	for b.Loop() {
		ID(sensorName)
	}
}
