package header

import (
	"testing"

	"github.com/arloliu/udf/errs"
	"github.com/stretchr/testify/require"
)

func v10Header(schemaLines ...string) []byte {
	text := "1.0\r\n"
	for _, l := range schemaLines {
		text += l + "\r\n"
	}
	text += "\r\n"

	return []byte(text)
}

func v11Header(schemaLines ...string) []byte {
	text := "1.1\r\n"
	for _, l := range schemaLines {
		text += l + "\r\n"
	}
	text += "\r\n"

	return []byte(text)
}

func TestParse_V1_0_SingleAxisSensor(t *testing.T) {
	blob := v10Header("1:temp:2:s16:x:0.1")

	h, warnings, err := Parse(blob)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, V1_0, h.Version)
	require.Equal(t, len(blob), h.BodyStart)

	s, ok := h.SensorByTag(1)
	require.True(t, ok)
	require.Equal(t, "temp", s.Name)
	require.Equal(t, 2, s.EventSize)
	require.Len(t, s.Axes, 1)
	require.Equal(t, "x", s.Axes[0].Name)
	require.InDelta(t, 0.1, s.ScalingFactor, 1e-12)
	require.InDelta(t, -1.0, s.SamplingRate, 0)
	require.Equal(t, []string{"na"}, s.Properties)
}

func TestParse_V1_1_MultiAxisSensor_SkipsTrailer(t *testing.T) {
	blob := v11Header("2:accel:6:s16,s16,s16:x,y,z:0.001:100:moving")
	// v1.1 appends a 6-byte schema terminator after the header terminator.
	blob = append(blob, []byte{0, 0, 0, 0, 0, 0}...)
	blob = append(blob, []byte{0xAA}...) // one body byte to prove offset

	h, warnings, err := Parse(blob)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, V1_1, h.Version)
	require.Equal(t, len(blob)-1, h.BodyStart)

	s, ok := h.SensorByTag(2)
	require.True(t, ok)
	require.Len(t, s.Axes, 3)
	require.InDelta(t, 100.0, s.SamplingRate, 0)
	require.Equal(t, []string{"moving"}, s.Properties)
}

func TestParse_SensorByName(t *testing.T) {
	blob := v10Header("1:temp:2:s16:x:0.1", "2:humidity:2:u16:x:1.0")

	h, _, err := Parse(blob)
	require.NoError(t, err)

	s, ok := h.SensorByName("humidity")
	require.True(t, ok)
	require.Equal(t, byte(2), s.Tag)

	_, ok = h.SensorByName("missing")
	require.False(t, ok)
}

func TestParse_DuplicateSensorName_IsWarningNotError(t *testing.T) {
	blob := v10Header("1:temp:2:s16:x:0.1", "2:temp:2:u16:x:1.0")

	h, warnings, err := Parse(blob)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.ErrorIs(t, warnings[0], errs.ErrDuplicateSensorName)

	// Name lookup resolves to whichever tag claimed the name first.
	s, ok := h.SensorByName("temp")
	require.True(t, ok)
	require.Equal(t, byte(1), s.Tag)
}

func TestParse_DuplicateSensorTag_IsFatal(t *testing.T) {
	blob := v10Header("1:temp:2:s16:x:0.1", "1:humidity:2:u16:x:1.0")

	_, _, err := Parse(blob)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParse_ReservedTag_IsMalformed(t *testing.T) {
	blob := v10Header("240:bogus:2:s16:x:0.1")

	_, _, err := Parse(blob)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParse_MissingTerminator(t *testing.T) {
	_, _, err := Parse([]byte("1.0\r\n1:temp:2:s16:x:0.1"))
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParse_UnsupportedVersion(t *testing.T) {
	_, _, err := Parse([]byte("2.0\r\n\r\n"))
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParse_UnknownType(t *testing.T) {
	blob := v10Header("1:temp:2:bogus:x:0.1")

	_, _, err := Parse(blob)
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestParse_EventSizeMismatch(t *testing.T) {
	blob := v10Header("1:temp:4:s16:x:0.1")

	_, _, err := Parse(blob)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParse_AxisCountMismatch(t *testing.T) {
	blob := v10Header("1:accel:4:s16,s16:x:0.1")

	_, _, err := Parse(blob)
	require.ErrorIs(t, err, errs.ErrMalformedHeader)
}

func TestParse_Tags_SortedAscending(t *testing.T) {
	blob := v10Header(
		"3:c:2:s16:x:1.0",
		"1:a:2:s16:x:1.0",
		"2:b:2:s16:x:1.0",
	)

	h, _, err := Parse(blob)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, h.Tags())
}
