package table

import (
	"context"
	"testing"

	"github.com/arloliu/udf/body"
	"github.com/arloliu/udf/errs"
	"github.com/arloliu/udf/header"
	"github.com/stretchr/testify/require"
)

func decodeFixture(t *testing.T, headerText string, bodyBlob []byte) (*header.Header, *body.Result) {
	t.Helper()

	h, _, err := header.Parse([]byte(headerText))
	require.NoError(t, err)

	blob := append([]byte(nil), []byte(headerText)...)
	blob = blob[:h.BodyStart]
	blob = append(blob, bodyBlob...)

	res, err := body.Parse(context.Background(), blob, h.BodyStart, h)
	require.NoError(t, err)

	return h, res
}

func TestBuild_S1_SingleRow(t *testing.T) {
	h, res := decodeFixture(t, "1.0\r\n1:temp:2:s16:x:0.1\r\n\r\n", []byte{
		0xF0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x10, 0x27,
	})

	tbl, err := Build(h, res)
	require.NoError(t, err)
	require.Equal(t, 1, tbl.RowCount())
	require.Equal(t, "Time in ns", tbl.Columns[0].Name)
	require.Equal(t, "Labels", tbl.Columns[1].Name)

	col, err := tbl.Column("temp.x")
	require.NoError(t, err)
	v, ok := col.At(0)
	require.True(t, ok)
	require.Equal(t, int16(10000), v)

	labelsCol := tbl.Columns[1]
	_, ok = labelsCol.At(0)
	require.False(t, ok)
}

func TestBuild_S3_InterleavedNulls(t *testing.T) {
	ts := func(n byte) []byte { return []byte{0xF0, 0, 0, 0, 0, 0, 0, 0, n} }
	blob := append([]byte{}, ts(0)...)
	blob = append(blob, 0x01, 10)
	blob = append(blob, ts(1)...)
	blob = append(blob, 0x02, 20)
	blob = append(blob, ts(2)...)
	blob = append(blob, 0x01, 30)

	h, res := decodeFixture(t, "1.0\r\n1:a:1:u8:x:1.0\r\n2:b:1:u8:x:1.0\r\n\r\n", blob)

	tbl, err := Build(h, res)
	require.NoError(t, err)
	require.Equal(t, 3, tbl.RowCount())

	aCol, _ := tbl.Column("a.x")
	_, ok := aCol.At(0)
	require.True(t, ok)
	_, ok = aCol.At(1)
	require.False(t, ok)
	_, ok = aCol.At(2)
	require.True(t, ok)

	bCol, _ := tbl.Column("b.x")
	_, ok = bCol.At(1)
	require.True(t, ok)
	require.Equal(t, 1, bCol.NonNullCount())
}

func TestScale_PromotesToFloat64(t *testing.T) {
	h, res := decodeFixture(t, "1.0\r\n1:temp:2:s16:x:0.1\r\n\r\n", []byte{
		0xF0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x10, 0x27,
	})

	tbl, err := Build(h, res)
	require.NoError(t, err)

	scaled, err := Scale(tbl)
	require.NoError(t, err)
	require.Equal(t, "True", scaled.Metadata["Was Scaled"])

	col, err := scaled.Column("temp.x")
	require.NoError(t, err)
	v, ok := col.At(0)
	require.True(t, ok)
	require.InDelta(t, 1000.0, v, 1e-9)

	// Original table is untouched.
	require.Equal(t, "False", tbl.Metadata["Was Scaled"])
}

func TestScale_RefusesDoubleScale(t *testing.T) {
	h, res := decodeFixture(t, "1.0\r\n1:temp:2:s16:x:0.1\r\n\r\n", []byte{
		0xF0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x10, 0x27,
	})

	tbl, err := Build(h, res)
	require.NoError(t, err)

	scaled, err := Scale(tbl)
	require.NoError(t, err)

	_, err = Scale(scaled)
	require.ErrorIs(t, err, errs.ErrAlreadyScaled)
}

func TestTable_Release_DoesNotPanic(t *testing.T) {
	h, res := decodeFixture(t, "1.0\r\n1:temp:2:s16:x:0.1\r\n\r\n", []byte{
		0xF0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x10, 0x27,
	})

	tbl, err := Build(h, res)
	require.NoError(t, err)

	require.NotPanics(t, func() { tbl.Release() })
}

func TestColumnNotFound(t *testing.T) {
	h, res := decodeFixture(t, "1.0\r\n1:temp:2:s16:x:0.1\r\n\r\n", []byte{
		0xF0, 0, 0, 0, 0, 0, 0, 0, 0,
		0x01, 0x10, 0x27,
	})

	tbl, err := Build(h, res)
	require.NoError(t, err)

	_, err = tbl.Column("missing.axis")
	require.ErrorIs(t, err, errs.ErrColumnNotFound)
}
