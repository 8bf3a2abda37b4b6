// Package body implements the UDF BodyParser: it walks the tagged binary
// body that follows the text header, producing a global timestamp
// sequence, a parallel label sequence, and per-sensor per-axis sample
// streams anchored to that timestamp sequence by index.
package body

import (
	"bytes"
	"context"
	"fmt"

	"github.com/arloliu/udf/endian"
	"github.com/arloliu/udf/errs"
	"github.com/arloliu/udf/header"
	"github.com/arloliu/udf/internal/options"
)

var engine = endian.GetLittleEndianEngine()

const (
	tagTimestampA byte = 0xF0
	tagTimestampB byte = 0xF1
	tagLabel      byte = 0xF8

	timestampFieldSize = 8
	labelFieldSize     = 16
)

// AxisSamples is the append-only sample stream for one axis of one sensor:
// values_i and ts_indices_i from spec §3, frozen once Parse returns.
type AxisSamples struct {
	Values    []any
	TSIndices []int
}

// SensorSamples holds one AxisSamples per axis, in schema-declared order.
type SensorSamples struct {
	Axes []AxisSamples
}

func (s *SensorSamples) sampleCount() int {
	n := 0
	for _, ax := range s.Axes {
		n += len(ax.Values)
	}

	return n
}

// Result is the frozen output of a body parse.
type Result struct {
	Timestamps []uint64
	// Labels is positionally aligned with Timestamps; a nil entry means no
	// label was attached at that position.
	Labels []*string
	// Samples is keyed by sensor tag. Sensors that contributed zero samples
	// are not present.
	Samples map[byte]*SensorSamples
	// Warnings carries non-fatal notices, currently only a trailing
	// ErrTruncatedEvent recorded when Parse ran in lenient mode and had to
	// stop partway through a record.
	Warnings []error
}

// Parse walks blob[start:] dispatching on the tag byte at each record
// boundary, per spec §4.3/§4.5. h supplies the sensor-tag → SensorSchema
// table built by the header parser.
//
// ctx is checked between records as a caller cancellation escape hatch;
// the format itself has no suspension points (spec §5).
func Parse(ctx context.Context, blob []byte, start int, h *header.Header, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	res := &Result{
		Samples: make(map[byte]*SensorSamples, len(h.Sensors())),
	}
	for tag, schema := range h.Sensors() {
		res.Samples[tag] = &SensorSamples{Axes: make([]AxisSamples, len(schema.Axes))}
	}

	cursor := start
	for cursor < len(blob) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		tag := blob[cursor]

		switch {
		case tag == tagTimestampA || tag == tagTimestampB:
			end := cursor + 1 + timestampFieldSize
			if end > len(blob) {
				return truncate(cfg, res, cursor)
			}

			ts := engine.Uint64(blob[cursor+1 : end])
			res.Timestamps = append(res.Timestamps, ts)
			res.Labels = append(res.Labels, nil)
			cursor = end

		case tag == tagLabel:
			end := cursor + 1 + labelFieldSize
			if end > len(blob) {
				return truncate(cfg, res, cursor)
			}

			if len(res.Timestamps) == 0 {
				return nil, fmt.Errorf("%w: label record at offset %d precedes any timestamp", errs.ErrLabelWithoutTimestamp, cursor)
			}

			label := trimNulString(blob[cursor+1 : end])
			res.Labels[len(res.Labels)-1] = &label
			cursor = end

		default:
			schema, ok := h.SensorByTag(tag)
			if !ok {
				return nil, fmt.Errorf("%w: 0x%02X at offset %d", errs.ErrUnrecognizedTag, tag, cursor)
			}

			end := cursor + 1 + schema.EventSize
			if end > len(blob) {
				return truncate(cfg, res, cursor)
			}

			// An event record anchors to the most recently seen timestamp;
			// a well-formed file always emits a timestamp first, so this is
			// -1 only for a malformed body, in which case the sample is
			// simply unanchored and dropped by the table builder.
			tsIndex := len(res.Timestamps) - 1

			samples := res.Samples[tag]
			off := cursor + 1
			for i, axis := range schema.Axes {
				w := axis.Type.WireWidth

				v, err := axis.Type.Decode(blob[off : off+w])
				if err != nil {
					return nil, err
				}

				samples.Axes[i].Values = append(samples.Axes[i].Values, v)
				samples.Axes[i].TSIndices = append(samples.Axes[i].TSIndices, tsIndex)
				off += w
			}
			cursor = end
		}
	}

	prune(res)

	return res, nil
}

// truncate implements the strict/lenient TruncatedEvent split (spec §4.3,
// §4.6): strict propagates the error, lenient returns everything parsed
// so far with the truncation recorded as a warning.
func truncate(cfg *Config, res *Result, offset int) (*Result, error) {
	cause := fmt.Errorf("%w: insufficient bytes remain for the record starting at offset %d", errs.ErrTruncatedEvent, offset)
	if cfg.strict {
		return nil, cause
	}

	res.Warnings = append(res.Warnings, cause)
	prune(res)

	return res, nil
}

// prune drops sensors that contributed zero samples, per spec §4.3's final
// step.
func prune(res *Result) {
	for tag, s := range res.Samples {
		if s.sampleCount() == 0 {
			delete(res.Samples, tag)
		}
	}
}

func trimNulString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}

	return string(b)
}
