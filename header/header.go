// Package header implements the UDF header parser: it consumes the text
// header that precedes the tagged binary body and yields a map from
// one-byte sensor tag to SensorSchema, plus the byte offset at which the
// body begins.
package header

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/udf/errs"
	"github.com/arloliu/udf/wiretype"
)

// Version identifies a supported UDF header format.
type Version string

const (
	V1_0 Version = "1.0"
	V1_1 Version = "1.1"
)

// terminator marks the end of the textual header.
const terminator = "\r\n\r\n"

// schemaTerminatorSize is the number of bytes appended after the header
// terminator in v1.1 files only; Parse counts them into BodyStart, so the
// body parser never sees them.
const schemaTerminatorSize = 6

// AxisSchema describes one scalar channel within a sensor's event.
type AxisSchema struct {
	Name string
	Type wiretype.TypeDescriptor
}

// SensorSchema describes one sensor declared in the header (spec §3).
type SensorSchema struct {
	Tag           byte
	Name          string
	EventSize     int
	Axes          []AxisSchema
	ScalingFactor float64
	// SamplingRate is -1 for v1.0 headers, which do not record it.
	SamplingRate float64
	// Properties is []string{"na"} for v1.0 headers, which do not record it.
	Properties []string
}

// Header is the parsed result of a UDF text header: a lookup table from
// sensor tag to SensorSchema plus the offset the binary body starts at.
type Header struct {
	Version   Version
	BodyStart int

	sensors map[byte]*SensorSchema
	names   *nameTracker
}

// SensorByTag returns the schema declared for the given tag.
func (h *Header) SensorByTag(tag byte) (*SensorSchema, bool) {
	s, ok := h.sensors[tag]

	return s, ok
}

// SensorByName returns the schema declared with the given trimmed name.
//
// It is an O(1) lookup backed by a hash index built during Parse, mirroring
// the dual ID/name metric lookup pattern used elsewhere in this style of
// columnar decoder.
func (h *Header) SensorByName(name string) (*SensorSchema, bool) {
	tag, ok := h.names.lookup(name)
	if !ok {
		return nil, false
	}

	return h.SensorByTag(tag)
}

// Tags returns the declared sensor tags in ascending order.
func (h *Header) Tags() []byte {
	tags := make([]byte, 0, len(h.sensors))
	for tag := range h.sensors {
		tags = append(tags, tag)
	}

	for i := 1; i < len(tags); i++ {
		for j := i; j > 0 && tags[j-1] > tags[j]; j-- {
			tags[j-1], tags[j] = tags[j], tags[j-1]
		}
	}

	return tags
}

// Sensors returns a defensive copy of the tag → schema map.
func (h *Header) Sensors() map[byte]*SensorSchema {
	out := make(map[byte]*SensorSchema, len(h.sensors))
	for k, v := range h.sensors {
		out[k] = v
	}

	return out
}

// Parse consumes the UDF text header at the start of blob and returns the
// parsed Header along with any non-fatal warnings (currently only
// errs.ErrDuplicateSensorName occurrences).
//
// Parse fails with errs.ErrMalformedHeader if the terminator is missing,
// errs.ErrUnsupportedVersion if the first line is neither "1.0" nor "1.1",
// and errs.ErrMalformedHeader or errs.ErrUnknownType for a malformed
// schema line.
func Parse(blob []byte) (*Header, []error, error) {
	idx := bytes.Index(blob, []byte(terminator))
	if idx < 0 {
		return nil, nil, fmt.Errorf("%w: missing header terminator", errs.ErrMalformedHeader)
	}

	headerText, err := decodeUTF8(blob[:idx])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errs.ErrMalformedHeader, err)
	}

	lines := strings.Split(headerText, "\r\n")
	if len(lines) == 0 {
		return nil, nil, fmt.Errorf("%w: empty header", errs.ErrMalformedHeader)
	}

	version := Version(lines[0])
	if version != V1_0 && version != V1_1 {
		return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnsupportedVersion, lines[0])
	}

	h := &Header{
		Version: version,
		sensors: make(map[byte]*SensorSchema),
		names:   newNameTracker(),
	}

	var warnings []error
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}

		schema, err := parseSchemaLine(line, version)
		if err != nil {
			return nil, nil, err
		}

		if schema.Tag >= 0xF0 {
			return nil, nil, fmt.Errorf("%w: tag %d is reserved for body control records", errs.ErrMalformedHeader, schema.Tag)
		}

		if _, exists := h.sensors[schema.Tag]; exists {
			return nil, nil, fmt.Errorf("%w: duplicate sensor tag %d", errs.ErrMalformedHeader, schema.Tag)
		}

		if warn := h.names.track(schema.Tag, schema.Name); warn != nil {
			warnings = append(warnings, warn)
		}

		h.sensors[schema.Tag] = schema
	}

	bodyStart := idx + len(terminator)
	if version == V1_1 {
		bodyStart += schemaTerminatorSize
	}
	h.BodyStart = bodyStart

	return h, warnings, nil
}

// parseSchemaLine parses one colon-delimited schema line per the field
// layout of spec §4.2, dispatching on version for the v1.1-only trailing
// fields.
func parseSchemaLine(line string, version Version) (*SensorSchema, error) {
	fields := strings.Split(line, ":")

	wantFields := 6
	if version == V1_1 {
		wantFields = 8
	}
	if len(fields) != wantFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d in line %q", errs.ErrMalformedHeader, wantFields, len(fields), line)
	}

	tagNum, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric tag %q", errs.ErrMalformedHeader, fields[0])
	}

	name := strings.TrimSpace(fields[1])

	eventSize, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil || eventSize < 0 {
		return nil, fmt.Errorf("%w: non-numeric or negative event_size %q", errs.ErrMalformedHeader, fields[2])
	}

	typeNames := splitTrimmed(fields[3])
	axisNames := splitTrimmed(fields[4])
	if len(typeNames) != len(axisNames) {
		return nil, fmt.Errorf("%w: %d types but %d axis names in line %q", errs.ErrMalformedHeader, len(typeNames), len(axisNames), line)
	}
	if len(typeNames) == 0 {
		return nil, fmt.Errorf("%w: sensor %q declares zero axes", errs.ErrMalformedHeader, name)
	}

	axes := make([]AxisSchema, len(typeNames))
	widthSum := 0
	for i := range typeNames {
		desc, err := wiretype.Lookup(typeNames[i])
		if err != nil {
			return nil, err
		}
		axes[i] = AxisSchema{Name: axisNames[i], Type: desc}
		widthSum += desc.WireWidth
	}
	if widthSum != eventSize {
		return nil, fmt.Errorf("%w: sum of axis widths %d does not equal declared event_size %d", errs.ErrMalformedHeader, widthSum, eventSize)
	}

	scalingFactor, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric scaling_factor %q", errs.ErrMalformedHeader, fields[5])
	}

	schema := &SensorSchema{
		Tag:           byte(tagNum),
		Name:          name,
		EventSize:     eventSize,
		Axes:          axes,
		ScalingFactor: scalingFactor,
		SamplingRate:  -1,
		Properties:    []string{"na"},
	}

	if version == V1_1 {
		samplingRate, err := strconv.ParseFloat(strings.TrimSpace(fields[6]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric sampling_rate %q", errs.ErrMalformedHeader, fields[6])
		}
		schema.SamplingRate = samplingRate
		schema.Properties = splitTrimmed(fields[7])
	}

	return schema, nil
}

func splitTrimmed(field string) []string {
	parts := strings.Split(field, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}

	return out
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid UTF-8 in header")
	}

	return string(b), nil
}
