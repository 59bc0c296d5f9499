// Package sharestate encodes a worksheet into a compact, URL-safe string
// and back. The string carries the title, the grade table id and every
// non-placeholder row as raw text, so valid and stub rows both survive a
// round trip.
package sharestate

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/gradereach/gradereach/pkg/assignment"
	"github.com/gradereach/gradereach/pkg/worksheet"
)

// Version is the current encoding version.
const Version = 1

// maxDecoded caps the decompressed payload size.
const maxDecoded = 1 << 20

var (
	ErrMalformed          = errors.New("malformed share string")
	ErrUnsupportedVersion = errors.New("unsupported share string version")
)

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		panic(fmt.Sprintf("sharestate: zstd encoder: %v", err))
	}
	decoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecoded))
	if err != nil {
		panic(fmt.Sprintf("sharestate: zstd decoder: %v", err))
	}
}

// Encode returns the share string for w including scores.
func Encode(w worksheet.Worksheet) (string, error) {
	return encode(w, true)
}

// EncodeTemplate returns a share string without scores, so a course layout
// can be handed to someone else to fill in.
func EncodeTemplate(w worksheet.Worksheet) (string, error) {
	return encode(w, false)
}

func encode(w worksheet.Worksheet, withScores bool) (string, error) {
	rows := make([][3]*string, 0, w.Len())
	for _, a := range w.Rows() {
		switch a.Kind() {
		case assignment.KindValid, assignment.KindStub:
			r := [3]*string{orNil(a.Name()), orNil(a.WeightStr()), nil}
			if withScores {
				r[2] = orNil(a.ScoreStr())
			}
			rows = append(rows, r)
		case assignment.KindAdd:
			continue
		}
	}

	payload := []any{Version, w.Title, orNil(w.TableID), rows}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding share state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(encoder.EncodeAll(raw, nil)), nil
}

// Decode parses a share string. Rows get fresh ids.
func Decode(s string) (worksheet.Worksheet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return worksheet.Worksheet{}, fmt.Errorf("%w: empty", ErrMalformed)
	}
	compressed, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	raw, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(parts) != 4 {
		return worksheet.Worksheet{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformed, len(parts))
	}

	var version int
	if err := json.Unmarshal(parts[0], &version); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: version: %v", ErrMalformed, err)
	}
	if version != Version {
		return worksheet.Worksheet{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	var (
		title   string
		tableID *string
		rows    [][3]*string
	)
	if err := json.Unmarshal(parts[1], &title); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: title: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(parts[2], &tableID); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: table: %v", ErrMalformed, err)
	}
	if err := json.Unmarshal(parts[3], &rows); err != nil {
		return worksheet.Worksheet{}, fmt.Errorf("%w: rows: %v", ErrMalformed, err)
	}

	out := make([]assignment.Assignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, assignment.FromStrings(deref(r[0]), deref(r[2]), deref(r[1]), ""))
	}
	return worksheet.New(title, deref(tableID), out...), nil
}

func orNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
