// Package gpb decodes and encodes GIMP's legacy combined brush+pattern
// (.gpb) format: a .gbr blob immediately followed by a .pat blob in the
// same file.
package gpb

import (
	"fmt"

	"github.com/TheHeadlessSourceMan/gimpFormats/gbr"
	"github.com/TheHeadlessSourceMan/gimpFormats/pat"
)

// BrushPattern pairs the brush and pattern this legacy format always
// stores together.
type BrushPattern struct {
	Brush   *gbr.Brush
	Pattern *pat.Pattern
}

// Decode reads one .gpb file from data.
func Decode(data []byte) (*BrushPattern, error) {
	b, n, err := gbr.DecodeAt(data, 0)
	if err != nil {
		return nil, fmt.Errorf("gpb: brush: %w", err)
	}
	p, _, err := pat.DecodeAt(data, n)
	if err != nil {
		return nil, fmt.Errorf("gpb: pattern: %w", err)
	}
	return &BrushPattern{Brush: b, Pattern: p}, nil
}

// Encode renders the pair back to its .gpb byte form.
func (bp *BrushPattern) Encode() []byte {
	out := append([]byte{}, bp.Brush.Encode()...)
	return append(out, bp.Pattern.Encode()...)
}
