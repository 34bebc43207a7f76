package houses

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strconv"
)

//go:embed sample.json
var sample_json []byte

// Sample returns the built-in map used when no map source is configured.
func Sample(ctx context.Context) (*Map, error) {
	m, err := Decode(ctx, bytes.NewReader(sample_json))
	if err != nil {
		return nil, fmt.Errorf("decode sample: %w", err)
	}

	return m, m.Validate()
}

// LoadOrSample loads the map at location, or the built-in sample if
// location is empty.
func LoadOrSample(ctx context.Context, location string) (*Map, error) {
	if location == "" {
		return Sample(ctx)
	}

	return Load(ctx, location)
}

// FormatTime formats a travel time in seconds without trailing zeros.
func FormatTime(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}
