package houses

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/neilotoole/streamcache"
	"github.com/oliverbestmann/house-roads/fetch"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrEmpty = errors.New("houses: empty map data")

// ParseFormat accepts "json", "yaml" and "yml", case insensitive.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(value) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown map format %q", value)
	}
}

// Load opens, decodes and validates the map at location, which is either a
// file path or an http(s) URL.
func Load(ctx context.Context, location string) (*Map, error) {
	r, err := fetch.Open(ctx, location)
	if err != nil {
		return nil, err
	}

	defer func() { _ = r.Close() }()

	m, err := Decode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", location, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate %q: %w", location, err)
	}

	return m, nil
}

// Decode reads a map in JSON or YAML. The format is detected from the first
// non-space character: JSON documents start with '{'.
func Decode(ctx context.Context, r io.Reader) (*Map, error) {
	cache := streamcache.New(r)

	// sniff the format on one reader, then decode everything on another,
	// the cache replays the bytes the sniffer consumed
	sniffer := cache.NewReader(ctx)
	format, err := sniffFormat(sniffer)
	_ = sniffer.Close()

	if err != nil {
		return nil, err
	}

	body := cache.NewReader(ctx)
	cache.Seal()

	defer func() { _ = body.Close() }()

	var m Map

	switch format {
	case FormatJSON:
		err = json.NewDecoder(body).Decode(&m)
	case FormatYAML:
		err = yaml.NewDecoder(body).Decode(&m)
	}

	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}

	return &m, nil
}

func sniffFormat(r io.Reader) (Format, error) {
	buffered := bufio.NewReader(r)

	for {
		ch, _, err := buffered.ReadRune()
		switch {
		case errors.Is(err, io.EOF):
			return "", ErrEmpty

		case err != nil:
			return "", fmt.Errorf("sniff format: %w", err)

		case ch == '\uFEFF' || unicode.IsSpace(ch):
			continue

		case ch == '{':
			return FormatJSON, nil

		default:
			return FormatYAML, nil
		}
	}
}

// Encode writes the map in the given format.
func (m *Map) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(m); err != nil {
			return err
		}

		return enc.Close()

	default:
		return fmt.Errorf("unknown map format %q", format)
	}
}
