// Package fetch opens map data from a local file or an http(s) URL.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// IsURL reports whether location is fetched over http instead of being
// read from the file system.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Open returns a reader for the content at location. The caller must close it.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if IsURL(location) {
		return openURL(ctx, location)
	}

	fp, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", location, err)
	}

	return fp, nil
}
