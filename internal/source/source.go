// Package source turns an input location (local path or remote URL) into a
// sequential byte stream for the decoder. The decoder itself is agnostic to
// origin and its tests run on in-memory buffers, never through this package.
package source

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// FromFile opens a local BMF file for sequential reading.
func FromFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	return f, nil
}

// FromURL fetches a BMF file over HTTP(S) and returns the unparsed response
// body as a stream. A non-200 status is a source-acquisition failure; the
// body is drained only by the caller reading it to completion.
func FromURL(rawurl string, timeout time.Duration) (io.ReadCloser, error) {
	client := resty.New().
		SetDoNotParseResponse(true).
		SetTimeout(timeout)

	resp, err := client.R().Get(rawurl)
	if err != nil {
		return nil, fmt.Errorf("source: fetch %s: %w", rawurl, err)
	}
	if resp.StatusCode() != http.StatusOK {
		resp.RawBody().Close()
		return nil, fmt.Errorf("source: fetch %s: unexpected status %s", rawurl, resp.Status())
	}
	return resp.RawBody(), nil
}
