package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const acceptEncoding = "zstd, br, gzip"

// maxResponseSize bounds decoded response bodies.
const maxResponseSize = 64 << 20

// encode compresses b with enc.
func encode(b []byte, enc string) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser
	switch enc {
	case "zstd":
		e, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if err != nil {
			return nil, err
		}
		w = e
	case "br":
		w = brotli.NewWriterLevel(&buf, 1)
	case "gzip":
		gz, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
		if err != nil {
			return nil, err
		}
		w = gz
	default:
		return nil, fmt.Errorf("unsupported compression %q", enc)
	}
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeBody reads the response body, decompressing it per its
// Content-Encoding.
func decodeBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	switch ce := strings.TrimSpace(resp.Header.Get("Content-Encoding")); ce {
	case "", "identity":
	case "zstd":
		dec, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gr.Close() }()
		r = gr
	default:
		return nil, fmt.Errorf("unsupported response Content-Encoding %q", ce)
	}
	return io.ReadAll(io.LimitReader(r, maxResponseSize))
}
