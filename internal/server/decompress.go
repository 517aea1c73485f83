package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxBodySize bounds request bodies after decompression. Event batches are
// the largest payloads the API accepts.
const maxBodySize = 10 << 20

// bodyDecoders maps a Content-Encoding token to a reader of the plain body.
var bodyDecoders = map[string]func(io.Reader) (io.ReadCloser, error){
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		d, err := zstd.NewReader(r, zstd.WithDecoderMaxMemory(maxBodySize))
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	},
	"br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
	"gzip": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
}

// decompressMiddleware replaces the body of requests sent with a
// Content-Encoding by its decoded form, so handlers always read JSON. Every
// body is capped at maxBodySize.
func decompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ce := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
		if ce != "" && ce != "identity" {
			dec, ok := bodyDecoders[ce]
			if !ok {
				writeError(w, badRequest("unsupported Content-Encoding: "+ce))
				return
			}
			body, err := dec(r.Body)
			if err != nil {
				writeError(w, badRequest("invalid "+ce+" body"))
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}
