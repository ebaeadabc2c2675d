package codec

import (
	"compress/gzip"
	"io"
	"strings"
)

// GzipCodec streams compressed dictionary sources back in.
type GzipCodec struct {
	r io.Reader
}

func NewGzipCodec() *GzipCodec {
	return &GzipCodec{}
}

func (gc *GzipCodec) BindR(r io.Reader) {
	gc.r = r
}

// Stream returns a reader over the decompressed content.
func (gc *GzipCodec) Stream() (io.ReadCloser, error) {
	return gzip.NewReader(gc.r)
}

// IsGzip reports whether a source name carries the .gz suffix.
func IsGzip(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".gz")
}
