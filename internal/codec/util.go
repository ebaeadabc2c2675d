package codec

import "io"

type CountReader struct {
	r     io.Reader
	count int64
}

func NewCountReader(r io.Reader) *CountReader {
	return &CountReader{
		r:     r,
		count: 0,
	}
}

func (cr *CountReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.count += int64(n)
	return n, err
}

// Count is the number of raw bytes read so far.
func (cr *CountReader) Count() int64 {
	return cr.count
}
