package codec

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genDictionary(r int) []byte {
	words := []string{"中华人民共和国", "小时", "千克", "人民", "cm", "kg"}
	buf := new(bytes.Buffer)
	for i := 0; i < r; i++ {
		buf.WriteString(words[i%len(words)])
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func compress(t *testing.T, b []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := gzip.NewWriter(buf)
	_, err := w.Write(b)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestGzipCodec(t *testing.T) {
	bs := genDictionary(50000)
	zipped := compress(t, bs)
	rate := float64(len(zipped)) / float64(len(bs))
	t.Logf("before compress len %v,after compress len %v,rate %v", len(bs), len(zipped), rate)

	cr := NewCountReader(bytes.NewReader(zipped))
	codec := NewGzipCodec()
	codec.BindR(cr)
	r, err := codec.Stream()
	require.NoError(t, err)
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, bs, out)
	assert.Equal(t, int64(len(zipped)), cr.Count())
}

func TestGzipCodecRejectsPlainText(t *testing.T) {
	codec := NewGzipCodec()
	codec.BindR(strings.NewReader("not compressed\n"))
	_, err := codec.Stream()
	assert.Error(t, err)
}

func TestCountReader(t *testing.T) {
	cr := NewCountReader(strings.NewReader("小时\n千克\n"))
	var sink bytes.Buffer
	_, err := sink.ReadFrom(cr)
	require.NoError(t, err)
	assert.Equal(t, int64(len("小时\n千克\n")), cr.Count())
}

func TestIsGzip(t *testing.T) {
	assert.True(t, IsGzip("main.dic.GZ"))
	assert.False(t, IsGzip("main.dic"))
}
