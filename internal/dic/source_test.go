package dic

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, location string) ([]string, error) {
	t.Helper()
	var res []string
	_, err := loadSource(context.Background(), http.DefaultClient, location, func(w string) {
		res = append(res, w)
	})
	return res, err
}

func TestReadLines(t *testing.T) {
	var res []string
	n, err := readLines(strings.NewReader("\ufeff中华\n\n  Apple \r\n# 注释\n"), func(w string) {
		res = append(res, w)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"中华", "apple", "# 注释"}, res)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDict(t, dir, "words.dic", "一", "二")
	res, err := collect(t, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"一", "二"}, res)

	_, err = collect(t, filepath.Join(dir, "none.dic"))
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestLoadGzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.dic.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("长城\n故宫\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	res, err := collect(t, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"长城", "故宫"}, res)
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ext.dic":
			w.Write([]byte("云计算\n大数据\n"))
		case "/broken.dic":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	res, err := collect(t, srv.URL+"/ext.dic")
	require.NoError(t, err)
	assert.Equal(t, []string{"云计算", "大数据"}, res)

	_, err = collect(t, srv.URL+"/none.dic")
	assert.ErrorIs(t, err, ErrSourceMissing)

	_, err = collect(t, srv.URL+"/broken.dic")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSourceMissing)
}

func TestRemoteDictionary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ext.dic":
			w.Write([]byte("云计算\n"))
		case "/stop.dic":
			w.Write([]byte("了\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg, _ := testConfig(t)
	cfg.RemoteExtDicts = []string{srv.URL + "/ext.dic", srv.URL + "/gone.dic"}
	cfg.RemoteExtStopWords = []string{srv.URL + "/stop.dic"}

	d, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, match(d.MatchMain, "云计算").IsUnmatch(), "remote sources are off by default")

	cfg.EnableRemoteDict = true
	d, err = New(cfg)
	require.NoError(t, err)
	assert.True(t, match(d.MatchMain, "云计算").IsMatch())
	assert.True(t, d.IsStopWord([]rune("了"), 0, 1))
}
