package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60*time.Second, cfg.RemoteRefreshInterval.Duration())
	assert.Equal(t, 10*time.Second, cfg.RemoteInitialDelay.Duration())
	assert.False(t, bool(cfg.UseSmart))
	assert.Empty(t, cfg.RemoteSources())
}

func TestParse(t *testing.T) {
	in := `
main_dict: dict/main.dic
ext_dicts:
  - dict/ext.dic;dict/ext2.dic
  - "  "
ext_stopwords: [dict/stop.dic]
remote_ext_dicts: [http://127.0.0.1/words.txt]
remote_ext_stopwords: [http://127.0.0.1/stop.txt]
enable_remote_dict: "yes"
remote_refresh_interval: 120
use_smart: on
`
	cfg, err := Parse([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, "dict/main.dic", cfg.MainDict)
	assert.Equal(t, DefaultQuantifierDict, cfg.QuantifierDict)
	assert.Equal(t, []string{"dict/ext.dic", "dict/ext2.dic"}, cfg.ExtDicts)
	assert.Equal(t, []string{"dict/stop.dic"}, cfg.ExtStopWords)
	assert.True(t, bool(cfg.EnableRemoteDict))
	assert.True(t, bool(cfg.UseSmart))
	assert.Equal(t, 2*time.Minute, cfg.RemoteRefreshInterval.Duration())
	assert.Equal(t, Seconds(DefaultReadTimeout), cfg.ReadTimeout)
	assert.Equal(t, []string{"http://127.0.0.1/words.txt", "http://127.0.0.1/stop.txt"}, cfg.RemoteSources())
	assert.Equal(t, []string{"dict/main.dic", "dict/ext.dic", "dict/ext2.dic", "dict/stop.dic",
		DefaultQuantifierDict, DefaultUnitDict}, cfg.LocalSources())
}

func TestSwitch(t *testing.T) {
	var (
		in  = []string{"true", "yes", "ON", "ok", "1", "no", "off", "0", "false"}
		out = []bool{true, true, true, true, true, false, false, false, false}
	)
	for i, v := range in {
		cfg, err := Parse([]byte("enable_remote_dict: " + v))
		require.NoError(t, err, v)
		assert.Equal(t, out[i], bool(cfg.EnableRemoteDict), v)
	}
}

func TestParseRejectsBadInterval(t *testing.T) {
	_, err := Parse([]byte("remote_refresh_interval: 0"))
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = Parse([]byte("main_dict: ''"))
	assert.True(t, errors.Is(err, ErrNoMainDict))
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ikseg.yaml")
	require.NoError(t, os.WriteFile(p, []byte("main_dict: a.dic\nwatch_local_dicts: true\n"), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "a.dic", cfg.MainDict)
	assert.True(t, bool(cfg.WatchLocalDicts))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
