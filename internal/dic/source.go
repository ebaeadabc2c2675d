package dic

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"ikseg/internal/codec"
	"ikseg/internal/common"
	"ikseg/internal/config"
)

var (
	ErrSourceMissing = errors.New("dictionary source not found")
)

const maxLineSize = 64 * 1024

// newHTTPClient applies the connect and read timeouts of cfg.
func newHTTPClient(cfg config.Config) *http.Client {
	dialer := &net.Dialer{
		Timeout: cfg.ConnectTimeout.Duration(),
	}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   cfg.ConnectTimeout.Duration(),
			ResponseHeaderTimeout: cfg.ReadTimeout.Duration(),
		},
		Timeout: cfg.ConnectTimeout.Duration() + cfg.ReadTimeout.Duration(),
	}
}

// readLines calls fn with every trimmed, lower cased, non blank line.
func readLines(r io.Reader, fn func(string)) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	n := 0
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if w := common.NormalizeWord(line); w != "" {
			fn(w)
			n++
		}
	}
	return n, sc.Err()
}

// loadSource streams the entries of one local or remote location into fn.
// A location that does not exist yields ErrSourceMissing.
func loadSource(ctx context.Context, client *http.Client, location string, fn func(string)) (int, error) {
	if common.IsRemote(location) {
		return loadRemote(ctx, client, location, fn)
	}
	return loadFile(location, fn)
}

func loadFile(path string, fn func(string)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%s: %w", path, ErrSourceMissing)
		}
		return 0, err
	}
	defer f.Close()

	cr := codec.NewCountReader(f)
	var r io.Reader = cr
	if codec.IsGzip(path) {
		gc := codec.NewGzipCodec()
		gc.BindR(cr)
		zr, err := gc.Stream()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	t := time.Now()
	n, err := readLines(r, fn)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	common.DINFO("Loaded %v entries (%v bytes) from %v in %v", n, cr.Count(), common.FileName(path), time.Since(t))
	return n, nil
}

func loadRemote(ctx context.Context, client *http.Client, location string, fn func(string)) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return 0, err
	}
	t := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		common.DFAIL("Fetch %v failed after %v: %v", location, time.Since(t), err)
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, fmt.Errorf("%s: %w", location, ErrSourceMissing)
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("%s: unexpected status %s", location, resp.Status)
	}
	return readLines(resp.Body, fn)
}
