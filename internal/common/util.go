package common

import (
	"os"
	"path/filepath"
	"strings"
)

func IsExist(f string) bool {
	_, err := os.Stat(f)
	return err == nil || os.IsExist(err)
}

// IsRemote reports whether a dictionary location is fetched over http.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// FileName returns the last element of a dictionary location, for logs.
func FileName(location string) string {
	if location == "" {
		return ""
	}
	if IsRemote(location) {
		if idx := strings.LastIndex(location, "/"); idx != -1 && idx < len(location)-1 {
			return location[idx+1:]
		}
		return location
	}
	return filepath.Base(location)
}

// SplitList splits a ';' separated location list, dropping blanks.
func SplitList(s string) []string {
	res := []string{}
	for _, v := range strings.Split(s, ";") {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

// NormalizeWord trims and lower cases a dictionary entry.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
