package common

import (
	"log"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug toggles the D* variants.
func SetDebug(on bool) {
	debug.Store(on)
}

func INFO(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}
func WARN(format string, args ...any) {
	log.Printf("[WARN] "+format, args...)
}
func FAIL(format string, args ...any) {
	log.Printf("[FAIL] "+format, args...)
}

func DINFO(format string, args ...any) {
	if debug.Load() {
		log.Printf("[INFO] "+format, args...)
	}
}
func DWARN(format string, args ...any) {
	if debug.Load() {
		log.Printf("[WARN] "+format, args...)
	}
}
func DFAIL(format string, args ...any) {
	if debug.Load() {
		log.Printf("[FAIL] "+format, args...)
	}
}
