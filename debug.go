package visage

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// debugEnvVar gates the trace side channel. Any non-empty value other than
// "0" enables it.
const debugEnvVar = "VISAGE_DEBUG"

var (
	debugOnce    sync.Once
	debugEnabled bool
	debugOut     io.Writer = os.Stderr
)

// debugActive reports whether trace logging is on. The environment variable
// is consulted once, on first use.
func debugActive() bool {
	debugOnce.Do(func() {
		v := os.Getenv(debugEnvVar)
		debugEnabled = v != "" && v != "0"
	})
	return debugEnabled
}

// SetDebugOutput redirects trace output away from stderr. Intended for tests;
// passing nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOut = w
}

// setDebugEnabled overrides the environment gate. Test-only; the production
// path never flips the flag after first use.
func setDebugEnabled(enabled bool) {
	debugOnce.Do(func() {})
	debugEnabled = enabled
}

// debugLog prints a tagged trace line to the debug writer. It must never
// influence control flow; callers treat it as write-only.
func debugLog(tag, format string, args ...any) {
	if !debugActive() {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[visage][%s] %s\n", tag, fmt.Sprintf(format, args...))
}

// throttle suppresses repeat log lines for a tagged site. Per-tick skip paths
// would otherwise emit at display rate.
type throttle struct {
	last     time.Time
	interval time.Duration
	now      func() time.Time // test hook, nil means time.Now
}

// ready reports whether enough time has passed since the last accepted call,
// and records the current time if so.
func (t *throttle) ready() bool {
	nowFn := t.now
	if nowFn == nil {
		nowFn = time.Now
	}
	interval := t.interval
	if interval == 0 {
		interval = time.Second
	}
	now := nowFn()
	if !t.last.IsZero() && now.Sub(t.last) < interval {
		return false
	}
	t.last = now
	return true
}

// debugLogThrottled is debugLog limited to one line per throttle interval.
func debugLogThrottled(t *throttle, tag, format string, args ...any) {
	if !debugActive() {
		return
	}
	if !t.ready() {
		return
	}
	debugLog(tag, format, args...)
}
