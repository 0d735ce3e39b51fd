// Package debug provides env-gated diagnostic printing. Set JSOAP_DEBUG
// to any non-empty value to enable it.
package debug

import (
	"fmt"
	"os"
)

var enabled = os.Getenv("JSOAP_DEBUG") != ""

func Enabled() bool {
	return enabled
}

func Logf(format string, args ...interface{}) {
	if enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
