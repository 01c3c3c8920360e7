package modem

import (
	"fmt"
	"os"
)

var debugEnabled = os.Getenv("TONELINE_DEBUG") != ""

func debugLog(format string, a ...any) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, format, a...)
	}
}
