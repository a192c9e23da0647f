package log

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"
)

// UICleanup restores the terminal before a crash report is printed.
var UICleanup = func() {}

// PanicHandler restores the terminal, writes a stack trace to a crash log in
// /tmp and panics again.
func PanicHandler() {
	r := recover()
	if r == nil {
		return
	}

	UICleanup()

	filename := time.Now().Format("/tmp/dirtyview-crash-20060102-150405.log")

	panicLog, err := os.OpenFile(filename, os.O_SYNC|os.O_APPEND|os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		panic(r)
	}
	defer panicLog.Close()

	outputs := io.MultiWriter(panicLog, os.Stderr)

	fmt.Fprintln(panicLog, strings.Repeat("#", 80))
	fmt.Fprintf(panicLog, "%s PANIC %s\n", BuildInfo,
		time.Now().Format("2006-01-02T15:04:05.000000-0700"))
	fmt.Fprintln(panicLog, strings.Repeat("#", 80))
	fmt.Fprintf(outputs, "dirtyview crashed: %v\n", r)
	panicLog.Write(debug.Stack()) //nolint:errcheck // nothing left to do
	fmt.Fprintf(os.Stderr, "\nThe stack trace was written to: %s\n", filename)
	panic(r)
}

// BuildInfo is set by main and included in crash reports.
var BuildInfo string
