package pkg

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ansel1/merry"
	"github.com/powerman/structlog"
)

// FormatMerryStacktrace returns the error's stacktrace joined with sep, or an empty
// string if err carries no stack.
func FormatMerryStacktrace(err error, sep string) string {
	return FormatStacktrace(merry.Stack(err), sep)
}

func FormatStacktrace(stack []uintptr, sep string) string {
	var xs []string
	for _, fp := range stack {
		fnc := runtime.FuncForPC(fp)
		if fnc == nil {
			continue
		}
		name := filepath.Base(fnc.Name())
		if name == "runtime.goexit" {
			continue
		}
		file, line := fnc.FileLine(fp)
		xs = append(xs, fmt.Sprintf("%s:%d %s", filepath.ToSlash(file), line, name))
	}
	return strings.Join(xs, sep)
}

// PrintErrWithStack logs err followed by its merry stacktrace, one frame per line.
func PrintErrWithStack(log *structlog.Logger, err error) {
	log.PrintErr(err)
	for _, s := range strings.Split(FormatMerryStacktrace(err, "\n"), "\n") {
		if len(s) > 0 {
			log.PrintErr("\t" + s)
		}
	}
}
