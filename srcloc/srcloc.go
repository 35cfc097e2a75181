// Package srcloc captures source locations (file, line, enclosing function)
// for diagnostic call-site reporting. A Location is an ordinary value passed
// as an argument, so callers decide where and when to capture it.
package srcloc

import (
	"fmt"
	"io"
	"runtime"
)

// Location identifies a position in the program source.
type Location struct {
	File     string
	Line     int
	Function string
}

// Here returns the Location of its call site.
func Here() Location {
	return Caller(1)
}

// Caller returns the Location skip stack frames above its call site.
// Caller(0) is equivalent to Here() called from the same place.
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown"}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// String renders the location as "file:line in function name".
func (l Location) String() string {
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d in function %s", l.File, l.Line, l.Function)
}

// Report writes a "Called from" line describing loc to w.
func Report(w io.Writer, loc Location) {
	fmt.Fprintf(w, "Called from %s\n", loc)
}
