package services

import (
	"fmt"
	"strings"
)

// recordingSink captures sink messages for assertions.
type recordingSink struct {
	infos []string
	warns []string
}

func (r *recordingSink) Info(msg string, args ...any) {
	r.infos = append(r.infos, format(msg, args))
}

func (r *recordingSink) Warn(msg string, args ...any) {
	r.warns = append(r.warns, format(msg, args))
}

func format(msg string, args []any) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	return b.String()
}
