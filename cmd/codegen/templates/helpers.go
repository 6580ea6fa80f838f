package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pipeParams renders "p0 Pipe[T0], p1 Pipe[T1], ..." for count pipes.
func pipeParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString("p" + n + " Pipe[T" + n + "]")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
