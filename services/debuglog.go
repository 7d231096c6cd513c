package services

import (
	"fmt"
	"strings"
)

// DebugSink receives every trace line as it is recorded (redislog.Logger satisfies it).
type DebugSink interface {
	Debug(msg string, meta map[string]string)
}

// DebugLog is an append-only list of trace lines.
type DebugLog struct {
	entries []string
	sink    DebugSink
	meta    map[string]string
}

func (d *DebugLog) append(line string) {
	d.entries = append(d.entries, line)
	if d.sink != nil {
		d.sink.Debug(line, d.meta)
	}
}

// Entries returns a copy of the recorded lines.
func (d *DebugLog) Entries() []string {
	out := make([]string, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of recorded lines.
func (d *DebugLog) Len() int { return len(d.entries) }

// formatCall renders `Op(arg1, arg2)` with Go-syntax arguments.
func formatCall(op string, args ...any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%#v", a)
	}
	return op + "(" + strings.Join(parts, ", ") + ")"
}
