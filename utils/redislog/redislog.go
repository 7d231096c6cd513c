package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes logs to a Redis LIST (e.g. "logs:frock") and trims it to a max length.
// A nil Logger, or one without a client, is a no-op.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:frock"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	now       func() time.Time
}

// New creates a Redis logger using a LIST.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// Key returns the list key entries are pushed to.
func (l *Logger) Key() string {
	if l == nil {
		return ""
	}
	return l.key
}

// Enabled reports whether entries actually reach Redis.
func (l *Logger) Enabled() bool { return l != nil && l.rdb != nil }

// log pushes a log entry as JSON -> LPUSH; then LTRIM; then EXPIRE.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if !l.Enabled() {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, b).Err()
	if l.max > 0 {
		_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	}
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

// Recent returns up to n newest entries (newest first). Entries that fail to decode are skipped.
func (l *Logger) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if !l.Enabled() || n <= 0 {
		return []Entry{}, nil
	}
	raw, err := l.rdb.LRange(ctx, l.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redislog: read %s: %w", l.key, err)
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var e Entry
		if json.Unmarshal([]byte(s), &e) == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// Debug is used for dispatcher trace lines.
func (l *Logger) Debug(msg string, meta map[string]string) { l.log("debug", msg, meta) }

// Info is normal information (not an error, not a warning).
func (l *Logger) Info(msg string, meta map[string]string)  { l.log("info", msg, meta) }
func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }

// Formatted variants
func (l *Logger) Infof(format string, meta map[string]string, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(format string, meta map[string]string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(format string, meta map[string]string, args ...any) {
	l.Error(fmt.Sprintf(format, args...), meta)
}
