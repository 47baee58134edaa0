package log

import "time"

// Logger is what the runner, watcher and CLI log through. Entries carry a
// message plus key/value fields such as "from", "to", "code" and "dir".
// Rename failures are logged at Error; completed renames at Info; dry-run and
// watcher event detail at Debug.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration is used for the watcher's debounce setting.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// Err attaches err under the "error" key. A nil err is logged as null.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Any is the fallback for values without a dedicated helper; the zerolog
// adapter encodes them with Interface.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
