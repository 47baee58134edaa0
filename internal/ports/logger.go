package ports

import (
	"time"

	"github.com/bft-labs/secpad/pkg/log"
)

// Logger is the structured logger used by the application layer.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// String creates a string field.
func String(key, value string) Field { return log.String(key, value) }

// Int creates an int field.
func Int(key string, value int) Field { return log.Int(key, value) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return log.Bool(key, value) }

// Err creates an error field.
func Err(err error) Field { return log.Err(err) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return log.Duration(key, value) }
