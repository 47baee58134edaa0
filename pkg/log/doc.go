// Package log provides the logging abstraction used across secpad.
//
// The runner, watcher and CLI log through the Logger interface. The CLI builds
// a zerolog adapter on stderr; pkg/secpad.Run and the tests fall back to the
// no-op logger:
//
//	logger := log.NewZerologAdapterWithWriter(os.Stderr, log.DefaultLevel)
//	logger.Info("renamed", log.String("from", "Sec3.js"), log.String("to", "Sec03.js"))
//
//	quiet := log.NewNoopLogger()
package log
