package logger_test

import (
	"io"
	"time"

	"github.com/evandrocoan/DebugTools/core"
	"github.com/evandrocoan/DebugTools/formatter"
	"github.com/evandrocoan/DebugTools/handler"
	"github.com/evandrocoan/DebugTools/logger"
)

// Grab a shared logger from the registry and gate messages with the
// bitmask: bit 1 passes a mask of 127, bit 8 (256) does not.
func ExampleGetLogger() {
	log := logger.GetLogger(127, "main")

	log.Log(1, "Debugging")
	log.Log(256, "invisible under this mask")
	log.Log(0, "level 0 always prints")
}

// Build a private logger with explicit capabilities. Freezing the clock
// makes every field of the line deterministic.
func ExampleNewBuilder() {
	frozen := time.Date(2018, 4, 1, 23, 34, 8, 81722975, time.UTC)
	log := logger.NewBuilder("pkg.mod").
		WithLevel(logger.Bit(0) | logger.Bit(3)).
		WithClock(core.ClockFunc(func() time.Time { return frozen })).
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{
			Formatter: formatter.NewTextFormatter(formatter.Config{UTC: true}),
		})).
		Build()

	log.Log(1, "My logging")
	// Output:
	// [pkg.mod] 23:34:08:081.722975 0.00e+00 My logging
}

// Convenience categories bypass the bitmask: even a fully silent mask
// still emits Debug, Info and Warning until explicitly muted.
func ExampleLogger_SetCategoryEnabled() {
	log := logger.NewBuilder("worker").
		WithLevel(0).
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: io.Discard})).
		Build()

	log.Debug("still visible under mask 0")
	log.SetCategoryEnabled(logger.CategoryDebug, false)
	log.Debug("now muted")
}

// Fan output out to several sinks at once.
func ExampleLogger_multipleSinks() {
	log := logger.NewBuilder("etl").
		WithLevel(logger.LevelAll).
		WithHandler(handler.NewMultiHandler(
			handler.NewWriterHandler(handler.WriterConfig{Writer: io.Discard}),
			handler.NewWriterHandler(handler.WriterConfig{Writer: io.Discard}),
		)).
		Build()

	log.Info("delivered everywhere")
	log.Close()
}
