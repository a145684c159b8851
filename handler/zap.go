package handler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/evandrocoan/DebugTools/core"
)

// ZapHandler is an adapter that delivers entries through a zap.Logger, so
// an application already wired for zap can route DebugTools output into its
// existing cores, encoders and sinks. The formatted-line grammar does not
// apply on this path; the entry's name, delta and caller travel as zap
// fields instead.
type ZapHandler struct {
	logger *zap.Logger
}

// NewZapHandler creates a new handler wrapping the given zap logger.
func NewZapHandler(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// categoryToZap maps a convenience category to the closest zap level.
// Numeric bitmask levels carry no severity of their own and map to Debug.
func categoryToZap(c core.Category) zapcore.Level {
	switch c {
	case core.CategoryInfo:
		return zapcore.InfoLevel
	case core.CategoryWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.DebugLevel
	}
}

// Handle forwards the entry to the wrapped zap logger, preserving the
// original emission timestamp.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(categoryToZap(entry.Category), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time

	fields := []zap.Field{
		zap.String("logger", entry.Name),
		zap.Duration("delta", entry.Delta),
	}
	if entry.Level != 0 {
		fields = append(fields, zap.Uint64("level", uint64(entry.Level)))
	}
	if entry.Caller.Defined {
		fields = append(fields,
			zap.String("func", entry.Caller.Function),
			zap.Int("line", entry.Caller.Line),
		)
	}

	ce.Write(fields...)
	return nil
}

// CanRecycleEntry returns true because zap copies everything it needs
// before Write returns.
func (h *ZapHandler) CanRecycleEntry() bool {
	return true
}

// Close flushes the wrapped zap logger.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}
