// Package logger builds slog loggers for the client library.
//
// The factory supports JSON and text output, static attributes and
// context extractors that inject request-scoped values (such as the
// correlation ID) into every record emitted with a context:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextExtractors(correlation.LoggerExtractor()),
//	)
package logger
