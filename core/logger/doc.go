// Package logger builds structured loggers on top of log/slog and provides
// attribute helpers with consistent keys.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("counter"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("model started",
//		logger.Component("counter"),
//		logger.Event("startup"),
//	)
//
// Production setups use JSON:
//
//	log := logger.New(
//		logger.WithProduction("counter"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
// # Attribute Helpers
//
// Helpers such as Error and Failure return an empty attribute for nil input,
// so they can be used without nil checks:
//
//	log.Warn("stream ended", logger.Failure(failure), logger.Component("status"))
//
// # Testing
//
// Capture output with WithOutput and a bytes.Buffer, or silence a component
// with Discard.
package logger
