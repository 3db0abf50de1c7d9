// Package logger provides the structured logging used by the engine and
// loader packages: a JSON handler with context-based attribute injection
// and optional Sentry error reporting.
//
// # Overview
//
// The package provides:
//   - LocaleExtractor, a ContextExtractor that injects the active locale
//     into every log record carrying it
//   - A decorator pattern that wraps any slog.Handler with extraction
//     behavior
//   - Sentry integration for error tracking with graceful fallback when
//     unconfigured
//   - Multi-handler support for routing logs to both stdout and Sentry
//
// # Basic Usage
//
//	log := logger.New(logger.LocaleExtractor)
//
//	ctx := logger.WithLocale(context.Background(), "fr-CA")
//	log.WarnContext(ctx, "remote fetch failed, proceeding with cached templates")
//	// Output: {"time":"...","level":"WARN","msg":"remote fetch failed, ...","locale":"fr-CA"}
//
// # Sentry Integration
//
// For production error tracking, use NewWithSentry:
//
//	cfg := logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn, // Send warnings and errors to Sentry
//	}
//
//	log := logger.NewWithSentry(cfg, logger.LocaleExtractor)
//
// If DSN is empty, the logger falls back to stdout-only logging, making it
// safe to use the same construction path in development and production.
//
// # Context Extractors
//
// A ContextExtractor pulls one log attribute out of a context.Context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call, so request-scoped values like the
// active locale stay fresh across a request's lifetime. Returning false
// skips the attribute for that call.
//
// # Handler Decoration
//
// LogHandlerDecorator wraps any slog.Handler to add context extraction:
//
//	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	decorated := logger.NewLogHandlerDecorator(jsonHandler, logger.LocaleExtractor)
//	log := slog.New(decorated)
//
// # Architecture
//
// Decorator pattern: LogHandlerDecorator wraps any slog.Handler,
// intercepting Handle calls to inject extracted attributes before
// delegating to the underlying handler.
//
// Multi-handler pattern: an internal multiHandler forwards logs to
// multiple destinations, enabling simultaneous stdout and Sentry logging.
//
// Graceful degradation: Sentry integration fails gracefully -- if DSN is
// missing or initialization fails, logging continues to stdout without
// disruption.
package logger
