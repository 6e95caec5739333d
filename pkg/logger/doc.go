// Package logger builds *slog.Logger values for the converter and offers
// attribute helpers that keep key names consistent across log records.
//
// New creates a logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter choose the handler.
//   - WithLevel sets the minimum level.
//   - WithOutput redirects records (stdout by default).
//   - WithAttr attaches static attributes to every record.
//   - WithContextExtractors / WithContextValue copy values carried by a
//     context.Context into each record.
//   - WithDevelopment / WithProduction apply per-environment presets.
//
// Discard returns a logger that drops everything; the converter uses it
// unless a logger is injected.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("forum"),
//	    logger.WithContextValue("post_id", ctxKeyPostID),
//	)
//	conv := bbcode.New(bbcode.WithLogger(log))
//
//	html, err := conv.ConvertContext(ctx, body)
//
// Records produced while converting carry component=bbcode; repairs of
// malformed markup are logged at debug level with the sane, repairs,
// unclosed, input_size, duration and cached attributes.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
