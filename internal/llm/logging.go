package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// LoggingProvider is a decorator that emits one structured log record per
// attempt. It sits inside the retry decorator so retries are visible.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps a Provider with per-attempt logging.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Complete(ctx, req)

	model := l.inner.ModelID()
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}
	attrs := []any{
		"operation", OperationFrom(ctx),
		"model", model,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if resp != nil {
		attrs = append(attrs,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens,
			"stop_reason", resp.StopReason,
		)
	}

	if err != nil {
		attrs = append(attrs, "error_kind", ErrorType(err), "error", err)
		l.logger.WarnContext(ctx, "ai request attempt failed", attrs...)
		return resp, err
	}

	if l.logger.Enabled(ctx, slog.LevelDebug) {
		attrs = append(attrs, "request", serializeRequest(req))
	}
	l.logger.InfoContext(ctx, "ai request attempt", attrs...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
