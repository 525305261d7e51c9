package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/kidguard/internal/metrics"
)

// QueryOpts filters metrics queries.
type QueryOpts struct {
	Limit     int               // max results, newest first when set (0 = unlimited)
	Operation metrics.Operation // empty matches every operation
	From      time.Time         // timestamp >= From
	To        time.Time         // timestamp <= To
}

// AppendMetric stores one record. It satisfies metrics.Sink.
func (s *Store) AppendMetric(ctx context.Context, rec metrics.Record) error {
	const query = `
	INSERT INTO metrics (request_id, timestamp, operation, model, prompt_tokens,
		completion_tokens, response_time_ms, cost_usd, success, error_type)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.RequestID, rec.Timestamp.UnixMilli(), string(rec.Operation), rec.Model,
		rec.PromptTokens, rec.CompletionTokens, rec.ResponseTimeMs, rec.CostUSD,
		rec.Success, rec.ErrorType,
	)
	if err != nil {
		return fmt.Errorf("insert metric %s: %w", rec.RequestID, err)
	}
	return nil
}

// ListMetrics returns stored records in insertion order.
func (s *Store) ListMetrics(ctx context.Context, opts QueryOpts) ([]metrics.Record, error) {
	var (
		where []string
		args  []any
	)
	if opts.Operation != "" {
		where = append(where, "operation = ?")
		args = append(args, string(opts.Operation))
	}
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	query := `SELECT seq, request_id, timestamp, operation, model, prompt_tokens,
		completion_tokens, response_time_ms, cost_usd, success, error_type FROM metrics`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if opts.Limit > 0 {
		// Keep the newest Limit rows, still returned oldest first.
		query = "SELECT * FROM (" + query + " ORDER BY seq DESC LIMIT ?) ORDER BY seq"
		args = append(args, opts.Limit)
	} else {
		query += " ORDER BY seq"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	var out []metrics.Record
	for rows.Next() {
		var (
			seq int64
			rec metrics.Record
			ts  int64
			op  string
		)
		if err := rows.Scan(&seq, &rec.RequestID, &ts, &op, &rec.Model,
			&rec.PromptTokens, &rec.CompletionTokens, &rec.ResponseTimeMs,
			&rec.CostUSD, &rec.Success, &rec.ErrorType); err != nil {
			return nil, fmt.Errorf("scan metric row: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		rec.Operation = metrics.Operation(op)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics: %w", err)
	}
	return out, nil
}

// MetricStats summarizes the stored records matching opts.
func (s *Store) MetricStats(ctx context.Context, opts QueryOpts) (metrics.Stats, error) {
	recs, err := s.ListMetrics(ctx, opts)
	if err != nil {
		return metrics.Stats{}, err
	}
	return metrics.Summarize(recs), nil
}

// ClearMetrics deletes every stored record and returns how many were removed.
func (s *Store) ClearMetrics(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM metrics")
	if err != nil {
		return 0, fmt.Errorf("clear metrics: %w", err)
	}
	return res.RowsAffected()
}
