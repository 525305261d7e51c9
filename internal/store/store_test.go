package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/kidguard/internal/metrics"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "kidguard.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kidguard.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := s.AppendMetric(ctx, metrics.Record{RequestID: "r1", Timestamp: time.Now(), Operation: metrics.OpGenerate, Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	recs, err := s.ListMetrics(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record after reopen, got %d", len(recs))
	}
}

func TestAppendAndListMetrics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	want := metrics.Record{
		RequestID:        "req-1",
		Timestamp:        base,
		Operation:        metrics.OpGenerate,
		Model:            "deepseek-chat",
		PromptTokens:     120,
		CompletionTokens: 80,
		ResponseTimeMs:   950,
		CostUSD:          0.0001,
		Success:          true,
	}
	if err := s.AppendMetric(ctx, want); err != nil {
		t.Fatalf("append: %v", err)
	}
	failed := metrics.Record{
		RequestID: "req-2",
		Timestamp: base.Add(time.Minute),
		Operation: metrics.OpValidate,
		Model:     "deepseek-chat",
		Success:   false,
		ErrorType: "timeout",
	}
	if err := s.AppendMetric(ctx, failed); err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := s.ListMetrics(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	got := recs[0]
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp: got %v, want %v", got.Timestamp, want.Timestamp)
	}
	got.Timestamp = want.Timestamp
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if recs[1].Success || recs[1].ErrorType != "timeout" {
		t.Errorf("unexpected failed record: %+v", recs[1])
	}
}

func TestAppendDuplicateRequestID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := metrics.Record{RequestID: "dup", Timestamp: time.Now(), Operation: metrics.OpGenerate}
	if err := s.AppendMetric(ctx, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendMetric(ctx, rec); err == nil {
		t.Fatal("expected duplicate request id to be rejected")
	}
}

func TestListMetricsFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		op := metrics.OpGenerate
		if i%2 == 1 {
			op = metrics.OpValidate
		}
		rec := metrics.Record{
			RequestID: fmt.Sprintf("req-%d", i),
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Operation: op,
			Success:   true,
		}
		if err := s.AppendMetric(ctx, rec); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want []string
	}{
		{"all", QueryOpts{}, []string{"req-0", "req-1", "req-2", "req-3", "req-4", "req-5"}},
		{"operation", QueryOpts{Operation: metrics.OpValidate}, []string{"req-1", "req-3", "req-5"}},
		{"limit keeps newest", QueryOpts{Limit: 2}, []string{"req-4", "req-5"}},
		{"time range", QueryOpts{From: base.Add(2 * time.Hour), To: base.Add(3 * time.Hour)}, []string{"req-2", "req-3"}},
		{"combined", QueryOpts{Operation: metrics.OpGenerate, Limit: 1}, []string{"req-4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.ListMetrics(ctx, tt.opts)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(recs) != len(tt.want) {
				t.Fatalf("expected %d records, got %d", len(tt.want), len(recs))
			}
			for i, id := range tt.want {
				if recs[i].RequestID != id {
					t.Errorf("record %d: got %s, want %s", i, recs[i].RequestID, id)
				}
			}
		})
	}
}

func TestMetricStatsAndClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	recs := []metrics.Record{
		{RequestID: "a", Timestamp: now, Operation: metrics.OpGenerate, Success: true, PromptTokens: 10, CompletionTokens: 5, CostUSD: 0.5, ResponseTimeMs: 100},
		{RequestID: "b", Timestamp: now, Operation: metrics.OpValidate, Success: false, ErrorType: "server_error", ResponseTimeMs: 300},
	}
	for _, r := range recs {
		if err := s.AppendMetric(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := s.MetricStats(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRequests != 2 || stats.SuccessCount != 1 || stats.TotalTokens != 15 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgResponseTimeMs != 200 || stats.ErrorTypes["server_error"] != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	n, err := s.ClearMetrics(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows removed, got %d", n)
	}
	left, _ := s.ListMetrics(ctx, QueryOpts{})
	if len(left) != 0 {
		t.Errorf("expected empty table, got %d", len(left))
	}
}

func TestLedgerSink(t *testing.T) {
	s := openTestStore(t)
	ledger := metrics.NewLedger(metrics.WithSink(s))
	rec := ledger.Record(context.Background(), metrics.Record{Operation: metrics.OpGenerate, Model: "mock", Success: true})

	recs, err := s.ListMetrics(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 || recs[0].RequestID != rec.RequestID {
		t.Fatalf("expected ledger record to be persisted, got %+v", recs)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		p := filepath.Join(dir, "custom", "k.db")
		t.Setenv("KIDGUARD_DB", p)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != p {
			t.Errorf("got %q, want %q", got, p)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("KIDGUARD_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		want := filepath.Join(dir, "kidguard", "kidguard.db")
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
