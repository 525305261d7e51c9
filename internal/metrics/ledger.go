// Package metrics keeps the per-call cost and latency ledger for AI calls.
// The ledger is the only state shared between concurrent operations and its
// only mutation is append.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Operation names the logical operation a record belongs to.
type Operation string

const (
	OpGenerate Operation = "generate"
	OpValidate Operation = "validate"
)

// Record is one logical AI call (all of its retries), success or failure.
type Record struct {
	RequestID        string    `json:"requestId"`
	Timestamp        time.Time `json:"timestamp"`
	Operation        Operation `json:"operation"`
	Model            string    `json:"model"`
	PromptTokens     int       `json:"promptTokens"`
	CompletionTokens int       `json:"completionTokens"`
	ResponseTimeMs   int64     `json:"responseTimeMs"`
	CostUSD          float64   `json:"costUsd"`
	Success          bool      `json:"success"`
	ErrorType        string    `json:"errorType,omitempty"`
}

// TotalTokens returns prompt + completion tokens.
func (r Record) TotalTokens() int {
	return r.PromptTokens + r.CompletionTokens
}

// Stats summarizes the ledger.
type Stats struct {
	TotalRequests     int            `json:"totalRequests"`
	SuccessCount      int            `json:"successful"`
	FailureCount      int            `json:"failed"`
	SuccessRate       float64        `json:"successRate"`
	TotalCostUSD      float64        `json:"totalCost"`
	TotalTokens       int            `json:"totalTokens"`
	AvgResponseTimeMs float64        `json:"avgResponseTime"`
	ErrorTypes        map[string]int `json:"errorTypes"`
}

// Sink receives every record after it is appended in memory. Implementations
// must be safe for concurrent use.
type Sink interface {
	AppendMetric(ctx context.Context, rec Record) error
}

// Ledger is an append-only, mutex-protected list of records.
type Ledger struct {
	mu      sync.RWMutex
	records []Record
	sink    Sink
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithSink forwards every appended record to s.
func WithSink(s Sink) Option {
	return func(l *Ledger) { l.sink = s }
}

// WithLogger sets the logger used to report sink failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record appends rec, filling RequestID and Timestamp when unset. Sink
// errors are logged and otherwise ignored.
func (l *Ledger) Record(ctx context.Context, rec Record) Record {
	if rec.RequestID == "" {
		rec.RequestID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = l.now()
	}
	if rec.Success {
		rec.ErrorType = ""
	}

	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()

	if l.sink != nil {
		if err := l.sink.AppendMetric(ctx, rec); err != nil {
			l.logger.WarnContext(ctx, "failed to persist metrics record",
				"request_id", rec.RequestID, "error", err)
		}
	}

	return rec
}

// All returns a copy of every record in insertion order.
func (l *Ledger) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Stats computes the summary over every record.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Summarize(l.records)
}

// Clear drops every in-memory record. The sink is not affected.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.records = nil
	l.mu.Unlock()
}

// Summarize computes Stats over records. An empty slice yields zero rates.
func Summarize(records []Record) Stats {
	s := Stats{ErrorTypes: map[string]int{}}
	var totalMs int64
	for _, r := range records {
		s.TotalRequests++
		if r.Success {
			s.SuccessCount++
		} else {
			s.FailureCount++
			errType := r.ErrorType
			if errType == "" {
				errType = "unknown"
			}
			s.ErrorTypes[errType]++
		}
		s.TotalCostUSD += r.CostUSD
		s.TotalTokens += r.TotalTokens()
		totalMs += r.ResponseTimeMs
	}
	if s.TotalRequests > 0 {
		s.SuccessRate = float64(s.SuccessCount) / float64(s.TotalRequests)
		s.AvgResponseTimeMs = float64(totalMs) / float64(s.TotalRequests)
	}
	return s
}
