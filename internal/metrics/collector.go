package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Ledger as Prometheus metrics. Values are computed
// from the ledger at scrape time, so nothing is double counted.
type Collector struct {
	ledger *Ledger

	requests     *prometheus.Desc
	cost         *prometheus.Desc
	tokens       *prometheus.Desc
	responseTime *prometheus.Desc
}

// NewCollector creates a collector over l.
func NewCollector(l *Ledger) *Collector {
	return &Collector{
		ledger: l,
		requests: prometheus.NewDesc(
			"kidguard_ai_requests_total",
			"AI calls recorded in the ledger.",
			[]string{"operation", "success"}, nil,
		),
		cost: prometheus.NewDesc(
			"kidguard_ai_cost_usd_total",
			"Estimated USD cost of all recorded AI calls.",
			nil, nil,
		),
		tokens: prometheus.NewDesc(
			"kidguard_ai_tokens_total",
			"Tokens consumed by recorded AI calls.",
			[]string{"kind"}, nil,
		),
		responseTime: prometheus.NewDesc(
			"kidguard_ai_response_time_ms_avg",
			"Average response time of recorded AI calls in milliseconds.",
			nil, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.requests
	ch <- c.cost
	ch <- c.tokens
	ch <- c.responseTime
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	type key struct {
		op      Operation
		success bool
	}
	counts := map[key]int{}
	var prompt, completion int

	records := c.ledger.All()
	for _, r := range records {
		counts[key{r.Operation, r.Success}]++
		prompt += r.PromptTokens
		completion += r.CompletionTokens
	}
	stats := Summarize(records)

	for k, n := range counts {
		ch <- prometheus.MustNewConstMetric(c.requests, prometheus.CounterValue, float64(n),
			string(k.op), strconv.FormatBool(k.success))
	}
	ch <- prometheus.MustNewConstMetric(c.cost, prometheus.CounterValue, stats.TotalCostUSD)
	ch <- prometheus.MustNewConstMetric(c.tokens, prometheus.CounterValue, float64(prompt), "prompt")
	ch <- prometheus.MustNewConstMetric(c.tokens, prometheus.CounterValue, float64(completion), "completion")
	ch <- prometheus.MustNewConstMetric(c.responseTime, prometheus.GaugeValue, stats.AvgResponseTimeMs)
}
