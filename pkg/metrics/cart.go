package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart mutations, order submissions and the live item
// count. The item count gauge is fed by a cart-changed observer, which is how
// badge-style consumers stay current without polling the store.
type CartMetrics struct {
	mutations   *prometheus.CounterVec
	submissions *prometheus.CounterVec
	items       prometheus.Gauge
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart store mutations by operation.",
	}, []string{"op"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submissions_total",
		Help: "Order submission attempts by outcome.",
	}, []string{"outcome"})
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_items",
		Help: "Number of line items currently in the cart.",
	})
	reg.MustRegister(mutations, submissions, items)
	return &CartMetrics{
		mutations:   mutations,
		submissions: submissions,
		items:       items,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (c *CartMetrics) IncMutation(op string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncSubmission increments the submission counter for the named outcome.
func (c *CartMetrics) IncSubmission(outcome string) {
	if c == nil || c.submissions == nil {
		return
	}
	c.submissions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// SetCartSize records the current line item count.
func (c *CartMetrics) SetCartSize(count int) {
	if c == nil || c.items == nil {
		return
	}
	c.items.Set(float64(count))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
