package cache

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Soft misses are misses resolved by a caller-supplied default rather than a
// failed lookup; they are a subset of misses, so SoftMiss always fires
// together with Miss.
type Metrics interface {
	Hit()
	Miss()
	SoftMiss()
	Evict()
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) SoftMiss() {}
func (NoopMetrics) Evict()    {}
func (NoopMetrics) Size(int)  {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
