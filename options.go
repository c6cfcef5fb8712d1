package kmeans

import (
	"math/rand/v2"
)

type options struct {
	rand             Source
	maxIterations    int
	emptyPolicy      EmptyClusterPolicy
	workers          int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a clustering run.
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		workers:          1,
		emptyPolicy:      KeepCentroid,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// WithSeed makes seeding reproducible: the same seed, k and input order
// always produce the same clustering.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used for seeding.
//
// If nil is passed, a randomly seeded PCG source is used.
func WithRand(src Source) Option {
	return func(o *options) {
		o.rand = src
	}
}

// WithMaxIterations caps the number of recalculate/assign rounds.
//
// Lloyd's iteration terminates on its own for well-behaved inputs, but
// floating-point rounding can make two states alternate forever. When the cap
// is reached the last clustering is returned with Result.Converged == false.
//
// If n <= 0, rounds are unlimited (the default).
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = max(n, 0)
	}
}

// WithEmptyClusterPolicy configures what happens to a cluster that loses all
// of its members. The default is KeepCentroid.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyPolicy = p
	}
}

// WithWorkers spreads the nearest-centroid search over n goroutines.
//
// Each worker owns a contiguous range of points and membership is still
// built in input order, so the result is identical to a serial run.
// Small inputs are always assigned serially.
//
// If n <= 1, assignment is serial (the default).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	clusters, _ := kmeans.Partition(ctx, 3, points, kmeans.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().FitCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
