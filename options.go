package fmctrainer

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	workers       int
	maxDepth      int
	tableDepthCap int
	memoryBudget  int
	cachePath     string
}

func defaultConfig() *config {
	return &config{
		workers:  0, // GOMAXPROCS
		maxDepth: 20,
	}
}

// WithWorkers caps the goroutines used for table builds and searches.
// Zero (default) uses GOMAXPROCS. Results never depend on this setting.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithMaxDepth sets the search depth limit. Searches that exhaust every
// sequence up to this length return ErrExhausted. Default is 20.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithTableDepthCap stops pruning-table generation after the given BFS
// depth. Capped tables stay admissible but prune less; use this to trade
// startup time for search time. Zero (default) builds full tables.
func WithTableDepthCap(depth int) Option {
	return func(c *config) {
		c.tableDepthCap = depth
	}
}

// WithMemoryBudget sets the byte budget above which a stage's pruning
// table falls back to a sparse representation. Zero (default) always
// uses dense tables.
func WithMemoryBudget(bytes int) Option {
	return func(c *config) {
		c.memoryBudget = bytes
	}
}

// WithTableCache persists built pruning tables to a SQLite database at
// the given path, so later runs load instead of rebuilding. An empty
// path (default) disables caching.
func WithTableCache(path string) Option {
	return func(c *config) {
		c.cachePath = path
	}
}
