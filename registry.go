package treelog

import (
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Registry resolves dotted logger names to cached child loggers.
//
// Names form a hierarchy: "net.http.client" is a child of "net.http", which
// is a child of "net", which is a child of the registry root (the empty
// name). Resolved loggers are created once and cached, so library code can
// call Get with a stable name from anywhere and always reach the same logger.
//
// Named loggers own no sinks of their own; their records fan out through the
// parent chain to the root's sinks. Thresholds inherit from the root unless
// the hierarchy is rebuilt with different roots per registry.
type Registry struct {
	root    *Logger
	loggers *xsync.MapOf[string, *Logger]
}

// NewRegistry creates a registry whose named loggers hang off root.
func NewRegistry(root *Logger) *Registry {
	return &Registry{
		root:    root,
		loggers: xsync.NewMapOf[string, *Logger](),
	}
}

// Get returns the logger for the given dotted name, creating it and any
// missing ancestors on first use. The empty name resolves to the root.
func (r *Registry) Get(name string) *Logger {
	if name == "" {
		return r.root
	}
	if l, ok := r.loggers.Load(name); ok {
		return l
	}

	// Resolve the parent before LoadOrCompute; the compute callback must not
	// touch the map.
	parent := r.root
	if i := strings.LastIndex(name, "."); i >= 0 {
		parent = r.Get(name[:i])
	}

	l, _ := r.loggers.LoadOrCompute(name, func() *Logger {
		return parent.Child(WithName(name))
	})

	return l
}

var (
	namedOnce sync.Once
	named     *Registry
)

// GetLogger returns the process-wide logger for the given dotted name, rooted
// at the default logger.
func GetLogger(name string) *Logger {
	namedOnce.Do(func() {
		named = NewRegistry(Default())
	})

	return named.Get(name)
}
