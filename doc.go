// Package treelog is a minimal, embeddable logging facility built around a
// tree of severity-filtered loggers.
//
// Callers emit messages tagged with one of eight syslog-style severities
// (Emergency through Debug); each logger filters against its own threshold,
// turns accepted messages into immutable records, and fans them out to its
// sinks and then, unconditionally, to its ancestors' sinks.
//
// Key Features:
//   - Hierarchical loggers: a child created with Child forwards every
//     accepted record up the parent chain, so attaching a sink to a root
//     observes the whole subtree.
//   - Lazy messages: LogLazy defers message construction until the severity
//     is known to pass the filter, making dropped debug logging free.
//   - Context-scoped current logger: Scope installs a logger for the dynamic
//     extent of a call via context.Context, so library code using the
//     top-level Log functions picks up a caller-supplied logger without
//     parameter threading. Concurrent contexts never see each other's
//     override.
//   - Pluggable destinations: anything implementing the two-method Sink
//     interface can receive records; console, writer, buffer, func and
//     log/slog bridge sinks ship in the box.
//   - Injectable clock and formatter for deterministic tests.
//
// Usage Example:
//
//	root := treelog.New(
//	    treelog.WithName("app"),
//	    treelog.WithThreshold(treelog.Debug),
//	)
//	defer root.Close()
//
//	worker := root.Child(treelog.WithName("worker"))
//	worker.Info("job started")
//	worker.LogLazy(treelog.Debug, func() any {
//	    return expensiveDump()
//	})
//
//	// Route a library's ambient logging through root for one call.
//	_ = treelog.Scope(ctx, root, func(ctx context.Context) error {
//	    return doWork(ctx)
//	})
package treelog
