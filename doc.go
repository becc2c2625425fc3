// Package sievego computes all prime numbers up to a bound with a
// parallel Sieve of Eratosthenes.
//
// # Quick Start
//
//	ctx := context.Background()
//	table, _ := sievego.Sieve(ctx, 1_000_000)
//	for p := range table.All() {
//	    fmt.Println(p)
//	}
//
// With explicit configuration:
//
//	table, _ := sievego.Sieve(ctx, 1_000_000,
//	    sievego.WithStrategy(sievego.StrategyOuter),
//	    sievego.WithWorkers(8),
//	    sievego.WithLogLevel(slog.LevelDebug),
//	)
//
// # Strategies
//
// Two parallelization strategies share the same contract and produce
// identical tables:
//
//	// StrategyInner (default): the candidate loop stays sequential, the
//	// marking of each prime's multiples is split across a persistent
//	// worker pool. Minimum total marking work, one join barrier per
//	// prime below sqrt(bound).
//	// StrategyOuter: the candidate loop itself is split across workers
//	// in a single fork-join region. Lower region overhead, but workers
//	// racing ahead of unresolved candidates re-mark some multiples
//	// redundantly.
//
// # Concurrency Model
//
// The composite table is a lock-free bitmap of atomic words. Marking a
// composite is an atomic OR, so concurrent markers hitting the same
// word, or the same bit, are defined behavior rather than a data race.
// Workers synchronize only at the join barrier ending each region.
//
// # Key Features
//
//   - Outer- and inner-parallel marking with static work partitioning
//   - Race-detector-clean shared table (atomic bit marking)
//   - Packed prime-set snapshots (bits-and-blooms bitset)
//   - Column printer for the classic primes-per-line output
//   - Structured logging (log/slog) and pluggable metrics
package sievego
