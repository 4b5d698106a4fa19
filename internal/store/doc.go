// Package store provides SQLite-backed run history for cnfstat.
//
// Each successful analysis can be recorded as a run:
//   - runs: one row per run, keyed by a UUIDv7 id
//   - run_widths: the histogram of the run, one row per width
//
// # Ordering
//
// All listings use ORDER BY seq ASC, id ASC COLLATE BINARY. seq is the
// insertion counter; wall-clock time is never stored or used.
//
// # Identity
//
// The digest column holds report.Summary.Digest, so two runs over
// identical input share a digest and can be found with FindByDigest.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
