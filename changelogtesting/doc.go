// Package changelogtesting provides deterministic data generation and a test
// context for exercising changelogs in tests and benchmarks.
package changelogtesting
