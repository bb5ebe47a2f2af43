// Package pipeline fans one contig out across a bounded pool of goroutines,
// one work unit per primer, and reassembles the hits in primer submission
// order.
//
// The only contract to implement is Matcher (MatchAndBuild).
// This keeps the pipeline swappable and testable.
package pipeline
