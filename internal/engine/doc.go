// Package engine contains the matching core: exact primer search inside a
// contig and construction of hit records. It never imports app, writers,
// cli, or pipeline; keep it domain-only.
package engine
