// Package writers persists finished result tables.
//
// Design:
//   - A sink receives a whole table once and fully replaces any prior table
//     with the same name. There is no append mode.
//   - Sinks are chosen by URL scheme through the registry: a plain path is a
//     directory, s3://bucket/prefix is object storage, sqlite://file.db is an
//     embedded database.
package writers
