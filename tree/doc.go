// Package tree assembles hierarchical trees out of flat, unordered record
// collections. Each record carries an id and a parent id; the builder buckets
// records by parent, walks the implied hierarchy from a configured root id,
// and returns either a single synthetic-root tree or the forest of its
// top-level children.
//
// The package is purely computational: it performs no I/O and operates only
// on the collections the caller supplies. Records of any type are admitted
// through the Adapter interface; callers who want children wired directly
// onto their own record type can use BuildGeneric instead.
//
// A Builder is not safe for concurrent use. Drive one append/build session
// per builder from a single goroutine.
package tree
