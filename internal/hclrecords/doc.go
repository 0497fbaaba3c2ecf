// Package hclrecords loads flat hierarchy records from .hcl files. It
// discovers files, decodes `record` and `options` blocks against the
// schema package, and translates them into the schema-less map records the
// tree engine's MapAdapter consumes. Records from many files are
// consolidated into one collection, so a hierarchy may be split across a
// directory.
package hclrecords
