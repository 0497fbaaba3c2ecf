// Package schema defines the HCL block structures for record files. It is
// purely declarative; translation into the engine's record shape lives in
// the hclrecords package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Record represents a `record` block from a user's file: one flat row of
// the hierarchy, identified by its label, pointing at its parent.
type Record struct {
	ID     string         `hcl:"id,label"`
	Parent string         `hcl:"parent"`
	Name   string         `hcl:"name,optional"`
	Weight *float64       `hcl:"weight,optional"`
	Attrs  hcl.Expression `hcl:"attrs,optional"`
}

// Options represents the optional `options` block controlling assembly.
type Options struct {
	RootID   string `hcl:"root_id,optional"`
	MaxDepth int    `hcl:"max_depth,optional"`
}

// RecordFile is the top-level structure of one .hcl record file.
type RecordFile struct {
	Options *Options  `hcl:"options,block"`
	Records []*Record `hcl:"record,block"`
}
