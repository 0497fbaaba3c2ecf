package hclrecords

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/treegridgo/internal/ctxlog"
	"github.com/vk/treegridgo/internal/fsutil"
	"github.com/vk/treegridgo/internal/schema"
)

// Loader reads record files from disk. One loader owns one hclparse.Parser,
// so diagnostics across files share source context.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a record file loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load resolves path (a .hcl file or a directory of them) and returns the
// consolidated flat record collection plus the first options block found.
// Later options blocks are ignored with a warning; record order follows
// file discovery order, then block order within each file.
func (l *Loader) Load(ctx context.Context, path string) ([]map[string]any, *schema.Options, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading records from path.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find record files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl record files found in path.", "path", path)
		return []map[string]any{}, nil, nil
	}

	var records []map[string]any
	var options *schema.Options
	for _, file := range files {
		parsed, err := l.loadFile(file)
		if err != nil {
			return nil, nil, err
		}
		if parsed.Options != nil {
			if options == nil {
				options = parsed.Options
			} else {
				logger.Warn("Ignoring extra options block.", "file", file)
			}
		}
		for _, rec := range parsed.Records {
			m, err := translateRecord(rec)
			if err != nil {
				return nil, nil, fmt.Errorf("error in record %q of %s: %w", rec.ID, file, err)
			}
			records = append(records, m)
		}
	}

	logger.Debug("Record loading complete.", "files", len(files), "records", len(records))
	return records, options, nil
}

// loadFile parses and decodes a single record file.
func (l *Loader) loadFile(filePath string) (*schema.RecordFile, error) {
	hclFile, diags := l.parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed schema.RecordFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}
	return &parsed, nil
}
