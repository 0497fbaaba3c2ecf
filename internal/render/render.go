// Package render writes an assembled forest to an output stream in one of
// the supported presentation formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vk/treegridgo/tree"
)

// Supported output formats.
const (
	FormatJSON  = "json"
	FormatText  = "text"
	FormatTable = "table"
)

// Forest writes the forest to w in the requested format.
func Forest(w io.Writer, forest []*tree.Node[string], format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, forest)
	case FormatText:
		return writeText(w, forest)
	case FormatTable:
		return writeTable(w, forest)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, forest []*tree.Node[string]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(forest)
}

// writeText prints one node per line, indented two spaces per level.
func writeText(w io.Writer, forest []*tree.Node[string]) error {
	var b strings.Builder
	for _, n := range forest {
		writeTextNode(&b, n, 0)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTextNode(b *strings.Builder, n *tree.Node[string], depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.ID)
	if n.Name != "" {
		b.WriteString(" ")
		b.WriteString(n.Name)
	}
	if n.Weight != nil {
		fmt.Fprintf(b, " (%s)", formatWeight(*n.Weight))
	}
	b.WriteString("\n")
	for _, child := range n.Children() {
		writeTextNode(b, child, depth+1)
	}
}

// writeTable prints the forest as a flat pre-order listing.
func writeTable(w io.Writer, forest []*tree.Node[string]) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "PARENT", "NAME", "WEIGHT", "DEPTH"})
	for _, n := range forest {
		appendRows(table, n, 0)
	}
	table.Render()
	return nil
}

func appendRows(table *tablewriter.Table, n *tree.Node[string], depth int) {
	weight := ""
	if n.Weight != nil {
		weight = formatWeight(*n.Weight)
	}
	parent := ""
	if p := n.Parent(); p != nil && !p.IsSynthetic() {
		parent = p.ID
	}
	table.Append([]string{n.ID, parent, n.Name, weight, strconv.Itoa(depth)})
	for _, child := range n.Children() {
		appendRows(table, child, depth+1)
	}
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
