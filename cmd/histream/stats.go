package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/wippyai/histream/stream"
	"github.com/wippyai/histream/tag"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "print node and attribute statistics of a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openFile(args[0])
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), collectStats(s))
			return nil
		},
	}
}

type attrKey struct {
	Tag  tag.Tag
	Type stream.Type
}

type streamStats struct {
	Size        int
	Nodes       int
	Attributes  int
	LongHeaders int
	MaxDepth    int
	AttrTags    int
	NodeTags    map[tag.Tag]int
	AttrKinds   map[attrKey]int
}

func collectStats(s *stream.Stream) streamStats {
	st := streamStats{
		Size:      s.Size(),
		AttrTags:  len(s.AttributeTags()),
		NodeTags:  make(map[tag.Tag]int),
		AttrKinds: make(map[attrKey]int),
	}
	root := s.Root()
	if !root.IsZero() {
		st.walk(root, 1)
	}
	return st
}

func (st *streamStats) walk(n stream.Node, depth int) {
	st.Nodes++
	st.NodeTags[n.Tag()]++
	st.MaxDepth = max(st.MaxDepth, depth)
	for a := range n.Attributes() {
		st.Attributes++
		if a.IsLong() {
			st.LongHeaders++
		}
		st.AttrKinds[attrKey{Tag: a.Tag(), Type: a.Type()}]++
	}
	for c := range n.Children() {
		st.walk(c, depth+1)
	}
}

func renderStats(out io.Writer, st streamStats) {
	summary := table.NewWriter()
	summary.SetOutputMirror(out)
	summary.SetTitle("stream")
	summary.AppendRows([]table.Row{
		{"size", st.Size},
		{"nodes", st.Nodes},
		{"attributes", st.Attributes},
		{"long headers", st.LongHeaders},
		{"max depth", st.MaxDepth},
		{"attribute tags", st.AttrTags},
	})
	summary.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	summary.Render()

	nodes := table.NewWriter()
	nodes.SetOutputMirror(out)
	nodes.AppendHeader(table.Row{"node tag", "count"})
	for _, t := range sortedKeys(st.NodeTags, func(a, b tag.Tag) int { return cmp.Compare(a, b) }) {
		nodes.AppendRow(table.Row{t.String(), st.NodeTags[t]})
	}
	nodes.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	nodes.Render()

	attrs := table.NewWriter()
	attrs.SetOutputMirror(out)
	attrs.AppendHeader(table.Row{"attribute tag", "type", "count"})
	byTag := func(a, b attrKey) int {
		if c := cmp.Compare(a.Tag, b.Tag); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	}
	for _, k := range sortedKeys(st.AttrKinds, byTag) {
		attrs.AppendRow(table.Row{k.Tag.String(), k.Type.String(), st.AttrKinds[k]})
	}
	attrs.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	attrs.Render()

	fmt.Fprintln(out)
}

func sortedKeys[K comparable, V any](m map[K]V, compare func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compare)
	return keys
}
