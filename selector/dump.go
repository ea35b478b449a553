package selector

import (
	"cssel/utils/debug"
)

// DumpTree returns an indented dump of the selector structure, one node per
// line. Combined nodes show the combinator token, simple nodes their
// rendered text. Intended for troubleshooting output, the format is not
// stable.
func DumpTree(sel Selector) string {
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, sel)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, sel Selector) {
	switch s := sel.(type) {
	case *combined:
		tw.TextBlock(depth, "combined", s.op)
		dumpNode(tw, depth+1, s.left)
		dumpNode(tw, depth+1, s.right)
	case *simple:
		tw.TextBlock(depth, "simple", s.String())
	default:
		// sealed interface, cannot happen
		tw.Line(depth, "unknown node %T", sel)
	}
}
