package errtree

import "slices"

// chainLink pairs a node with the separator banner printed before its
// block. msg is "" for the first (oldest) slot.
type chainLink struct {
	msg  string
	node *Node
}

// chainSequence resolves the cause/context chain of n into rendering
// order: oldest ancestor first, n itself last. At each step the cause
// link wins over the context link, and a suppressed context is never
// followed. With chain false the sequence is just n.
//
// The walk does not consult the seen set; a cyclic chain is the tree
// builder's bug and will not terminate here.
func chainSequence(n *Node, chain bool) []chainLink {
	if !chain {
		return []chainLink{{node: n}}
	}
	var links []chainLink
	for node := n; node != nil; {
		var msg string
		var next *Node
		switch {
		case node.Cause != nil:
			msg, next = causeMessage, node.Cause
		case node.Context != nil && !node.SuppressContext:
			msg, next = contextMessage, node.Context
		}
		links = append(links, chainLink{msg: msg, node: node})
		node = next
	}
	slices.Reverse(links)
	return links
}
