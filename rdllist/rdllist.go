package rdllist

// node is one circular-list element. A node whose Next equals its own
// index is "locked": self-referential and excluded from iteration, the
// sentinel-free state of a newly constructed, unlinked node.
type node struct {
	next, prev int
	data       int
}

// RDllist is an index-addressable circular doubly-linked list. Data
// values are payload indices into an external vertex buffer owned by the
// caller (the cutting and hull algorithms pair an RDllist with a
// []recti.Point2D of the same or larger length).
type RDllist struct {
	nodes []node
}

// New builds an RDllist of n nodes, linked into a single cycle in index
// order (node i's data is i). Capacity is pre-reserved generously
// (10*n+100000) because the RPolygon cutting algorithms append new nodes
// as they invent vertices; indices stay valid regardless, but the
// headroom keeps intermediate reallocations rare.
func New(n int) *RDllist {
	rd := &RDllist{nodes: make([]node, 0, 10*n+100000)}
	for i := 0; i < n; i++ {
		rd.nodes = append(rd.nodes, node{next: i, prev: i, data: i})
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		rd.nodes[i].next = next
		rd.nodes[next].prev = i
	}
	return rd
}

// Len returns the number of nodes ever allocated (including detached
// ones); it is not the live cycle length.
func (rd *RDllist) Len() int {
	return len(rd.nodes)
}

// Data returns the payload stored at node i.
func (rd *RDllist) Data(i int) int {
	return rd.nodes[i].data
}

// Next returns the index of the node following i.
func (rd *RDllist) Next(i int) int {
	return rd.nodes[i].next
}

// Prev returns the index of the node preceding i.
func (rd *RDllist) Prev(i int) int {
	return rd.nodes[i].prev
}

// IsLocked reports whether node i is self-referential (unlinked).
func (rd *RDllist) IsLocked(i int) bool {
	return rd.nodes[i].next == i
}

// Append allocates a new node with the given payload, initially locked
// (self-referential), and returns its index.
func (rd *RDllist) Append(data int) int {
	idx := len(rd.nodes)
	rd.nodes = append(rd.nodes, node{next: idx, prev: idx, data: data})
	return idx
}

// Detach unlinks node i from its cycle in constant time. Detaching a
// locked node is undefined; callers must check IsLocked first.
func (rd *RDllist) Detach(i int) {
	n := rd.nodes[i]
	rd.nodes[n.prev].next = n.next
	rd.nodes[n.next].prev = n.prev
	rd.nodes[i].next = i
	rd.nodes[i].prev = i
}

// Link makes j follow i directly (i.next = j, j.prev = i), leaving every
// other pointer untouched. This is the raw relinking primitive the
// polygon-cutting algorithms use to bisect one cycle into two: three Link
// calls re-route a cycle around a freshly Appended node without walking
// either half.
func (rd *RDllist) Link(i, j int) {
	rd.nodes[i].next = j
	rd.nodes[j].prev = i
}

// InsertAfter splices the locked node newIdx into the cycle immediately
// after node i.
func (rd *RDllist) InsertAfter(i, newIdx int) {
	next := rd.nodes[i].next
	rd.nodes[i].next = newIdx
	rd.nodes[newIdx].prev = i
	rd.nodes[newIdx].next = next
	rd.nodes[next].prev = newIdx
}

// From returns the data values of every node in the cycle containing
// anchor, starting at anchor and walking forward until the cycle returns
// to it (the full cycle in order, anchor first).
func (rd *RDllist) From(anchor int) []int {
	out := []int{rd.nodes[anchor].data}
	for cur := rd.nodes[anchor].next; cur != anchor; cur = rd.nodes[cur].next {
		out = append(out, rd.nodes[cur].data)
	}
	return out
}

// FromExcludingAnchor walks cur = cur.next starting just past anchor,
// stopping before returning to anchor (anchor's own data is not
// included).
func (rd *RDllist) FromExcludingAnchor(anchor int) []int {
	var out []int
	for cur := rd.nodes[anchor].next; cur != anchor; cur = rd.nodes[cur].next {
		out = append(out, rd.nodes[cur].data)
	}
	return out
}

