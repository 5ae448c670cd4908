package rope

import "strings"

// Tree shape constants.
const (
	// MinChildren is the minimum children per internal node (except root).
	MinChildren = 4

	// MaxChildren is the maximum children per internal node before splitting.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope tree.
// Leaf nodes (height == 0) hold chunks; internal nodes hold children.
type Node struct {
	height   uint8
	summary  Summary
	children []*Node
	chunks   []Chunk
}

func newLeafNode() *Node {
	return &Node{chunks: make([]Chunk, 0, MaxChunksPerLeaf)}
}

func newLeafNodeWithChunks(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	n.recomputeSummary()
	return n
}

func newInternalNode(children []*Node) *Node {
	if len(children) == 0 {
		return newLeafNode()
	}
	var h uint8
	for _, c := range children {
		h = max(h, c.height)
	}
	n := &Node{height: h + 1, children: children}
	n.recomputeSummary()
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Runes returns the character count of the subtree.
func (n *Node) Runes() int {
	return n.summary.Runes
}

func (n *Node) recomputeSummary() {
	var sum Summary
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sum = sum.Add(c.summary)
		}
	} else {
		for _, child := range n.children {
			sum = sum.Add(child.summary)
		}
	}
	n.summary = sum
}

func (n *Node) clone() *Node {
	c := &Node{height: n.height, summary: n.summary}
	if n.IsLeaf() {
		c.chunks = append([]Chunk(nil), n.chunks...)
	} else {
		c.children = append([]*Node(nil), n.children...)
	}
	return c
}

func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends the runes in [start, end) to sb.
func (n *Node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := offset + c.summary.Runes
			if cEnd > start && offset < end {
				sb.WriteString(c.slice(max(start-offset, 0), min(end, cEnd)-offset))
			}
			if cEnd >= end {
				return
			}
			offset = cEnd
		}
		return
	}
	for _, child := range n.children {
		cEnd := offset + child.summary.Runes
		if cEnd > start && offset < end {
			child.appendRange(sb, max(start-offset, 0), min(end, cEnd)-offset)
		}
		if cEnd >= end {
			return
		}
		offset = cEnd
	}
}

// runeAt returns the rune at offset, which must be within the subtree.
func (n *Node) runeAt(offset int) rune {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			if offset < c.summary.Runes {
				return c.runeAt(offset)
			}
			offset -= c.summary.Runes
		}
		return 0
	}
	for _, child := range n.children {
		if offset < child.summary.Runes {
			return child.runeAt(offset)
		}
		offset -= child.summary.Runes
	}
	return 0
}

// newlineEnd returns the rune offset just past the k-th newline in the
// subtree (1-based). k must be in [1, summary.Lines].
func (n *Node) newlineEnd(k int) int {
	offset := 0
	if n.IsLeaf() {
		for _, c := range n.chunks {
			if k <= c.summary.Lines {
				return offset + c.newlineEnd(k)
			}
			k -= c.summary.Lines
			offset += c.summary.Runes
		}
		return offset
	}
	for _, child := range n.children {
		if k <= child.summary.Lines {
			return offset + child.newlineEnd(k)
		}
		k -= child.summary.Lines
		offset += child.summary.Runes
	}
	return offset
}

// split splits the node at a rune offset.
func (n *Node) split(offset int) (*Node, *Node) {
	if offset <= 0 {
		return newLeafNode(), n.clone()
	}
	if offset >= n.Runes() {
		return n.clone(), newLeafNode()
	}
	if n.IsLeaf() {
		return n.splitLeaf(offset)
	}
	return n.splitInternal(offset)
}

func (n *Node) splitLeaf(offset int) (*Node, *Node) {
	var left, right []Chunk
	current := 0
	for _, c := range n.chunks {
		runes := c.summary.Runes
		switch {
		case current+runes <= offset:
			left = append(left, c)
		case current >= offset:
			right = append(right, c)
		default:
			l, r := c.Split(offset - current)
			if !l.IsEmpty() {
				left = append(left, l)
			}
			if !r.IsEmpty() {
				right = append(right, r)
			}
		}
		current += runes
	}
	return newLeafNodeWithChunks(left), newLeafNodeWithChunks(right)
}

func (n *Node) splitInternal(offset int) (*Node, *Node) {
	var left, right []*Node
	current := 0
	for _, child := range n.children {
		runes := child.summary.Runes
		switch {
		case current+runes <= offset:
			left = append(left, child)
		case current >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - current)
			if l.Runes() > 0 {
				left = append(left, l)
			}
			if r.Runes() > 0 {
				right = append(right, r)
			}
		}
		current += runes
	}
	return buildNodeFromChildren(left), buildNodeFromChildren(right)
}

// buildNodeFromChildren creates a balanced tree from a list of children.
func buildNodeFromChildren(children []*Node) *Node {
	switch {
	case len(children) == 0:
		return newLeafNode()
	case len(children) == 1:
		return children[0]
	case len(children) <= MaxChildren:
		return newInternalNode(children)
	}
	var parents []*Node
	for i := 0; i < len(children); i += MaxChildren {
		end := min(i+MaxChildren, len(children))
		parents = append(parents, newInternalNode(children[i:end]))
	}
	return buildNodeFromChildren(parents)
}

// concat joins two nodes. A shorter tree is merged into the facing spine
// of the taller one so repeated appends keep the tree shallow.
func concat(left, right *Node) *Node {
	if left == nil || left.Runes() == 0 {
		if right == nil {
			return newLeafNode()
		}
		return right
	}
	if right == nil || right.Runes() == 0 {
		return left
	}
	switch {
	case left.height > right.height:
		last := len(left.children) - 1
		merged := concat(left.children[last], right)
		children := append([]*Node(nil), left.children[:last]...)
		children = appendMerged(children, merged, left.height)
		return buildNodeFromChildren(children)
	case right.height > left.height:
		merged := concat(left, right.children[0])
		children := appendMerged(nil, merged, right.height)
		children = append(children, right.children[1:]...)
		return buildNodeFromChildren(children)
	}
	return mergeNodes(left, right)
}

// appendMerged appends merged to children, splicing its children instead
// when it grew to the parent's height.
func appendMerged(children []*Node, merged *Node, parentHeight uint8) []*Node {
	if merged.height >= parentHeight && !merged.IsLeaf() {
		return append(children, merged.children...)
	}
	return append(children, merged)
}

func mergeNodes(left, right *Node) *Node {
	if left.IsLeaf() {
		return concatLeaves(left, right)
	}
	all := make([]*Node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)
	return buildNodeFromChildren(all)
}

// concatLeaves joins two leaves. Small boundary chunks are coalesced so
// repeated single-character inserts do not fragment the tree.
func concatLeaves(left, right *Node) *Node {
	chunks := make([]Chunk, 0, len(left.chunks)+len(right.chunks))
	chunks = append(chunks, left.chunks...)
	for _, c := range right.chunks {
		if last := len(chunks) - 1; last >= 0 && len(chunks[last].data)+len(c.data) <= MaxChunkSize {
			chunks[last] = NewChunk(chunks[last].data + c.data)
			continue
		}
		chunks = append(chunks, c)
	}
	if len(chunks) <= MaxChunksPerLeaf {
		return newLeafNodeWithChunks(chunks)
	}
	var leaves []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		leaves = append(leaves, newLeafNodeWithChunks(chunks[i:end:end]))
	}
	return buildNodeFromChildren(leaves)
}
