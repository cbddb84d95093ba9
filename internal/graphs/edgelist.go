package graphs

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// Edge is one directed screen-name pair, accumulated before the graph
// object itself is constructed.
type Edge struct {
	Source string
	Target string
}

// EdgeList accumulates edges from a streamed scan without holding a graph
// in memory. A bloom filter drops duplicate edges; membership is
// approximate, so a small fraction of distinct edges may be skipped, which
// is acceptable for the aggregate graphs built here.
type EdgeList struct {
	edges []Edge
	seen  *bloom.BloomFilter
}

// NewEdgeList sizes the dedupe filter for the expected number of distinct
// edges at the given false positive rate.
func NewEdgeList(expectedEdges uint, fpRate float64) *EdgeList {
	return &EdgeList{
		seen: bloom.NewWithEstimates(expectedEdges, fpRate),
	}
}

// Append records the edge unless it was (probably) seen before. Reports
// whether the edge was kept.
func (el *EdgeList) Append(source, target string) bool {
	if source == target {
		return false
	}
	if el.seen.TestOrAdd(edgeKey(source, target)) {
		return false
	}
	el.edges = append(el.edges, Edge{Source: source, Target: target})
	return true
}

// AppendFriends records one edge per friend of source. Returns the number
// of edges kept.
func (el *EdgeList) AppendFriends(source string, friends []string) int {
	kept := 0
	for _, friend := range friends {
		if el.Append(source, friend) {
			kept++
		}
	}
	return kept
}

func (el *EdgeList) Len() int {
	return len(el.edges)
}

func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// BuildGraph assembles the directed graph object from the accumulated
// edge list.
func (el *EdgeList) BuildGraph() *UserGraph {
	ug := NewUserGraph()
	for _, e := range el.edges {
		ug.AddEdge(e.Source, e.Target)
	}
	return ug
}

func edgeKey(source, target string) []byte {
	key := make([]byte, 0, len(source)+len(target)+1)
	key = append(key, source...)
	key = append(key, 0x1f)
	key = append(key, target...)
	return key
}
