// Package graphs builds directed user-relationship graphs from streamed
// warehouse rows and checkpoints them to disk.
package graphs

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
)

// UserNode is a graph node keyed by screen name, optionally carrying the
// user attributes the daily graph annotates nodes with.
type UserNode struct {
	id int64

	ScreenName string
	UserID     string
	Rate       float64
	Bot        bool
}

func (n *UserNode) ID() int64 { return n.id }

// UserGraph is a directed graph of users addressed by screen name. gonum
// nodes are int64-keyed, so the graph maintains its own name index.
type UserGraph struct {
	g     *simple.DirectedGraph
	index map[string]*UserNode
}

func NewUserGraph() *UserGraph {
	return &UserGraph{
		g:     simple.NewDirectedGraph(),
		index: make(map[string]*UserNode),
	}
}

// EnsureNode returns the node for screenName, adding a bare one if absent.
func (ug *UserGraph) EnsureNode(screenName string) *UserNode {
	if n, ok := ug.index[screenName]; ok {
		return n
	}
	n := &UserNode{id: ug.g.NewNode().ID(), ScreenName: screenName}
	ug.g.AddNode(n)
	ug.index[screenName] = n
	return n
}

// AddNodeAttrs upserts a node with the daily-graph user attributes.
func (ug *UserGraph) AddNodeAttrs(screenName, userID string, rate float64, bot bool) {
	n := ug.EnsureNode(screenName)
	n.UserID = userID
	n.Rate = rate
	n.Bot = bot
}

// AddEdge inserts a directed edge between the named users, creating either
// endpoint as needed. Self-loops are dropped; duplicates are no-ops.
func (ug *UserGraph) AddEdge(from, to string) {
	if from == to {
		return
	}
	f := ug.EnsureNode(from)
	t := ug.EnsureNode(to)
	ug.g.SetEdge(ug.g.NewEdge(f, t))
}

func (ug *UserGraph) HasEdge(from, to string) bool {
	f, ok := ug.index[from]
	if !ok {
		return false
	}
	t, ok := ug.index[to]
	if !ok {
		return false
	}
	return ug.g.HasEdgeFromTo(f.ID(), t.ID())
}

func (ug *UserGraph) Node(screenName string) (*UserNode, bool) {
	n, ok := ug.index[screenName]
	return n, ok
}

func (ug *UserGraph) NodeCount() int {
	return ug.g.Nodes().Len()
}

func (ug *UserGraph) EdgeCount() int {
	return ug.g.Edges().Len()
}

// Directed exposes the underlying graph for gonum algorithms.
func (ug *UserGraph) Directed() graph.Directed {
	return ug.g
}

// RankedUser is one row of a PageRank ranking.
type RankedUser struct {
	ScreenName string  `json:"screen_name" csv:"screen_name"`
	Score      float64 `json:"score" csv:"score"`
}

// PageRank scores every user by inbound link structure and returns the
// ranking in descending score order, ties broken by name for stable output.
func (ug *UserGraph) PageRank(damp, tol float64) []RankedUser {
	if ug.NodeCount() == 0 {
		return nil
	}

	scores := network.PageRank(ug.g, damp, tol)

	ranked := make([]RankedUser, 0, len(ug.index))
	for name, node := range ug.index {
		ranked = append(ranked, RankedUser{ScreenName: name, Score: scores[node.ID()]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ScreenName < ranked[j].ScreenName
	})
	return ranked
}
