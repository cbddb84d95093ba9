package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCreatesNodes(t *testing.T) {
	ug := NewUserGraph()
	ug.AddEdge("alice", "bob")
	ug.AddEdge("alice", "carol")

	assert.Equal(t, 3, ug.NodeCount())
	assert.Equal(t, 2, ug.EdgeCount())
	assert.True(t, ug.HasEdge("alice", "bob"))
	assert.False(t, ug.HasEdge("bob", "alice"))
}

func TestAddEdgeIgnoresDuplicatesAndSelfLoops(t *testing.T) {
	ug := NewUserGraph()
	ug.AddEdge("alice", "bob")
	ug.AddEdge("alice", "bob")
	ug.AddEdge("alice", "alice")

	assert.Equal(t, 2, ug.NodeCount())
	assert.Equal(t, 1, ug.EdgeCount())
}

func TestAddNodeAttrs(t *testing.T) {
	ug := NewUserGraph()
	ug.AddNodeAttrs("some_bot", "12345", 87.5, true)
	ug.AddEdge("some_bot", "potus")

	n, ok := ug.Node("some_bot")
	require.True(t, ok)
	assert.Equal(t, "12345", n.UserID)
	assert.Equal(t, 87.5, n.Rate)
	assert.True(t, n.Bot)

	// attrs survive the node being reused as an edge endpoint
	assert.Equal(t, 2, ug.NodeCount())
}

func TestPageRankOrdering(t *testing.T) {
	ug := NewUserGraph()
	// everyone retweets potus, potus retweets nobody
	ug.AddEdge("alice", "potus")
	ug.AddEdge("bob", "potus")
	ug.AddEdge("carol", "potus")
	ug.AddEdge("alice", "bob")

	ranked := ug.PageRank(0.85, 1e-6)

	require.Len(t, ranked, 4)
	assert.Equal(t, "potus", ranked[0].ScreenName)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestPageRankEmptyGraph(t *testing.T) {
	assert.Nil(t, NewUserGraph().PageRank(0.85, 1e-6))
}
