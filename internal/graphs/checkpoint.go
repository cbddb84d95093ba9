package graphs

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Graph checkpoints are gob-encoded snapshots: the node records plus edges
// as index pairs into the node slice.

type nodeRecord struct {
	ScreenName string
	UserID     string
	Rate       float64
	Bot        bool
}

type graphSnapshot struct {
	Nodes []nodeRecord
	Edges [][2]int32
}

// WriteGraph checkpoints the graph to path, atomically.
func WriteGraph(ug *UserGraph, path string) error {
	snap := graphSnapshot{
		Nodes: make([]nodeRecord, 0, len(ug.index)),
		Edges: make([][2]int32, 0, ug.EdgeCount()),
	}

	position := make(map[int64]int32, len(ug.index))
	for _, n := range ug.index {
		position[n.ID()] = int32(len(snap.Nodes))
		snap.Nodes = append(snap.Nodes, nodeRecord{
			ScreenName: n.ScreenName,
			UserID:     n.UserID,
			Rate:       n.Rate,
			Bot:        n.Bot,
		})
	}

	edges := ug.g.Edges()
	for edges.Next() {
		e := edges.Edge()
		snap.Edges = append(snap.Edges, [2]int32{position[e.From().ID()], position[e.To().ID()]})
	}

	return writeGob(path, snap)
}

// ReadGraph rebuilds a graph from a checkpoint written by WriteGraph.
func ReadGraph(path string) (*UserGraph, error) {
	var snap graphSnapshot
	if err := readGob(path, &snap); err != nil {
		return nil, err
	}

	ug := NewUserGraph()
	for _, rec := range snap.Nodes {
		ug.AddNodeAttrs(rec.ScreenName, rec.UserID, rec.Rate, rec.Bot)
	}
	for _, pair := range snap.Edges {
		ug.AddEdge(snap.Nodes[pair[0]].ScreenName, snap.Nodes[pair[1]].ScreenName)
	}
	return ug, nil
}

// WriteEdges checkpoints a raw edge list, written before the graph object
// is constructed so the expensive part survives a crash during assembly.
func WriteEdges(edges []Edge, path string) error {
	return writeGob(path, edges)
}

func ReadEdges(path string) ([]Edge, error) {
	var edges []Edge
	if err := readGob(path, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

func writeGob(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("[Graphs] failed to create %s: %w", tmp, err)
	}

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("[Graphs] failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("[Graphs] failed to close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("[Graphs] failed to rename %s into place: %w", path, err)
	}
	return nil
}

func readGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("[Graphs] failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("[Graphs] failed to decode %s: %w", path, err)
	}
	return nil
}
