// Package graphfile reads and writes YAML graph documents:
//
//	nodes:
//	  - {id: 1, value: depot}
//	edges:
//	  - {from: 1, to: 2, cost: 4.5}
//
// Decoding is strict: unknown keys are rejected.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ugraph/core"
)

var (
	// ErrEmptyDocument is returned for an input with no YAML document.
	ErrEmptyDocument = errors.New("graphfile: empty document")

	// ErrBadEdge is returned for an edge without both endpoints.
	ErrBadEdge = errors.New("graphfile: edge needs both from and to")

	// ErrBadCost is returned for a NaN or infinite edge cost. +Inf is the
	// unreachable distance, so a file may not use it as a real cost.
	ErrBadCost = errors.New("graphfile: edge cost must be finite")
)

// Graph is the graph type produced by this package.
type Graph = core.Graph[string, float64]

// Document is the on-disk form of a graph.
type Document struct {
	Nodes []NodeEntry `yaml:"nodes,omitempty"`
	Edges []EdgeEntry `yaml:"edges,omitempty"`
}

// NodeEntry declares one node.
type NodeEntry struct {
	ID    int64  `yaml:"id"`
	Value string `yaml:"value,omitempty"`
}

// EdgeEntry declares one undirected edge. Endpoints absent from Nodes are
// created with an empty value.
type EdgeEntry struct {
	From *int64  `yaml:"from"`
	To   *int64  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// Decode reads a single document from r.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return &doc, nil
}

// Graph builds a graph: nodes first in document order, then edges.
func (d *Document) Graph() (*Graph, error) {
	g := core.NewGraph[string, float64](core.WithCapacity(len(d.Nodes), 2*len(d.Edges)))
	for _, n := range d.Nodes {
		g.AddNode(core.NodeIndex(n.ID), n.Value)
	}
	for i, e := range d.Edges {
		if e.From == nil || e.To == nil {
			return nil, fmt.Errorf("%w (edge #%d)", ErrBadEdge, i)
		}
		if math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
			return nil, fmt.Errorf("%w (edge #%d: %v)", ErrBadCost, i, e.Cost)
		}
		u, v := core.NodeIndex(*e.From), core.NodeIndex(*e.To)
		g.AddEdge(u, valueOf(g, u), v, valueOf(g, v), e.Cost)
	}

	return g, nil
}

// valueOf keeps an existing node's value when an edge re-upserts it.
func valueOf(g *Graph, id core.NodeIndex) string {
	n, _ := g.Node(id)
	return n.Value
}

// Load reads the YAML file at path and builds its graph.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc.Graph()
}

// FromGraph converts g back into a Document. Nodes are listed in ascending
// id order; edges are listed once each, in the order they were added, so
// loading the document rebuilds the same adjacency sequences.
func FromGraph[V any, C core.Cost](g *core.Graph[V, C], value func(V) string) *Document {
	doc := &Document{}
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		doc.Nodes = append(doc.Nodes, NodeEntry{ID: int64(id), Value: value(n.Value)})
	}
	for _, e := range g.EdgeList() {
		from, to := int64(e.Head), int64(e.Tail)
		doc.Edges = append(doc.Edges, EdgeEntry{From: &from, To: &to, Cost: float64(e.Cost)})
	}

	return doc
}

// Encode writes doc to w with two-space indentation.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
