package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ugraph/core"
	"github.com/katalvlaran/ugraph/internal/config"
)

// textRenderer is implemented by every printable result.
type textRenderer interface {
	renderText(w io.Writer) error
}

// emit writes r to w in the configured format.
func (a *app) emit(w io.Writer, r textRenderer) error {
	if a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	return r.renderText(w)
}

// report is the outcome of one traversal.
type report struct {
	Algorithm string           `json:"algorithm"`
	Mode      string           `json:"mode,omitempty"`
	Start     *core.NodeIndex  `json:"start,omitempty"`
	Order     []core.NodeIndex `json:"order"`
	Finish    []core.NodeIndex `json:"finish,omitempty"`
	Stopped   bool             `json:"stopped"`
	Distances []distance       `json:"distances,omitempty"`
	Target    *core.NodeIndex  `json:"target,omitempty"`
	Path      []core.NodeIndex `json:"path,omitempty"`
}

// distance is one Dijkstra entry; Cost is null when unreachable.
type distance struct {
	Node core.NodeIndex `json:"node"`
	Cost *float64       `json:"cost"`
}

func (r report) renderText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "algorithm: %s\n", r.Algorithm)
	if r.Mode != "" {
		fmt.Fprintf(&b, "mode: %s\n", r.Mode)
	}
	if r.Start != nil {
		fmt.Fprintf(&b, "start: %d\n", *r.Start)
	} else {
		b.WriteString("start: all\n")
	}
	fmt.Fprintf(&b, "order: %s\n", joinIDs(r.Order))
	if r.Finish != nil {
		fmt.Fprintf(&b, "finish: %s\n", joinIDs(r.Finish))
	}
	fmt.Fprintf(&b, "stopped: %t\n", r.Stopped)
	if len(r.Distances) > 0 {
		b.WriteString("distances:\n")
		for _, d := range r.Distances {
			fmt.Fprintf(&b, "  %d: %s\n", d.Node, formatCost(d.Cost))
		}
	}
	if r.Target != nil {
		if len(r.Path) == 0 {
			fmt.Fprintf(&b, "path to %d: none\n", *r.Target)
		} else {
			fmt.Fprintf(&b, "path to %d: %s\n", *r.Target, joinIDs(r.Path))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// batchReport is the outcome of a batch run, one report per start.
type batchReport []report

func (br batchReport) renderText(w io.Writer) error {
	for i, r := range br {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.renderText(w); err != nil {
			return err
		}
	}

	return nil
}

// statsReport summarizes a graph.
type statsReport struct {
	Nodes          int `json:"nodes"`
	NodesWithEdges int `json:"nodes_with_edges"`
	EdgeRecords    int `json:"edge_records"`
	Components     int `json:"components"`
}

func (s statsReport) renderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "nodes: %d\nnodes with edges: %d\nedge records: %d\ncomponents: %d\n",
		s.Nodes, s.NodesWithEdges, s.EdgeRecords, s.Components)

	return err
}

func joinIDs(ids []core.NodeIndex) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}

	return strings.Join(parts, " ")
}

func formatCost(c *float64) string {
	if c == nil {
		return "unreachable"
	}

	return strconv.FormatFloat(*c, 'g', -1, 64)
}
