package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/similarity"
)

// Summary aggregates every analysis of one dataset run.
// Optional sections are nil when the run skipped them.
type Summary struct {
	Dataset      string             `json:"dataset,omitempty"`
	Stats        core.Stats         `json:"stats"`
	Components   int                `json:"components"`
	Source       int                `json:"source"`
	SourceDegree int                `json:"source_degree"`
	Path         *bfs.PathLength    `json:"path,omitempty"`
	Histogram    []HistogramRow     `json:"histogram,omitempty"`
	TopK         []similarity.Score `json:"top_similar,omitempty"`
	Pair         *similarity.Pair   `json:"most_similar_pair,omitempty"`
}

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// WriteJSON encodes v as two-space indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteText prints s as a sectioned human-readable report.
func WriteText(w io.Writer, s Summary) error {
	p := &printer{w: w}

	if s.Dataset != "" {
		p.heading("Dataset")
		p.field("file", s.Dataset)
	}

	p.heading("Graph")
	p.field("nodes", s.Stats.NodeCount)
	p.field("edges", s.Stats.EdgeCount)
	p.field("components", s.Components)
	p.field("isolated", s.Stats.IsolatedCount)
	p.field("degree min/max", fmt.Sprintf("%d/%d", s.Stats.MinDegree, s.Stats.MaxDegree))
	p.field("degree mean", fmt.Sprintf("%.4f", s.Stats.MeanDegree))
	if s.Stats.LoopsSkipped > 0 || s.Stats.Duplicates > 0 {
		p.field("self-loops skipped", s.Stats.LoopsSkipped)
		p.field("duplicate edges", s.Stats.Duplicates)
	}
	p.field(fmt.Sprintf("degree of %d", s.Source), s.SourceDegree)

	if s.Path != nil {
		p.heading("Shortest paths")
		if s.Path.Defined {
			p.field(fmt.Sprintf("average from %d", s.Path.Source), fmt.Sprintf("%.4f", s.Path.Mean))
		} else {
			p.field(fmt.Sprintf("average from %d", s.Path.Source), "undefined (nothing reachable)")
		}
		p.field("reachable", s.Path.Reached)
	}

	if len(s.Histogram) > 0 {
		p.heading("Degree distribution")
		if p.err == nil {
			p.err = WriteHistogram(w, s.Histogram)
		}
	}

	if s.TopK != nil {
		p.heading(fmt.Sprintf("Most similar to %d", s.Source))
		for i, sc := range s.TopK {
			p.line(fmt.Sprintf("%2d. node %d  %.4f", i+1, sc.Node, sc.Value))
		}
	}

	if s.Pair != nil {
		p.heading("Most similar pair")
		p.line(fmt.Sprintf("(%d, %d)  %.4f", s.Pair.A, s.Pair.B, s.Pair.Value))
	}

	return p.err
}

// printer remembers the first write error so WriteText can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) heading(title string) {
	p.line("")
	p.line(headingStyle.Render(title))
}

func (p *printer) field(label string, v any) {
	p.line(fmt.Sprintf("  %s %v", labelStyle.Render(label+":"), v))
}
