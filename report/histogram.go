// SPDX-License-Identifier: MIT
// Package report renders analysis results: an ASCII degree histogram,
// indented JSON for machine consumers, and a styled text summary for humans.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultWidth is the bar length of the most frequent degree.
const DefaultWidth = 50

// HistogramRow is one bar of the degree histogram.
type HistogramRow struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
	Stars  int `json:"stars"`
}

// Histogram turns a degree distribution into rows sorted by ascending degree.
// Bars are scaled so the largest count gets width stars (DefaultWidth when
// width <= 0); every non-empty bucket keeps at least one star.
func Histogram(dist map[int]int, width int) []HistogramRow {
	if width <= 0 {
		width = DefaultWidth
	}
	maxCount := 0
	for _, c := range dist {
		if c > maxCount {
			maxCount = c
		}
	}

	rows := make([]HistogramRow, 0, len(dist))
	for d, c := range dist {
		if c <= 0 {
			continue
		}
		stars := width * c / maxCount
		if stars < 1 {
			stars = 1
		}
		rows = append(rows, HistogramRow{Degree: d, Count: c, Stars: stars})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Degree < rows[j].Degree })

	return rows
}

// WriteHistogram prints one line per row: "%3d friend(s): ****".
func WriteHistogram(w io.Writer, rows []HistogramRow) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%3d friend(s): %s\n", r.Degree, strings.Repeat("*", r.Stars)); err != nil {
			return err
		}
	}
	return nil
}
