package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/socialnet/report"
)

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	return report.WriteJSON(w, v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(human bool, code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if human {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		_ = outputJSON(os.Stdout, ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by commands that write files.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
	Nodes  int    `json:"nodes"`
	Edges  int    `json:"edges"`
}

// DegreesResponse is the JSON form of the degrees command.
type DegreesResponse struct {
	Distribution map[int]int           `json:"distribution"`
	Histogram    []report.HistogramRow `json:"histogram"`
}
