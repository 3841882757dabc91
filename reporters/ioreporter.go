package reporters

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-bond/sortbench"
)

const ruleWidth = 60

// IOReporter writes a human readable table, one line per algorithm,
// followed by the fastest algorithm when there is one.
type IOReporter struct {
	w io.Writer
}

func NewIOReporter(writer io.Writer) *IOReporter {
	return &IOReporter{w: writer}
}

func (r *IOReporter) Report(report *sortbench.Report) error {
	rule := strings.Repeat("=", ruleWidth)
	nameLen := findMaxLength(report.Results)
	format := fmt.Sprintf("%%-%ds | %%s\n", nameLen)

	header := fmt.Sprintf("Elements: %s | Kind: %s", humanize.Comma(int64(report.Elements)), report.Kind)
	if report.Input != "" {
		header = fmt.Sprintf("Input: %s | %s", report.Input, header)
	}

	_, err := fmt.Fprintf(r.w, "%s\n%s\n%s\n", rule, header, rule)
	if err != nil {
		return err
	}

	for _, result := range report.Results {
		value := "unavailable"
		if result.OK() {
			value = fmt.Sprintf("Time: %11s", formatMillis(result.Milliseconds()))
		}

		_, err = fmt.Fprintf(r.w, format, result.Algorithm, value)
		if err != nil {
			return err
		}
	}

	if len(report.Results) > 1 {
		if fastest, ok := report.Fastest(); ok {
			_, err = fmt.Fprintf(r.w, "%s\nFastest: %s (%s)\n", rule, fastest.Algorithm, formatMillis(fastest.Milliseconds()))
			if err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintln(r.w, rule)
	return err
}
