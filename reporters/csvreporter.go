package reporters

import (
	"fmt"
	"io"

	"github.com/go-bond/sortbench"
)

type CSVReporter struct {
	w io.Writer
}

func NewCSVReporter(writer io.Writer) *CSVReporter {
	return &CSVReporter{w: writer}
}

func (r *CSVReporter) Report(report *sortbench.Report) error {
	err := r.writeHeader()
	if err != nil {
		return err
	}

	for _, result := range report.Results {
		err = r.writeRow(report, result)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *CSVReporter) writeHeader() error {
	_, err := r.w.Write([]byte("Run ID,Algorithm,Kind,Elements,Status,Elapsed (ms)\n"))
	return err
}

func (r *CSVReporter) writeRow(report *sortbench.Report, result sortbench.Result) error {
	_, err := fmt.Fprintf(r.w, "%s,%s,%s,%d,%s,%.3f\n",
		report.ID, result.Algorithm, report.Kind, report.Elements, result.Status,
		result.Milliseconds())
	return err
}
