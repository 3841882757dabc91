package reporters

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-bond/sortbench"
)

type document struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	Input     string      `json:"input,omitempty"`
	Kind      string      `json:"kind"`
	Elements  int         `json:"elements"`
	Results   []resultRow `json:"results"`
	Fastest   string      `json:"fastest,omitempty"`
}

type resultRow struct {
	Algorithm string  `json:"algorithm"`
	Status    string  `json:"status"`
	ElapsedMs float64 `json:"elapsedMs"`
}

func newDocument(report *sortbench.Report) *document {
	doc := &document{
		ID:        report.ID.String(),
		CreatedAt: report.CreatedAt,
		Input:     report.Input,
		Kind:      report.Kind.String(),
		Elements:  report.Elements,
		Results:   make([]resultRow, 0, len(report.Results)),
	}

	for _, result := range report.Results {
		doc.Results = append(doc.Results, resultRow{
			Algorithm: result.Algorithm.Key(),
			Status:    result.Status.String(),
			ElapsedMs: result.Milliseconds(),
		})
	}

	if fastest, ok := report.Fastest(); ok {
		doc.Fastest = fastest.Algorithm.Key()
	}
	return doc
}

type JSONReporter struct {
	w io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	return &JSONReporter{w: writer}
}

func (r *JSONReporter) Report(report *sortbench.Report) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(report))
}

// DefaultCBOREncMode encodes timestamps as RFC 3339 strings with
// nanosecond precision.
var DefaultCBOREncMode cbor.EncMode

func init() {
	var err error
	DefaultCBOREncMode, err = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
}

type CBORReporter struct {
	w       io.Writer
	EncMode cbor.EncMode
}

func NewCBORReporter(writer io.Writer) *CBORReporter {
	return &CBORReporter{w: writer, EncMode: DefaultCBOREncMode}
}

func (r *CBORReporter) Report(report *sortbench.Report) error {
	if r.EncMode != nil {
		return r.EncMode.NewEncoder(r.w).Encode(newDocument(report))
	}
	return cbor.NewEncoder(r.w).Encode(newDocument(report))
}
