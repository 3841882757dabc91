package reporters

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-bond/sortbench"
)

var ErrUnknownReporter = errors.New("unknown reporter")

type Reporter interface {
	Report(report *sortbench.Report) error
}

// Names lists the reporters accepted by New.
func Names() []string {
	return []string{"stdout", "csv", "json", "cbor"}
}

func New(name string, w io.Writer) (Reporter, error) {
	switch name {
	case "stdout", "":
		return NewIOReporter(w), nil
	case "csv":
		return NewCSVReporter(w), nil
	case "json":
		return NewJSONReporter(w), nil
	case "cbor":
		return NewCBORReporter(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownReporter, name)
	}
}
