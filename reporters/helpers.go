package reporters

import (
	"fmt"

	"github.com/go-bond/sortbench"
)

func findMaxLength(results []sortbench.Result) (nameLen int) {
	for _, result := range results {
		cNameLen := len(result.Algorithm.String())
		if nameLen < cNameLen {
			nameLen = cNameLen
		}
	}
	return
}

func formatMillis(ms float64) string {
	return fmt.Sprintf("%.2f ms", ms)
}
