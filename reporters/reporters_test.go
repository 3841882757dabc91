package reporters

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-bond/sortbench"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *sortbench.Report {
	return &sortbench.Report{
		ID:        uuid.MustParse("9f1c4e3a-1b2c-4d5e-8f90-0a1b2c3d4e5f"),
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Input:     "datasets/seq06_int_rand.txt",
		Kind:      sortbench.KindInt,
		Elements:  1_000_000,
		Results: []sortbench.Result{
			{Algorithm: sortbench.AlgorithmHeap, Elapsed: 812500 * time.Microsecond},
			{Algorithm: sortbench.AlgorithmMerge, Elapsed: 402 * time.Millisecond},
			{Algorithm: sortbench.AlgorithmQuick, Elapsed: 250 * time.Millisecond},
			{Algorithm: sortbench.AlgorithmLibrary, Status: sortbench.StatusUnavailable},
		},
	}
}

func TestIOReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewIOReporter(&buf).Report(testReport()))

	out := buf.String()
	assert.Contains(t, out, "Input: datasets/seq06_int_rand.txt | Elements: 1,000,000 | Kind: int")
	assert.Contains(t, out, "Heap Sort    | Time:   812.50 ms\n")
	assert.Contains(t, out, "Quick Sort   | Time:   250.00 ms\n")
	assert.Contains(t, out, "Library Sort | unavailable\n")
	assert.Contains(t, out, "Fastest: Quick Sort (250.00 ms)")
}

func TestIOReporter_SingleRun(t *testing.T) {
	report := testReport()
	report.Results = report.Results[:1]

	var buf bytes.Buffer
	require.NoError(t, NewIOReporter(&buf).Report(report))
	assert.NotContains(t, buf.String(), "Fastest")
}

func TestCSVReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVReporter(&buf).Report(testReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Run ID,Algorithm,Kind,Elements,Status,Elapsed (ms)", lines[0])
	assert.Equal(t, "9f1c4e3a-1b2c-4d5e-8f90-0a1b2c3d4e5f,Merge Sort,int,1000000,ok,402.000", lines[2])
	assert.Equal(t, "9f1c4e3a-1b2c-4d5e-8f90-0a1b2c3d4e5f,Library Sort,int,1000000,unavailable,0.000", lines[4])
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Report(testReport()))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "quick", doc.Fastest)
	assert.Equal(t, "int", doc.Kind)
	require.Len(t, doc.Results, 4)
	assert.Equal(t, resultRow{Algorithm: "heap", Status: "ok", ElapsedMs: 812.5}, doc.Results[0])
}

func TestCBORReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCBORReporter(&buf).Report(testReport()))

	var doc document
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "9f1c4e3a-1b2c-4d5e-8f90-0a1b2c3d4e5f", doc.ID)
	assert.Equal(t, "library", doc.Results[3].Algorithm)
	assert.Equal(t, "unavailable", doc.Results[3].Status)
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		r, err := New(name, &bytes.Buffer{})
		require.NoError(t, err)
		assert.NotNil(t, r)
	}

	_, err := New("xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownReporter)
}

func TestCBORReporter_TimeEncoding(t *testing.T) {
	report := testReport()
	report.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 250, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, NewCBORReporter(&buf).Report(report))

	var raw map[string]any
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "2024-05-01T12:00:00.00000025Z", raw["createdAt"])

	// a zero reporter falls back to the package defaults
	buf.Reset()
	require.NoError(t, (&CBORReporter{w: &buf}).Report(report))
	var doc document
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "quick", doc.Fastest)
}
