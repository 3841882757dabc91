package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-bond/sortbench"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path   string
		expect sortbench.Kind
		err    bool
	}{
		{path: "datasets/seq01_float_asc.txt", expect: sortbench.KindFloat},
		{path: "/tmp/seq06_int_rand.txt", expect: sortbench.KindInt},
		{path: "FLOAT.txt", expect: sortbench.KindFloat},
		{path: "seq06_int_rand.txt.zst", expect: sortbench.KindInt},
		{path: "int_dir/numbers.txt", err: true},
		{path: "numbers.txt", err: true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			kind, err := KindFromPath(tc.path)
			if tc.err {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, kind)
		})
	}
}

func TestDecode(t *testing.T) {
	seq, err := Decode(strings.NewReader("5 3\n8\t3\n\n1\n"), sortbench.KindInt)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 8, 3, 1}, seq.Ints())

	seq, err = Decode(strings.NewReader("2.5\n2.5\n1.1\n1e3\n"), sortbench.KindFloat)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 1.1, 1000}, seq.Floats())

	seq, err = Decode(strings.NewReader(""), sortbench.KindInt)
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(strings.NewReader("1\n2.5\n"), sortbench.KindInt)
	require.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "token 2")

	_, err = Decode(strings.NewReader("1.0 abc"), sortbench.KindFloat)
	assert.ErrorIs(t, err, ErrParse)
}

func TestEncodeDecode(t *testing.T) {
	seq := sortbench.NewFloatSequence([]float64{0.1, 123456.789, 1e-9, 999999.9999999})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, seq))

	decoded, err := Decode(&buf, sortbench.KindFloat)
	require.NoError(t, err)
	assert.True(t, seq.Equal(decoded))
}

func TestWriteFileRead(t *testing.T) {
	dir := t.TempDir()
	seq := sortbench.NewIntSequence([]int64{1_000_000_000, 0, 42, 42})

	for _, name := range []string{"seq_int.txt", "nested/seq_int.txt.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			size, err := WriteFile(path, seq)
			require.NoError(t, err)
			assert.Greater(t, size, uint64(0))

			read, err := Read(path)
			require.NoError(t, err)
			assert.True(t, seq.Equal(read))
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "seq_int.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1000000000\n0\n42\n42\n", string(raw))
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "numbers.txt"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Read(filepath.Join(dir, "missing_int.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad_int.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 x"), 0644))
	_, err = Read(bad)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), bad)
}

func TestPlans(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, 10)

	assert.Equal(t, "seq01_float_asc.txt", plans[0].Name())
	assert.Equal(t, "seq02_float_desc.txt", plans[1].Name())
	assert.Equal(t, "seq05_float_rand.txt", plans[4].Name())
	assert.Equal(t, "seq10_int_rand.txt", plans[9].Name())

	for _, p := range plans {
		kind, err := KindFromPath(p.Name())
		require.NoError(t, err)
		assert.Equal(t, p.Kind, kind)
	}
}

func TestGenerator_Generate(t *testing.T) {
	g := &Generator{N: 500, Seed: DefaultSeed}
	plans := Plans()

	asc := g.Generate(plans[0])
	assert.Equal(t, 500, asc.Len())
	assert.True(t, asc.IsSorted())

	desc := g.Generate(plans[1]).Floats()
	for i := 1; i < len(desc); i++ {
		require.GreaterOrEqual(t, desc[i-1], desc[i])
	}

	ints := g.Generate(plans[5])
	assert.Equal(t, sortbench.KindInt, ints.Kind())
	for _, v := range ints.Ints() {
		require.GreaterOrEqual(t, v, IntMin)
		require.LessOrEqual(t, v, IntMax)
	}

	// deterministic for a fixed seed, different across plans
	assert.True(t, ints.Equal(g.Generate(plans[5])))
	assert.False(t, ints.Equal(g.Generate(plans[6])))
}

func TestGenerator_GenerateAll(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{N: 100, Seed: DefaultSeed, Concurrency: 2, Compress: true}

	generated, err := g.GenerateAll(context.Background(), dir, Plans())
	require.NoError(t, err)
	require.Len(t, generated, 10)

	for i, gen := range generated {
		assert.Equal(t, Plans()[i], gen.Plan)
		assert.True(t, strings.HasSuffix(gen.Path, ZstdExt))

		seq, err := Read(gen.Path)
		require.NoError(t, err)
		assert.True(t, g.Generate(gen.Plan).Equal(seq))
	}
}

func TestGenerator_GenerateAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &Generator{N: 10, Seed: DefaultSeed, Concurrency: 1}
	_, err := g.GenerateAll(ctx, t.TempDir(), Plans())
	assert.ErrorIs(t, err, context.Canceled)
}
