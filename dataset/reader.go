package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-bond/sortbench"
	"github.com/klauspost/compress/zstd"
)

const ZstdExt = ".zst"

var (
	// ErrUnknownKind is returned when the element kind cannot be derived from a file name.
	ErrUnknownKind = errors.New("file name must contain 'float' or 'int'")

	// ErrParse is returned for tokens that are not numbers of the expected kind.
	ErrParse = errors.New("malformed number")
)

// KindFromPath derives the element kind from the base name of path.
// "float" takes precedence over "int".
func KindFromPath(path string) (sortbench.Kind, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "float"):
		return sortbench.KindFloat, nil
	case strings.Contains(name, "int"):
		return sortbench.KindInt, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownKind)
	}
}

// Read loads a numeric sequence from path. Files ending in .zst are
// decompressed on the fly.
func Read(path string) (*sortbench.Sequence, error) {
	kind, err := KindFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ZstdExt) {
		dec, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream - %w", err)
		}
		defer dec.Close()
		r = dec
	}

	seq, err := Decode(r, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Decode parses whitespace separated numbers of the given kind.
func Decode(r io.Reader, kind sortbench.Kind) (*sortbench.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var (
		ints   []int64
		floats []float64
		token  int
	)

	for scanner.Scan() {
		token++
		text := scanner.Text()

		switch kind {
		case sortbench.KindInt:
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: token %d %q", ErrParse, token, text)
			}
			ints = append(ints, v)
		case sortbench.KindFloat:
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: token %d %q", ErrParse, token, text)
			}
			floats = append(floats, v)
		default:
			return nil, fmt.Errorf("unsupported kind %s", kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if kind == sortbench.KindFloat {
		return sortbench.NewFloatSequence(floats), nil
	}
	return sortbench.NewIntSequence(ints), nil
}
