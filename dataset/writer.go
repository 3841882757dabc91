package dataset

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-bond/sortbench"
	"github.com/klauspost/compress/zstd"
)

// Encode writes seq to w, one number per line. Floats use the shortest
// representation that parses back to the same value.
func Encode(w io.Writer, seq *sortbench.Sequence) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	buf := make([]byte, 0, 32)

	for i := 0; i < seq.Len(); i++ {
		buf = buf[:0]
		if seq.Kind() == sortbench.KindFloat {
			buf = strconv.AppendFloat(buf, seq.Floats()[i], 'g', -1, 64)
		} else {
			buf = strconv.AppendInt(buf, seq.Ints()[i], 10)
		}
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes seq to path, creating parent directories as needed.
// Paths ending in .zst are zstd compressed. It returns the number of bytes
// written to disk.
func WriteFile(path string, seq *sortbench.Sequence) (uint64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	if strings.HasSuffix(path, ZstdExt) {
		err = writeZstd(file, seq)
	} else {
		err = Encode(file, seq)
	}
	if err != nil {
		_ = file.Close()
		return 0, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return 0, err
	}
	return uint64(info.Size()), file.Close()
}

func writeZstd(w io.Writer, seq *sortbench.Sequence) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	if err := Encode(enc, seq); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
