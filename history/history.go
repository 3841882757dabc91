package history

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-bond/sortbench"
	"github.com/go-bond/sortbench/reporters"
)

// keys are _runPrefix | unix nanos (big endian) | report id
var _runPrefix = []byte("run/")

var ErrNotFound = errors.New("report not found")

// Store persists benchmark reports in a pebble database, ordered by
// creation time.
type Store struct {
	db *pebble.DB
}

func Open(dirname string, opts *pebble.Options) (*Store, error) {
	if opts == nil {
		opts = &pebble.Options{}
	}

	pdb, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: pdb}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func reportKey(report *sortbench.Report) []byte {
	key := make([]byte, 0, len(_runPrefix)+8+len(report.ID))
	key = append(key, _runPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(report.CreatedAt.UnixNano()))
	key = append(key, report.ID[:]...)
	return key
}

// prefixUpperBound returns the smallest key greater than every key with prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

func (s *Store) Put(report *sortbench.Report) error {
	data, err := reporters.DefaultCBOREncMode.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report - %w", err)
	}
	return s.db.Set(reportKey(report), data, pebble.Sync)
}

// List returns up to limit reports, newest first. A limit <= 0 returns all.
func (s *Store) List(limit int) ([]*sortbench.Report, error) {
	itr, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: _runPrefix,
		UpperBound: prefixUpperBound(_runPrefix),
	})
	if err != nil {
		return nil, err
	}
	defer itr.Close()

	var reports []*sortbench.Report
	for itr.Last(); itr.Valid(); itr.Prev() {
		if limit > 0 && len(reports) >= limit {
			break
		}

		report := &sortbench.Report{}
		if err := cbor.Unmarshal(itr.Value(), report); err != nil {
			return nil, fmt.Errorf("failed to decode report %x - %w", itr.Key(), err)
		}
		reports = append(reports, report)
	}

	return reports, itr.Error()
}

// Latest returns the most recently created report.
func (s *Store) Latest() (*sortbench.Report, error) {
	reports, err := s.List(1)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, ErrNotFound
	}
	return reports[0], nil
}
