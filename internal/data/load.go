package data

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// RecordParser converts one CSV record into a vector of the given dimension.
type RecordParser func(record []string, dim int) (FeatureVector, error)

// LoadCSV reads every record from r. When header is set the first record is
// skipped. Malformed records do not stop the scan: all of them are collected
// and returned together, with no dataset. Cancelling ctx stops the scan.
func LoadCSV(ctx context.Context, r io.Reader, dim int, header bool, parse RecordParser) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		ds   Dataset
		errs error
		line int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if header && line == 1 {
			continue
		}
		v, err := parse(rec, dim)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		ds = append(ds, v)
	}
	if errs != nil {
		return nil, errs
	}
	return ds, nil
}

func LoadCSVFile(ctx context.Context, path string, dim int, header bool, parse RecordParser) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := LoadCSV(ctx, f, dim, header, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyDataset)
	}
	return ds, nil
}
