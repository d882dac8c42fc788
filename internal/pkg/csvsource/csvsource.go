// Package csvsource streams delimited text files as a lazy sequence of
// field maps keyed by the header row.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source is a forward-only reader over one CSV file. It keeps a single
// row in memory and cannot be restarted once consumed.
type Source struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

// Open opens the file and consumes its header row.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		file.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("source file %s is empty", path)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	return &Source{
		file:   file,
		reader: reader,
		header: header,
	}, nil
}

// Next yields the next row as a header-keyed map. Returns io.EOF when the
// file is exhausted. A *csv.ParseError is returned for the offending row
// only; subsequent rows remain readable.
func (s *Source) Next() (map[string]string, error) {
	record, err := s.reader.Read()
	if err != nil {
		return nil, err
	}

	row := make(map[string]string, len(s.header))
	for i, name := range s.header {
		if i >= len(record) {
			break
		}
		row[name] = record[i]
	}
	return row, nil
}

// Name returns the base name of the underlying file, used as the origin
// tag on imported records.
func (s *Source) Name() string {
	return filepath.Base(s.file.Name())
}

// Close releases the underlying file.
func (s *Source) Close() error {
	return s.file.Close()
}
