// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/util/slicest"
)

// SchemaVersion is written into every book file.
const SchemaVersion = 1

// ErrCorrupt is returned when a book file cannot be decoded or holds data
// that does not form a valid address book.
var ErrCorrupt = errors.New("corrupt address book data")

// fileData is the on-disk shape of an address book.
type fileData struct {
	SchemaVersion int          `json:"schema_version"`
	Records       []recordData `json:"records"`
}

type recordData struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Save writes the whole book to path, replacing any existing file.
func (b *AddressBook) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := b.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Load reads a book previously written by Save.
func Load(path string) (*AddressBook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Decode(file)
}

// Encode writes the book to w as zstd-compressed JSON.
func (b *AddressBook) Encode(w io.Writer) error {
	zstdWriter, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	data := fileData{
		SchemaVersion: SchemaVersion,
		Records: slicest.Map(b.Records(), func(r *model.Record) recordData {
			d := recordData{Name: r.Name(), Phones: r.Phones()}
			if !r.Birthday().IsZero() {
				d.Birthday = r.Birthday().String()
			}
			return d
		}),
	}
	if err := json.NewEncoder(zstdWriter).Encode(&data); err != nil {
		_ = zstdWriter.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err := zstdWriter.Close(); err != nil {
		return fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return nil
}

// Decode reads a book written by Encode.
func Decode(r io.Reader) (*AddressBook, error) {
	zstdReader, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var data fileData
	if err := json.NewDecoder(zstdReader).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: could not decode json from zstd reader: %w", ErrCorrupt, err)
	}
	if data.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema version %d", ErrCorrupt, data.SchemaVersion)
	}

	b := New()
	for _, d := range data.Records {
		if _, dup := b.records[d.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate contact %q", ErrCorrupt, d.Name)
		}
		if d.Birthday != "" {
			if _, err := time.Parse(time.DateOnly, d.Birthday); err != nil {
				return nil, fmt.Errorf("%w: contact %q: %w", ErrCorrupt, d.Name, err)
			}
		}
		rec, err := model.NewRecord(d.Name, d.Birthday, d.Phones...)
		if err != nil {
			return nil, fmt.Errorf("%w: contact %q: %w", ErrCorrupt, d.Name, err)
		}
		b.AddRecord(rec)
	}
	return b, nil
}
