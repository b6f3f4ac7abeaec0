// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package book

import (
	"fmt"
	"iter"
	"strings"

	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/util/slicest"
)

// Paginate returns a sequence of pages holding up to pageSize records each,
// in ascending name order. Every page is one line per record with no trailing
// newline. Each range over the sequence starts again at the first page and
// sees the book as it is at that moment. A pageSize below one yields nothing.
func (b *AddressBook) Paginate(pageSize int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, page := range slicest.Chunk(b.Records(), pageSize) {
			if !yield(renderPage(page)) {
				return
			}
		}
	}
}

// PageCount is the number of pages Paginate yields for pageSize.
func (b *AddressBook) PageCount(pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (b.Len() + pageSize - 1) / pageSize
}

func renderPage(records []*model.Record) string {
	lines := slicest.Map(records, func(r *model.Record) string {
		return fmt.Sprintf("%-8.8s  %s", r.Name(), r)
	})
	return strings.Join(lines, "\n")
}
