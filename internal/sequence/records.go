// Package sequence reads FASTA records from gzip-compressed genome files.
package sequence

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one parsed FASTA entry.
type Record = seq.Sequence

// ParseError reports a FASTA parse failure and the index of the record
// being read when it happened.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse fasta record %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewScanner returns a FASTA record scanner over r. Records use the
// redundant DNA alphabet so that ambiguity codes such as N are accepted.
func NewScanner(r io.Reader) *seqio.Scanner {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	return seqio.NewScanner(fasta.NewReader(r, template))
}

// Collect parses up to limit records from r into a new slice. The rest of
// the input is left unread. A limit of zero or less reads everything.
func Collect(r io.Reader, limit int) ([]Record, error) {
	var records []Record
	if limit > 0 {
		records = make([]Record, 0, min(limit, 1024))
	}

	sc := NewScanner(r)
	for limit <= 0 || len(records) < limit {
		if !sc.Next() {
			break
		}
		records = append(records, sc.Seq())
	}
	if err := sc.Error(); err != nil {
		return records, &ParseError{Index: len(records), Err: err}
	}
	return records, nil
}
