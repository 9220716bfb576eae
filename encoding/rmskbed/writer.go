// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rmskbed

import (
	"io"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/rmsk/annotation"
)

// SegmentColumns is the header row written by Writer.
var SegmentColumns = []string{
	"id", "group", "chrom", "start", "end", "width", "type",
	"subfamily", "class", "family", "score", "strand", "row",
}

// Writer writes segments as TSV.  The header row is written before the first
// segment.
type Writer struct {
	w      *tsv.Writer
	header bool
}

// NewWriter creates a Writer.  Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: tsv.NewWriter(w)}
}

func (w *Writer) writeHeader() error {
	for _, col := range SegmentColumns {
		w.w.WriteString(col)
	}
	w.header = true
	return w.w.EndLine()
}

// Write appends one row per segment.  chrom is the chromosome of the query
// the segments came from.
func (w *Writer) Write(chrom string, segs []annotation.Segment) error {
	if !w.header {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}
	for _, s := range segs {
		w.w.WriteString(s.ID)
		w.w.WriteString(s.GroupID)
		w.w.WriteString(chrom)
		w.w.WriteInt64(int64(s.Start))
		w.w.WriteInt64(int64(s.End()))
		w.w.WriteInt64(int64(s.Width))
		w.w.WriteString(s.Type.String())
		w.w.WriteString(s.SubfamilyName)
		w.w.WriteString(s.ClassName)
		w.w.WriteString(s.FamilyName)
		w.w.WriteInt64(int64(s.Score))
		w.w.WriteString(s.Strand.String())
		w.w.WriteInt64(int64(s.Row))
		if err := w.w.EndLine(); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.  It writes the
// header if no segment was written.
func (w *Writer) Flush() error {
	if !w.header {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}
	return w.w.Flush()
}
