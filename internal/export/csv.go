// Package export renders validation error lists as spreadsheets.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"volumetrico/internal/domain"
)

// BOM is the UTF-8 byte order mark. Excel on Windows needs it to read the
// accented messages correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by the CSV and XLSX renderings.
var columns = []string{
	"#",
	"Tipo de Error",
	"Mensaje",
	"Origen",
}

// Writer wraps csv.Writer for exporting error records as CSV.
type Writer struct {
	out io.Writer
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w, csv: csv.NewWriter(w)}
}

// WriteBOM writes the byte order mark. Call it before WriteHeader.
func (w *Writer) WriteBOM() error {
	_, err := w.out.Write(BOM)
	return err
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords writes one row per record, numbered from 1.
func (w *Writer) WriteRecords(records []domain.ErrorRecord) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(i, &records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV renders records as a complete CSV document with BOM and header.
func WriteCSV(out io.Writer, records []domain.ErrorRecord) error {
	w := NewWriter(out)
	if err := w.WriteBOM(); err != nil {
		return err
	}
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteRecords(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func recordToRow(i int, rec *domain.ErrorRecord) []string {
	return []string{
		strconv.Itoa(i + 1),
		rec.Kind.String(),
		rec.Error,
		rec.Source,
	}
}
