package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// ErrorKind classifies decode failures. All of them are batch-fatal: the
// caller gets no table and must not start row processing.
type ErrorKind string

const (
	ErrUnsupportedFormat ErrorKind = "unsupported_format"
	ErrUndecodableText   ErrorKind = "undecodable_text"
	ErrEmptyFile         ErrorKind = "empty_file"
	ErrMalformed         ErrorKind = "malformed"
)

// DecodeError is returned for any failure to turn raw bytes into a Table.
type DecodeError struct {
	Kind    ErrorKind
	Message string
}

func (e *DecodeError) Error() string { return e.Message }

func decodeError(kind ErrorKind, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Decode dispatches on the filename suffix and parses the raw upload into
// a Table. A table with zero data rows is a decode-level failure.
func Decode(data []byte, filename string) (*Table, error) {
	var (
		table *Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = decodeCSV(data)
	case ".xlsx":
		table, err = decodeXLSX(data)
	default:
		return nil, decodeError(ErrUnsupportedFormat, "Unsupported file format")
	}
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, decodeError(ErrEmptyFile, "File is empty")
	}
	return table, nil
}

// csvEncodings is the fixed fallback chain for CSV uploads, attempted in
// order. Latin-1 accepts any byte sequence, so in practice the chain ends
// there; Windows-1252 is kept for parity with the documented contract.
var csvEncodings = []struct {
	name   string
	decode func([]byte) (string, error)
}{
	{"utf-8", decodeUTF8},
	{"latin-1", decodeCharmap(charmap.ISO8859_1)},
	{"cp1252", decodeCharmap(charmap.Windows1252)},
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("invalid UTF-8")
	}
	return string(data), nil
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func decodeCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, bomUTF8)

	var text string
	decoded := false
	for _, enc := range csvEncodings {
		if s, err := enc.decode(data); err == nil {
			text = s
			decoded = true
			break
		}
	}
	if !decoded {
		return nil, decodeError(ErrUndecodableText, "Could not decode CSV file")
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, decodeError(ErrEmptyFile, "File is empty")
	}
	if err != nil {
		return nil, decodeError(ErrMalformed, "Error reading file: %v", err)
	}

	table := &Table{Headers: trimHeaders(header)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, decodeError(ErrMalformed, "Error reading file: %v", err)
		}
		table.Rows = append(table.Rows, recordToCells(record, len(table.Headers)))
	}
	return table, nil
}

func decodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeError(ErrMalformed, "Error reading file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, decodeError(ErrEmptyFile, "File is empty")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, decodeError(ErrMalformed, "Error reading file: %v", err)
	}
	if len(rows) == 0 {
		return nil, decodeError(ErrEmptyFile, "File is empty")
	}

	table := &Table{Headers: trimHeaders(rows[0])}
	for _, record := range rows[1:] {
		table.Rows = append(table.Rows, recordToCells(record, len(table.Headers)))
	}
	return table, nil
}

// trimHeaders coerces every header cell to a trimmed string. Blank or
// numeric source cells still yield a usable column name.
func trimHeaders(record []string) []string {
	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// recordToCells widens or narrows a record to the header width. Cells the
// source did not provide are marked absent rather than coerced to a
// placeholder string.
func recordToCells(record []string, width int) []Cell {
	cells := make([]Cell, width)
	for i := 0; i < width; i++ {
		if i < len(record) {
			cells[i] = Cell{Value: record[i], Set: true}
		}
	}
	return cells
}
