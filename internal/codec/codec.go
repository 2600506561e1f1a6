// Package codec converts the flat service-desk export between its delimited
// text form and an ordered sequence of string-keyed rows. It is pure and
// stateless: no I/O, no configuration.
package codec

import (
	"strings"
	"unicode"
)

const (
	fieldDelim  = ','
	recordDelim = '\n'
	quote       = '"'
)

// Row is one decoded record, keyed by normalized header names.
type Row map[string]string

// Table is an ordered record sequence plus the header order needed to
// re-serialize it.
type Table struct {
	Headers []string
	Rows    []Row
}

// Decode parses delimited text into a Table. The first record becomes the
// header row; its cells are normalized into camelCase keys. Quoted fields may
// contain delimiters and newlines; a doubled quote inside a quoted field is a
// literal quote. An unterminated quote is closed implicitly at end of input.
// A leading byte-order mark is stripped. Rows with fewer cells than headers
// are padded with empty strings; blank rows are discarded. Empty input yields
// an empty table.
func Decode(text string) (*Table, error) {
	text = strings.TrimPrefix(text, "\uFEFF")
	records := tokenize(text)

	t := &Table{}
	if len(records) == 0 {
		return t, nil
	}

	for _, h := range records[0] {
		t.Headers = append(t.Headers, NormalizeKey(h))
	}

	for _, cells := range records[1:] {
		if isBlank(cells) {
			continue
		}
		row := make(Row, len(t.Headers))
		for i, key := range t.Headers {
			if i < len(cells) {
				row[key] = cells[i]
			} else {
				row[key] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Encode is the inverse of Decode. Every field is quoted and embedded quotes
// are doubled, so the output survives values containing delimiters, quotes,
// and newlines. Encode(Decode(x)) preserves every record and value of x,
// though not necessarily its exact byte layout.
func Encode(t *Table) string {
	var b strings.Builder

	writeRecord := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				b.WriteByte(fieldDelim)
			}
			b.WriteByte(quote)
			b.WriteString(strings.ReplaceAll(c, `"`, `""`))
			b.WriteByte(quote)
		}
		b.WriteByte(recordDelim)
	}

	writeRecord(t.Headers)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i, key := range t.Headers {
			cells[i] = row[key]
		}
		writeRecord(cells)
	}

	return b.String()
}

// tokenize splits text into records of raw cells, honoring the quoting
// convention. It never fails: end of input inside a quoted field acts as the
// closing quote.
func tokenize(text string) [][]string {
	if text == "" {
		return nil
	}

	var (
		records  [][]string
		cells    []string
		cell     strings.Builder
		inQuotes bool
	)

	endCell := func() {
		cells = append(cells, cell.String())
		cell.Reset()
	}
	endRecord := func() {
		endCell()
		records = append(records, cells)
		cells = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == quote {
				if i+1 < len(text) && text[i+1] == quote {
					cell.WriteByte(quote)
					i++
					continue
				}
				inQuotes = false
				continue
			}
			cell.WriteByte(c)
			continue
		}

		switch c {
		case quote:
			inQuotes = true
		case fieldDelim:
			endCell()
		case '\r':
			// Swallow the CR of a CRLF pair; a lone CR is literal.
			if i+1 < len(text) && text[i+1] == recordDelim {
				continue
			}
			cell.WriteByte(c)
		case recordDelim:
			endRecord()
		default:
			cell.WriteByte(c)
		}
	}
	endRecord()

	return records
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// NormalizeKey turns arbitrary header text into a canonical camelCase
// identifier: alphanumeric runs are kept, separators dropped, each run after
// the first is capitalized, and the first character is lower-cased.
// "Ticket Number" becomes "ticketNumber"; an already-normalized key is left
// unchanged.
func NormalizeKey(header string) string {
	var words []string
	var word strings.Builder
	for _, r := range header {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i, w := range words {
		runes := []rune(w)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
