package utils

import (
	"strings"
)

// Field is one key/value pair of a flat export record. Records keep their
// field order so the header row is stable.
type Field struct {
	Key   string
	Value string
}

// Record is one flat row of an export.
type Record []Field

// WriteDelimited renders homogeneous records as delimited text: a header
// row taken from the first record's keys, then one line per record.
// Fields containing the delimiter, a quote or a newline are quoted, with
// inner quotes doubled.
func WriteDelimited(records []Record, delimiter string) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	for i, f := range records[0] {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(quoteField(f.Key, delimiter))
	}
	b.WriteString("\n")

	for _, rec := range records {
		for i, f := range rec {
			if i > 0 {
				b.WriteString(delimiter)
			}
			b.WriteString(quoteField(f.Value, delimiter))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func quoteField(v, delimiter string) string {
	if !strings.Contains(v, delimiter) && !strings.Contains(v, `"`) && !strings.Contains(v, "\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
