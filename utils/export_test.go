package utils

import (
	"strings"
	"testing"
)

func TestWriteDelimited(t *testing.T) {
	records := []Record{
		{{"name", "Rice"}, {"sku", "DRY-001"}, {"stock", "40"}},
		{{"name", "Paneer"}, {"sku", "DAIRY-001"}, {"stock", "8"}},
	}

	out := WriteDelimited(records, ",")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "name,sku,stock" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Rice,DRY-001,40" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteDelimitedQuoting(t *testing.T) {
	records := []Record{
		{{"name", `Chillies, dried ("extra hot")`}, {"note", "line1\nline2"}},
	}

	out := WriteDelimited(records, ",")
	lines := strings.SplitN(out, "\n", 2)
	if lines[0] != "name,note" {
		t.Errorf("header = %q", lines[0])
	}
	want := `"Chillies, dried (""extra hot"")","line1` + "\n" + `line2"` + "\n"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestWriteDelimitedCustomDelimiter(t *testing.T) {
	records := []Record{{{"a", "1"}, {"b", "x;y"}}}
	out := WriteDelimited(records, ";")
	if !strings.Contains(out, `"x;y"`) {
		t.Errorf("field containing delimiter not quoted: %q", out)
	}
}

func TestWriteDelimitedEmpty(t *testing.T) {
	if out := WriteDelimited(nil, ","); out != "" {
		t.Errorf("empty input produced %q", out)
	}
}
