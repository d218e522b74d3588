package diag

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/linecol"
)

func TestSeverityString(t *testing.T) {
	cases := []struct {
		severity Severity
		str      string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
	}
	for _, tc := range cases {
		if tc.severity.String() != tc.str {
			t.Fatalf("severity %d renders as %q, want %q", tc.severity,
				tc.severity.String(), tc.str)
		}
	}
}

func TestReportAndPrint(t *testing.T) {
	ix := linecol.FromString("One\nTwo")
	r := NewReporter("main.txt", ix)
	r.SetPalette(nil) // plain output for comparison
	r.Report(4, Error, "unexpected %q", "T")
	r.Report(0, Warning, "file starts oddly")

	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		t.Fatal(err.Error())
	}
	want := "main.txt:1:1: warning: file starts oddly\n" +
		"main.txt:2:1: error: unexpected \"T\"\n"
	if buf.String() != want {
		t.Fatalf("rendered diagnostics:\n%swant:\n%s", buf.String(), want)
	}
	if r.Count() != 2 {
		t.Fatalf("Count = %d, want 2", r.Count())
	}
}

func TestRecordsOrderedByOffset(t *testing.T) {
	ix := linecol.FromString("a\nab\nabc")
	r := NewReporter("x", ix)
	r.Report(5, Info, "third line")
	r.Report(0, Info, "first line")
	r.Report(2, Info, "second line")

	records := r.Records()
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].Offset > records[i].Offset {
			t.Fatalf("records not ordered by offset: %v", records)
		}
	}
}

func TestLazyLocatorInReporter(t *testing.T) {
	r := NewReporter("lazy.txt", linecol.Lazy("One\nTwo"))
	r.SetPalette(nil)
	r.Report(7, Info, "end of text")

	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		t.Fatal(err.Error())
	}
	want := "lazy.txt:2:4: info: end of text\n"
	if buf.String() != want {
		t.Fatalf("rendered diagnostics %q, want %q", buf.String(), want)
	}
}

type runeCounter struct{}

func (runeCounter) Clusters(frag string) int {
	return utf8.RuneCountInString(frag)
}

func TestClusterColumnsInRecords(t *testing.T) {
	// 'ñ' is 2 bytes, so byte column and codepoint column differ at 'b'
	ix := linecol.FromString("añb")
	r := NewReporter("u.txt", ix)
	r.SetPalette(nil)
	r.CountColumnsInClusters(runeCounter{})
	r.Report(3, Error, "bad 'b'")

	var buf bytes.Buffer
	if err := r.Print(&buf); err != nil {
		t.Fatal(err.Error())
	}
	want := "u.txt:1:3: error: bad 'b'\n"
	if buf.String() != want {
		t.Fatalf("rendered diagnostics %q, want %q", buf.String(), want)
	}
}

type plainLocator struct{}

func (plainLocator) Locate(offset uint64) linecol.Location {
	return linecol.Location{Line: 1, Column: offset + 1}
}

func TestClusterColumnsRequireCapableLocator(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for locator without cluster support")
		}
	}()
	r := NewReporter("p", plainLocator{})
	r.CountColumnsInClusters(runeCounter{})
}

func TestShorten(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"abc", 4, "abc"},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "abc…"},
		{"añbñc", 3, "añ…"},
	}
	for _, tc := range cases {
		if got := shorten(tc.in, tc.max); got != tc.want {
			t.Fatalf("shorten(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
