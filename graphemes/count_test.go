package graphemes

import (
	"testing"

	"github.com/npillmayer/linecol"
)

// familyEmoji is man + ZWJ + woman + ZWJ + boy: 5 codepoints, 18 bytes in
// UTF-8, but a reader perceives a single character.
const familyEmoji = "\U0001F468‍\U0001F469‍\U0001F466"

const emojiText = "The " + familyEmoji + " emoji is made of 5 code points and 18 bytes in UTF-8."

// combiningText is "he" + combining acute accent + "y", newline, "ok".
const combiningText = "héy\nok"

func TestClusterCount(t *testing.T) {
	counter := NewCounter()
	cases := []struct {
		frag     string
		clusters int
	}{
		{"", 0},
		{"abc", 3},
		{"héy", 3}, // 'e' + combining acute is one cluster
		{familyEmoji, 1},
		{"The " + familyEmoji, 5},
	}
	for _, tc := range cases {
		if n := counter.Clusters(tc.frag); n != tc.clusters {
			t.Fatalf("Clusters(%q) = %d, want %d", tc.frag, n, tc.clusters)
		}
	}
}

func TestLocateClusterColumns(t *testing.T) {
	ix := linecol.FromString(emojiText)

	// raw byte columns count the emoji as 18 units
	if loc := ix.Locate(4); loc.Line != 1 || loc.Column != 5 {
		t.Fatalf("Locate(4) = (%d,%d), want (1,5)", loc.Line, loc.Column)
	}
	if loc := ix.Locate(22); loc.Line != 1 || loc.Column != 23 {
		t.Fatalf("Locate(22) = (%d,%d), want (1,23)", loc.Line, loc.Column)
	}

	// cluster columns count it as one
	if loc := Locate(ix, 4); loc.Line != 1 || loc.Column != 5 {
		t.Fatalf("cluster Locate(4) = (%d,%d), want (1,5)", loc.Line, loc.Column)
	}
	if loc := Locate(ix, 22); loc.Line != 1 || loc.Column != 6 {
		t.Fatalf("cluster Locate(22) = (%d,%d), want (1,6)", loc.Line, loc.Column)
	}
}

func TestLocateMidCluster(t *testing.T) {
	// offset 8 lands behind the 'man' codepoint, inside the joined emoji
	// cluster; by documented policy the cut cluster counts as complete.
	ix := linecol.FromString(emojiText)
	if loc := Locate(ix, 8); loc.Line != 1 || loc.Column != 6 {
		t.Fatalf("mid-cluster Locate(8) = (%d,%d), want (1,6)", loc.Line, loc.Column)
	}
}

func TestLocateClustersMultiline(t *testing.T) {
	ix := linecol.FromString(combiningText)
	counter := NewCounter()

	// 'y' sits at byte offset 4 but is the third perceived character
	if loc := ix.LocateClusters(4, counter); loc.Line != 1 || loc.Column != 3 {
		t.Fatalf("LocateClusters(4) = (%d,%d), want (1,3)", loc.Line, loc.Column)
	}
	// line resolution is unaffected by the column policy
	if loc := ix.LocateClusters(6, counter); loc.Line != 2 || loc.Column != 1 {
		t.Fatalf("LocateClusters(6) = (%d,%d), want (2,1)", loc.Line, loc.Column)
	}
	if loc := ix.Locate(6); loc.Line != 2 || loc.Column != 1 {
		t.Fatalf("Locate(6) = (%d,%d), want (2,1)", loc.Line, loc.Column)
	}
}
