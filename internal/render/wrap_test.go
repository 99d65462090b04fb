package render

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   int
		leading int
		hanging int
		fill    byte
		want    string
	}{
		{
			name:  "fits on one line",
			text:  "Checking core count",
			width: 25,
			fill:  '.',
			want:  "Checking core count......",
		},
		{
			name:  "exact fit",
			text:  "abcd",
			width: 4,
			fill:  '.',
			want:  "abcd",
		},
		{
			name:    "leading indent",
			text:    "abc",
			width:   8,
			leading: 2,
			fill:    '.',
			want:    "  abc...",
		},
		{
			name:    "breaks at last space",
			text:    "Checking STREAM performance",
			width:   20,
			hanging: 2,
			fill:    '.',
			want:    "Checking STREAM\n  performance.......",
		},
		{
			name:    "space fill",
			text:    "Observed performance is less than 12000 MB/s",
			width:   20,
			leading: 2,
			hanging: 4,
			fill:    ' ',
			want:    "  Observed\n    performance is\n    less than 12000\n    MB/s            ",
		},
		{
			name:    "long word runs past width",
			text:    "a supercalifragilistic word",
			width:   8,
			hanging: 2,
			fill:    '.',
			want:    "a\n  supercalifragilistic\n  word..",
		},
		{
			name:  "unbreakable tail",
			text:  "abcdefghijklmnop",
			width: 8,
			fill:  '.',
			want:  "abcdefghijklmnop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.width, tt.leading, tt.hanging, tt.fill)
			if got != tt.want {
				t.Errorf("Wrap() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestWrap_LastLineWidth(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and keeps running far away"
	for width := 12; width < 40; width++ {
		lines := strings.Split(Wrap(text, width, 0, 2, '.'), "\n")
		last := lines[len(lines)-1]
		if len(last) != width {
			t.Errorf("width %d: last line %q has length %d", width, last, len(last))
		}
		for _, l := range lines[:len(lines)-1] {
			if len(l) > width {
				t.Errorf("width %d: line %q exceeds width", width, l)
			}
		}
	}
}
