package render

import "strings"

// Wrap breaks text into lines of at most width columns where possible.
//
// The first line is indented by leading spaces and continuation lines by
// hanging spaces. Lines break at the last space at or before the width
// boundary; a word longer than the line runs on to the next space. Only the
// final line is padded with fill up to the width, leaving room for a status
// token after it. Lines are joined with "\n" and there is no trailing
// newline.
func Wrap(text string, width, leading, hanging int, fill byte) string {
	if len(text)+leading <= width {
		return pad(leading) + text + strings.Repeat(string(fill), width-len(text)-leading)
	}

	var lines []string
	cur := 0
	indent := leading
	next := cur + max(width-indent, 1)

	for next < len(text) {
		space := strings.LastIndexByte(text[:next+1], ' ')
		if space <= cur {
			i := strings.IndexByte(text[next:], ' ')
			if i < 0 {
				break
			}
			space = next + i
		}

		lines = append(lines, pad(indent)+text[cur:space])

		cur = space + 1
		indent = hanging
		next = cur + max(width-indent, 1)
	}

	last := pad(indent) + text[cur:] + strings.Repeat(string(fill), max(next-len(text), 0))
	return strings.Join(append(lines, last), "\n")
}

func pad(n int) string {
	return strings.Repeat(" ", max(n, 0))
}
