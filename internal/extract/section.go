package extract

import "regexp"

// Section bounds a sub-region of report text, e.g. the "ITEM CATEGORIES
// SOLD" table or the payroll "Report Totals" block.
//
// The primary strategy is start marker → end marker (or end-of-text). Text
// reflow can lose the surrounding headings, so Anchor is a second, looser
// marker expected inside the region — typically the table's own column
// header — tried when the start marker is absent.
type Section struct {
	Start  *regexp.Regexp
	End    *regexp.Regexp // optional; end-of-text when nil or not found
	Anchor *regexp.Regexp // optional fallback marker inside the region
	MinLen int            // spans shorter than this are rejected as noise
}

// Locate returns the text span covered by the section and whether a
// plausible span was found. A navigation fragment or stray heading can match
// the markers without any table following it; MinLen guards against handing
// such a fragment to the table scanner, which would happily pick garbage
// numbers out of it.
func (s Section) Locate(text string) (string, bool) {
	span, ok := s.locateFrom(text, s.Start)
	if !ok {
		span, ok = s.locateFrom(text, s.Anchor)
	}
	if !ok {
		return "", false
	}
	if len(span) < s.MinLen {
		return "", false
	}
	return span, true
}

func (s Section) locateFrom(text string, start *regexp.Regexp) (string, bool) {
	if start == nil {
		return "", false
	}
	loc := start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	span := text[loc[1]:]
	if s.End != nil {
		if end := s.End.FindStringIndex(span); end != nil {
			span = span[:end[0]]
		}
	}
	return span, true
}
