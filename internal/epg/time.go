package epg

import (
	"regexp"
	"strings"
	"time"
)

// epgTimeRe matches the XMLTV timestamp shape used by EPG_LITE:
// 14 digits, optionally followed by whitespace and a signed 4-digit
// UTC offset ("20251119110000 +0300"). Trailing junk is ignored.
var epgTimeRe = regexp.MustCompile(`^(\d{14})\s*([+-]\d{4})?`)

const (
	layoutOffset = "20060102150405 -0700"
	layoutPlain  = "20060102150405"
	dateKeyFmt   = "2006-01-02"
)

// ParseEPGTime converts a feed timestamp into an absolute UTC instant.
// A missing offset defaults to +0000. When the offset is present but the
// combined form does not parse, the 14 digits are retried as plain UTC —
// feeds are inconsistent about offsets and dropping the entry over a
// malformed offset would lose an otherwise good programme.
//
// Calendar-invalid digits (month 13, hour 27) are rejected rather than
// rolled over into an adjacent date: a rolled-over instant would land
// the programme in the wrong day bucket, which is worse than dropping it.
func ParseEPGTime(raw string) (time.Time, error) {
	m := epgTimeRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return time.Time{}, &ParseError{Input: raw}
	}

	digits := m[1]
	offset := m[2]
	if offset == "" {
		offset = "+0000"
	}

	if t, err := time.Parse(layoutOffset, digits+" "+offset); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(layoutPlain, digits, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Input: raw}
	}
	return t, nil
}

// StartLabel extracts the literal HH:MM from a feed timestamp with no
// time-zone conversion, so the label matches the officially published
// schedule. Returns "??:??" when the shape is not recognizable.
func StartLabel(raw string) string {
	m := epgTimeRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "??:??"
	}
	return m[1][8:10] + ":" + m[1][10:12]
}
