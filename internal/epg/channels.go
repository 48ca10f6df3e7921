package epg

import "strings"

// channelsByID maps EPG_LITE channel ids to canonical display names.
// Ids are authoritative; this table is tried before any name matching.
var channelsByID = map[string]string{
	"piaty-int":      "5 International",
	"domashny-int":   "Домашний International",
	"izvestia":       "Известия",
	"ntv-mir":        "НТВ Мир",
	"ntv-pravo":      "НТВ Право",
	"ntv-serial":     "НТВ Сериал",
	"ntv-style":      "НТВ Стиль",
	"perec-int":      "Перец International",
	"rentv-int":      "РЕН International",
	"rtr-planeta-eu": "РТР Планета",
	"rossia-24":      "Россия 24",
	"sts-int":        "СТС International",
	"tnt-int-eu":     "ТНТ International",
	"tnt-music":      "ТНТ Music",
}

type nameRule struct {
	substr string
	name   string
}

// nameRules is the fallback for when a feed id changes: a case-insensitive
// substring scan of the display name. The slice order is load-bearing —
// the first hit wins, so more specific substrings come first.
var nameRules = []nameRule{
	{"domashniy international", "Домашний International"},
	{"domashniy", "Домашний International"},
	{"domashny", "Домашний International"},
	{"izvesti", "Известия"},
	{"ntv mir", "НТВ Мир"},
	{"ntv pravo", "НТВ Право"},
	{"ntv serial", "НТВ Сериал"},
	{"ntv style", "НТВ Стиль"},
	{"perets international", "Перец International"},
	{"perec", "Перец International"},
	{"ren tv", "РЕН International"},
	{"rtr planeta", "РТР Планета"},
	{"rossiya 24", "Россия 24"},
	{"rossia 24", "Россия 24"},
	{"sts international", "СТС International"},
	{"tnt int", "ТНТ International"},
	{"tnt music", "ТНТ Music"},
}

// Matcher resolves feed channels against the fixed channel set, by exact
// id first and by display-name substring second.
type Matcher struct {
	byID  map[string]string
	rules []nameRule
}

func NewMatcher() *Matcher {
	return &Matcher{byID: channelsByID, rules: nameRules}
}

// MatchID resolves a feed channel id to its canonical display name.
func (m *Matcher) MatchID(id string) (string, bool) {
	name, ok := m.byID[id]
	return name, ok
}

// MatchName resolves a decoded display name by ordered substring scan.
func (m *Matcher) MatchName(displayName string) (string, bool) {
	lower := strings.ToLower(displayName)
	for _, r := range m.rules {
		if strings.Contains(lower, r.substr) {
			return r.name, true
		}
	}
	return "", false
}
