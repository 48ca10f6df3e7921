package epg

import (
	"bytes"
	"html"
	"strings"
	"time"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
)

// Parser extracts channel and programme blocks from the raw guide
// document. EPG_LITE is too irregular for encoding/xml — attribute order
// varies between emitters, entities are double-encoded in places and
// truncated fragments show up near the end of the file — so this is a
// plain index scanner that silently skips anything it cannot make sense
// of instead of failing the run.
type Parser struct {
	matcher *Matcher
}

func NewParser(matcher *Matcher) *Parser {
	return &Parser{matcher: matcher}
}

// Channels scans every <channel> block and returns those that resolve
// against the known channel set, keyed by feed id, plus the total number
// of channel blocks seen.
func (p *Parser) Channels(doc []byte) (map[string]*models.Channel, int) {
	channels := make(map[string]*models.Channel)
	total := 0

	scanBlocks(doc, "channel", func(attrs, inner []byte) {
		total++

		id, ok := attrValue(attrs, "id")
		if !ok || id == "" {
			return
		}

		rawName, hasName := innerElement(inner, "display-name")
		name := ""
		if hasName {
			name = decodeText(rawName)
		}

		displayName, ok := p.matcher.MatchID(id)
		if !ok {
			// Id table missed; a channel without a display name has
			// nothing left to match on.
			if !hasName {
				return
			}
			displayName, ok = p.matcher.MatchName(name)
			if !ok {
				return
			}
		}
		if name == "" {
			name = displayName
		}

		channels[id] = &models.Channel{
			ID:          id,
			Name:        name,
			DisplayName: displayName,
			Icon:        iconSrc(inner),
		}
	})

	return channels, total
}

// Programs scans every <programme> block, keeps those whose channel is in
// channels and whose start parses and falls inside window, and buckets
// them by UTC date then channel id, preserving feed order. Returns the
// buckets, the total number of programme blocks seen and the kept count.
func (p *Parser) Programs(doc []byte, channels map[string]*models.Channel, window Window) (map[string]map[string][]*models.Program, int, int) {
	programs := make(map[string]map[string][]*models.Program)
	total := 0
	matched := 0

	scanBlocks(doc, "programme", func(attrs, inner []byte) {
		total++

		channelID, ok := attrValue(attrs, "channel")
		if !ok {
			return
		}
		if _, ours := channels[channelID]; !ours {
			return
		}

		startRaw, ok := attrValue(attrs, "start")
		if !ok {
			return
		}
		start, err := ParseEPGTime(startRaw)
		if err != nil {
			return
		}

		stop := start.Add(time.Hour)
		if stopRaw, ok := attrValue(attrs, "stop"); ok {
			if t, err := ParseEPGTime(stopRaw); err == nil {
				stop = t
			}
		}

		if !window.Contains(start) {
			return
		}

		title := ""
		if v, ok := innerElement(inner, "title"); ok {
			title = decodeText(v)
		}
		desc := ""
		if v, ok := innerElement(inner, "desc"); ok {
			desc = truncateRunes(decodeText(v), maxDescRunes)
		}
		category := ""
		if v, ok := innerElement(inner, "category"); ok {
			category = decodeText(v)
		}

		dateKey := start.UTC().Format(dateKeyFmt)
		if programs[dateKey] == nil {
			programs[dateKey] = make(map[string][]*models.Program)
		}
		programs[dateKey][channelID] = append(programs[dateKey][channelID], &models.Program{
			Start:    StartLabel(startRaw),
			StartTS:  start.Unix(),
			StopTS:   stop.Unix(),
			Title:    title,
			Desc:     desc,
			Category: category,
		})
		matched++
	})

	return programs, total, matched
}

// maxDescRunes bounds programme descriptions; counted in runes so
// Cyrillic text gets the same cut as ASCII.
const maxDescRunes = 200

// scanBlocks walks doc calling fn once per well-formed
// <name ...attrs>inner</name> block. Spans with no closing tag are
// skipped, as is any text where "<name" is a prefix of a longer element
// name.
func scanBlocks(doc []byte, name string, fn func(attrs, inner []byte)) {
	open := []byte("<" + name)
	closing := []byte("</" + name + ">")

	pos := 0
	for {
		i := bytes.Index(doc[pos:], open)
		if i < 0 {
			return
		}
		i += pos

		j := i + len(open)
		if j >= len(doc) {
			return
		}
		if c := doc[j]; c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '>' {
			pos = j
			continue
		}

		gt := bytes.IndexByte(doc[j:], '>')
		if gt < 0 {
			return
		}
		gt += j

		end := bytes.Index(doc[gt+1:], closing)
		if end < 0 {
			pos = gt + 1
			continue
		}
		end += gt + 1

		fn(doc[j:gt], doc[gt+1:end])
		pos = end + len(closing)
	}
}

// attrValue looks up name="value" anywhere in a tag's attribute span, so
// attribute order never matters. The name must start an attribute (be
// preceded by whitespace) to avoid matching suffixes of longer names.
func attrValue(attrs []byte, name string) (string, bool) {
	needle := []byte(name + `="`)

	pos := 0
	for {
		i := bytes.Index(attrs[pos:], needle)
		if i < 0 {
			return "", false
		}
		i += pos

		if i > 0 {
			if c := attrs[i-1]; c != ' ' && c != '\t' && c != '\n' && c != '\r' {
				pos = i + len(needle)
				continue
			}
		}

		v := i + len(needle)
		q := bytes.IndexByte(attrs[v:], '"')
		if q < 0 {
			return "", false
		}
		return string(attrs[v : v+q]), true
	}
}

// innerElement returns the raw text of the first <name>...</name> child.
func innerElement(inner []byte, name string) (string, bool) {
	var text string
	found := false
	scanBlocks(inner, name, func(_, body []byte) {
		if !found {
			text = string(body)
			found = true
		}
	})
	return text, found
}

// iconSrc pulls src from the first <icon .../> tag. Icon tags are
// self-closing in EPG_LITE, so block scanning does not apply.
func iconSrc(inner []byte) string {
	i := bytes.Index(inner, []byte("<icon"))
	if i < 0 {
		return ""
	}
	gt := bytes.IndexByte(inner[i:], '>')
	if gt < 0 {
		return ""
	}
	src, _ := attrValue(inner[i+len("<icon"):i+gt], "src")
	return strings.TrimSpace(src)
}

func decodeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(s))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
