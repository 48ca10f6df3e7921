package epg

import (
	"time"

	"github.com/Kopaev/Turksat-42e-RUS/internal/models"
)

// Window is the closed date range a snapshot covers: start of yesterday
// through the last second of the seventh day ahead, both UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// BuildWindow computes the snapshot window for a given build instant.
func BuildWindow(now time.Time) Window {
	u := now.UTC()

	y := u.Add(-24 * time.Hour)
	start := time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)

	e := u.Add(7 * 24 * time.Hour)
	end := time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, 0, time.UTC)

	return Window{Start: start, End: end}
}

// Contains reports whether t falls inside the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// BuildStats carries the scan counters a refresh reports back to the
// caller: how much the feed held versus how much survived filtering.
type BuildStats struct {
	ChannelsSeen    int
	ChannelsMatched int
	ProgramsSeen    int
	ProgramsMatched int
}

// Builder assembles one Snapshot out of a raw guide document. The clock
// is injectable so window-boundary behavior is testable.
type Builder struct {
	parser *Parser
	now    func() time.Time
}

func NewBuilder(parser *Parser) *Builder {
	return &Builder{parser: parser, now: time.Now}
}

// Build parses doc and assembles the snapshot for the current window.
// A feed in which no channel resolves is treated as a broken feed (or a
// stale channel table), not as an empty-but-valid guide: the build fails
// with ZeroChannelsError and no snapshot is produced.
func (b *Builder) Build(doc []byte) (*models.Snapshot, *BuildStats, error) {
	stats := &BuildStats{}

	channels, seen := b.parser.Channels(doc)
	stats.ChannelsSeen = seen
	stats.ChannelsMatched = len(channels)
	if len(channels) == 0 {
		return nil, stats, &ZeroChannelsError{Seen: seen}
	}

	now := b.now()
	window := BuildWindow(now)

	programs, total, matched := b.parser.Programs(doc, channels, window)
	stats.ProgramsSeen = total
	stats.ProgramsMatched = matched

	return &models.Snapshot{
		Channels: channels,
		Programs: programs,
		Updated:  now.Unix(),
	}, stats, nil
}
