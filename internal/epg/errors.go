package epg

import "fmt"

// FetchError covers the transfer tier: network failure, non-200 status or
// an empty body. The raw feed on disk failing to read counts as a fetch
// failure too.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.Source, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// DecompressError covers gzip failures on a successfully transferred body.
type DecompressError struct {
	Err error
}

func (e *DecompressError) Error() string { return fmt.Sprintf("gzip decompress: %v", e.Err) }
func (e *DecompressError) Unwrap() error { return e.Err }

// ParseError is returned by ParseEPGTime when the input has no 14-digit
// timestamp prefix. Callers drop the affected item and carry on.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string { return fmt.Sprintf("unparseable epg time %q", e.Input) }

// ZeroChannelsError aborts a build in which none of the feed's channels
// matched the known set. Seen is the number of channel blocks scanned.
type ZeroChannelsError struct {
	Seen int
}

func (e *ZeroChannelsError) Error() string {
	return fmt.Sprintf("no known channels matched (%d channels in feed)", e.Seen)
}

// PersistError covers snapshot write failures, kept distinct from the
// fetch/parse tiers so the caller can tell a full disk from a bad feed.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string { return fmt.Sprintf("persist %s: %v", e.Path, e.Err) }
func (e *PersistError) Unwrap() error { return e.Err }
