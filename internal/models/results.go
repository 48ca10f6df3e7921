package models

// LogEntry is one timestamped line of a refresh run, returned to the
// caller as an ordered array once the run finishes.
type LogEntry struct {
	Time  string `json:"time"`
	Msg   string `json:"msg"`
	Level string `json:"level"`
}

// RefreshResult is the outcome of one refresh run. Channels/Programs are
// the matched counts; Log always carries the full step-by-step trace,
// also on failure.
type RefreshResult struct {
	Success  bool       `json:"success"`
	Log      []LogEntry `json:"log"`
	Channels int        `json:"channels"`
	Programs int        `json:"programs"`
}

// QueryResult answers a date/channel query against the stored snapshot.
// NoCache is set when no structurally valid snapshot exists; an empty
// Programs map with Success=true means "valid snapshot, nothing on that
// date/channel". Programs and Updated are always serialized — clients
// index into programs unconditionally, so the key must exist even when
// the map is empty.
type QueryResult struct {
	Success  bool                  `json:"success"`
	NoCache  bool                  `json:"no_cache,omitempty"`
	Channels map[string]*Channel   `json:"channels,omitempty"`
	Programs map[string][]*Program `json:"programs"`
	Dates    []string              `json:"dates,omitempty"`
	Updated  int64                 `json:"updated"`
}

// CacheInfo describes the stored snapshot without deserializing it.
// Age is derived from the file mtime at call time. AgeSeconds has no
// omitempty: zero is a legitimate age for a snapshot written this second.
type CacheInfo struct {
	Exists     bool    `json:"exists"`
	AgeSeconds int64   `json:"age_seconds"`
	AgeHuman   string  `json:"age_human,omitempty"`
	SizeKB     float64 `json:"size_kb,omitempty"`
	Valid      bool    `json:"valid"`
}
