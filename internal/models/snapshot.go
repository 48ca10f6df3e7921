package models

// Snapshot is one complete build of the guide. Programs are keyed by UTC
// date ("2006-01-02"), then by channel id, in feed emission order.
// A refresh replaces the whole snapshot; there is no incremental merge.
type Snapshot struct {
	Channels map[string]*Channel              `json:"channels"`
	Programs map[string]map[string][]*Program `json:"programs"`
	Updated  int64                            `json:"updated"`
}
