package models

// Program is a single scheduled broadcast. Start keeps the HH:MM label
// exactly as printed in the feed so it matches the official schedule;
// StartTS/StopTS are Unix seconds in UTC.
type Program struct {
	Start    string `json:"start"`
	StartTS  int64  `json:"start_ts"`
	StopTS   int64  `json:"stop_ts"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
}
