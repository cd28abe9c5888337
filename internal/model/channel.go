package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CapabilityHD is the capability tag carried by high-definition channels
const CapabilityHD = "HD"

// ChannelID identifies a channel. The directory API sends ids as JSON numbers
// in some payloads and as strings in others, so both decode to the same value.
type ChannelID string

// UnmarshalJSON accepts a JSON string or number
func (id *ChannelID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ChannelID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("channel id must be a string or number: %w", err)
	}
	*id = ChannelID(n.String())
	return nil
}

// Channel represents a broadcast channel as returned by the directory API
type Channel struct {
	ID              ChannelID `json:"id"`
	Title           string    `json:"title"`
	StbNumber       string    `json:"stbNumber"`
	ImageURL        string    `json:"imageUrl"`
	Category        string    `json:"category"`
	Language        string    `json:"language"`
	Filters         []string  `json:"filters"`
	CurrentSchedule []Program `json:"currentSchedule"`
}

// HasCapability reports whether the channel carries the given capability tag
func (c Channel) HasCapability(tag string) bool {
	for _, f := range c.Filters {
		if strings.EqualFold(f, tag) {
			return true
		}
	}
	return false
}

// IsHD reports whether the channel is tagged as high definition
func (c Channel) IsHD() bool {
	return c.HasCapability(CapabilityHD)
}

// OnNow returns the program currently airing
func (c Channel) OnNow() (Program, bool) {
	if len(c.CurrentSchedule) == 0 {
		return Program{}, false
	}
	return c.CurrentSchedule[0], true
}

// Upcoming returns at most n programs following the one on now
func (c Channel) Upcoming(n int) []Program {
	if n <= 0 || len(c.CurrentSchedule) < 2 {
		return nil
	}
	rest := c.CurrentSchedule[1:]
	if len(rest) > n {
		rest = rest[:n]
	}
	return rest
}

// Program represents a scheduled broadcast item
type Program struct {
	Title    string    `json:"title"`
	Datetime time.Time `json:"datetime"`
}

// programTimeLayouts are tried in order when decoding a program start time.
// Layouts without a zone are read as local time.
var programTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.0",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON decodes a program, tolerating the datetime formats the API uses.
// Datetime may be a timestamp string or a number of Unix milliseconds; anything
// unparseable leaves Datetime zero instead of failing the whole payload.
func (p *Program) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title    string          `json:"title"`
		Datetime json.RawMessage `json:"datetime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Title = raw.Title
	p.Datetime = parseProgramDatetime(raw.Datetime)
	return nil
}

func parseProgramDatetime(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return ParseProgramTime(text)
	}

	var millis json.Number
	if err := json.Unmarshal(raw, &millis); err != nil {
		return time.Time{}
	}
	if n, err := millis.Int64(); err == nil {
		return time.UnixMilli(n)
	}
	if f, err := millis.Float64(); err == nil {
		return time.UnixMilli(int64(f))
	}
	return time.Time{}
}

// ParseProgramTime parses a schedule timestamp, returning the zero time if no layout matches
func ParseProgramTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range programTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
