package talk

import (
	"strings"
	"time"
)

// Record is the structured (JSON) shape of a talk as published by the
// schedule API. Unknown fields are ignored by the decoder.
type Record struct {
	TalkTitle       *string         `json:"talkTitle"`
	TalkDescription *string         `json:"talkDescription"`
	Tags            []TagRecord     `json:"tags"`
	RoomName        string          `json:"roomName"`
	FromDate        string          `json:"fromDate"`
	ToDate          string          `json:"toDate"`
	SessionTypeName *string         `json:"sessionTypeName"`
	Speakers        []SpeakerRecord `json:"speakers"`
	Timezone        string          `json:"timezone"`
}

// TagRecord is a tag attached to a talk record.
type TagRecord struct {
	Name string `json:"name"`
}

// SpeakerRecord is a speaker attached to a talk record.
type SpeakerRecord struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Company   *string `json:"company"`
}

// FromRecord validates a structured record and builds a Talk.
// roomName, fromDate, toDate and timezone are required.
func FromRecord(r Record) (*Talk, error) {
	room := strings.TrimSpace(r.RoomName)
	if room == "" {
		return nil, &ValidationError{Field: "roomName", Err: ErrMissingField}
	}

	zone := strings.TrimSpace(r.Timezone)
	if zone == "" {
		return nil, &ValidationError{Field: "timezone", Err: ErrMissingField}
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &TimezoneError{Zone: zone, Err: err}
	}

	start, err := parseInstant("fromDate", r.FromDate)
	if err != nil {
		return nil, err
	}
	end, err := parseInstant("toDate", r.ToDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, &ValidationError{Field: "toDate", Err: ErrEndBeforeStart}
	}

	t := &Talk{
		Title:       optional(r.TalkTitle),
		Description: optional(r.TalkDescription),
		Room:        room,
		Start:       start.In(loc),
		End:         end.In(loc),
		SessionType: optional(r.SessionTypeName),
		Location:    loc,
	}

	for _, tag := range r.Tags {
		if name := strings.TrimSpace(tag.Name); name != "" {
			t.Tags = append(t.Tags, name)
		}
	}
	for _, s := range r.Speakers {
		t.Speakers = append(t.Speakers, Speaker{
			ID:        s.ID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Company:   optional(s.Company),
		})
	}

	return t, nil
}

// FromLine parses a line-format record: "title, timestamp". Every other field
// takes its default; the talk starts and ends at the timestamp and lives in
// the timestamp's own offset.
func FromLine(line string) (*Talk, error) {
	parts := strings.Split(line, ", ")
	if len(parts) < 2 {
		return nil, &ValidationError{Field: "line", Err: ErrMalformedLine}
	}

	at, err := parseInstant("timestamp", parts[1])
	if err != nil {
		return nil, err
	}

	return &Talk{
		Title:    optional(&parts[0]),
		Start:    at,
		End:      at,
		Location: at.Location(),
	}, nil
}

func parseInstant(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: field, Err: ErrMissingField}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Err: ErrInvalidTime}
	}
	return t, nil
}

// optional treats empty strings like absent values.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
