package schedule

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/javiermolinar/devoxx-schedule/internal/talk"
)

// Format identifies a raw schedule encoding.
type Format string

const (
	// FormatStructured is a JSON array of full talk records, one document per day.
	FormatStructured Format = "structured"
	// FormatLine is "title, timestamp" per line; a degraded bootstrap format.
	FormatLine Format = "line"
)

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatStructured, "json", "":
		return FormatStructured, nil
	case FormatLine, "text", "txt":
		return FormatLine, nil
	default:
		return "", fmt.Errorf("unknown schedule format %q (want %q or %q)", s, FormatStructured, FormatLine)
	}
}

// Extension returns the file extension used for day files in this format.
func (f Format) Extension() string {
	if f == FormatLine {
		return ".txt"
	}
	return ".json"
}

// Parse decodes a day document in the given format.
func Parse(f Format, data []byte) ([]*talk.Talk, error) {
	if f == FormatLine {
		return ParseLines(data)
	}
	return ParseStructured(data)
}

// ParseStructured decodes a JSON array of talk records. Comments and
// trailing commas are tolerated. The first invalid record fails the whole
// document.
func ParseStructured(data []byte) ([]*talk.Talk, error) {
	var records []talk.Record
	if err := json.Unmarshal(jsonc.ToJSON(data), &records); err != nil {
		return nil, fmt.Errorf("decoding schedule: %w", err)
	}

	talks := make([]*talk.Talk, 0, len(records))
	for i, r := range records {
		t, err := talk.FromRecord(r)
		if err != nil {
			return nil, &talk.RecordError{Index: i, Err: err}
		}
		talks = append(talks, t)
	}
	sortByStart(talks)
	return talks, nil
}

// ParseLines decodes the line format. Blank lines are skipped; any other
// malformed line fails the whole document.
func ParseLines(data []byte) ([]*talk.Talk, error) {
	var talks []*talk.Talk
	scanner := bufio.NewScanner(bytes.NewReader(data))
	idx := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := talk.FromLine(line)
		if err != nil {
			return nil, &talk.RecordError{Index: idx, Err: err}
		}
		talks = append(talks, t)
		idx++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	sortByStart(talks)
	return talks, nil
}

// sortByStart orders talks by start instant, keeping source order for ties.
func sortByStart(talks []*talk.Talk) {
	sort.SliceStable(talks, func(i, j int) bool {
		return talks[i].Start.Before(talks[j].Start)
	})
}
