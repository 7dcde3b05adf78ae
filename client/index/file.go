package index

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	// Every record in a DIBBS RFQ index file starts with this agency prefix.
	recordPrefix = "SPE"

	// A record-start line carries at least a full solicitation number.
	minStartLen = 13

	// Minimum length of a line selected by the last fallback detector.
	minFallbackLen = 50
)

var docMarkerRe = regexp.MustCompile(`(?i)\.pdf`)

// Markers the last fallback detector looks for. The index layout has
// drifted before, so a line mentioning any of these is still worth a
// parse attempt.
var structuralMarkers = []string{"/", recordPrefix, "DLA", "DSCC", "DSCR"}

// Skip describes a logical record the parser had to drop, with a
// human-readable reason.
type Skip struct {
	Line   string
	Reason string
}

// Result holds everything ParseFile could make of an index file.
// Records are the rows parsed successfully. Skips are records dropped
// for a missing mandatory field. Warnings are soft anomalies (raw
// return-by date kept, unknown unit code) that did not drop a record.
type Result struct {
	Records  []Record
	Skips    []Skip
	Warnings []string
}

// ParseFile reads a DIBBS RFQ index file and extracts solicitation
// records from it. Malformed records are reported in Result.Skips and
// never abort the rest of the file. The error return is for an
// unreadable input only.
func ParseFile(r io.Reader) (*Result, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, line := range assembleRecords(lines) {
		rec, warnings, err := ParseRecord(line)
		if err != nil {
			res.Skips = append(res.Skips, Skip{Line: line, Reason: err.Error()})
			continue
		}
		res.Records = append(res.Records, rec)
		res.Warnings = append(res.Warnings, warnings...)
	}
	return res, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index file: %w", err)
	}
	return lines, nil
}

// assembleRecords glues physical lines into logical records. A record
// normally spans two lines: a line starting with the agency prefix and
// a continuation line. Single-line records happen too, when the next
// line already starts a new record.
func assembleRecords(lines []string) []string {
	var records []string
	for i := 0; i < len(lines); i++ {
		if !startsRecord(lines[i]) {
			continue
		}
		if i+1 < len(lines) && !startsRecord(lines[i+1]) {
			records = append(records, lines[i]+lines[i+1])
			i++
			continue
		}
		records = append(records, lines[i])
	}
	if len(records) > 0 {
		return records
	}
	return fallbackRecords(lines)
}

func startsRecord(line string) bool {
	return strings.HasPrefix(line, recordPrefix) && len(line) >= minStartLen
}

// fallbackRecords kicks in when the primary detector saw nothing.
// First take lines mentioning a PDF document, then any long line with
// a structural marker in it. Progressively looser on purpose: an index
// file with zero records is almost always a layout drift, not an
// empty day.
func fallbackRecords(lines []string) []string {
	var records []string
	for _, line := range lines {
		if docMarkerRe.MatchString(line) {
			records = append(records, line)
		}
	}
	if len(records) > 0 {
		return records
	}

	for _, line := range lines {
		if len(line) > minFallbackLen && hasStructuralMarker(line) {
			records = append(records, line)
		}
	}
	return records
}

func hasStructuralMarker(line string) bool {
	for _, marker := range structuralMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
