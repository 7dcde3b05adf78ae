package index

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// Shorter records cannot contain all mandatory fields.
	minRecordLen = 100

	solNumberLen   = 13
	stockNumberLen = 13

	// Descriptive field: first descWindowLen chars are the item
	// description, everything from descSuppOffset on is the
	// supplemental code.
	descWindowLen  = 20
	descSuppOffset = 21
)

var (
	// A run of whitespace, a 10-digit purchase request number and a
	// MM/DD/YY return-by date glued right after it.
	prnDateRe = regexp.MustCompile(`\s(\d{10})(\d{2}/\d{2}/\d{2})`)

	// 7-digit zero-padded quantity followed by a 2-letter unit of issue.
	qtyUnitRe = regexp.MustCompile(`(\d{7})([A-Z]{2})`)
)

// Record is one solicitation row extracted from an index file. Records
// are value objects: built once by ParseRecord, never mutated after.
type Record struct {
	SolicitationNumber    string
	StockNumber           string
	PurchaseRequestNumber string

	// ISO 8601 date, or the raw source token when the source date does
	// not parse.
	ReturnByDate string

	Quantity        int
	UnitCode        string
	UnitDescription string

	ItemLabel             string
	AdditionalDescription string
	SupplementalCode      string

	// Full logical record, kept for diagnostics.
	RawLine string
}

// ParseRecord extracts all fields from one logical record. It returns
// soft warnings for anomalies that kept the record (unparseable date,
// unknown unit code) and an error when a mandatory field is missing,
// in which case the record must be dropped.
func ParseRecord(line string) (Record, []string, error) {
	if len(line) < minRecordLen {
		return Record{}, nil, fmt.Errorf("record length %v < %v", len(line),
			minRecordLen)
	}

	rec := Record{
		RawLine:            line,
		SolicitationNumber: strings.TrimSpace(line[:solNumberLen]),
		StockNumber: strings.TrimSpace(
			line[solNumberLen : solNumberLen+stockNumberLen]),
	}
	if rec.SolicitationNumber == "" || rec.StockNumber == "" {
		return Record{}, nil, errors.New(
			"empty solicitation or stock number field")
	}

	tail := line[solNumberLen+stockNumberLen:]
	m := prnDateRe.FindStringSubmatchIndex(tail)
	if m == nil {
		return Record{}, nil, errors.New(
			"purchase request number and return-by date not found")
	}
	rec.PurchaseRequestNumber = tail[m[2]:m[3]]

	var warnings []string
	rawDate := tail[m[4]:m[5]]
	if iso, err := isoReturnBy(rawDate); err != nil {
		rec.ReturnByDate = rawDate
		warnings = append(warnings, fmt.Sprintf(
			"%v: keep raw return-by date %q: %v",
			rec.SolicitationNumber, rawDate, err))
	} else {
		rec.ReturnByDate = iso
	}

	afterDoc, err := splitOnDocMarker(tail[m[1]:])
	if err != nil {
		return Record{}, nil, err
	}

	loc := qtyUnitRe.FindStringSubmatchIndex(afterDoc)
	if loc == nil {
		return Record{}, nil, errors.New("quantity and unit code not found")
	}
	rec.Quantity = parseQuantity(afterDoc[loc[2]:loc[3]])
	rec.UnitCode = afterDoc[loc[4]:loc[5]]
	rec.UnitDescription = UnitDescription(rec.UnitCode)
	if rec.UnitDescription == UnknownUnit {
		warnings = append(warnings, fmt.Sprintf("%v: unknown unit code %q",
			rec.SolicitationNumber, rec.UnitCode))
	}

	rec.parseDescription(afterDoc[loc[1]:])
	return rec, warnings, nil
}

// splitOnDocMarker splits the text following the return-by date on the
// PDF document marker, which must occur exactly once.
func splitOnDocMarker(s string) (string, error) {
	parts := docMarkerRe.Split(s, -1)
	switch len(parts) {
	case 1:
		return "", errors.New("document marker not found")
	case 2:
		return parts[1], nil
	}
	return "", fmt.Errorf("document marker found %v times, want 1",
		len(parts)-1)
}

// parseQuantity strips leading zeros from a 7-digit token. All-zero
// input means a zero quantity.
func parseQuantity(s string) int {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0
	}
	// The token is all digits by construction.
	n, _ := strconv.Atoi(s)
	return n
}

func (self *Record) parseDescription(s string) {
	window := s
	if len(s) >= descSuppOffset {
		window = s[:descWindowLen]
		self.SupplementalCode = strings.TrimSpace(s[descSuppOffset:])
	}
	window = strings.TrimSpace(window)

	if n := strings.IndexByte(window, ','); n >= 0 {
		self.ItemLabel = strings.TrimSpace(window[:n])
		self.AdditionalDescription = strings.TrimSpace(window[n+1:])
	} else {
		self.ItemLabel = window
	}
}

// isoReturnBy converts a MM/DD/YY token to ISO 8601. Two-digit years
// are always in the 2000s: the feed is contemporary procurement data,
// pre-2000 dates do not occur in it.
func isoReturnBy(s string) (string, error) {
	month, _ := strconv.Atoi(s[0:2])
	day, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:8])
	year += 2000

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("invalid calendar date %q", s)
	}
	return t.Format(time.DateOnly), nil
}
