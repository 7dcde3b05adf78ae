package detail

import (
	"fmt"
	"strings"
)

// SolicitationStatus classifies a detail page as confirmed closed or
// undetermined. The pages carry no reliable "open" phrase, so there is
// no positive-open value: absence of a closed phrase means unknown.
type SolicitationStatus int

const (
	StatusUnknown SolicitationStatus = iota
	StatusClosed
)

func (self SolicitationStatus) String() string {
	if self == StatusClosed {
		return "closed"
	}
	return "unknown"
}

// Phrases the portal renders when nothing is open for the queried
// item. Matched case-insensitively against normalized page text.
var closedPhrases = []string{
	"solicitation has closed",
	"quoting for this item has closed",
	"record not found",
	"item has been cancelled",
}

// Status classifies one detail page. The exact phrase embedding the
// queried NSN takes precedence over the generic phrase list; matching
// any generic phrase is sufficient.
func Status(markup, nsn string) SolicitationStatus {
	text := strings.ToLower(newPage(markup).Text())

	if nsn != "" {
		exact := strings.ToLower(fmt.Sprintf(
			"no open solicitations for nsn: %v", nsn))
		if strings.Contains(text, exact) {
			return StatusClosed
		}
	}

	for _, phrase := range closedPhrases {
		if strings.Contains(text, phrase) {
			return StatusClosed
		}
	}
	return StatusUnknown
}
