package client

import (
	"fmt"
	"time"
)

const (
	// Daily RFQ index files, one per business day.
	indexArchivePath = "Downloads/RFQ/Archive"

	// NSN search page, renders open solicitations for one stock number.
	rfqNsnPath = "RFQ/RFQNsn.aspx"
)

// IndexFileName returns the portal's file name for the index file of
// day, e.g. in240315.txt for 2024-03-15.
func IndexFileName(day time.Time) string {
	return fmt.Sprintf("in%s.txt", day.Format("060102"))
}
