package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		nsn    string
		want   SolicitationStatus
	}{
		{
			name: "exact phrase with queried nsn",
			markup: `<p>No Open Solicitations for NSN:` +
				` 5331006185361 were found.</p>`,
			nsn:  "5331006185361",
			want: StatusClosed,
		},
		{
			name: "exact phrase for another nsn",
			markup: `<p>No Open Solicitations for NSN:` +
				` 5331006185361 were found.</p>`,
			nsn:  "5310001234567",
			want: StatusUnknown,
		},
		{
			name:   "solicitation has closed",
			markup: `<span>This Solicitation has Closed.</span>`,
			want:   StatusClosed,
		},
		{
			name:   "quoting has closed",
			markup: `Quoting for this item has closed as of 03/15/2024`,
			want:   StatusClosed,
		},
		{
			name:   "record not found with entity spacing",
			markup: `<td>Record&nbsp;Not Found</td>`,
			want:   StatusClosed,
		},
		{
			name:   "cancelled item",
			markup: `<p>The item has been cancelled by the buyer.</p>`,
			want:   StatusClosed,
		},
		{
			name:   "open quote form",
			markup: `<form><legend>AMSC: <b>G</b></legend></form>`,
			nsn:    "5331006185361",
			want:   StatusUnknown,
		},
		{
			name: "empty page",
			want: StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.markup, tt.nsn))
		})
	}
}

func TestSolicitationStatus_String(t *testing.T) {
	assert.Equal(t, "closed", StatusClosed.String())
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "unknown", SolicitationStatus(42).String())
}
