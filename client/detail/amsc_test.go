package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAMSC(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name: "legend with bolded code",
			markup: `<fieldset><legend>NSN: 5331-00-618-5361 AMSC:` +
				` <strong> T&nbsp; </strong></legend></fieldset>`,
			want: "T",
		},
		{
			name: "legend wins over page text",
			markup: `<p>related item AMSC: Z</p>` +
				`<fieldset><legend>AMSC: <b>T</b></legend></fieldset>`,
			want: "T",
		},
		{
			name: "legend without code falls through",
			markup: `<fieldset><legend>AMSC: <strong>pending</strong>` +
				`</legend></fieldset><p>AMSC: G</p>`,
			want: "G",
		},
		{
			name:   "code adjacent to label",
			markup: `<div>NSN: 5331006185361 AMSC: G Nomenclature: WIDGET</div>`,
			want:   "G",
		},
		{
			name:   "non-breaking space after label",
			markup: `<span>AMSC:&nbsp;G</span> quoting open`,
			want:   "G",
		},
		{
			name: "code with trailing punctuation after header labels",
			markup: `<p>NSN: 5310-00-123-4567 Nomenclature: NUT,HEX` +
				` AMSC: H, sole source</p>`,
			want: "H",
		},
		{
			name:   "label without colon",
			markup: `<td>AMSC T</td>`,
			want:   "T",
		},
		{
			name:   "lower case code normalized",
			markup: `<b>AMSC:t</b>`,
			want:   "T",
		},
		{
			name:   "no code on page",
			markup: `<p>quoting is open, submit via portal</p>`,
		},
		{
			name:   "label with numeric token",
			markup: `<p>AMSC: 9</p>`,
		},
		{
			name:   "empty page",
			markup: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAMSC(tt.markup)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != "", ok)
		})
	}
}

func TestValidCode(t *testing.T) {
	tests := []struct {
		token  string
		want   string
		wantOk bool
	}{
		{token: "G", want: "G", wantOk: true},
		{token: " t ", want: "T", wantOk: true},
		{token: ""},
		{token: "GH"},
		{token: "9"},
		{token: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := validCode(tt.token)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText(
		"<p>AMSC:&nbsp;\n  <strong>T</strong>&amp;</p>  ")
	assert.Equal(t, "AMSC: T &", got)
}

func TestPage_caching(t *testing.T) {
	p := newPage("<p>AMSC: G</p>")
	assert.Same(t, p.Document(), p.Document())
	assert.Equal(t, p.Text(), p.Text())
}
