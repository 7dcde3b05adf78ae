// Package detail extracts fields from DIBBS solicitation detail pages.
// The pages are semi-structured and their markup has drifted over the
// years, so every extractor is an ordered list of strategies, strict
// and DOM-anchored first, loose text patterns last.
package detail

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

const amscLabel = "AMSC:"

var (
	// Label, optional whitespace, exactly one uppercase letter standing
	// alone before the next whitespace.
	amscAdjacentRe = regexp.MustCompile(`AMSC:\s*([A-Z])(?:\s|$)`)

	// Stricter variant: the label must follow the NSN and nomenclature
	// labels of the solicitation header, which rules out stray AMSC
	// mentions elsewhere on the page.
	amscCompoundRe = regexp.MustCompile(
		`NSN:.*?Nomenclature:.*?AMSC:\s*([A-Za-z])\b`)

	// Most permissive pattern, tried last.
	amscLooseRe = regexp.MustCompile(`AMSC[:\s]*([A-Za-z])`)
)

// amscStrategies are tried in order, first valid match wins. Keep the
// DOM-anchored strategy first: the loose patterns exist for markup
// drift only and must never shadow it.
var amscStrategies = []func(p *page) string{
	amscFromLegend,
	amscAdjacent,
	amscCompound,
	amscLoose,
}

// ExtractAMSC finds the single-letter acquisition method suffix code
// on a solicitation detail page. The second return value reports
// whether a code was found; a page without one is an expected outcome,
// not an error.
func ExtractAMSC(markup string) (string, bool) {
	p := newPage(markup)
	for _, strategy := range amscStrategies {
		if code, ok := validCode(strategy(p)); ok {
			return code, true
		}
	}
	return "", false
}

// validCode accepts exactly one alphabetic character, normalized to
// upper case. Anything else makes the cascade try the next strategy.
func validCode(s string) (string, bool) {
	s = trimToken(s)
	runes := []rune(s)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return "", false
	}
	return strings.ToUpper(s), true
}

func trimToken(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// amscFromLegend searches fieldset legends containing the AMSC label
// for a bolded single-character code. The most reliable layout
// historically.
func amscFromLegend(p *page) string {
	doc := p.Document()
	if doc == nil {
		return ""
	}

	var code string
	doc.Find("legend").EachWithBreak(
		func(_ int, legend *goquery.Selection) bool {
			if !strings.Contains(legend.Text(), amscLabel) {
				return true
			}
			legend.Find("strong, b").EachWithBreak(
				func(_ int, tag *goquery.Selection) bool {
					if s := trimToken(tag.Text()); len([]rune(s)) == 1 {
						code = s
						return false
					}
					return true
				})
			return code == ""
		})
	return code
}

func amscAdjacent(p *page) string {
	return firstSubmatch(amscAdjacentRe, p.Text())
}

func amscCompound(p *page) string {
	return firstSubmatch(amscCompoundRe, p.Text())
}

func amscLoose(p *page) string {
	return firstSubmatch(amscLooseRe, p.Text())
}

func firstSubmatch(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// page wraps one fetched document and caches its two views: the parsed
// DOM for structural strategies and the normalized text for pattern
// strategies. Local to a single extraction call, so no locking.
type page struct {
	markup string

	text     string
	textOnce bool

	doc     *goquery.Document
	docOnce bool
}

func newPage(markup string) *page {
	return &page{markup: markup}
}

func (self *page) Document() *goquery.Document {
	if !self.docOnce {
		self.docOnce = true
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(self.markup))
		if err == nil {
			self.doc = doc
		}
	}
	return self.doc
}

func (self *page) Text() string {
	if !self.textOnce {
		self.textOnce = true
		self.text = normalizeText(self.markup)
	}
	return self.text
}

var (
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// normalizeText strips tags, decodes entities and collapses whitespace
// runs. Entities are decoded after tag removal, so an encoded angle
// bracket cannot form a tag. Production pages interleave &nbsp;
// between the label and the code, which plain substring search over
// raw markup would miss.
func normalizeText(markup string) string {
	s := tagRe.ReplaceAllString(markup, " ")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
