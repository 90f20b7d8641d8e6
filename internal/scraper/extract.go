package scraper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawFields holds the untranslated, unparsed strings pulled from a profile
// page. Extraction is purely structural; parsing and translation happen in
// a later stage so each can fail independently.
type RawFields struct {
	Name            string
	ShirtNumberText string

	BirthText       string
	BirthPlace      string
	HeightText      string
	WeightText      string
	NationalityText string
	PositionText    string
	FootText        string
	MarketValueText string
	ContractText    string
	AgentText       string

	ClubText string
	ImageURL string

	NaturalPositionText string
	OtherPositionTexts  []string
	FieldX              *float64
	FieldY              *float64
}

// fieldRule matches an info-table label against one of the record fields.
// Rules are evaluated in order and the first match wins, so narrower labels
// (place of birth) must precede the broader ones they contain (birth).
type fieldRule struct {
	assign   func(r *RawFields, value string)
	keywords []string
}

var fieldRules = []fieldRule{
	{
		assign:   func(r *RawFields, v string) { r.BirthPlace = v },
		keywords: []string{"place of birth", "luogo di nascita", "lugar de nac", "geburtsort", "lieu de naissance", "local de nascimento"},
	},
	{
		assign:   func(r *RawFields, v string) { r.BirthText = v },
		keywords: []string{"birth", "nascita", "nato", "nacim", "nacido", "geburt", "geboren", "naissance", "nascimento", "nascido", "età", "edad"},
	},
	{
		assign:   func(r *RawFields, v string) { r.HeightText = v },
		keywords: []string{"height", "altezza", "altura", "größe", "taille"},
	},
	{
		assign:   func(r *RawFields, v string) { r.WeightText = v },
		keywords: []string{"weight", "peso", "gewicht", "poids"},
	},
	{
		assign:   func(r *RawFields, v string) { r.NationalityText = v },
		keywords: []string{"citizenship", "nazionalità", "nacionalidad", "nationalität", "nationalité", "nacionalidade"},
	},
	{
		assign:   func(r *RawFields, v string) { r.PositionText = v },
		keywords: []string{"position", "ruolo", "posizione", "posición", "posição"},
	},
	{
		assign:   func(r *RawFields, v string) { r.FootText = v },
		keywords: []string{"foot", "piede", "pie", "fuß", "pied", "pé"},
	},
	{
		assign:   func(r *RawFields, v string) { r.MarketValueText = v },
		keywords: []string{"market value", "valore di mercato", "valor de mercado", "marktwert", "valeur marchande"},
	},
	{
		assign:   func(r *RawFields, v string) { r.ContractText = v },
		keywords: []string{"contract", "contratto", "contrato", "vertrag", "scadenza", "expires"},
	},
	{
		assign:   func(r *RawFields, v string) { r.AgentText = v },
		keywords: []string{"agent", "agente", "berater", "agência", "agencia"},
	},
}

// naturalPositionLabels and otherPositionLabels match the dt headings of the
// detail-position panel across supported languages.
var naturalPositionLabels = []string{
	"main position", "ruolo naturale", "posición principal", "hauptposition",
	"position principale", "posição principal",
}

var otherPositionLabels = []string{
	"other position", "altro ruolo", "altri ruoli", "otra posición", "otras posiciones",
	"weitere position", "nebenposition", "autre position", "autres positions",
	"outra posição", "outras posições",
}

// Extract walks a parsed profile page and collects every field it can find.
// Missing nodes leave the corresponding RawFields entries empty; extraction
// never fails once the document has been parsed.
func Extract(doc *goquery.Document, pageURL *url.URL) RawFields {
	var raw RawFields

	extractHeader(doc, pageURL, &raw)
	extractInfoTable(doc, &raw)
	extractMarketValue(doc, &raw)
	extractDetailPosition(doc, &raw)

	return raw
}

func extractHeader(doc *goquery.Document, pageURL *url.URL, raw *RawFields) {
	headline := cleanText(doc.Find("h1.data-header__headline-wrapper").First().Text())
	if n, ok := ParseShirtNumber(headline); ok {
		raw.ShirtNumberText = "#" + strconv.Itoa(n)
		headline = cleanText(shirtNumberRe.ReplaceAllString(headline, ""))
	}
	raw.Name = headline

	if raw.ShirtNumberText == "" {
		raw.ShirtNumberText = cleanText(doc.Find("span.data-header__shirt-number").First().Text())
	}

	club := doc.Find("span.data-header__club").First()
	if link := club.Find("a").First(); link.Length() > 0 {
		raw.ClubText = cleanText(link.Text())
	} else {
		raw.ClubText = cleanText(club.Text())
	}

	if src, ok := doc.Find("img.data-header__profile-image").First().Attr("src"); ok {
		raw.ImageURL = absolutizeURL(src, pageURL)
	}
}

func extractInfoTable(doc *goquery.Document, raw *RawFields) {
	table := doc.Find("div.info-table").First()
	if table.Length() == 0 {
		return
	}

	assigned := make(map[int]bool)
	table.Find("span.info-table__content--regular").Each(func(_ int, label *goquery.Selection) {
		value := label.NextFiltered("span.info-table__content--bold")
		if value.Length() == 0 {
			return
		}
		labelText := strings.ToLower(cleanText(label.Text()))
		for i, rule := range fieldRules {
			if assigned[i] || !matchesAny(labelText, rule.keywords) {
				continue
			}
			rule.assign(raw, infoValueText(value))
			assigned[i] = true
			break
		}
	})
}

// infoValueText prefers the flag image's title (then alt) over the text
// content, so nationality cells with flag icons resolve to the country
// name even when the cell text is empty.
func infoValueText(value *goquery.Selection) string {
	if img := value.Find("img").First(); img.Length() > 0 {
		if title, ok := img.Attr("title"); ok && cleanText(title) != "" {
			return cleanText(title)
		}
		if alt, ok := img.Attr("alt"); ok && cleanText(alt) != "" {
			return cleanText(alt)
		}
	}
	return cleanText(value.Text())
}

func extractMarketValue(doc *goquery.Document, raw *RawFields) {
	current := doc.Find("div.tm-player-market-value-development__current-value").First()
	if current.Length() == 0 {
		current = doc.Find("a.data-header__market-value-wrapper").First()
	}
	if current.Length() == 0 {
		return
	}
	text := cleanText(current.Text())
	if raw.MarketValueText == "" {
		raw.MarketValueText = text
	} else {
		// The header block also carries the last-updated stamp.
		raw.MarketValueText += " " + text
	}
}

func extractDetailPosition(doc *goquery.Document, raw *RawFields) {
	panel := doc.Find("div.detail-position").First()
	if panel.Length() == 0 {
		return
	}

	panel.Find("dt").Each(func(_ int, dt *goquery.Selection) {
		heading := strings.ToLower(cleanText(dt.Text()))
		switch {
		case matchesAny(heading, naturalPositionLabels):
			raw.NaturalPositionText = cleanText(dt.NextFiltered("dd").Text())
		case matchesAny(heading, otherPositionLabels):
			dt.NextUntil("dt").Filter("dd").Each(func(_ int, dd *goquery.Selection) {
				if text := cleanText(dd.Text()); text != "" {
					raw.OtherPositionTexts = append(raw.OtherPositionTexts, text)
				}
			})
		}
	})

	panel.Find("svg circle").EachWithBreak(func(_ int, circle *goquery.Selection) bool {
		class, _ := circle.Attr("class")
		if !strings.Contains(class, "position") {
			return true
		}
		cx, okX := parseFloatAttr(circle, "cx")
		cy, okY := parseFloatAttr(circle, "cy")
		if okX && okY {
			raw.FieldX = &cx
			raw.FieldY = &cy
			return false
		}
		return true
	})
}

func parseFloatAttr(s *goquery.Selection, name string) (float64, bool) {
	attr, ok := s.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(attr), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// absolutizeURL resolves protocol-relative and path-relative image URLs
// against the page URL.
func absolutizeURL(src string, pageURL *url.URL) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return src
	}
	if parsed.IsAbs() {
		return src
	}
	if pageURL == nil {
		if strings.HasPrefix(src, "//") {
			return "https:" + src
		}
		return src
	}
	return pageURL.ResolveReference(parsed).String()
}
