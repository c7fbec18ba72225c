// services/parser_service.go
package services

import (
	"regexp"
	"strings"

	"nutrifacts/models"
	"nutrifacts/utils"
)

// PhraseParser extracts an {amount, unit, ingredient} triplet from a free
// text line. Fields the grammar cannot recognize come back empty; the parser
// never fails outright.
type PhraseParser interface {
	Parse(text string) models.ParsedTriplet
}

var (
	plainNumberRe = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
	fractionTokRe = regexp.MustCompile(`^\d+/\d+$`)
	gluedAmountRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)([a-zA-Z]+)$`)
)

// ParserService is a grammar over a closed unit vocabulary, one instance per
// locale: a leading amount (number, word number, fraction or mixed number,
// possibly glued to its unit as in "20gr"), an optional unit, an optional
// filler word, then the ingredient name. Informal idioms ("to taste") yield
// an absent amount and unit rather than an error.
type ParserService struct {
	loc  *utils.Locale
	conv *utils.Converter
}

func NewParserService(loc *utils.Locale) *ParserService {
	return &ParserService{loc: loc, conv: utils.NewConverter(loc)}
}

func (p *ParserService) Parse(text string) models.ParsedTriplet {
	var t models.ParsedTriplet

	tokens := strings.Fields(strings.TrimSpace(text))
	if len(tokens) == 0 {
		return t
	}

	i := 0

	// Amount: "20gr" splits into amount and unit tokens.
	if m := gluedAmountRe.FindStringSubmatch(tokens[0]); m != nil && p.isUnit(m[2]) {
		t.Amount = m[1]
		tokens = append([]string{m[1], m[2]}, tokens[1:]...)
		i = 1
	} else if p.isAmount(tokens[0]) {
		t.Amount = tokens[0]
		i = 1
		// Mixed number: "<int> and <num/den>" or "<int> <num/den>".
		if plainNumberRe.MatchString(tokens[0]) {
			if i+1 < len(tokens) && p.loc.IsSeparator(tokens[i]) && fractionTokRe.MatchString(tokens[i+1]) {
				t.Amount = tokens[0] + " " + tokens[i] + " " + tokens[i+1]
				i += 2
			} else if i < len(tokens) && fractionTokRe.MatchString(tokens[i]) {
				t.Amount = tokens[0] + " " + tokens[i]
				i++
			}
		}
	}

	// Unit, from the closed vocabulary.
	if i < len(tokens) {
		unit := p.conv.NormalizeUnitToken(tokens[i])
		if p.isUnit(unit) {
			t.Unit = unit
			i++
		}
	}

	// Filler between unit and ingredient ("of", "di").
	if i < len(tokens) && t.Unit != "" && p.loc.IsFiller(strings.ToLower(tokens[i])) {
		i++
	}

	if i < len(tokens) {
		t.Ingredient = strings.ToLower(strings.TrimRight(strings.Join(tokens[i:], " "), " .,;"))
	}
	return t
}

func (p *ParserService) isAmount(token string) bool {
	token = strings.ToLower(token)
	if plainNumberRe.MatchString(token) || fractionTokRe.MatchString(token) {
		return true
	}
	_, ok := p.loc.WordNumbers[token]
	return ok
}

// isUnit reports whether the token belongs to the closed unit vocabulary:
// a nominal unit spelling or an approximate-unit weight entry.
func (p *ParserService) isUnit(token string) bool {
	token = p.conv.NormalizeUnitToken(token)
	if token == "" {
		return false
	}
	if p.conv.Classify(token) != utils.UnitApproximate {
		return true
	}
	_, ok := p.loc.ApproxWeights[token]
	return ok
}
