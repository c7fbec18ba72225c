// services/matcher_service.go
package services

import (
	"regexp"
	"sort"
	"strings"

	"nutrifacts/models"
	"nutrifacts/utils"
)

var punctuationRe = regexp.MustCompile(`[,.;:!?'"]`)

// MatcherService picks the best catalog candidate for an input phrase using
// an edit-distance + word-occurrence scoring model.
type MatcherService struct {
	loc *utils.Locale
}

func NewMatcherService(loc *utils.Locale) *MatcherService {
	return &MatcherService{loc: loc}
}

// BestMatch scores the candidates against the needle and returns the winner
// (zero or one entry). A candidate whose punctuation-stripped name equals
// the needle verbatim is a perfect match and short-circuits all scoring.
// Confidence is min-max normalized to [0,1] across the candidate set.
func (m *MatcherService) BestMatch(candidates []models.FoodRef, needle string) []models.FoodRef {
	if len(candidates) == 0 {
		return nil
	}

	needle = strings.ToLower(m.loc.RemoveStopWords(needle))
	inputWords := strings.Split(needle, " ")

	scored := make([]models.FoodRef, len(candidates))
	for i, cand := range candidates {
		name := strings.ToLower(strings.TrimSpace(punctuationRe.ReplaceAllString(cand.Name, "")))

		if name == needle {
			cand.Stats = &models.MatchStats{Occurrence: 1, Distance: 0, Confidence: 1}
			return []models.FoodRef{cand}
		}

		candWords := uniqueWords(name)

		occurrence := 0
		cumulative := 0.0
		for _, cw := range candWords {
			for _, iw := range inputWords {
				dist := utils.StrDistance(cw, iw)
				cumulative += float64(dist)
				if dist <= 1 {
					occurrence++
				}
			}
		}

		confidence := float64(occurrence)*0.25*float64(len(inputWords)) - cumulative/float64(max(len(candWords), 1))
		cand.Stats = &models.MatchStats{
			Occurrence: occurrence,
			Distance:   cumulative,
			Confidence: confidence,
		}
		scored[i] = cand
	}

	normalizeConfidence(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		si, sj := scored[i].Stats, scored[j].Stats
		if si.Occurrence != sj.Occurrence {
			return si.Occurrence > sj.Occurrence
		}
		return si.Confidence > sj.Confidence
	})

	return scored[:1]
}

// normalizeConfidence maps raw confidences onto [0,1]; when every candidate
// scored the same, all map to 0.
func normalizeConfidence(candidates []models.FoodRef) {
	lo := candidates[0].Stats.Confidence
	hi := lo
	for _, c := range candidates[1:] {
		v := c.Stats.Confidence
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	for _, c := range candidates {
		if hi > lo {
			c.Stats.Confidence = (c.Stats.Confidence - lo) / (hi - lo)
		} else {
			c.Stats.Confidence = 0
		}
	}
}

// uniqueWords splits a name into its distinct words, preserving first-seen
// order.
func uniqueWords(name string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range strings.Fields(name) {
		if !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	return words
}
