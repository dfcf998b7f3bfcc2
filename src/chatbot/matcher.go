package chatbot

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"venue-finder/src/query"
	"venue-finder/src/types"
)

// Reply is the matcher output: a natural-language answer plus an
// optional structured action for the explore surface. The matcher
// never fails; a query with no results is a negative reply.
type Reply struct {
	Text   string                  `json:"text"`
	Action *types.StructuredAction `json:"action,omitempty"`
}

type Matcher struct {
	store types.VenueStore
}

func NewMatcher(store types.VenueStore) *Matcher {
	return &Matcher{store: store}
}

// Respond maps a free-text message to a reply. Branch order matters:
// general eat/drink intent, compound filters, direct name search,
// static intents, then the generic fallback.
func (m *Matcher) Respond(message string) Reply {
	folded := Fold(message)

	item := extractConcept(folded)
	city := m.extractCity(folded)
	order := extractSortOrder(folded)
	venueType := extractType(folded)

	if reply, ok := m.generalIntent(folded, city); ok {
		return reply
	}
	if reply, ok := m.compoundFilters(item, city, order, venueType); ok {
		return reply
	}
	if reply, ok := m.directSearch(folded); ok {
		return reply
	}
	return staticIntent(folded)
}

// wordRe matches the folded keyword as a whole word, so "brașov" is
// not found inside "îmbrăcat".
func wordRe(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(Fold(keyword)) + `\b`)
}

func extractConcept(folded string) *concept {
	for i := range itemConcepts {
		for _, syn := range itemConcepts[i].Synonyms {
			if wordRe(syn).MatchString(folded) {
				return &itemConcepts[i]
			}
		}
	}
	return nil
}

// extractCity matches against the full reference city list; the
// longest matched name wins. Hyphenated cities also match on their
// first segment, so "cluj" resolves to Cluj-Napoca.
func (m *Matcher) extractCity(folded string) *types.City {
	var best *types.City
	bestLen := 0
	cities := m.store.Cities()
	for i := range cities {
		candidates := []string{Fold(cities[i].Name)}
		if head, _, found := strings.Cut(candidates[0], "-"); found {
			candidates = append(candidates, head)
		}
		for _, cand := range candidates {
			if len(cand) > bestLen && wordRe(cand).MatchString(folded) {
				best = &cities[i]
				bestLen = len(cand)
			}
		}
	}
	return best
}

func extractSortOrder(folded string) string {
	for _, phrase := range superlativesDesc {
		if strings.Contains(folded, Fold(phrase)) {
			return "desc"
		}
	}
	for _, phrase := range superlativesAsc {
		if strings.Contains(folded, Fold(phrase)) {
			return "asc"
		}
	}
	return ""
}

func extractType(folded string) string {
	for _, kw := range drinkTypeKeywords {
		if wordRe(kw).MatchString(folded) {
			return "drink"
		}
	}
	for _, kw := range foodTypeKeywords {
		if wordRe(kw).MatchString(folded) {
			return "food"
		}
	}
	return ""
}

// classify scans a venue's name and description against the
// drink/food keyword lists. Venues matching neither are "unknown".
func classify(v types.Venue) string {
	text := Fold(v.Name + " " + v.ShortDescription)
	for _, kw := range drinkKeywords {
		if strings.Contains(text, Fold(kw)) {
			return "drink"
		}
	}
	for _, kw := range foodKeywords {
		if strings.Contains(text, Fold(kw)) {
			return "food"
		}
	}
	return "unknown"
}

func cityMatches(v types.Venue, cityName string) bool {
	needle := Fold(query.NormalizeCity(cityName))
	return strings.Contains(Fold(v.Address), needle)
}

// generalIntent handles "I want to eat/drink": with no resolvable city
// it asks which city; with one it applies a city filter when matching
// venues exist.
func (m *Matcher) generalIntent(folded string, city *types.City) (Reply, bool) {
	wantsDrink := containsAny(folded, drinkIntentWords)
	wantsEat := containsAny(folded, eatIntentWords)
	if !wantsDrink && !wantsEat {
		return Reply{}, false
	}

	if city == nil {
		if wantsDrink {
			return Reply{Text: "Sigur! În ce oraș ai vrea să bei ceva?"}, true
		}
		return Reply{Text: "Sigur! În ce oraș ai vrea să mănânci?"}, true
	}

	targetType := "food"
	if wantsDrink {
		targetType = "drink"
	}

	var matched bool
	for _, v := range m.store.Venues() {
		t := classify(v)
		if (t == targetType || t == "unknown") && cityMatches(v, city.Name) {
			matched = true
			break
		}
	}

	if matched {
		typeText := "mâncare"
		if wantsDrink {
			typeText = "băuturi"
		}
		return Reply{
			Text:   fmt.Sprintf("Perfect! Te duc acum la locațiile cu %s din %s.", typeText, city.Name),
			Action: &types.StructuredAction{Type: types.ActionCityFilter, City: city.Name},
		}, true
	}

	typeText := "restaurante"
	if wantsDrink {
		typeText = "baruri sau cafenele"
	}
	return Reply{
		Text: fmt.Sprintf("Din păcate, nu am găsit %s în %s în baza mea de date.", typeText, city.Name),
	}, true
}

// compoundFilters applies the extracted criteria in sequence over the
// full catalog and answers with the top result.
func (m *Matcher) compoundFilters(item *concept, city *types.City, order, venueType string) (Reply, bool) {
	results := append([]types.Venue(nil), m.store.Venues()...)
	var criteria []string

	if venueType != "" {
		results = filterVenues(results, func(v types.Venue) bool { return classify(v) == venueType })
		if venueType == "drink" {
			criteria = append(criteria, "baruri/cafenele")
		} else {
			criteria = append(criteria, "restaurante")
		}
	}

	if city != nil {
		results = filterVenues(results, func(v types.Venue) bool { return cityMatches(v, city.Name) })
		criteria = append(criteria, "din "+city.Name)
	}

	if item != nil {
		results = filterVenues(results, func(v types.Venue) bool {
			text := Fold(v.Name + " " + v.ShortDescription)
			for _, syn := range item.Synonyms {
				if strings.Contains(text, Fold(syn)) {
					return true
				}
			}
			return false
		})
		criteria = append(criteria, "care servește "+item.Name)
	}

	if order != "" {
		sortByRating(results, order)
		if order == "desc" {
			criteria = append(criteria, "cu cel mai bun review")
		} else {
			criteria = append(criteria, "cu cel mai slab review")
		}
	}

	if len(criteria) == 0 {
		return Reply{}, false
	}

	if len(results) > 0 {
		found := results[0]
		return Reply{
			Text: fmt.Sprintf("Am găsit: %q. Pare a fi ce căutai (%s). Vrei să vezi detalii?",
				found.Name, strings.Join(criteria, ", ")),
			Action: &types.StructuredAction{Type: types.ActionNavigate, LocationID: found.ID},
		}, true
	}
	return Reply{
		Text: fmt.Sprintf("Din păcate, nu am găsit nicio locație care să corespundă criteriilor tale: %s.",
			strings.Join(criteria, ", ")),
	}, true
}

var (
	directSearchRe = regexp.MustCompile(`(?:cauta|gaseste|vreau|arata-mi)\s+(?:restaurantul\s+)?(.+)`)
	inCityRe       = regexp.MustCompile(`\bin\s+(.+)$`)
)

// directSearch handles imperative phrasing: "find/search/show me X
// [in CITY]", matched on the folded message.
func (m *Matcher) directSearch(folded string) (Reply, bool) {
	match := directSearchRe.FindStringSubmatch(folded)
	if match == nil {
		return Reply{}, false
	}

	target := strings.TrimSpace(match[1])
	cityName := ""
	if cm := inCityRe.FindStringSubmatch(target); cm != nil {
		cityName = strings.TrimSpace(cm[1])
		target = strings.TrimSpace(inCityRe.ReplaceAllString(target, ""))
	}

	for _, v := range m.store.Venues() {
		if !strings.Contains(Fold(v.Name), target) {
			continue
		}
		if cityName != "" && !cityMatches(v, cityName) {
			continue
		}
		return Reply{
			Text:   fmt.Sprintf("Am găsit %q. Vrei să vezi detalii?", v.Name),
			Action: &types.StructuredAction{Type: types.ActionNavigate, LocationID: v.ID},
		}, true
	}

	text := fmt.Sprintf("Nu am găsit niciun restaurant care să corespundă căutării %q", target)
	if cityName != "" {
		text += " în " + cityName
	}
	return Reply{Text: text + "."}, true
}

func staticIntent(folded string) Reply {
	switch {
	case containsAny(folded, []string{"salut", "buna"}):
		return Reply{Text: "Salut! Cu ce te pot ajuta astăzi? Poți să mă întrebi despre restaurante sau cum funcționează aplicația."}
	case containsAny(folded, []string{"recomanda", "restaurant"}):
		return Reply{Text: "Pentru a găsi restaurante, folosește pagina \"Explorează\". Poți căuta după nume sau poți folosi filtrele avansate pentru a sorta după oraș și rating."}
	case containsAny(folded, []string{"rezerv"}):
		return Reply{Text: "Poți face o rezervare direct de pe pagina de detalii a unui restaurant, folosind butonul \"Rezervă pe WhatsApp\"."}
	case containsAny(folded, []string{"harta", "lista"}):
		return Reply{Text: "Poți comuta între vizualizarea hărții și cea a listei folosind butonul central din bara de navigare de jos."}
	}
	return Reply{Text: "Nu am înțeles întrebarea. Poți reformula, te rog? Pot răspunde la întrebări despre restaurante, rezervări sau funcționalitățile aplicației."}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func sortByRating(venues []types.Venue, order string) {
	sort.SliceStable(venues, func(i, j int) bool {
		if order == "desc" {
			return venues[i].Rating > venues[j].Rating
		}
		return venues[i].Rating < venues[j].Rating
	})
}

func filterVenues(venues []types.Venue, keep func(types.Venue) bool) []types.Venue {
	out := venues[:0]
	for _, v := range venues {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
