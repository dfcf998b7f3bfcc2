package ai

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"venue-finder/src/metrics"
)

// Translator renders Romanian venue text in English. Failures are
// substituted with FallbackTranslation at the call site.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

const FallbackTranslation = "Traducerea nu este disponibilă momentan."

// CachedTranslator memoizes results per original text for the
// session, so repeated requests for the same description do not hit
// the collaborator again.
type CachedTranslator struct {
	inner Translator
	cache *cache.Cache
}

func NewCachedTranslator(inner Translator, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (t *CachedTranslator) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok := t.cache.Get(text); ok {
		metrics.TranslateCacheHitsTotal.Inc()
		return cached.(string), nil
	}
	out, err := t.inner.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	t.cache.Set(text, out, cache.DefaultExpiration)
	return out, nil
}

// DictionaryTranslator is the offline collaborator: word-for-word
// substitution from a small Romanian-English glossary, leaving
// unknown words as-is.
type DictionaryTranslator struct{}

var roToEn = map[string]string{
	"cafea":        "coffee",
	"cafeaua":      "the coffee",
	"cafenea":      "cafe",
	"de":           "of",
	"specialitate": "specialty",
	"și":           "and",
	"cu":           "with",
	"un":           "a",
	"o":            "a",
	"loc":          "place",
	"locația":      "the venue",
	"bun":          "good",
	"bună":         "good",
	"mâncare":      "food",
	"băuturi":      "drinks",
	"vin":          "wine",
	"bere":         "beer",
	"prietenii":    "friends",
	"seară":        "evening",
	"oraș":         "city",
	"restaurant":   "restaurant",
	"meniu":        "menu",
	"gustos":       "tasty",
	"proaspăt":     "fresh",
	"atmosferă":    "atmosphere",
	"primitor":     "welcoming",
	"artizanal":    "artisanal",
	"desert":       "dessert",
	"mic":          "small",
	"dejun":        "breakfast",
	"în":           "in",
	"la":           "at",
	"pe":           "on",
}

func (DictionaryTranslator) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	words := strings.Fields(text)
	for i, w := range words {
		bare := strings.TrimRight(w, ".,!?;:")
		suffix := w[len(bare):]
		if en, ok := roToEn[strings.ToLower(bare)]; ok {
			words[i] = en + suffix
		}
	}
	return strings.Join(words, " "), nil
}
