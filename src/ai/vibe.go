package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// VibeGenerator produces a short AI-flavoured description for a venue.
// Implementations may fail; callers substitute a canned fallback.
type VibeGenerator interface {
	GenerateVibe(ctx context.Context, name, shortDescription string) (string, error)
}

// FallbackVibe is shown when the generator fails.
const FallbackVibe = "Un loc cu personalitate, care merită descoperit pe îndelete."

// TemplateVibe is the offline generator: it infers the venue's
// character from its name and description and fills one of a few
// hand-written templates.
type TemplateVibe struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewTemplateVibe(seed int64) *TemplateVibe {
	return &TemplateVibe{rand: rand.New(rand.NewSource(seed))}
}

var vibeTemplates = []func(venueType string) string{
	func(t string) string {
		return fmt.Sprintf("Un colț de rai urban, unde designul minimalist întâlnește %s. Vibe-ul este perfect pentru a te deconecta.", t)
	},
	func(t string) string {
		return fmt.Sprintf("Savurează %s! Locația emană un vibe cald și primitor, perfect pentru o seară cu prietenii.", t)
	},
	func(t string) string {
		return fmt.Sprintf("Aproape de campus, acest loc dedicat pentru %s este epicentrul social al studenților. Vibe-ul e mereu energic și plin de viață.", t)
	},
	func(t string) string {
		return fmt.Sprintf("Un refugiu boem unde timpul stă în loc, cu %s la loc de cinste și un vibe liniștit, numai bun de lectură.", t)
	},
}

func venueCharacter(name, shortDescription string) string {
	lowerName := strings.ToLower(name)
	lowerDesc := strings.ToLower(shortDescription)

	switch {
	case strings.Contains(lowerName, "coffee") || strings.Contains(lowerName, "café") ||
		strings.Contains(lowerDesc, "espresso") || strings.Contains(lowerDesc, "cafea"):
		return "cafeaua de specialitate"
	case strings.Contains(lowerName, "pizza") || strings.Contains(lowerName, "trattoria") ||
		strings.Contains(lowerDesc, "italian"):
		return "gustul Italiei"
	case strings.Contains(lowerName, "burger") || strings.Contains(lowerName, "fast-food") ||
		strings.Contains(lowerDesc, "kebab"):
		return "mâncarea rapidă artizanală"
	case strings.Contains(lowerDesc, "fish") || strings.Contains(lowerDesc, "seafood") ||
		strings.Contains(lowerName, "pescaresc"):
		return "deliciile marine"
	}
	return "vibrațiile locului"
}

func (g *TemplateVibe) GenerateVibe(ctx context.Context, name, shortDescription string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	g.mu.Lock()
	tmpl := vibeTemplates[g.rand.Intn(len(vibeTemplates))]
	g.mu.Unlock()
	return tmpl(venueCharacter(name, shortDescription)), nil
}
