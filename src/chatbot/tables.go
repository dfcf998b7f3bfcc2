package chatbot

// concept groups the synonyms of a canonical search term: matching any
// synonym resolves to the concept, and filtering uses the full group.
type concept struct {
	Name     string
	Synonyms []string
}

// Table order is the tie-break when a message matches several concepts.
var itemConcepts = []concept{
	{"cafea", []string{"cafea", "espresso", "cappuccino", "latte", "coffee"}},
	{"matcha", []string{"matcha"}},
	{"pizza", []string{"pizza", "pizzerie"}},
	{"burger", []string{"burger", "burgers"}},
	{"bere", []string{"bere", "beer", "pub"}},
	{"vegan", []string{"vegan", "plant-based"}},
	{"smoothie", []string{"smoothie", "sucuri"}},
	{"paste", []string{"paste", "pasta"}},
	{"sushi", []string{"sushi"}},
	{"vin", []string{"vin", "wine"}},
}

// Keyword lists classifying a venue as drink- or food-serving from its
// name and description.
var (
	drinkKeywords = []string{"cafea", "espresso", "ceai", "bere", "vin", "băuturi", "cocktail", "smoothie", "sucuri"}
	foodKeywords  = []string{"mâncare", "restaurant", "pizza", "burger", "paste", "sushi", "grill", "meniu"}
)

// Venue-type words appearing in the message itself.
var (
	drinkTypeKeywords = []string{"bar", "cafenea", "ceainărie", "pub"}
	foodTypeKeywords  = []string{"restaurant", "pizzerie", "trattoria", "bistro"}
)

var (
	superlativesDesc = []string{"cel mai bun", "cel mai mare", "cea mai bună", "cea mai mare"}
	superlativesAsc  = []string{"cel mai slab", "cel mai prost", "cel mai mic"}
)

// Verbs signalling the general "I want to eat/drink" intent.
var (
	drinkIntentWords = []string{"beau", "bea"}
	eatIntentWords   = []string{"mananc", "manca"}
)
