package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"venue-finder/src/ai"
	"venue-finder/src/catalog"
	"venue-finder/src/channel"
	"venue-finder/src/chatbot"
	"venue-finder/src/handlers"
	"venue-finder/src/logger"
	"venue-finder/src/metrics"
	"venue-finder/src/query"
	"venue-finder/src/token"
	"venue-finder/src/types"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()

	if len(token.MySigningKey) == 0 {
		log.Fatal("MY_SIGNING_KEY environment variable is not set")
	}

	venuesPath := envOr("VENUES_PATH", "./materials/locations.json")
	citiesPath := envOr("CITIES_PATH", "./materials/cities.json")

	store, err := catalog.Load(venuesPath, citiesPath)
	if err != nil {
		log.Fatal(err)
	}
	l.Info("catalog loaded", "venues", len(store.Venues()), "cities", len(store.Cities()))

	tmpl, err := handlers.LoadTemplate("./src/templates/template.html")
	if err != nil {
		log.Fatal(err)
	}

	mailbox := channel.NewMailbox()
	session := chatbot.NewSession()
	matcher := chatbot.NewMatcher(store)
	state := query.NewExploreState()
	vibe := ai.NewTemplateVibe(time.Now().UnixNano())
	translator := ai.NewCachedTranslator(ai.DictionaryTranslator{}, 30*time.Minute)

	handleKit(store, tmpl, mailbox, session, matcher, state, vibe, translator)

	addr := envOr("ADDR", ":8888")
	l.Info("server started", "addr", addr)
	if err = http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

func handleKit(store types.VenueStore, tmpl *template.Template, mailbox *channel.Mailbox,
	session *chatbot.Session, matcher *chatbot.Matcher, state *query.ExploreState,
	vibe ai.VibeGenerator, translator ai.Translator) {

	http.HandleFunc("/api/get_token", token.GetToken)

	protected := http.NewServeMux()
	protected.HandleFunc("/api/recommend", handlers.Instrument("recommend", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleRecommendAPI(w, r, store)
	}))
	protected.HandleFunc("/api/vibe/", handlers.Instrument("vibe", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleVibe(w, r, store, vibe)
	}))
	protected.HandleFunc("/api/translate", handlers.Instrument("translate", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleTranslate(w, r, translator)
	}))

	http.Handle("/api/recommend", token.JwtMiddleware(protected))
	http.Handle("/api/vibe/", token.JwtMiddleware(protected))
	http.Handle("/api/translate", token.JwtMiddleware(protected))

	http.HandleFunc("/places", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleGetPlacesHTML(w, r, store, tmpl)
	})

	http.HandleFunc("/api/places/", handlers.Instrument("places", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandlePlacesAPI(w, r, store)
	}))

	http.HandleFunc("/api/suggest", handlers.Instrument("suggest", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleSuggestAPI(w, r, store)
	}))

	http.HandleFunc("/api/chat", handlers.Instrument("chat", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleChat(w, r, session, matcher, mailbox)
	}))

	http.HandleFunc("/api/action", handlers.Instrument("action", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleAction(w, r, mailbox)
	}))

	http.HandleFunc("/api/explore", handlers.Instrument("explore", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleExplore(w, r, store, state)
	}))
	http.HandleFunc("/api/explore/filters", handlers.Instrument("explore_filters", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleExploreFilters(w, r, state)
	}))
	http.HandleFunc("/api/explore/focus", handlers.Instrument("explore_focus", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleExploreFocus(w, r, store, state)
	}))
	http.HandleFunc("/api/explore/view", handlers.Instrument("explore_view", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleExploreToggleView(w, r, state)
	}))
	http.HandleFunc("/api/explore/consume", handlers.Instrument("explore_consume", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleExploreConsume(w, r, store, state, mailbox)
	}))

	http.Handle("/metrics", metrics.Handler())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
