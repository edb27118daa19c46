package http

import (
	"net/http"

	"educagenda/internal/agenda"
	"educagenda/internal/auth"
	"educagenda/internal/config"
	"educagenda/internal/http/handler"
	mw "educagenda/internal/http/middleware"
	"educagenda/internal/notify"
	"educagenda/internal/settings"
	"educagenda/internal/speech"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, hub *notify.Hub, store *settings.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)

	me := &handler.MeHandler{}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	svc := &agenda.Service{DB: db, Loc: cfg.Timezone, Notify: hub}
	eventsH := &handler.EventHandler{Svc: svc}
	readH := &handler.EventReadHandler{Svc: svc, Loc: cfg.Timezone}
	watchH := &handler.WatchHandler{Hub: hub}

	r.Route("/events", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Post("/", eventsH.Create)
		r.Get("/", readH.List)
		r.Get("/watch", watchH.Watch)

		r.Get("/{id}", readH.Get)
		r.Put("/{id}", eventsH.Update)
		r.Delete("/{id}", eventsH.Delete)
	})

	dashH := &handler.DashboardHandler{Svc: svc, Narrator: &speech.Narrator{}, Loc: cfg.Timezone}

	r.Route("/agenda", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/month", readH.Month)
		r.Get("/today", dashH.Today)
		r.Get("/export", dashH.Export)

		r.Post("/narrate", dashH.Narrate)
		r.Get("/narrate", dashH.NarrationStatus)
		r.Delete("/narrate", dashH.StopNarration)
	})

	settingsH := &handler.SettingsHandler{Store: store}

	r.Route("/settings", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/", settingsH.Get)
		r.Patch("/", settingsH.Update)
		r.Get("/theme", settingsH.Theme)
	})

	return r
}
