package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
)

func newRouter(reqLogger *httplog.Logger, webhook http.HandlerFunc) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Group(func(r chi.Router) {
		if reqLogger != nil {
			r.Use(httplog.RequestLogger(reqLogger))
		}
		// The handler checks the secret against the full path itself.
		r.Post("/webhook/{secret}", webhook)
	})

	return router
}
