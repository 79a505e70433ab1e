package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apostle/librarium/internal/account"
	authHandler "github.com/apostle/librarium/internal/http/auth"
	borrowingHandler "github.com/apostle/librarium/internal/http/borrowing"
	catalogHandler "github.com/apostle/librarium/internal/http/catalog"
	"github.com/apostle/librarium/internal/http/importcsv"
	authmw "github.com/apostle/librarium/internal/http/middleware"
)

func New(
	authV1 *authHandler.Handler,
	catalogV1 *catalogHandler.Handler,
	borrowV1 *borrowingHandler.Handler,
	importV1 *importcsv.Handler,
	jwtSecret []byte,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authmw.Authenticate(jwtSecret))

			r.Route("/admin", func(r chi.Router) {
				r.Use(authmw.RequireRole(account.RoleAdmin))

				r.Route("/books", catalogV1.AdminRoutes)
				r.Route("/books-import", importV1.Routes)
				r.Route("/borrowings", borrowV1.AdminRoutes)
			})

			r.Route("/user", func(r chi.Router) {
				r.Use(authmw.RequireRole(account.RoleUser, account.RoleAdmin))

				r.Route("/books", catalogV1.UserRoutes)
			})

			r.Route("/borrow", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				r.Use(authmw.RequireRole(account.RoleUser, account.RoleAdmin))
				borrowV1.Routes(r)
			})
		})
	})

	return router
}
