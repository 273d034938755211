package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/petdirectory/demo-pet-api/internal/api/auth"
	"github.com/petdirectory/demo-pet-api/internal/api/petadmin"
	"github.com/petdirectory/demo-pet-api/internal/api/pets"
)

// Config contains dependencies needed for the router setup
type Config struct {
	CatHandler  *pets.Handler
	DogHandler  *pets.Handler
	TestHandler *pets.Handler

	AuthHandler  *auth.AuthHandler
	AdminHandler *petadmin.Handler

	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {

		r.Route("/CatLookup", func(r chi.Router) {
			r.Get("/GetByPetID", cfg.CatHandler.GetByPetID)
			r.Get("/GetByName", cfg.CatHandler.GetByName)
			r.Get("/GetByBreed", cfg.CatHandler.GetByBreed)
			r.Get("/GetByAge", cfg.CatHandler.GetByAge)
			r.Get("/GetByLocation", cfg.CatHandler.GetByLocation)
			r.Get("/GetAllCats", cfg.CatHandler.GetAll)
		})

		r.Route("/DogLookup", func(r chi.Router) {
			r.Get("/GetByPetID", cfg.DogHandler.GetByPetID)
			r.Get("/GetByName", cfg.DogHandler.GetByName)
			r.Get("/GetByBreed", cfg.DogHandler.GetByBreed)
			r.Get("/GetByAge", cfg.DogHandler.GetByAge)
			r.Get("/GetByLocation", cfg.DogHandler.GetByLocation)
			r.Get("/GetAllDogs", cfg.DogHandler.GetAll)
		})

		// Secondary test domain: bare 6-digit IDs, lookups addressed by path
		// parameter instead of query string
		r.Route("/TestLookup", func(r chi.Router) {
			r.Get("/GetByPetID/{petID}", cfg.TestHandler.GetByPetIDPath)
			r.Get("/GetByName/{name}", cfg.TestHandler.GetByNamePath)
			r.Get("/GetByAge/{age}", cfg.TestHandler.GetByAgePath)
			r.Get("/GetAllCats", cfg.TestHandler.GetAll)
		})

		r.Post("/Auth/JWT", cfg.AuthHandler.Login)

		r.Post("/PetAdmin/Submit", cfg.AdminHandler.Submit)

		// Update is the only operation behind the bearer-token check
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)
			r.Put("/PetAdmin/Update", cfg.AdminHandler.Update)
		})
	})

	return r
}
