package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-api/internal/config"
	"pet-care-api/internal/handler"
	"pet-care-api/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	petHandler *handler.PetHandler,
	serviceHandler *handler.ServiceHandler,
	dashboardHandler *handler.DashboardHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.Register)
			auth.Post("/login", authHandler.Login)
			auth.Get("/check-username", authHandler.CheckUsername)
			auth.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})

		api.Route("/pets", func(pets chi.Router) {
			pets.Use(authMiddleware.RequireAuth)
			pets.Post("/", petHandler.Create)
			pets.Get("/", petHandler.List)
			pets.Get("/{pet_id}", petHandler.Get)
			pets.Put("/{pet_id}", petHandler.Update)
			pets.Delete("/{pet_id}", petHandler.Delete)
		})

		api.Route("/services", func(services chi.Router) {
			services.Use(authMiddleware.RequireAuth)
			services.Post("/age", serviceHandler.CalculateAge)
			services.Get("/age/history", serviceHandler.AgeHistory)
			services.Post("/weight", serviceHandler.AssessWeight)
			services.Get("/weight/history", serviceHandler.WeightHistory)
			services.Post("/names", serviceHandler.GenerateNames)
			services.Post("/names/favorites", serviceHandler.SaveNameFavorites)
			services.Post("/recipes", serviceHandler.GenerateRecipes)
			services.Post("/breeds/identify", serviceHandler.IdentifyBreed)
			services.Post("/breeds/manual", serviceHandler.IdentifyBreedManual)
			services.Get("/guides", serviceHandler.ListGuides)
			services.Post("/guides/{guide_id}/download", serviceHandler.TrackGuideDownload)
			services.Post("/charts", serviceHandler.GenerateChart)
		})

		api.Route("/dashboard", func(dashboard chi.Router) {
			dashboard.Use(authMiddleware.RequireAuth)
			dashboard.Get("/data", dashboardHandler.Data)
			dashboard.Put("/{service_type}/{record_id}", dashboardHandler.UpdateRecord)
			dashboard.Delete("/{service_type}/{record_id}", dashboardHandler.DeleteRecord)
		})
	})

	return r
}
