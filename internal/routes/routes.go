package routes

import (
	"net/http"

	"github.com/templui/mediavault/internal/app"
	"github.com/templui/mediavault/internal/handler"
	"github.com/templui/mediavault/internal/middleware"
	"github.com/templui/mediavault/internal/respond"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	content := handler.NewContentHandler(app.ContentService, app.BrowseService)
	admin := handler.NewAdminHandler(app.ContentService, app.StatsService, app.UserService)
	auth := handler.NewAuthHandler(app.AuthService)
	catalog := handler.NewCatalogHandler(app.CategoryService, app.PlanService)
	favorite := handler.NewFavoriteHandler(app.FavoriteService)
	checkout := handler.NewCheckoutHandler(app.CheckoutService)
	page := handler.NewPageHandler(app.PageService)
	media := handler.NewMediaHandler(app.MediaService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Content
	mux.HandleFunc("GET /api/content/featured", content.Featured)
	mux.HandleFunc("GET /api/content/trending", content.Trending)
	mux.HandleFunc("GET /api/content/new", content.New)
	mux.HandleFunc("GET /api/content/{id}", content.Show)
	mux.HandleFunc("POST /api/content/{id}/view", content.RecordView)
	mux.HandleFunc("GET /api/content", content.Browse)

	// Catalog
	mux.HandleFunc("GET /api/categories", catalog.Categories)
	mux.HandleFunc("GET /api/subscription-plans", catalog.ActivePlans)

	// Pages (FAQ, terms, privacy)
	mux.HandleFunc("GET /api/pages/{slug}", page.Show)

	// Auth
	mux.HandleFunc("POST /api/register", middleware.RequireGuest(auth.Register))
	mux.HandleFunc("POST /api/login", middleware.RequireGuest(auth.Login))
	mux.HandleFunc("POST /api/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/user", middleware.RequireAuth(auth.User))

	// Favorites
	mux.HandleFunc("GET /api/favorites", middleware.RequireAuth(favorite.List))
	mux.HandleFunc("POST /api/favorites", middleware.RequireAuth(favorite.Add))
	mux.HandleFunc("DELETE /api/favorites/{contentId}", middleware.RequireAuth(favorite.Remove))

	// Billing
	mux.HandleFunc("POST /api/checkout", middleware.RequireAuth(checkout.Create))

	// ============================================================================
	// ADMIN ROUTES (/api/admin/*)
	// ============================================================================

	mux.HandleFunc("GET /api/admin/stats", middleware.RequireAdmin(admin.Stats))

	// Content
	mux.HandleFunc("GET /api/admin/content", middleware.RequireAdmin(admin.ListContent))
	mux.HandleFunc("POST /api/admin/content", middleware.RequireAdmin(admin.CreateContent))
	mux.HandleFunc("PUT /api/admin/content/{id}", middleware.RequireAdmin(admin.UpdateContent))
	mux.HandleFunc("DELETE /api/admin/content/{id}", middleware.RequireAdmin(admin.DeleteContent))

	// Media
	mux.HandleFunc("POST /api/admin/media", middleware.RequireAdmin(media.Upload))

	// Categories
	mux.HandleFunc("GET /api/admin/categories", middleware.RequireAdmin(catalog.Categories))
	mux.HandleFunc("POST /api/admin/categories", middleware.RequireAdmin(catalog.CreateCategory))
	mux.HandleFunc("PUT /api/admin/categories/{id}", middleware.RequireAdmin(catalog.UpdateCategory))
	mux.HandleFunc("DELETE /api/admin/categories/{id}", middleware.RequireAdmin(catalog.DeleteCategory))

	// Plans
	mux.HandleFunc("GET /api/admin/plans", middleware.RequireAdmin(catalog.Plans))
	mux.HandleFunc("POST /api/admin/plans", middleware.RequireAdmin(catalog.CreatePlan))
	mux.HandleFunc("PUT /api/admin/plans/{id}", middleware.RequireAdmin(catalog.UpdatePlan))
	mux.HandleFunc("DELETE /api/admin/plans/{id}", middleware.RequireAdmin(catalog.DeletePlan))

	// Users
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(admin.ListUsers))
	mux.HandleFunc("PUT /api/admin/users/{id}/premium", middleware.RequireAdmin(admin.SetPremium))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	notFound := func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found")
	}

	// Unknown paths and methods under /api/admin are still gated
	mux.HandleFunc("/api/admin", middleware.RequireAdmin(notFound))
	mux.HandleFunc("/api/admin/", middleware.RequireAdmin(notFound))
	mux.HandleFunc("/{path...}", notFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
