package routers

import (
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *controllers.FeedbackController) {
	router.With(middlewares.Authenticate).Get("/", feedbackController.FindMine)
	router.With(middlewares.Authenticate).Get("/awaiting", feedbackController.FindAwaiting)
	router.With(middlewares.Authenticate).Post("/", feedbackController.Create)
}

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminDashboardController *controllers.AdminDashboardController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/dashboard", adminDashboardController.GetDashboard)
}
