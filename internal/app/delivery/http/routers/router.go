package routers

import (
	"fmt"
	"sirsak-service/internal/app/config"
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"
	"sirsak-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	reservationBuilderController *controllers.ReservationBuilderController,
	catalogController *controllers.CatalogController,
	reservationController *controllers.ReservationController,
	feedbackController *controllers.FeedbackController,
	adminDashboardController *controllers.AdminDashboardController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/time-grid", func(r chi.Router) {
				attachTimeGridRoutes(r, reservationBuilderController)
			})

			r.Route("/reservation-builder", func(r chi.Router) {
				attachReservationBuilderRoutes(r, middlewares, reservationBuilderController)
			})

			r.Route("/rooms", func(r chi.Router) {
				attachRoomRoutes(r, middlewares, catalogController)
			})

			r.Route("/locations", func(r chi.Router) {
				attachLocationRoutes(r, middlewares, catalogController)
			})

			r.Route("/reservations", func(r chi.Router) {
				attachReservationRoutes(r, middlewares, reservationController)
			})

			r.Route("/feedback", func(r chi.Router) {
				attachFeedbackRoutes(r, middlewares, feedbackController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, middlewares, adminDashboardController)
			})
		})
	})
}
