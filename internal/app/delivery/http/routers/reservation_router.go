package routers

import (
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, reservationController *controllers.ReservationController) {
	router.With(middlewares.Authenticate).Get("/", reservationController.FindMine)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/pending", reservationController.FindPending)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{reservation_id}/approve", reservationController.Approve)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/{reservation_id}/decline", reservationController.Decline)
}
