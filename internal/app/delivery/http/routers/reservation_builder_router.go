package routers

import (
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The grid is the same for every caller, so it needs no session.
func attachTimeGridRoutes(router chi.Router, reservationBuilderController *controllers.ReservationBuilderController) {
	router.Get("/", reservationBuilderController.GetTimeGrid)
}

func attachReservationBuilderRoutes(router chi.Router, middlewares *middlewares.Middlewares, reservationBuilderController *controllers.ReservationBuilderController) {
	router.With(middlewares.Authenticate).Get("/", reservationBuilderController.GetBuilder)
	router.With(middlewares.Authenticate).Put("/selection", reservationBuilderController.SelectRoomAndDate)
	router.With(middlewares.Authenticate).Put("/slot", reservationBuilderController.ChooseSlot)
	router.With(middlewares.Authenticate).Put("/details", reservationBuilderController.UpdateDetails)
	router.With(middlewares.Authenticate).Post("/submit", reservationBuilderController.Submit)
	router.With(middlewares.Authenticate).Delete("/", reservationBuilderController.Reset)
}
