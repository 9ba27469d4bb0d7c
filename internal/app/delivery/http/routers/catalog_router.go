package routers

import (
	"sirsak-service/internal/app/delivery/http/controllers"
	"sirsak-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRoomRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.With(middlewares.Authenticate).Get("/", catalogController.FindRooms)
	router.With(middlewares.Authenticate).Get("/{room_id}", catalogController.FindRoomByID)
}

func attachLocationRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.With(middlewares.Authenticate).Get("/", catalogController.FindLocations)
}
