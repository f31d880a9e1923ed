package routes

import (
	"github.com/Raul1156/monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
)

// BoardRoutes are public: the board never changes during a game.
func BoardRoutes(a fiber.Router, h *controllers.Controller) {
	route := a.Group("/board")
	route.Get("/spaces", h.GetSpaces)
	route.Get("/properties", h.GetProperties)
	route.Get("/properties/:position", h.GetPropertyByPos)

	a.Get("/cards/draw", h.DrawCard)
}
