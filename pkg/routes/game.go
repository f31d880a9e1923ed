package routes

import (
	"github.com/Raul1156/monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a fiber.Router, h *controllers.Controller, protected fiber.Handler) {
	route := a.Group("/games", protected)
	route.Post("/", h.CreateGame)
	route.Get("/", h.GetAllAvailGames)
	route.Get("/:id", h.GetGame)
	route.Post("/:id/join", h.JoinGame)
	route.Post("/:id/start", h.StartGame)
	route.Get("/:id/players", h.GetPlayers)
	route.Get("/:id/players/:player", h.GetPlayer)
	route.Get("/:id/next-player", h.NextPlayer)
	route.Post("/:id/check-eliminated", h.CheckEliminated)
	route.Get("/:id/events", h.GetEvents)
}

func ActionRoutes(a fiber.Router, h *controllers.Controller, protected fiber.Handler) {
	route := a.Group("/actions", protected)
	route.Get("/roll-dice", h.RollDice)
	route.Post("/move", h.Move)
	route.Post("/use-station", h.UseStation)
	route.Post("/buy-property", h.BuyProperty)
	route.Post("/pay-rent", h.PayRent)
	route.Post("/draw-card", h.DrawAndApply)
	route.Post("/pay-out-jail", h.PayOutOfJail)
	route.Post("/end-turn", h.EndTurn)
}

// Register mounts every route under /api.
func Register(app *fiber.App, h *controllers.Controller, protected fiber.Handler) {
	api := app.Group("/api")
	AuthRoutes(api, h, protected)
	BoardRoutes(api, h)
	GameRoutes(api, h, protected)
	ActionRoutes(api, h, protected)
}
