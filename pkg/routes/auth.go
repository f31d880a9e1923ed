package routes

import (
	"github.com/Raul1156/monopoly/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(a fiber.Router, h *controllers.Controller, protected fiber.Handler) {
	route := a.Group("/user")

	route.Post("/register", h.CreateUser)
	route.Post("/login", h.Login)
	route.Get("/cur", protected, h.Cur)
	route.Get("/ranking", h.Ranking)
	route.Get("/:id", h.GetUser)
	route.Put("/:id", protected, h.UpdateUser)
}
