package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func (h *Controller) GetSpaces(c *fiber.Ctx) error {
	return c.JSON(h.board.Spaces())
}

func (h *Controller) GetProperties(c *fiber.Ctx) error {
	return c.JSON(h.board.Properties())
}

func (h *Controller) GetPropertyByPos(c *fiber.Ctx) error {
	pos, err := strconv.Atoi(c.Params("position"))
	if err != nil {
		return badRequest(c, "position must be a number")
	}
	prop, err := h.board.GetByPos(pos)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(prop)
}

// DrawCard shows a random card of ?type= without applying it.
func (h *Controller) DrawCard(c *fiber.Ctx) error {
	card, err := h.svc.DrawCard(c.Query("type"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(card)
}
