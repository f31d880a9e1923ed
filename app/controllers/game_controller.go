package controllers

import (
	"strconv"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Controller) CreateGame(c *fiber.Ctx) error {
	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return badRequest(c, err.Error())
	}
	st, err := h.svc.CreateGame(c.Context(), userID(c), *gameCreateDto)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st.Dto())
}

func (h *Controller) GetAllAvailGames(c *fiber.Ctx) error {
	games, err := h.svc.ListAvailableGames(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(games)
}

func (h *Controller) GetGame(c *fiber.Ctx) error {
	st, err := h.svc.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Dto())
}

func (h *Controller) JoinGame(c *fiber.Ctx) error {
	dto := new(models.JoinGameDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	st, err := h.svc.JoinGame(c.Context(), c.Params("id"), userID(c), dto.Token)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Dto())
}

func (h *Controller) StartGame(c *fiber.Ctx) error {
	st, err := h.svc.StartGame(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Dto())
}

func (h *Controller) GetPlayers(c *fiber.Ctx) error {
	st, err := h.svc.GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Dto().Players)
}

func (h *Controller) GetPlayer(c *fiber.Ctx) error {
	p, err := h.svc.GetPlayer(c.Context(), c.Params("id"), c.Params("player"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// NextPlayer takes the current turn order as ?current=, defaulting to the
// game's own.
func (h *Controller) NextPlayer(c *fiber.Ctx) error {
	gameID := c.Params("id")
	current := -1
	if q := c.Query("current"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return badRequest(c, "current must be a number")
		}
		current = n
	} else {
		st, err := h.svc.GetGame(c.Context(), gameID)
		if err != nil {
			return h.fail(c, err)
		}
		current = st.Game.Current_turn
	}
	p, err := h.svc.NextPlayer(c.Context(), gameID, current)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Controller) CheckEliminated(c *fiber.Ctx) error {
	flagged, err := h.svc.SweepInactive(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if flagged == nil {
		flagged = []string{}
	}
	return c.JSON(fiber.Map{"eliminated": flagged})
}

// GetEvents replays up to ?n= (default 50) of the latest events of a game.
func (h *Controller) GetEvents(c *fiber.Ctx) error {
	if h.history == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event history is disabled"})
	}
	n, err := strconv.Atoi(c.Query("n", "50"))
	if err != nil || n <= 0 {
		return badRequest(c, "n must be a positive number")
	}
	events, err := h.history.Recent(c.Params("id"), n)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(events)
}
