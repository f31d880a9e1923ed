package controllers

import (
	"errors"

	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/platform/board"
	"github.com/Raul1156/monopoly/platform/cache"
	"github.com/Raul1156/monopoly/platform/database"
	"github.com/Raul1156/monopoly/platform/queries"
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// History replays the recent events of a game.
type History interface {
	Recent(gameID string, n int) ([]cache.Event, error)
}

// Controller holds the HTTP handlers.
type Controller struct {
	svc     *queries.Service
	board   *board.Board
	history History
	log     logrus.FieldLogger
}

func New(svc *queries.Service, b *board.Board, log logrus.FieldLogger) *Controller {
	return &Controller{svc: svc, board: b, log: log}
}

// WithHistory enables the event replay route.
func (h *Controller) WithHistory(history History) *Controller {
	h.history = history
	return h
}

var statusOf = []struct {
	err    error
	status int
}{
	{engine.ErrGameNotFound, fiber.StatusNotFound},
	{engine.ErrPlayerNotFound, fiber.StatusNotFound},
	{engine.ErrPropertyNotFound, fiber.StatusNotFound},
	{database.ErrUserNotFound, fiber.StatusNotFound},

	{queries.ErrInvalidCredentials, fiber.StatusUnauthorized},

	{queries.ErrNotYourPlayer, fiber.StatusForbidden},
	{queries.ErrNotInGame, fiber.StatusForbidden},
	{queries.ErrNotYourTurn, fiber.StatusForbidden},
	{queries.ErrNotYourProfile, fiber.StatusForbidden},

	{queries.ErrGameStarted, fiber.StatusConflict},
	{queries.ErrGameFull, fiber.StatusConflict},
	{queries.ErrAlreadyJoined, fiber.StatusConflict},
	{queries.ErrAlreadyRolled, fiber.StatusConflict},
	{queries.ErrAlreadyDrew, fiber.StatusConflict},
	{queries.ErrPropertyOwned, fiber.StatusConflict},
	{database.ErrUserExists, fiber.StatusConflict},
	{database.ErrOwnershipClash, fiber.StatusConflict},

	{engine.ErrInvalidMove, fiber.StatusBadRequest},
	{engine.ErrInsufficientOwnership, fiber.StatusBadRequest},
	{engine.ErrInsufficientFunds, fiber.StatusBadRequest},
	{engine.ErrEmptyDeck, fiber.StatusBadRequest},
	{engine.ErrUnsupportedEffect, fiber.StatusBadRequest},
	{engine.ErrInvalidDeck, fiber.StatusBadRequest},
	{engine.ErrPlayerBankrupt, fiber.StatusBadRequest},
	{engine.ErrInvalidAmount, fiber.StatusBadRequest},
	{queries.ErrGameNotStarted, fiber.StatusBadRequest},
	{queries.ErrNotEnoughPlayers, fiber.StatusBadRequest},
	{queries.ErrMustRoll, fiber.StatusBadRequest},
	{queries.ErrNotForSale, fiber.StatusBadRequest},
}

// fail writes err as {"error": msg} with the status matching its kind.
func (h *Controller) fail(c *fiber.Ctx, err error) error {
	for _, s := range statusOf {
		if errors.Is(err, s.err) {
			return c.Status(s.status).JSON(fiber.Map{"error": err.Error()})
		}
	}
	h.log.WithError(err).WithField("path", c.Path()).Error("unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// userID reads the caller from the token JWTProtected stored.
func userID(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}
