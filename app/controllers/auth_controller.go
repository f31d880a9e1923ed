package controllers

import (
	"strconv"

	"github.com/Raul1156/monopoly/app/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Controller) CreateUser(c *fiber.Ctx) error {
	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.svc.Register(c.Context(), *userDto)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *Controller) Login(c *fiber.Ctx) error {
	userDto := new(models.UserDto)
	if err := c.BodyParser(userDto); err != nil {
		return badRequest(c, err.Error())
	}
	t, err := h.svc.Login(c.Context(), *userDto)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"access_token": t})
}

func (h *Controller) Cur(c *fiber.Ctx) error {
	user, err := h.svc.User(c.Context(), userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}

func (h *Controller) GetUser(c *fiber.Ctx) error {
	user, err := h.svc.User(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}

// Ranking lists the best players by Elo; ?count= picks how many.
func (h *Controller) Ranking(c *fiber.Ctx) error {
	count := 0
	if q := c.Query("count"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return badRequest(c, "count must be a number")
		}
		count = n
	}
	users, err := h.svc.Ranking(c.Context(), count)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(users)
}

func (h *Controller) UpdateUser(c *fiber.Ctx) error {
	dto := new(models.ProfileDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.svc.UpdateProfile(c.Context(), c.Params("id"), userID(c), *dto)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}
