package controllers

import (
	"github.com/Raul1156/monopoly/app/models"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/platform/queries"
	"github.com/gofiber/fiber/v2"
)

func (h *Controller) RollDice(c *fiber.Ctx) error {
	return c.JSON(h.svc.RollDice())
}

func (h *Controller) Move(c *fiber.Ctx) error {
	dto := new(models.MoveDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	var roll *engine.Roll
	if dto.Dice1 != 0 || dto.Dice2 != 0 {
		r, err := engine.NewRoll(dto.Dice1, dto.Dice2)
		if err != nil {
			return h.fail(c, err)
		}
		roll = &r
	}
	res, err := h.svc.MovePlayer(c.Context(), dto.Game_id, dto.Player_id, userID(c), roll)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Controller) UseStation(c *fiber.Ctx) error {
	dto := new(models.StationDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.svc.UseStation(c.Context(), dto.Game_id, dto.Player_id, userID(c), dto.From, dto.To)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Controller) BuyProperty(c *fiber.Ctx) error {
	dto := new(models.BuyDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	var (
		res *queries.BuyResult
		err error
	)
	if dto.Property_id == 0 {
		res, err = h.svc.BuyCurrent(c.Context(), dto.Game_id, dto.Player_id, userID(c))
	} else {
		res, err = h.svc.BuyProperty(c.Context(), dto.Game_id, dto.Player_id, userID(c), dto.Property_id)
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Controller) PayRent(c *fiber.Ctx) error {
	dto := new(models.RentDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.svc.PayRent(c.Context(), dto.Game_id, dto.From_player_id, dto.To_player_id, userID(c), dto.Amount)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Controller) DrawAndApply(c *fiber.Ctx) error {
	dto := new(models.CardDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.svc.DrawAndApply(c.Context(), dto.Game_id, dto.Player_id, userID(c), dto.Type)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Controller) PayOutOfJail(c *fiber.Ctx) error {
	dto := new(models.TurnDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.svc.PayOutOfJail(c.Context(), dto.Game_id, dto.Player_id, userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Controller) EndTurn(c *fiber.Ctx) error {
	dto := new(models.TurnDto)
	if err := c.BodyParser(dto); err != nil {
		return badRequest(c, err.Error())
	}
	st, err := h.svc.EndTurn(c.Context(), dto.Game_id, dto.Player_id, userID(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st.Dto())
}
