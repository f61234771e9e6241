package controller

import (
	"errors"

	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/pkg/serverutils"
	"brd-aks-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBrdController interface {
	RegisterRoutes(r fiber.Router)
	CreateSnapshot(ctx *fiber.Ctx) error
	SnapshotSignals(ctx *fiber.Ctx) error
	StoreSection(ctx *fiber.Ctx) error
	LatestSections(ctx *fiber.Ctx) error
}

type brdController struct {
	snapshotService service.ISnapshotService
}

func NewBrdController(snapshotService service.ISnapshotService) IBrdController {
	return &brdController{
		snapshotService: snapshotService,
	}
}

func (c *brdController) RegisterRoutes(r fiber.Router) {
	r.Post("/sessions/:id/snapshots", c.CreateSnapshot)
	r.Get("/snapshots/:id/signals", c.SnapshotSignals)
	r.Post("/sessions/:id/sections", c.StoreSection)
	r.Get("/sessions/:id/sections/latest", c.LatestSections)
}

func (c *brdController) CreateSnapshot(ctx *fiber.Ctx) error {
	res, err := c.snapshotService.CreateSnapshot(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create snapshot", res))
}

func (c *brdController) SnapshotSignals(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid snapshot id")
	}

	res, err := c.snapshotService.SignalsForSnapshot(ctx.Context(), id, ctx.Query("label"))
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list snapshot signals", res))
}

func (c *brdController) StoreSection(ctx *fiber.Ctx) error {
	var req dto.StoreSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.snapshotService.StoreSection(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrSnapshotNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success store section", res))
}

func (c *brdController) LatestSections(ctx *fiber.Ctx) error {
	res, err := c.snapshotService.LatestSections(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list latest sections", res))
}
