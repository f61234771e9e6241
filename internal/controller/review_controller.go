package controller

import (
	"errors"

	"brd-aks-be/internal/pkg/serverutils"
	"brd-aks-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	ListChunks(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	CopySession(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	r.Get("/sessions/:id/chunks", c.ListChunks)
	r.Post("/chunks/:id/restore", c.Restore)
	r.Post("/sessions/:src/copy/:dst", c.CopySession)
}

func (c *reviewController) ListChunks(ctx *fiber.Ctx) error {
	res, err := c.reviewService.ListChunks(
		ctx.Context(),
		ctx.Params("id"),
		ctx.Query("status"),
		ctx.Query("label"),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chunks", res))
}

func (c *reviewController) Restore(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chunk id")
	}

	res, err := c.reviewService.Restore(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrChunkNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore chunk", res))
}

func (c *reviewController) CopySession(ctx *fiber.Ctx) error {
	res, err := c.reviewService.CopySession(ctx.Context(), ctx.Params("src"), ctx.Params("dst"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success copy session", res))
}
