package controller

import (
	"brd-aks-be/internal/dto"
	"brd-aks-be/internal/pkg/serverutils"
	"brd-aks-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIngestController interface {
	RegisterRoutes(r fiber.Router)
	SubmitContent(ctx *fiber.Ctx) error
	SubmitData(ctx *fiber.Ctx) error
}

type ingestController struct {
	ingestionService service.IIngestionService
}

func NewIngestController(ingestionService service.IIngestionService) IIngestController {
	return &ingestController{
		ingestionService: ingestionService,
	}
}

func (c *ingestController) RegisterRoutes(r fiber.Router) {
	r.Post("/ingest/content", c.SubmitContent)
	r.Post("/sessions/:id/ingest/data", c.SubmitData)
}

func (c *ingestController) SubmitContent(ctx *fiber.Ctx) error {
	var req dto.SubmitContentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.SubmitContent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Content accepted for classification", res))
}

func (c *ingestController) SubmitData(ctx *fiber.Ctx) error {
	var req dto.SubmitDataRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestionService.SubmitData(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Chunks accepted for classification", res))
}
