package rest

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/amortization"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/rentlookup"
	"github.com/simaogato/homedecide-backend/internal/usecase/report"
)

type projectionController struct {
	validator         *validator.Validate
	projectionService *projection.Service
	rentLookupService *rentlookup.RentLookupService
}

func newProjectionController(projectionService *projection.Service, rentLookupService *rentlookup.RentLookupService) *projectionController {
	return &projectionController{
		validator:         validator.New(),
		projectionService: projectionService,
		rentLookupService: rentLookupService,
	}
}

func registerRoutes(router fiber.Router, cntrl *projectionController) {
	router.Post("/projections", cntrl.createProjectionHandler)
	router.Get("/rents/:city/:bedrooms", cntrl.getRentHandler)
	router.Get("/cities", cntrl.listCitiesHandler)
	router.Post("/amortization", cntrl.amortizationHandler)
}

func (c *projectionController) createProjectionHandler(ctx *fiber.Ctx) error {
	var req createProjectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := c.validate(req); err != nil {
		return err
	}

	p, err := c.projectionService.Project(ctx.UserContext(), projection.Request{
		Input:    req.Input.toDomain(),
		City:     req.City,
		Bedrooms: req.Bedrooms,
	})
	if err != nil {
		return err
	}

	r, err := report.Build(p.Result)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(createProjectionResponse{Projection: p, Report: r})
}

func (c *projectionController) getRentHandler(ctx *fiber.Ctx) error {
	city, err := url.PathUnescape(ctx.Params("city"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed city")
	}
	bedrooms, err := ctx.ParamsInt("bedrooms")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bedrooms must be an integer")
	}

	req := getRentRequest{City: strings.TrimSpace(city), Bedrooms: bedrooms}
	if err := c.validate(req); err != nil {
		return err
	}

	rent, ok, err := c.rentLookupService.AverageRent(ctx.UserContext(), req.City, req.Bedrooms)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no rent data for %s", domain.ErrNotFound, req.City)
	}

	return ctx.JSON(getRentResponse{
		City:        req.City,
		Bedrooms:    req.Bedrooms,
		AverageRent: rent.StringFixed(2),
	})
}

func (c *projectionController) listCitiesHandler(ctx *fiber.Ctx) error {
	cities, err := c.rentLookupService.Cities(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(listCitiesResponse{Cities: cities})
}

func (c *projectionController) amortizationHandler(ctx *fiber.Ctx) error {
	var req amortizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if err := c.validate(req); err != nil {
		return err
	}

	periods, err := c.projectionService.Schedule(ctx.UserContext(), req.Principal, req.AnnualRatePercent, req.TermYears)
	if err != nil {
		return err
	}
	payment, err := amortization.MonthlyPayment(req.Principal, req.AnnualRatePercent, req.TermYears)
	if err != nil {
		return err
	}

	return ctx.JSON(amortizationResponse{MonthlyPayment: payment, Periods: periods})
}

func (c *projectionController) validate(v interface{}) error {
	err := c.validator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewInvalidInputError(fe.Field(), fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// errorHandler maps domain errors to HTTP status codes
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"

	var ferr *fiber.Error
	switch {
	case errors.As(err, &ferr):
		code, msg = ferr.Code, ferr.Message
	case errors.Is(err, domain.ErrInvalidInput):
		code, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		code, msg = fiber.StatusNotFound, err.Error()
	}

	return ctx.Status(code).JSON(errorResponse{Error: msg})
}
