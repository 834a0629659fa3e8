package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aumtheo/Energie-Berechner/internal/models"
	"github.com/aumtheo/Energie-Berechner/internal/services"

	"github.com/gin-gonic/gin"
)

type BuildingProvider interface {
	CreateBuilding(ctx context.Context, building models.Building) (models.Building, error)
	GetBuildings(ctx context.Context) ([]models.Building, error)
	GetBuilding(ctx context.Context, id string) (models.Building, error)
	DeleteBuilding(ctx context.Context, id string) error
	CalculateBuilding(ctx context.Context, id string) (services.BalanceResult, error)
}

type WorkbookBuilder interface {
	BuildWorkbook(ctx context.Context, building models.Building, result services.BalanceResult) ([]byte, error)
}

type BuildingsController struct {
	service  BuildingProvider
	exporter WorkbookBuilder
}

type BuildingsResponse struct {
	Buildings []models.Building `json:"buildings"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func NewBuildingsController(service BuildingProvider, exporter WorkbookBuilder) (*BuildingsController, error) {
	if service == nil {
		return nil, errors.New("building service is nil")
	}
	if exporter == nil {
		return nil, errors.New("export service is nil")
	}

	return &BuildingsController{service: service, exporter: exporter}, nil
}

func (c *BuildingsController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("buildings controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.POST("/buildings", c.createBuilding)
	router.GET("/buildings", c.getBuildings)
	router.GET("/buildings/:id", c.getBuilding)
	router.DELETE("/buildings/:id", c.deleteBuilding)
	router.GET("/buildings/:id/balance", c.calculateBuilding)
	router.GET("/buildings/:id/export", c.exportBuilding)
	return nil
}

func (c *BuildingsController) createBuilding(ctx *gin.Context) {
	var building models.Building
	if err := ctx.ShouldBindJSON(&building); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid building payload"})
		return
	}

	created, err := c.service.CreateBuilding(ctx.Request.Context(), building)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBuilding) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create building"})
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

func (c *BuildingsController) getBuildings(ctx *gin.Context) {
	buildings, err := c.service.GetBuildings(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load buildings"})
		return
	}

	ctx.JSON(http.StatusOK, BuildingsResponse{Buildings: buildings})
}

func (c *BuildingsController) getBuilding(ctx *gin.Context) {
	building, err := c.service.GetBuilding(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBuildingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "building not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load building"})
		return
	}

	ctx.JSON(http.StatusOK, building)
}

func (c *BuildingsController) deleteBuilding(ctx *gin.Context) {
	if err := c.service.DeleteBuilding(ctx.Request.Context(), ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrBuildingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "building not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete building"})
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

func (c *BuildingsController) calculateBuilding(ctx *gin.Context) {
	result, err := c.service.CalculateBuilding(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeCalculationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *BuildingsController) exportBuilding(ctx *gin.Context) {
	id := ctx.Param("id")

	building, err := c.service.GetBuilding(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBuildingNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "building not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load building"})
		return
	}

	result, err := c.service.CalculateBuilding(ctx.Request.Context(), id)
	if err != nil {
		writeCalculationError(ctx, err)
		return
	}

	workbook, err := c.exporter.BuildWorkbook(ctx.Request.Context(), building, result)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build workbook"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="energiebilanz.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func writeCalculationError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBuildingNotFound):
		ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "building not found"})
	case errors.Is(err, services.ErrInvalidOccupancyDensity):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "personendichte must be positive"})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to calculate balance"})
	}
}
