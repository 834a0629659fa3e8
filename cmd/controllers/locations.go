package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/aumtheo/Energie-Berechner/internal/models"

	"github.com/gin-gonic/gin"
)

type LocationProvider interface {
	GetLocations(ctx context.Context) ([]models.Location, error)
}

type LocationsController struct {
	service LocationProvider
}

type LocationsResponse struct {
	Locations []models.Location `json:"locations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewLocationsController(service LocationProvider) (*LocationsController, error) {
	if service == nil {
		return nil, errors.New("location service is nil")
	}

	return &LocationsController{service: service}, nil
}

func (c *LocationsController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("locations controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/locations", c.getLocations)
	return nil
}

func (c *LocationsController) getLocations(ctx *gin.Context) {
	locations, err := c.service.GetLocations(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load locations"})
		return
	}

	ctx.JSON(http.StatusOK, LocationsResponse{Locations: locations})
}
