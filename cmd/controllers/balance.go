package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/aumtheo/Energie-Berechner/internal/models"
	"github.com/aumtheo/Energie-Berechner/internal/services"

	"github.com/gin-gonic/gin"
)

type BalanceCalculator interface {
	Calculate(input services.BalanceInput) (services.BalanceResult, error)
}

type ClimateResolver interface {
	ClimateForName(ctx context.Context, name string) (services.Climate, error)
}

// BalanceController serves ad-hoc balance computations from query
// parameters, without touching persisted buildings. Parameter names and
// defaults follow the original tool.
type BalanceController struct {
	balance   BalanceCalculator
	locations ClimateResolver
}

func NewBalanceController(balance BalanceCalculator, locations ClimateResolver) (*BalanceController, error) {
	if balance == nil {
		return nil, errors.New("balance service is nil")
	}
	if locations == nil {
		return nil, errors.New("location service is nil")
	}

	return &BalanceController{balance: balance, locations: locations}, nil
}

func (c *BalanceController) RegisterRoutes(router *gin.Engine) error {
	if c == nil {
		return errors.New("balance controller is nil")
	}
	if router == nil {
		return errors.New("router is nil")
	}

	router.GET("/api/balance", c.getBalance)
	return nil
}

func (c *BalanceController) getBalance(ctx *gin.Context) {
	building, err := buildingFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	climate, err := c.locations.ClimateForName(ctx.Request.Context(), ctx.Query("ort"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to resolve climate data"})
		return
	}

	input := services.BalanceInput{
		Building: building,
		UValues:  uValuesFromQuery(ctx),
		Climate:  climate,
	}

	result, err := c.balance.Calculate(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOccupancyDensity) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "personendichte must be positive"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to calculate balance"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func buildingFromQuery(ctx *gin.Context) (models.Building, error) {
	lengthNS, err := queryFloat(ctx, "laenge_ns", 20)
	if err != nil {
		return models.Building{}, err
	}
	widthEW, err := queryFloat(ctx, "breite_ow", 15)
	if err != nil {
		return models.Building{}, err
	}
	floors, err := queryInt(ctx, "geschosse", 3)
	if err != nil {
		return models.Building{}, err
	}
	floorHeight, err := queryFloat(ctx, "geschosshoehe", 2.8)
	if err != nil {
		return models.Building{}, err
	}
	density, err := queryFloat(ctx, "personendichte", 15)
	if err != nil {
		return models.Building{}, err
	}

	building := models.Building{
		LengthNS:         lengthNS,
		WidthEW:          widthEW,
		Floors:           floors,
		FloorHeight:      floorHeight,
		OccupancyDensity: density,
		UseCategory:      models.UseCategory(ctx.DefaultQuery("geb_klasse", string(models.UseOffice))),
	}

	if building.WindowAreaNorth, err = queryFloat(ctx, "fenster_nord", 0); err != nil {
		return models.Building{}, err
	}
	if building.WindowAreaSouth, err = queryFloat(ctx, "fenster_sued", 0); err != nil {
		return models.Building{}, err
	}
	if building.WindowAreaEast, err = queryFloat(ctx, "fenster_ost", 0); err != nil {
		return models.Building{}, err
	}
	if building.WindowAreaWest, err = queryFloat(ctx, "fenster_west", 0); err != nil {
		return models.Building{}, err
	}

	if building.GValueNorth, err = queryFloat(ctx, "g_wert_nord", 0.6); err != nil {
		return models.Building{}, err
	}
	if building.GValueSouth, err = queryFloat(ctx, "g_wert_sued", 0.6); err != nil {
		return models.Building{}, err
	}
	if building.GValueEast, err = queryFloat(ctx, "g_wert_ost", 0.6); err != nil {
		return models.Building{}, err
	}
	if building.GValueWest, err = queryFloat(ctx, "g_wert_west", 0.6); err != nil {
		return models.Building{}, err
	}

	return building, nil
}

// uValuesFromQuery reads the optional per-surface U-values. Values that do
// not parse are skipped, matching the original tool.
func uValuesFromQuery(ctx *gin.Context) map[models.ComponentType]float64 {
	uValues := make(map[models.ComponentType]float64)
	for _, componentType := range models.ComponentTypes {
		raw := ctx.Query("u_wert_" + string(componentType))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		uValues[componentType] = value
	}
	return uValues
}

func queryFloat(ctx *gin.Context, key string, fallback float64) (float64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("invalid value for " + key)
	}
	return value, nil
}

func queryInt(ctx *gin.Context, key string, fallback int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid value for " + key)
	}
	return value, nil
}
