package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aumtheo/Energie-Berechner/internal/models"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Energiebilanz"

type ExportService struct {
	logService LogWriter
}

func NewExportService(logService LogWriter) (*ExportService, error) {
	if logService == nil {
		return nil, errors.New("log service is nil")
	}

	return &ExportService{logService: logService}, nil
}

// BuildWorkbook renders a balance result into an xlsx workbook.
func (s *ExportService) BuildWorkbook(ctx context.Context, building models.Building, result BalanceResult) ([]byte, error) {
	if s == nil {
		return nil, errors.New("export service is nil")
	}
	if s.logService == nil {
		return nil, errors.New("log service is nil")
	}

	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	if err := file.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	name := building.Name
	if name == "" {
		name = building.ID
	}

	rows := [][]interface{}{
		{"Gebäude", name},
		{"Gebäudeart", string(building.UseCategory)},
		{"Ort", building.Location},
		{},
		{"Gebäudedaten", "Wert", "Einheit"},
		{"Höhe", result.BuildingData.Height, "m"},
		{"Grundfläche", result.BuildingData.Footprint, "m²"},
		{"Bruttogrundfläche", result.BuildingData.GrossFloorArea, "m²"},
		{"Nutzfläche", result.BuildingData.NetFloorArea, "m²"},
		{"Volumen", result.BuildingData.Volume, "m³"},
		{},
		{"Nutzenergie", "Wert", "Einheit"},
		{"Heizung", result.UsefulEnergy.Heating, "kWh/a"},
		{"Trinkwarmwasser", result.UsefulEnergy.HotWater, "kWh/a"},
		{"Gesamt", result.UsefulEnergy.Total, "kWh/a"},
		{"Spezifisch", result.UsefulEnergy.Specific, "kWh/m²a"},
		{},
		{"Endenergie", "Wert", "Einheit"},
		{"Heizung", result.FinalEnergy.Heating, "kWh/a"},
		{"Trinkwarmwasser", result.FinalEnergy.HotWater, "kWh/a"},
		{"Lüftung", result.FinalEnergy.Ventilation, "kWh/a"},
		{"Beleuchtung", result.FinalEnergy.Lighting, "kWh/a"},
		{"Prozesse", result.FinalEnergy.Process, "kWh/a"},
		{"Gesamt", result.FinalEnergy.Total, "kWh/a"},
		{"Spezifisch", result.FinalEnergy.Specific, "kWh/m²a"},
		{},
		{"Primärenergie", "Wert", "Einheit"},
		{"Gesamt", result.PrimaryEnergy.Total, "kWh/a"},
		{"Spezifisch", result.PrimaryEnergy.Specific, "kWh/m²a"},
		{},
		{"Photovoltaik", "Wert", "Einheit"},
		{"Ertrag", result.PV.Yield, "kWh/a"},
		{"Stromüberschuss", result.PV.Surplus, "kWh/a"},
		{},
		{"GWP", "Wert", "Einheit"},
		{"Variante 1", result.Emissions.Variant1, "kg CO2-eq/a"},
		{"Variante 2", result.Emissions.Variant2, "kg CO2-eq/a"},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("row %d cell name: %w", i+1, err)
		}
		if err := file.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		failMsg := fmt.Sprintf("building=%s: %v", building.ID, err)
		_ = s.logService.CreateLog(ctx, LogActionResultExport, LogOutcomeFail, &failMsg)
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	successMsg := fmt.Sprintf("building=%s bytes=%d", building.ID, buffer.Len())
	_ = s.logService.CreateLog(ctx, LogActionResultExport, LogOutcomeSuccess, &successMsg)

	return buffer.Bytes(), nil
}
