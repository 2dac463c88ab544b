package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"hms-backend/models"
)

// CustomersWorkbook builds an xlsx workbook with one row per customer.
func CustomersWorkbook(customers []models.Customer) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Customers"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "PhoneNumber"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, customer := range customers {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), customer.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), customer.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), customer.PhoneNumber)
	}

	return f, nil
}
