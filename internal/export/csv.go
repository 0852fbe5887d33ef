// Package export renders aggregated reports to delimited text for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"barbershop-finance-api/internal/models"
)

// WriteCSV renders a report as CSV: a per-barber section, a per-service
// section and a summary block, separated by blank records. Rows are emitted in
// ascending id order so output is deterministic; monetary values are formatted
// to two decimal places.
func WriteCSV(w io.Writer, report *models.Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"BARBER_ID", "CUTS", "TOTAL"}); err != nil {
		return fmt.Errorf("failed to write barber header: %w", err)
	}
	for _, id := range sortedKeys(report.CountsByBarber) {
		row := []string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", report.CountsByBarber[id]),
			fmt.Sprintf("%.2f", report.TotalsByBarber[id]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write barber row: %w", err)
		}
	}

	if err := writer.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	if err := writer.Write([]string{"SERVICE_ID", "TOTAL"}); err != nil {
		return fmt.Errorf("failed to write service header: %w", err)
	}
	serviceIDs := make([]int64, 0, len(report.TotalsByService))
	for id := range report.TotalsByService {
		serviceIDs = append(serviceIDs, id)
	}
	sort.Slice(serviceIDs, func(i, j int) bool { return serviceIDs[i] < serviceIDs[j] })
	for _, id := range serviceIDs {
		row := []string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%.2f", report.TotalsByService[id]),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write service row: %w", err)
		}
	}

	if err := writer.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	summary := [][]string{
		{"TOTAL_REVENUE", fmt.Sprintf("%.2f", report.TotalRevenue)},
		{"TOTAL_EXPENSES", fmt.Sprintf("%.2f", report.TotalExpenses)},
		{"NET_PROFIT", fmt.Sprintf("%.2f", report.NetProfit)},
	}
	for _, row := range summary {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// FileName returns the conventional download name for a report export.
func FileName(report *models.Report) string {
	return fmt.Sprintf("report_%s_%s.csv", report.Period, report.ReferenceDate)
}

func sortedKeys(m map[int64]int) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
