package mapper

import (
	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ToDailyReportResponse proyecta un reporte diario.
func ToDailyReportResponse(r *entity.DailyReport) *dto.DailyReportResponse {
	if r == nil {
		return nil
	}
	return &dto.DailyReportResponse{
		ID:             r.ID,
		BranchID:       r.BranchID,
		ReportDate:     r.ReportDate,
		TotalSales:     r.TotalSales,
		TotalRevenue:   r.TotalRevenue,
		TotalExpenses:  r.TotalExpenses,
		NetProfit:      r.NetProfit,
		TopSellingItem: textPtr(r.TopSellingItem),
		ExportStatus:   r.ExportStatus,
		ExportedAt:     timePtr(r.ExportedAt),
		CreatedAt:      r.CreatedAt,
	}
}
