package httpapi

import (
	"io"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

// EncodePlayerReports writes reports in the same shape /v1/reports/players serves.
func EncodePlayerReports(w io.Writer, reports []usecase.PlayerReport, indent bool) error {
	enc := sonic.ConfigDefault.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(reportsToDTO(reports))
}
