package planning

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kilianp07/cleanplan/app"
	"github.com/kilianp07/cleanplan/pkg/export"
)

// Runner produces planning reports.
type Runner interface {
	Run(ctx context.Context) (*app.Report, error)
}

// NewHandler exposes the planning API:
//
//	GET /api/simulation     run summary and price table
//	GET /api/planning       planning rows as JSON
//	GET /api/planning.csv   planning rows as CSV
//	GET /api/planning.xlsx  planning rows as an Excel workbook
//	GET /api/prices.csv     price table as CSV
func NewHandler(r Runner) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/simulation", get(r, func(w http.ResponseWriter, rep *app.Report) error {
		w.Header().Set("Content-Type", "application/json")
		return json.NewEncoder(w).Encode(rep.Summary())
	}))
	mux.Handle("/api/planning", get(r, func(w http.ResponseWriter, rep *app.Report) error {
		w.Header().Set("Content-Type", "application/json")
		return export.WriteJSON(w, export.Rows(rep.Schedule.Tasks))
	}))
	mux.Handle("/api/planning.csv", get(r, func(w http.ResponseWriter, rep *app.Report) error {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="planning_interventions.csv"`)
		return export.WriteCSV(w, export.Rows(rep.Schedule.Tasks))
	}))
	mux.Handle("/api/planning.xlsx", get(r, func(w http.ResponseWriter, rep *app.Report) error {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="planning_interventions.xlsx"`)
		return export.WriteXLSX(w, export.Rows(rep.Schedule.Tasks))
	}))
	mux.Handle("/api/prices.csv", get(r, func(w http.ResponseWriter, rep *app.Report) error {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		return export.WritePricesCSV(w, rep.Pricing.Table)
	}))
	return mux
}

func get(r Runner, write func(http.ResponseWriter, *app.Report) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		rep, err := r.Run(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if err := write(w, rep); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
