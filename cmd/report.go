package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gosuri/uitable"

	"github.com/kilianp07/cleanplan/app"
	"github.com/kilianp07/cleanplan/pkg/export"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

func printReport(w io.Writer, rep *app.Report, rows int) error {
	sum := rep.Summary()
	p := &printer{w: w}

	p.line(titleStyle.Render("Planning"))
	if rows > 0 && len(rep.Schedule.Tasks) > 0 {
		tbl := uitable.New()
		tbl.AddRow("DATE", "AGENT", "VÉHICULE", "TYPE")
		planning := export.Rows(rep.Schedule.Tasks)
		for _, r := range planning[:min(rows, len(planning))] {
			rec := r.Record()
			tbl.AddRow(rec[0], rec[1], rec[2], rec[3])
		}
		p.line(tbl.String())
	}
	switch {
	case sum.Placed == 0:
		p.line(warnStyle.Render("Aucune prestation à planifier avec les paramètres actuels."))
	case !sum.Complete:
		p.line(warnStyle.Render(fmt.Sprintf("Planning incomplet : %d prestations sur %d non placées.", sum.Unplaced, sum.Tasks)))
	default:
		p.line(okStyle.Render(fmt.Sprintf("Période nécessaire pour réaliser toutes les prestations : du %s au %s (%d jours calendaires).",
			sum.Start.Format(export.DateLayout), sum.End.Format(export.DateLayout), sum.SpanDays)))
	}

	p.line("")
	p.line(titleStyle.Render("Résultats de la simulation"))
	res := rep.Pricing
	stats := uitable.New()
	stats.AddRow("Prestations", sum.Tasks)
	stats.AddRow("Jours travaillés", sum.WorkingDays)
	stats.AddRow("Taux d'occupation", fmt.Sprintf("%.1f %%", sum.Utilization*100))
	stats.AddRow("Salaire", fmt.Sprintf("%.0f € (%.1f %%)", res.TotalMonthlyCost-res.MonthlyAmortization, res.Breakdown.SalaryPct))
	stats.AddRow("Amortissement", fmt.Sprintf("%.0f € (%.1f %%)", res.MonthlyAmortization, res.Breakdown.AmortizationPct))
	p.line(stats.String())

	p.line("")
	prices := uitable.New()
	prices.AddRow("TYPE PRESTATION", "TARIF (€)")
	for _, r := range res.Table {
		prices.AddRow(r.Label, fmt.Sprintf("%.2f €", r.Price))
	}
	p.line(prices.String())
	p.line(fmt.Sprintf("Prix moyen conseillé par prestation: %.2f €", res.BasePrice))
	p.line(fmt.Sprintf("Marge de sécurité: %.2f €", res.Margin))
	return p.err
}

// printer keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
