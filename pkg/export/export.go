// Package export writes planning results in spreadsheet-friendly formats.
package export

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/kilianp07/cleanplan/core/model"
	"github.com/kilianp07/cleanplan/core/pricing"
)

// DateLayout is the DD/MM/YYYY format used in exported files.
const DateLayout = "02/01/2006"

// Header is the column header of the planning export.
var Header = []string{"Date", "Agent", "Véhicule", "Type"}

// Row is one line of the planning export.
type Row struct {
	Date    time.Time `json:"-"`
	Agent   string    `json:"agent"`
	Vehicle string    `json:"vehicle"`
	Kind    string    `json:"type"`
}

// MarshalJSON writes the date as DD/MM/YYYY.
func (r Row) MarshalJSON() ([]byte, error) {
	type alias Row
	return json.Marshal(struct {
		Date string `json:"date"`
		alias
	}{Date: r.Date.Format(DateLayout), alias: alias(r)})
}

// Record returns the row as CSV fields.
func (r Row) Record() []string {
	return []string{r.Date.Format(DateLayout), r.Agent, r.Vehicle, r.Kind}
}

// Rows converts scheduled tasks to export rows sorted by date, agent,
// vehicle id and service label.
func Rows(tasks []model.ScheduledTask) []Row {
	rows := make([]Row, len(tasks))
	for i, t := range tasks {
		rows[i] = Row{Date: t.Date, Agent: t.Agent, Vehicle: t.Vehicle.ID, Kind: t.Kind.Label()}
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			cmp.Compare(a.Agent, b.Agent),
			cmp.Compare(a.Vehicle, b.Vehicle),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
	return rows
}

// WriteJSON writes the planning rows to w in JSON format.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteCSV writes the planning rows to w in CSV format with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePricesCSV writes the price table with prices rounded to cents.
func WritePricesCSV(w io.Writer, table []pricing.PriceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Type prestation", "Tarif (€)"}); err != nil {
		return err
	}
	for _, r := range table {
		if err := cw.Write([]string{r.Label, strconv.FormatFloat(r.Price, 'f', 2, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
