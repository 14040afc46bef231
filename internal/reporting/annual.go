package reporting

import (
	"math"
	"sort"
	"time"

	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
)

// AnnualMonth is one month of the annual performance view.
type AnnualMonth struct {
	Month          string  `json:"month"`
	SC             int     `json:"sc"`
	CO             int     `json:"co"`
	NS             int     `json:"ns"`
	Total          int     `json:"total"`
	ConversionRate float64 `json:"conversion_rate"`
}

// AnnualRanking is one doctor's year-to-date standing.
type AnnualRanking struct {
	Name           string  `json:"name"`
	SC             int     `json:"sc"`
	CO             int     `json:"co"`
	Total          int     `json:"total"`
	ConversionRate float64 `json:"conversion_rate"`
}

// AnnualView bundles the year-level breakdown.
type AnnualView struct {
	Year    int             `json:"year"`
	Months  []AnnualMonth   `json:"months"`
	Ranking []AnnualRanking `json:"ranking"`
}

// ComputeAnnualTrend buckets the full outcome history into the 12 months of a
// year, with an optional doctor restriction ("All" or empty for everyone).
// Conversion rates are rounded to one decimal place for display.
func ComputeAnnualTrend(all []*outcomes.PatientOutcome, year int, doctor string) []AnnualMonth {
	if year == 0 {
		year = time.Now().Year()
	}
	months := make([]AnnualMonth, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, o := range all {
		if doctor != "" && doctor != FilterAll && o.Doctor != doctor {
			continue
		}
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil || d.Year() != year {
			continue
		}
		m := &months[int(d.Month())-1]
		switch o.Status {
		case outcomes.StatusSuccess:
			m.SC++
		case outcomes.StatusConsultOnly:
			m.CO++
		case outcomes.StatusNoShow:
			m.NS++
		}
	}
	for i := range months {
		m := &months[i]
		m.Total = m.SC + m.CO + m.NS
		m.ConversionRate = math.Round(conversionRate(m.SC, m.CO)*10) / 10
	}
	return months
}

// AnnualDoctorRanking ranks every registered doctor (active or not) by their
// conversion rate across the year. Same ordering rule as ComputePerformance.
func AnnualDoctorRanking(all []*outcomes.PatientOutcome, docs []*doctors.Doctor, year int) []AnnualRanking {
	if year == 0 {
		year = time.Now().Year()
	}
	rows := make([]AnnualRanking, 0, len(docs))
	for _, doc := range docs {
		row := AnnualRanking{Name: doc.Name}
		for _, o := range all {
			if o.Doctor != doc.Name {
				continue
			}
			d, err := time.Parse("2006-01-02", o.Date)
			if err != nil || d.Year() != year {
				continue
			}
			switch o.Status {
			case outcomes.StatusSuccess:
				row.SC++
				row.Total++
			case outcomes.StatusConsultOnly:
				row.CO++
				row.Total++
			case outcomes.StatusNoShow:
				row.Total++
			}
		}
		row.ConversionRate = conversionRate(row.SC, row.CO)
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ConversionRate != rows[j].ConversionRate {
			return rows[i].ConversionRate > rows[j].ConversionRate
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// DeriveAnnualView assembles the annual performance page in one call.
func DeriveAnnualView(all []*outcomes.PatientOutcome, docs []*doctors.Doctor, year int, doctor string) AnnualView {
	if year == 0 {
		year = time.Now().Year()
	}
	return AnnualView{
		Year:    year,
		Months:  ComputeAnnualTrend(all, year, doctor),
		Ranking: AnnualDoctorRanking(all, docs, year),
	}
}
