// Package reporting derives dashboard view models from raw outcome and doctor
// lists. Everything here is pure: no state, no clock reads except the default
// trend year, same inputs produce same outputs, cheap enough to recompute on
// every request.
package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/clinicpulse/outcomes-dashboard/internal/doctors"
	"github.com/clinicpulse/outcomes-dashboard/internal/outcomes"
)

// FilterAll is the sentinel meaning "no filter" for doctor and status criteria.
const FilterAll = "All"

// Criteria is the filter state applied to the outcome list. Empty date bounds
// mean unbounded; Doctor/Status empty or "All" match everything; PatientSearch
// is a case-insensitive substring match.
type Criteria struct {
	StartDate     string
	EndDate       string
	Doctor        string
	Status        string
	PatientSearch string
}

func (c Criteria) matches(o *outcomes.PatientOutcome) bool {
	// Dates are YYYY-MM-DD strings, so lexicographic comparison is
	// chronological. Bounds are inclusive.
	if c.StartDate != "" && o.Date < c.StartDate {
		return false
	}
	if c.EndDate != "" && o.Date > c.EndDate {
		return false
	}
	if c.Doctor != "" && c.Doctor != FilterAll && o.Doctor != c.Doctor {
		return false
	}
	if c.Status != "" && c.Status != FilterAll && string(o.Status) != c.Status {
		return false
	}
	if c.PatientSearch != "" &&
		!strings.Contains(strings.ToLower(o.PatientName), strings.ToLower(c.PatientSearch)) {
		return false
	}
	return true
}

// Stats holds status counts over a filtered outcome set.
type Stats struct {
	Total int `json:"total"`
	SC    int `json:"sc"`
	CO    int `json:"co"`
	NS    int `json:"ns"`
}

// DoctorPerformance is one row of the per-doctor ranking.
type DoctorPerformance struct {
	Doctor         string  `json:"doctor"`
	SC             int     `json:"sc"`
	CO             int     `json:"co"`
	NS             int     `json:"ns"`
	Total          int     `json:"total"`
	ConversionRate float64 `json:"conversion_rate"`
}

// StatusSlice is one wedge of the overall status distribution.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MonthlyBucket holds status counts for one calendar month.
type MonthlyBucket struct {
	Month string `json:"month"`
	SC    int    `json:"sc"`
	CO    int    `json:"co"`
	NS    int    `json:"ns"`
}

// DashboardView bundles every derived model the dashboard renders.
type DashboardView struct {
	FilteredOutcomes []*outcomes.PatientOutcome `json:"filtered_outcomes"`
	Stats            Stats                      `json:"stats"`
	Performance      []DoctorPerformance        `json:"performance"`
	OverallStatus    []StatusSlice              `json:"overall_status"`
	MonthlyTrend     []MonthlyBucket            `json:"monthly_trend"`
	NoShowFollowUps  []*outcomes.PatientOutcome `json:"no_show_follow_ups"`
}

// FilterOutcomes returns the outcomes matching every criterion, preserving
// input order.
func FilterOutcomes(outs []*outcomes.PatientOutcome, c Criteria) []*outcomes.PatientOutcome {
	filtered := make([]*outcomes.PatientOutcome, 0, len(outs))
	for _, o := range outs {
		if c.matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// ComputeStats counts statuses over a filtered set.
func ComputeStats(filtered []*outcomes.PatientOutcome) Stats {
	s := Stats{Total: len(filtered)}
	for _, o := range filtered {
		switch o.Status {
		case outcomes.StatusSuccess:
			s.SC++
		case outcomes.StatusConsultOnly:
			s.CO++
		case outcomes.StatusNoShow:
			s.NS++
		}
	}
	return s
}

// ComputePerformance builds the per-doctor ranking. The candidate set is the
// union of active doctors and every doctor name appearing anywhere in the
// unfiltered history, so a deactivated doctor keeps their historical rows and
// a new doctor shows up with zero counts. Counts are taken over the filtered
// set. Conversion rate is sc/(sc+co); no-shows never enter the denominator.
// Rows sort by rate descending, ties alphabetically by name.
func ComputePerformance(filtered, all []*outcomes.PatientOutcome, docs []*doctors.Doctor) []DoctorPerformance {
	var names []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, d := range docs {
		if d.IsActive {
			add(d.Name)
		}
	}
	for _, o := range all {
		add(o.Doctor)
	}

	rows := make([]DoctorPerformance, 0, len(names))
	for _, name := range names {
		row := DoctorPerformance{Doctor: name}
		for _, o := range filtered {
			if o.Doctor != name {
				continue
			}
			switch o.Status {
			case outcomes.StatusSuccess:
				row.SC++
			case outcomes.StatusConsultOnly:
				row.CO++
			case outcomes.StatusNoShow:
				row.NS++
			}
		}
		row.Total = row.SC + row.CO + row.NS
		row.ConversionRate = conversionRate(row.SC, row.CO)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ConversionRate != rows[j].ConversionRate {
			return rows[i].ConversionRate > rows[j].ConversionRate
		}
		return rows[i].Doctor < rows[j].Doctor
	})
	return rows
}

// ComputeOverallDistribution expands stats into named slices for proportional
// display. The three values always sum to stats.Total.
func ComputeOverallDistribution(s Stats) []StatusSlice {
	return []StatusSlice{
		{Name: string(outcomes.StatusSuccess), Value: s.SC},
		{Name: string(outcomes.StatusConsultOnly), Value: s.CO},
		{Name: string(outcomes.StatusNoShow), Value: s.NS},
	}
}

// ComputeMonthlyTrend buckets the filtered set into exactly 12 calendar months
// of the given year. Year 0 means the current calendar year. Outcomes with
// unparseable dates are skipped, never an error.
func ComputeMonthlyTrend(filtered []*outcomes.PatientOutcome, year int) []MonthlyBucket {
	if year == 0 {
		year = time.Now().Year()
	}
	buckets := make([]MonthlyBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()[:3]
	}
	for _, o := range filtered {
		d, err := time.Parse("2006-01-02", o.Date)
		if err != nil || d.Year() != year {
			continue
		}
		b := &buckets[int(d.Month())-1]
		switch o.Status {
		case outcomes.StatusSuccess:
			b.SC++
		case outcomes.StatusConsultOnly:
			b.CO++
		case outcomes.StatusNoShow:
			b.NS++
		}
	}
	return buckets
}

// NoShowFollowUps returns the no-show outcomes from the filtered set sorted by
// visit date descending, the order the follow-up list works through them.
func NoShowFollowUps(filtered []*outcomes.PatientOutcome) []*outcomes.PatientOutcome {
	var ns []*outcomes.PatientOutcome
	for _, o := range filtered {
		if o.Status == outcomes.StatusNoShow {
			ns = append(ns, o)
		}
	}
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].Date > ns[j].Date })
	return ns
}

// DeriveDashboardView is the single entry point the presentation layer calls
// on every state change.
func DeriveDashboardView(outs []*outcomes.PatientOutcome, docs []*doctors.Doctor, c Criteria, year int) DashboardView {
	filtered := FilterOutcomes(outs, c)
	stats := ComputeStats(filtered)
	return DashboardView{
		FilteredOutcomes: filtered,
		Stats:            stats,
		Performance:      ComputePerformance(filtered, outs, docs),
		OverallStatus:    ComputeOverallDistribution(stats),
		MonthlyTrend:     ComputeMonthlyTrend(filtered, year),
		NoShowFollowUps:  NoShowFollowUps(filtered),
	}
}

func conversionRate(sc, co int) float64 {
	if sc+co == 0 {
		return 0
	}
	return float64(sc) / float64(sc+co) * 100
}
