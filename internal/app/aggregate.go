package app

import "caltrack/internal/domain"

// DaysPerWeek is the fixed length of a weekly summary window.
const DaysPerWeek = 7

// EntryView is a food entry decorated with its servings-scaled totals.
type EntryView struct {
	domain.FoodEntry
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

// DailySummary is one day of entries grouped by meal slot. Meals always holds
// all four slots; Totals covers calories and macros only, not fiber or sugar.
type DailySummary struct {
	Date   string                          `json:"date"`
	Meals  map[domain.MealType][]EntryView `json:"meals"`
	Totals domain.Macros                   `json:"totals"`
}

// DayTotals is the rolled-up intake of one calendar day.
type DayTotals struct {
	Date string `json:"date"`
	domain.Macros
}

// WeeklySummary holds seven consecutive days of totals in date order.
type WeeklySummary struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Days      []DayTotals `json:"days"`
}

// AggregateDay groups entries by meal slot, keeping their input order within
// each slot, and sums their effective macros. Entries with an unrecognised
// slot are left out of both the buckets and the totals.
func AggregateDay(date string, entries []domain.FoodEntry) DailySummary {
	meals := make(map[domain.MealType][]EntryView, len(domain.MealTypes))
	for _, m := range domain.MealTypes {
		meals[m] = []EntryView{}
	}

	var totals domain.Macros
	for _, e := range entries {
		bucket, ok := meals[e.MealType]
		if !ok {
			continue
		}
		eff := e.Effective()
		meals[e.MealType] = append(bucket, EntryView{
			FoodEntry:     e,
			TotalCalories: eff.Calories,
			TotalProtein:  eff.Protein,
			TotalCarbs:    eff.Carbs,
			TotalFat:      eff.Fat,
		})
		totals = totals.Add(eff)
	}

	return DailySummary{Date: date, Meals: meals, Totals: totals}
}

// AggregateWeek sums effective macros per day over the seven days starting at
// start. Every day is present, zeroed when nothing was logged; entries dated
// outside the window are ignored.
func AggregateWeek(start string, entries []domain.FoodEntry) WeeklySummary {
	days := make([]DayTotals, DaysPerWeek)
	index := make(map[string]int, DaysPerWeek)
	for i := range days {
		day := domain.AddDays(start, i)
		days[i] = DayTotals{Date: day}
		index[day] = i
	}

	for _, e := range entries {
		i, ok := index[e.Date]
		if !ok {
			continue
		}
		days[i].Macros = days[i].Macros.Add(e.Effective())
	}

	return WeeklySummary{
		StartDate: start,
		EndDate:   domain.AddDays(start, DaysPerWeek-1),
		Days:      days,
	}
}

// ByDate returns the week's totals keyed by calendar day.
func (w WeeklySummary) ByDate() map[string]domain.Macros {
	out := make(map[string]domain.Macros, len(w.Days))
	for _, d := range w.Days {
		out[d.Date] = d.Macros
	}
	return out
}
