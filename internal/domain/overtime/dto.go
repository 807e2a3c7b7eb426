package overtime

type WarningResponse struct {
	Kind       string  `json:"kind"`
	Date       string  `json:"date,omitempty"`
	Hours      float64 `json:"hours,omitempty"`
	LimitHours float64 `json:"limit_hours,omitempty"`
	Message    string  `json:"message"`
}

func ToWarningResponses(warnings []Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningResponse{
			Kind:       string(w.Kind),
			Date:       w.Date,
			Hours:      w.Hours,
			LimitHours: w.LimitHours,
			Message:    w.Message(),
		})
	}
	return out
}

type DayCalculationResponse struct {
	Date                 string  `json:"date"`
	WorkedHours          float64 `json:"worked_hours"`
	RegularHours         float64 `json:"regular_hours"`
	DayOvertimeHours     float64 `json:"day_overtime_hours"`
	NightOvertimeHours   float64 `json:"night_overtime_hours"`
	WeekendOvertimeHours float64 `json:"weekend_overtime_hours"`
	HolidayOvertimeHours float64 `json:"holiday_overtime_hours"`
	OvertimePayCents     int64   `json:"overtime_pay_cents"`
}

type BreakdownResponse struct {
	ContractID string `json:"contract_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	TotalWorkedHours     float64 `json:"total_worked_hours"`
	TotalOvertimeHours   float64 `json:"total_overtime_hours"`
	DayOvertimeHours     float64 `json:"day_overtime_hours"`
	NightOvertimeHours   float64 `json:"night_overtime_hours"`
	WeekendOvertimeHours float64 `json:"weekend_overtime_hours"`
	HolidayOvertimeHours float64 `json:"holiday_overtime_hours"`

	TotalOvertimePayCents   int64 `json:"total_overtime_pay_cents"`
	DayOvertimePayCents     int64 `json:"day_overtime_pay_cents"`
	NightOvertimePayCents   int64 `json:"night_overtime_pay_cents"`
	WeekendOvertimePayCents int64 `json:"weekend_overtime_pay_cents"`
	HolidayOvertimePayCents int64 `json:"holiday_overtime_pay_cents"`

	Daily    []DayCalculationResponse `json:"daily"`
	Warnings []WarningResponse        `json:"warnings"`
}

// ToBreakdownResponse maps the domain breakdown onto the transport shape.
func ToBreakdownResponse(b *Breakdown) *BreakdownResponse {
	daily := make([]DayCalculationResponse, 0, len(b.Daily))
	for _, d := range b.Daily {
		daily = append(daily, DayCalculationResponse{
			Date:                 d.Date.Format("2006-01-02"),
			WorkedHours:          float64(d.WorkedMinutes) / 60,
			RegularHours:         float64(d.Minutes.Regular) / 60,
			DayOvertimeHours:     float64(d.Minutes.Day) / 60,
			NightOvertimeHours:   float64(d.Minutes.Night) / 60,
			WeekendOvertimeHours: float64(d.Minutes.Weekend) / 60,
			HolidayOvertimeHours: float64(d.Minutes.Holiday) / 60,
			OvertimePayCents:     d.OvertimePay.Total(),
		})
	}

	return &BreakdownResponse{
		ContractID:              b.ContractID,
		Year:                    b.Year,
		Month:                   b.Month,
		TotalWorkedHours:        b.TotalWorkedHours,
		TotalOvertimeHours:      b.TotalOvertimeHours,
		DayOvertimeHours:        b.DayOvertimeHours,
		NightOvertimeHours:      b.NightOvertimeHours,
		WeekendOvertimeHours:    b.WeekendOvertimeHours,
		HolidayOvertimeHours:    b.HolidayOvertimeHours,
		TotalOvertimePayCents:   b.TotalOvertimePayCents,
		DayOvertimePayCents:     b.DayOvertimePayCents,
		NightOvertimePayCents:   b.NightOvertimePayCents,
		WeekendOvertimePayCents: b.WeekendOvertimePayCents,
		HolidayOvertimePayCents: b.HolidayOvertimePayCents,
		Daily:                   daily,
		Warnings:                ToWarningResponses(b.Warnings),
	}
}

type WeeklySummaryResponse struct {
	WeekStart           string  `json:"week_start"`
	WeekEnd             string  `json:"week_end"`
	WorkedHours         float64 `json:"worked_hours"`
	OvertimeHours       float64 `json:"overtime_hours"`
	WeeklyLimitExceeded bool    `json:"weekly_limit_exceeded"`
}

func ToWeeklySummaryResponses(summaries []WeeklySummary) []WeeklySummaryResponse {
	out := make([]WeeklySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, WeeklySummaryResponse{
			WeekStart:           s.WeekStart.Format("2006-01-02"),
			WeekEnd:             s.WeekEnd.Format("2006-01-02"),
			WorkedHours:         s.WorkedHours,
			OvertimeHours:       s.OvertimeHours,
			WeeklyLimitExceeded: s.WeeklyLimitExceeded,
		})
	}
	return out
}
