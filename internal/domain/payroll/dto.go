package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	ContractID string `json:"contract_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	// When true the run also pays the punctuality bonus.
	PunctualityBonus bool `json:"punctuality_bonus"`
	// When true the meal allowance is also paid on holiday and
	// vacation-flagged days.
	MealOnHolidayOrVacation bool `json:"meal_on_holiday_or_vacation"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionConfigRequest struct {
	ContractID               string  `json:"contract_id"`
	SocialSecurityPct        float64 `json:"social_security_pct"`
	IncomeTaxPct             float64 `json:"income_tax_pct"`
	SurchargePct             float64 `json:"surcharge_pct"`
	SurchargeThresholdCents  int64   `json:"surcharge_threshold_cents"`
	SolidarityPct            float64 `json:"solidarity_pct"`
	SolidarityThresholdCents int64   `json:"solidarity_threshold_cents"`
}

// Validate enforces the statutory bounds: social security is the fixed
// employee rate of 11%, income tax sits in the 0-48% bracket range and
// the extra levies are capped at 5% above their thresholds.
func (r *DeductionConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if r.SocialSecurityPct != 11 {
		errs = append(errs, validator.ValidationError{Field: "social_security_pct", Message: "employee social security rate is fixed at 11%"})
	}
	if r.IncomeTaxPct < 0 || r.IncomeTaxPct > 48 {
		errs = append(errs, validator.ValidationError{Field: "income_tax_pct", Message: "must be between 0 and 48"})
	}
	if r.SurchargePct < 0 || r.SurchargePct > 5 {
		errs = append(errs, validator.ValidationError{Field: "surcharge_pct", Message: "must be between 0 and 5"})
	}
	if r.SurchargePct > 0 && r.SurchargeThresholdCents <= 0 {
		errs = append(errs, validator.ValidationError{Field: "surcharge_threshold_cents", Message: "threshold is required when the surcharge is set"})
	}
	if r.SolidarityPct < 0 || r.SolidarityPct > 5 {
		errs = append(errs, validator.ValidationError{Field: "solidarity_pct", Message: "must be between 0 and 5"})
	}
	if r.SolidarityPct > 0 && r.SolidarityThresholdCents <= 0 {
		errs = append(errs, validator.ValidationError{Field: "solidarity_threshold_cents", Message: "threshold is required when the solidarity levy is set"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *DeductionConfigRequest) ToConfig() *DeductionConfig {
	return &DeductionConfig{
		ContractID:               r.ContractID,
		SocialSecurityPct:        decimal.NewFromFloat(r.SocialSecurityPct),
		IncomeTaxPct:             decimal.NewFromFloat(r.IncomeTaxPct),
		SurchargePct:             decimal.NewFromFloat(r.SurchargePct),
		SurchargeThresholdCents:  r.SurchargeThresholdCents,
		SolidarityPct:            decimal.NewFromFloat(r.SolidarityPct),
		SolidarityThresholdCents: r.SolidarityThresholdCents,
	}
}

type MealAllowanceConfigRequest struct {
	ContractID          string  `json:"contract_id"`
	DailyAmountCents    int64   `json:"daily_amount_cents"`
	PaymentMethod       string  `json:"payment_method"`
	ExcludedMonths      []int   `json:"excluded_months"`
	DuodecimosEnabled   bool    `json:"duodecimos_enabled"`
	MinimumRegularHours float64 `json:"minimum_regular_hours"`
}

func (r *MealAllowanceConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if r.DailyAmountCents <= 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_amount_cents", Message: "must be positive"})
	}
	if !MealPaymentMethod(r.PaymentMethod).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be cash or card"})
	}
	for _, m := range r.ExcludedMonths {
		if !validator.IsValidMonth(m) {
			errs = append(errs, validator.ValidationError{Field: "excluded_months", Message: "months must be between 1 and 12"})
			break
		}
	}
	if r.MinimumRegularHours < 0 || r.MinimumRegularHours > 12 {
		errs = append(errs, validator.ValidationError{Field: "minimum_regular_hours", Message: "must be between 0 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *MealAllowanceConfigRequest) ToConfig() *MealAllowanceConfig {
	minHours := r.MinimumRegularHours
	if minHours == 0 {
		minHours = 4
	}
	return &MealAllowanceConfig{
		ContractID:          r.ContractID,
		DailyAmountCents:    r.DailyAmountCents,
		PaymentMethod:       MealPaymentMethod(r.PaymentMethod),
		ExcludedMonths:      r.ExcludedMonths,
		DuodecimosEnabled:   r.DuodecimosEnabled,
		MinimumRegularHours: minHours,
	}
}

type MileageTripRequest struct {
	ContractID  string  `json:"contract_id"`
	Date        string  `json:"date"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DistanceKm  float64 `json:"distance_km"`
	Purpose     string  `json:"purpose"`
}

func (r *MileageTripRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ContractID) {
		errs = append(errs, validator.ValidationError{Field: "contract_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if validator.IsEmpty(r.Origin) {
		errs = append(errs, validator.ValidationError{Field: "origin", Message: "origin is required"})
	}
	if validator.IsEmpty(r.Destination) {
		errs = append(errs, validator.ValidationError{Field: "destination", Message: "destination is required"})
	}
	if r.DistanceKm <= 0 {
		errs = append(errs, validator.ValidationError{Field: "distance_km", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *MileageTripRequest) ToTrip() *MileageTrip {
	date, _ := validator.IsValidDate(r.Date)
	return &MileageTrip{
		ContractID:  r.ContractID,
		Date:        date,
		Origin:      r.Origin,
		Destination: r.Destination,
		DistanceKm:  r.DistanceKm,
		Purpose:     r.Purpose,
	}
}

type ResultResponse struct {
	ContractID string `json:"contract_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`

	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	RegularPayCents  int64 `json:"regular_pay_cents"`
	OvertimePayCents int64 `json:"overtime_pay_cents"`

	MealAllowanceCents        int64 `json:"meal_allowance_cents"`
	MealTaxableCents          int64 `json:"meal_taxable_cents"`
	MileageReimbursementCents int64 `json:"mileage_reimbursement_cents"`
	BonusCents                int64 `json:"bonus_cents"`

	GrossPayCents int64 `json:"gross_pay_cents"`

	SocialSecurityCents  int64 `json:"social_security_cents"`
	IncomeTaxCents       int64 `json:"income_tax_cents"`
	SurchargeCents       int64 `json:"surcharge_cents"`
	SolidarityCents      int64 `json:"solidarity_cents"`
	TotalDeductionsCents int64 `json:"total_deductions_cents"`

	NetPayCents int64 `json:"net_pay_cents"`

	Warnings []string          `json:"warnings"`
	Error    *CalculationError `json:"error,omitempty"`
}

// ToResultResponse flattens a Result for transport; warnings are
// rendered as messages.
func ToResultResponse(r *Result) *ResultResponse {
	warnings := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		warnings = append(warnings, w.Message())
	}

	return &ResultResponse{
		ContractID:                r.ContractID,
		Year:                      r.Year,
		Month:                     r.Month,
		RegularHours:              r.RegularHours,
		OvertimeHours:             r.OvertimeHours,
		RegularPayCents:           r.RegularPayCents,
		OvertimePayCents:          r.OvertimePayCents,
		MealAllowanceCents:        r.MealAllowanceCents,
		MealTaxableCents:          r.MealTaxableCents,
		MileageReimbursementCents: r.MileageReimbursementCents,
		BonusCents:                r.BonusCents,
		GrossPayCents:             r.GrossPayCents,
		SocialSecurityCents:       r.SocialSecurityCents,
		IncomeTaxCents:            r.IncomeTaxCents,
		SurchargeCents:            r.SurchargeCents,
		SolidarityCents:           r.SolidarityCents,
		TotalDeductionsCents:      r.TotalDeductionsCents,
		NetPayCents:               r.NetPayCents,
		Warnings:                  warnings,
		Error:                     r.Error,
	}
}

type RunResponse struct {
	ID         string `json:"id"`
	ContractID string `json:"contract_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Status     string `json:"status"`

	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	RegularPayCents      int64 `json:"regular_pay_cents"`
	OvertimePayCents     int64 `json:"overtime_pay_cents"`
	MealAllowanceCents   int64 `json:"meal_allowance_cents"`
	MileageCents         int64 `json:"mileage_cents"`
	BonusCents           int64 `json:"bonus_cents"`
	GrossPayCents        int64 `json:"gross_pay_cents"`
	TotalDeductionsCents int64 `json:"total_deductions_cents"`
	NetPayCents          int64 `json:"net_pay_cents"`

	Warnings  []string `json:"warnings"`
	CreatedAt string   `json:"created_at"`
}

func ToRunResponse(r *Run) *RunResponse {
	warnings := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		warnings = append(warnings, w.Message())
	}

	return &RunResponse{
		ID:                   r.ID,
		ContractID:           r.ContractID,
		Year:                 r.Year,
		Month:                r.Month,
		Status:               string(r.Status),
		RegularHours:         r.RegularHours,
		OvertimeHours:        r.OvertimeHours,
		RegularPayCents:      r.RegularPayCents,
		OvertimePayCents:     r.OvertimePayCents,
		MealAllowanceCents:   r.MealAllowanceCents,
		MileageCents:         r.MileageCents,
		BonusCents:           r.BonusCents,
		GrossPayCents:        r.GrossPayCents,
		TotalDeductionsCents: r.TotalDeductionsCents,
		NetPayCents:          r.NetPayCents,
		Warnings:             warnings,
		CreatedAt:            r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToRunResponses(runs []Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, *ToRunResponse(&runs[i]))
	}
	return out
}
