package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
	"github.com/folhacerta/payroll-backend-go/internal/domain/overtime"
)

// MealPaymentMethod determines the tax-exempt ceiling of the daily meal
// allowance: cash is exempt up to 6.00 EUR per day, card up to 10.20 EUR.
type MealPaymentMethod string

const (
	MealPaymentCash MealPaymentMethod = "cash"
	MealPaymentCard MealPaymentMethod = "card"
)

func (m MealPaymentMethod) IsValid() bool {
	return m == MealPaymentCash || m == MealPaymentCard
}

// ExemptionCapCents returns the daily tax-exempt ceiling for the method.
func (m MealPaymentMethod) ExemptionCapCents() int64 {
	if m == MealPaymentCash {
		return 600
	}
	return 1020
}

// MealAllowanceConfig configures the daily meal subsidy for a contract.
type MealAllowanceConfig struct {
	ContractID       string
	DailyAmountCents int64
	PaymentMethod    MealPaymentMethod
	// Months (1..12) in which the allowance is not paid, typically the
	// vacation month. Ignored when duodecimos is enabled.
	ExcludedMonths []int
	// When enabled the allowance is spread over all twelve months and a
	// day qualifies whenever any hours were worked.
	DuodecimosEnabled bool
	// Minimum regular hours a day must have to earn the allowance.
	MinimumRegularHours float64
	UpdatedAt           time.Time
}

// MonthExcluded reports whether the month is on the exclusion list.
func (c *MealAllowanceConfig) MonthExcluded(month int) bool {
	for _, m := range c.ExcludedMonths {
		if m == month {
			return true
		}
	}
	return false
}

// DeductionConfig holds the percentages withheld from gross pay.
// Surcharge and solidarity apply only to the slice of gross above their
// respective monthly thresholds.
type DeductionConfig struct {
	ContractID               string
	SocialSecurityPct        decimal.Decimal
	IncomeTaxPct             decimal.Decimal
	SurchargePct             decimal.Decimal
	SurchargeThresholdCents  int64
	SolidarityPct            decimal.Decimal
	SolidarityThresholdCents int64
	UpdatedAt                time.Time
}

// MileageTrip is one reimbursable work trip.
type MileageTrip struct {
	ID          string
	ContractID  string
	Date        time.Time
	Origin      string
	Destination string
	DistanceKm  float64
	Purpose     string
	CreatedAt   time.Time
}

// CalculationInput carries everything the pure calculator needs. The
// overtime breakdown must already be computed; the service layer fills
// it in when the caller did not supply one.
type CalculationInput struct {
	Contract  *contract.Contract
	Year      int
	Month     int
	Breakdown *overtime.Breakdown

	Deductions       *DeductionConfig
	MealAllowance    *MealAllowanceConfig
	MileageTrips     []MileageTrip
	MileageRateCents int64
	// MealOnHolidayOrVacation allows the allowance on holiday and
	// vacation-flagged days, which is denied by default.
	MealOnHolidayOrVacation bool
	// PunctualityBonus pays 5% of regular pay when the month has at
	// least twenty worked entries.
	PunctualityBonus bool
}

// CalculationError reports a missing-input condition discovered during
// calculation. It lives on the result rather than aborting the run so
// that batch callers get one result per contract either way.
type CalculationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeMissingContract   = "missing_contract"
	ErrCodeMissingDeductions = "missing_deduction_config"
)

// Result is a fully priced month for one contract. All money is in euro
// cents.
type Result struct {
	ContractID string
	Year       int
	Month      int

	RegularHours  float64
	OvertimeHours float64

	RegularPayCents  int64
	OvertimePayCents int64

	MealAllowanceCents        int64
	MealTaxableCents          int64
	MileageReimbursementCents int64
	BonusCents                int64

	GrossPayCents int64

	SocialSecurityCents  int64
	IncomeTaxCents       int64
	SurchargeCents       int64
	SolidarityCents      int64
	TotalDeductionsCents int64

	NetPayCents int64

	Overtime *overtime.Breakdown
	Warnings []overtime.Warning
	Error    *CalculationError
}

// RunStatus is the lifecycle state of a persisted payroll run.
type RunStatus string

const (
	RunStatusCalculated RunStatus = "calculated"
	RunStatusApproved   RunStatus = "approved"
	RunStatusPaid       RunStatus = "paid"
)

// Run is a persisted payroll result for one contract and period.
type Run struct {
	ID         string
	ContractID string
	Year       int
	Month      int
	Status     RunStatus

	RegularHours  float64
	OvertimeHours float64

	RegularPayCents      int64
	OvertimePayCents     int64
	MealAllowanceCents   int64
	MileageCents         int64
	BonusCents           int64
	GrossPayCents        int64
	TotalDeductionsCents int64
	NetPayCents          int64

	Warnings  []overtime.Warning
	CreatedAt time.Time
}
