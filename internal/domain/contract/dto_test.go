package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateContractRequestValidate(t *testing.T) {
	valid := CreateContractRequest{
		EmployeeName:     "Ana Ferreira",
		BaseSalaryCents:  259800,
		WeeklyHours:      40,
		CompanySizeClass: "medium",
	}
	assert.NoError(t, valid.Validate())

	empty := valid
	empty.CompanySizeClass = ""
	assert.NoError(t, empty.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateContractRequest)
	}{
		{"empty name", func(r *CreateContractRequest) { r.EmployeeName = " " }},
		{"zero salary", func(r *CreateContractRequest) { r.BaseSalaryCents = 0 }},
		{"zero weekly hours", func(r *CreateContractRequest) { r.WeeklyHours = 0 }},
		{"weekly hours above cap", func(r *CreateContractRequest) { r.WeeklyHours = 61 }},
		{"unknown size class", func(r *CreateContractRequest) { r.CompanySizeClass = "huge" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestAnnualOvertimeCeilingHours(t *testing.T) {
	assert.Equal(t, float64(175), ClassMicro.AnnualOvertimeCeilingHours())
	assert.Equal(t, float64(175), ClassSmall.AnnualOvertimeCeilingHours())
	assert.Equal(t, float64(150), ClassMedium.AnnualOvertimeCeilingHours())
	assert.Equal(t, float64(150), ClassLarge.AnnualOvertimeCeilingHours())
}
