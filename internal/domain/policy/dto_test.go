package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folhacerta/payroll-backend-go/internal/domain/contract"
)

func validRequest() *CreatePolicyRequest {
	return &CreatePolicyRequest{
		ContractID:                "01941f29-7c00-7000-8000-000000000001",
		Name:                      "standard",
		ThresholdHours:            8,
		FirstHourMultiplier:       1.5,
		SubsequentHoursMultiplier: 1.75,
		WeekendMultiplier:         2.0,
		HolidayMultiplier:         2.5,
		NightMultiplier:           1.25,
		NightStart:                "22:00",
		NightEnd:                  "07:00",
		RoundingMinutes:           15,
		DailyLimitHours:           2,
		WeeklyLimitHours:          48,
		AnnualLimitHours:          150,
	}
}

func TestCreatePolicyRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate(contract.ClassMedium))
}

func TestCreatePolicyRequestValidate_AnnualLimitByClass(t *testing.T) {
	r := validRequest()
	r.AnnualLimitHours = 160

	// 160h fits the 175h ceiling of a small company but not the 150h
	// ceiling of a medium one.
	assert.NoError(t, r.Validate(contract.ClassSmall))
	assert.Error(t, r.Validate(contract.ClassMedium))
}

func TestCreatePolicyRequestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePolicyRequest)
	}{
		{"bad contract id", func(r *CreatePolicyRequest) { r.ContractID = "nope" }},
		{"empty name", func(r *CreatePolicyRequest) { r.Name = "  " }},
		{"zero threshold", func(r *CreatePolicyRequest) { r.ThresholdHours = 0 }},
		{"threshold above a day", func(r *CreatePolicyRequest) { r.ThresholdHours = 25 }},
		{"multiplier below one", func(r *CreatePolicyRequest) { r.WeekendMultiplier = 0.9 }},
		{"bad night start", func(r *CreatePolicyRequest) { r.NightStart = "24:00" }},
		{"bad night end", func(r *CreatePolicyRequest) { r.NightEnd = "7pm" }},
		{"unsupported rounding", func(r *CreatePolicyRequest) { r.RoundingMinutes = 7 }},
		{"negative daily limit", func(r *CreatePolicyRequest) { r.DailyLimitHours = -1 }},
		{"negative annual limit", func(r *CreatePolicyRequest) { r.AnnualLimitHours = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(r)
			assert.Error(t, r.Validate(contract.ClassMedium))
		})
	}
}

func TestCreatePolicyRequestToPolicy(t *testing.T) {
	p := validRequest().ToPolicy()

	require.NotNil(t, p)
	assert.Equal(t, 22*60, p.NightStartMinutes)
	assert.Equal(t, 7*60, p.NightEndMinutes)
	assert.True(t, p.IsActive)
	assert.Equal(t, "1.75", p.SubsequentHoursMultiplier.String())
}
