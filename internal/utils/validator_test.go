// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dateOnlyFixture struct {
	Date string `validate:"required,dateonly"`
}

func TestDateOnlyValidation(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"valid date", "2026-08-15", true},
		{"datetime rejected", "2026-08-15T00:00:00Z", false},
		{"slash format rejected", "15/08/2026", false},
		{"month out of range", "2026-13-01", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&dateOnlyFixture{Date: tt.date})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&dateOnlyFixture{Date: "nope"})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "date", errs[0].Field)
	assert.Equal(t, "dateonly", errs[0].Tag)
}
