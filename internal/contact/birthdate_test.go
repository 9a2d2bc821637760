package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

func TestResolveBirthdate(t *testing.T) {
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		in        BirthdateInput
		wantDate  string
		wantFlag  models.BirthdateApproximation
		wantError error
	}{
		{"approximate", ApproximateAge(10), "2016-01-01", models.BirthdateApproximate, nil},
		{"approximate newborn", ApproximateAge(0), "2026-01-01", models.BirthdateApproximate, nil},
		{"exact", Exact("1984-12-31"), "1984-12-31", models.BirthdateExact, nil},
		{"unknown ignores date", BirthdateInput{Approximation: models.BirthdateUnknown, Date: "1984-12-31"}, "", models.BirthdateUnknown, nil},
		{"zero value", BirthdateInput{}, "", models.BirthdateUnknown, nil},
		{"other flag parses date", BirthdateInput{Approximation: "true", Date: "2000-02-29"}, "2000-02-29", models.BirthdateExact, nil},
		{"malformed", Exact("31/12/1984"), "", "", dates.ErrMalformedDate},
		{"empty exact", Exact(""), "", "", dates.ErrMalformedDate},
		{"negative age", ApproximateAge(-1), "", "", ErrInvalidInput},
		{"oldest age", ApproximateAge(2025), "0001-01-01", models.BirthdateApproximate, nil},
		{"age before year one", ApproximateAge(2026), "", "", ErrInvalidInput},
		{"absurd age", ApproximateAge(3000), "", "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, flag, err := resolveBirthdate(now, tt.in)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlag, flag)
			if tt.wantDate == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantDate, dates.Format(*got))
		})
	}
}
