package contact

import (
	"fmt"
	"time"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

// BirthdateInput is a birthdate as entered in a form: either an exact date,
// an age, or nothing at all.
type BirthdateInput struct {
	Approximation models.BirthdateApproximation
	// Age is used when Approximation is approximate.
	Age int
	// Date is YYYY-MM-DD, used for any other approximation.
	Date string
}

// Unknown is the input for "no birthdate".
func Unknown() BirthdateInput {
	return BirthdateInput{Approximation: models.BirthdateUnknown}
}

// Exact is the input for a known YYYY-MM-DD date.
func Exact(date string) BirthdateInput {
	return BirthdateInput{Approximation: models.BirthdateExact, Date: date}
}

// ApproximateAge is the input for "about age years old".
func ApproximateAge(age int) BirthdateInput {
	return BirthdateInput{Approximation: models.BirthdateApproximate, Age: age}
}

// resolveBirthdate applies the birthdate policy at now. An approximate age
// becomes January 1st of (year - age); unknown clears the date; anything else
// must be a well-formed date. The zero input is unknown.
func resolveBirthdate(now time.Time, in BirthdateInput) (*time.Time, models.BirthdateApproximation, error) {
	switch {
	case in.Approximation == models.BirthdateApproximate:
		if in.Age < 0 {
			return nil, "", fmt.Errorf("%w: negative age %d", ErrInvalidInput, in.Age)
		}
		if now.Year()-in.Age < 1 {
			return nil, "", fmt.Errorf("%w: age %d is out of range", ErrInvalidInput, in.Age)
		}
		t := dates.FromAge(now, in.Age)
		return &t, models.BirthdateApproximate, nil
	case in.Approximation == models.BirthdateUnknown,
		in.Approximation == "" && in.Date == "":
		return nil, models.BirthdateUnknown, nil
	}

	t, err := dates.Parse(in.Date)
	if err != nil {
		return nil, "", err
	}
	return &t, models.BirthdateExact, nil
}
