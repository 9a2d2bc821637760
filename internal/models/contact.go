package models

import (
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mmynk/rolodex/internal/dates"
)

// ContactID identifies a Contact.
type ContactID string

// BirthdateApproximation records how much is known about a birthdate.
type BirthdateApproximation string

const (
	BirthdateExact       BirthdateApproximation = "exact"
	BirthdateApproximate BirthdateApproximation = "approximate"
	BirthdateUnknown     BirthdateApproximation = "unknown"
)

// IsApproximate reports whether the birthdate should be displayed as a guess.
// Unknown counts as approximate, exact does not, and any other non-empty
// stored flag is read as true.
func (b BirthdateApproximation) IsApproximate() bool {
	switch b {
	case BirthdateUnknown:
		return true
	case BirthdateExact:
		return false
	default:
		return b != ""
	}
}

// Contact is a person the account keeps track of. It is the aggregate root
// for every other record in this package.
type Contact struct {
	ID        ContactID
	AccountID AccountID

	FirstName  string
	MiddleName *string
	LastName   *string
	Gender     string

	Birthdate              *time.Time
	BirthdateApproximation BirthdateApproximation

	Street     *string
	City       *string
	Province   *string
	PostalCode *string
	Country    *string

	Email       *string
	PhoneNumber *string
	FacebookURL *string
	TwitterURL  *string
	LinkedInURL *string

	FoodPreferences *string

	// AvatarColor is a #RRGGBB background used when there is no picture.
	AvatarColor string

	// AvatarFileName is the blob key of the original uploaded picture.
	AvatarFileName *string

	// NumberOfKids and NumberOfNotes are maintained by the storage layer in
	// the same transaction as the kid/note write. Never negative.
	NumberOfKids  int
	NumberOfNotes int

	CreatedAt int64
	UpdatedAt int64
}

// present reports s when it holds a non-empty value.
func present(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func (c *Contact) Middle() (string, bool)         { return present(c.MiddleName) }
func (c *Contact) Last() (string, bool)           { return present(c.LastName) }
func (c *Contact) EmailAddress() (string, bool)   { return present(c.Email) }
func (c *Contact) Phone() (string, bool)          { return present(c.PhoneNumber) }
func (c *Contact) Facebook() (string, bool)       { return present(c.FacebookURL) }
func (c *Contact) Twitter() (string, bool)        { return present(c.TwitterURL) }
func (c *Contact) LinkedIn() (string, bool)       { return present(c.LinkedInURL) }
func (c *Contact) FoodPreference() (string, bool) { return present(c.FoodPreferences) }
func (c *Contact) Avatar() (string, bool)         { return present(c.AvatarFileName) }

// CompleteName joins first, middle and last name with single spaces,
// skipping the parts that are absent.
func (c *Contact) CompleteName() string {
	name := c.FirstName
	if middle, ok := c.Middle(); ok {
		name += " " + middle
	}
	if last, ok := c.Last(); ok {
		name += " " + last
	}
	return name
}

// Initials returns the first character of every word of the complete name.
func (c *Contact) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.CompleteName()) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// Age returns the contact's age in whole years at now. ok is false when the
// birthdate is unknown.
func (c *Contact) Age(now time.Time) (age int, ok bool) {
	if c.Birthdate == nil {
		return 0, false
	}
	return dates.YearsBetween(*c.Birthdate, now), true
}

// IsBirthdateApproximate reports whether the birthdate is a guess.
func (c *Contact) IsBirthdateApproximate() bool {
	return c.BirthdateApproximation.IsApproximate()
}

// HasKids is derived from the kid counter.
func (c *Contact) HasKids() bool {
	return c.NumberOfKids > 0
}

// Address joins the present address parts with ", ".
func (c *Contact) Address() (string, bool) {
	var parts []string
	for _, p := range []*string{c.Street, c.City, c.Province, c.PostalCode, c.Country} {
		if v, ok := present(p); ok {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

// ResizedAvatarKey derives the blob key of the size variant of the avatar:
// "avatars/x/abc.jpg" becomes "avatars/x/abc_110.jpg".
func (c *Contact) ResizedAvatarKey(size int) (string, bool) {
	original, ok := c.Avatar()
	if !ok {
		return "", false
	}
	return ResizedKey(original, size), true
}

// ResizedKey inserts _<size> between the stem and the extension of key.
func ResizedKey(key string, size int) string {
	ext := path.Ext(key)
	stem := strings.TrimSuffix(key, ext)
	return stem + "_" + strconv.Itoa(size) + ext
}

// CapitalizeFirst upper-cases the first letter of s and leaves the rest alone.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
