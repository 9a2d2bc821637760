package service

import (
	"errors"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/rolodex/internal/avatar"
	"github.com/mmynk/rolodex/internal/contact"
	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/rpc"
	"github.com/mmynk/rolodex/internal/storage"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, contact.ErrInvalidInput),
		errors.Is(err, dates.ErrMalformedDate),
		errors.Is(err, avatar.ErrUnsupportedImage):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAccount(a *models.Account) *rpc.Account {
	return &rpc.Account{
		ID:          string(a.ID),
		Email:       a.Email,
		DisplayName: a.DisplayName,
		CreatedAt:   timestamppb.New(time.Unix(a.CreatedAt, 0)),
	}
}

func toBirthdateInput(b rpc.Birthdate) contact.BirthdateInput {
	return contact.BirthdateInput{
		Approximation: models.BirthdateApproximation(b.Approximation),
		Age:           b.Age,
		Date:          b.Date,
	}
}

func toContactInput(in rpc.ContactInput) contact.ContactInput {
	return contact.ContactInput{
		FirstName:       in.FirstName,
		MiddleName:      in.MiddleName,
		LastName:        in.LastName,
		Gender:          in.Gender,
		Birthdate:       toBirthdateInput(in.Birthdate),
		Street:          in.Street,
		City:            in.City,
		Province:        in.Province,
		PostalCode:      in.PostalCode,
		Country:         in.Country,
		Email:           in.Email,
		PhoneNumber:     in.Phone,
		FacebookURL:     in.FacebookURL,
		TwitterURL:      in.TwitterURL,
		LinkedInURL:     in.LinkedInURL,
		FoodPreferences: in.FoodPreferences,
	}
}

func toKidInput(in rpc.KidInput) contact.KidInput {
	return contact.KidInput{
		FirstName: in.FirstName,
		Gender:    in.Gender,
		Birthdate: toBirthdateInput(in.Birthdate),
	}
}

func toSignificantOtherInput(in rpc.SignificantOtherInput) contact.SignificantOtherInput {
	return contact.SignificantOtherInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Gender:    in.Gender,
		Status:    models.SignificantOtherStatus(in.Status),
		Birthdate: toBirthdateInput(in.Birthdate),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return dates.Format(*t)
}

func ageOf(age int, ok bool) *int {
	if !ok {
		return nil
	}
	return &age
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toContact converts a contact; avatarURL may be empty.
func toContact(c *models.Contact, now time.Time, avatarURL string) *rpc.Contact {
	middle, _ := c.Middle()
	last, _ := c.Last()
	address, _ := c.Address()
	return &rpc.Contact{
		ID:                     string(c.ID),
		FirstName:              c.FirstName,
		MiddleName:             middle,
		LastName:               last,
		CompleteName:           c.CompleteName(),
		Initials:               c.Initials(),
		Gender:                 c.Gender,
		Birthdate:              formatDate(c.Birthdate),
		IsBirthdateApproximate: c.IsBirthdateApproximate(),
		Age:                    ageOf(c.Age(now)),
		Address:                address,
		Email:                  value(c.Email),
		Phone:                  value(c.PhoneNumber),
		FacebookURL:            value(c.FacebookURL),
		TwitterURL:             value(c.TwitterURL),
		LinkedInURL:            value(c.LinkedInURL),
		FoodPreferences:        value(c.FoodPreferences),
		AvatarColor:            c.AvatarColor,
		AvatarURL:              avatarURL,
		NumberOfKids:           c.NumberOfKids,
		NumberOfNotes:          c.NumberOfNotes,
		HasKids:                c.HasKids(),
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func toKid(k *models.Kid, now time.Time) *rpc.Kid {
	return &rpc.Kid{
		ID:                     string(k.ID),
		FirstName:              k.FirstName,
		Gender:                 k.Gender,
		Birthdate:              formatDate(k.Birthdate),
		IsBirthdateApproximate: k.BirthdateApproximation.IsApproximate(),
		Age:                    ageOf(k.Age(now)),
		CreatedAt:              k.CreatedAt,
		UpdatedAt:              k.UpdatedAt,
	}
}

func toSignificantOther(so *models.SignificantOther, now time.Time) *rpc.SignificantOther {
	if so == nil {
		return nil
	}
	return &rpc.SignificantOther{
		ID:                     string(so.ID),
		FirstName:              so.FirstName,
		LastName:               value(so.LastName),
		CompleteName:           so.CompleteName(),
		Gender:                 so.Gender,
		Status:                 string(so.Status),
		Birthdate:              formatDate(so.Birthdate),
		IsBirthdateApproximate: so.BirthdateApproximation.IsApproximate(),
		Age:                    ageOf(so.Age(now)),
		CreatedAt:              so.CreatedAt,
		UpdatedAt:              so.UpdatedAt,
	}
}

func toNote(n *models.Note) *rpc.Note {
	return &rpc.Note{
		ID:        string(n.ID),
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toEvent(e *models.Event) *rpc.Event {
	return &rpc.Event{
		ID:         string(e.ID),
		ObjectType: string(e.Subject.ObjectType()),
		ObjectID:   e.Subject.ObjectID(),
		Operation:  string(e.Operation),
		CreatedAt:  e.CreatedAt,
	}
}

func toActivity(a *models.Activity) *rpc.Activity {
	return &rpc.Activity{
		ID:             string(a.ID),
		Summary:        a.Summary,
		Description:    value(a.Description),
		DateItHappened: dates.Format(a.DateItHappened),
		CreatedAt:      a.CreatedAt,
	}
}

func toStatistic(s *models.ActivityStatistic) *rpc.ActivityStatistic {
	return &rpc.ActivityStatistic{Year: s.Year, Count: s.Count}
}

func toReminder(r *models.Reminder) *rpc.Reminder {
	return &rpc.Reminder{
		ID:               string(r.ID),
		Title:            r.Title,
		Description:      value(r.Description),
		NextExpectedDate: dates.Format(r.NextExpectedDate),
		FrequencyType:    string(r.FrequencyType),
		FrequencyNumber:  r.FrequencyNumber,
	}
}

func toGift(g *models.Gift) *rpc.Gift {
	return &rpc.Gift{
		ID:             string(g.ID),
		Name:           g.Name,
		Comment:        value(g.Comment),
		URL:            value(g.URL),
		Value:          g.Value,
		IsAnIdea:       g.IsAnIdea,
		HasBeenOffered: g.HasBeenOffered,
	}
}

func toTask(t *models.Task) *rpc.Task {
	return &rpc.Task{
		ID:          string(t.ID),
		Title:       t.Title,
		Description: value(t.Description),
		Status:      string(t.Status),
	}
}

func toDebt(d *models.Debt) *rpc.Debt {
	return &rpc.Debt{
		ID:     string(d.ID),
		InDebt: d.InDebt,
		Status: string(d.Status),
		Amount: d.Amount,
		Reason: value(d.Reason),
	}
}

// convertAll maps fn over items, never returning nil so lists encode as [].
func convertAll[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
