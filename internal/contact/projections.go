package contact

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/rolodex/internal/models"
)

func (s *Service) Kids(ctx context.Context, c *models.Contact) ([]*models.Kid, error) {
	return s.store.ListKids(ctx, c.ID)
}

func (s *Service) SignificantOthers(ctx context.Context, c *models.Contact) ([]*models.SignificantOther, error) {
	return s.store.ListSignificantOthers(ctx, c.ID)
}

// CurrentSignificantOther returns the active partner activated last, or nil.
func (s *Service) CurrentSignificantOther(ctx context.Context, c *models.Contact) (*models.SignificantOther, error) {
	return s.store.CurrentSignificantOther(ctx, c.ID)
}

// Notes returns the notes of c, newest first.
func (s *Service) Notes(ctx context.Context, c *models.Contact) ([]*models.Note, error) {
	return s.store.ListNotes(ctx, c.ID)
}

// Events returns the audit log of c, newest first.
func (s *Service) Events(ctx context.Context, c *models.Contact) ([]*models.Event, error) {
	return s.store.ListEvents(ctx, c.ID)
}

func (s *Service) Activities(ctx context.Context, c *models.Contact) ([]*models.Activity, error) {
	return s.store.ListActivities(ctx, c.ID)
}

// Statistics returns the last computed yearly activity counts.
func (s *Service) Statistics(ctx context.Context, c *models.Contact) ([]*models.ActivityStatistic, error) {
	return s.store.ListActivityStatistics(ctx, c.ID)
}

// Reminders returns the reminders of c, soonest first.
func (s *Service) Reminders(ctx context.Context, c *models.Contact) ([]*models.Reminder, error) {
	return s.store.ListReminders(ctx, c.ID)
}

func (s *Service) GiftIdeas(ctx context.Context, c *models.Contact) ([]*models.Gift, error) {
	return s.gifts(ctx, c, func(g *models.Gift) bool { return g.IsAnIdea })
}

func (s *Service) GiftsOffered(ctx context.Context, c *models.Contact) ([]*models.Gift, error) {
	return s.gifts(ctx, c, func(g *models.Gift) bool { return g.HasBeenOffered })
}

func (s *Service) gifts(ctx context.Context, c *models.Contact, keep func(*models.Gift) bool) ([]*models.Gift, error) {
	all, err := s.store.ListGifts(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return filter(all, keep), nil
}

func (s *Service) TasksInProgress(ctx context.Context, c *models.Contact) ([]*models.Task, error) {
	return s.tasks(ctx, c, models.StatusInProgress)
}

func (s *Service) CompletedTasks(ctx context.Context, c *models.Contact) ([]*models.Task, error) {
	return s.tasks(ctx, c, models.StatusCompleted)
}

func (s *Service) tasks(ctx context.Context, c *models.Contact, status models.ProgressStatus) ([]*models.Task, error) {
	all, err := s.store.ListTasks(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return filter(all, func(t *models.Task) bool { return t.Status == status }), nil
}

func (s *Service) DebtsInProgress(ctx context.Context, c *models.Contact) ([]*models.Debt, error) {
	all, err := s.store.ListDebts(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return filter(all, func(d *models.Debt) bool { return d.Status == models.StatusInProgress }), nil
}

// OutstandingDebt is what c owes the account owner minus what the owner owes c.
func (s *Service) OutstandingDebt(ctx context.Context, c *models.Contact) (decimal.Decimal, error) {
	debts, err := s.store.ListDebts(ctx, c.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list debts: %w", err)
	}
	return models.OutstandingBalance(debts), nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
