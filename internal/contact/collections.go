package contact

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

type ActivityInput struct {
	Summary     string
	Description *string
	// DateItHappened is YYYY-MM-DD.
	DateItHappened string
}

type ReminderInput struct {
	Title            string
	Description      *string
	NextExpectedDate string
	FrequencyType    models.FrequencyType
	FrequencyNumber  int
}

type GiftInput struct {
	Name           string
	Comment        *string
	URL            *string
	Value          decimal.Decimal
	IsAnIdea       bool
	HasBeenOffered bool
}

type TaskInput struct {
	Title       string
	Description *string
	Status      models.ProgressStatus
}

type DebtInput struct {
	InDebt bool
	Status models.ProgressStatus
	Amount decimal.Decimal
	Reason *string
}

// AddActivity records something done with c.
func (s *Service) AddActivity(ctx context.Context, c *models.Contact, in ActivityInput) (*models.Activity, error) {
	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		return nil, fmt.Errorf("%w: activity summary is required", ErrInvalidInput)
	}
	happened, err := dates.Parse(in.DateItHappened)
	if err != nil {
		return nil, err
	}
	a := &models.Activity{
		AccountID:      c.AccountID,
		ContactID:      c.ID,
		Summary:        summary,
		Description:    in.Description,
		DateItHappened: happened,
		CreatedAt:      s.now().Unix(),
	}

	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateActivity(ctx, a); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.ActivitySubject{ID: a.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add activity: %w", err)
	}
	s.committed(models.ObjectActivity, models.OperationCreate)
	return a, nil
}

// CalculateActivitiesStatistics throws away the yearly statistics of c and
// rebuilds them from its activities. Running it twice yields the same rows.
func (s *Service) CalculateActivitiesStatistics(ctx context.Context, c *models.Contact) ([]*models.ActivityStatistic, error) {
	var stats []*models.ActivityStatistic
	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		activities, err := tx.ListActivities(ctx, c.ID)
		if err != nil {
			return err
		}
		if err := tx.DeleteActivityStatistics(ctx, c.ID); err != nil {
			return err
		}

		perYear := make(map[int]int)
		for _, a := range activities {
			perYear[a.DateItHappened.Year()]++
		}
		years := make([]int, 0, len(perYear))
		for year := range perYear {
			years = append(years, year)
		}
		slices.Sort(years)

		now := s.now().Unix()
		for _, year := range years {
			stat := &models.ActivityStatistic{
				AccountID: c.AccountID,
				ContactID: c.ID,
				Year:      year,
				Count:     perYear[year],
				CreatedAt: now,
			}
			if err := tx.CreateActivityStatistic(ctx, stat); err != nil {
				return err
			}
			stats = append(stats, stat)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to calculate activity statistics: %w", err)
	}
	return stats, nil
}

// AddReminder schedules a reminder about c.
func (s *Service) AddReminder(ctx context.Context, c *models.Contact, in ReminderInput) (*models.Reminder, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: reminder title is required", ErrInvalidInput)
	}
	next, err := dates.Parse(in.NextExpectedDate)
	if err != nil {
		return nil, err
	}
	switch in.FrequencyType {
	case "", models.FrequencyOneTime, models.FrequencyWeek, models.FrequencyMonth, models.FrequencyYear:
	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, in.FrequencyType)
	}
	if in.FrequencyNumber < 0 {
		return nil, fmt.Errorf("%w: negative frequency", ErrInvalidInput)
	}
	r := &models.Reminder{
		AccountID:        c.AccountID,
		ContactID:        c.ID,
		Title:            title,
		Description:      in.Description,
		NextExpectedDate: next,
		FrequencyType:    in.FrequencyType,
		FrequencyNumber:  in.FrequencyNumber,
		CreatedAt:        s.now().Unix(),
	}

	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateReminder(ctx, r); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.ReminderSubject{ID: r.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add reminder: %w", err)
	}
	s.committed(models.ObjectReminder, models.OperationCreate)
	return r, nil
}

// AddGift records a gift idea or a gift given to c.
func (s *Service) AddGift(ctx context.Context, c *models.Contact, in GiftInput) (*models.Gift, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: gift name is required", ErrInvalidInput)
	}
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("%w: negative gift value", ErrInvalidInput)
	}
	g := &models.Gift{
		AccountID:      c.AccountID,
		ContactID:      c.ID,
		Name:           name,
		Comment:        in.Comment,
		URL:            in.URL,
		Value:          in.Value,
		IsAnIdea:       in.IsAnIdea,
		HasBeenOffered: in.HasBeenOffered,
		CreatedAt:      s.now().Unix(),
	}

	err := s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateGift(ctx, g); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.GiftSubject{ID: g.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add gift: %w", err)
	}
	s.committed(models.ObjectGift, models.OperationCreate)
	return g, nil
}

// AddTask creates a to-do about c. An empty status means in progress.
func (s *Service) AddTask(ctx context.Context, c *models.Contact, in TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", ErrInvalidInput)
	}
	status, err := progressStatus(in.Status)
	if err != nil {
		return nil, err
	}
	t := &models.Task{
		AccountID:   c.AccountID,
		ContactID:   c.ID,
		Title:       title,
		Description: in.Description,
		Status:      status,
		CreatedAt:   s.now().Unix(),
	}

	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateTask(ctx, t); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.TaskSubject{ID: t.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	s.committed(models.ObjectTask, models.OperationCreate)
	return t, nil
}

// AddDebt records money owed between the account owner and c.
func (s *Service) AddDebt(ctx context.Context, c *models.Contact, in DebtInput) (*models.Debt, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: debt amount must be positive", ErrInvalidInput)
	}
	status, err := progressStatus(in.Status)
	if err != nil {
		return nil, err
	}
	d := &models.Debt{
		AccountID: c.AccountID,
		ContactID: c.ID,
		InDebt:    in.InDebt,
		Status:    status,
		Amount:    in.Amount,
		Reason:    in.Reason,
		CreatedAt: s.now().Unix(),
	}

	err = s.store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateDebt(ctx, d); err != nil {
			return err
		}
		return s.logEvent(ctx, tx, c, models.DebtSubject{ID: d.ID}, models.OperationCreate)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add debt: %w", err)
	}
	s.committed(models.ObjectDebt, models.OperationCreate)
	return d, nil
}

func progressStatus(status models.ProgressStatus) (models.ProgressStatus, error) {
	switch status {
	case "":
		return models.StatusInProgress, nil
	case models.StatusInProgress, models.StatusCompleted:
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
}
