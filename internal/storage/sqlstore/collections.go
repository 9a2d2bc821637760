package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

// CreateReminder persists a new reminder.
func (q *queries) CreateReminder(ctx context.Context, r *models.Reminder) error {
	if r.ID == "" {
		r.ID = models.ReminderID(uuid.New().String())
	}
	if r.CreatedAt == 0 {
		r.CreatedAt = time.Now().Unix()
	}
	if r.FrequencyType == "" {
		r.FrequencyType = models.FrequencyOneTime
	}

	_, err := q.exec(ctx,
		`INSERT INTO reminders (id, account_id, contact_id, title, description, next_expected_date,
			frequency_type, frequency_number, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.AccountID, r.ContactID, r.Title, r.Description, dates.Format(r.NextExpectedDate),
		r.FrequencyType, r.FrequencyNumber, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// ListReminders retrieves the reminders of a contact, soonest first.
func (q *queries) ListReminders(ctx context.Context, contactID models.ContactID) ([]*models.Reminder, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, title, description, next_expected_date,
			frequency_type, frequency_number, created_at
		 FROM reminders WHERE contact_id = ? ORDER BY next_expected_date`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		r := &models.Reminder{}
		var next string
		if err := rows.Scan(&r.ID, &r.AccountID, &r.ContactID, &r.Title, &r.Description, &next,
			&r.FrequencyType, &r.FrequencyNumber, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		if r.NextExpectedDate, err = dates.Parse(next); err != nil {
			return nil, fmt.Errorf("failed to parse reminder date: %w", err)
		}
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}
	return reminders, nil
}

// CreateGift persists a new gift.
func (q *queries) CreateGift(ctx context.Context, g *models.Gift) error {
	if g.ID == "" {
		g.ID = models.GiftID(uuid.New().String())
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().Unix()
	}

	_, err := q.exec(ctx,
		`INSERT INTO gifts (id, account_id, contact_id, name, comment, url, value, is_an_idea, has_been_offered, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.AccountID, g.ContactID, g.Name, g.Comment, g.URL, g.Value.String(),
		boolToInt(g.IsAnIdea), boolToInt(g.HasBeenOffered), g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gift: %w", err)
	}
	return nil
}

// ListGifts retrieves the gifts of a contact.
func (q *queries) ListGifts(ctx context.Context, contactID models.ContactID) ([]*models.Gift, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, name, comment, url, value, is_an_idea, has_been_offered, created_at
		 FROM gifts WHERE contact_id = ? ORDER BY created_at`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gifts: %w", err)
	}
	defer rows.Close()

	var gifts []*models.Gift
	for rows.Next() {
		g := &models.Gift{}
		if err := rows.Scan(&g.ID, &g.AccountID, &g.ContactID, &g.Name, &g.Comment, &g.URL, &g.Value,
			&g.IsAnIdea, &g.HasBeenOffered, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gift: %w", err)
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gifts: %w", err)
	}
	return gifts, nil
}

// CreateTask persists a new task.
func (q *queries) CreateTask(ctx context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = models.TaskID(uuid.New().String())
	}
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().Unix()
	}
	if t.Status == "" {
		t.Status = models.StatusInProgress
	}

	_, err := q.exec(ctx,
		`INSERT INTO tasks (id, account_id, contact_id, title, description, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.AccountID, t.ContactID, t.Title, t.Description, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// ListTasks retrieves the tasks of a contact.
func (q *queries) ListTasks(ctx context.Context, contactID models.ContactID) ([]*models.Task, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, title, description, status, created_at
		 FROM tasks WHERE contact_id = ? ORDER BY created_at`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &t.AccountID, &t.ContactID, &t.Title, &t.Description,
			&t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// CreateDebt persists a new debt.
func (q *queries) CreateDebt(ctx context.Context, d *models.Debt) error {
	if d.ID == "" {
		d.ID = models.DebtID(uuid.New().String())
	}
	if d.CreatedAt == 0 {
		d.CreatedAt = time.Now().Unix()
	}
	if d.Status == "" {
		d.Status = models.StatusInProgress
	}

	_, err := q.exec(ctx,
		`INSERT INTO debts (id, account_id, contact_id, in_debt, status, amount, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.AccountID, d.ContactID, boolToInt(d.InDebt), d.Status, d.Amount.String(), d.Reason, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// ListDebts retrieves the debts of a contact.
func (q *queries) ListDebts(ctx context.Context, contactID models.ContactID) ([]*models.Debt, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, in_debt, status, amount, reason, created_at
		 FROM debts WHERE contact_id = ? ORDER BY created_at`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		d := &models.Debt{}
		if err := rows.Scan(&d.ID, &d.AccountID, &d.ContactID, &d.InDebt, &d.Status, &d.Amount,
			&d.Reason, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}
