package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
)

// CreateActivity persists a new activity.
func (q *queries) CreateActivity(ctx context.Context, a *models.Activity) error {
	if a.ID == "" {
		a.ID = models.ActivityID(uuid.New().String())
	}
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}

	_, err := q.exec(ctx,
		`INSERT INTO activities (id, account_id, contact_id, summary, description, date_it_happened, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.AccountID, a.ContactID, a.Summary, a.Description, dates.Format(a.DateItHappened), a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// ListActivities retrieves the activities of a contact, most recent first.
func (q *queries) ListActivities(ctx context.Context, contactID models.ContactID) ([]*models.Activity, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, summary, description, date_it_happened, created_at
		 FROM activities WHERE contact_id = ? ORDER BY date_it_happened DESC`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		var happened string
		if err := rows.Scan(&a.ID, &a.AccountID, &a.ContactID, &a.Summary, &a.Description,
			&happened, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		if a.DateItHappened, err = dates.Parse(happened); err != nil {
			return nil, fmt.Errorf("failed to parse activity date: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}

// DeleteActivityStatistics removes every statistic row of a contact.
func (q *queries) DeleteActivityStatistics(ctx context.Context, contactID models.ContactID) error {
	if _, err := q.exec(ctx, "DELETE FROM activity_statistics WHERE contact_id = ?", contactID); err != nil {
		return fmt.Errorf("failed to delete activity statistics: %w", err)
	}
	return nil
}

// CreateActivityStatistic inserts one (year, count) row.
func (q *queries) CreateActivityStatistic(ctx context.Context, stat *models.ActivityStatistic) error {
	if stat.ID == "" {
		stat.ID = models.ActivityStatisticID(uuid.New().String())
	}
	if stat.CreatedAt == 0 {
		stat.CreatedAt = time.Now().Unix()
	}

	_, err := q.exec(ctx,
		`INSERT INTO activity_statistics (id, account_id, contact_id, year, count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		stat.ID, stat.AccountID, stat.ContactID, stat.Year, stat.Count, stat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity statistic: %w", err)
	}
	return nil
}

// ListActivityStatistics retrieves the statistics of a contact by year.
func (q *queries) ListActivityStatistics(ctx context.Context, contactID models.ContactID) ([]*models.ActivityStatistic, error) {
	rows, err := q.query(ctx,
		`SELECT id, account_id, contact_id, year, count, created_at
		 FROM activity_statistics WHERE contact_id = ? ORDER BY year`,
		contactID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity statistics: %w", err)
	}
	defer rows.Close()

	var stats []*models.ActivityStatistic
	for rows.Next() {
		s := &models.ActivityStatistic{}
		if err := rows.Scan(&s.ID, &s.AccountID, &s.ContactID, &s.Year, &s.Count, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity statistic: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity statistics: %w", err)
	}
	return stats, nil
}
