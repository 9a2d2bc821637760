package sqlstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "rolodex-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedContact(t *testing.T, store *Store, firstName string) (*models.Account, *models.Contact) {
	t.Helper()
	ctx := context.Background()

	account := models.NewAccount(firstName+"@example.com", firstName, "hash")
	if err := store.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	contact := &models.Contact{AccountID: account.ID, FirstName: firstName}
	if err := store.CreateContact(ctx, contact); err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	return account, contact
}

func strPtr(s string) *string { return &s }

func TestContacts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, _ := seedContact(t, store, "Owner")

	t.Run("CreateContact generates ID and defaults", func(t *testing.T) {
		c := &models.Contact{AccountID: account.ID, FirstName: "Jean"}
		if err := store.CreateContact(ctx, c); err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}
		if c.ID == "" {
			t.Error("Expected contact ID to be generated")
		}
		if c.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if c.BirthdateApproximation != models.BirthdateUnknown {
			t.Errorf("BirthdateApproximation = %q, want unknown", c.BirthdateApproximation)
		}
	})

	t.Run("GetContact round-trips optional fields", func(t *testing.T) {
		birth := time.Date(1984, time.July, 23, 0, 0, 0, 0, time.UTC)
		original := &models.Contact{
			AccountID:              account.ID,
			FirstName:              "Jean",
			MiddleName:             strPtr("Paul"),
			LastName:               strPtr("Dupont"),
			Birthdate:              &birth,
			BirthdateApproximation: models.BirthdateExact,
			City:                   strPtr("Lyon"),
			Email:                  strPtr("jean@example.com"),
		}
		if err := store.CreateContact(ctx, original); err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}

		got, err := store.GetContact(ctx, account.ID, original.ID)
		if err != nil {
			t.Fatalf("GetContact failed: %v", err)
		}
		if got.CompleteName() != "Jean Paul Dupont" {
			t.Errorf("CompleteName = %q", got.CompleteName())
		}
		if got.Birthdate == nil || !got.Birthdate.Equal(birth) {
			t.Errorf("Birthdate = %v, want %v", got.Birthdate, birth)
		}
		if got.PhoneNumber != nil {
			t.Errorf("PhoneNumber = %v, want nil", *got.PhoneNumber)
		}
		if city, _ := got.Address(); city != "Lyon" {
			t.Errorf("Address = %q, want Lyon", city)
		}
	})

	t.Run("GetContact is scoped to the account", func(t *testing.T) {
		other, otherContact := seedContact(t, store, "Stranger")
		_, err := store.GetContact(ctx, account.ID, otherContact.ID)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, err := store.GetContact(ctx, other.ID, otherContact.ID); err != nil {
			t.Errorf("Owner lookup failed: %v", err)
		}
	})

	t.Run("UpdateContactName returns not found for unknown contact", func(t *testing.T) {
		err := store.UpdateContactName(ctx, account.ID, "nonexistent-id", "X", nil, nil, 1)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, err := store.SetContactAvatar(ctx, account.ID, "nonexistent-id", "a.png", 1); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rename and avatar writes keep each other's columns", func(t *testing.T) {
		c := &models.Contact{AccountID: account.ID, FirstName: "Jane", LastName: strPtr("Doe")}
		if err := store.CreateContact(ctx, c); err != nil {
			t.Fatalf("CreateContact failed: %v", err)
		}

		previous, err := store.SetContactAvatar(ctx, account.ID, c.ID, "avatars/x/first.png", 10)
		if err != nil {
			t.Fatalf("SetContactAvatar failed: %v", err)
		}
		if previous != nil {
			t.Errorf("Expected no previous avatar, got %q", *previous)
		}

		if err := store.UpdateContactName(ctx, account.ID, c.ID, "Janet", nil, nil, 11); err != nil {
			t.Fatalf("UpdateContactName failed: %v", err)
		}

		got, err := store.GetContact(ctx, account.ID, c.ID)
		if err != nil {
			t.Fatalf("GetContact failed: %v", err)
		}
		if got.FirstName != "Janet" {
			t.Errorf("FirstName = %q, want Janet", got.FirstName)
		}
		if last, _ := got.Last(); last != "Doe" {
			t.Errorf("LastName = %q, want Doe (nil leaves it unchanged)", last)
		}
		if got.AvatarFileName == nil || *got.AvatarFileName != "avatars/x/first.png" {
			t.Errorf("AvatarFileName = %v, want the uploaded key", got.AvatarFileName)
		}

		previous, err = store.SetContactAvatar(ctx, account.ID, c.ID, "avatars/x/second.png", 12)
		if err != nil {
			t.Fatalf("SetContactAvatar failed: %v", err)
		}
		if previous == nil || *previous != "avatars/x/first.png" {
			t.Errorf("Expected previous avatar first.png, got %v", previous)
		}
	})
}

func TestAdjustCounters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Counter")

	n, err := store.AdjustKidCount(ctx, contact.ID, 1)
	if err != nil {
		t.Fatalf("AdjustKidCount failed: %v", err)
	}
	if n != 1 {
		t.Errorf("kid count = %d, want 1", n)
	}

	for i := 0; i < 3; i++ {
		if n, err = store.AdjustKidCount(ctx, contact.ID, -1); err != nil {
			t.Fatalf("AdjustKidCount failed: %v", err)
		}
	}
	if n != 0 {
		t.Errorf("kid count = %d, want 0 after underflow", n)
	}

	if n, err = store.AdjustNoteCount(ctx, contact.ID, 2); err != nil || n != 2 {
		t.Errorf("AdjustNoteCount = %d, %v, want 2", n, err)
	}

	got, err := store.GetContact(ctx, account.ID, contact.ID)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if got.NumberOfKids != 0 || got.HasKids() || got.NumberOfNotes != 2 {
		t.Errorf("counters = kids %d notes %d", got.NumberOfKids, got.NumberOfNotes)
	}

	if _, err := store.AdjustKidCount(ctx, "nonexistent-id", 1); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestKidsAndSignificantOthers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Parent")
	_, stranger := seedContact(t, store, "Stranger")

	birth := time.Date(2016, time.January, 1, 0, 0, 0, 0, time.UTC)
	kid := &models.Kid{
		AccountID:              account.ID,
		ContactID:              contact.ID,
		FirstName:              "Lea",
		Birthdate:              &birth,
		BirthdateApproximation: models.BirthdateApproximate,
	}
	if err := store.CreateKid(ctx, kid); err != nil {
		t.Fatalf("CreateKid failed: %v", err)
	}

	t.Run("GetKid is scoped to the contact", func(t *testing.T) {
		if _, err := store.GetKid(ctx, stranger.ID, kid.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		got, err := store.GetKid(ctx, contact.ID, kid.ID)
		if err != nil {
			t.Fatalf("GetKid failed: %v", err)
		}
		if got.Birthdate == nil || !got.Birthdate.Equal(birth) {
			t.Errorf("Birthdate = %v, want %v", got.Birthdate, birth)
		}
	})

	t.Run("UpdateKid and DeleteKid", func(t *testing.T) {
		kid.FirstName = "Léa"
		kid.Birthdate = nil
		kid.BirthdateApproximation = models.BirthdateUnknown
		kid.UpdatedAt = 0
		if err := store.UpdateKid(ctx, kid); err != nil {
			t.Fatalf("UpdateKid failed: %v", err)
		}
		kids, err := store.ListKids(ctx, contact.ID)
		if err != nil {
			t.Fatalf("ListKids failed: %v", err)
		}
		if len(kids) != 1 || kids[0].FirstName != "Léa" || kids[0].Birthdate != nil {
			t.Errorf("unexpected kids after update: %+v", kids)
		}

		if err := store.DeleteKid(ctx, stranger.ID, kid.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting through another contact, got %v", err)
		}
		if err := store.DeleteKid(ctx, contact.ID, kid.ID); err != nil {
			t.Fatalf("DeleteKid failed: %v", err)
		}
		if err := store.DeleteKid(ctx, contact.ID, kid.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("CurrentSignificantOther picks the active one updated last", func(t *testing.T) {
		current, err := store.CurrentSignificantOther(ctx, contact.ID)
		if err != nil || current != nil {
			t.Fatalf("CurrentSignificantOther = %v, %v, want nil, nil", current, err)
		}

		first := &models.SignificantOther{AccountID: account.ID, ContactID: contact.ID, FirstName: "Ana", CreatedAt: 100}
		second := &models.SignificantOther{AccountID: account.ID, ContactID: contact.ID, FirstName: "Bea", CreatedAt: 200}
		former := &models.SignificantOther{AccountID: account.ID, ContactID: contact.ID, FirstName: "Cy",
			Status: models.SignificantOtherInactive, CreatedAt: 300}
		for _, so := range []*models.SignificantOther{first, second, former} {
			if err := store.CreateSignificantOther(ctx, so); err != nil {
				t.Fatalf("CreateSignificantOther failed: %v", err)
			}
		}

		current, err = store.CurrentSignificantOther(ctx, contact.ID)
		if err != nil {
			t.Fatalf("CurrentSignificantOther failed: %v", err)
		}
		if current == nil || current.ID != second.ID {
			t.Errorf("current = %+v, want %s", current, second.ID)
		}

		first.UpdatedAt = 400
		if err := store.UpdateSignificantOther(ctx, first); err != nil {
			t.Fatalf("UpdateSignificantOther failed: %v", err)
		}
		current, _ = store.CurrentSignificantOther(ctx, contact.ID)
		if current == nil || current.ID != first.ID {
			t.Errorf("current = %+v, want %s", current, first.ID)
		}

		all, err := store.ListSignificantOthers(ctx, contact.ID)
		if err != nil || len(all) != 3 {
			t.Errorf("ListSignificantOthers = %d, %v, want 3", len(all), err)
		}
	})
}

func TestEvents(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Audited")

	kidSubject := models.KidSubject{ID: "kid-1"}
	noteSubject := models.NoteSubject{ID: "note-1"}
	for _, e := range []*models.Event{
		{AccountID: account.ID, ContactID: contact.ID, Subject: kidSubject, Operation: models.OperationCreate},
		{AccountID: account.ID, ContactID: contact.ID, Subject: kidSubject, Operation: models.OperationUpdate},
		{AccountID: account.ID, ContactID: contact.ID, Subject: noteSubject, Operation: models.OperationCreate},
	} {
		if err := store.AppendEvent(ctx, e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	events, err := store.ListEvents(ctx, contact.ID)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	n, err := store.DeleteEventsForSubject(ctx, contact.ID, kidSubject)
	if err != nil {
		t.Fatalf("DeleteEventsForSubject failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d events, want 2", n)
	}

	events, _ = store.ListEvents(ctx, contact.ID)
	if len(events) != 1 || events[0].Subject != models.Subject(noteSubject) {
		t.Errorf("remaining events = %+v", events)
	}

	if err := store.AppendEvent(ctx, &models.Event{ContactID: contact.ID}); err == nil {
		t.Error("Expected error for event without subject")
	}
}

func TestEventsWithinOneSecondListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Busy")

	const at = int64(1767225600)
	var appended []models.EventID
	for _, id := range []string{"note-c", "note-a", "note-b", "note-d"} {
		e := &models.Event{
			AccountID: account.ID,
			ContactID: contact.ID,
			Subject:   models.NoteSubject{ID: models.NoteID(id)},
			Operation: models.OperationCreate,
			CreatedAt: at,
		}
		if err := store.AppendEvent(ctx, e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
		appended = append(appended, e.ID)
	}

	events, err := store.ListEvents(ctx, contact.ID)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != len(appended) {
		t.Fatalf("Expected %d events, got %d", len(appended), len(events))
	}
	for i, e := range events {
		want := appended[len(appended)-1-i]
		if e.ID != want {
			t.Errorf("events[%d] = %s, want %s", i, e.ID, want)
		}
	}
}

func TestActivitiesAndCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Busy")

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	for _, when := range []time.Time{day(2024, 3, 1), day(2024, 8, 9), day(2025, 1, 2)} {
		a := &models.Activity{AccountID: account.ID, ContactID: contact.ID, Summary: "Dinner", DateItHappened: when}
		if err := store.CreateActivity(ctx, a); err != nil {
			t.Fatalf("CreateActivity failed: %v", err)
		}
	}
	activities, err := store.ListActivities(ctx, contact.ID)
	if err != nil || len(activities) != 3 {
		t.Fatalf("ListActivities = %d, %v", len(activities), err)
	}
	if !activities[0].DateItHappened.Equal(day(2025, 1, 2)) {
		t.Errorf("first activity = %v, want most recent", activities[0].DateItHappened)
	}

	if err := store.CreateActivityStatistic(ctx, &models.ActivityStatistic{
		AccountID: account.ID, ContactID: contact.ID, Year: 2024, Count: 2,
	}); err != nil {
		t.Fatalf("CreateActivityStatistic failed: %v", err)
	}
	if err := store.DeleteActivityStatistics(ctx, contact.ID); err != nil {
		t.Fatalf("DeleteActivityStatistics failed: %v", err)
	}
	stats, err := store.ListActivityStatistics(ctx, contact.ID)
	if err != nil || len(stats) != 0 {
		t.Errorf("ListActivityStatistics = %d, %v, want 0", len(stats), err)
	}

	gift := &models.Gift{AccountID: account.ID, ContactID: contact.ID, Name: "Book",
		Value: decimal.RequireFromString("19.99"), IsAnIdea: true}
	if err := store.CreateGift(ctx, gift); err != nil {
		t.Fatalf("CreateGift failed: %v", err)
	}
	gifts, err := store.ListGifts(ctx, contact.ID)
	if err != nil || len(gifts) != 1 {
		t.Fatalf("ListGifts = %d, %v", len(gifts), err)
	}
	if !gifts[0].IsAnIdea || gifts[0].HasBeenOffered || !gifts[0].Value.Equal(gift.Value) {
		t.Errorf("gift round trip = %+v", gifts[0])
	}

	debt := &models.Debt{AccountID: account.ID, ContactID: contact.ID, InDebt: true,
		Amount: decimal.RequireFromString("120.50"), Reason: strPtr("Concert tickets")}
	if err := store.CreateDebt(ctx, debt); err != nil {
		t.Fatalf("CreateDebt failed: %v", err)
	}
	debts, err := store.ListDebts(ctx, contact.ID)
	if err != nil || len(debts) != 1 {
		t.Fatalf("ListDebts = %d, %v", len(debts), err)
	}
	if !debts[0].InDebt || debts[0].Status != models.StatusInProgress || !debts[0].Amount.Equal(debt.Amount) {
		t.Errorf("debt round trip = %+v", debts[0])
	}

	task := &models.Task{AccountID: account.ID, ContactID: contact.ID, Title: "Call back"}
	if err := store.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	tasks, err := store.ListTasks(ctx, contact.ID)
	if err != nil || len(tasks) != 1 || tasks[0].Status != models.StatusInProgress {
		t.Errorf("ListTasks = %+v, %v", tasks, err)
	}

	for _, next := range []time.Time{day(2027, 5, 1), day(2026, 12, 24)} {
		r := &models.Reminder{AccountID: account.ID, ContactID: contact.ID, Title: "Birthday",
			NextExpectedDate: next, FrequencyType: models.FrequencyYear, FrequencyNumber: 1}
		if err := store.CreateReminder(ctx, r); err != nil {
			t.Fatalf("CreateReminder failed: %v", err)
		}
	}
	reminders, err := store.ListReminders(ctx, contact.ID)
	if err != nil || len(reminders) != 2 {
		t.Fatalf("ListReminders = %d, %v", len(reminders), err)
	}
	if !reminders[0].NextExpectedDate.Equal(day(2026, 12, 24)) {
		t.Errorf("first reminder = %v, want soonest", reminders[0].NextExpectedDate)
	}
}

func TestDeleteContactCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Gone")

	note := &models.Note{AccountID: account.ID, ContactID: contact.ID, Body: "Likes jazz"}
	if err := store.CreateNote(ctx, note); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if err := store.AppendEvent(ctx, &models.Event{AccountID: account.ID, ContactID: contact.ID,
		Subject: models.NoteSubject{ID: note.ID}, Operation: models.OperationCreate}); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	if err := store.DeleteContact(ctx, account.ID, contact.ID); err != nil {
		t.Fatalf("DeleteContact failed: %v", err)
	}
	if _, err := store.GetNote(ctx, contact.ID, note.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected note to be gone, got %v", err)
	}
	events, err := store.ListEvents(ctx, contact.ID)
	if err != nil || len(events) != 0 {
		t.Errorf("ListEvents = %d, %v, want 0", len(events), err)
	}
	if err := store.DeleteContact(ctx, account.ID, contact.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestWithinTxRollsBack(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	account, contact := seedContact(t, store, "Atomic")

	boom := errors.New("boom")
	err := store.WithinTx(ctx, func(tx storage.Repository) error {
		if err := tx.CreateNote(ctx, &models.Note{AccountID: account.ID, ContactID: contact.ID, Body: "x"}); err != nil {
			return err
		}
		if _, err := tx.AdjustNoteCount(ctx, contact.ID, 1); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx error = %v, want boom", err)
	}

	notes, _ := store.ListNotes(ctx, contact.ID)
	got, _ := store.GetContact(ctx, account.ID, contact.ID)
	if len(notes) != 0 || got.NumberOfNotes != 0 {
		t.Errorf("rollback left %d notes, counter %d", len(notes), got.NumberOfNotes)
	}
}

func TestAccounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	account := models.NewAccount("jane@example.com", "Jane", "hash")
	if err := store.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if err := store.CreateAccount(ctx, models.NewAccount("jane@example.com", "Other", "hash")); err == nil {
		t.Error("Expected duplicate email to fail")
	}

	got, err := store.GetAccountByEmail(ctx, "jane@example.com")
	if err != nil || got == nil || got.ID != account.ID {
		t.Errorf("GetAccountByEmail = %+v, %v", got, err)
	}
	missing, err := store.GetAccountByEmail(ctx, "nobody@example.com")
	if err != nil || missing != nil {
		t.Errorf("GetAccountByEmail(missing) = %+v, %v, want nil, nil", missing, err)
	}
	if _, err := store.GetAccountByID(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		driver string
		query  string
		want   string
	}{
		{DriverSQLite, "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = ? AND b = ?"},
		{DriverPostgres, "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = $1 AND b = $2"},
		{DriverPostgres, "SELECT 1", "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.query, func(t *testing.T) {
			if got := rebind(tt.driver, tt.query); got != tt.want {
				t.Errorf("rebind = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected unsupported driver error")
	}
}
