package contact

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/rolodex/internal/dates"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/storage"
	"github.com/mmynk/rolodex/internal/storage/sqlstore"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fixture struct {
	svc     *Service
	store   *sqlstore.Store
	clock   *clock
	account *models.Account
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	store, err := sqlstore.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	account := models.NewAccount("owner@example.com", "Owner", "hash")
	require.NoError(t, store.CreateAccount(context.Background(), account))

	clk := &clock{t: time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clk.Now)}, opts...)
	return &fixture{
		svc:     NewService(store, opts...),
		store:   store,
		clock:   clk,
		account: account,
	}
}

func (f *fixture) contact(t *testing.T, first string) *models.Contact {
	t.Helper()
	c, err := f.svc.Create(context.Background(), f.account.ID, ContactInput{FirstName: first})
	require.NoError(t, err)
	return c
}

// reload reads c back from the store to check what was persisted.
func (f *fixture) reload(t *testing.T, c *models.Contact) *models.Contact {
	t.Helper()
	got, err := f.store.GetContact(context.Background(), c.AccountID, c.ID)
	require.NoError(t, err)
	return got
}

func eventsFor(t *testing.T, svc *Service, c *models.Contact, subject models.Subject) []*models.Event {
	t.Helper()
	events, err := svc.Events(context.Background(), c)
	require.NoError(t, err)
	var out []*models.Event
	for _, e := range events {
		if e.Subject == subject {
			out = append(out, e)
		}
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.svc.Create(ctx, f.account.ID, ContactInput{
		FirstName: "jean",
		LastName:  strPtr("Dupont"),
		Birthdate: Exact("1990-03-04"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jean", c.FirstName)
	assert.Equal(t, "Jean Dupont", c.CompleteName())
	assert.NotEmpty(t, c.AvatarColor)
	assert.False(t, c.IsBirthdateApproximate())

	age, ok := c.Age(f.clock.Now())
	require.True(t, ok)
	assert.Equal(t, 36, age)

	events := eventsFor(t, f.svc, c, models.ContactSubject{ID: c.ID})
	require.Len(t, events, 1)
	assert.Equal(t, models.OperationCreate, events[0].Operation)

	_, err = f.svc.Create(ctx, f.account.ID, ContactInput{FirstName: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Create(ctx, f.account.ID, ContactInput{FirstName: "X", Birthdate: Exact("04/03/1990")})
	assert.ErrorIs(t, err, dates.ErrMalformedDate)
}

func TestKids(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Parent")

	t.Run("approximate age becomes January 1st", func(t *testing.T) {
		kid, err := f.svc.AddKid(ctx, c, KidInput{FirstName: "léa", Birthdate: ApproximateAge(10)})
		require.NoError(t, err)

		assert.Equal(t, "Léa", kid.FirstName)
		require.NotNil(t, kid.Birthdate)
		assert.Equal(t, "2016-01-01", dates.Format(*kid.Birthdate))
		assert.Equal(t, models.BirthdateApproximate, kid.BirthdateApproximation)

		assert.Equal(t, 1, c.NumberOfKids)
		assert.True(t, c.HasKids())
		assert.Equal(t, 1, f.reload(t, c).NumberOfKids)

		events := eventsFor(t, f.svc, c, models.KidSubject{ID: kid.ID})
		require.Len(t, events, 1)
		assert.Equal(t, models.OperationCreate, events[0].Operation)

		require.NoError(t, f.svc.DeleteKid(ctx, c, kid))
	})

	t.Run("edit logs one update event", func(t *testing.T) {
		kid, err := f.svc.AddKid(ctx, c, KidInput{FirstName: "Tom", Birthdate: Unknown()})
		require.NoError(t, err)
		assert.Nil(t, kid.Birthdate)

		edited, err := f.svc.EditKid(ctx, c, kid, KidInput{FirstName: "thomas", Birthdate: Exact("2019-07-01")})
		require.NoError(t, err)
		assert.Equal(t, "Thomas", edited.FirstName)
		assert.Equal(t, models.BirthdateExact, edited.BirthdateApproximation)

		events := eventsFor(t, f.svc, c, models.KidSubject{ID: kid.ID})
		require.Len(t, events, 2)

		_, err = f.svc.EditKidByID(ctx, c, kid.ID, KidInput{FirstName: "T", Birthdate: Exact("2019-13-45")})
		assert.ErrorIs(t, err, dates.ErrMalformedDate)
		assert.Len(t, eventsFor(t, f.svc, c, models.KidSubject{ID: kid.ID}), 2)

		require.NoError(t, f.svc.DeleteKidByID(ctx, c, kid.ID))
	})

	t.Run("deleting the last kid clears the counter and the history", func(t *testing.T) {
		kid, err := f.svc.AddKid(ctx, c, KidInput{FirstName: "Zoé"})
		require.NoError(t, err)
		_, err = f.svc.EditKidByID(ctx, c, kid.ID, KidInput{FirstName: "Zoe"})
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteKidByID(ctx, c, kid.ID))
		assert.Equal(t, 0, c.NumberOfKids)
		assert.False(t, c.HasKids())

		events := eventsFor(t, f.svc, c, models.KidSubject{ID: kid.ID})
		require.Len(t, events, 1, "only the deletion remains")
		assert.Equal(t, models.OperationDelete, events[0].Operation)

		err = f.svc.DeleteKidByID(ctx, c, kid.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Equal(t, 0, f.reload(t, c).NumberOfKids, "never negative")
	})

	t.Run("ages before year one are rejected and kids stay readable", func(t *testing.T) {
		_, err := f.svc.AddKid(ctx, c, KidInput{FirstName: "Old", Birthdate: ApproximateAge(3000)})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, f.reload(t, c).NumberOfKids)

		kids, err := f.svc.Kids(ctx, c)
		require.NoError(t, err)
		assert.Empty(t, kids)
	})
}

func TestForeignRecordsAreNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.contact(t, "Alice")
	bob := f.contact(t, "Bob")

	kid, err := f.svc.AddKid(ctx, alice, KidInput{FirstName: "Kim"})
	require.NoError(t, err)
	note, err := f.svc.AddNote(ctx, alice, "met at the conference")
	require.NoError(t, err)
	so, err := f.svc.AddSignificantOther(ctx, alice, SignificantOtherInput{FirstName: "Sam"})
	require.NoError(t, err)

	before, err := f.svc.Events(ctx, bob)
	require.NoError(t, err)

	_, err = f.svc.EditKidByID(ctx, bob, kid.ID, KidInput{FirstName: "Hacked"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteKidByID(ctx, bob, kid.ID), storage.ErrNotFound)
	_, err = f.svc.EditNoteByID(ctx, bob, note.ID, "hacked")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteNoteByID(ctx, bob, note.ID), storage.ErrNotFound)
	_, err = f.svc.EditSignificantOtherByID(ctx, bob, so.ID, SignificantOtherInput{FirstName: "Hacked"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteSignificantOtherByID(ctx, bob, so.ID), storage.ErrNotFound)
	assert.ErrorIs(t, f.svc.DeleteKidByID(ctx, bob, "missing"), storage.ErrNotFound)

	after, err := f.svc.Events(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))

	got := f.reload(t, alice)
	assert.Equal(t, 1, got.NumberOfKids)
	assert.Equal(t, 1, got.NumberOfNotes)
	kids, err := f.svc.Kids(ctx, alice)
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Equal(t, "Kim", kids[0].FirstName)
}

func TestNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Jane")

	first, err := f.svc.AddNote(ctx, c, "likes tea")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	second, err := f.svc.AddNote(ctx, c, "moved to Lyon")
	require.NoError(t, err)
	assert.Equal(t, 2, c.NumberOfNotes)

	notes, err := f.svc.Notes(ctx, c)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, second.ID, notes[0].ID, "newest first")

	edited, err := f.svc.EditNote(ctx, c, first, "likes green tea")
	require.NoError(t, err)
	assert.Equal(t, "likes green tea", edited.Body)

	_, err = f.svc.AddNote(ctx, c, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.svc.DeleteNote(ctx, c, first))
	assert.Equal(t, 1, c.NumberOfNotes)
	events := eventsFor(t, f.svc, c, models.NoteSubject{ID: first.ID})
	require.Len(t, events, 1)
	assert.Equal(t, models.OperationDelete, events[0].Operation)
}

func TestSignificantOthers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Jane")

	current, err := f.svc.CurrentSignificantOther(ctx, c)
	require.NoError(t, err)
	assert.Nil(t, current)

	first, err := f.svc.AddSignificantOther(ctx, c, SignificantOtherInput{FirstName: "paul", LastName: strPtr("Martin")})
	require.NoError(t, err)
	assert.Equal(t, models.SignificantOtherActive, first.Status)
	assert.Equal(t, "Paul Martin", first.CompleteName())

	f.clock.Advance(time.Hour)
	second, err := f.svc.AddSignificantOther(ctx, c, SignificantOtherInput{FirstName: "Alex"})
	require.NoError(t, err)

	current, err = f.svc.CurrentSignificantOther(ctx, c)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID, "most recently activated wins")

	f.clock.Advance(time.Hour)
	_, err = f.svc.EditSignificantOtherByID(ctx, c, second.ID, SignificantOtherInput{
		FirstName: "Alex",
		Status:    models.SignificantOtherInactive,
	})
	require.NoError(t, err)

	current, err = f.svc.CurrentSignificantOther(ctx, c)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, first.ID, current.ID)

	_, err = f.svc.EditSignificantOther(ctx, c, first, SignificantOtherInput{FirstName: "Paul", Status: "married"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.svc.DeleteSignificantOther(ctx, c, first))
	events := eventsFor(t, f.svc, c, models.SignificantOtherSubject{ID: first.ID})
	require.Len(t, events, 1)
	assert.Equal(t, models.OperationDelete, events[0].Operation)
	assert.Len(t, eventsFor(t, f.svc, c, models.SignificantOtherSubject{ID: second.ID}), 2)
}

func TestUpdateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.svc.Create(ctx, f.account.ID, ContactInput{
		FirstName:  "John",
		MiddleName: strPtr("Q"),
		LastName:   strPtr("Public"),
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateName(ctx, c, "", strPtr("X"), strPtr("Y"))
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, "John Q Public", f.reload(t, c).CompleteName())

	updated, err = f.svc.UpdateName(ctx, c, "jane", nil, nil)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Jane Q Public", c.CompleteName())
	assert.Equal(t, "Jane Q Public", f.reload(t, c).CompleteName())

	updated, err = f.svc.UpdateName(ctx, c, "Jane", strPtr(""), strPtr("Doe"))
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Jane Doe", f.reload(t, c).CompleteName())
	assert.Equal(t, "JD", c.Initials())
}

func TestRenameAndAvatarDoNotUndoEachOther(t *testing.T) {
	f := newFixture(t, WithAvatars(&fakeAvatars{}))
	ctx := context.Background()
	c, err := f.svc.Create(ctx, f.account.ID, ContactInput{FirstName: "Jane", LastName: strPtr("Doe")})
	require.NoError(t, err)

	// Two requests holding the same snapshot of the contact.
	first := f.reload(t, c)
	second := f.reload(t, c)

	require.NoError(t, f.svc.SetAvatar(ctx, first, []byte("img")))
	updated, err := f.svc.UpdateName(ctx, second, "Janet", nil, nil)
	require.NoError(t, err)
	require.True(t, updated)

	got := f.reload(t, c)
	assert.Equal(t, "Janet Doe", got.CompleteName())
	key, ok := got.Avatar()
	assert.True(t, ok, "rename must keep the uploaded avatar")
	assert.Equal(t, "avatars/"+string(c.ID)+"/new.jpg", key)

	// The stale snapshot is refreshed by the write.
	_, ok = second.Avatar()
	assert.True(t, ok)
}

func TestActivityStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Jane")

	for _, day := range []string{"2024-02-01", "2024-11-30", "2025-06-15", "2026-01-01", "2026-05-05", "2026-06-01"} {
		_, err := f.svc.AddActivity(ctx, c, ActivityInput{Summary: "Dinner", DateItHappened: day})
		require.NoError(t, err)
	}
	_, err := f.svc.AddActivity(ctx, c, ActivityInput{Summary: "Dinner", DateItHappened: "yesterday"})
	assert.ErrorIs(t, err, dates.ErrMalformedDate)

	type pair struct{ year, count int }
	collect := func(stats []*models.ActivityStatistic) []pair {
		var out []pair
		for _, s := range stats {
			out = append(out, pair{s.Year, s.Count})
		}
		return out
	}
	want := []pair{{2024, 2}, {2025, 1}, {2026, 3}}

	stats, err := f.svc.CalculateActivitiesStatistics(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, want, collect(stats))

	stats, err = f.svc.CalculateActivitiesStatistics(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, want, collect(stats))

	stored, err := f.svc.Statistics(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, want, collect(stored), "previous rows were replaced, not added to")
}

func TestCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Jane")

	t.Run("gifts", func(t *testing.T) {
		idea, err := f.svc.AddGift(ctx, c, GiftInput{Name: "Book", Value: decimal.RequireFromString("12.50"), IsAnIdea: true})
		require.NoError(t, err)
		offered, err := f.svc.AddGift(ctx, c, GiftInput{Name: "Scarf", HasBeenOffered: true})
		require.NoError(t, err)

		ideas, err := f.svc.GiftIdeas(ctx, c)
		require.NoError(t, err)
		require.Len(t, ideas, 1)
		assert.Equal(t, idea.ID, ideas[0].ID)
		assert.True(t, ideas[0].Value.Equal(decimal.RequireFromString("12.5")))

		given, err := f.svc.GiftsOffered(ctx, c)
		require.NoError(t, err)
		require.Len(t, given, 1)
		assert.Equal(t, offered.ID, given[0].ID)

		_, err = f.svc.AddGift(ctx, c, GiftInput{Name: "Bad", Value: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("tasks", func(t *testing.T) {
		_, err := f.svc.AddTask(ctx, c, TaskInput{Title: "Call back"})
		require.NoError(t, err)
		_, err = f.svc.AddTask(ctx, c, TaskInput{Title: "Send photos", Status: models.StatusCompleted})
		require.NoError(t, err)

		open, err := f.svc.TasksInProgress(ctx, c)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.Equal(t, "Call back", open[0].Title)

		done, err := f.svc.CompletedTasks(ctx, c)
		require.NoError(t, err)
		assert.Len(t, done, 1)
	})

	t.Run("debts", func(t *testing.T) {
		_, err := f.svc.AddDebt(ctx, c, DebtInput{Amount: decimal.NewFromInt(50)})
		require.NoError(t, err)
		_, err = f.svc.AddDebt(ctx, c, DebtInput{InDebt: true, Amount: decimal.RequireFromString("20.25")})
		require.NoError(t, err)
		_, err = f.svc.AddDebt(ctx, c, DebtInput{Amount: decimal.NewFromInt(1000), Status: models.StatusCompleted})
		require.NoError(t, err)

		open, err := f.svc.DebtsInProgress(ctx, c)
		require.NoError(t, err)
		assert.Len(t, open, 2)

		balance, err := f.svc.OutstandingDebt(ctx, c)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("29.75")), balance.String())

		_, err = f.svc.AddDebt(ctx, c, DebtInput{Amount: decimal.Zero})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("reminders", func(t *testing.T) {
		_, err := f.svc.AddReminder(ctx, c, ReminderInput{Title: "Birthday", NextExpectedDate: "2026-09-01", FrequencyType: models.FrequencyYear, FrequencyNumber: 1})
		require.NoError(t, err)
		_, err = f.svc.AddReminder(ctx, c, ReminderInput{Title: "Coffee", NextExpectedDate: "2026-07-01"})
		require.NoError(t, err)

		reminders, err := f.svc.Reminders(ctx, c)
		require.NoError(t, err)
		require.Len(t, reminders, 2)
		assert.Equal(t, "Coffee", reminders[0].Title)
		assert.Equal(t, models.FrequencyOneTime, reminders[0].FrequencyType)

		_, err = f.svc.AddReminder(ctx, c, ReminderInput{Title: "X", NextExpectedDate: "2026-07-01", FrequencyType: "daily"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	events, err := f.svc.Events(ctx, c)
	require.NoError(t, err)
	// contact + 2 gifts + 2 tasks + 3 debts + 2 reminders
	assert.Len(t, events, 10)
}

func TestDeleteContact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.contact(t, "Gone")
	_, err := f.svc.AddKid(ctx, c, KidInput{FirstName: "Kid"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, c))
	_, err = f.svc.Get(ctx, f.account.ID, c.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	events, err := f.svc.Events(ctx, c)
	require.NoError(t, err)
	assert.Empty(t, events)
}

type fakeBlobs struct{}

func (fakeBlobs) URL(key string) string { return "https://cdn.example.com/" + key }

type fakeGravatar map[string]string

func (g fakeGravatar) URL(_ context.Context, email string, _ int) (string, bool) {
	url, ok := g[email]
	return url, ok
}

type fakeAvatars struct{ removed []string }

func (a *fakeAvatars) Upload(_ context.Context, contactID models.ContactID, _ []byte) (string, error) {
	return "avatars/" + string(contactID) + "/new.jpg", nil
}

func (a *fakeAvatars) Remove(_ context.Context, key string) { a.removed = append(a.removed, key) }

func TestAvatarHelpers(t *testing.T) {
	avatars := &fakeAvatars{}
	f := newFixture(t,
		WithBlobs(fakeBlobs{}),
		WithGravatar(fakeGravatar{"jane@example.com": "https://gravatar/jane"}),
		WithAvatars(avatars),
	)
	ctx := context.Background()
	c, err := f.svc.Create(ctx, f.account.ID, ContactInput{FirstName: "Jane", Email: strPtr("jane@example.com")})
	require.NoError(t, err)

	_, ok := f.svc.AvatarURL(c, 110)
	assert.False(t, ok)

	url, ok := f.svc.GravatarURL(ctx, c, 80)
	assert.True(t, ok)
	assert.Equal(t, "https://gravatar/jane", url)

	old := "avatars/" + string(c.ID) + "/old.png"
	_, err = f.store.SetContactAvatar(ctx, f.account.ID, c.ID, old, c.UpdatedAt)
	require.NoError(t, err)
	require.NoError(t, f.svc.SetAvatar(ctx, c, []byte("img")))

	url, ok = f.svc.AvatarURL(c, 110)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/avatars/"+string(c.ID)+"/new_110.jpg", url)
	assert.Equal(t, []string{old}, avatars.removed)

	stored, ok := f.reload(t, c).Avatar()
	assert.True(t, ok)
	assert.Equal(t, "avatars/"+string(c.ID)+"/new.jpg", stored)

	noEmail := f.contact(t, "Nobody")
	_, ok = f.svc.GravatarURL(ctx, noEmail, 80)
	assert.False(t, ok)
}
