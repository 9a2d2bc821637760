package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/rolodex/internal/avatar"
	"github.com/mmynk/rolodex/internal/contact"
	"github.com/mmynk/rolodex/internal/export"
	"github.com/mmynk/rolodex/internal/middleware"
	"github.com/mmynk/rolodex/internal/models"
	"github.com/mmynk/rolodex/internal/rpc"
)

// defaultAvatarSize is the thumbnail shown in lists.
const defaultAvatarSize = 110

// MaxRequestBytes caps ContactService request bodies: the largest avatar,
// base64 encoded, plus room for the rest of the message.
const MaxRequestBytes = avatar.MaxUploadBytes*4/3 + 1<<20

var errNoAccount = errors.New("request is not scoped to an account")

// ContactService implements the Connect ContactService
type ContactService struct {
	contacts *contact.Service
	now      func() time.Time
}

// Ensure ContactService implements the handler interface
var _ rpc.ContactServiceHandler = (*ContactService)(nil)

// NewContactService creates a new ContactService on top of the contact aggregate.
func NewContactService(contacts *contact.Service) *ContactService {
	return &ContactService{contacts: contacts, now: time.Now}
}

// load fetches a contact of the calling account.
func (s *ContactService) load(ctx context.Context, contactID string) (*models.Contact, error) {
	accountID := middleware.GetAccountID(ctx)
	if accountID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoAccount)
	}
	c, err := s.contacts.Get(ctx, accountID, models.ContactID(contactID))
	if err != nil {
		return nil, toConnectError(err)
	}
	return c, nil
}

func (s *ContactService) view(c *models.Contact) *rpc.Contact {
	url, _ := s.contacts.AvatarURL(c, defaultAvatarSize)
	return toContact(c, s.now(), url)
}

// CreateContact adds a contact to the calling account.
func (s *ContactService) CreateContact(ctx context.Context, req *connect.Request[rpc.CreateContactRequest]) (*connect.Response[rpc.CreateContactResponse], error) {
	slog.Info("CreateContact request received", "first_name", req.Msg.Contact.FirstName)

	accountID := middleware.GetAccountID(ctx)
	if accountID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoAccount)
	}

	c, err := s.contacts.Create(ctx, accountID, toContactInput(req.Msg.Contact))
	if err != nil {
		slog.Error("CreateContact failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Contact created", "contact_id", c.ID)
	return connect.NewResponse(&rpc.CreateContactResponse{Contact: s.view(c)}), nil
}

// GetContact returns a contact with everything attached to it.
func (s *ContactService) GetContact(ctx context.Context, req *connect.Request[rpc.GetContactRequest]) (*connect.Response[rpc.GetContactResponse], error) {
	slog.Info("GetContact request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profile(ctx, c)
	if err != nil {
		slog.Error("GetContact failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.GetContactResponse{Profile: profile}), nil
}

func (s *ContactService) profile(ctx context.Context, c *models.Contact) (*rpc.Profile, error) {
	now := s.now()
	p := &rpc.Profile{Contact: s.view(c)}
	p.GravatarURL, _ = s.contacts.GravatarURL(ctx, c, defaultAvatarSize)

	kids, err := s.contacts.Kids(ctx, c)
	if err != nil {
		return nil, err
	}
	p.Kids = convertAll(kids, func(k *models.Kid) *rpc.Kid { return toKid(k, now) })

	sos, err := s.contacts.SignificantOthers(ctx, c)
	if err != nil {
		return nil, err
	}
	p.SignificantOthers = convertAll(sos, func(so *models.SignificantOther) *rpc.SignificantOther {
		return toSignificantOther(so, now)
	})

	current, err := s.contacts.CurrentSignificantOther(ctx, c)
	if err != nil {
		return nil, err
	}
	p.CurrentSignificantOther = toSignificantOther(current, now)

	notes, err := s.contacts.Notes(ctx, c)
	if err != nil {
		return nil, err
	}
	p.Notes = convertAll(notes, toNote)

	activities, err := s.contacts.Activities(ctx, c)
	if err != nil {
		return nil, err
	}
	p.Activities = convertAll(activities, toActivity)

	stats, err := s.contacts.Statistics(ctx, c)
	if err != nil {
		return nil, err
	}
	p.Statistics = convertAll(stats, toStatistic)

	reminders, err := s.contacts.Reminders(ctx, c)
	if err != nil {
		return nil, err
	}
	p.Reminders = convertAll(reminders, toReminder)

	ideas, err := s.contacts.GiftIdeas(ctx, c)
	if err != nil {
		return nil, err
	}
	p.GiftIdeas = convertAll(ideas, toGift)

	offered, err := s.contacts.GiftsOffered(ctx, c)
	if err != nil {
		return nil, err
	}
	p.GiftsOffered = convertAll(offered, toGift)

	open, err := s.contacts.TasksInProgress(ctx, c)
	if err != nil {
		return nil, err
	}
	p.TasksInProgress = convertAll(open, toTask)

	done, err := s.contacts.CompletedTasks(ctx, c)
	if err != nil {
		return nil, err
	}
	p.CompletedTasks = convertAll(done, toTask)

	debts, err := s.contacts.DebtsInProgress(ctx, c)
	if err != nil {
		return nil, err
	}
	p.DebtsInProgress = convertAll(debts, toDebt)

	if p.OutstandingDebt, err = s.contacts.OutstandingDebt(ctx, c); err != nil {
		return nil, err
	}
	return p, nil
}

// ListContacts returns the contacts of the calling account.
func (s *ContactService) ListContacts(ctx context.Context, req *connect.Request[rpc.ListContactsRequest]) (*connect.Response[rpc.ListContactsResponse], error) {
	slog.Info("ListContacts request received")

	accountID := middleware.GetAccountID(ctx)
	if accountID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoAccount)
	}

	contacts, err := s.contacts.List(ctx, accountID)
	if err != nil {
		slog.Error("ListContacts failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListContacts successful", "count", len(contacts))
	return connect.NewResponse(&rpc.ListContactsResponse{
		Contacts: convertAll(contacts, s.view),
	}), nil
}

// DeleteContact removes a contact and everything it owns.
func (s *ContactService) DeleteContact(ctx context.Context, req *connect.Request[rpc.DeleteContactRequest]) (*connect.Response[rpc.DeleteContactResponse], error) {
	slog.Info("DeleteContact request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.Delete(ctx, c); err != nil {
		slog.Error("DeleteContact failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeleteContactResponse{}), nil
}

// UpdateContactName renames a contact. An empty first name is answered with
// updated=false rather than an error.
func (s *ContactService) UpdateContactName(ctx context.Context, req *connect.Request[rpc.UpdateContactNameRequest]) (*connect.Response[rpc.UpdateContactNameResponse], error) {
	slog.Info("UpdateContactName request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	updated, err := s.contacts.UpdateName(ctx, c, req.Msg.FirstName, req.Msg.MiddleName, req.Msg.LastName)
	if err != nil {
		slog.Error("UpdateContactName failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateContactNameResponse{
		Updated: updated,
		Contact: s.view(c),
	}), nil
}

func (s *ContactService) AddKid(ctx context.Context, req *connect.Request[rpc.AddKidRequest]) (*connect.Response[rpc.AddKidResponse], error) {
	slog.Info("AddKid request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	kid, err := s.contacts.AddKid(ctx, c, toKidInput(req.Msg.Kid))
	if err != nil {
		slog.Error("AddKid failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddKidResponse{
		Kid:          toKid(kid, s.now()),
		NumberOfKids: c.NumberOfKids,
	}), nil
}

func (s *ContactService) UpdateKid(ctx context.Context, req *connect.Request[rpc.UpdateKidRequest]) (*connect.Response[rpc.UpdateKidResponse], error) {
	slog.Info("UpdateKid request received", "contact_id", req.Msg.ContactID, "kid_id", req.Msg.KidID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	kid, err := s.contacts.EditKidByID(ctx, c, models.KidID(req.Msg.KidID), toKidInput(req.Msg.Kid))
	if err != nil {
		slog.Error("UpdateKid failed", "kid_id", req.Msg.KidID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateKidResponse{Kid: toKid(kid, s.now())}), nil
}

func (s *ContactService) DeleteKid(ctx context.Context, req *connect.Request[rpc.DeleteKidRequest]) (*connect.Response[rpc.DeleteKidResponse], error) {
	slog.Info("DeleteKid request received", "contact_id", req.Msg.ContactID, "kid_id", req.Msg.KidID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.DeleteKidByID(ctx, c, models.KidID(req.Msg.KidID)); err != nil {
		slog.Error("DeleteKid failed", "kid_id", req.Msg.KidID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeleteKidResponse{NumberOfKids: c.NumberOfKids}), nil
}

func (s *ContactService) AddSignificantOther(ctx context.Context, req *connect.Request[rpc.AddSignificantOtherRequest]) (*connect.Response[rpc.AddSignificantOtherResponse], error) {
	slog.Info("AddSignificantOther request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	so, err := s.contacts.AddSignificantOther(ctx, c, toSignificantOtherInput(req.Msg.SignificantOther))
	if err != nil {
		slog.Error("AddSignificantOther failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddSignificantOtherResponse{
		SignificantOther: toSignificantOther(so, s.now()),
	}), nil
}

func (s *ContactService) UpdateSignificantOther(ctx context.Context, req *connect.Request[rpc.UpdateSignificantOtherRequest]) (*connect.Response[rpc.UpdateSignificantOtherResponse], error) {
	slog.Info("UpdateSignificantOther request received",
		"contact_id", req.Msg.ContactID,
		"significant_other_id", req.Msg.SignificantOtherID,
	)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	so, err := s.contacts.EditSignificantOtherByID(ctx, c,
		models.SignificantOtherID(req.Msg.SignificantOtherID), toSignificantOtherInput(req.Msg.SignificantOther))
	if err != nil {
		slog.Error("UpdateSignificantOther failed", "significant_other_id", req.Msg.SignificantOtherID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateSignificantOtherResponse{
		SignificantOther: toSignificantOther(so, s.now()),
	}), nil
}

func (s *ContactService) DeleteSignificantOther(ctx context.Context, req *connect.Request[rpc.DeleteSignificantOtherRequest]) (*connect.Response[rpc.DeleteSignificantOtherResponse], error) {
	slog.Info("DeleteSignificantOther request received",
		"contact_id", req.Msg.ContactID,
		"significant_other_id", req.Msg.SignificantOtherID,
	)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.DeleteSignificantOtherByID(ctx, c, models.SignificantOtherID(req.Msg.SignificantOtherID)); err != nil {
		slog.Error("DeleteSignificantOther failed", "significant_other_id", req.Msg.SignificantOtherID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeleteSignificantOtherResponse{}), nil
}

func (s *ContactService) AddNote(ctx context.Context, req *connect.Request[rpc.AddNoteRequest]) (*connect.Response[rpc.AddNoteResponse], error) {
	slog.Info("AddNote request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	note, err := s.contacts.AddNote(ctx, c, req.Msg.Body)
	if err != nil {
		slog.Error("AddNote failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddNoteResponse{
		Note:          toNote(note),
		NumberOfNotes: c.NumberOfNotes,
	}), nil
}

func (s *ContactService) UpdateNote(ctx context.Context, req *connect.Request[rpc.UpdateNoteRequest]) (*connect.Response[rpc.UpdateNoteResponse], error) {
	slog.Info("UpdateNote request received", "contact_id", req.Msg.ContactID, "note_id", req.Msg.NoteID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	note, err := s.contacts.EditNoteByID(ctx, c, models.NoteID(req.Msg.NoteID), req.Msg.Body)
	if err != nil {
		slog.Error("UpdateNote failed", "note_id", req.Msg.NoteID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UpdateNoteResponse{Note: toNote(note)}), nil
}

func (s *ContactService) DeleteNote(ctx context.Context, req *connect.Request[rpc.DeleteNoteRequest]) (*connect.Response[rpc.DeleteNoteResponse], error) {
	slog.Info("DeleteNote request received", "contact_id", req.Msg.ContactID, "note_id", req.Msg.NoteID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.DeleteNoteByID(ctx, c, models.NoteID(req.Msg.NoteID)); err != nil {
		slog.Error("DeleteNote failed", "note_id", req.Msg.NoteID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.DeleteNoteResponse{NumberOfNotes: c.NumberOfNotes}), nil
}

// ListEvents returns the audit log of a contact, newest first.
func (s *ContactService) ListEvents(ctx context.Context, req *connect.Request[rpc.ListEventsRequest]) (*connect.Response[rpc.ListEventsResponse], error) {
	slog.Info("ListEvents request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	events, err := s.contacts.Events(ctx, c)
	if err != nil {
		slog.Error("ListEvents failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.ListEventsResponse{Events: convertAll(events, toEvent)}), nil
}

func (s *ContactService) AddActivity(ctx context.Context, req *connect.Request[rpc.AddActivityRequest]) (*connect.Response[rpc.AddActivityResponse], error) {
	slog.Info("AddActivity request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	a, err := s.contacts.AddActivity(ctx, c, contact.ActivityInput{
		Summary:        req.Msg.Summary,
		Description:    req.Msg.Description,
		DateItHappened: req.Msg.DateItHappened,
	})
	if err != nil {
		slog.Error("AddActivity failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddActivityResponse{Activity: toActivity(a)}), nil
}

// CalculateActivityStatistics rebuilds the yearly activity counts.
func (s *ContactService) CalculateActivityStatistics(ctx context.Context, req *connect.Request[rpc.CalculateActivityStatisticsRequest]) (*connect.Response[rpc.CalculateActivityStatisticsResponse], error) {
	slog.Info("CalculateActivityStatistics request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	stats, err := s.contacts.CalculateActivitiesStatistics(ctx, c)
	if err != nil {
		slog.Error("CalculateActivityStatistics failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.CalculateActivityStatisticsResponse{
		Statistics: convertAll(stats, toStatistic),
	}), nil
}

func (s *ContactService) AddReminder(ctx context.Context, req *connect.Request[rpc.AddReminderRequest]) (*connect.Response[rpc.AddReminderResponse], error) {
	slog.Info("AddReminder request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	r, err := s.contacts.AddReminder(ctx, c, contact.ReminderInput{
		Title:            req.Msg.Title,
		Description:      req.Msg.Description,
		NextExpectedDate: req.Msg.NextExpectedDate,
		FrequencyType:    models.FrequencyType(req.Msg.FrequencyType),
		FrequencyNumber:  req.Msg.FrequencyNumber,
	})
	if err != nil {
		slog.Error("AddReminder failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddReminderResponse{Reminder: toReminder(r)}), nil
}

func (s *ContactService) AddGift(ctx context.Context, req *connect.Request[rpc.AddGiftRequest]) (*connect.Response[rpc.AddGiftResponse], error) {
	slog.Info("AddGift request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	g, err := s.contacts.AddGift(ctx, c, contact.GiftInput{
		Name:           req.Msg.Name,
		Comment:        req.Msg.Comment,
		URL:            req.Msg.URL,
		Value:          req.Msg.Value,
		IsAnIdea:       req.Msg.IsAnIdea,
		HasBeenOffered: req.Msg.HasBeenOffered,
	})
	if err != nil {
		slog.Error("AddGift failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddGiftResponse{Gift: toGift(g)}), nil
}

func (s *ContactService) AddTask(ctx context.Context, req *connect.Request[rpc.AddTaskRequest]) (*connect.Response[rpc.AddTaskResponse], error) {
	slog.Info("AddTask request received", "contact_id", req.Msg.ContactID)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	t, err := s.contacts.AddTask(ctx, c, contact.TaskInput{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		Status:      models.ProgressStatus(req.Msg.Status),
	})
	if err != nil {
		slog.Error("AddTask failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddTaskResponse{Task: toTask(t)}), nil
}

func (s *ContactService) AddDebt(ctx context.Context, req *connect.Request[rpc.AddDebtRequest]) (*connect.Response[rpc.AddDebtResponse], error) {
	slog.Info("AddDebt request received", "contact_id", req.Msg.ContactID, "in_debt", req.Msg.InDebt)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	d, err := s.contacts.AddDebt(ctx, c, contact.DebtInput{
		InDebt: req.Msg.InDebt,
		Status: models.ProgressStatus(req.Msg.Status),
		Amount: req.Msg.Amount,
		Reason: req.Msg.Reason,
	})
	if err != nil {
		slog.Error("AddDebt failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.AddDebtResponse{Debt: toDebt(d)}), nil
}

// UploadAvatar replaces a contact's picture.
func (s *ContactService) UploadAvatar(ctx context.Context, req *connect.Request[rpc.UploadAvatarRequest]) (*connect.Response[rpc.UploadAvatarResponse], error) {
	slog.Info("UploadAvatar request received", "contact_id", req.Msg.ContactID, "bytes", len(req.Msg.Image))

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}
	if err := s.contacts.SetAvatar(ctx, c, req.Msg.Image); err != nil {
		slog.Error("UploadAvatar failed", "contact_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&rpc.UploadAvatarResponse{Contact: s.view(c)}), nil
}

// GetAvatar picks the picture to show: the uploaded one, then Gravatar, then
// the background color alone.
func (s *ContactService) GetAvatar(ctx context.Context, req *connect.Request[rpc.GetAvatarRequest]) (*connect.Response[rpc.GetAvatarResponse], error) {
	slog.Info("GetAvatar request received", "contact_id", req.Msg.ContactID, "size", req.Msg.Size)

	c, err := s.load(ctx, req.Msg.ContactID)
	if err != nil {
		return nil, err
	}

	size := req.Msg.Size
	if size == 0 {
		size = defaultAvatarSize
	}
	resp := &rpc.GetAvatarResponse{Source: "color", Color: c.AvatarColor}
	if url, ok := s.contacts.AvatarURL(c, closestSize(size)); ok {
		resp.Source, resp.URL = "upload", url
	} else if url, ok := s.contacts.GravatarURL(ctx, c, size); ok {
		resp.Source, resp.URL = "gravatar", url
	}
	return connect.NewResponse(resp), nil
}

// closestSize rounds a requested edge up to a generated thumbnail size.
func closestSize(size int) int {
	for _, s := range avatar.Sizes {
		if size <= s {
			return s
		}
	}
	return avatar.Sizes[len(avatar.Sizes)-1]
}

// ExportContacts renders the calling account's contacts as an XLSX workbook.
func (s *ContactService) ExportContacts(ctx context.Context, req *connect.Request[rpc.ExportContactsRequest]) (*connect.Response[rpc.ExportContactsResponse], error) {
	slog.Info("ExportContacts request received")

	accountID := middleware.GetAccountID(ctx)
	if accountID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNoAccount)
	}
	contacts, err := s.contacts.List(ctx, accountID)
	if err != nil {
		return nil, toConnectError(err)
	}
	data, err := export.Contacts(contacts)
	if err != nil {
		slog.Error("ExportContacts failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ExportContacts successful", "count", len(contacts), "bytes", len(data))
	return connect.NewResponse(&rpc.ExportContactsResponse{
		Filename: fmt.Sprintf("contacts-%s.xlsx", s.now().Format("20060102")),
		Data:     data,
	}), nil
}
