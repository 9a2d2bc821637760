package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Procedures of ContactService.
const (
	ContactServiceCreateContactProcedure               = "/rolodex.v1.ContactService/CreateContact"
	ContactServiceGetContactProcedure                  = "/rolodex.v1.ContactService/GetContact"
	ContactServiceListContactsProcedure                = "/rolodex.v1.ContactService/ListContacts"
	ContactServiceDeleteContactProcedure               = "/rolodex.v1.ContactService/DeleteContact"
	ContactServiceUpdateContactNameProcedure           = "/rolodex.v1.ContactService/UpdateContactName"
	ContactServiceAddKidProcedure                      = "/rolodex.v1.ContactService/AddKid"
	ContactServiceUpdateKidProcedure                   = "/rolodex.v1.ContactService/UpdateKid"
	ContactServiceDeleteKidProcedure                   = "/rolodex.v1.ContactService/DeleteKid"
	ContactServiceAddSignificantOtherProcedure         = "/rolodex.v1.ContactService/AddSignificantOther"
	ContactServiceUpdateSignificantOtherProcedure      = "/rolodex.v1.ContactService/UpdateSignificantOther"
	ContactServiceDeleteSignificantOtherProcedure      = "/rolodex.v1.ContactService/DeleteSignificantOther"
	ContactServiceAddNoteProcedure                     = "/rolodex.v1.ContactService/AddNote"
	ContactServiceUpdateNoteProcedure                  = "/rolodex.v1.ContactService/UpdateNote"
	ContactServiceDeleteNoteProcedure                  = "/rolodex.v1.ContactService/DeleteNote"
	ContactServiceListEventsProcedure                  = "/rolodex.v1.ContactService/ListEvents"
	ContactServiceAddActivityProcedure                 = "/rolodex.v1.ContactService/AddActivity"
	ContactServiceCalculateActivityStatisticsProcedure = "/rolodex.v1.ContactService/CalculateActivityStatistics"
	ContactServiceAddReminderProcedure                 = "/rolodex.v1.ContactService/AddReminder"
	ContactServiceAddGiftProcedure                     = "/rolodex.v1.ContactService/AddGift"
	ContactServiceAddTaskProcedure                     = "/rolodex.v1.ContactService/AddTask"
	ContactServiceAddDebtProcedure                     = "/rolodex.v1.ContactService/AddDebt"
	ContactServiceUploadAvatarProcedure                = "/rolodex.v1.ContactService/UploadAvatar"
	ContactServiceGetAvatarProcedure                   = "/rolodex.v1.ContactService/GetAvatar"
	ContactServiceExportContactsProcedure              = "/rolodex.v1.ContactService/ExportContacts"
)

// ContactServiceHandler is implemented by the server side of ContactService.
// Every call is scoped to the authenticated account.
type ContactServiceHandler interface {
	CreateContact(context.Context, *connect.Request[CreateContactRequest]) (*connect.Response[CreateContactResponse], error)
	GetContact(context.Context, *connect.Request[GetContactRequest]) (*connect.Response[GetContactResponse], error)
	ListContacts(context.Context, *connect.Request[ListContactsRequest]) (*connect.Response[ListContactsResponse], error)
	DeleteContact(context.Context, *connect.Request[DeleteContactRequest]) (*connect.Response[DeleteContactResponse], error)
	UpdateContactName(context.Context, *connect.Request[UpdateContactNameRequest]) (*connect.Response[UpdateContactNameResponse], error)
	AddKid(context.Context, *connect.Request[AddKidRequest]) (*connect.Response[AddKidResponse], error)
	UpdateKid(context.Context, *connect.Request[UpdateKidRequest]) (*connect.Response[UpdateKidResponse], error)
	DeleteKid(context.Context, *connect.Request[DeleteKidRequest]) (*connect.Response[DeleteKidResponse], error)
	AddSignificantOther(context.Context, *connect.Request[AddSignificantOtherRequest]) (*connect.Response[AddSignificantOtherResponse], error)
	UpdateSignificantOther(context.Context, *connect.Request[UpdateSignificantOtherRequest]) (*connect.Response[UpdateSignificantOtherResponse], error)
	DeleteSignificantOther(context.Context, *connect.Request[DeleteSignificantOtherRequest]) (*connect.Response[DeleteSignificantOtherResponse], error)
	AddNote(context.Context, *connect.Request[AddNoteRequest]) (*connect.Response[AddNoteResponse], error)
	UpdateNote(context.Context, *connect.Request[UpdateNoteRequest]) (*connect.Response[UpdateNoteResponse], error)
	DeleteNote(context.Context, *connect.Request[DeleteNoteRequest]) (*connect.Response[DeleteNoteResponse], error)
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
	AddActivity(context.Context, *connect.Request[AddActivityRequest]) (*connect.Response[AddActivityResponse], error)
	CalculateActivityStatistics(context.Context, *connect.Request[CalculateActivityStatisticsRequest]) (*connect.Response[CalculateActivityStatisticsResponse], error)
	AddReminder(context.Context, *connect.Request[AddReminderRequest]) (*connect.Response[AddReminderResponse], error)
	AddGift(context.Context, *connect.Request[AddGiftRequest]) (*connect.Response[AddGiftResponse], error)
	AddTask(context.Context, *connect.Request[AddTaskRequest]) (*connect.Response[AddTaskResponse], error)
	AddDebt(context.Context, *connect.Request[AddDebtRequest]) (*connect.Response[AddDebtResponse], error)
	UploadAvatar(context.Context, *connect.Request[UploadAvatarRequest]) (*connect.Response[UploadAvatarResponse], error)
	GetAvatar(context.Context, *connect.Request[GetAvatarRequest]) (*connect.Response[GetAvatarResponse], error)
	ExportContacts(context.Context, *connect.Request[ExportContactsRequest]) (*connect.Response[ExportContactsResponse], error)
}

// NewContactServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewContactServiceHandler(svc ContactServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ContactServiceCreateContactProcedure, connect.NewUnaryHandler(ContactServiceCreateContactProcedure, svc.CreateContact, opts...))
	mux.Handle(ContactServiceGetContactProcedure, connect.NewUnaryHandler(ContactServiceGetContactProcedure, svc.GetContact, opts...))
	mux.Handle(ContactServiceListContactsProcedure, connect.NewUnaryHandler(ContactServiceListContactsProcedure, svc.ListContacts, opts...))
	mux.Handle(ContactServiceDeleteContactProcedure, connect.NewUnaryHandler(ContactServiceDeleteContactProcedure, svc.DeleteContact, opts...))
	mux.Handle(ContactServiceUpdateContactNameProcedure, connect.NewUnaryHandler(ContactServiceUpdateContactNameProcedure, svc.UpdateContactName, opts...))
	mux.Handle(ContactServiceAddKidProcedure, connect.NewUnaryHandler(ContactServiceAddKidProcedure, svc.AddKid, opts...))
	mux.Handle(ContactServiceUpdateKidProcedure, connect.NewUnaryHandler(ContactServiceUpdateKidProcedure, svc.UpdateKid, opts...))
	mux.Handle(ContactServiceDeleteKidProcedure, connect.NewUnaryHandler(ContactServiceDeleteKidProcedure, svc.DeleteKid, opts...))
	mux.Handle(ContactServiceAddSignificantOtherProcedure, connect.NewUnaryHandler(ContactServiceAddSignificantOtherProcedure, svc.AddSignificantOther, opts...))
	mux.Handle(ContactServiceUpdateSignificantOtherProcedure, connect.NewUnaryHandler(ContactServiceUpdateSignificantOtherProcedure, svc.UpdateSignificantOther, opts...))
	mux.Handle(ContactServiceDeleteSignificantOtherProcedure, connect.NewUnaryHandler(ContactServiceDeleteSignificantOtherProcedure, svc.DeleteSignificantOther, opts...))
	mux.Handle(ContactServiceAddNoteProcedure, connect.NewUnaryHandler(ContactServiceAddNoteProcedure, svc.AddNote, opts...))
	mux.Handle(ContactServiceUpdateNoteProcedure, connect.NewUnaryHandler(ContactServiceUpdateNoteProcedure, svc.UpdateNote, opts...))
	mux.Handle(ContactServiceDeleteNoteProcedure, connect.NewUnaryHandler(ContactServiceDeleteNoteProcedure, svc.DeleteNote, opts...))
	mux.Handle(ContactServiceListEventsProcedure, connect.NewUnaryHandler(ContactServiceListEventsProcedure, svc.ListEvents, opts...))
	mux.Handle(ContactServiceAddActivityProcedure, connect.NewUnaryHandler(ContactServiceAddActivityProcedure, svc.AddActivity, opts...))
	mux.Handle(ContactServiceCalculateActivityStatisticsProcedure, connect.NewUnaryHandler(ContactServiceCalculateActivityStatisticsProcedure, svc.CalculateActivityStatistics, opts...))
	mux.Handle(ContactServiceAddReminderProcedure, connect.NewUnaryHandler(ContactServiceAddReminderProcedure, svc.AddReminder, opts...))
	mux.Handle(ContactServiceAddGiftProcedure, connect.NewUnaryHandler(ContactServiceAddGiftProcedure, svc.AddGift, opts...))
	mux.Handle(ContactServiceAddTaskProcedure, connect.NewUnaryHandler(ContactServiceAddTaskProcedure, svc.AddTask, opts...))
	mux.Handle(ContactServiceAddDebtProcedure, connect.NewUnaryHandler(ContactServiceAddDebtProcedure, svc.AddDebt, opts...))
	mux.Handle(ContactServiceUploadAvatarProcedure, connect.NewUnaryHandler(ContactServiceUploadAvatarProcedure, svc.UploadAvatar, opts...))
	mux.Handle(ContactServiceGetAvatarProcedure, connect.NewUnaryHandler(ContactServiceGetAvatarProcedure, svc.GetAvatar, opts...))
	mux.Handle(ContactServiceExportContactsProcedure, connect.NewUnaryHandler(ContactServiceExportContactsProcedure, svc.ExportContacts, opts...))
	return "/" + ContactServiceName + "/", mux
}

// ContactServiceClient is a client for ContactService.
type ContactServiceClient struct {
	createContact               *connect.Client[CreateContactRequest, CreateContactResponse]
	getContact                  *connect.Client[GetContactRequest, GetContactResponse]
	listContacts                *connect.Client[ListContactsRequest, ListContactsResponse]
	deleteContact               *connect.Client[DeleteContactRequest, DeleteContactResponse]
	updateContactName           *connect.Client[UpdateContactNameRequest, UpdateContactNameResponse]
	addKid                      *connect.Client[AddKidRequest, AddKidResponse]
	updateKid                   *connect.Client[UpdateKidRequest, UpdateKidResponse]
	deleteKid                   *connect.Client[DeleteKidRequest, DeleteKidResponse]
	addSignificantOther         *connect.Client[AddSignificantOtherRequest, AddSignificantOtherResponse]
	updateSignificantOther      *connect.Client[UpdateSignificantOtherRequest, UpdateSignificantOtherResponse]
	deleteSignificantOther      *connect.Client[DeleteSignificantOtherRequest, DeleteSignificantOtherResponse]
	addNote                     *connect.Client[AddNoteRequest, AddNoteResponse]
	updateNote                  *connect.Client[UpdateNoteRequest, UpdateNoteResponse]
	deleteNote                  *connect.Client[DeleteNoteRequest, DeleteNoteResponse]
	listEvents                  *connect.Client[ListEventsRequest, ListEventsResponse]
	addActivity                 *connect.Client[AddActivityRequest, AddActivityResponse]
	calculateActivityStatistics *connect.Client[CalculateActivityStatisticsRequest, CalculateActivityStatisticsResponse]
	addReminder                 *connect.Client[AddReminderRequest, AddReminderResponse]
	addGift                     *connect.Client[AddGiftRequest, AddGiftResponse]
	addTask                     *connect.Client[AddTaskRequest, AddTaskResponse]
	addDebt                     *connect.Client[AddDebtRequest, AddDebtResponse]
	uploadAvatar                *connect.Client[UploadAvatarRequest, UploadAvatarResponse]
	getAvatar                   *connect.Client[GetAvatarRequest, GetAvatarResponse]
	exportContacts              *connect.Client[ExportContactsRequest, ExportContactsResponse]
}

// NewContactServiceClient constructs a client for ContactService at baseURL
// (for example, http://localhost:8080).
func NewContactServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ContactServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &ContactServiceClient{
		createContact:               connect.NewClient[CreateContactRequest, CreateContactResponse](httpClient, baseURL+ContactServiceCreateContactProcedure, opts...),
		getContact:                  connect.NewClient[GetContactRequest, GetContactResponse](httpClient, baseURL+ContactServiceGetContactProcedure, opts...),
		listContacts:                connect.NewClient[ListContactsRequest, ListContactsResponse](httpClient, baseURL+ContactServiceListContactsProcedure, opts...),
		deleteContact:               connect.NewClient[DeleteContactRequest, DeleteContactResponse](httpClient, baseURL+ContactServiceDeleteContactProcedure, opts...),
		updateContactName:           connect.NewClient[UpdateContactNameRequest, UpdateContactNameResponse](httpClient, baseURL+ContactServiceUpdateContactNameProcedure, opts...),
		addKid:                      connect.NewClient[AddKidRequest, AddKidResponse](httpClient, baseURL+ContactServiceAddKidProcedure, opts...),
		updateKid:                   connect.NewClient[UpdateKidRequest, UpdateKidResponse](httpClient, baseURL+ContactServiceUpdateKidProcedure, opts...),
		deleteKid:                   connect.NewClient[DeleteKidRequest, DeleteKidResponse](httpClient, baseURL+ContactServiceDeleteKidProcedure, opts...),
		addSignificantOther:         connect.NewClient[AddSignificantOtherRequest, AddSignificantOtherResponse](httpClient, baseURL+ContactServiceAddSignificantOtherProcedure, opts...),
		updateSignificantOther:      connect.NewClient[UpdateSignificantOtherRequest, UpdateSignificantOtherResponse](httpClient, baseURL+ContactServiceUpdateSignificantOtherProcedure, opts...),
		deleteSignificantOther:      connect.NewClient[DeleteSignificantOtherRequest, DeleteSignificantOtherResponse](httpClient, baseURL+ContactServiceDeleteSignificantOtherProcedure, opts...),
		addNote:                     connect.NewClient[AddNoteRequest, AddNoteResponse](httpClient, baseURL+ContactServiceAddNoteProcedure, opts...),
		updateNote:                  connect.NewClient[UpdateNoteRequest, UpdateNoteResponse](httpClient, baseURL+ContactServiceUpdateNoteProcedure, opts...),
		deleteNote:                  connect.NewClient[DeleteNoteRequest, DeleteNoteResponse](httpClient, baseURL+ContactServiceDeleteNoteProcedure, opts...),
		listEvents:                  connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+ContactServiceListEventsProcedure, opts...),
		addActivity:                 connect.NewClient[AddActivityRequest, AddActivityResponse](httpClient, baseURL+ContactServiceAddActivityProcedure, opts...),
		calculateActivityStatistics: connect.NewClient[CalculateActivityStatisticsRequest, CalculateActivityStatisticsResponse](httpClient, baseURL+ContactServiceCalculateActivityStatisticsProcedure, opts...),
		addReminder:                 connect.NewClient[AddReminderRequest, AddReminderResponse](httpClient, baseURL+ContactServiceAddReminderProcedure, opts...),
		addGift:                     connect.NewClient[AddGiftRequest, AddGiftResponse](httpClient, baseURL+ContactServiceAddGiftProcedure, opts...),
		addTask:                     connect.NewClient[AddTaskRequest, AddTaskResponse](httpClient, baseURL+ContactServiceAddTaskProcedure, opts...),
		addDebt:                     connect.NewClient[AddDebtRequest, AddDebtResponse](httpClient, baseURL+ContactServiceAddDebtProcedure, opts...),
		uploadAvatar:                connect.NewClient[UploadAvatarRequest, UploadAvatarResponse](httpClient, baseURL+ContactServiceUploadAvatarProcedure, opts...),
		getAvatar:                   connect.NewClient[GetAvatarRequest, GetAvatarResponse](httpClient, baseURL+ContactServiceGetAvatarProcedure, opts...),
		exportContacts:              connect.NewClient[ExportContactsRequest, ExportContactsResponse](httpClient, baseURL+ContactServiceExportContactsProcedure, opts...),
	}
}

func (c *ContactServiceClient) CreateContact(ctx context.Context, req *connect.Request[CreateContactRequest]) (*connect.Response[CreateContactResponse], error) {
	return c.createContact.CallUnary(ctx, req)
}

func (c *ContactServiceClient) GetContact(ctx context.Context, req *connect.Request[GetContactRequest]) (*connect.Response[GetContactResponse], error) {
	return c.getContact.CallUnary(ctx, req)
}

func (c *ContactServiceClient) ListContacts(ctx context.Context, req *connect.Request[ListContactsRequest]) (*connect.Response[ListContactsResponse], error) {
	return c.listContacts.CallUnary(ctx, req)
}

func (c *ContactServiceClient) DeleteContact(ctx context.Context, req *connect.Request[DeleteContactRequest]) (*connect.Response[DeleteContactResponse], error) {
	return c.deleteContact.CallUnary(ctx, req)
}

func (c *ContactServiceClient) UpdateContactName(ctx context.Context, req *connect.Request[UpdateContactNameRequest]) (*connect.Response[UpdateContactNameResponse], error) {
	return c.updateContactName.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddKid(ctx context.Context, req *connect.Request[AddKidRequest]) (*connect.Response[AddKidResponse], error) {
	return c.addKid.CallUnary(ctx, req)
}

func (c *ContactServiceClient) UpdateKid(ctx context.Context, req *connect.Request[UpdateKidRequest]) (*connect.Response[UpdateKidResponse], error) {
	return c.updateKid.CallUnary(ctx, req)
}

func (c *ContactServiceClient) DeleteKid(ctx context.Context, req *connect.Request[DeleteKidRequest]) (*connect.Response[DeleteKidResponse], error) {
	return c.deleteKid.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddSignificantOther(ctx context.Context, req *connect.Request[AddSignificantOtherRequest]) (*connect.Response[AddSignificantOtherResponse], error) {
	return c.addSignificantOther.CallUnary(ctx, req)
}

func (c *ContactServiceClient) UpdateSignificantOther(ctx context.Context, req *connect.Request[UpdateSignificantOtherRequest]) (*connect.Response[UpdateSignificantOtherResponse], error) {
	return c.updateSignificantOther.CallUnary(ctx, req)
}

func (c *ContactServiceClient) DeleteSignificantOther(ctx context.Context, req *connect.Request[DeleteSignificantOtherRequest]) (*connect.Response[DeleteSignificantOtherResponse], error) {
	return c.deleteSignificantOther.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddNote(ctx context.Context, req *connect.Request[AddNoteRequest]) (*connect.Response[AddNoteResponse], error) {
	return c.addNote.CallUnary(ctx, req)
}

func (c *ContactServiceClient) UpdateNote(ctx context.Context, req *connect.Request[UpdateNoteRequest]) (*connect.Response[UpdateNoteResponse], error) {
	return c.updateNote.CallUnary(ctx, req)
}

func (c *ContactServiceClient) DeleteNote(ctx context.Context, req *connect.Request[DeleteNoteRequest]) (*connect.Response[DeleteNoteResponse], error) {
	return c.deleteNote.CallUnary(ctx, req)
}

func (c *ContactServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddActivity(ctx context.Context, req *connect.Request[AddActivityRequest]) (*connect.Response[AddActivityResponse], error) {
	return c.addActivity.CallUnary(ctx, req)
}

func (c *ContactServiceClient) CalculateActivityStatistics(ctx context.Context, req *connect.Request[CalculateActivityStatisticsRequest]) (*connect.Response[CalculateActivityStatisticsResponse], error) {
	return c.calculateActivityStatistics.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddReminder(ctx context.Context, req *connect.Request[AddReminderRequest]) (*connect.Response[AddReminderResponse], error) {
	return c.addReminder.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddGift(ctx context.Context, req *connect.Request[AddGiftRequest]) (*connect.Response[AddGiftResponse], error) {
	return c.addGift.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddTask(ctx context.Context, req *connect.Request[AddTaskRequest]) (*connect.Response[AddTaskResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *ContactServiceClient) AddDebt(ctx context.Context, req *connect.Request[AddDebtRequest]) (*connect.Response[AddDebtResponse], error) {
	return c.addDebt.CallUnary(ctx, req)
}

func (c *ContactServiceClient) UploadAvatar(ctx context.Context, req *connect.Request[UploadAvatarRequest]) (*connect.Response[UploadAvatarResponse], error) {
	return c.uploadAvatar.CallUnary(ctx, req)
}

func (c *ContactServiceClient) GetAvatar(ctx context.Context, req *connect.Request[GetAvatarRequest]) (*connect.Response[GetAvatarResponse], error) {
	return c.getAvatar.CallUnary(ctx, req)
}

func (c *ContactServiceClient) ExportContacts(ctx context.Context, req *connect.Request[ExportContactsRequest]) (*connect.Response[ExportContactsResponse], error) {
	return c.exportContacts.CallUnary(ctx, req)
}
