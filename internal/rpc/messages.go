package rpc

import (
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Account is the public view of an account.
type Account struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	DisplayName string                 `json:"displayName"`
	CreatedAt   *timestamppb.Timestamp `json:"createdAt,omitempty"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}

// Birthdate is a birthdate as entered: approximation "exact" with Date,
// "approximate" with Age, or "unknown".
type Birthdate struct {
	Approximation string `json:"approximation,omitempty"`
	Age           int    `json:"age,omitempty"`
	Date          string `json:"date,omitempty"`
}

// Contact is the read view of a contact, derived fields included.
type Contact struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	CompleteName string `json:"completeName"`
	Initials     string `json:"initials"`
	Gender       string `json:"gender,omitempty"`

	Birthdate              string `json:"birthdate,omitempty"`
	IsBirthdateApproximate bool   `json:"isBirthdateApproximate"`
	Age                    *int   `json:"age,omitempty"`

	Address         string `json:"address,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	FacebookURL     string `json:"facebookUrl,omitempty"`
	TwitterURL      string `json:"twitterUrl,omitempty"`
	LinkedInURL     string `json:"linkedinUrl,omitempty"`
	FoodPreferences string `json:"foodPreferences,omitempty"`

	AvatarColor string `json:"avatarColor"`
	AvatarURL   string `json:"avatarUrl,omitempty"`

	NumberOfKids  int  `json:"numberOfKids"`
	NumberOfNotes int  `json:"numberOfNotes"`
	HasKids       bool `json:"hasKids"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// ContactInput carries the editable fields of a contact.
type ContactInput struct {
	FirstName  string    `json:"firstName"`
	MiddleName *string   `json:"middleName,omitempty"`
	LastName   *string   `json:"lastName,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Birthdate  Birthdate `json:"birthdate"`

	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Country    *string `json:"country,omitempty"`

	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	FacebookURL     *string `json:"facebookUrl,omitempty"`
	TwitterURL      *string `json:"twitterUrl,omitempty"`
	LinkedInURL     *string `json:"linkedinUrl,omitempty"`
	FoodPreferences *string `json:"foodPreferences,omitempty"`
}

type Kid struct {
	ID                     string `json:"id"`
	FirstName              string `json:"firstName"`
	Gender                 string `json:"gender,omitempty"`
	Birthdate              string `json:"birthdate,omitempty"`
	IsBirthdateApproximate bool   `json:"isBirthdateApproximate"`
	Age                    *int   `json:"age,omitempty"`
	CreatedAt              int64  `json:"createdAt"`
	UpdatedAt              int64  `json:"updatedAt"`
}

type KidInput struct {
	FirstName string    `json:"firstName"`
	Gender    string    `json:"gender,omitempty"`
	Birthdate Birthdate `json:"birthdate"`
}

type SignificantOther struct {
	ID                     string `json:"id"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName,omitempty"`
	CompleteName           string `json:"completeName"`
	Gender                 string `json:"gender,omitempty"`
	Status                 string `json:"status"`
	Birthdate              string `json:"birthdate,omitempty"`
	IsBirthdateApproximate bool   `json:"isBirthdateApproximate"`
	Age                    *int   `json:"age,omitempty"`
	CreatedAt              int64  `json:"createdAt"`
	UpdatedAt              int64  `json:"updatedAt"`
}

type SignificantOtherInput struct {
	FirstName string    `json:"firstName"`
	LastName  *string   `json:"lastName,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Status    string    `json:"status,omitempty"`
	Birthdate Birthdate `json:"birthdate"`
}

type Note struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type Event struct {
	ID         string `json:"id"`
	ObjectType string `json:"objectType"`
	ObjectID   string `json:"objectId"`
	Operation  string `json:"operation"`
	CreatedAt  int64  `json:"createdAt"`
}

type Activity struct {
	ID             string `json:"id"`
	Summary        string `json:"summary"`
	Description    string `json:"description,omitempty"`
	DateItHappened string `json:"dateItHappened"`
	CreatedAt      int64  `json:"createdAt"`
}

type ActivityStatistic struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type Reminder struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	NextExpectedDate string `json:"nextExpectedDate"`
	FrequencyType    string `json:"frequencyType"`
	FrequencyNumber  int    `json:"frequencyNumber"`
}

type Gift struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Comment        string          `json:"comment,omitempty"`
	URL            string          `json:"url,omitempty"`
	Value          decimal.Decimal `json:"value"`
	IsAnIdea       bool            `json:"isAnIdea"`
	HasBeenOffered bool            `json:"hasBeenOffered"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

type Debt struct {
	ID     string          `json:"id"`
	InDebt bool            `json:"inDebt"`
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

// Profile is everything shown on a contact's page.
type Profile struct {
	Contact                 *Contact             `json:"contact"`
	GravatarURL             string               `json:"gravatarUrl,omitempty"`
	Kids                    []*Kid               `json:"kids"`
	SignificantOthers       []*SignificantOther  `json:"significantOthers"`
	CurrentSignificantOther *SignificantOther    `json:"currentSignificantOther,omitempty"`
	Notes                   []*Note              `json:"notes"`
	Activities              []*Activity          `json:"activities"`
	Statistics              []*ActivityStatistic `json:"statistics"`
	Reminders               []*Reminder          `json:"reminders"`
	GiftIdeas               []*Gift              `json:"giftIdeas"`
	GiftsOffered            []*Gift              `json:"giftsOffered"`
	TasksInProgress         []*Task              `json:"tasksInProgress"`
	CompletedTasks          []*Task              `json:"completedTasks"`
	DebtsInProgress         []*Debt              `json:"debtsInProgress"`
	OutstandingDebt         decimal.Decimal      `json:"outstandingDebt"`
}

type CreateContactRequest struct {
	Contact ContactInput `json:"contact"`
}

type CreateContactResponse struct {
	Contact *Contact `json:"contact"`
}

type GetContactRequest struct {
	ContactID string `json:"contactId"`
}

type GetContactResponse struct {
	Profile *Profile `json:"profile"`
}

type ListContactsRequest struct{}

type ListContactsResponse struct {
	Contacts []*Contact `json:"contacts"`
}

type DeleteContactRequest struct {
	ContactID string `json:"contactId"`
}

type DeleteContactResponse struct{}

// UpdateContactNameRequest renames a contact. Absent middle or last names
// are left unchanged.
type UpdateContactNameRequest struct {
	ContactID  string  `json:"contactId"`
	FirstName  string  `json:"firstName"`
	MiddleName *string `json:"middleName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
}

type UpdateContactNameResponse struct {
	Updated bool     `json:"updated"`
	Contact *Contact `json:"contact"`
}

type AddKidRequest struct {
	ContactID string   `json:"contactId"`
	Kid       KidInput `json:"kid"`
}

type AddKidResponse struct {
	Kid          *Kid `json:"kid"`
	NumberOfKids int  `json:"numberOfKids"`
}

type UpdateKidRequest struct {
	ContactID string   `json:"contactId"`
	KidID     string   `json:"kidId"`
	Kid       KidInput `json:"kid"`
}

type UpdateKidResponse struct {
	Kid *Kid `json:"kid"`
}

type DeleteKidRequest struct {
	ContactID string `json:"contactId"`
	KidID     string `json:"kidId"`
}

type DeleteKidResponse struct {
	NumberOfKids int `json:"numberOfKids"`
}

type AddSignificantOtherRequest struct {
	ContactID        string                `json:"contactId"`
	SignificantOther SignificantOtherInput `json:"significantOther"`
}

type AddSignificantOtherResponse struct {
	SignificantOther *SignificantOther `json:"significantOther"`
}

type UpdateSignificantOtherRequest struct {
	ContactID          string                `json:"contactId"`
	SignificantOtherID string                `json:"significantOtherId"`
	SignificantOther   SignificantOtherInput `json:"significantOther"`
}

type UpdateSignificantOtherResponse struct {
	SignificantOther *SignificantOther `json:"significantOther"`
}

type DeleteSignificantOtherRequest struct {
	ContactID          string `json:"contactId"`
	SignificantOtherID string `json:"significantOtherId"`
}

type DeleteSignificantOtherResponse struct{}

type AddNoteRequest struct {
	ContactID string `json:"contactId"`
	Body      string `json:"body"`
}

type AddNoteResponse struct {
	Note          *Note `json:"note"`
	NumberOfNotes int   `json:"numberOfNotes"`
}

type UpdateNoteRequest struct {
	ContactID string `json:"contactId"`
	NoteID    string `json:"noteId"`
	Body      string `json:"body"`
}

type UpdateNoteResponse struct {
	Note *Note `json:"note"`
}

type DeleteNoteRequest struct {
	ContactID string `json:"contactId"`
	NoteID    string `json:"noteId"`
}

type DeleteNoteResponse struct {
	NumberOfNotes int `json:"numberOfNotes"`
}

type ListEventsRequest struct {
	ContactID string `json:"contactId"`
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

type AddActivityRequest struct {
	ContactID      string  `json:"contactId"`
	Summary        string  `json:"summary"`
	Description    *string `json:"description,omitempty"`
	DateItHappened string  `json:"dateItHappened"`
}

type AddActivityResponse struct {
	Activity *Activity `json:"activity"`
}

type CalculateActivityStatisticsRequest struct {
	ContactID string `json:"contactId"`
}

type CalculateActivityStatisticsResponse struct {
	Statistics []*ActivityStatistic `json:"statistics"`
}

type AddReminderRequest struct {
	ContactID        string  `json:"contactId"`
	Title            string  `json:"title"`
	Description      *string `json:"description,omitempty"`
	NextExpectedDate string  `json:"nextExpectedDate"`
	FrequencyType    string  `json:"frequencyType,omitempty"`
	FrequencyNumber  int     `json:"frequencyNumber,omitempty"`
}

type AddReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
}

type AddGiftRequest struct {
	ContactID      string          `json:"contactId"`
	Name           string          `json:"name"`
	Comment        *string         `json:"comment,omitempty"`
	URL            *string         `json:"url,omitempty"`
	Value          decimal.Decimal `json:"value"`
	IsAnIdea       bool            `json:"isAnIdea"`
	HasBeenOffered bool            `json:"hasBeenOffered"`
}

type AddGiftResponse struct {
	Gift *Gift `json:"gift"`
}

type AddTaskRequest struct {
	ContactID   string  `json:"contactId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
}

type AddTaskResponse struct {
	Task *Task `json:"task"`
}

type AddDebtRequest struct {
	ContactID string          `json:"contactId"`
	InDebt    bool            `json:"inDebt"`
	Status    string          `json:"status,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    *string         `json:"reason,omitempty"`
}

type AddDebtResponse struct {
	Debt *Debt `json:"debt"`
}

// UploadAvatarRequest carries a JPEG or PNG image, base64 encoded on the wire.
type UploadAvatarRequest struct {
	ContactID string `json:"contactId"`
	Image     []byte `json:"image"`
}

type UploadAvatarResponse struct {
	Contact *Contact `json:"contact"`
}

type GetAvatarRequest struct {
	ContactID string `json:"contactId"`
	Size      int    `json:"size,omitempty"`
}

// GetAvatarResponse names where the picture comes from: "upload",
// "gravatar", or "color" when there is none and Color should be shown.
type GetAvatarResponse struct {
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
	Color  string `json:"color"`
}

type ExportContactsRequest struct{}

type ExportContactsResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"data"`
}
