package models

type NoteID string

// Note is free text written about a contact.
type Note struct {
	ID        NoteID
	AccountID AccountID
	ContactID ContactID

	Body string

	CreatedAt int64
	UpdatedAt int64
}
