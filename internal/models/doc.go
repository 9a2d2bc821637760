// Package models defines the core domain models for Rolodex.
//
// # Aggregate
//
// Contact is the aggregate root. Every other record hangs off a contact and
// carries both its ContactID and the owning AccountID:
//   - Kid, SignificantOther: relatives with a birthdate policy
//   - Note: free text
//   - Activity, ActivityStatistic: things done together, counted per year
//   - Reminder, Gift, Task, Debt: simple owned collections
//   - Event: append-only audit record of mutations on the above
//
// # Conventions
//
//  1. IDs are UUID strings, one named type per entity (KidID, NoteID, ...)
//  2. Audit timestamps are Unix seconds; calendar dates are time.Time at UTC midnight
//  3. Optional text is a *string; accessors report absence with a bool, never ""
//  4. Relationships are IDs, never pointers between models
package models
