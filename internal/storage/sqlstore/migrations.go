package sqlstore

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist and
// is written in the subset of SQL shared by SQLite and PostgreSQL: booleans
// are INTEGER 0/1, calendar dates are YYYY-MM-DD TEXT, money is TEXT.
// IMPORTANT: accounts and contacts must be created before the tables that
// reference them.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    first_name TEXT NOT NULL,
    middle_name TEXT,
    last_name TEXT,
    gender TEXT NOT NULL DEFAULT '',
    birthdate TEXT,
    birthdate_approximation TEXT NOT NULL DEFAULT 'unknown',
    street TEXT,
    city TEXT,
    province TEXT,
    postal_code TEXT,
    country TEXT,
    email TEXT,
    phone_number TEXT,
    facebook_url TEXT,
    twitter_url TEXT,
    linkedin_url TEXT,
    food_preferences TEXT,
    avatar_color TEXT NOT NULL DEFAULT '',
    avatar_file_name TEXT,
    number_of_kids INTEGER NOT NULL DEFAULT 0 CHECK (number_of_kids >= 0),
    number_of_notes INTEGER NOT NULL DEFAULT 0 CHECK (number_of_notes >= 0),
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS kids (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    first_name TEXT NOT NULL,
    gender TEXT NOT NULL DEFAULT '',
    birthdate TEXT,
    birthdate_approximation TEXT NOT NULL DEFAULT 'unknown',
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS significant_others (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT,
    gender TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'active',
    birthdate TEXT,
    birthdate_approximation TEXT NOT NULL DEFAULT 'unknown',
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    body TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    object_type TEXT NOT NULL,
    object_id TEXT NOT NULL,
    nature_of_operation TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    seq BIGINT NOT NULL DEFAULT 0,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS activities (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    summary TEXT NOT NULL,
    description TEXT,
    date_it_happened TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS activity_statistics (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    year INTEGER NOT NULL,
    count INTEGER NOT NULL,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS reminders (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    next_expected_date TEXT NOT NULL,
    frequency_type TEXT NOT NULL,
    frequency_number INTEGER NOT NULL DEFAULT 1,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS gifts (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    name TEXT NOT NULL,
    comment TEXT,
    url TEXT,
    value TEXT NOT NULL DEFAULT '0',
    is_an_idea INTEGER NOT NULL DEFAULT 0,
    has_been_offered INTEGER NOT NULL DEFAULT 0,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    status TEXT NOT NULL DEFAULT 'inprogress',
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS debts (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    contact_id TEXT NOT NULL,
    in_debt INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'inprogress',
    amount TEXT NOT NULL,
    reason TEXT,
    created_at BIGINT NOT NULL,
    FOREIGN KEY (contact_id) REFERENCES contacts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_contacts_account_id ON contacts(account_id);
CREATE INDEX IF NOT EXISTS idx_kids_contact_id ON kids(contact_id);
CREATE INDEX IF NOT EXISTS idx_significant_others_contact_id ON significant_others(contact_id);
CREATE INDEX IF NOT EXISTS idx_notes_contact_id ON notes(contact_id);
CREATE INDEX IF NOT EXISTS idx_events_contact_id ON events(contact_id);
CREATE INDEX IF NOT EXISTS idx_events_subject ON events(object_type, object_id);
CREATE INDEX IF NOT EXISTS idx_activities_contact_id ON activities(contact_id);
CREATE INDEX IF NOT EXISTS idx_activity_statistics_contact_id ON activity_statistics(contact_id);
CREATE INDEX IF NOT EXISTS idx_reminders_contact_id ON reminders(contact_id);
CREATE INDEX IF NOT EXISTS idx_gifts_contact_id ON gifts(contact_id);
CREATE INDEX IF NOT EXISTS idx_tasks_contact_id ON tasks(contact_id);
CREATE INDEX IF NOT EXISTS idx_debts_contact_id ON debts(contact_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
