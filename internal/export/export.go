// Package export dumps fetched issues and worklogs into a local SQLite
// file so search results can be inspected offline with ordinary SQL.
package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soapjira/jirasoap"

	// Import SQLite driver
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS issues (
	key TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	summary TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	project TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT '',
	resolution TEXT NOT NULL DEFAULT '',
	reporter TEXT NOT NULL DEFAULT '',
	assignee TEXT NOT NULL DEFAULT '',
	created DATETIME,
	updated DATETIME,
	duedate DATETIME
);

CREATE TABLE IF NOT EXISTS issue_versions (
	issue_key TEXT NOT NULL REFERENCES issues(key) ON DELETE CASCADE,
	kind TEXT NOT NULL CHECK (kind IN ('affects', 'fix')),
	version_id TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (issue_key, kind, version_id)
);

CREATE TABLE IF NOT EXISTS worklogs (
	id TEXT PRIMARY KEY,
	issue_key TEXT NOT NULL,
	author TEXT NOT NULL DEFAULT '',
	comment TEXT NOT NULL DEFAULT '',
	start_date DATETIME,
	time_spent TEXT NOT NULL DEFAULT '',
	time_spent_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_worklogs_issue ON worklogs(issue_key);
`

// Store is a SQLite-backed dump of server records.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens an export database at path.
func Open(path string) (*Store, error) {
	if !strings.Contains(path, ":memory:") {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// _pragma options follow modernc.org/sqlite's conn string syntax;
	// busy_timeout avoids immediate failures when the file is inspected
	// concurrently.
	connStr := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(30000)&_time_format=sqlite"
	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveIssues upserts the given issues and replaces their version rows.
func (s *Store) SaveIssues(issues []jirasoap.Issue) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, issue := range issues {
		_, err := tx.Exec(`
			INSERT INTO issues (key, id, summary, description, project, type, status, priority, resolution, reporter, assignee, created, updated, duedate)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				id = excluded.id,
				summary = excluded.summary,
				description = excluded.description,
				project = excluded.project,
				type = excluded.type,
				status = excluded.status,
				priority = excluded.priority,
				resolution = excluded.resolution,
				reporter = excluded.reporter,
				assignee = excluded.assignee,
				created = excluded.created,
				updated = excluded.updated,
				duedate = excluded.duedate`,
			issue.Key, issue.ID, issue.Summary, issue.Description, issue.Project,
			issue.Type, issue.Status, issue.Priority, issue.Resolution,
			issue.Reporter, issue.Assignee,
			nullTime(issue.Created), nullTime(issue.Updated), nullTime(issue.DueDate))
		if err != nil {
			return fmt.Errorf("failed to save issue %s: %w", issue.Key, err)
		}

		if _, err := tx.Exec(`DELETE FROM issue_versions WHERE issue_key = ?`, issue.Key); err != nil {
			return fmt.Errorf("failed to clear versions for %s: %w", issue.Key, err)
		}
		if err := insertVersions(tx, issue.Key, "affects", issue.AffectsVersions); err != nil {
			return err
		}
		if err := insertVersions(tx, issue.Key, "fix", issue.FixVersions); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertVersions(tx *sql.Tx, issueKey, kind string, versions []jirasoap.NamedEntity) error {
	for _, version := range versions {
		_, err := tx.Exec(`
			INSERT INTO issue_versions (issue_key, kind, version_id, name)
			VALUES (?, ?, ?, ?)`,
			issueKey, kind, version.ID, version.Name)
		if err != nil {
			return fmt.Errorf("failed to save %s version %s for %s: %w", kind, version.ID, issueKey, err)
		}
	}
	return nil
}

// SaveWorklogs upserts the worklogs of one issue.
func (s *Store) SaveWorklogs(issueKey string, worklogs []jirasoap.Worklog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, worklog := range worklogs {
		_, err := tx.Exec(`
			INSERT INTO worklogs (id, issue_key, author, comment, start_date, time_spent, time_spent_seconds)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				issue_key = excluded.issue_key,
				author = excluded.author,
				comment = excluded.comment,
				start_date = excluded.start_date,
				time_spent = excluded.time_spent,
				time_spent_seconds = excluded.time_spent_seconds`,
			worklog.ID, issueKey, worklog.Author, worklog.Comment,
			nullTime(worklog.StartDate), worklog.TimeSpent, worklog.TimeSpentInSeconds)
		if err != nil {
			return fmt.Errorf("failed to save worklog %s: %w", worklog.ID, err)
		}
	}

	return tx.Commit()
}

// IssueCount returns the number of stored issues.
func (s *Store) IssueCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM issues`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return count, nil
}

// WorklogCount returns the number of stored worklogs.
func (s *Store) WorklogCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM worklogs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count worklogs: %w", err)
	}
	return count, nil
}

func nullTime(t jirasoap.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
