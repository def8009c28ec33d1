// Package analytics records privacy-conscious visitor metrics and
// outbound project link clicks.
package analytics

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// timeLayout is how timestamps are stored so they compare as text.
const timeLayout = time.DateTime

// untrackedPrefixes are never recorded as page visits.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/api/",
	"/favicon",
	"/privacy",
}

// Visitor is one recorded page visit. The client IP is only kept hashed.
type Visitor struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Tracker writes and reads site metrics.
type Tracker struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	now       func() time.Time
}

// NewTracker returns a tracker. salt is mixed into IP hashes and should
// be random per process; retention bounds how long visits are kept.
func NewTracker(db *sql.DB, salt string, retention time.Duration) *Tracker {
	return &Tracker{db: db, salt: salt, retention: retention, now: time.Now}
}

// HashIP returns a truncated salted hash of ip, stable for the process.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack reports whether a request for path is recorded.
// Requests carrying "DNT: 1" never are.
func ShouldTrack(path, dnt string) bool {
	if dnt == "1" {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// RecordVisit stores a page visit.
func (t *Tracker) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, t.HashIP(ip), userAgent, path, t.stamp(t.now()))
	if err != nil {
		return errors.Wrap(err, "recording visitor")
	}
	return nil
}

// RecordClick counts one outbound click on the project's link.
func (t *Tracker) RecordClick(ctx context.Context, projectID string) error {
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO project_clicks (project_id, clicks, last_clicked)
		VALUES (?, 1, ?)
		ON CONFLICT(project_id) DO UPDATE SET
			clicks = clicks + 1,
			last_clicked = excluded.last_clicked
	`, projectID, t.stamp(t.now()))
	if err != nil {
		return errors.Wrapf(err, "recording click on %s", projectID)
	}
	return nil
}

// Cleanup deletes visits older than the retention window.
func (t *Tracker) Cleanup(ctx context.Context) (int64, error) {
	cutoff := t.stamp(t.now().Add(-t.retention))
	result, err := t.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "cleaning up old visitor data")
	}
	return result.RowsAffected()
}

// RecentVisitors returns up to limit visits, newest first.
func (t *Tracker) RecentVisitors(ctx context.Context, limit int) ([]Visitor, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying visitors")
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var (
			v  Visitor
			ts string
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "scanning visitor")
		}
		if v.Timestamp, err = time.Parse(timeLayout, ts); err != nil {
			return nil, errors.Wrapf(err, "parsing visitor timestamp %q", ts)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (t *Tracker) stamp(at time.Time) string {
	return at.UTC().Format(timeLayout)
}
