package analytics

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ProjectClicks is the outbound click count of one project.
type ProjectClicks struct {
	ProjectID   string    `json:"project_id"`
	Clicks      int64     `json:"clicks"`
	LastClicked time.Time `json:"last_clicked"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalClicks      int64           `json:"total_clicks"`
	Messages         int64           `json:"messages"`
	TopProjects      []ProjectClicks `json:"top_projects"`
	RecentVisitors   []Visitor       `json:"recent_visitors"`
}

// Stats gathers the dashboard summary.
func (t *Tracker) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := t.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{t.stamp(today)}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{t.stamp(now.AddDate(0, 0, -7))}},
		{&stats.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM project_clicks`, nil},
		{&stats.Messages, `SELECT COUNT(*) FROM contact_messages`, nil},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, errors.Wrapf(err, "stats query %q", c.query)
		}
	}

	top, err := t.TopProjects(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopProjects = top

	recent, err := t.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// TopProjects returns up to limit projects ordered by clicks.
func (t *Tracker) TopProjects(ctx context.Context, limit int) ([]ProjectClicks, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT project_id, clicks, last_clicked
		FROM project_clicks
		ORDER BY clicks DESC, last_clicked DESC, project_id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "querying project clicks")
	}
	defer rows.Close()

	var out []ProjectClicks
	for rows.Next() {
		var (
			pc ProjectClicks
			ts string
		)
		if err := rows.Scan(&pc.ProjectID, &pc.Clicks, &ts); err != nil {
			return nil, errors.Wrap(err, "scanning project clicks")
		}
		if pc.LastClicked, err = time.Parse(timeLayout, ts); err != nil {
			return nil, errors.Wrapf(err, "parsing click timestamp %q", ts)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}
