package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dearchive/internal/textutil"
)

// ErrGroupNotFound reports a group alias the catalog does not hold.
var ErrGroupNotFound = errors.New("event group not in catalog")

// CircleHit is one circle appearance at one event.
type CircleHit struct {
	Group      string   `json:"group"`
	Event      string   `json:"event"`
	EventDates string   `json:"event_dates"`
	Alias      string   `json:"alias"`
	Aliases    []string `json:"aliases"`
	PenNames   []string `json:"pen_names,omitempty"`
	Booth      string   `json:"position,omitempty"`
}

// EventRow is one catalogued event. BeginDate and EndDate are empty when the
// dates value does not parse.
type EventRow struct {
	Group       string `json:"group"`
	Alias       string `json:"alias"`
	Position    int    `json:"index"`
	Dates       string `json:"dates"`
	BeginDate   string `json:"begin_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Cancelled   bool   `json:"cancelled,omitempty"`
	CircleCount *int   `json:"circle_count"`
}

// SearchCircles returns circles with an alias or pen name containing term,
// compared case-insensitively after Unicode normalization. Hits are ordered by
// group, event begin date, and booth listing order; at most limit are
// returned when limit > 0.
func (c *Catalog) SearchCircles(ctx context.Context, term string, limit int) ([]CircleHit, error) {
	needle := textutil.AliasKey(strings.TrimSpace(term))
	if needle == "" {
		return nil, errors.New("catalog: empty search term")
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT g.alias, e.alias, e.dates, c.alias, c.all_aliases, c.pen_names, COALESCE(c.booth, '')
		 FROM circles c
		 JOIN events e ON e.id = c.event_id
		 JOIN event_groups g ON g.id = e.group_id
		 WHERE instr(c.search_key, ?) > 0
		 ORDER BY g.alias, COALESCE(e.begin_date, e.dates), e.position, c.position
		 LIMIT ?`,
		needle, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog: search circles: %w", err)
	}
	defer rows.Close()

	var hits []CircleHit
	for rows.Next() {
		var (
			hit               CircleHit
			aliases, penNames string
		)
		if err := rows.Scan(&hit.Group, &hit.Event, &hit.EventDates, &hit.Alias, &aliases, &penNames, &hit.Booth); err != nil {
			return nil, fmt.Errorf("catalog: scan circle: %w", err)
		}
		if hit.Aliases, err = decodeStrings(aliases); err != nil {
			return nil, err
		}
		if hit.PenNames, err = decodeStrings(penNames); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate circles: %w", err)
	}
	return hits, nil
}

// Events lists the events of the group whose canonical alias is group, in
// index order.
func (c *Catalog) Events(ctx context.Context, group string) ([]EventRow, error) {
	var groupID int64
	err := c.db.QueryRowContext(ctx, `SELECT id FROM event_groups WHERE alias = ?`, group).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: find group: %w", err)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT alias, position, dates, COALESCE(begin_date, ''), COALESCE(end_date, ''), cancelled, circle_count
		 FROM events WHERE group_id = ? ORDER BY position`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog: list events: %w", err)
	}
	defer rows.Close()

	var out []EventRow
	for rows.Next() {
		row := EventRow{Group: group}
		var count sql.NullInt64
		if err := rows.Scan(&row.Alias, &row.Position, &row.Dates, &row.BeginDate, &row.EndDate, &row.Cancelled, &count); err != nil {
			return nil, fmt.Errorf("catalog: scan event: %w", err)
		}
		if count.Valid {
			n := int(count.Int64)
			row.CircleCount = &n
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate events: %w", err)
	}
	return out, nil
}
