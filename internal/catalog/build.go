package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dearchive/internal/archive"
	"dearchive/internal/collect"
	"dearchive/internal/logging"
	"dearchive/internal/store"
	"dearchive/internal/textutil"
)

// BuildResult describes one completed catalog build.
type BuildResult struct {
	ID         string        `json:"id"`
	Root       string        `json:"root"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Groups     int           `json:"groups"`
	Events     int           `json:"events"`
	Circles    int           `json:"circles"`
	Duration   time.Duration `json:"-"`
}

type loadedStore struct {
	folder string
	group  archive.EventGroup
}

// DiscoverStores returns root when it is a store, otherwise every direct
// sub-directory of root that is one, in name order.
func DiscoverStores(root string) ([]string, error) {
	if store.IsStore(root) {
		return []string{root}, nil
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("catalog: list archive root: %w", err)
	}
	var folders []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := filepath.Join(root, entry.Name())
		if store.IsStore(folder) {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

// Build loads every store under root with at most workers loads in flight
// and replaces the catalog contents with them. Any store failing to load
// aborts the build and leaves the previous contents in place.
func (c *Catalog) Build(ctx context.Context, root string, workers int) (BuildResult, error) {
	started := time.Now().UTC()
	folders, err := DiscoverStores(root)
	if err != nil {
		return BuildResult{}, err
	}

	builders := make([]collect.Builder[loadedStore], 0, len(folders))
	for _, folder := range folders {
		builders = append(builders, func(ctx context.Context) (loadedStore, error) {
			group, err := store.Load(folder, store.WithLogger(c.logger))
			if err != nil {
				return loadedStore{}, fmt.Errorf("catalog: load %s: %w", folder, err)
			}
			return loadedStore{folder: folder, group: group}, nil
		})
	}
	loaded, err := collect.Gather(ctx, workers, builders)
	if err != nil {
		return BuildResult{}, err
	}

	result := BuildResult{
		ID:        uuid.NewString(),
		Root:      root,
		StartedAt: started,
		Groups:    len(loaded),
	}
	for _, ls := range loaded {
		result.Events += len(ls.group.Events)
		for _, ev := range ls.group.Events {
			result.Circles += len(ev.Circles)
		}
	}

	err = retryOnBusy(ctx, func() error {
		result.FinishedAt = time.Now().UTC()
		return c.replace(ctx, result, loaded)
	})
	if err != nil {
		return BuildResult{}, err
	}
	result.Duration = result.FinishedAt.Sub(started)

	c.logger.Info("catalog built",
		logging.String("build_id", result.ID),
		logging.String("root", root),
		logging.Int("groups", result.Groups),
		logging.Int("events", result.Events),
		logging.Int("circles", result.Circles),
		logging.Duration("elapsed", result.Duration),
	)
	return result, nil
}

func (c *Catalog) replace(ctx context.Context, result BuildResult, loaded []loadedStore) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin build tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM circles", "DELETE FROM events", "DELETE FROM event_groups", "DELETE FROM builds"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("catalog: clear: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO builds (id, root, started_at, finished_at, group_count, event_count, circle_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.Root, formatTime(result.StartedAt), formatTime(result.FinishedAt),
		result.Groups, result.Events, result.Circles,
	); err != nil {
		return fmt.Errorf("catalog: record build: %w", err)
	}

	for _, ls := range loaded {
		if err := insertGroup(ctx, tx, result.ID, ls); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit build: %w", err)
	}
	return nil
}

func insertGroup(ctx context.Context, tx *sql.Tx, buildID string, ls loadedStore) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO event_groups (build_id, alias, all_aliases, folder) VALUES (?, ?, ?, ?)`,
		buildID, ls.group.CanonicalAlias(), encodeStrings(ls.group.Aliases), ls.folder,
	)
	if err != nil {
		return fmt.Errorf("catalog: insert group %q: %w", ls.group.CanonicalAlias(), err)
	}
	groupID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("catalog: group id: %w", err)
	}

	for pos, ev := range ls.group.Events {
		var begin, end sql.NullString
		cancelled := false
		if dates, err := archive.ParseDates(ev.Dates); err == nil {
			begin = sql.NullString{String: dates.Begin.Format(time.DateOnly), Valid: true}
			end = sql.NullString{String: dates.End.Format(time.DateOnly), Valid: true}
			cancelled = dates.Cancelled
		}
		var circleCount sql.NullInt64
		if n, ok := ev.CircleCount(); ok {
			circleCount = sql.NullInt64{Int64: int64(n), Valid: true}
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO events (group_id, alias, position, dates, begin_date, end_date, cancelled, circle_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			groupID, ev.CanonicalAlias(), pos, ev.Dates, begin, end, cancelled, circleCount,
		)
		if err != nil {
			return fmt.Errorf("catalog: insert event %q: %w", ev.CanonicalAlias(), err)
		}
		eventID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("catalog: event id: %w", err)
		}

		for cpos, circle := range ev.Circles {
			if len(circle.Aliases) == 0 {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO circles (event_id, position, alias, all_aliases, pen_names, booth, search_key)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				eventID, cpos, circle.Aliases[0], encodeStrings(circle.Aliases), encodeStrings(circle.PenNames),
				nullString(circle.Position), searchKey(circle),
			); err != nil {
				return fmt.Errorf("catalog: insert circle %q: %w", circle.Aliases[0], err)
			}
		}
	}
	return nil
}

// searchKey joins every name of a circle in folded form, one per line.
func searchKey(circle archive.Circle) string {
	var key []byte
	for _, names := range [][]string{circle.Aliases, circle.PenNames} {
		for _, name := range names {
			if name == "" {
				continue
			}
			key = append(key, textutil.AliasKey(name)...)
			key = append(key, '\n')
		}
	}
	return string(key)
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStrings(raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("catalog: decode name list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// LastBuild returns the most recent build, or false when the catalog has
// never been built.
func (c *Catalog) LastBuild(ctx context.Context) (BuildResult, bool, error) {
	var (
		result             BuildResult
		started, finished string
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT id, root, started_at, finished_at, group_count, event_count, circle_count
		 FROM builds ORDER BY finished_at DESC LIMIT 1`,
	).Scan(&result.ID, &result.Root, &started, &finished, &result.Groups, &result.Events, &result.Circles)
	if errors.Is(err, sql.ErrNoRows) {
		return BuildResult{}, false, nil
	}
	if err != nil {
		return BuildResult{}, false, fmt.Errorf("catalog: read last build: %w", err)
	}
	if result.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return BuildResult{}, false, fmt.Errorf("catalog: parse build start: %w", err)
	}
	if result.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return BuildResult{}, false, fmt.Errorf("catalog: parse build finish: %w", err)
	}
	result.Duration = result.FinishedAt.Sub(result.StartedAt)
	return result, true, nil
}
