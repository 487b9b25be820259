package store

import (
	"fmt"
	"os"
	"strings"

	"dearchive/internal/logging"
)

// IssueKind names one class of inconsistency found by Verify.
type IssueKind string

const (
	// IssueStaleCircleCount marks an index circle_count that disagrees with the shard.
	IssueStaleCircleCount IssueKind = "stale_circle_count"
	// IssueStaleDates marks index dates that disagree with the shard.
	IssueStaleDates IssueKind = "stale_dates"
	// IssueIndexPosition marks index positions that are not 0..n-1 in key order.
	IssueIndexPosition IssueKind = "index_position"
	// IssueOrphanShard marks a *.json file the index does not list.
	IssueOrphanShard IssueKind = "orphan_shard"
	// IssueLeftoverTemp marks a staging file left by an interrupted save.
	IssueLeftoverTemp IssueKind = "leftover_temp"
)

// Issue is one inconsistency. Verify never repairs anything; saving the
// loaded group again clears every issue except orphans and leftovers.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Alias  string    `json:"alias,omitempty"`
	Detail string    `json:"detail"`
}

// Report summarizes a verified store.
type Report struct {
	Folder  string  `json:"folder"`
	Group   string  `json:"group"`
	Events  int     `json:"events"`
	Circles int     `json:"circles"`
	Issues  []Issue `json:"issues,omitempty"`
}

// OK reports whether no issue was found.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Verify loads the whole store and compares the index hints with the shards
// they summarize. Load errors are returned as errors, not issues.
func Verify(folder string, opts ...Option) (Report, error) {
	o := buildOptions(opts)

	group, err := Load(folder, opts...)
	if err != nil {
		return Report{}, err
	}
	idx, err := LoadIndex(folder)
	if err != nil {
		return Report{}, err
	}

	report := Report{Folder: folder, Group: group.CanonicalAlias(), Events: len(group.Events)}
	byAlias := make(map[string]int, len(group.Events))
	for i, ev := range group.Events {
		byAlias[ev.CanonicalAlias()] = i
		report.Circles += len(ev.Circles)
	}

	for pos, entry := range idx.Events {
		if entry.Index != pos {
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueIndexPosition,
				Alias:  entry.Alias,
				Detail: fmt.Sprintf("index %d at position %d", entry.Index, pos),
			})
		}
		ev := group.Events[byAlias[entry.Alias]]
		if entry.Dates != ev.Dates {
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueStaleDates,
				Alias:  entry.Alias,
				Detail: fmt.Sprintf("index has %q, shard has %q", entry.Dates, ev.Dates),
			})
		}
		want, present := ev.CircleCount()
		switch {
		case present && entry.CircleCount == nil:
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueStaleCircleCount,
				Alias:  entry.Alias,
				Detail: fmt.Sprintf("index has null, shard has %d circles", want),
			})
		case !present && entry.CircleCount != nil:
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueStaleCircleCount,
				Alias:  entry.Alias,
				Detail: fmt.Sprintf("index has %d, shard has no circles", *entry.CircleCount),
			})
		case present && *entry.CircleCount != want:
			report.Issues = append(report.Issues, Issue{
				Kind:   IssueStaleCircleCount,
				Alias:  entry.Alias,
				Detail: fmt.Sprintf("index has %d, shard has %d circles", *entry.CircleCount, want),
			})
		}
	}

	strays, err := strayFiles(folder, byAlias)
	if err != nil {
		return Report{}, err
	}
	report.Issues = append(report.Issues, strays...)

	for _, issue := range report.Issues {
		logging.WarnWithContext(o.logger, "store inconsistency", string(issue.Kind),
			logging.String(logging.FieldStore, folder),
			logging.String(logging.FieldEventAlias, issue.Alias),
			logging.String("detail", issue.Detail),
			logging.String(logging.FieldErrorHint, "run dearchive normalize to rewrite the index"),
			logging.String(logging.FieldImpact, "index hints may mislead metadata-only readers"),
		)
	}
	return report, nil
}

func strayFiles(folder string, indexed map[string]int) ([]Issue, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("store: list folder: %w", err)
	}
	var issues []Issue
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".tmp"):
			issues = append(issues, Issue{Kind: IssueLeftoverTemp, Detail: name})
		case name == IndexFile, !strings.HasSuffix(name, shardExt):
		default:
			alias := strings.TrimSuffix(name, shardExt)
			if _, ok := indexed[alias]; !ok {
				issues = append(issues, Issue{Kind: IssueOrphanShard, Alias: alias, Detail: name})
			}
		}
	}
	return issues, nil
}
