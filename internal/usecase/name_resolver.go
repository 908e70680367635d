package usecase

import (
	"context"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/domain/season"
	"github.com/bryanfernandez-eng/nba-glass/internal/platform/cache"
)

// Normalize lower-cases name and drops every space.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// Resolution is the outcome of a player-name lookup. Rows is empty when the
// query matched no player exactly.
type Resolution struct {
	Rows        []season.Row
	Suggestions []string
}

func (r Resolution) Matched() bool {
	return len(r.Rows) > 0
}

// NameResolver matches free-text player queries against the dataset,
// tolerating case and spacing differences.
type NameResolver struct {
	repo season.Repository
	memo *cache.Memo[string, string]
}

// NewNameResolver builds a resolver. A nil memo gets an unbounded one.
func NewNameResolver(repo season.Repository, memo *cache.Memo[string, string]) *NameResolver {
	if memo == nil {
		memo = cache.NewMemo[string, string](0)
	}
	return &NameResolver{repo: repo, memo: memo}
}

func (r *NameResolver) normalize(name string) string {
	return r.memo.GetOrCompute(name, Normalize)
}

func (r *NameResolver) Resolve(ctx context.Context, query string) (Resolution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.NameResolver.Resolve")
	defer span.End()

	want := r.normalize(query)
	names, err := r.repo.PlayerNames(ctx)
	if err != nil {
		return Resolution{}, processingError("list player names", err)
	}

	var matched []string
	for _, name := range names {
		if r.normalize(name) == want {
			matched = append(matched, name)
		}
	}

	switch len(matched) {
	case 0:
	case 1:
		rows, err := r.repo.ListByPlayerName(ctx, matched[0])
		if err != nil {
			return Resolution{}, processingError("list player rows", err)
		}
		return Resolution{Rows: rows}, nil
	default:
		// Distinct spellings of one normalized name keep dataset order.
		wanted := make(map[string]struct{}, len(matched))
		for _, name := range matched {
			wanted[name] = struct{}{}
		}
		all, err := r.repo.List(ctx)
		if err != nil {
			return Resolution{}, processingError("list rows", err)
		}
		rows := make([]season.Row, 0)
		for _, row := range all {
			if _, ok := wanted[row.PlayerName]; ok {
				rows = append(rows, row)
			}
		}
		return Resolution{Rows: rows}, nil
	}

	var suggestions []string
	for _, name := range names {
		if strings.Contains(r.normalize(name), want) {
			suggestions = append(suggestions, name)
		}
	}
	return Resolution{Suggestions: suggestions}, nil
}

// rowsFor resolves query or fails with a Player NotFoundError carrying at
// most five suggestions.
func (r *NameResolver) rowsFor(ctx context.Context, query string) ([]season.Row, error) {
	res, err := r.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	if !res.Matched() {
		return nil, res.notFound(query)
	}
	return res.Rows, nil
}

// notFound reports an unmatched resolution under the caller's own query.
func (r Resolution) notFound(query string) *NotFoundError {
	if len(r.Suggestions) > 0 {
		return notFoundWithHint(resourcePlayer, query, HintDidYouMean, r.Suggestions, maxSuggestions)
	}
	return notFound(resourcePlayer, query)
}
