package season

import "context"

// Repository describes read access to the loaded season table.
// Every listing keeps first-seen dataset order.
type Repository interface {
	List(ctx context.Context) ([]Row, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Row, error)
	ListByTeam(ctx context.Context, teamAbbreviation string) ([]Row, error)
	ListByPlayerName(ctx context.Context, playerName string) ([]Row, error)
	PlayerNames(ctx context.Context) ([]string, error)
	Teams(ctx context.Context) ([]string, error)
	Seasons(ctx context.Context) ([]string, error)
	SeasonsByPlayer(ctx context.Context, playerName string) ([]string, error)
}
