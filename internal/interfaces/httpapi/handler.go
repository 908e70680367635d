package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
	"github.com/bryanfernandez-eng/nba-glass/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	playerService     *usecase.PlayerService
	seasonService     *usecase.SeasonService
	teamService       *usecase.TeamService
	rankingService    *usecase.RankingService
	comparisonService *usecase.ComparisonService
	leaderService     *usecase.LeaderService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	seasonService *usecase.SeasonService,
	teamService *usecase.TeamService,
	rankingService *usecase.RankingService,
	comparisonService *usecase.ComparisonService,
	leaderService *usecase.LeaderService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:     playerService,
		seasonService:     seasonService,
		teamService:       teamService,
		rankingService:    rankingService,
		comparisonService: comparisonService,
		leaderService:     leaderService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure logs a failed engine call at Error when it maps to a 5xx and at
// Warn otherwise.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

// queryInt reads an integer query parameter, returning fallback when absent.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func queryFloat(r *http.Request, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func pathInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

type listPlayersRequest struct {
	Order string `validate:"omitempty,oneof=asc desc"`
}

type searchPlayersRequest struct {
	Query string `validate:"required,min=2"`
}

type seasonYearRequest struct {
	Year int `validate:"gte=1947,lte=2100"`
}

type trendRequest struct {
	PlayerName string `validate:"required"`
	Stat       string `validate:"required"`
}

type rankingRequest struct {
	Stat     string `validate:"required"`
	SeasonID string `validate:"omitempty,len=7"`
	MinGames int    `validate:"gte=0"`
	Limit    int    `validate:"gte=0,lte=1000"`
}

type compareRequest struct {
	Player1 string `validate:"required"`
	Player2 string `validate:"required"`
}

type efficiencyRequest struct {
	MinPPG   float64 `validate:"gte=0"`
	MinGames int     `validate:"gte=0"`
	SeasonID string  `validate:"omitempty,len=7"`
}

type mostImprovedRequest struct {
	Stat     string `validate:"required"`
	Year1    int    `validate:"gte=1947,lte=2100"`
	Year2    int    `validate:"gte=1947,lte=2100,gtfield=Year1"`
	MinGames int    `validate:"gte=0"`
}
