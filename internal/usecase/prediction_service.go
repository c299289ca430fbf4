package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-analytics/internal/domain/cricket"
	"github.com/riskibarqy/cricket-analytics/internal/domain/prediction"
	"github.com/riskibarqy/cricket-analytics/internal/domain/runrate"
	"github.com/riskibarqy/cricket-analytics/internal/platform/logging"
)

// PredictionInput is the predictor form: the chase state of a live match.
// Overs are checked against the configured format by runrate.
type PredictionInput struct {
	BattingTeam    string `validate:"required,max=64"`
	BowlingTeam    string `validate:"required,max=64"`
	City           string `validate:"required,max=64,known_city"`
	Target         int    `validate:"gt=0"`
	CurrentScore   int    `validate:"gte=0,ltfield=Target"`
	OversCompleted float64
	WicketsLost    int `validate:"gte=0,lte=10"`
}

const (
	tagKnownCity     = "known_city"
	tagTeamsDistinct = "teams_distinct"
)

func (in PredictionInput) Snapshot() runrate.Snapshot {
	return runrate.Snapshot{
		Target:         in.Target,
		CurrentScore:   in.CurrentScore,
		OversCompleted: in.OversCompleted,
		WicketsLost:    in.WicketsLost,
	}
}

type PredictionResult struct {
	Format     runrate.Format
	Metrics    runrate.Metrics
	Prediction prediction.Result
}

// PredictionService derives run-rate projections and asks the model backend
// for win probabilities.
type PredictionService struct {
	backend  prediction.Backend
	catalog  cricket.Catalog
	format   runrate.Format
	validate *validator.Validate
	logger   *logging.Logger
}

func NewPredictionService(backend prediction.Backend, catalog cricket.Catalog, format runrate.Format, logger *logging.Logger) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	if format.OversPerInnings <= 0 {
		format = runrate.T20
	}
	s := &PredictionService{
		backend: backend,
		catalog: catalog,
		format:  format,
		logger:  logger,
	}
	s.validate = newFormValidator(s.knownCity)
	return s
}

func newFormValidator(knownCity func(string) bool) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The tag name is a constant, so registration cannot fail.
	_ = v.RegisterValidation(tagKnownCity, func(fl validator.FieldLevel) bool {
		return knownCity(fl.Field().String())
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(PredictionInput)
		if in.BattingTeam != "" && strings.EqualFold(in.BattingTeam, in.BowlingTeam) {
			sl.ReportError(in.BowlingTeam, "BowlingTeam", "BowlingTeam", tagTeamsDistinct, "")
		}
	}, PredictionInput{})
	return v
}

func (s *PredictionService) Format() runrate.Format {
	return s.format
}

// DeriveRunRate validates a snapshot against the configured format and derives
// its metrics. No network call is made.
func (s *PredictionService) DeriveRunRate(snapshot runrate.Snapshot) (runrate.Metrics, error) {
	if err := runrate.ValidateSnapshot(snapshot, s.format); err != nil {
		return runrate.Metrics{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return runrate.Derive(snapshot, s.format), nil
}

func (s *PredictionService) Predict(ctx context.Context, in PredictionInput) (_ PredictionResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Predict",
		attribute.String("prediction.format", s.format.Name),
	)
	defer func() { endUsecaseSpan(span, err) }()

	in.BattingTeam = strings.TrimSpace(in.BattingTeam)
	in.BowlingTeam = strings.TrimSpace(in.BowlingTeam)
	in.City = strings.TrimSpace(in.City)

	if err := s.validateForm(in); err != nil {
		return PredictionResult{}, err
	}

	metrics, err := s.DeriveRunRate(in.Snapshot())
	if err != nil {
		return PredictionResult{}, err
	}

	result, err := s.backend.Predict(ctx, prediction.Request{
		BattingTeam: in.BattingTeam,
		BowlingTeam: in.BowlingTeam,
		City:        in.City,
		RunsLeft:    metrics.RunsLeft,
		BallsLeft:   metrics.BallsLeft,
		Wickets:     in.WicketsLost,
		Target:      in.Target,
		CRR:         metrics.CurrentRunRate,
		RRR:         metrics.RequiredRunRate,
	})
	if err != nil {
		return PredictionResult{}, fmt.Errorf("predict batting=%s bowling=%s: %w", in.BattingTeam, in.BowlingTeam, err)
	}

	s.logger.InfoContext(ctx, "prediction served",
		"batting_team", in.BattingTeam,
		"bowling_team", in.BowlingTeam,
		"runs_left", metrics.RunsLeft,
		"balls_left", metrics.BallsLeft,
		"batting_probability", result.BattingTeamWinProbability,
	)

	return PredictionResult{Format: s.format, Metrics: metrics, Prediction: result}, nil
}

func (s *PredictionService) validateForm(in PredictionInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case tagTeamsDistinct:
		return fmt.Errorf("%w: %v", ErrInvalidInput, cricket.ErrTeamsNotDistinct)
	case tagKnownCity:
		return fmt.Errorf("%w: unknown city %q", ErrInvalidInput, fe.Value())
	case "ltfield":
		return fmt.Errorf("%w: current score %v must be below target %d", ErrInvalidInput, fe.Value(), in.Target)
	default:
		return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, fe.Field(), fe.ActualTag())
	}
}

func (s *PredictionService) knownCity(city string) bool {
	for _, c := range s.catalog.Cities() {
		if strings.EqualFold(c, city) {
			return true
		}
	}
	return false
}

// ChatService forwards natural-language questions to the model backend's
// query endpoint.
type ChatService struct {
	backend prediction.Backend
}

func NewChatService(backend prediction.Backend) *ChatService {
	return &ChatService{backend: backend}
}

func (s *ChatService) Ask(ctx context.Context, query string) (_ string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChatService.Ask")
	defer func() { endUsecaseSpan(span, err) }()

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	answer, err := s.backend.Query(ctx, query)
	if err != nil {
		return "", fmt.Errorf("chat query: %w", err)
	}
	return answer, nil
}
