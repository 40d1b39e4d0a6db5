package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"jild/config"
	deliverycontext "jild/internal/delivery/context"
	"jild/internal/domain/constants"
	"jild/internal/domain/entity"
	domainerrors "jild/internal/domain/errors"
	"jild/internal/domain/recommendation"
	"jild/internal/domain/repository"
	"jild/internal/domain/service"
	"jild/internal/domain/wizard"
	"jild/internal/infra/cache"
	"jild/internal/infra/metrics"
	"jild/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wizardSession is the live wizard of one user.
type wizardSession struct {
	mu     sync.Mutex // guards step and draft
	saving sync.Mutex // held by the single in-flight step change
	step   wizard.Step
	draft  wizard.Draft
}

func (s *wizardSession) snapshot() (wizard.Step, wizard.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.step, s.draft.Clone()
}

type questionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepository
	analysisRepo      repository.SkinAnalysisRepository
	publisher         service.EventPublisher
	sessions          *cache.TTLCache[uuid.UUID, *wizardSession]
	metrics           *metrics.Metrics
	now               func() time.Time
	logger            *slog.Logger
}

// QuestionnaireServiceParams holds dependencies for QuestionnaireService, injected by Fx.
type QuestionnaireServiceParams struct {
	fx.In

	QuestionnaireRepo repository.QuestionnaireRepository
	AnalysisRepo      repository.SkinAnalysisRepository
	Publisher         service.EventPublisher
	Metrics           *metrics.Metrics
	Config            *config.Config
	Logger            *slog.Logger
}

// NewQuestionnaireService is the constructor for questionnaireService.
func NewQuestionnaireService(params QuestionnaireServiceParams) (usecase.QuestionnaireUsecase, error) {
	sessions, err := cache.NewTTLCache[uuid.UUID, *wizardSession](params.Config.Wizard)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create wizard session cache")
	}

	return &questionnaireService{
		questionnaireRepo: params.QuestionnaireRepo,
		analysisRepo:      params.AnalysisRepo,
		publisher:         params.Publisher,
		sessions:          sessions,
		metrics:           params.Metrics,
		now:               time.Now,
		logger:            params.Logger,
	}, nil
}

func (srv *questionnaireService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// session returns the cached wizard of userID, rehydrating it from the
// primary database on a miss.
func (srv *questionnaireService) session(ctx context.Context, userID uuid.UUID) (*wizardSession, error) {
	if sess, ok := srv.sessions.Get(userID); ok {
		srv.sessions.Touch(userID)

		return sess, nil
	}

	record, err := srv.questionnaireRepo.FindByUserID(ctx, userID, true)
	if err != nil && !errors.Is(err, repository.ErrQuestionnaireNotFound) {
		return nil, errors.Wrap(err, "failed to load questionnaire")
	}

	draft, step := wizard.Rehydrate(record)
	srv.log(ctx).Debug("Rehydrated questionnaire",
		slog.Any("userID", userID),
		slog.Bool("stored", record != nil),
		slog.String("step", step.String()),
	)

	return srv.sessions.AddIfAbsent(userID, &wizardSession{step: step, draft: draft}), nil
}

func stateOf(step wizard.Step, draft wizard.Draft) *usecase.WizardState {
	state := &usecase.WizardState{
		Step:       step,
		StepKey:    step.String(),
		Title:      step.Title(),
		CanAdvance: step.CanAdvance(),
		CanRetreat: step.CanRetreat(),
		Draft:      draft,
	}
	if step == wizard.StepResults {
		rendered := recommendation.Render(draft.PhotoResult)
		state.Results = &rendered
	}

	return state
}

// Load returns the user's wizard.
func (srv *questionnaireService) Load(ctx context.Context, userID uuid.UUID) (*usecase.WizardState, error) {
	sess, err := srv.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	return stateOf(sess.snapshot()), nil
}

// UpdateField merges patch into the draft. Nothing is persisted.
func (srv *questionnaireService) UpdateField(ctx context.Context, userID uuid.UUID, section wizard.Section, patch json.RawMessage) (*usecase.WizardState, error) {
	return srv.mutate(ctx, userID, func(draft *wizard.Draft) error {
		return draft.UpdateField(section, patch)
	})
}

// ToggleOption flips one checklist item.
func (srv *questionnaireService) ToggleOption(ctx context.Context, userID uuid.UUID, field wizard.ChecklistField, item string) (*usecase.WizardState, error) {
	return srv.mutate(ctx, userID, func(draft *wizard.Draft) error {
		return draft.ToggleOption(field, item)
	})
}

func (srv *questionnaireService) mutate(ctx context.Context, userID uuid.UUID, fn func(*wizard.Draft) error) (*usecase.WizardState, error) {
	sess, err := srv.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step.Terminal() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("results step is view-only")
	}
	if err := fn(&sess.draft); err != nil {
		return nil, err
	}

	return stateOf(sess.step, sess.draft.Clone()), nil
}

// Advance persists the section of the current step and moves forward. Only
// one step change per user may be in flight.
func (srv *questionnaireService) Advance(ctx context.Context, userID uuid.UUID) (*usecase.WizardState, error) {
	sess, err := srv.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !sess.saving.TryLock() {
		srv.metrics.WizardSaveConflicts.Inc()

		return nil, domainerrors.ErrSaveInProgress
	}
	defer sess.saving.Unlock()

	step, draft := sess.snapshot()

	transition, err := wizard.Advance(step, draft)
	if err != nil {
		if errors.Is(err, domainerrors.ErrHealthGate) {
			srv.metrics.HealthGateRejections.Inc()
			srv.log(ctx).Info("Health screening blocked questionnaire", slog.Any("userID", userID))
		}

		return nil, err
	}

	if err := srv.questionnaireRepo.UpsertFields(ctx, userID, transition.Save); err != nil {
		srv.log(ctx).Error("Failed to save questionnaire step",
			slog.Any("userID", userID),
			slog.String("step", step.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrSaveFailed, err.Error())
	}

	// Without a photo result there is no analysis to record or announce.
	if transition.Completed && transition.Result != nil {
		srv.complete(ctx, userID, transition.Result)
	}

	sess.mu.Lock()
	sess.step = transition.To
	step, draft = sess.step, sess.draft.Clone()
	sess.mu.Unlock()

	srv.metrics.WizardTransitionsTotal.WithLabelValues(transition.From.String(), transition.To.String()).Inc()

	return stateOf(step, draft), nil
}

// complete records the recommendation and announces the finished
// questionnaire. The completed flag is already stored, so failures here are
// only logged.
func (srv *questionnaireService) complete(ctx context.Context, userID uuid.UUID, result json.RawMessage) {
	rendered := recommendation.Render(result)

	analysis := &entity.SkinAnalysis{
		UserID:          userID,
		Recommendations: rendered.Bundle.ProductNames(),
	}
	if rendered.Primary != nil {
		analysis.PrimaryLabel = rendered.Primary.Class
	}
	if err := srv.analysisRepo.Create(ctx, analysis); err != nil {
		srv.log(ctx).Warn("Failed to record skin analysis", slog.Any("userID", userID), slog.Any("error", err))
	}

	event := &service.Event{
		ID:         uuid.NewString(),
		Type:       constants.EventQuestionnaireCompleted,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID.String(),
		OccurredAt: srv.now().UTC(),
		Data: map[string]string{
			"primary_label": analysis.PrimaryLabel,
			"bundle":        string(rendered.Bundle.Kind),
		},
	}
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish questionnaire completion", slog.Any("userID", userID), slog.Any("error", err))
	}
}

// Retreat moves back one step.
func (srv *questionnaireService) Retreat(ctx context.Context, userID uuid.UUID) (*usecase.WizardState, error) {
	sess, err := srv.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !sess.saving.TryLock() {
		srv.metrics.WizardSaveConflicts.Inc()

		return nil, domainerrors.ErrSaveInProgress
	}
	defer sess.saving.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	prev, err := wizard.Retreat(sess.step)
	if err != nil {
		return nil, err
	}
	srv.metrics.WizardTransitionsTotal.WithLabelValues(sess.step.String(), prev.String()).Inc()
	sess.step = prev

	return stateOf(sess.step, sess.draft.Clone()), nil
}

// SetPhotoResult replaces the draft's photo result. A finished questionnaire
// keeps the result it was completed with.
func (srv *questionnaireService) SetPhotoResult(ctx context.Context, userID uuid.UUID, result json.RawMessage) error {
	_, err := srv.mutate(ctx, userID, func(draft *wizard.Draft) error {
		draft.SetPhotoResult(result)

		return nil
	})

	return err
}

// PhotoResult returns the draft's photo result.
func (srv *questionnaireService) PhotoResult(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	sess, err := srv.session(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, draft := sess.snapshot()

	return draft.PhotoResult, nil
}
