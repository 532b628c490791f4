package preferences

import (
	"context"
	"encoding/json"
	"log/slog"

	apperrors "github.com/yanqian/runready/pkg/errors"
)

// Service manages the preferences lifecycle for a profile.
type Service interface {
	Load(ctx context.Context, profile string) (Preferences, error)
	Update(ctx context.Context, profile string, patch Patch) (Preferences, error)
	Reset(ctx context.Context, profile string) (Preferences, error)
}

type service struct {
	store  Store
	logger *slog.Logger
}

// NewService wires the preferences domain on top of a store.
func NewService(store Store, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger.With("component", "preferences.service"),
	}
}

// Load returns the stored preferences merged over the defaults. A record
// that cannot be decoded is ignored.
func (s *service) Load(ctx context.Context, profile string) (Preferences, error) {
	doc, ok, err := s.store.Load(ctx, profile)
	if err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodePreferencesError, "failed to load preferences", err)
	}
	if !ok {
		return Defaults(), nil
	}
	var stored Patch
	if err := json.Unmarshal(doc, &stored); err != nil {
		s.logger.Warn("failed to decode stored preferences, using defaults", "profile", profile, "error", err)
		return Defaults(), nil
	}
	return Normalize(Merge(Defaults(), stored)), nil
}

func (s *service) Update(ctx context.Context, profile string, patch Patch) (Preferences, error) {
	if err := patch.Validate(); err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), err)
	}
	current, err := s.Load(ctx, profile)
	if err != nil {
		return Preferences{}, err
	}
	next := Normalize(Merge(current, patch))
	doc, err := json.Marshal(next)
	if err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodePreferencesError, "failed to encode preferences", err)
	}
	if err := s.store.Save(ctx, profile, doc); err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodePreferencesError, "failed to save preferences", err)
	}
	s.logger.Info("preferences updated", "profile", profile)
	return next, nil
}

func (s *service) Reset(ctx context.Context, profile string) (Preferences, error) {
	if err := s.store.Delete(ctx, profile); err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodePreferencesError, "failed to reset preferences", err)
	}
	s.logger.Info("preferences reset", "profile", profile)
	return Defaults(), nil
}
