package service

import (
	"context"
	"errors"

	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

type SettingsService interface {
	// GetSettings returns the stored singleton, or a document built purely
	// from declared defaults when none exists.
	GetSettings(ctx context.Context) (*model.PanelSettings, error)
	// ReplaceSettings overwrites the singleton wholesale. Omitted optional
	// fields revert to their defaults; there is no field-level merge.
	ReplaceSettings(ctx context.Context, settings *model.PanelSettings) error
}

type DefaultSettingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &DefaultSettingsService{
		settingsRepo: settingsRepo,
	}
}

func (s *DefaultSettingsService) GetSettings(ctx context.Context) (*model.PanelSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrDatabaseNotConfigured
		}
		return nil, err
	}
	if settings == nil {
		settings = &model.PanelSettings{}
		settings.ApplyDefaults()
	}
	return settings, nil
}

func (s *DefaultSettingsService) ReplaceSettings(ctx context.Context, settings *model.PanelSettings) error {
	if err := s.settingsRepo.Replace(ctx, settings); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return ErrDatabaseNotConfigured
		}
		return err
	}
	return nil
}
