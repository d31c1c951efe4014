package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"smm-panel/internal/model"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*model.PanelSettings, error)
	Replace(ctx context.Context, settings *model.PanelSettings) error
}

type MongoSettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) SettingsRepository {
	return &MongoSettingsRepository{
		store: store,
	}
}

// Get returns the settings singleton, or (nil, nil) when the collection is
// empty. Unknown stored fields are dropped by the decode; missing fields
// take their declared defaults.
func (r *MongoSettingsRepository) Get(ctx context.Context) (*model.PanelSettings, error) {
	col := r.store.collection(settingsCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	var settings model.PanelSettings
	err := col.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	settings.ApplyDefaults()
	return &settings, nil
}

// Replace wipes the collection and inserts the new singleton. The two steps
// are not transactional; a crash in between leaves zero documents, which
// Get tolerates by falling back to defaults.
func (r *MongoSettingsRepository) Replace(ctx context.Context, settings *model.PanelSettings) error {
	col := r.store.collection(settingsCollection)
	if col == nil {
		return ErrNotConfigured
	}

	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	doc, err := toDocument(settings)
	if err != nil {
		return err
	}

	_, err = col.InsertOne(ctx, doc)
	return err
}
