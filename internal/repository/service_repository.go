package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"smm-panel/internal/model"
)

type ServiceRepository interface {
	GetByName(ctx context.Context, name string) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type MongoServiceRepository struct {
	store *Store
}

func NewServiceRepository(store *Store) ServiceRepository {
	return &MongoServiceRepository{
		store: store,
	}
}

func (r *MongoServiceRepository) GetByName(ctx context.Context, name string) (*model.Service, error) {
	col := r.store.collection(serviceCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	var service model.Service
	err := col.FindOne(ctx, bson.M{"name": name}).Decode(&service)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	service.ApplyDefaults()
	return &service, nil
}

func (r *MongoServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	col := r.store.collection(serviceCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []model.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}

	for i := range services {
		services[i].ApplyDefaults()
	}
	return services, nil
}

func (r *MongoServiceRepository) Create(ctx context.Context, service *model.Service) error {
	col := r.store.collection(serviceCollection)
	if col == nil {
		return ErrNotConfigured
	}

	doc, err := toDocument(service)
	if err != nil {
		return err
	}

	_, err = col.InsertOne(ctx, doc)
	return err
}

// DeleteByName removes every service document matching the name exactly and
// reports how many were removed. Zero matches is not an error.
func (r *MongoServiceRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	col := r.store.collection(serviceCollection)
	if col == nil {
		return 0, ErrNotConfigured
	}

	res, err := col.DeleteMany(ctx, bson.M{"name": name})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
