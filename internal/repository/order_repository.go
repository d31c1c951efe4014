package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"smm-panel/internal/model"
)

type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
}

type MongoOrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) OrderRepository {
	return &MongoOrderRepository{
		store: store,
	}
}

func (r *MongoOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	col := r.store.collection(orderCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].ApplyDefaults()
	}
	return orders, nil
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *model.Order) error {
	col := r.store.collection(orderCollection)
	if col == nil {
		return ErrNotConfigured
	}

	doc, err := toDocument(order)
	if err != nil {
		return err
	}

	_, err = col.InsertOne(ctx, doc)
	return err
}
