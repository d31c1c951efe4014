package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"smm-panel/internal/model"
)

type PaymentRepository interface {
	List(ctx context.Context) ([]model.Payment, error)
	Create(ctx context.Context, payment *model.Payment) error
}

type MongoPaymentRepository struct {
	store *Store
}

func NewPaymentRepository(store *Store) PaymentRepository {
	return &MongoPaymentRepository{
		store: store,
	}
}

func (r *MongoPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	col := r.store.collection(paymentCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []model.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}

	for i := range payments {
		payments[i].ApplyDefaults()
	}
	return payments, nil
}

func (r *MongoPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	col := r.store.collection(paymentCollection)
	if col == nil {
		return ErrNotConfigured
	}

	doc, err := toDocument(payment)
	if err != nil {
		return err
	}

	_, err = col.InsertOne(ctx, doc)
	return err
}
