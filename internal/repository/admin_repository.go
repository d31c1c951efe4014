package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"smm-panel/internal/model"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	Create(ctx context.Context, admin *model.AdminUser) error
}

type MongoAdminRepository struct {
	store *Store
}

func NewAdminRepository(store *Store) AdminRepository {
	return &MongoAdminRepository{
		store: store,
	}
}

func (r *MongoAdminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	col := r.store.collection(adminCollection)
	if col == nil {
		return nil, ErrNotConfigured
	}

	var admin model.AdminUser
	err := col.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	admin.ApplyDefaults()
	return &admin, nil
}

func (r *MongoAdminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	col := r.store.collection(adminCollection)
	if col == nil {
		return ErrNotConfigured
	}

	doc, err := toDocument(admin)
	if err != nil {
		return err
	}

	_, err = col.InsertOne(ctx, doc)
	return err
}
