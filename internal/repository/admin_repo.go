package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"deepdive/internal/model"
)

// AdminRepo handles MongoDB operations for admin accounts
type AdminRepo interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type adminRepo struct {
	collection *mongo.Collection
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *mongo.Database) AdminRepo {
	return &adminRepo{
		collection: db.Collection("admins"),
	}
}

func (r *adminRepo) Create(ctx context.Context, admin *model.Admin) error {
	admin.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, admin)
	return err
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
