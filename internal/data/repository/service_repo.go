package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/database"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Service, error)
	FindByServiceID(ctx context.Context, serviceID int) (*entity.Service, error)
	FindAll(ctx context.Context) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type serviceRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewServiceRepository(db *database.DB, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		coll: db.Collection("services"),
		log:  log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	result, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		service.ID = oid
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Service, error) {
	var service entity.Service
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.Hex()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.Hex(), err)
	}

	return &service, nil
}

func (r *serviceRepository) FindByServiceID(ctx context.Context, serviceID int) (*entity.Service, error) {
	var service entity.Service
	err := r.coll.FindOne(ctx, bson.M{"service_id": serviceID}).Decode(&service)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service",
			zap.Error(err),
			zap.Int("service_id", serviceID),
		)
		return nil, fmt.Errorf("find service %d: %w", serviceID, err)
	}

	return &service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "service_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Error("Failed to find services", zap.Error(err))
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []*entity.Service
	if err := cursor.All(ctx, &services); err != nil {
		r.log.Error("Failed to decode service rows", zap.Error(err))
		return nil, fmt.Errorf("decode service rows: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": service.ID}, service)
	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID.Hex()),
		)
		return fmt.Errorf("update service %s: %w", service.ID.Hex(), err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", service.ID.Hex())
	}

	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id.Hex()),
		)
		return fmt.Errorf("delete service %s: %w", id.Hex(), err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("service %s not found", id.Hex())
	}

	return nil
}
