package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talegen/bastille/internal/core/domain"
)

// AuditCollection holds one document per administrative mutation attempt.
const AuditCollection = "audit_events"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// EnsureIndexes creates the lookup indexes for per-actor and per-target
// audit trails. It is idempotent.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(AuditCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "actor_id", Value: 1}, {Key: "occurred_at", Value: -1}},
			Options: options.Index().SetName("actor_occurred_at"),
		},
		{
			Keys:    bson.D{{Key: "target_id", Value: 1}, {Key: "occurred_at", Value: -1}},
			Options: options.Index().SetName("target_occurred_at"),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure audit indexes: %w", err)
	}
	return nil
}

// Insert persists event. An empty ID is replaced with a fresh UUID.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	doc := bson.M{
		"_id":         event.ID,
		"actor_id":    event.ActorID.String(),
		"target_id":   event.TargetID.String(),
		"action":      string(event.Action),
		"outcome":     string(event.Outcome),
		"occurred_at": event.OccurredAt.UTC(),
	}
	if len(event.Details) > 0 {
		doc["details"] = event.Details
	}
	if len(event.Errors) > 0 {
		doc["errors"] = event.Errors
	}

	if _, err := r.db.Collection(AuditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
