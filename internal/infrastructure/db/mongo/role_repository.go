package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

const roleCollection = "roles"

type MongoRoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{coll: db.Collection(roleCollection)}
}

type mongoRole struct {
	ID           string   `bson:"role_id"`
	Name         string   `bson:"name"`
	Level        int      `bson:"level"`
	Capabilities []string `bson:"capabilities,omitempty"`
}

func (r *MongoRoleRepository) FindByID(ctx context.Context, id string) (*domain.Role, error) {
	var mr mongoRole
	if err := r.coll.FindOne(ctx, bson.M{"role_id": id}).Decode(&mr); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return &domain.Role{
		ID:           mr.ID,
		Name:         mr.Name,
		Level:        mr.Level,
		Capabilities: mr.Capabilities,
	}, nil
}
