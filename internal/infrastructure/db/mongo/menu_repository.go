package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

const menuCollection = "menu_nodes"

type MongoMenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MongoMenuRepository {
	return &MongoMenuRepository{coll: db.Collection(menuCollection)}
}

type mongoMenuNode struct {
	ID            string `bson:"node_id"`
	ParentID      string `bson:"parent_id,omitempty"`
	Label         string `bson:"label"`
	Route         string `bson:"route"`
	RequiredLevel int    `bson:"required_level"`
	Capability    string `bson:"capability,omitempty"`
	DisplayOrder  int    `bson:"display_order"`
}

// ListNodes returns the full flat collection of menu definitions. Filtering
// by role happens in the menu service, not in the store.
func (r *MongoMenuRepository) ListNodes(ctx context.Context) ([]domain.MenuNode, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu nodes: %w", err)
	}
	defer cur.Close(ctx)

	var nodes []domain.MenuNode
	for cur.Next(ctx) {
		var mn mongoMenuNode
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode menu node: %w", err)
		}
		nodes = append(nodes, domain.MenuNode{
			ID:            mn.ID,
			ParentID:      mn.ParentID,
			Label:         mn.Label,
			Route:         mn.Route,
			RequiredLevel: mn.RequiredLevel,
			Capability:    mn.Capability,
			DisplayOrder:  mn.DisplayOrder,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list menu nodes: %w", err)
	}
	return nodes, nil
}
