package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

const auditCollection = "login_attempts"

type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoLoginAttempt struct {
	Username  string    `bson:"username"`
	RemoteIP  string    `bson:"remote_ip,omitempty"`
	Outcome   string    `bson:"outcome"`
	Timestamp time.Time `bson:"timestamp"`
}

// InsertAttempt appends one record to the login-attempt trail.
func (r *MongoAuditRepository) InsertAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	doc := mongoLoginAttempt{
		Username:  attempt.Username,
		RemoteIP:  attempt.RemoteIP,
		Outcome:   string(attempt.Outcome),
		Timestamp: attempt.Timestamp.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login attempt: %w", err)
	}
	return nil
}
