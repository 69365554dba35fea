package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

const identityCollection = "identities"

type MongoIdentityRepository struct {
	coll *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database) *MongoIdentityRepository {
	return &MongoIdentityRepository{coll: db.Collection(identityCollection)}
}

type mongoIdentity struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	PasswordHash   string             `bson:"password_hash"`
	RoleID         string             `bson:"role_id"`
	Status         string             `bson:"status"`
	FailedAttempts int                `bson:"failed_attempts"`
	LockedUntil    *time.Time         `bson:"locked_until,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *MongoIdentityRepository) FindByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	var mi mongoIdentity
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}

	var lockedUntil *time.Time
	if mi.LockedUntil != nil {
		t := mi.LockedUntil.UTC()
		lockedUntil = &t
	}

	return &domain.Identity{
		ID:             mi.ID.Hex(),
		Username:       mi.Username,
		PasswordHash:   mi.PasswordHash,
		RoleID:         mi.RoleID,
		Status:         domain.AccountStatus(mi.Status),
		FailedAttempts: mi.FailedAttempts,
		LockedUntil:    lockedUntil,
		CreatedAt:      unixToTime(mi.CreatedAt),
		UpdatedAt:      unixToTime(mi.UpdatedAt),
	}, nil
}

// UpdateLockout performs the conditional counter write: the filter pins the
// stored counter to expectAttempts, so two concurrent failures cannot both
// apply the same increment. A false return with a nil error means the
// precondition no longer held and the caller should re-read and retry.
func (r *MongoIdentityRepository) UpdateLockout(ctx context.Context, username string, expectAttempts, newAttempts int, lockedUntil *time.Time) (bool, error) {
	filter := bson.M{"username": username, "failed_attempts": expectAttempts}

	set := bson.M{
		"failed_attempts": newAttempts,
		"updated_at":      time.Now().UTC().Unix(),
	}
	update := bson.M{"$set": set}
	if lockedUntil != nil {
		set["locked_until"] = lockedUntil.UTC()
	} else {
		update["$unset"] = bson.M{"locked_until": ""}
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("update lockout: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// ResetLockout zeroes the failed-attempt counter and clears the lock window.
// The write is unconditional and idempotent.
func (r *MongoIdentityRepository) ResetLockout(ctx context.Context, username string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"username": username}, bson.M{
		"$set":   bson.M{"failed_attempts": 0, "updated_at": time.Now().UTC().Unix()},
		"$unset": bson.M{"locked_until": ""},
	})
	if err != nil {
		return fmt.Errorf("reset lockout: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
