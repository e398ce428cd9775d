package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Notify records a message for a user. Failures are logged, not propagated:
// a notification must never fail the operation that triggered it.
func (s *Service) Notify(ctx context.Context, userID primitive.ObjectID, message string) {
	n := &Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, n); err != nil {
		s.logger.Error("failed to create notification", zap.String("user", userID.Hex()), zap.Error(err))
	}
}

func (s *Service) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]*Notification, error) {
	return s.store.FindByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.store.MarkRead(ctx, id, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.store.Delete(ctx, id, userID)
}
