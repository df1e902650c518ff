package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go-clinic-scheduling/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NotificationChannel is the Redis pub/sub channel notifications are
// mirrored to when a client is configured.
const NotificationChannel = "clinic:notifications"

const publishTimeout = 2 * time.Second

// NotificationService is an append-only, timestamped in-memory event log.
// No size bound and no rotation; fine for this scope, an open scaling
// limit for anything bigger.
type NotificationService interface {
	Record(ctx context.Context, event, message string)
	All(ctx context.Context) []entity.Notification
}

type notificationService struct {
	mu          sync.Mutex
	log         *logrus.Logger
	redisClient *redis.Client
	entries     []entity.Notification
}

// NewNotificationService creates the log. redisClient may be nil, in which
// case entries are kept in memory only.
func NewNotificationService(log *logrus.Logger, redisClient *redis.Client) NotificationService {
	return &notificationService{
		log:         log,
		redisClient: redisClient,
	}
}

func (s *notificationService) Record(ctx context.Context, event, message string) {
	now := time.Now()
	entry := entity.Notification{At: now, Message: message}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"event": event}).Info(message)

	if s.redisClient == nil {
		return
	}

	// Fan-out is best effort, a broker hiccup never fails the operation
	// that produced the event.
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	payload := fmt.Sprintf("%s - %s", now.Format("2006-01-02 15:04:05"), message)
	if err := s.redisClient.Publish(pubCtx, NotificationChannel, payload).Err(); err != nil {
		s.log.Warnf("Failed to publish notification: %+v", err)
	}
}

func (s *notificationService) All(ctx context.Context) []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Notification, len(s.entries))
	copy(out, s.entries)
	return out
}
