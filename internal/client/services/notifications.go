package services

import (
	"context"

	"github.com/dmitrijs2005/matcha/internal/client/models"
)

// NotificationsAPI is the slice of the gateway the notification service
// needs.
type NotificationsAPI interface {
	Notifications(ctx context.Context) ([]models.Notification, error)
}

// NotificationService fetches the activity feed (likes, visits, messages).
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	// Unread counts the notifications not yet seen.
	Unread(ctx context.Context) (int, error)
}

type notificationService struct {
	api NotificationsAPI
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(a NotificationsAPI) NotificationService {
	return &notificationService{api: a}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.api.Notifications(ctx)
}

func (s *notificationService) Unread(ctx context.Context) (int, error) {
	ns, err := s.api.Notifications(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, note := range ns {
		if !note.Read {
			n++
		}
	}
	return n, nil
}
