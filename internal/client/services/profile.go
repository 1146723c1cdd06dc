package services

import (
	"context"
	"fmt"
	"strings"

	"remindme/internal/client/api"
	"remindme/internal/client/models"
	"remindme/internal/logging"
)

// ProfileService updates the user's display name and notification settings.
type ProfileService interface {
	Rename(ctx context.Context, name string) error

	// NotificationSettings returns the stored settings and whether a record
	// exists; (nil, false, nil) means the user has never configured any.
	NotificationSettings(ctx context.Context) (*models.NotificationSettings, bool, error)

	// SaveNotificationSettings creates the record when exists is false and
	// updates it otherwise.
	SaveNotificationSettings(ctx context.Context, settings models.NotificationSettings, exists bool) error
}

type profileService struct {
	gw      Gateway
	session Session
	log     logging.Logger
}

func NewProfileService(gw Gateway, session Session, log logging.Logger) ProfileService {
	return &profileService{gw: gw, session: session, log: log}
}

func (s *profileService) Rename(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return api.Validationf("name must not be empty")
	}

	body := struct {
		Name string `json:"name"`
	}{Name: name}

	if err := s.gw.Put(ctx, "/user/name", body, nil, true); err != nil {
		return fmt.Errorf("rename user: %w", err)
	}
	if err := s.session.SetUserName(ctx, name); err != nil {
		return fmt.Errorf("update stored profile: %w", err)
	}
	return nil
}

type notificationSettingsResponse struct {
	models.NotificationSettings
	NotificationsEmpty bool `json:"notificationsEmpty"`
}

func (s *profileService) NotificationSettings(ctx context.Context) (*models.NotificationSettings, bool, error) {
	var resp notificationSettingsResponse
	if err := s.gw.Get(ctx, "/notifications", nil, &resp, true); err != nil {
		return nil, false, fmt.Errorf("fetch notification settings: %w", err)
	}
	if resp.NotificationsEmpty {
		return nil, false, nil
	}
	settings := resp.NotificationSettings
	return &settings, true, nil
}

func (s *profileService) SaveNotificationSettings(ctx context.Context, settings models.NotificationSettings, exists bool) error {
	if settings.PhoneNumber != "" && len(digits(settings.PhoneNumber)) < 10 {
		return api.Validationf("phone number must have at least 10 digits")
	}
	// A weekly summary arrives by email, so it is meaningless without
	// email notifications.
	if !settings.EmailNotify {
		settings.WeeklySummary = false
	}

	var err error
	if exists {
		err = s.gw.Put(ctx, "/notifications", settings, nil, true)
	} else {
		err = s.gw.Post(ctx, "/notifications", settings, nil, true)
	}
	if err != nil {
		return fmt.Errorf("save notification settings: %w", err)
	}
	return nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
