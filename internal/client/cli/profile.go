package cli

import (
	"context"
	"fmt"
	"strings"

	"remindme/internal/client/models"
)

func (a *App) rename(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New display name", a.out)
	if err != nil {
		return err
	}

	if err := a.profile.Rename(ctx, name); err != nil {
		return err
	}
	a.userName = strings.TrimSpace(name)
	fmt.Fprintln(a.out, "Name updated.")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// editNotifications shows the stored notification preferences and walks the
// user through changing them. Leaving an answer empty keeps the current value.
func (a *App) editNotifications(ctx context.Context) error {
	current, exists, err := a.profile.NotificationSettings(ctx)
	if err != nil {
		return err
	}

	settings := models.NotificationSettings{}
	if exists {
		settings = *current
		fmt.Fprintf(a.out, "Email notifications: %s\n", yesNo(settings.EmailNotify))
		fmt.Fprintf(a.out, "Phone notifications: %s (%s)\n", yesNo(settings.PhoneNotify), settings.PhoneNumber)
		fmt.Fprintf(a.out, "Weekly summary: %s\n", yesNo(settings.WeeklySummary))
	} else {
		fmt.Fprintln(a.out, "No notification preferences saved yet.")
	}

	if v, err := a.askBool("Email notifications? (y/n)", settings.EmailNotify); err != nil {
		return err
	} else {
		settings.EmailNotify = v
	}

	if v, err := a.askBool("Phone notifications? (y/n)", settings.PhoneNotify); err != nil {
		return err
	} else {
		settings.PhoneNotify = v
	}
	if settings.PhoneNotify {
		phone, err := getSimpleText(a.reader, "Phone number", a.out)
		if err != nil {
			return err
		}
		if phone != "" {
			settings.PhoneNumber = phone
		}
	}

	if settings.EmailNotify {
		v, err := a.askBool("Weekly summary? (y/n)", settings.WeeklySummary)
		if err != nil {
			return err
		}
		settings.WeeklySummary = v
	}

	if err := a.profile.SaveNotificationSettings(ctx, settings, exists); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Preferences saved.")
	return nil
}

// askBool reads a y/n answer; an empty answer keeps the current value.
func (a *App) askBool(prompt string, current bool) (bool, error) {
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return current, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
