package models

// NotificationSettings is the user's notification preference record.
type NotificationSettings struct {
	EmailNotify   bool   `json:"emailNotify"`
	PhoneNotify   bool   `json:"phoneNotify"`
	PhoneNumber   string `json:"phoneNumber"`
	WeeklySummary bool   `json:"weeklySummary"`
}
