package models

type Settings struct {
	Timezone             string `json:"timezone"`
	ReminderTime         string `json:"reminder_time"` // HH:MM format
	NotificationsEnabled bool   `json:"notifications_enabled"`
}
