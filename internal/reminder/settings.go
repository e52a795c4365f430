// Package reminder models the local notification reminders: an hourly
// mind-state prompt, an hourly task prompt, and a daily check-in. The
// actual platform notification delivery is outside this program; this
// package owns the settings document and schedule expansion.
package reminder

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Settings is the single persisted notification-settings document.
type Settings struct {
	HourlyTitle string `json:"hourlyTitle"`
	HourlyBody  string `json:"hourlyBody"`
	HourlySound string `json:"hourlySound"`

	HourlyTaskTitle string `json:"hourlyTaskTitle"`
	HourlyTaskBody  string `json:"hourlyTaskBody"`
	HourlyTaskSound string `json:"hourlyTaskSound"`

	DailyTitle string `json:"dailyTitle"`
	DailyBody  string `json:"dailyBody"`
	DailySound string `json:"dailySound"`

	HourlyMindStartHour  int `json:"hourlyMindStartHour"`
	HourlyMindEndHour    int `json:"hourlyMindEndHour"`
	HourlyReminderMinute int `json:"hourlyReminderMinute"`

	HourlyTaskStartHour      int `json:"hourlyTaskStartHour"`
	HourlyTaskEndHour        int `json:"hourlyTaskEndHour"`
	HourlyTaskReminderMinute int `json:"hourlyTaskReminderMinute"`

	DailyHour   int `json:"dailyHour"`
	DailyMinute int `json:"dailyMinute"`

	HourlyReminderEnabled     bool `json:"hourlyReminderEnabled"`
	HourlyTaskReminderEnabled bool `json:"hourlyTaskReminderEnabled"`
	DailyReminderEnabled      bool `json:"dailyReminderEnabled"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{
		HourlyTitle:              "Mind State",
		HourlyBody:               "How are you feeling right now?",
		HourlySound:              "default",
		HourlyMindStartHour:      9,
		HourlyMindEndHour:        21,
		HourlyReminderMinute:     0,
		HourlyTaskTitle:          "Task Check",
		HourlyTaskBody:           "Anything you want to note down?",
		HourlyTaskSound:          "default",
		HourlyTaskStartHour:      9,
		HourlyTaskEndHour:        18,
		HourlyTaskReminderMinute: 30,
		DailyTitle:               "Daily Mood",
		DailyBody:                "Log your overall mood for today.",
		DailySound:               "default",
		DailyHour:                20,
		DailyMinute:              0,
	}
}

// SummaryText renders the human-readable settings overview shown in the
// reminders screen.
func (s Settings) SummaryText() string {
	if !s.HourlyReminderEnabled && !s.HourlyTaskReminderEnabled && !s.DailyReminderEnabled {
		return "All reminders are off"
	}
	return strings.Join([]string{
		s.hourlySummary(),
		s.hourlyTaskSummary(),
		s.dailySummary(),
	}, "\n")
}

func (s Settings) hourlySummary() string {
	if !s.HourlyReminderEnabled {
		return fmt.Sprintf("%s: Off", s.HourlyTitle)
	}
	return fmt.Sprintf("%s: Every hour at %d min", s.HourlyTitle, s.HourlyReminderMinute)
}

func (s Settings) hourlyTaskSummary() string {
	if !s.HourlyTaskReminderEnabled {
		return fmt.Sprintf("%s: Off", s.HourlyTaskTitle)
	}
	return fmt.Sprintf("%s: at %d min of hour", s.HourlyTaskTitle, s.HourlyTaskReminderMinute)
}

func (s Settings) dailySummary() string {
	if !s.DailyReminderEnabled {
		return fmt.Sprintf("%s: Off", s.DailyTitle)
	}
	return fmt.Sprintf("%s: %s", s.DailyTitle, formatClock(s.DailyHour, s.DailyMinute))
}

func formatClock(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// Trigger is one concrete reminder firing time.
type Trigger struct {
	At    time.Time
	Title string
	Body  string
	Sound string
}

// UpcomingTriggers expands the enabled reminders into the concrete firing
// times within the horizon after now, sorted ascending. Hourly reminders
// fire at their configured minute of each hour inside the inclusive
// start/end active window.
func (s Settings) UpcomingTriggers(now time.Time, horizon time.Duration) []Trigger {
	end := now.Add(horizon)
	var triggers []Trigger

	addHourly := func(startHour, endHour, minute int, title, body, sound string) {
		t := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), minute, 0, 0, now.Location())
		for !t.After(end) {
			if t.After(now) && hourInWindow(t.Hour(), startHour, endHour) {
				triggers = append(triggers, Trigger{At: t, Title: title, Body: body, Sound: sound})
			}
			t = t.Add(time.Hour)
		}
	}

	if s.HourlyReminderEnabled {
		addHourly(s.HourlyMindStartHour, s.HourlyMindEndHour, s.HourlyReminderMinute,
			s.HourlyTitle, s.HourlyBody, s.HourlySound)
	}
	if s.HourlyTaskReminderEnabled {
		addHourly(s.HourlyTaskStartHour, s.HourlyTaskEndHour, s.HourlyTaskReminderMinute,
			s.HourlyTaskTitle, s.HourlyTaskBody, s.HourlyTaskSound)
	}
	if s.DailyReminderEnabled {
		t := time.Date(now.Year(), now.Month(), now.Day(), s.DailyHour, s.DailyMinute, 0, 0, now.Location())
		for !t.After(end) {
			if t.After(now) {
				triggers = append(triggers, Trigger{At: t, Title: s.DailyTitle, Body: s.DailyBody, Sound: s.DailySound})
			}
			t = t.AddDate(0, 0, 1)
		}
	}

	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].At.Before(triggers[j].At)
	})
	return triggers
}

func hourInWindow(hour, start, end int) bool {
	if start <= end {
		return hour >= start && hour <= end
	}
	// Window wraps past midnight.
	return hour >= start || hour <= end
}

