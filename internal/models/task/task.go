package task

import (
	"errors"
	"fmt"
	"strings"
)

// Task - повторяющаяся задача с параметрами расписания.
// Имена JSON-полей совпадают с форматом мобильного клиента.
type Task struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	IntervalDays       int  `json:"intervalDays"`
	FlexibilityDays    int  `json:"flexibilityDays"`
	PreferredDayOfWeek *int `json:"preferredDayOfWeek,omitempty"`
	DurationMinutes    int  `json:"durationMinutes"`

	LastCompletedDate *string `json:"lastCompletedDate,omitempty"`
	NextDueDate       string  `json:"nextDueDate"`
	Status            Status  `json:"status"`

	ScheduledEventID *string `json:"scheduledEventId,omitempty"`
	SnoozeCount      int     `json:"snoozeCount"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Status string

const StatusPending Status = "pending"
const StatusNotified Status = "notified"
const StatusScheduled Status = "scheduled"
const StatusCompleted Status = "completed"
const StatusOverdue Status = "overdue"

var ErrUnknownStatus = errors.New("неизвестный статус задачи")

var statuses = []Status{
	StatusPending,
	StatusNotified,
	StatusScheduled,
	StatusCompleted,
	StatusOverdue,
}

// Statuses возвращает все допустимые статусы в порядке объявления
func Statuses() []Status {
	res := make([]Status, len(statuses))
	copy(res, statuses)
	return res
}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}
