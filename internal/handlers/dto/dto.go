package dto

import (
	"routineTracker/internal/models/task"
	"routineTracker/internal/theme"
)

type CreateTaskRequest struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	IntervalDays       int     `json:"intervalDays"`
	FlexibilityDays    int     `json:"flexibilityDays"`
	PreferredDayOfWeek *int    `json:"preferredDayOfWeek,omitempty"`
	DurationMinutes    int     `json:"durationMinutes"`
	LastCompletedDate  *string `json:"lastCompletedDate,omitempty"`
	NextDueDate        string  `json:"nextDueDate"`
	Status             string  `json:"status,omitempty"`
	ScheduledEventID   *string `json:"scheduledEventId,omitempty"`
	SnoozeCount        int     `json:"snoozeCount"`
	CreatedAt          string  `json:"createdAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt,omitempty"`
}

// ToTask переносит поля как есть; пустой статус остаётся пустым, его заполнит сервис
func (r CreateTaskRequest) ToTask(status task.Status) task.Task {
	return task.Task{
		ID:                 r.ID,
		Name:               r.Name,
		Description:        r.Description,
		IntervalDays:       r.IntervalDays,
		FlexibilityDays:    r.FlexibilityDays,
		PreferredDayOfWeek: r.PreferredDayOfWeek,
		DurationMinutes:    r.DurationMinutes,
		LastCompletedDate:  r.LastCompletedDate,
		NextDueDate:        r.NextDueDate,
		Status:             status,
		ScheduledEventID:   r.ScheduledEventID,
		SnoozeCount:        r.SnoozeCount,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type TaskListResponse struct {
	Tasks []task.Task `json:"tasks"`
	Count int         `json:"count"`
}

func FromTaskList(tasks []task.Task) TaskListResponse {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return TaskListResponse{
		Tasks: tasks,
		Count: len(tasks),
	}
}

type ThemeResponse struct {
	Name      string            `json:"name"`
	Dark      bool              `json:"dark"`
	Colors    map[string]string `json:"colors"`
	Roundness int               `json:"roundness"`
}

func FromTheme(th theme.Theme) ThemeResponse {
	colors := make(map[string]string)
	for role, c := range th.Roles() {
		colors[role] = string(c)
	}
	return ThemeResponse{
		Name:      th.Name,
		Dark:      th.Dark,
		Colors:    colors,
		Roundness: th.Roundness,
	}
}
