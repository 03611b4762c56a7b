package handlers

import (
	"context"
	"routineTracker/internal/models/task"
)

type Service interface {
	HealthCheck(context.Context) error
	AddTask(context.Context, task.Task) (task.Task, error)
	ListTasks(context.Context) ([]task.Task, error)
	RemoveAllTasks(context.Context) (int, error)
}
