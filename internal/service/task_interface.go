package service

import (
	"context"
	"routineTracker/internal/models/task"
)

type TaskStore interface {
	HealthCheck(context.Context) error
	AddTask(task.Task)
	RemoveAllTasks()
	ClearTasks() int
	Tasks() []task.Task
}
