package service

import (
	"context"
	"fmt"
	"routineTracker/internal/logger"
	"routineTracker/internal/models/task"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка задач, пришедших снаружи, перед записью в хранилище

type TaskService struct {
	store TaskStore
	now   func() time.Time
	newID func() string
}

type ServiceOption func(*TaskService)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *TaskService) {
		s.newID = newID
	}
}

func NewTaskService(store TaskStore, options ...ServiceOption) *TaskService {
	s := &TaskService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.store.HealthCheck(ctx); err != nil {
		logger.Error("Service: Хранилище не отвечает", err)
		return NewStoreUnavailable(fmt.Errorf("проверка здоровья сервиса: %w", err))
	}
	return nil
}

// AddTask дополняет пустые id, статус и метки времени, проверяет поля и
// добавляет задачу в конец хранилища. Дубликаты id не отклоняются.
func (s *TaskService) AddTask(ctx context.Context, taskToAdd task.Task) (task.Task, error) {
	if taskToAdd.ID == "" {
		taskToAdd.ID = s.newID()
	}
	if taskToAdd.Status == "" {
		taskToAdd.Status = task.StatusPending
	}

	now := s.now().UTC().Format(time.RFC3339)
	if taskToAdd.CreatedAt == "" {
		taskToAdd.CreatedAt = now
	}
	if taskToAdd.UpdatedAt == "" {
		taskToAdd.UpdatedAt = taskToAdd.CreatedAt
	}

	if err := taskToAdd.Validate(); err != nil {
		logger.Info("Service: Задача не прошла проверку",
			zap.String("task_id", taskToAdd.ID),
			zap.Error(err))
		return task.Task{}, NewValidationError(err)
	}

	s.store.AddTask(taskToAdd)

	logger.Info("Service: Задача добавлена",
		zap.String("task_id", taskToAdd.ID),
		zap.String("status", string(taskToAdd.Status)))
	return taskToAdd, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]task.Task, error) {
	return s.store.Tasks(), nil
}

// RemoveAllTasks возвращает число удалённых задач
func (s *TaskService) RemoveAllTasks(ctx context.Context) (int, error) {
	removed := s.store.ClearTasks()

	logger.Info("Service: Хранилище очищено", zap.Int("removed", removed))
	return removed, nil
}
