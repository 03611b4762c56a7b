package inmemory

import (
	"context"
	"routineTracker/internal/logger"
	"routineTracker/internal/models/task"
	"sync"
)

// TaskStorage хранит задачи в порядке добавления.
// Повторяющиеся id не отбрасываются.
type TaskStorage struct {
	tasks []task.Task
	mtx   *sync.RWMutex
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		tasks: []task.Task{},
		mtx:   &sync.RWMutex{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище в памяти доступно")
	return nil
}

// добавление в конец без проверок
func (s *TaskStorage) AddTask(taskToAdd task.Task) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = append(s.tasks, taskToAdd)
}

// очистка всего хранилища
func (s *TaskStorage) RemoveAllTasks() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = []task.Task{}
}

// ClearTasks очищает хранилище и возвращает число удалённых задач.
// Подсчёт и очистка под одной блокировкой.
func (s *TaskStorage) ClearTasks() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	removed := len(s.tasks)
	s.tasks = []task.Task{}
	return removed
}

// копия всей последовательности
func (s *TaskStorage) Tasks() []task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]task.Task, len(s.tasks))
	copy(res, s.tasks)
	return res
}

func (s *TaskStorage) Len() int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.tasks)
}
