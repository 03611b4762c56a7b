package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"routineTracker/internal/handlers/dto"
	"routineTracker/internal/logger"
	"routineTracker/internal/models/task"
	"time"

	"go.uber.org/zap"
)

const serviceName = "routine-tracker"

// предел тела POST /tasks
const maxTaskBodyBytes = 1 << 20

type TaskHandler struct {
	TaskService Service
}

func NewTaskHandler(taskService Service) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
	}
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := s.TaskService.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Сервис не готов", err)
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unavailable"),
			toPayload("service", serviceName),
			toPayload("error", err.Error()),
		)
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", serviceName),
	)
}

func (s *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	tasks, err := s.TaskService.ListTasks(r.Context())
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "list_tasks"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	writeJSON(w, http.StatusOK, dto.FromTaskList(tasks))
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {

		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTaskBodyBytes)
	defer r.Body.Close()

	var request dto.CreateTaskRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(&request)
	if err == nil {
		// после объекта допускаются только пробелы
		if extra := decoder.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = trailingDataError(extra)
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn("HTTP: Слишком большое тело запроса",
				zap.Int64("limit", tooLarge.Limit),
				zap.String("client_ip", r.RemoteAddr))

			responseWithError(w, http.StatusRequestEntityTooLarge, "тело запроса больше допустимого")
			return
		}

		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return
	}

	var status task.Status
	if request.Status != "" {
		parsed, err := task.ParseStatus(request.Status)
		if err != nil {

			logger.Warn("HTTP: Ошибка валидации",
				zap.String("field", "status"),
				zap.String("error", "wrong_value"),
				zap.String("client_ip", r.RemoteAddr))

			responseWithJSON(w, http.StatusBadRequest,
				toPayload("error", "VALIDATION_ERROR"),
				toPayload("message", err.Error()),
				toPayload("details", map[string]any{"status": request.Status}),
			)
			return
		}
		status = parsed
	}

	logger.Info("HTTP: Вызов сервиса добавления задачи")
	created, err := s.TaskService.AddTask(r.Context(), request.ToTask(status))
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "add_task"),
			zap.String("client_ip", r.RemoteAddr),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача добавлена",
		zap.String("task_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", created))
}

func (s *TaskHandler) DeleteTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	removed, err := s.TaskService.RemoveAllTasks(r.Context())
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}
		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "remove_all_tasks"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задачи удалены",
		zap.Int("removed", removed),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("removed", removed))
}

// превышение лимита отдаём как есть, остальное - лишние данные
func trailingDataError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return errors.New("лишние данные после JSON объекта")
}
