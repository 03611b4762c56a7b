package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"routineTracker/internal/config"
	"routineTracker/internal/handlers"
	"routineTracker/internal/logger"
	"routineTracker/internal/middleware"
	"routineTracker/internal/repository/task/inmemory"
	"routineTracker/internal/service"
	"routineTracker/internal/theme"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	server    *http.Server
	router    *chi.Mux
	store     *inmemory.TaskStorage
	service   *service.TaskService
	theme     theme.Theme
	shutdowns []func() // функции для graceful shutdown
}

// New собирает приложение: хранилище принадлежит экземпляру App, а не пакету
func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

func (a *App) Init(ctx context.Context) (*App, error) {
	if err := logger.Init(a.config.Logging.Development); err != nil {
		return nil, fmt.Errorf("инициализация логгера: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("App: Завершение работы логгирования...")
		logger.Sync()
	})

	a.build()
	return a, nil
}

func (a *App) build() {
	a.store = inmemory.NewTaskStorage()
	a.service = service.NewTaskService(a.store)
	a.theme = theme.Select(a.config.ThemePreference(), a.config.Theme.SystemDark)

	taskHandler := handlers.NewTaskHandler(a.service)
	themeHandler := handlers.NewThemeHandler(a.config.ThemePreference(), a.config.Theme.SystemDark)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(a.config.HTTP.AllowedOrigins))
	r.Use(middleware.Timeout(a.config.HTTP.RequestTimeout))
	r.Use(middleware.RateLimit(a.config.HTTP.RateLimit))

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.GetTasks)       // GET /tasks
		r.Post("/", taskHandler.PostTask)      // POST /tasks
		r.Delete("/", taskHandler.DeleteTasks) // DELETE /tasks
	})

	r.Get("/theme", themeHandler.GetTheme)
	r.Get("/health", taskHandler.HealthCheck)

	a.router = r
	a.server = &http.Server{
		Addr:    a.config.GetServerAddr(),
		Handler: r,
	}

	logger.Info("App: Приложение собрано",
		zap.String("addr", a.server.Addr),
		zap.String("theme", a.theme.Name))
}

func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Theme() theme.Theme {
	return a.theme
}

func (a *App) Service() *service.TaskService {
	return a.service
}

// Run слушает адрес из конфига до отмены ctx или ошибки сервера
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("прослушивание %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, listener)
}

func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("App: Сервер запущен", zap.String("addr", listener.Addr().String()))
		errCh <- a.server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http сервер: %w", err)
	case <-ctx.Done():
		return nil
	}
}

func (a *App) Stop(ctx context.Context) error {
	var err error
	if a.server != nil {
		logger.Info("App: Остановка HTTP сервера...")
		if shutdownErr := a.server.Shutdown(ctx); shutdownErr != nil {
			err = fmt.Errorf("остановка сервера: %w", shutdownErr)
		}
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
	return err
}
