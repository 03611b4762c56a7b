package main

import (
	"context"
	"log"
	"os"
	"routineTracker/internal/app"
	"routineTracker/internal/config"
	"routineTracker/internal/logger"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"
)

type server interface {
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}

func main() {
	cfg, err := config.Load(config.Path(""))
	if err != nil {
		log.Fatalf("загрузка конфига: %v", err)
	}

	application, err := app.New(cfg).Init(context.Background())
	if err != nil {
		log.Fatalf("инициализация приложения: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run(ctx)
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				defer cancel()
				return application.Stop(ctx)
			},
		},
	)

	exitCode := waitForExit(application, runErr, wait, cancel, cfg.Server.ShutdownTimeout)
	logger.Info("App: Завершение работы", zap.Int("exit_code", exitCode))
	os.Exit(exitCode)
}

// waitForExit ждёт сигнала или падения сервера. Если сервер упал сам,
// ресурсы освобождаются здесь же, до выхода с кодом 1.
func waitForExit(srv server, runErr <-chan error, wait <-chan int, cancel context.CancelFunc, stopTimeout time.Duration) int {
	select {
	case code := <-wait:
		return code
	case err := <-runErr:
		if err == nil {
			return <-wait
		}

		logger.Error("App: Сервер остановился с ошибкой", err)
		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
		defer stopCancel()
		if err := srv.Stop(stopCtx); err != nil {
			logger.Error("App: Ошибка остановки", err)
		}
		cancel()
		return 1
	}
}
