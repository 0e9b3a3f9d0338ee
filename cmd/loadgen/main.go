/**
 * @description
 * This is the main entry point for the load generator.
 * It loads configuration, builds the gateway clients, and runs the selected
 * user journey under the virtual-user runner. With LOAD_CRON_SCHEDULE set it
 * keeps firing recurring load waves until a termination signal arrives.
 *
 * With no GATEWAY_API_BASE_URL configured it targets an in-process fake
 * gateway, which makes dry runs possible without any deployment.
 */
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Linkin89/performance-tests/internal/config"
	"github.com/Linkin89/performance-tests/internal/gatewaytest"
	"github.com/Linkin89/performance-tests/internal/loadgen"
	"github.com/Linkin89/performance-tests/internal/scenario"
	"github.com/Linkin89/performance-tests/pkg/gatewayhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Load .env if present; real environments configure via env vars directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	newSet, ok := scenario.Journeys()[cfg.LoadScenario]
	if !ok {
		logger.Error("unknown load scenario", "scenario", cfg.LoadScenario)
		os.Exit(1)
	}

	baseURL := cfg.GatewayAPIBaseURL
	if baseURL == "" {
		fakeGateway := httptest.NewServer(gatewaytest.NewGateway().Handler())
		defer fakeGateway.Close()
		baseURL = fakeGateway.URL
		logger.Info("no gateway configured, using in-process fake gateway", "url", baseURL)
	}

	transport := gatewayhttp.NewClientWithHTTP(baseURL, cfg.GatewayAPIKey, &http.Client{
		Timeout: cfg.HTTPTimeout(),
	})
	clients := scenario.NewClients(transport)

	runner := loadgen.NewRunner(newSet, clients, loadgen.Options{
		Users:    cfg.LoadUsers,
		Duration: cfg.LoadDuration(),
		WaitMin:  cfg.WaitMin(),
		WaitMax:  cfg.WaitMax(),
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.LoadCronSchedule == "" {
		// Single run: allow Ctrl-C to cut it short.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("shutdown signal received, stopping load run")
			cancel()
		}()

		report := runner.Run(ctx)
		if failures(report) > 0 {
			os.Exit(1)
		}
		return
	}

	// Recurring waves on a cron schedule.
	scheduler := loadgen.NewScheduler(runner, logger)
	if err := scheduler.Start(ctx, cfg.LoadCronSchedule); err != nil {
		logger.Error("failed to start scheduler", "error", err, "schedule", cfg.LoadCronSchedule)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping scheduler")
	cancel()
	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		logger.Warn("timed out waiting for in-flight load wave")
	}
	logger.Info("scheduler stopped gracefully")
}

func failures(report *loadgen.Report) int64 {
	var total int64
	for _, stats := range report.Tasks {
		total += stats.Failed
	}
	return total
}
