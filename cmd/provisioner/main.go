package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	temporalclient "go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/edvin/appenv/internal/activity"
	"github.com/edvin/appenv/internal/azure"
	"github.com/edvin/appenv/internal/config"
	"github.com/edvin/appenv/internal/logging"
	"github.com/edvin/appenv/internal/metrics"
	"github.com/edvin/appenv/internal/model"
	"github.com/edvin/appenv/internal/platform"
	"github.com/edvin/appenv/internal/workflow"
)

const taskQueue = "appenv-provision"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Credentials are checked before anything is provisioned; a bad run must
	// die here, while there is still nothing to clean up.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api, err := azure.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build azure client")
	}

	tc, err := temporalclient.Dial(temporalclient.Options{HostPort: cfg.TemporalAddress})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to temporal")
	}
	defer tc.Close()

	w := worker.New(tc, taskQueue, worker.Options{})
	w.RegisterActivity(activity.NewEnvironment(api))
	w.RegisterActivity(activity.NewCertificate())
	w.RegisterWorkflow(workflow.ProvisionEnvironmentWorkflow)

	if err := w.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start worker")
	}
	defer w.Stop()

	if cfg.MetricsAddr != "" {
		metricsSrv := metrics.NewServer(cfg.MetricsAddr)
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("starting metrics server")
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	runID := platform.NewID()
	logger.Info().Str("run_id", runID).Msg("starting environment run")

	run, err := tc.ExecuteWorkflow(ctx, temporalclient.StartWorkflowOptions{
		ID:        "provision-env-" + runID,
		TaskQueue: taskQueue,
	}, workflow.ProvisionEnvironmentWorkflow, workflow.ProvisionEnvironmentParams{
		Region:  cfg.Region,
		CertDir: cfg.CertDir,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start workflow")
	}

	var report model.EnvironmentReport
	workflowErr := run.Get(ctx, &report)

	event := logger.Info()
	if workflowErr != nil {
		event = logger.Error().Err(workflowErr)
	}
	event.
		Str("phase", report.Phase).
		Str("cleanup", report.Cleanup).
		Str("cleanup_error", report.CleanupError).
		Msg("environment run finished")

	if workflowErr != nil {
		os.Exit(1)
	}
}
