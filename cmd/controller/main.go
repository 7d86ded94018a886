// Command controller runs the MultiDeployment reconciler as a
// controller-runtime manager process. It reads cluster credentials from the
// ambient environment (in-cluster service account, or KUBECONFIG for local
// runs) and takes no required flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/metrics/server"

	mdv1 "github.com/skystar-dev/multi-deployment-controller/api/v1"
	mdcontroller "github.com/skystar-dev/multi-deployment-controller/pkg/controller"
)

func main() {
	var (
		metricsAddr     string
		healthProbeAddr string
		requeueDelay    time.Duration
		developmentMode bool
		logLevel        string
	)

	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080", "Address the metrics endpoint binds to.")
	flag.StringVar(&healthProbeAddr, "health-probe-bind-address", ":8081", "Address the health probe endpoint binds to.")
	flag.DurationVar(&requeueDelay, "requeue-delay", mdcontroller.DefaultRequeueDelay, "Requeue delay applied after a reconcile error.")
	flag.BoolVar(&developmentMode, "development-mode", false, "Use zap's development logging config instead of production.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	flag.Parse()

	logger, err := newLogger(developmentMode, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctrl.SetLogger(zapr.NewLogger(logger))

	scheme := clientgoscheme.Scheme
	if err := mdv1.AddToScheme(scheme); err != nil {
		logger.Error("failed to add MultiDeployment types to scheme", zap.Error(err))
		os.Exit(1)
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), ctrl.Options{
		Scheme: scheme,
		Metrics: server.Options{
			BindAddress: metricsAddr,
		},
		HealthProbeBindAddress: healthProbeAddr,
		Logger:                 zapr.NewLogger(logger),
	})
	if err != nil {
		logger.Error("failed to create manager", zap.Error(err))
		os.Exit(1)
	}

	reconciler := &mdcontroller.MultiDeploymentReconciler{
		RequeueDelay: requeueDelay,
	}
	reconciler.Client = mgr.GetClient()
	reconciler.Scheme = mgr.GetScheme()
	if err := reconciler.SetupWithManager(mgr); err != nil {
		logger.Error("failed to set up MultiDeployment controller", zap.Error(err))
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		logger.Error("failed to add healthz check", zap.Error(err))
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		logger.Error("failed to add readyz check", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("starting manager", zap.String("metrics-addr", metricsAddr), zap.String("health-probe-addr", healthProbeAddr))
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		logger.Error("manager exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(developmentMode bool, level string) (*zap.Logger, error) {
	var config zap.Config
	if developmentMode {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return config.Build()
}
