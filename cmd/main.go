package main

import (
	root "github.com/dinerozz/user-registry/cmd/root"
	"github.com/dinerozz/user-registry/config"
	"github.com/dinerozz/user-registry/pkg/logger"
	"go.uber.org/zap"
	"log"
	"os"
)

func main() {
	config := config.LoadConfig()

	appLogger, err := logger.New(config.Env, config.Log.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	appLogger.Info("starting user registry", zap.String("env", config.Env))

	cmd := root.GetRootCmd(config, appLogger)
	if len(os.Args) == 1 {
		cmd.SetArgs([]string{"serve"})
	}

	if err := cmd.Execute(); err != nil {
		appLogger.Error("command failed", zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}
}
