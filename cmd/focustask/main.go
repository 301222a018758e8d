package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"focustask/internal/auth"
	"focustask/internal/config"
	"focustask/internal/logging"
	"focustask/internal/storage"
	"focustask/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	log.Info("starting", zap.String("config", configPath), zap.String("db", cfg.DBPath))
	session := auth.NewSession(store, cfg.LoginDelay(), log.Named("auth"))
	if err := ui.Run(cfg, session, store, log.Named("ui")); err != nil {
		log.Error("program exited", zap.Error(err))
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
