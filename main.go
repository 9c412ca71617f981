package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"word2vec-db/api"
	"word2vec-db/config"
	"word2vec-db/word2vec"
)

func main() {
	// load the environment variables
	_ = godotenv.Load()

	// parse the command line arguments
	cfg := parseFlags()

	// Initialize logging
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)

	// Print welcome message
	printWelcome()

	// Create model manager
	manager := word2vec.NewManager(cfg)
	persistence := word2vec.NewPersistenceManager(cfg.Storage.DataPath)

	// Load existing models
	if err := loadModels(manager, persistence); err != nil {
		log.Fatal("Failed to load models: ", err)
	}

	// Start persistence worker
	stopPersistence := make(chan struct{})
	go persistenceWorker(manager, persistence, cfg.Storage.PersistenceInterval, stopPersistence)

	// Create and start API server
	apiServer := api.NewServer(manager)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Info("Starting API server on ", addr)
		if err := apiServer.Start(addr); err != nil {
			log.Fatal("Failed to start API server: ", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	<-sigChan
	log.Info("Shutting down...")

	// Stop persistence worker
	close(stopPersistence)

	// Save all models one last time
	if err := saveAllModels(manager, persistence); err != nil {
		log.Error("Failed to save models during shutdown: ", err)
	}
}

func loadModels(manager *word2vec.Manager, persistence *word2vec.PersistenceManager) error {
	models, err := persistence.ListModels()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, name := range models {
		model, err := persistence.LoadModel(name)
		if err != nil {
			log.Errorf("Failed to load model %s: %v", name, err)
			continue
		}

		if err := manager.RestoreModel(model); err != nil {
			log.Errorf("Failed to restore model %s: %v", name, err)
			continue
		}
	}

	return nil
}

func saveAllModels(manager *word2vec.Manager, persistence *word2vec.PersistenceManager) error {
	for _, name := range manager.ListModels() {
		model, err := manager.GetModel(name)
		if err != nil {
			log.Errorf("Failed to get model %s: %v", name, err)
			continue
		}

		// Untrained models have nothing durable to save yet
		if !model.W2V.Fitted() {
			continue
		}

		if err := persistence.SaveModel(model); err != nil {
			log.Errorf("Failed to save model %s: %v", name, err)
			continue
		}
	}

	return nil
}

func persistenceWorker(manager *word2vec.Manager, persistence *word2vec.PersistenceManager, interval int, stop chan struct{}) {
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := saveAllModels(manager, persistence); err != nil {
				log.Error("Failed to save models: ", err)
			}
		case <-stop:
			return
		}
	}
}

func parseFlags() *config.Config {
	// Load default config
	cfg, err := config.LoadFromFile("./config.json")
	if err != nil {
		cfg = config.DefaultConfig()
	}

	// Server flags
	flag.StringVar(&cfg.Server.Host, "host", cfg.Server.Host, "Host address")
	flag.StringVar(&cfg.Server.Port, "port", cfg.Server.Port, "Port number")

	// Storage flags
	flag.StringVar(&cfg.Storage.DataPath, "data-path", cfg.Storage.DataPath, "Path to store data files")
	flag.BoolVar(&cfg.Storage.PersistenceEngine, "persistence", cfg.Storage.PersistenceEngine, "Enable persistence engine")
	flag.IntVar(&cfg.Storage.PersistenceInterval, "persistence-interval", cfg.Storage.PersistenceInterval, "Persistence interval in seconds")

	// Default model training flags
	defaultModel := cfg.Models["default"]
	flag.IntVar(&defaultModel.Word2Vec.Dimensions, "dims", defaultModel.Word2Vec.Dimensions, "Embedding dimensions")
	flag.IntVar(&defaultModel.Word2Vec.Window, "window", defaultModel.Word2Vec.Window, "Context window radius")
	flag.Float64Var(&defaultModel.Word2Vec.SampleRate, "sample-rate", defaultModel.Word2Vec.SampleRate, "Subsampling rate for frequent words")
	flag.Float64Var(&defaultModel.Word2Vec.Alpha, "alpha", defaultModel.Word2Vec.Alpha, "Initial learning rate")
	flag.IntVar(&defaultModel.Word2Vec.Epochs, "epochs", defaultModel.Word2Vec.Epochs, "Training epochs")
	flag.IntVar(&defaultModel.Word2Vec.MinCount, "min-count", defaultModel.Word2Vec.MinCount, "Minimum word count")
	flag.IntVar((*int)(&defaultModel.Word2Vec.Approximation), "approximation", int(defaultModel.Word2Vec.Approximation), "Softmax approximation (0=negative sampling, 1=hierarchical softmax)")
	flag.IntVar(&defaultModel.Word2Vec.NegativeCount, "negatives", defaultModel.Word2Vec.NegativeCount, "Negative samples per training pair")

	// Log level flag
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error, fatal)")

	// Parse flags
	flag.Parse()

	// Update default model config
	cfg.Models["default"] = defaultModel

	return cfg
}

func printWelcome() {
	fmt.Println("888       888  .d8888b.  888     888      8888888b.  888888b.   ")
	fmt.Println("888   o   888 d88P  Y88b 888     888      888  'Y88b 888  '88b  ")
	fmt.Println("888  d8b  888        888 888     888      888    888 888  .88P  ")
	fmt.Println("888 d888b 888      .d88P Y88b   d88P      888    888 8888888K.  ")
	fmt.Println("888d88888b888  .od888P'   Y88b d88P       888    888 888  'Y88b ")
	fmt.Println("88888P Y88888 d88P'        Y88o88P        888    888 888    888 ")
	fmt.Println("8888P   Y8888 888'          Y888P         888  .d88P 888   d88P ")
	fmt.Println("888P     Y888 888888888      Y8P          8888888P'  8888888P'  ")
}
