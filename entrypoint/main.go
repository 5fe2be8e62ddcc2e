package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"teinei.dev/flip/api"
	"teinei.dev/flip/logger"
	"teinei.dev/flip/pipeline"
	"teinei.dev/flip/redis"
	"teinei.dev/flip/types"
	"teinei.dev/flip/worker"
)

type Config struct {
	ConfigPath    string `envconfig:"FLIP_CONFIG_PATH"`
	RestAPIActive bool   `envconfig:"FLIP_REST_API_ACTIVE" default:"false"`
	RestAPIPort   string `envconfig:"FLIP_REST_API_PORT" default:"10000"`
	WorkerActive  bool   `envconfig:"FLIP_WORKER_ACTIVE" default:"true"`
}

const pipelineStartMaxRetries = 5

func main() {
	// .env is optional, the environment wins
	_ = godotenv.Load()
	logger.SetupLogging()
	mainLogger := logger.NewLogger("Main")
	fatalErrLogger := mainLogger.Fatal().Caller()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fatalErrLogger.Err(err).Msg("Failed to read environment")
		os.Exit(1)
	}
	if !config.RestAPIActive && !config.WorkerActive {
		fatalErrLogger.Msg("Neither REST API nor worker is active, nothing to do")
		os.Exit(1)
	}

	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfg, err := loadConfiguration(config.ConfigPath)
			if err != nil {
				mainLogger.Err(err).Msg("Failed to load configuration. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			mainLogger.Info().Str("configuration", cfg.Name).Msg("Starting pipeline loading")

			params := pipeline.Params{Configuration: cfg}
			if cfg.Pipeline.CacheTTLSeconds > 0 {
				cache, err := newSentenceCache(cfg)
				if err != nil {
					mainLogger.Err(err).Msg("Failed to connect sentence cache. Retrying in 5 sec")
					time.Sleep(5 * time.Second)
					continue
				}
				params.Cache = cache
			}
			ppln, err := pipeline.New(params)
			if err != nil {
				mainLogger.Err(err).Msg("Failed to start toggle pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			mainLogger.Info().Msg("Pipeline loaded")
			pipelineChannel <- ppln
			return
		}
		fatalErrLogger.Msgf("Could not start pipeline after %d retries, exiting", pipelineStartMaxRetries)
		os.Exit(1)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	if config.RestAPIActive {
		serve := func() {
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			mainLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, api.NewHandler(ppln))
			fatalErrLogger.Err(err).Msg("REST API stopped with error")
		}
		if !config.WorkerActive {
			serve()
			return
		}
		go serve()
	}

	mainLogger.Info().Msg("Start toggle worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			mainLogger.Fatal().Err(err).Msg("Could not initialize RMQ worker")
			os.Exit(1)
		}
		err = rmqWorker.StartWorker()
		if err != nil {
			mainLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}

func loadConfiguration(filePath string) (types.Configuration, error) {
	if filePath == "" {
		return types.DefaultConfiguration(), nil
	}
	return types.LoadConfiguration(filePath)
}

func newSentenceCache(cfg types.Configuration) (*redis.SentenceCache, error) {
	client, err := redis.NewClient(redis.CacheDB)
	if err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.Pipeline.CacheTTLSeconds) * time.Second
	return redis.NewSentenceCache(client, ttl), nil
}
