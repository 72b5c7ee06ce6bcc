package main

import (
	"fmt"
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-pricer/src/server"
	"github.com/jiaming2012/option-pricer/src/utils"
)

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("failed to initialize environment variables: %v", err)
	}

	cfg, err := utils.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("invalid log level %q, falling back to info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	router := server.Setup()

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infof("option pricing API listening on %s", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
