// Command astarweb serves random boards and streams A* searches over them
// to websocket clients, one JSON frame per search checkpoint.
package main

import (
	"flag"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/pdrpinto/gridastar/config"
	"github.com/pdrpinto/gridastar/internal/monitoring"
	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	listen := flag.String("listen", "", "override the configured listen address")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	monitoring.ConfigureLogging(cfg.Level(), os.Stderr)

	server := NewServer(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	log.WithField("addr", cfg.ListenAddr).Info("serving")
	log.Fatalln(http.ListenAndServe(cfg.ListenAddr, server))
}
