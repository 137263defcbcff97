package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/evolvo-uz/evolvo/config"
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/web"
	"github.com/evolvo-uz/evolvo/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

const version = "1.2.0"

func runWebServer() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("refusing to start with invalid configuration:\n", err)
	}

	switch cfg.LogLevel {
	case config.Debug:
		logger.InitLogger(logging.DEBUG, cfg.GetLogFolder())
	case config.Info:
		logger.InitLogger(logging.INFO, cfg.GetLogFolder())
	case config.Warn:
		logger.InitLogger(logging.WARNING, cfg.GetLogFolder())
	case config.Error:
		logger.InitLogger(logging.ERROR, cfg.GetLogFolder())
	default:
		log.Fatal("unknown log level:", cfg.LogLevel)
	}
	defer logger.CloseLogger()

	if err := database.InitDB(cfg.DBPath, cfg.IsDebug()); err != nil {
		log.Fatal(err)
	}
	defer database.CloseDB()

	authService := service.NewAuthService(cfg, &service.UserService{})
	if err := authService.EnsureAdmin(); err != nil {
		if cfg.Production {
			log.Fatal("bootstrap admin initialization failed:", err)
		}
		logger.Warning("bootstrap admin initialization failed:", err)
	}

	server := web.NewServer(cfg)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			logger.Info("received SIGHUP, restarting web server")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(cfg)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "evolvo",
		Short: "Evolvo marketplace backend",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
