package cli

import (
	"log"
	"time"

	"github.com/dmleach/frock/config"
	"github.com/dmleach/frock/repositories"
	"github.com/dmleach/frock/routes"
	"github.com/dmleach/frock/services"
	"github.com/dmleach/frock/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP front controller",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1) Load config from file and/or env
	cfg := config.Load(cfgFile)
	log.Printf("[boot] %s starting in %s on :%s", cfg.AppName, cfg.Env, cfg.HTTPPort)
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2) Infrastructure (both optional)
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)

	// 3) Redis logger (no-op without Redis)
	rlog := redislog.New(rdb, cfg.RedisLogKey, cfg.RedisLogMax, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{"env": cfg.Env, "port": cfg.HTTPPort})

	// 4) Classes, repositories and services
	reg, err := buildRegistry(cfg)
	if err != nil {
		printError("startup", err)
		return err
	}
	log.Printf("[boot] %d classes registered", reg.Count())

	var repo repositories.DispatchRepository
	if db != nil {
		repo = repositories.NewDispatchRepository(db)
	}
	dispatchSvc := services.NewDispatchService(reg, repo, rdb, rlog, frockOptions(cfg)...)
	authSvc := services.NewAuthService(cfg.AdminUser, cfg.AdminPasswordHash, rlog)

	// 5) Gin engine and routes
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, routes.Deps{
		Dispatch:  dispatchSvc,
		Auth:      authSvc,
		Log:       rlog,
		PathKey:   cfg.PathKey(),
		JWTSecret: cfg.JWTSecret,
		JWTExpiry: cfg.JWTExpiry,
	})

	// 6) Serve until the listener fails
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		return err
	}
	return nil
}
