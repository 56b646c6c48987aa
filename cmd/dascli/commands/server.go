package commands

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"path/filepath"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/app/plugins"
	"github.com/dascoin/dascoin-go/common/pprof"
	"github.com/dascoin/dascoin-go/config"
	"github.com/dascoin/dascoin-go/db/storage"
	"github.com/dascoin/dascoin-go/mylog"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/gin-gonic/gin"
)

var ServerCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "run the precheck HTTP service",
		Long: `server hosts a chain behind an HTTP API. Clients can validate
operations without applying them, apply signed transactions, and read the
fee schedule and chain statistics. State persists in a local database under
the node's data directory.`,
		Run: startServer,
	}
	cmd.Flags().StringVarP(&cfgName, "name", "n", "", "node name (default is dascoin)")
	return cmd
}

func startServer(cmd *cobra.Command, args []string) {
	cfg := config.DefaultNodeConfig
	if cfgName != "" {
		cfg.Name = cfgName
	}
	confdir := filepath.Join(cfg.DataDir, cfg.Name)
	if err := config.ReadNodeConfigFile(confdir, &cfg); err != nil {
		fmt.Println("no config found, run init first:", err)
		return
	}

	logger, err := mylog.NewMyLog(cfg.LogDir(), cfg.LogLevel, cfg.LogAge)
	if err != nil {
		fmt.Println("logger setup failed:", err)
		return
	}
	log := logger.GetLog()

	db, err := storage.NewLevelDatabase(cfg.DbDir())
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	bus := EventBus.New()
	control := app.NewController(db, log, bus)
	control.Open(nil)

	if cfg.FeeScheduleFile != "" {
		data, err := ioutil.ReadFile(cfg.FeeScheduleFile)
		if err != nil {
			log.Fatalf("fee schedule file: %v", err)
		}
		schedule, err := prototype.LoadFeeSchedule(data)
		if err != nil {
			log.Fatalf("fee schedule rejected: %v", err)
		}
		control.SetFeeSchedule(schedule)
		log.Infof("fee schedule overrides loaded from %s", cfg.FeeScheduleFile)
	}

	if cfg.PprofListen != "" {
		pprof.Serve(cfg.PprofListen, log)
		log.Infof("pprof endpoints on %s", cfg.PprofListen)
	}

	if cfg.EnableOpExport {
		svc, err := plugins.NewAccountLogService(bus, &cfg.OpExport, log)
		if err != nil {
			log.Fatalf("op export setup failed: %v", err)
		}
		if err := svc.Start(); err != nil {
			log.Fatalf("op export start failed: %v", err)
		}
		defer svc.Stop()
		log.Infof("operation export enabled, database %s", cfg.OpExport.Db)
	}

	router := gin.Default()

	router.POST("/v1/precheck", func(c *gin.Context) {
		op := &prototype.Operation{}
		if err := c.ShouldBindJSON(op); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		base := prototype.GetBaseOperation(op)
		if err := base.Validate(); err != nil {
			c.JSON(http.StatusOK, gin.H{
				"type":  base.OpType().String(),
				"valid": false,
				"error": err.Error(),
			})
			return
		}
		required, err := base.CalculateFee(control.FeeSchedule())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		active := make(map[prototype.AccountIdType]bool)
		owner := make(map[prototype.AccountIdType]bool)
		base.GetRequiredActive(&active)
		base.GetRequiredOwner(&owner)
		c.JSON(http.StatusOK, gin.H{
			"type":            base.OpType().String(),
			"valid":           true,
			"fee_payer":       base.FeePayer(),
			"required_fee":    required,
			"required_active": sortedIds(active),
			"required_owner":  sortedIds(owner),
		})
	})

	router.POST("/v1/apply", func(c *gin.Context) {
		sigTrx := &prototype.SignedTransaction{}
		if err := c.ShouldBindJSON(sigTrx); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, control.PushTrx(sigTrx))
	})

	router.GET("/v1/fees", func(c *gin.Context) {
		c.JSON(http.StatusOK, control.FeeSchedule())
	})

	router.GET("/v1/stats", func(c *gin.Context) {
		props := control.GetProps()
		c.JSON(http.StatusOK, gin.H{
			"head_block_time":     props.HeadBlockTime,
			"next_account_id":     props.NextAccountId,
			"auth_cache_entries":  control.AuthCacheCount(),
			"auth_cache_hit_rate": control.AuthCacheHitRate(),
		})
	})

	log.Infof("precheck service listening on %s", cfg.Precheck.HTTPListen)
	if err := router.Run(cfg.Precheck.HTTPListen); err != nil {
		log.Errorf("http server stopped: %v", err)
	}
}
