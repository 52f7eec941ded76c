package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/config"
	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/db"
	"github.com/lumawallet/buyflow/logger"
	"github.com/lumawallet/buyflow/persist"
	"github.com/lumawallet/buyflow/pkg/version"
)

// lightweightSyncInterval paces the background check that evicts a
// snapshot whose order finished server-side.
const lightweightSyncInterval = 5 * time.Minute

type service struct {
	cfg config.Config

	db         *gorm.DB
	processor  *buy.Processor
	reconciler *buy.Reconciler
	ctx        context.Context
}

// NewService wires the buy engine: config, database, persisted state,
// startup reconciliation and the intent processor. The startup sync
// completes before the processor accepts intents, so the first published
// state already reflects the backend.
func NewService(ctx context.Context, gateway custodial.OrderGateway) (*service, error) {
	// Load config from environment variables / .env file
	godotenv.Load(".env")
	appConfig := &config.AppConfig{}
	err := envconfig.Process("", appConfig)
	if err != nil {
		return nil, err
	}

	logger.Init(appConfig.LogLevel)
	logger.Logger.Info().Msg("Buyflow " + version.Tag)

	if appConfig.Workdir == "" {
		appConfig.Workdir = filepath.Join(xdg.DataHome, "/buyflow")
		logger.Logger.Info().Interface("workdir", appConfig.Workdir).Msg("No workdir specified, using default")
	}
	// make sure workdir exists
	os.MkdirAll(appConfig.Workdir, os.ModePerm)

	if appConfig.LogToFile {
		err = logger.AddFileLogger(appConfig.Workdir)
		if err != nil {
			return nil, err
		}
	}

	// If DATABASE_URI is a URI or a path, leave it unchanged.
	// If it only contains a filename, prepend the workdir.
	if !strings.HasPrefix(appConfig.DatabaseUri, "file:") {
		databasePath, _ := filepath.Split(appConfig.DatabaseUri)
		if databasePath == "" {
			appConfig.DatabaseUri = filepath.Join(appConfig.Workdir, appConfig.DatabaseUri)
		}
	}

	gormDB, err := db.NewDB(appConfig.DatabaseUri, appConfig.LogDBQueries)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewConfig(appConfig, gormDB)
	if err != nil {
		return nil, err
	}

	store := persist.NewGormStateStore(gormDB)

	interactor := buy.NewInteractor(gateway)
	if appConfig.PollIntervalSeconds > 0 {
		interactor.SetPollTuning(
			time.Duration(appConfig.PollIntervalSeconds)*time.Second,
			appConfig.KycPollRetries,
			appConfig.BankLinkPollRetries,
			appConfig.OrderPollRetries,
		)
	}

	reconciler := buy.NewReconciler(gateway, store)
	resolved, err := reconciler.PerformSync(ctx)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Startup order sync failed")
		return nil, err
	}

	initialState := buy.NewState()
	initialState.FiatCurrency = cfg.GetCurrency()
	if resolved != nil {
		initialState = *resolved
		logger.Logger.Info().
			Str("order_id", initialState.ID).
			Str("order_state", string(initialState.OrderState)).
			Msg("Resuming buy flow from synced order")
	}

	processor := buy.NewProcessor(initialState, interactor, store)
	processor.Start(ctx)

	svc := &service{
		cfg:        cfg,
		ctx:        ctx,
		db:         gormDB,
		processor:  processor,
		reconciler: reconciler,
	}

	go svc.recordOrderEvents(persist.NewOrderEventLog(gormDB))
	go svc.runLightweightSync()

	return svc, nil
}

// recordOrderEvents appends a row for every observed order state or
// error transition.
func (svc *service) recordOrderEvents(log *persist.OrderEventLog) {
	states := svc.processor.Subscribe()
	var lastOrderState string
	var lastError string
	var lastOrderID string
	for {
		select {
		case <-svc.ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			if string(state.OrderState) == lastOrderState &&
				string(state.Error) == lastError &&
				state.ID == lastOrderID {
				continue
			}
			lastOrderState = string(state.OrderState)
			lastError = string(state.Error)
			lastOrderID = state.ID
			if err := log.Record(state); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to record order event")
			}
		}
	}
}

// runLightweightSync periodically checks whether an order parked in
// AWAITING_FUNDS finished server-side and clears the flow when it did.
func (svc *service) runLightweightSync() {
	ticker := time.NewTicker(lightweightSyncInterval)
	defer ticker.Stop()
	for {
		select {
		case <-svc.ctx.Done():
			return
		case <-ticker.C:
			resolved, err := svc.reconciler.LightweightSync(svc.ctx)
			if err != nil {
				logger.Logger.Error().Err(err).Msg("Lightweight order sync failed")
				continue
			}
			current := svc.processor.CurrentState()
			if resolved == nil && current.ID != "" {
				svc.processor.Process(buy.ClearState{})
			}
		}
	}
}

func (svc *service) Shutdown() {
	svc.processor.Stop()
	db.Stop(svc.db)
}

func (svc *service) GetDB() *gorm.DB {
	return svc.db
}

func (svc *service) GetConfig() config.Config {
	return svc.cfg
}

func (svc *service) GetProcessor() *buy.Processor {
	return svc.processor
}

func (svc *service) GetReconciler() *buy.Reconciler {
	return svc.reconciler
}
