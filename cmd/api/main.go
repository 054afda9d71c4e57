package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "ams-backend/internal/adapter/http"
	"ams-backend/internal/adapter/middleware"
	"ams-backend/internal/adapter/repository/postgres"
	"ams-backend/internal/config"
	"ams-backend/internal/infrastructure/cache"
	"ams-backend/internal/infrastructure/db"
	"ams-backend/internal/usecase/directory"
	"ams-backend/internal/usecase/documents"
	"ams-backend/internal/usecase/history"
	"ams-backend/internal/usecase/issuance"
	"ams-backend/internal/usecase/returns"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.PostgresDSN())
	if err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	entities := postgres.NewEntityRepository(gdb)
	assets := postgres.NewAssetRepository(gdb)
	ledger := postgres.NewLedgerRepository(gdb)
	docs := postgres.NewDocumentRepository(gdb)
	uow := postgres.NewGormUoW(gdb)

	directoryUC := directory.NewUsecase(entities, assets, ledger)
	issuanceUC := issuance.NewUsecase(entities, uow)
	returnsUC := returns.NewUsecase(entities, uow)
	historyUC := history.NewUsecase(entities, ledger)
	// No renderer or signature pad wired yet: tracking endpoints work,
	// print endpoints answer 503 until a device integration lands.
	documentsUC := documents.NewUsecase(entities, docs, directoryUC, nil, nil)

	base := httpadp.NewHandler()
	directoryH := httpadp.NewDirectoryHandler(directoryUC)
	issuanceH := httpadp.NewIssuanceHandler(issuanceUC)
	returnH := httpadp.NewReturnHandler(returnsUC)
	historyH := httpadp.NewHistoryHandler(historyUC)
	documentH := httpadp.NewDocumentHandler(documentsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", base.Health)

	e.GET("/entities/doc/:doc", directoryH.LookupByDOC)
	e.GET("/entities/:entity_id", directoryH.LookupByID)

	e.POST("/issuances", issuanceH.Issue, idemp)
	e.POST("/returns", returnH.Return, idemp)

	e.GET("/history/assets/:asset_id", historyH.ByAsset)
	e.GET("/history/doc/:doc", historyH.ByDOC)

	e.GET("/entities/:entity_id/documents/outstanding", documentH.Outstanding)
	e.POST("/documents/:document_id/printed", documentH.MarkPrinted, idemp)
	e.POST("/entities/:entity_id/documents/agreement/print", documentH.PrintAgreement, idemp)
	e.POST("/entities/:entity_id/documents/labels/print", documentH.PrintLabels, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
