package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rizkypram/tranledger/internal/pkg/config"
	"github.com/rizkypram/tranledger/internal/pkg/database"
	"github.com/rizkypram/tranledger/internal/pkg/logger"
	"github.com/rizkypram/tranledger/services/ledger/repository"
	"github.com/rizkypram/tranledger/services/ledger/usecase"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s import <file.csv> | aggregate <YYYY-MM-DD>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) != 3 {
		usage()
	}
	command, arg := os.Args[1], os.Args[2]

	configs, err := config.InitConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	ledgerRepo := repository.NewLedgerRepo(configs, postgresClient.GetDB())
	ledgerUC := usecase.NewLedgerUC(configs, ledgerRepo)

	ctx := context.Background()

	switch command {
	case "import":
		summary, err := ledgerUC.ImportFile(ctx, arg)
		if err != nil {
			appLogger.WithError(err).Fatal("Import failed")
		}
		fmt.Printf("imported %s: %d rows seen, %d inserted, %d updated, %d skipped (store total %d)\n",
			summary.FileName, summary.RowsSeen, summary.Inserted, summary.Updated,
			summary.Skipped, summary.StoreTotal)
	case "aggregate":
		summary, err := ledgerUC.AggregateDay(ctx, arg)
		if err != nil {
			appLogger.WithError(err).Fatal("Aggregation failed")
		}
		fmt.Printf("aggregated %s: %d daily rows, %d hourly rows\n",
			summary.Date, summary.DailyRows, summary.HourlyRows)
	default:
		usage()
	}
}
