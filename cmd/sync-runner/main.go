// sync-runner performs one freightsync pull from the CLI, for cron jobs and
// manual refreshes.
//
// Usage (from backend directory):
//
//	FREIGHT_API_KEY=... DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/sync-runner
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/freightsync"
	"bitbucket.org/mmdatafocus/tradedocs_backend/models"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	run, err := freightsync.RunSync(ctx)
	if err != nil {
		if errors.Is(err, freightsync.ErrSyncAlreadyRunning) {
			fmt.Fprintln(os.Stderr, "another sync run is in progress; nothing to do")
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "sync failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sync run %d done: %d shipments, %d items, %d clients\n",
		run.ID, run.ShipmentCount, run.ItemCount, run.ClientCount)
}
