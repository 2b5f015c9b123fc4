package models

import (
	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

// MigrateTable migrates every table of the document center.
func MigrateTable() {
	db := config.GetDB()
	err := db.AutoMigrate(
		&Shipment{},
		&ShipmentItem{},
		&Client{},
		&DocumentDraft{},
		&SyncRun{},
	)
	utils.ErrorPanic(err)
}
