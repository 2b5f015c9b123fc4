package models

import "time"

type SyncRunStatus string

const (
	SyncRunStatusRunning SyncRunStatus = "Running"
	SyncRunStatusDone    SyncRunStatus = "Done"
	SyncRunStatusFailed  SyncRunStatus = "Failed"
)

// SyncRun records one pull from the freight API so operators can see when
// the local shipment database was last refreshed and how much it moved.
type SyncRun struct {
	ID            int           `gorm:"primary_key" json:"id"`
	Status        SyncRunStatus `gorm:"column:status" json:"status"`
	StartedAt     time.Time     `gorm:"column:started_at" json:"started_at"`
	FinishedAt    *time.Time    `gorm:"column:finished_at" json:"finished_at"`
	ShipmentCount int           `gorm:"column:shipment_count" json:"shipment_count"`
	ItemCount     int           `gorm:"column:item_count" json:"item_count"`
	ClientCount   int           `gorm:"column:client_count" json:"client_count"`
	LastError     string        `gorm:"column:last_error;type:text" json:"last_error"`
}
