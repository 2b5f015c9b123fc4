package models

import (
	"context"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/engine"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

const datasetCacheKey = "tradedocs:dataset:v1"

// datasetSnapshot is the Redis-cacheable form of the three collections:
// plain string rows in stable id order. engine.Record is rebuilt from it on
// every load so the engine keeps owning normalization.
type datasetSnapshot struct {
	Shipments []map[string]string `json:"shipments"`
	Items     []map[string]string `json:"items"`
	Clients   []map[string]string `json:"clients"`
}

// LoadDataset returns the current in-memory view of the shipment database.
// It serves the Redis snapshot when fresh and falls back to MySQL on a
// miss, repopulating the cache. All helpers tolerate a missing Redis.
func LoadDataset(ctx context.Context) (engine.Dataset, error) {
	var snap datasetSnapshot
	hit, err := config.GetRedisObject(datasetCacheKey, &snap)
	if err != nil {
		config.LogError(config.GetLogger(), "models", "LoadDataset", "GetRedisObject", nil, err)
	}
	if hit && err == nil {
		return snapshotToDataset(snap), nil
	}

	snap, err = loadSnapshotFromDB(ctx)
	if err != nil {
		return engine.Dataset{}, err
	}
	if err := config.SetRedisObject(datasetCacheKey, snap, config.DatasetCacheTTL()); err != nil {
		config.LogError(config.GetLogger(), "models", "LoadDataset", "SetRedisObject", nil, err)
	}
	return snapshotToDataset(snap), nil
}

// InvalidateDatasetCache drops the Redis snapshot; the next LoadDataset
// reloads from MySQL. Called after a sync run lands new rows.
func InvalidateDatasetCache() {
	if err := config.RemoveRedisKey(datasetCacheKey); err != nil {
		config.LogError(config.GetLogger(), "models", "InvalidateDatasetCache", "RemoveRedisKey", nil, err)
	}
}

func loadSnapshotFromDB(ctx context.Context) (datasetSnapshot, error) {
	shipments, err := loadTableRows(ctx, "shipments")
	if err != nil {
		return datasetSnapshot{}, err
	}
	items, err := loadTableRows(ctx, "shipment_items")
	if err != nil {
		return datasetSnapshot{}, err
	}
	clients, err := loadTableRows(ctx, "clients")
	if err != nil {
		return datasetSnapshot{}, err
	}
	return datasetSnapshot{Shipments: shipments, Items: items, Clients: clients}, nil
}

// loadTableRows reads a whole collection as raw column→value rows, ordered
// by id so collection enumeration stays deterministic.
func loadTableRows(ctx context.Context, table string) ([]map[string]string, error) {
	var raw []map[string]interface{}
	db := config.GetDB()
	if err := db.WithContext(ctx).Table(table).Order("id").Find(&raw).Error; err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(raw))
	for _, r := range raw {
		row := make(map[string]string, len(r))
		for col, v := range r {
			row[col] = utils.ScalarToString(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func snapshotToDataset(snap datasetSnapshot) engine.Dataset {
	return engine.Dataset{
		Shipments: rowsToRecords(snap.Shipments),
		Items:     rowsToRecords(snap.Items),
		Clients:   rowsToRecords(snap.Clients),
	}
}

func rowsToRecords(rows []map[string]string) []engine.Record {
	records := make([]engine.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, engine.NewRecordFromStrings(row))
	}
	return records
}
