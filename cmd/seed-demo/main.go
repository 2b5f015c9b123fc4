// seed-demo loads a small set of demo shipments, items and client accounts
// so the document center can be exercised without a freight API connection.
//
// Usage (from backend directory):
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/models"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	models.MigrateTable()

	shipments := []models.Shipment{
		{
			Referance: "SHP-1001", AwbNumber: "157-12345675", OrderNo: "PO-889",
			InvoiceNo: "INV-2024-0042", InvoiceDate: "2024-03-18",
			InvoiceTotal: decimal.RequireFromString("15400.50"), Currency: "USD", Incoterm: "FOB",
			PaymentTerms: "30 days net", ShipperName: "Golden Lotus Trading",
			ShipperAddress: "12 Strand Rd, Yangon", ShipperPhone: "+95 1 230 5678",
			ShipperEmail: "export@goldenlotus.example", ConsigneeName: "Hamburg Imports GmbH",
			ClientCode: "HAM01", OriginCountry: "Myanmar", DestinationCountry: "Germany",
			LoadingPort: "Yangon", DischargePort: "Hamburg", Vessel: "MV Kota Lima V.204",
			ContainerNo: "TCLU7281456", SealNo: "SL88213",
			GrossWeightKg: decimal.RequireFromString("8450"), NetWeightKg: decimal.RequireFromString("7900"),
			PackageCount: 310, PackageKind: "Cartons", Marks: "HAM01 / HAMBURG / 1-310",
			ShippedOn: "2024-03-20", SyncedAt: time.Now().UTC(),
		},
		{
			Referance: "SHP-1002", BlNumber: "MAEU556677889",
			InvoiceNo: "INV-2024-0043", InvoiceDate: "2024-03-22",
			InvoiceTotal: decimal.RequireFromString("9200"), Currency: "EUR", Incoterm: "CIF",
			ShipperName: "Golden Lotus Trading", ConsigneeName: "Rotterdam Foods BV",
			ClientCode: "ROT02", OriginCountry: "Myanmar", DestinationCountry: "Netherlands",
			LoadingPort: "Yangon", DischargePort: "Rotterdam", Vessel: "MV Ever Glory V.091",
			GrossWeightKg: decimal.RequireFromString("12100"), NetWeightKg: decimal.RequireFromString("11400"),
			PackageCount: 480, PackageKind: "Bags", ShippedOn: "2024-03-25", SyncedAt: time.Now().UTC(),
		},
	}
	items := []models.ShipmentItem{
		{
			ShipmentRef: "SHP-1001", Description: "Teak garden furniture",
			NatureOfGoods: "Wooden furniture, knocked down", HsCode: "940360",
			CustomsValue: decimal.RequireFromString("15400.50"), InsuredValue: decimal.RequireFromString("16900"),
		},
		{
			ShipmentRef: "SHP-1002", Description: "Dried beans, sealed bags",
			HsCode: "071339", CustomsValue: decimal.RequireFromString("9200"),
		},
	}
	clients := []models.Client{
		{
			Code: "HAM01", ReceiverName: "Hamburg Imports GmbH",
			ReceiverAddress: "Speicherstadt 12, Hamburg", ReceiverPhone: "+49 40 3344 5566",
			ContactEmail: "ops@hamburg-imports.example", CountryCode: "DE",
		},
		{
			Code: "ROT02", ReceiverName: "Rotterdam Foods BV",
			ReceiverAddress: "Maasvlakte 8, Rotterdam", ContactEmail: "import@rotterdamfoods.example",
			CountryCode: "NL",
		},
	}

	for _, s := range shipments {
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "referance"}}, UpdateAll: true,
		}).Create(&s).Error; err != nil {
			fmt.Fprintf(os.Stderr, "seed shipment %s: %v\n", s.Referance, err)
			os.Exit(1)
		}
	}
	for _, i := range items {
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "shipment_ref"}}, UpdateAll: true,
		}).Create(&i).Error; err != nil {
			fmt.Fprintf(os.Stderr, "seed item %s: %v\n", i.ShipmentRef, err)
			os.Exit(1)
		}
	}
	for _, cl := range clients {
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "code"}}, UpdateAll: true,
		}).Create(&cl).Error; err != nil {
			fmt.Fprintf(os.Stderr, "seed client %s: %v\n", cl.Code, err)
			os.Exit(1)
		}
	}

	config.ConnectRedisWithRetry()
	models.InvalidateDatasetCache()
	fmt.Printf("seeded %d shipments, %d items, %d clients\n", len(shipments), len(items), len(clients))
}
