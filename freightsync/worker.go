package freightsync

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"

	"bitbucket.org/mmdatafocus/tradedocs_backend/config"
	"bitbucket.org/mmdatafocus/tradedocs_backend/models"
)

const syncLockKey = "tradedocs:freightsync:lock"

var ErrSyncAlreadyRunning = errors.New("a sync run is already in progress")

type freightShipment struct {
	Referance          string      `json:"referance"`
	AwbNumber          string      `json:"awb_number"`
	BlNumber           string      `json:"bl_number"`
	OrderNo            string      `json:"order_no"`
	InvoiceNo          string      `json:"invoice_no"`
	InvoiceDate        string      `json:"invoice_date"`
	InvoiceTotal       json.Number `json:"invoice_total"`
	FreightCharge      json.Number `json:"freight_charge"`
	Currency           string      `json:"currency"`
	Incoterm           string      `json:"incoterm"`
	PaymentTerms       string      `json:"payment_terms"`
	ShipperName        string      `json:"shipper_name"`
	ShipperAddress     string      `json:"shipper_address"`
	ShipperPhone       string      `json:"shipper_phone"`
	ShipperEmail       string      `json:"shipper_email"`
	ConsigneeName      string      `json:"consignee_name"`
	ConsigneeAddress   string      `json:"consignee_address"`
	ConsigneePhone     string      `json:"consignee_phone"`
	NotifyParty        string      `json:"notify_party"`
	ClientCode         string      `json:"client_code"`
	OriginCountry      string      `json:"origin_country"`
	DestinationCountry string      `json:"destination_country"`
	LoadingPort        string      `json:"loading_port"`
	DischargePort      string      `json:"discharge_port"`
	Vessel             string      `json:"vessel"`
	ContainerNo        string      `json:"container_no"`
	SealNo             string      `json:"seal_no"`
	GrossWeightKg      json.Number `json:"gross_weight_kg"`
	NetWeightKg        json.Number `json:"net_weight_kg"`
	PackageCount       json.Number `json:"package_count"`
	PackageKind        string      `json:"package_kind"`
	Marks              string      `json:"marks"`
	ShippedOn          string      `json:"shipped_on"`
}

type freightItem struct {
	ShipmentRef        string      `json:"shipment_ref"`
	Description        string      `json:"description"`
	NatureOfGoods      string      `json:"nature_of_goods"`
	ProperShippingName string      `json:"proper_shipping_name"`
	HsCode             string      `json:"hs_code"`
	UnNumber           string      `json:"un_number"`
	DgClass            string      `json:"dg_class"`
	PackingGroup       string      `json:"packing_group"`
	FlashPoint         string      `json:"flash_point"`
	CustomsValue       json.Number `json:"customs_value"`
	InsuredValue       json.Number `json:"insured_value"`
}

type freightAccount struct {
	Code            string `json:"code"`
	ReceiverName    string `json:"receiver_name"`
	ReceiverAddress string `json:"receiver_address"`
	ReceiverPhone   string `json:"receiver_phone"`
	ContactEmail    string `json:"contact_email"`
	CountryCode     string `json:"country_code"`
}

// RunSync performs one full pull: shipments, items, accounts. Only one run
// may be in flight at a time across all instances; the Redis lock enforces
// that and ErrSyncAlreadyRunning reports a busy peer. The dataset snapshot
// cache is invalidated after a successful run.
func RunSync(ctx context.Context) (*models.SyncRun, error) {
	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, syncLockKey, 10*time.Minute, nil)
		if err == redislock.ErrNotObtained {
			return nil, ErrSyncAlreadyRunning
		}
		if err != nil {
			return nil, err
		}
		defer lock.Release(context.WithoutCancel(ctx))
	}

	logger := config.GetLogger()
	db := config.GetDB()

	run := &models.SyncRun{Status: models.SyncRunStatusRunning, StartedAt: time.Now().UTC()}
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}

	client, err := newFreightClient()
	if err != nil {
		return failRun(ctx, run, err)
	}

	shipmentCount, err := syncShipments(ctx, client)
	if err != nil {
		config.LogError(logger, "freightsync", "RunSync", "syncShipments", nil, err)
		return failRun(ctx, run, err)
	}
	run.ShipmentCount = shipmentCount

	itemCount, err := syncItems(ctx, client)
	if err != nil {
		config.LogError(logger, "freightsync", "RunSync", "syncItems", nil, err)
		return failRun(ctx, run, err)
	}
	run.ItemCount = itemCount

	clientCount, err := syncAccounts(ctx, client)
	if err != nil {
		config.LogError(logger, "freightsync", "RunSync", "syncAccounts", nil, err)
		return failRun(ctx, run, err)
	}
	run.ClientCount = clientCount

	now := time.Now().UTC()
	run.Status = models.SyncRunStatusDone
	run.FinishedAt = &now
	if err := db.WithContext(ctx).Save(run).Error; err != nil {
		return nil, err
	}

	models.InvalidateDatasetCache()
	return run, nil
}

func failRun(ctx context.Context, run *models.SyncRun, cause error) (*models.SyncRun, error) {
	now := time.Now().UTC()
	run.Status = models.SyncRunStatusFailed
	run.FinishedAt = &now
	run.LastError = cause.Error()
	if err := config.GetDB().WithContext(ctx).Save(run).Error; err != nil {
		config.LogError(config.GetLogger(), "freightsync", "failRun", "Save", nil, err)
	}
	return run, cause
}

func syncShipments(ctx context.Context, client *freightClient) (int, error) {
	raw, err := client.fetchAll(ctx, "/v1/shipments")
	if err != nil {
		return 0, err
	}
	db := config.GetDB()
	count := 0
	for _, msg := range raw {
		var fs freightShipment
		if err := json.Unmarshal(msg, &fs); err != nil {
			return count, err
		}
		if fs.Referance == "" {
			continue
		}
		row := models.Shipment{
			Referance:          fs.Referance,
			AwbNumber:          fs.AwbNumber,
			BlNumber:           fs.BlNumber,
			OrderNo:            fs.OrderNo,
			InvoiceNo:          fs.InvoiceNo,
			InvoiceDate:        fs.InvoiceDate,
			InvoiceTotal:       toDecimal(fs.InvoiceTotal),
			FreightCharge:      toDecimal(fs.FreightCharge),
			Currency:           fs.Currency,
			Incoterm:           fs.Incoterm,
			PaymentTerms:       fs.PaymentTerms,
			ShipperName:        fs.ShipperName,
			ShipperAddress:     fs.ShipperAddress,
			ShipperPhone:       fs.ShipperPhone,
			ShipperEmail:       fs.ShipperEmail,
			ConsigneeName:      fs.ConsigneeName,
			ConsigneeAddress:   fs.ConsigneeAddress,
			ConsigneePhone:     fs.ConsigneePhone,
			NotifyParty:        fs.NotifyParty,
			ClientCode:         fs.ClientCode,
			OriginCountry:      fs.OriginCountry,
			DestinationCountry: fs.DestinationCountry,
			LoadingPort:        fs.LoadingPort,
			DischargePort:      fs.DischargePort,
			Vessel:             fs.Vessel,
			ContainerNo:        fs.ContainerNo,
			SealNo:             fs.SealNo,
			GrossWeightKg:      toDecimal(fs.GrossWeightKg),
			NetWeightKg:        toDecimal(fs.NetWeightKg),
			PackageCount:       toInt(fs.PackageCount),
			PackageKind:        fs.PackageKind,
			Marks:              fs.Marks,
			ShippedOn:          fs.ShippedOn,
			SyncedAt:           time.Now().UTC(),
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "referance"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func syncItems(ctx context.Context, client *freightClient) (int, error) {
	raw, err := client.fetchAll(ctx, "/v1/shipment-items")
	if err != nil {
		return 0, err
	}
	db := config.GetDB()
	count := 0
	for _, msg := range raw {
		var fi freightItem
		if err := json.Unmarshal(msg, &fi); err != nil {
			return count, err
		}
		if fi.ShipmentRef == "" {
			continue
		}
		row := models.ShipmentItem{
			ShipmentRef:        fi.ShipmentRef,
			Description:        fi.Description,
			NatureOfGoods:      fi.NatureOfGoods,
			ProperShippingName: fi.ProperShippingName,
			HsCode:             fi.HsCode,
			UnNumber:           fi.UnNumber,
			DgClass:            fi.DgClass,
			PackingGroup:       fi.PackingGroup,
			FlashPoint:         fi.FlashPoint,
			CustomsValue:       toDecimal(fi.CustomsValue),
			InsuredValue:       toDecimal(fi.InsuredValue),
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shipment_ref"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func syncAccounts(ctx context.Context, client *freightClient) (int, error) {
	raw, err := client.fetchAll(ctx, "/v1/accounts")
	if err != nil {
		return 0, err
	}
	db := config.GetDB()
	count := 0
	for _, msg := range raw {
		var fa freightAccount
		if err := json.Unmarshal(msg, &fa); err != nil {
			return count, err
		}
		if fa.Code == "" {
			continue
		}
		row := models.Client{
			Code:            fa.Code,
			ReceiverName:    fa.ReceiverName,
			ReceiverAddress: fa.ReceiverAddress,
			ReceiverPhone:   fa.ReceiverPhone,
			ContactEmail:    fa.ContactEmail,
			CountryCode:     fa.CountryCode,
		}
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).Create(&row).Error
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func toDecimal(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toInt(n json.Number) int {
	if n == "" {
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(i)
}
