package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment is one row of the primary collection the sync layer maintains.
// Column names mirror the upstream freight feed, including its legacy
// REFERANCE spelling; the resolution engine addresses columns
// case-insensitively, so the quirk stays contained to storage.
type Shipment struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	Referance          string          `gorm:"column:referance;uniqueIndex" json:"referance"`
	AwbNumber          string          `gorm:"column:awb_number;index" json:"awb_number"`
	BlNumber           string          `gorm:"column:bl_number" json:"bl_number"`
	OrderNo            string          `gorm:"column:order_no" json:"order_no"`
	InvoiceNo          string          `gorm:"column:invoice_no" json:"invoice_no"`
	InvoiceDate        string          `gorm:"column:invoice_date" json:"invoice_date"`
	InvoiceTotal       decimal.Decimal `gorm:"column:invoice_total;type:decimal(20,6)" json:"invoice_total"`
	FreightCharge      decimal.Decimal `gorm:"column:freight_charge;type:decimal(20,6)" json:"freight_charge"`
	Currency           string          `gorm:"column:currency" json:"currency"`
	Incoterm           string          `gorm:"column:incoterm" json:"incoterm"`
	PaymentTerms       string          `gorm:"column:payment_terms" json:"payment_terms"`
	ShipperName        string          `gorm:"column:shipper_name" json:"shipper_name"`
	ShipperAddress     string          `gorm:"column:shipper_address" json:"shipper_address"`
	ShipperPhone       string          `gorm:"column:shipper_phone" json:"shipper_phone"`
	ShipperEmail       string          `gorm:"column:shipper_email" json:"shipper_email"`
	ConsigneeName      string          `gorm:"column:consignee_name" json:"consignee_name"`
	ConsigneeAddress   string          `gorm:"column:consignee_address" json:"consignee_address"`
	ConsigneePhone     string          `gorm:"column:consignee_phone" json:"consignee_phone"`
	NotifyParty        string          `gorm:"column:notify_party" json:"notify_party"`
	ClientCode         string          `gorm:"column:client_code;index" json:"client_code"`
	OriginCountry      string          `gorm:"column:origin_country" json:"origin_country"`
	DestinationCountry string          `gorm:"column:destination_country" json:"destination_country"`
	LoadingPort        string          `gorm:"column:loading_port" json:"loading_port"`
	DischargePort      string          `gorm:"column:discharge_port" json:"discharge_port"`
	Vessel             string          `gorm:"column:vessel" json:"vessel"`
	ContainerNo        string          `gorm:"column:container_no" json:"container_no"`
	SealNo             string          `gorm:"column:seal_no" json:"seal_no"`
	GrossWeightKg      decimal.Decimal `gorm:"column:gross_weight_kg;type:decimal(12,3)" json:"gross_weight_kg"`
	NetWeightKg        decimal.Decimal `gorm:"column:net_weight_kg;type:decimal(12,3)" json:"net_weight_kg"`
	PackageCount       int             `gorm:"column:package_count" json:"package_count"`
	PackageKind        string          `gorm:"column:package_kind" json:"package_kind"`
	Marks              string          `gorm:"column:marks" json:"marks"`
	ShippedOn          string          `gorm:"column:shipped_on" json:"shipped_on"`
	SyncedAt           time.Time       `gorm:"column:synced_at" json:"synced_at"`
}
