package models

import "github.com/shopspring/decimal"

// ShipmentItem is the product row linked to a shipment by the
// system-generated shipment reference. One item row per shipment in the
// feed; the engine overlays it onto the primary record during aggregation.
type ShipmentItem struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	ShipmentRef        string          `gorm:"column:shipment_ref;uniqueIndex" json:"shipment_ref"`
	Description        string          `gorm:"column:description" json:"description"`
	NatureOfGoods      string          `gorm:"column:nature_of_goods" json:"nature_of_goods"`
	ProperShippingName string          `gorm:"column:proper_shipping_name" json:"proper_shipping_name"`
	HsCode             string          `gorm:"column:hs_code" json:"hs_code"`
	UnNumber           string          `gorm:"column:un_number" json:"un_number"`
	DgClass            string          `gorm:"column:dg_class" json:"dg_class"`
	PackingGroup       string          `gorm:"column:packing_group" json:"packing_group"`
	FlashPoint         string          `gorm:"column:flash_point" json:"flash_point"`
	CustomsValue       decimal.Decimal `gorm:"column:customs_value;type:decimal(20,6)" json:"customs_value"`
	InsuredValue       decimal.Decimal `gorm:"column:insured_value;type:decimal(20,6)" json:"insured_value"`
}
