package models

// Client is the account row keyed by the code carried on shipments.
// Its fields win over primary and item fields of the same name during
// aggregation (the account master data is the freshest contact source).
type Client struct {
	ID              int    `gorm:"primary_key" json:"id"`
	Code            string `gorm:"column:code;uniqueIndex" json:"code"`
	ReceiverName    string `gorm:"column:receiver_name" json:"receiver_name"`
	ReceiverAddress string `gorm:"column:receiver_address" json:"receiver_address"`
	ReceiverPhone   string `gorm:"column:receiver_phone" json:"receiver_phone"`
	ContactEmail    string `gorm:"column:contact_email" json:"contact_email"`
	CountryCode     string `gorm:"column:country_code" json:"country_code"`
}
