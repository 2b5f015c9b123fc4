package engine

import (
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
)

// CandidateTable maps a canonical form-field key to the ordered list of
// source-record keys that may carry its value. Document-scoped entries are
// consulted before the shared common scope; within a scope candidates are
// tried strictly in listed order and the first present-and-non-empty value
// wins.
//
// The table is static configuration. A field with no entry in either scope
// simply cannot be auto-filled; that is a normal outcome, not an error.
type CandidateTable struct {
	Documents map[string]map[string][]string
	Common    map[string][]string
}

// Lookup returns the candidate list for a field on a document type:
// the document-scoped entry when one exists, otherwise the common entry,
// otherwise nil.
func (t CandidateTable) Lookup(docType, fieldKey string) []string {
	if doc, ok := t.Documents[docType]; ok {
		if candidates, ok := doc[fieldKey]; ok {
			return candidates
		}
	}
	return t.Common[fieldKey]
}

// UnmappedFields reports schema fields that have zero candidates in any
// scope, per document type. The reference input field is excluded since it
// is never auto-filled. A non-empty result indicates a configuration gap:
// the field exists on the form but nothing can ever fill it.
func (t CandidateTable) UnmappedFields(reg *schema.Registry) map[string][]string {
	gaps := make(map[string][]string)
	for _, p := range reg.All() {
		for _, f := range p.Fields {
			if f.Key == p.ReferenceKey {
				continue
			}
			if len(t.Lookup(p.Type, f.Key)) == 0 {
				gaps[p.Type] = append(gaps[p.Type], f.Key)
			}
		}
	}
	return gaps
}

// LogUnmappedFields emits the development-time diagnostic for candidate
// coverage gaps. Call once at startup.
func (t CandidateTable) LogUnmappedFields(logger *logrus.Logger, reg *schema.Registry) {
	for docType, fields := range t.UnmappedFields(reg) {
		logger.WithFields(logrus.Fields{
			"module":       "engine",
			"documentType": docType,
			"fields":       fields,
		}).Warn("schema fields have no candidate source keys and will never auto-fill")
	}
}

// DefaultCandidateTable returns the mapping for the feeds the sync layer
// populates. Candidate order is precedence order: the most authoritative
// source key first, legacy spellings after.
func DefaultCandidateTable() CandidateTable {
	return CandidateTable{
		Documents: map[string]map[string][]string{
			// On a commercial invoice the invoice number must be the real
			// invoice number; never fall back to the shipment reference.
			"commercial_invoice": {
				"invoice_no": {"INVOICE_NO", "REF_NO"},
			},
			"air_waybill": {
				"goods_description": {"NATURE_OF_GOODS", "GOODS_DESCRIPTION", "DESCRIPTION"},
			},
			"bill_of_lading": {
				"vessel_flight": {"VESSEL", "VOYAGE"},
			},
			"customs_declaration": {
				"total_amount": {"CUSTOMS_VALUE", "INVOICE_TOTAL", "TOTAL_AMOUNT"},
			},
			"insurance_certificate": {
				"insurance_value": {"INSURED_VALUE", "CIF_VALUE", "INVOICE_TOTAL"},
			},
			"dangerous_goods_declaration": {
				"goods_description": {"PROPER_SHIPPING_NAME", "GOODS_DESCRIPTION", "DESCRIPTION"},
			},
		},
		Common: map[string][]string{
			"invoice_no":             {"INVOICE_NO", "REFERANCE", "REF_NO", "DOC_NO"},
			"invoice_date":           {"INVOICE_DATE", "DOC_DATE", "CREATED_DATE"},
			"order_no":               {"ORDER_NO", "PO_NUMBER", "ORDER_REF"},
			"exporter_name":          {"SHIPPER_NAME", "EXPORTER_NAME", "SENDER_NAME"},
			"exporter_address":       {"SHIPPER_ADDRESS", "EXPORTER_ADDRESS", "SENDER_ADDRESS"},
			"exporter_phone":         {"SHIPPER_PHONE", "CONTACT_PHONE", "PHONE"},
			"exporter_email":         {"SHIPPER_EMAIL", "CONTACT_EMAIL", "EMAIL"},
			"consignee_name":         {"CONSIGNEE_NAME", "RECEIVER_NAME", "CUSTOMER_NAME", "CLIENT_NAME"},
			"consignee_address":      {"CONSIGNEE_ADDRESS", "RECEIVER_ADDRESS", "DELIVERY_ADDRESS"},
			"consignee_phone":        {"CONSIGNEE_PHONE", "RECEIVER_PHONE"},
			"notify_party":           {"NOTIFY_PARTY", "NOTIFY"},
			"account_code":           {"CLIENT_CODE", "ACCOUNT_CODE", "CUSTOMER_CODE"},
			"country_of_origin":      {"ORIGIN_COUNTRY", "COUNTRY_OF_ORIGIN", "ORIGIN"},
			"country_of_destination": {"DESTINATION_COUNTRY", "COUNTRY_OF_DESTINATION", "DESTINATION"},
			"port_of_loading":        {"LOADING_PORT", "POL", "ORIGIN_PORT"},
			"port_of_discharge":      {"DISCHARGE_PORT", "POD", "DESTINATION_PORT"},
			"vessel_flight":          {"VESSEL", "FLIGHT_NO", "VOYAGE"},
			"awb_no":                 {"AWB_NUMBER", "AWB_NO", "TRACKING_NO"},
			"bl_no":                  {"BL_NUMBER", "BL_NO", "LADING_NO"},
			"container_no":           {"CONTAINER_NO", "CONTAINER"},
			"seal_no":                {"SEAL_NO", "SEAL"},
			"incoterm":               {"INCOTERM", "DELIVERY_TERM", "TRADE_TERM"},
			"currency":               {"CURRENCY", "CURRENCY_CODE"},
			"total_amount":           {"INVOICE_TOTAL", "TOTAL_AMOUNT", "GRAND_TOTAL", "AMOUNT"},
			"freight_charge":         {"FREIGHT_CHARGE", "FREIGHT", "FREIGHT_COST"},
			"insurance_value":        {"INSURANCE_VALUE", "INSURED_VALUE"},
			"gross_weight":           {"GROSS_WEIGHT_KG", "GROSS_WEIGHT", "WEIGHT_KG", "WEIGHT"},
			"net_weight":             {"NET_WEIGHT_KG", "NET_WEIGHT"},
			"packages_count":         {"PACKAGE_COUNT", "PACKAGES", "PIECES", "QTY"},
			"package_kind":           {"PACKAGE_KIND", "PACKAGE_TYPE", "PACKING"},
			"goods_description":      {"GOODS_DESCRIPTION", "DESCRIPTION", "COMMODITY", "PRODUCT_NAME"},
			"hs_code":                {"HS_CODE", "TARIFF_CODE", "COMMODITY_CODE"},
			"marks_numbers":          {"MARKS", "MARKS_NUMBERS", "SHIPPING_MARKS"},
			"payment_terms":          {"PAYMENT_TERMS", "PAYMENT_TERM", "TERMS"},
			"shipped_date":           {"SHIPPED_ON", "SHIP_DATE", "DEPARTURE_DATE"},
			"issue_date":             {"ISSUE_DATE", "DOC_DATE"},
			"issue_place":            {"ISSUE_PLACE", "CITY"},
			"un_number":              {"UN_NUMBER", "UN_NO"},
			"dg_class":               {"DG_CLASS", "IMO_CLASS", "HAZARD_CLASS"},
			"packing_group":          {"PACKING_GROUP", "PG"},
			"flash_point":            {"FLASH_POINT", "FLASHPOINT_C"},
			"declarant_name":         {"DECLARANT_NAME", "DECLARANT", "BROKER_NAME"},
			"customs_regime":         {"CUSTOMS_REGIME", "REGIME_CODE"},
			"policy_no":              {"POLICY_NO", "POLICY_NUMBER"},
		},
	}
}
