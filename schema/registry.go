package schema

// The registry is static configuration: the set of regulatory document types
// the document center renders, each with its field list and required-field
// subset. The resolution engine treats all of this as immutable input.

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeEmail  FieldType = "email"
	FieldTypePhone  FieldType = "phone"
)

// Field is one data-entry control on a document form.
// Rule is an optional extra validator tag (e.g. "oneof=EXW FOB CIF",
// "max=35") applied after the type-level shape check.
// Min/Max bound number fields; they are decimal strings so money and
// weight limits survive without float drift.
type Field struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  FieldType `json:"type"`
	Rule  string    `json:"rule,omitempty"`
	Min   string    `json:"min,omitempty"`
	Max   string    `json:"max,omitempty"`
}

// Profile is one document type: its form fields plus the subset that must be
// filled before the document may be generated. ReferenceKey names the
// free-text reference input that drives auto-fill; the resolver never
// overwrites it.
type Profile struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	ReferenceKey string   `json:"reference_key"`
	Fields       []Field  `json:"fields"`
	Required     []string `json:"required"`
}

func (p Profile) Field(key string) (Field, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

func (p Profile) IsRequired(key string) bool {
	for _, k := range p.Required {
		if k == key {
			return true
		}
	}
	return false
}

func (p Profile) FieldKeys() []string {
	keys := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Registry holds every document profile, keyed by document type.
type Registry struct {
	profiles map[string]Profile
	order    []string
}

func NewRegistry(profiles []Profile) *Registry {
	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if _, dup := r.profiles[p.Type]; dup {
			continue
		}
		r.profiles[p.Type] = p
		r.order = append(r.order, p.Type)
	}
	return r
}

// Get returns the profile for a document type. Unknown types are a normal
// not-found result, not an error.
func (r *Registry) Get(docType string) (Profile, bool) {
	p, ok := r.profiles[docType]
	return p, ok
}

// All returns profiles in registration order.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.profiles[t])
	}
	return out
}

// Default returns the registry for the document types the center ships with.
func Default() *Registry {
	return NewRegistry(defaultProfiles())
}

// catalog is the shared field catalog. Profiles pick from it by key so a
// field means the same thing on every document it appears on.
var catalog = map[string]Field{
	"reference":              {Key: "reference", Label: "Reference", Type: FieldTypeText},
	"invoice_no":             {Key: "invoice_no", Label: "Invoice No", Type: FieldTypeText, Rule: "max=35"},
	"invoice_date":           {Key: "invoice_date", Label: "Invoice Date", Type: FieldTypeDate},
	"order_no":               {Key: "order_no", Label: "Order No", Type: FieldTypeText, Rule: "max=35"},
	"exporter_name":          {Key: "exporter_name", Label: "Exporter", Type: FieldTypeText},
	"exporter_address":       {Key: "exporter_address", Label: "Exporter Address", Type: FieldTypeText},
	"exporter_phone":         {Key: "exporter_phone", Label: "Exporter Phone", Type: FieldTypePhone},
	"exporter_email":         {Key: "exporter_email", Label: "Exporter Email", Type: FieldTypeEmail},
	"consignee_name":         {Key: "consignee_name", Label: "Consignee", Type: FieldTypeText},
	"consignee_address":      {Key: "consignee_address", Label: "Consignee Address", Type: FieldTypeText},
	"consignee_phone":        {Key: "consignee_phone", Label: "Consignee Phone", Type: FieldTypePhone},
	"notify_party":           {Key: "notify_party", Label: "Notify Party", Type: FieldTypeText},
	"account_code":           {Key: "account_code", Label: "Account Code", Type: FieldTypeText, Rule: "alphanum,max=16"},
	"country_of_origin":      {Key: "country_of_origin", Label: "Country of Origin", Type: FieldTypeText},
	"country_of_destination": {Key: "country_of_destination", Label: "Country of Destination", Type: FieldTypeText},
	"port_of_loading":        {Key: "port_of_loading", Label: "Port of Loading", Type: FieldTypeText},
	"port_of_discharge":      {Key: "port_of_discharge", Label: "Port of Discharge", Type: FieldTypeText},
	"vessel_flight":          {Key: "vessel_flight", Label: "Vessel / Flight", Type: FieldTypeText},
	"awb_no":                 {Key: "awb_no", Label: "AWB No", Type: FieldTypeText, Rule: "max=20"},
	"bl_no":                  {Key: "bl_no", Label: "B/L No", Type: FieldTypeText, Rule: "max=30"},
	"container_no":           {Key: "container_no", Label: "Container No", Type: FieldTypeText, Rule: "alphanum,max=11"},
	"seal_no":                {Key: "seal_no", Label: "Seal No", Type: FieldTypeText, Rule: "max=20"},
	"incoterm":               {Key: "incoterm", Label: "Incoterm", Type: FieldTypeText, Rule: "oneof=EXW FCA FAS FOB CFR CIF CPT CIP DAP DPU DDP"},
	"currency":               {Key: "currency", Label: "Currency", Type: FieldTypeText, Rule: "len=3,alpha"},
	"total_amount":           {Key: "total_amount", Label: "Total Amount", Type: FieldTypeNumber, Min: "0"},
	"freight_charge":         {Key: "freight_charge", Label: "Freight Charge", Type: FieldTypeNumber, Min: "0"},
	"insurance_value":        {Key: "insurance_value", Label: "Insured Value", Type: FieldTypeNumber, Min: "0"},
	"gross_weight":           {Key: "gross_weight", Label: "Gross Weight (kg)", Type: FieldTypeNumber, Min: "0", Max: "100000"},
	"net_weight":             {Key: "net_weight", Label: "Net Weight (kg)", Type: FieldTypeNumber, Min: "0", Max: "100000"},
	"packages_count":         {Key: "packages_count", Label: "No. of Packages", Type: FieldTypeNumber, Min: "1", Max: "100000"},
	"package_kind":           {Key: "package_kind", Label: "Kind of Packages", Type: FieldTypeText},
	"goods_description":      {Key: "goods_description", Label: "Description of Goods", Type: FieldTypeText},
	"hs_code":                {Key: "hs_code", Label: "HS Code", Type: FieldTypeText, Rule: "numeric,min=6,max=10"},
	"marks_numbers":          {Key: "marks_numbers", Label: "Marks & Numbers", Type: FieldTypeText},
	"payment_terms":          {Key: "payment_terms", Label: "Payment Terms", Type: FieldTypeText},
	"un_number":              {Key: "un_number", Label: "UN Number", Type: FieldTypeText, Rule: "numeric,len=4"},
	"dg_class":               {Key: "dg_class", Label: "DG Class", Type: FieldTypeText, Rule: "max=5"},
	"packing_group":          {Key: "packing_group", Label: "Packing Group", Type: FieldTypeText, Rule: "oneof=I II III"},
	"flash_point":            {Key: "flash_point", Label: "Flash Point (°C)", Type: FieldTypeNumber, Min: "-100", Max: "400"},
	"issue_place":            {Key: "issue_place", Label: "Place of Issue", Type: FieldTypeText},
	"issue_date":             {Key: "issue_date", Label: "Date of Issue", Type: FieldTypeDate},
	"shipped_date":           {Key: "shipped_date", Label: "Shipped On Board Date", Type: FieldTypeDate},
	"declarant_name":         {Key: "declarant_name", Label: "Declarant", Type: FieldTypeText},
	"customs_regime":         {Key: "customs_regime", Label: "Customs Regime", Type: FieldTypeText, Rule: "max=10"},
	"policy_no":              {Key: "policy_no", Label: "Policy No", Type: FieldTypeText, Rule: "max=30"},
}

func pick(keys ...string) []Field {
	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		f, ok := catalog[k]
		if !ok {
			// A profile naming a field outside the catalog is a programming
			// error, not a data condition.
			panic("schema: unknown catalog field " + k)
		}
		fields = append(fields, f)
	}
	return fields
}

func defaultProfiles() []Profile {
	return []Profile{
		{
			Type: "commercial_invoice", Name: "Commercial Invoice", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "invoice_date", "order_no", "exporter_name", "exporter_address",
				"exporter_phone", "exporter_email", "consignee_name", "consignee_address", "account_code",
				"country_of_origin", "country_of_destination", "incoterm", "currency", "total_amount",
				"payment_terms", "goods_description", "hs_code", "gross_weight", "net_weight",
				"packages_count", "package_kind"),
			Required: []string{"invoice_no", "invoice_date", "exporter_name", "consignee_name", "currency", "total_amount", "goods_description"},
		},
		{
			Type: "proforma_invoice", Name: "Proforma Invoice", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "invoice_date", "exporter_name", "exporter_address",
				"consignee_name", "consignee_address", "country_of_destination", "incoterm", "currency",
				"total_amount", "payment_terms", "goods_description"),
			Required: []string{"invoice_no", "exporter_name", "consignee_name", "currency", "total_amount"},
		},
		{
			Type: "packing_list", Name: "Packing List", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "invoice_date", "exporter_name", "consignee_name",
				"consignee_address", "goods_description", "marks_numbers", "packages_count", "package_kind",
				"gross_weight", "net_weight"),
			Required: []string{"invoice_no", "exporter_name", "consignee_name", "packages_count", "gross_weight"},
		},
		{
			Type: "certificate_of_origin", Name: "Certificate of Origin", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "invoice_date", "exporter_name", "exporter_address",
				"consignee_name", "consignee_address", "country_of_origin", "country_of_destination",
				"vessel_flight", "goods_description", "marks_numbers", "packages_count", "gross_weight",
				"issue_place", "issue_date"),
			Required: []string{"exporter_name", "consignee_name", "country_of_origin", "goods_description", "issue_date"},
		},
		{
			Type: "shippers_letter_of_instruction", Name: "Shipper's Letter of Instruction", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "exporter_name", "exporter_address", "exporter_phone",
				"consignee_name", "consignee_address", "notify_party", "port_of_loading", "port_of_discharge",
				"incoterm", "goods_description", "packages_count", "gross_weight", "freight_charge"),
			Required: []string{"exporter_name", "consignee_name", "port_of_discharge", "goods_description"},
		},
		{
			Type: "dangerous_goods_declaration", Name: "Dangerous Goods Declaration", ReferenceKey: "reference",
			Fields: pick("reference", "exporter_name", "consignee_name", "vessel_flight", "port_of_loading",
				"port_of_discharge", "goods_description", "un_number", "dg_class", "packing_group",
				"flash_point", "packages_count", "package_kind", "gross_weight", "net_weight"),
			Required: []string{"exporter_name", "consignee_name", "goods_description", "un_number", "dg_class", "packing_group"},
		},
		{
			Type: "air_waybill", Name: "Air Waybill", ReferenceKey: "reference",
			Fields: pick("reference", "awb_no", "exporter_name", "exporter_address", "consignee_name",
				"consignee_address", "consignee_phone", "vessel_flight", "port_of_loading", "port_of_discharge",
				"goods_description", "packages_count", "gross_weight", "freight_charge", "currency"),
			Required: []string{"awb_no", "exporter_name", "consignee_name", "port_of_discharge", "packages_count", "gross_weight"},
		},
		{
			Type: "bill_of_lading", Name: "Bill of Lading", ReferenceKey: "reference",
			Fields: pick("reference", "bl_no", "exporter_name", "consignee_name", "consignee_address",
				"notify_party", "vessel_flight", "port_of_loading", "port_of_discharge", "container_no",
				"seal_no", "goods_description", "marks_numbers", "packages_count", "package_kind",
				"gross_weight", "shipped_date"),
			Required: []string{"bl_no", "exporter_name", "consignee_name", "port_of_loading", "port_of_discharge", "goods_description"},
		},
		{
			Type: "delivery_note", Name: "Delivery Note", ReferenceKey: "reference",
			Fields: pick("reference", "order_no", "invoice_no", "exporter_name", "consignee_name",
				"consignee_address", "consignee_phone", "goods_description", "packages_count", "gross_weight"),
			Required: []string{"order_no", "consignee_name", "consignee_address"},
		},
		{
			Type: "customs_declaration", Name: "Customs Declaration", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "invoice_date", "declarant_name", "customs_regime",
				"exporter_name", "consignee_name", "country_of_origin", "country_of_destination",
				"hs_code", "goods_description", "currency", "total_amount", "gross_weight", "net_weight",
				"packages_count"),
			Required: []string{"declarant_name", "customs_regime", "hs_code", "currency", "total_amount"},
		},
		{
			Type: "insurance_certificate", Name: "Insurance Certificate", ReferenceKey: "reference",
			Fields: pick("reference", "policy_no", "invoice_no", "exporter_name", "consignee_name",
				"vessel_flight", "port_of_loading", "port_of_discharge", "goods_description", "currency",
				"insurance_value", "issue_place", "issue_date"),
			Required: []string{"policy_no", "exporter_name", "currency", "insurance_value", "issue_date"},
		},
		{
			Type: "eur1_certificate", Name: "EUR.1 Movement Certificate", ReferenceKey: "reference",
			Fields: pick("reference", "exporter_name", "exporter_address", "consignee_name", "consignee_address",
				"country_of_origin", "country_of_destination", "goods_description", "marks_numbers",
				"packages_count", "gross_weight", "invoice_no", "invoice_date", "issue_place", "issue_date"),
			Required: []string{"exporter_name", "country_of_origin", "country_of_destination", "goods_description", "issue_date"},
		},
		{
			Type: "atr_certificate", Name: "A.TR Movement Certificate", ReferenceKey: "reference",
			Fields: pick("reference", "exporter_name", "exporter_address", "consignee_name", "consignee_address",
				"country_of_destination", "goods_description", "marks_numbers", "packages_count",
				"gross_weight", "invoice_no", "issue_place", "issue_date"),
			Required: []string{"exporter_name", "consignee_name", "goods_description", "issue_date"},
		},
		{
			Type: "weight_certificate", Name: "Weight Certificate", ReferenceKey: "reference",
			Fields: pick("reference", "invoice_no", "exporter_name", "consignee_name", "container_no",
				"goods_description", "packages_count", "gross_weight", "net_weight", "issue_place", "issue_date"),
			Required: []string{"exporter_name", "gross_weight", "net_weight"},
		},
	}
}
