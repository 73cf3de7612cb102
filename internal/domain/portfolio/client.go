package portfolio

type ClientCategory string

const (
	CategoryNatural ClientCategory = "NATURAL"
	CategoryLegal   ClientCategory = "LEGAL"
)

type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// ClientCategories lists every category in a fixed presentation order.
var ClientCategories = []ClientCategory{CategoryNatural, CategoryLegal}

// Client is a credit customer of the pharmacy. Clients are immutable once
// generated; loans reference them by ID.
type Client struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Category     ClientCategory `json:"category"`
	TaxID        string         `json:"taxId"`
	Phone        string         `json:"phone"`
	RiskTier     RiskTier       `json:"riskTier"`
	BusinessName string         `json:"businessName,omitempty"`
}

// DefaultRoster returns the fixed client population: five natural persons and
// five legal entities. The roster is static, so generation draws only pick
// which client a loan belongs to.
func DefaultRoster() []Client {
	return []Client{
		{ID: 1, Name: "Juan Pérez García", Category: CategoryNatural, TaxID: "12345001", Phone: "555-1001", RiskTier: RiskLow},
		{ID: 2, Name: "María López Sánchez", Category: CategoryNatural, TaxID: "12345002", Phone: "555-1002", RiskTier: RiskLow},
		{ID: 3, Name: "Carlos Rodríguez Méndez", Category: CategoryNatural, TaxID: "12345003", Phone: "555-1003", RiskTier: RiskMedium},
		{ID: 4, Name: "Ana Martínez Torres", Category: CategoryNatural, TaxID: "12345004", Phone: "555-1004", RiskTier: RiskLow},
		{ID: 5, Name: "Luis Gómez Ramírez", Category: CategoryNatural, TaxID: "12345005", Phone: "555-1005", RiskTier: RiskHigh},
		{ID: 6, Name: "Farmacia Central S.A.", Category: CategoryLegal, TaxID: "987654001", Phone: "555-2001", RiskTier: RiskLow, BusinessName: "Farmacia Central Sociedad Anónima"},
		{ID: 7, Name: "Distribuidora Médica Ltda.", Category: CategoryLegal, TaxID: "987654002", Phone: "555-2002", RiskTier: RiskMedium, BusinessName: "Distribuidora Médica Limitada"},
		{ID: 8, Name: "Clínica San Rafael", Category: CategoryLegal, TaxID: "987654003", Phone: "555-2003", RiskTier: RiskLow, BusinessName: "Clínica San Rafael S.A."},
		{ID: 9, Name: "Hospital Metropolitano", Category: CategoryLegal, TaxID: "987654004", Phone: "555-2004", RiskTier: RiskLow, BusinessName: "Hospital Metropolitano S.A."},
		{ID: 10, Name: "Laboratorios Unidos S.A.", Category: CategoryLegal, TaxID: "987654005", Phone: "555-2005", RiskTier: RiskMedium, BusinessName: "Laboratorios Unidos Sociedad Anónima"},
	}
}
