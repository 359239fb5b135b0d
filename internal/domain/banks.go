package domain

// BankCode is the 3-digit FEBRABAN compensation code of a collecting bank.
type BankCode string

const (
	BancoDoBrasil BankCode = "001"
	Santander     BankCode = "033"
	Caixa         BankCode = "104"
	Bradesco      BankCode = "237"
	Itau          BankCode = "341"
	Sicoob        BankCode = "756"
)

// BankNames maps each supported BankCode to its display name, as written
// in the CNAB240 header arquivo.
var BankNames = map[BankCode]string{
	BancoDoBrasil: "BANCO DO BRASIL S.A.",
	Santander:     "BANCO SANTANDER (BRASIL) S.A.",
	Caixa:         "CAIXA ECONOMICA FEDERAL",
	Bradesco:      "BANCO BRADESCO S.A.",
	Itau:          "ITAU UNIBANCO S.A.",
	Sicoob:        "BANCO COOPERATIVO DO BRASIL S.A.",
}

// Supported reports whether b is one of the six banks this codec knows.
func (b BankCode) Supported() bool {
	_, ok := BankNames[b]
	return ok
}

// Name returns the bank display name, or an empty string for unknown codes.
func (b BankCode) Name() string {
	return BankNames[b]
}
