package model

// PanelSettings is the panel-wide configuration singleton. Replacing it is
// always a total overwrite; omitted fields come back as their declared
// defaults, never as previously stored values.
type PanelSettings struct {
	PanelName      string   `json:"panel_name" bson:"panel_name"`
	Currency       string   `json:"currency" bson:"currency"`
	Announcement   *string  `json:"announcement" bson:"announcement"`
	PaymentMethods []string `json:"payment_methods" bson:"payment_methods"`
}

const CurrencyPKR = "PKR"

func (s *PanelSettings) ApplyDefaults() {
	if s.PanelName == "" {
		s.PanelName = "SMM Panel (PK)"
	}
	if s.Currency == "" {
		s.Currency = CurrencyPKR
	}
	// nil means absent; an explicit empty list is kept as-is.
	if s.PaymentMethods == nil {
		s.PaymentMethods = []string{PaymentMethodJazzCash, PaymentMethodEasyPaisa}
	}
}

func (s *PanelSettings) Validate() error {
	if s.Currency != CurrencyPKR {
		return &ValidationError{Field: "currency", Reason: "must be PKR"}
	}
	return nil
}
