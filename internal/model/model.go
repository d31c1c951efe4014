package model

// Service is a priced offering in the panel catalog. Its name doubles as
// the identity key for deletion and for order lookups. Min and Max are
// pointers so an explicit 0 survives create, storage, and read-back;
// defaults apply only when the field is absent.
type Service struct {
	Name         string  `json:"name" bson:"name"`
	Category     string  `json:"category" bson:"category"`
	Description  *string `json:"description" bson:"description"`
	RatePer1KPKR float64 `json:"rate_per_1k_pkr" bson:"rate_per_1k_pkr"`
	Min          *int    `json:"min" bson:"min"`
	Max          *int    `json:"max" bson:"max"`
	Status       string  `json:"status" bson:"status"`
}

const (
	ServiceStatusActive = "active"
	ServiceStatusPaused = "paused"
)

func (s *Service) ApplyDefaults() {
	if s.Min == nil {
		s.Min = intRef(10)
	}
	if s.Max == nil {
		s.Max = intRef(10000)
	}
	if s.Status == "" {
		s.Status = ServiceStatusActive
	}
}

func (s *Service) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if s.Category == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	if s.RatePer1KPKR < 0 {
		return &ValidationError{Field: "rate_per_1k_pkr", Reason: "must be >= 0"}
	}
	if s.Min != nil && *s.Min < 0 {
		return &ValidationError{Field: "min", Reason: "must be >= 0"}
	}
	if s.Max != nil && *s.Max < 0 {
		return &ValidationError{Field: "max", Reason: "must be >= 0"}
	}
	if s.Status != ServiceStatusActive && s.Status != ServiceStatusPaused {
		return &ValidationError{Field: "status", Reason: "must be one of: active, paused"}
	}
	return nil
}

// Order is a customer order against a catalog service. ServiceID holds the
// service's name, not a generated identifier. ChargePKR is always computed
// server-side at creation time; any client-supplied value is discarded.
type Order struct {
	ServiceID string  `json:"service_id" bson:"service_id"`
	Link      string  `json:"link" bson:"link"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UserEmail *string `json:"user_email" bson:"user_email"`
	Note      *string `json:"note" bson:"note"`
	Status    string  `json:"status" bson:"status"`
	ChargePKR float64 `json:"charge_pkr" bson:"charge_pkr"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

func (o *Order) ApplyDefaults() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
}

func (o *Order) Validate() error {
	if o.ServiceID == "" {
		return &ValidationError{Field: "service_id", Reason: "is required"}
	}
	if o.Link == "" {
		return &ValidationError{Field: "link", Reason: "is required"}
	}
	if o.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be >= 1"}
	}
	switch o.Status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
	default:
		return &ValidationError{Field: "status", Reason: "must be one of: pending, processing, completed, cancelled"}
	}
	if o.ChargePKR < 0 {
		return &ValidationError{Field: "charge_pkr", Reason: "must be >= 0"}
	}
	return nil
}

// Payment is a customer-reported payment record. It carries no link to any
// order beyond the free-text user email.
type Payment struct {
	UserEmail string  `json:"user_email" bson:"user_email"`
	Method    string  `json:"method" bson:"method"`
	AmountPKR float64 `json:"amount_pkr" bson:"amount_pkr"`
	Reference *string `json:"reference" bson:"reference"`
	Status    string  `json:"status" bson:"status"`
}

const (
	PaymentMethodJazzCash     = "JazzCash"
	PaymentMethodEasyPaisa    = "EasyPaisa"
	PaymentMethodBankTransfer = "BankTransfer"

	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusFailed    = "failed"
)

func (p *Payment) ApplyDefaults() {
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
}

func (p *Payment) Validate() error {
	if p.UserEmail == "" {
		return &ValidationError{Field: "user_email", Reason: "is required"}
	}
	switch p.Method {
	case PaymentMethodJazzCash, PaymentMethodEasyPaisa, PaymentMethodBankTransfer:
	default:
		return &ValidationError{Field: "method", Reason: "must be one of: JazzCash, EasyPaisa, BankTransfer"}
	}
	if p.AmountPKR < 0 {
		return &ValidationError{Field: "amount_pkr", Reason: "must be >= 0"}
	}
	switch p.Status {
	case PaymentStatusPending, PaymentStatusConfirmed, PaymentStatusFailed:
	default:
		return &ValidationError{Field: "status", Reason: "must be one of: pending, confirmed, failed"}
	}
	return nil
}
