package domain

// ServiceKind identifies one of the mobile-money services the kiosk holds float in.
// The set is closed; there is no dynamic registration.
type ServiceKind string

const (
	MVola       ServiceKind = "MVOLA"
	OrangeMoney ServiceKind = "ORANGE_MONEY"
	AirtelMoney ServiceKind = "AIRTEL_MONEY"
)

// AllServices lists every known service in a stable order.
var AllServices = []ServiceKind{MVola, OrangeMoney, AirtelMoney}

// IsValid reports whether s is one of the known services.
func (s ServiceKind) IsValid() bool {
	switch s {
	case MVola, OrangeMoney, AirtelMoney:
		return true
	}
	return false
}

// DisplayName returns the customer-facing name of the service.
func (s ServiceKind) DisplayName() string {
	switch s {
	case MVola:
		return "MVola"
	case OrangeMoney:
		return "Orange Money"
	case AirtelMoney:
		return "Airtel Money"
	}
	return string(s)
}
