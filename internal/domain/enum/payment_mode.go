package enum

// PaymentMode is the tender type recorded on a saved bill
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeCard PaymentMode = "card"
)

// IsValid checks whether the payment mode is one of the known values
func (p PaymentMode) IsValid() bool {
	switch p {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCard:
		return true
	}
	return false
}
