package response

import "feedbackpro/internal/pkg/errs"

// DeliveryType is the channel through which a feedback link reached the respondent.
type DeliveryType string

const (
	DeliveryQR             DeliveryType = "QR"
	DeliveryQRInitiatedSMS DeliveryType = "QR_INITIATED_SMS"
	DeliveryDirectSMS      DeliveryType = "DIRECT_SMS"
)

var ErrInvalidDeliveryType = errs.NewValidation("delivery type must be QR, QR_INITIATED_SMS or DIRECT_SMS")

func (t DeliveryType) String() string { return string(t) }

func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryQR, DeliveryQRInitiatedSMS, DeliveryDirectSMS:
		return true
	default:
		return false
	}
}

func (t DeliveryType) RequiresPhone() bool {
	return t == DeliveryQRInitiatedSMS || t == DeliveryDirectSMS
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	t := DeliveryType(s)
	if !t.IsValid() {
		return "", ErrInvalidDeliveryType
	}
	return t, nil
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string { return string(s) }
