package order

import (
	"errors"
	"strings"
)

var ErrInvalidStatus = errors.New("invalid order status")

// Status values are persisted as-is; any listed status may follow any other.
type Status string

const (
	StatusReceived               Status = "ALINDI"
	StatusCourierEnRoutePickup   Status = "KURYE YOLDA"
	StatusPreparing              Status = "HAZIRLANIYOR"
	StatusCourierEnRouteDelivery Status = "TESLIMAT ICIN KURYE YOLA CIKTI"
	StatusDelivered              Status = "TESLIM EDILDI"
)

const FallbackStatusMessage = "Siparişiniz işleniyor. En kısa sürede bilgilendirileceksiniz."

var statusOptions = []Status{
	StatusReceived,
	StatusCourierEnRoutePickup,
	StatusPreparing,
	StatusCourierEnRouteDelivery,
	StatusDelivered,
}

var statusMessages = map[Status]string{
	StatusReceived:               "Siparişiniz alındı, kuryemiz yakın zamanda sizden teslim alacaktır.",
	StatusCourierEnRoutePickup:   "Kuryemiz yola çıktı. Yakında adresinizden teslim alacaktır.",
	StatusPreparing:              "Siparişiniz işleme alındı, hazırlık aşamasındadır.",
	StatusCourierEnRouteDelivery: "Teslim edilmek üzere kuryemiz yola çıktı.",
	StatusDelivered:              "Siparişiniz teslim edildi. Bizi tercih ettiğiniz için teşekkürler!",
}

// StatusOptions returns the allow-list in lifecycle order.
func StatusOptions() []Status {
	out := make([]Status, len(statusOptions))
	copy(out, statusOptions)
	return out
}

// ParseStatus trims and upper-cases raw before checking the allow-list.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	_, ok := statusMessages[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Message() string {
	return MessageFor(string(s))
}

// MessageFor maps a stored status to its customer-facing message. Unknown or corrupt
// values get FallbackStatusMessage.
func MessageFor(stored string) string {
	if msg, ok := statusMessages[Status(strings.ToUpper(strings.TrimSpace(stored)))]; ok {
		return msg
	}
	return FallbackStatusMessage
}
