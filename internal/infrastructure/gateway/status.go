package gateway

import (
	"strings"

	"github.com/DanielPopoola/paygate/internal/domain"
)

// normalizeStatus maps a provider status word onto the three internal statuses. Unknown words stay pending.
func normalizeStatus(raw string, success, failed []string) domain.TransactionStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, w := range success {
		if s == w {
			return domain.StatusSuccess
		}
	}
	for _, w := range failed {
		if s == w {
			return domain.StatusFailed
		}
	}
	return domain.StatusPending
}

var (
	flutterwaveSuccess = []string{"successful", "success", "completed"}
	flutterwaveFailed  = []string{"failed", "cancelled", "error"}

	paystackSuccess = []string{"success"}
	paystackFailed  = []string{"failed", "abandoned", "reversed"}
)
