package services

import (
	"crypto/sha256"
	"fmt"

	"github.com/DanielPopoola/paygate/internal/domain"
)

func hashOf(v any) string {
	data := fmt.Sprintf("%+v", v)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// deliveryKey identifies one normalized provider event.
func deliveryKey(gateway string, event *domain.GatewayEvent) string {
	return fmt.Sprintf("webhook:%s:%s", gateway, hashOf(struct {
		Ref, GatewayRef, Status, Amount string
	}{event.TransactionRef, event.GatewayRef, string(event.Status), event.Amount.String()}))
}
