package services

import (
	"log"

	"github.com/google/uuid"
)

// PaymentGateway settles a completed order's bill. Charge returns the
// gateway's transaction reference.
type PaymentGateway interface {
	Charge(amount int64, orderRef string) (string, error)
}

// StubGateway is the in-process gateway used until a real provider is
// integrated: it always succeeds and mints a local transaction reference.
type StubGateway struct{}

func (StubGateway) Charge(amount int64, orderRef string) (string, error) {
	ref := uuid.NewString()
	log.Printf("[STUB PAYMENT] charged %d minor units for order %s (txn %s)", amount, orderRef, ref)
	return ref, nil
}
