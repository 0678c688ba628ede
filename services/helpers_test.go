package services

import (
	"context"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"

	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

// memoryGateway is an in-memory stand-in for the snapshot store.
type memoryGateway struct {
	mu      sync.Mutex
	payload []byte
	saves   int
	failing bool
}

func (m *memoryGateway) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, nil
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *memoryGateway) Save(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return context.DeadlineExceeded
	}
	m.payload = append([]byte(nil), payload...)
	m.saves++
	return nil
}

func (m *memoryGateway) Ping(ctx context.Context) error { return nil }
func (m *memoryGateway) Close() error                   { return nil }

func (m *memoryGateway) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func testConfig() *structs.Config {
	return &structs.Config{
		Booking: &structs.BookingConfig{
			ConfirmationWindow: 50 * time.Millisecond,
		},
		Sale: &structs.SaleConfig{
			DefaultDuration:        24 * time.Hour,
			DefaultOriginalPrice:   20000,
			DefaultDiscountedPrice: 15000,
		},
	}
}

func newTestManager() (*ServiceManager, *state.State, *memoryGateway) {
	st := state.NewState()
	gateway := &memoryGateway{}
	sm := NewServiceManager(gecho.NewDefaultLogger(), testConfig(), st, gateway)
	return sm, st, gateway
}
