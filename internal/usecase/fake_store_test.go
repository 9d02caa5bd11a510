package usecase

import (
	"context"
	"sync"

	"order_confirmation/internal/domain/entities"
	"order_confirmation/internal/usecase/interfaces"
)

// fakeOrderStore is an in-memory stand-in for both DynamoDB tables and the SMS channel.
type fakeOrderStore struct {
	mu                 sync.Mutex
	pending            map[string]entities.PendingOrder
	confirmed          map[string]entities.ConfirmedOrder
	confirmedPuts      map[string]int
	sent               []string
	lastMessageByPhone map[string]string
}

var (
	_ interfaces.IPendingOrderRepository   = (*fakeOrderStore)(nil)
	_ interfaces.IConfirmedOrderRepository = confirmedStore{}
	_ interfaces.IOTPSender                = (*fakeOrderStore)(nil)
)

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		pending:            map[string]entities.PendingOrder{},
		confirmed:          map[string]entities.ConfirmedOrder{},
		confirmedPuts:      map[string]int{},
		lastMessageByPhone: map[string]string{},
	}
}

func (s *fakeOrderStore) Create(_ context.Context, o entities.PendingOrder) (entities.PendingOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[o.OrderID] = o
	return o, nil
}

func (s *fakeOrderStore) GetByID(_ context.Context, orderID string) (entities.PendingOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[orderID], nil
}

func (s *fakeOrderStore) Promote(_ context.Context, p entities.PendingOrder) (entities.ConfirmedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[p.OrderID]; !ok {
		return entities.ConfirmedOrder{}, interfaces.ErrPromotionConflict
	}
	if _, ok := s.confirmed[p.OrderID]; ok {
		return entities.ConfirmedOrder{}, interfaces.ErrPromotionConflict
	}
	c := p.Confirm()
	s.confirmed[p.OrderID] = c
	s.confirmedPuts[p.OrderID]++
	delete(s.pending, p.OrderID)
	return c, nil
}

func (s *fakeOrderStore) SendOTP(_ context.Context, phone string, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, message)
	s.lastMessageByPhone[phone] = message
	return nil
}

// confirmedStore exposes the confirmed side under the IConfirmedOrderRepository
// GetByID signature, which collides with the pending one on fakeOrderStore.
type confirmedStore struct {
	*fakeOrderStore
}

func (c confirmedStore) GetByID(_ context.Context, orderID string) (entities.ConfirmedOrder, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmed[orderID], nil
}
