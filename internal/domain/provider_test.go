package domain

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// The generated mock must keep satisfying the port.
var _ OffersProvider = (*MockOffersProvider)(nil)

func namedProvider(ctrl *gomock.Controller, name string) *MockOffersProvider {
	mock := NewMockOffersProvider(ctrl)
	mock.EXPECT().Name().Return(name).AnyTimes()
	return mock
}

func TestProviderRegistry_Empty(t *testing.T) {
	registry := NewProviderRegistry()

	assert.Equal(t, 0, registry.Len())
	assert.Empty(t, registry.GetAll())
	assert.Empty(t, registry.Names())
	assert.Nil(t, registry.Get("amadeus"))
}

func TestProviderRegistry_FailoverOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()
	registry.Register(namedProvider(ctrl, "amadeus"))
	registry.Register(namedProvider(ctrl, "staticmock"))

	// Registration order is failover order: primary first, fallback last.
	assert.Equal(t, []string{"amadeus", "staticmock"}, registry.Names())

	all := registry.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "amadeus", all[0].Name())
	assert.Equal(t, "staticmock", all[1].Name())
}

func TestProviderRegistry_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()
	registry.Register(namedProvider(ctrl, "amadeus"))

	found := registry.Get("amadeus")
	require.NotNil(t, found)
	assert.Equal(t, "amadeus", found.Name())

	assert.Nil(t, registry.Get("sabre"))
}

func TestProviderRegistry_NilProviderIgnored(t *testing.T) {
	registry := NewProviderRegistry()

	registry.Register(nil)

	assert.Equal(t, 0, registry.Len())
}

func TestProviderRegistry_ReRegisterKeepsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()
	registry.Register(namedProvider(ctrl, "amadeus"))
	registry.Register(namedProvider(ctrl, "staticmock"))

	fresh := namedProvider(ctrl, "amadeus")
	fresh.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(&SearchSnapshot{Offers: []Offer{{ID: "fresh-1"}}}, nil)
	registry.Register(fresh)

	// Re-registering a name swaps the instance without moving it in the
	// failover order.
	assert.Equal(t, []string{"amadeus", "staticmock"}, registry.Names())
	assert.Equal(t, 2, registry.Len())

	snapshot, err := registry.Get("amadeus").Search(context.Background(), SearchCriteria{})
	require.NoError(t, err)
	require.Len(t, snapshot.Offers, 1)
	assert.Equal(t, "fresh-1", snapshot.Offers[0].ID)
}

func TestProviderRegistry_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewProviderRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("provider-%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(namedProvider(ctrl, name))
		}()
		go func() {
			defer wg.Done()
			registry.GetAll()
			registry.Names()
			registry.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, registry.Len())
}
