package notify

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

type recordingFeed struct {
	orders []models.Order
}

func (r *recordingFeed) BroadcastOrder(order models.Order) {
	r.orders = append(r.orders, order)
}

func testOrder() models.Order {
	return models.Order{
		OrderRef:      "20250101120000-abc",
		CustomerName:  "Aminata Kamara",
		CustomerEmail: "aminata@example.com",
		Currency:      "NLE",
		Subtotal:      decimal.RequireFromString("20.00"),
		ShippingFee:   decimal.RequireFromString("0.00"),
		Total:         decimal.RequireFromString("20.00"),
		PaymentMethod: "cash_on_delivery",
		ShippingAddr: models.ShippingAddress{
			Line1: "12 Siaka Stevens St", City: "Freetown", Country: "Sierra Leone",
		},
		Items: []models.OrderItem{
			{Name: "Palm Oil 5L", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		},
	}
}

func TestRenderReceipt(t *testing.T) {
	body, err := renderReceipt(testOrder(), "support@example.com", "+23276000000")
	require.NoError(t, err)

	assert.Contains(t, body, "20250101120000-abc")
	assert.Contains(t, body, "Palm Oil 5L")
	assert.Contains(t, body, "20 NLE")
	assert.Contains(t, body, "support@example.com")
}

// With no channels configured, dispatch must complete without panicking and
// without touching the network: checkout success never depends on it.
func TestDispatchWithNothingConfigured(t *testing.T) {
	d := NewDispatcher(DispatcherOptions{}, zerolog.Nop())
	d.dispatch(testOrder())
}

func TestDispatchReachesFeed(t *testing.T) {
	feed := &recordingFeed{}
	d := NewDispatcher(DispatcherOptions{Feed: feed}, zerolog.Nop())

	d.dispatch(testOrder())

	require.Len(t, feed.orders, 1)
	assert.Equal(t, "20250101120000-abc", feed.orders[0].OrderRef)
}
