package checkout

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

type fakeStore struct {
	products  map[uint]models.Product
	orders    []models.Order
	createErr error
}

func (f *fakeStore) ActiveProductsByIDs(ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.IsActive {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakeStore) CreateOrder(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uint(len(f.orders) + 1)
	f.orders = append(f.orders, *order)
	return nil
}

type recordingNotifier struct {
	orders []models.Order
}

func (r *recordingNotifier) OrderCreated(order models.Order) {
	r.orders = append(r.orders, order)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAggregator(store *fakeStore, notifier *recordingNotifier) *Aggregator {
	return NewAggregator(store, notifier, "NLE", price("22.50"), zerolog.Nop())
}

func validRequest(items ...Line) Request {
	return Request{
		CustomerName:  "Aminata Kamara",
		CustomerEmail: "aminata@example.com",
		CustomerPhone: "+23276000000",
		ShippingAddress: models.ShippingAddress{
			Line1:   "12 Siaka Stevens St",
			City:    "Freetown",
			Country: "Sierra Leone",
		},
		PaymentMethod: "cash_on_delivery",
		Items:         items,
	}
}

func TestCheckoutComputesTotals(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "Palm Oil 5L", Price: price("10.00"), Stock: 10, IsActive: true},
	}}
	notifier := &recordingNotifier{}
	agg := newTestAggregator(store, notifier)

	req := validRequest(Line{ProductID: 1, Quantity: 2})
	req.Currency = "NLE"

	order, err := agg.Checkout(req)
	require.NoError(t, err)

	assert.Equal(t, "20.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "20.00", order.Total.StringFixed(2))
	assert.Equal(t, uint(7), order.VendorID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "10.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Palm Oil 5L", order.Items[0].Name)
}

func TestCheckoutCreatesOneItemPerLine(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "A", Price: price("3.25"), Stock: 5, IsActive: true},
		2: {ID: 2, VendorID: 7, Name: "B", Price: price("1.10"), Stock: 5, IsActive: true},
		3: {ID: 3, VendorID: 7, Name: "C", Price: price("0.55"), Stock: 5, IsActive: true},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	order, err := agg.Checkout(validRequest(
		Line{ProductID: 1, Quantity: 2},
		Line{ProductID: 2, Quantity: 1},
		Line{ProductID: 3, Quantity: 4},
	))
	require.NoError(t, err)

	require.Len(t, order.Items, 3)
	// 2*3.25 + 1*1.10 + 4*0.55 = 9.80
	assert.Equal(t, "9.80", order.Subtotal.StringFixed(2))
}

func TestCheckoutSnapshotSurvivesProductEdits(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "Original Name", Price: price("10.00"), Stock: 5, IsActive: true},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	_, err := agg.Checkout(validRequest(Line{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)

	// Mutate the product after checkout.
	p := store.products[1]
	p.Name = "Renamed"
	p.Price = price("99.99")
	store.products[1] = p

	persisted := store.orders[0]
	assert.Equal(t, "Original Name", persisted.Items[0].Name)
	assert.Equal(t, "10.00", persisted.Items[0].Price.StringFixed(2))
}

func TestCheckoutUnknownProductIsAtomic(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "A", Price: price("1.00"), Stock: 5, IsActive: true},
	}}
	notifier := &recordingNotifier{}
	agg := newTestAggregator(store, notifier)

	_, err := agg.Checkout(validRequest(
		Line{ProductID: 1, Quantity: 1},
		Line{ProductID: 999, Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, store.orders, "no partial order may be persisted")
	assert.Empty(t, notifier.orders, "no notification without a committed order")
}

func TestCheckoutInactiveProductNotPurchasable(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "Retired", Price: price("1.00"), Stock: 5, IsActive: false},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	_, err := agg.Checkout(validRequest(Line{ProductID: 1, Quantity: 1}))
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCheckoutValidation(t *testing.T) {
	agg := newTestAggregator(&fakeStore{products: map[uint]models.Product{}}, &recordingNotifier{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.CustomerName = "" }},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }},
		{"missing address line1", func(r *Request) { r.ShippingAddress.Line1 = "" }},
		{"missing city", func(r *Request) { r.ShippingAddress.City = "" }},
		{"missing country", func(r *Request) { r.ShippingAddress.Country = "" }},
		{"bad payment method", func(r *Request) { r.PaymentMethod = "iou" }},
		{"empty cart", func(r *Request) { r.Items = nil }},
		{"zero quantity", func(r *Request) { r.Items = []Line{{ProductID: 1, Quantity: 0}} }},
		{"bad currency", func(r *Request) { r.Currency = "EUR" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(Line{ProductID: 1, Quantity: 1})
			tc.mutate(&req)
			_, err := agg.Checkout(req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCheckoutUSDConversion(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "Import", Price: price("45.00"), Stock: 5, IsActive: true},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	req := validRequest(Line{ProductID: 1, Quantity: 2})
	req.Currency = "USD" // default rate 22.50 NLe per USD

	order, err := agg.Checkout(req)
	require.NoError(t, err)
	assert.Equal(t, "2.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, "4.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "USD", order.Currency)
	assert.Equal(t, "22.5", order.Rate.String())
}

func TestCheckoutMultiVendorCartTakesFirstVendor(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "A", Price: price("1.00"), Stock: 5, IsActive: true},
		2: {ID: 2, VendorID: 8, Name: "B", Price: price("2.00"), Stock: 5, IsActive: true},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	order, err := agg.Checkout(validRequest(
		Line{ProductID: 1, Quantity: 1},
		Line{ProductID: 2, Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, uint(7), order.VendorID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(8), order.Items[1].VendorID, "item keeps its real vendor")
}

func TestCheckoutNotifierGetsCommittedOrder(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "A", Price: price("1.00"), Stock: 5, IsActive: true},
	}}
	notifier := &recordingNotifier{}
	agg := newTestAggregator(store, notifier)

	order, err := agg.Checkout(validRequest(Line{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)

	require.Len(t, notifier.orders, 1)
	assert.Equal(t, order.OrderRef, notifier.orders[0].OrderRef)
}

func TestCheckoutPersistenceFailureSkipsNotification(t *testing.T) {
	store := &fakeStore{
		products: map[uint]models.Product{
			1: {ID: 1, VendorID: 7, Name: "A", Price: price("1.00"), Stock: 5, IsActive: true},
		},
		createErr: errors.New("connection lost"),
	}
	notifier := &recordingNotifier{}
	agg := newTestAggregator(store, notifier)

	_, err := agg.Checkout(validRequest(Line{ProductID: 1, Quantity: 1}))
	require.Error(t, err)
	assert.Empty(t, notifier.orders)
}

func TestCheckoutGuestHasNoCustomerID(t *testing.T) {
	store := &fakeStore{products: map[uint]models.Product{
		1: {ID: 1, VendorID: 7, Name: "A", Price: price("1.00"), Stock: 5, IsActive: true},
	}}
	agg := newTestAggregator(store, &recordingNotifier{})

	order, err := agg.Checkout(validRequest(Line{ProductID: 1, Quantity: 1}))
	require.NoError(t, err)
	assert.Nil(t, order.CustomerID)
}
