package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

var (
	ErrValidation        = errors.New("invalid checkout input")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

var paymentMethods = map[string]bool{
	"cash_on_delivery": true,
	"bank_transfer":    true,
	"mobile_money":     true,
	"orange_money":     true,
	"afrimoney":        true,
	"card":             true,
	"usd_card":         true,
}

type Line struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type Request struct {
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Notes           string                 `json:"notes"`
	Currency        string                 `json:"currency"`
	Rate            string                 `json:"rate"`
	Items           []Line                 `json:"items"`
	CustomerID      *string                `json:"-"`
}

// Store persists the priced order. CreateOrder must be atomic: the order, its
// items, and the stock deduction all commit together or not at all.
type Store interface {
	ActiveProductsByIDs(ids []uint) (map[uint]models.Product, error)
	CreateOrder(order *models.Order) error
}

// Notifier receives the committed order. Implementations must not block the
// caller or surface failures back into the checkout path.
type Notifier interface {
	OrderCreated(order models.Order)
}

// Aggregator turns a cart plus live product data into a persisted order with
// snapshot items. Notification delivery never decides checkout success.
type Aggregator struct {
	store           Store
	notifier        Notifier
	defaultCurrency string
	defaultRate     decimal.Decimal
	log             zerolog.Logger
}

func NewAggregator(store Store, notifier Notifier, defaultCurrency string, defaultRate decimal.Decimal, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		store:           store,
		notifier:        notifier,
		defaultCurrency: defaultCurrency,
		defaultRate:     defaultRate,
		log:             log,
	}
}

func (a *Aggregator) validate(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrValidation)
	}
	addr := req.ShippingAddress
	if addr.Line1 == "" || addr.City == "" || addr.Country == "" {
		return fmt.Errorf("%w: shipping address needs line1, city and country", ErrValidation)
	}
	if !paymentMethods[req.PaymentMethod] {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
	}
	switch req.Currency {
	case "", "NLE", "USD":
	default:
		return fmt.Errorf("%w: unsupported currency %q", ErrValidation, req.Currency)
	}
	return nil
}

// Checkout resolves every cart line, prices the order, persists it atomically
// and hands the committed order to the notifier. The returned order is final;
// only its status and notes may change afterwards.
func (a *Aggregator) Checkout(req Request) (*models.Order, error) {
	if err := a.validate(&req); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = a.defaultCurrency
	}
	rate := a.defaultRate
	if req.Rate != "" {
		parsed, err := decimal.NewFromString(req.Rate)
		if err != nil || !parsed.IsPositive() {
			return nil, fmt.Errorf("%w: invalid rate %q", ErrValidation, req.Rate)
		}
		rate = parsed
	}

	ids := make([]uint, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.ProductID)
	}
	products, err := a.store.ActiveProductsByIDs(ids)
	if err != nil {
		return nil, err
	}

	var (
		subtotal = decimal.Zero
		items    = make([]models.OrderItem, 0, len(req.Items))
		vendorID uint
	)
	for _, line := range req.Items {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, line.ProductID)
		}

		// Order vendor follows the first line. Multi-vendor carts are not
		// split; the mismatch is logged so the gap stays visible.
		if vendorID == 0 {
			vendorID = product.VendorID
		} else if product.VendorID != vendorID {
			a.log.Warn().
				Uint("order_vendor", vendorID).
				Uint("item_vendor", product.VendorID).
				Uint("product_id", product.ID).
				Msg("cart spans multiple vendors; attributing order to first vendor")
		}

		unit := product.Price
		if currency == "USD" {
			unit = product.Price.Div(rate).Round(2)
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			VendorID:  product.VendorID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     unit,
			Quantity:  line.Quantity,
		})
	}

	subtotal = subtotal.Round(2)
	shippingFee := decimal.Zero.Round(2) // flat zero for now
	total := subtotal.Add(shippingFee)

	order := &models.Order{
		OrderRef:      generateOrderRef(),
		VendorID:      vendorID,
		CustomerID:    req.CustomerID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(req.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Currency:      currency,
		Rate:          rate,
		Subtotal:      subtotal,
		ShippingFee:   shippingFee,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		ShippingAddr:  req.ShippingAddress,
		Status:        models.OrderStatusPending,
		Items:         items,
		CreatedAt:     time.Now(),
	}

	if err := a.store.CreateOrder(order); err != nil {
		return nil, err
	}

	// Fire-and-forget: the order is already committed, delivery failures are
	// the notifier's problem.
	a.notifier.OrderCreated(*order)

	return order, nil
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
