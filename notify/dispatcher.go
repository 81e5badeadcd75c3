package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

// Broadcaster pushes the order to live dashboard connections.
type Broadcaster interface {
	BroadcastOrder(order models.Order)
}

// Dispatcher fans out order confirmations over email, WhatsApp and the live
// feed. Every channel is best-effort and at-most-once: failures are logged,
// never retried, and never reach the checkout response path.
type Dispatcher struct {
	mailer   *Mailer
	whatsapp *WhatsAppSender
	feed     Broadcaster

	adminEmail    string
	adminWhatsApp string
	supportEmail  string
	supportPhone  string

	sendTimeout time.Duration
	log         zerolog.Logger
}

type DispatcherOptions struct {
	Mailer        *Mailer
	WhatsApp      *WhatsAppSender
	Feed          Broadcaster
	AdminEmail    string
	AdminWhatsApp string
	SupportEmail  string
	SupportPhone  string
	SendTimeout   time.Duration
}

func NewDispatcher(opts DispatcherOptions, log zerolog.Logger) *Dispatcher {
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		mailer:        opts.Mailer,
		whatsapp:      opts.WhatsApp,
		feed:          opts.Feed,
		adminEmail:    opts.AdminEmail,
		adminWhatsApp: opts.AdminWhatsApp,
		supportEmail:  opts.SupportEmail,
		supportPhone:  opts.SupportPhone,
		sendTimeout:   opts.SendTimeout,
		log:           log,
	}
}

// OrderCreated dispatches all channels on a detached goroutine. The caller's
// transaction has already committed; nothing here can undo it.
func (d *Dispatcher) OrderCreated(order models.Order) {
	go d.dispatch(order)
}

func (d *Dispatcher) dispatch(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.sendBuyerEmail(order)
		return nil
	})
	g.Go(func() error {
		d.sendAdminEmail(order)
		return nil
	})
	g.Go(func() error {
		d.sendBuyerWhatsApp(ctx, order)
		return nil
	})
	g.Go(func() error {
		d.sendAdminWhatsApp(ctx, order)
		return nil
	})
	g.Go(func() error {
		if d.feed != nil {
			d.feed.BroadcastOrder(order)
		}
		return nil
	})
	_ = g.Wait()
}

func (d *Dispatcher) sendBuyerEmail(order models.Order) {
	if d.mailer == nil {
		d.log.Debug().Str("order_ref", order.OrderRef).Msg("smtp not configured, skipping buyer receipt")
		return
	}
	body, err := renderReceipt(order, d.supportEmail, d.supportPhone)
	if err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("failed to render receipt")
		return
	}
	subject := fmt.Sprintf("Order confirmation %s", order.OrderRef)
	if err := d.mailer.Send(order.CustomerEmail, subject, body, d.sendTimeout); err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("buyer receipt email failed")
	}
}

func (d *Dispatcher) sendAdminEmail(order models.Order) {
	if d.mailer == nil || d.adminEmail == "" {
		return
	}
	body, err := renderReceipt(order, d.supportEmail, d.supportPhone)
	if err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("failed to render admin notification")
		return
	}
	subject := fmt.Sprintf("New order %s: %s %s", order.OrderRef, order.Total, order.Currency)
	if err := d.mailer.Send(d.adminEmail, subject, body, d.sendTimeout); err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("admin notification email failed")
	}
}

func (d *Dispatcher) sendBuyerWhatsApp(ctx context.Context, order models.Order) {
	if d.whatsapp == nil || order.CustomerPhone == "" {
		return
	}
	msg := fmt.Sprintf("Hi %s, your order %s was received. Total: %s %s.",
		order.CustomerName, order.OrderRef, order.Total, order.Currency)
	if err := d.whatsapp.Send(ctx, order.CustomerPhone, msg); err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("buyer whatsapp failed")
	}
}

func (d *Dispatcher) sendAdminWhatsApp(ctx context.Context, order models.Order) {
	if d.whatsapp == nil || d.adminWhatsApp == "" {
		return
	}
	msg := fmt.Sprintf("New order %s from %s: %s %s (%s).",
		order.OrderRef, order.CustomerName, order.Total, order.Currency, order.PaymentMethod)
	if err := d.whatsapp.Send(ctx, d.adminWhatsApp, msg); err != nil {
		d.log.Error().Err(err).Str("order_ref", order.OrderRef).Msg("admin whatsapp failed")
	}
}
