package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"

	"github.com/lwgpartnersnetwork/lwgshopcentral-sub000/models"
)

// Mailer sends order mail over SMTP. A nil Mailer means the channel is not
// configured and sends are skipped.
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(host, port, user, pass, from string) *Mailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return &Mailer{
		addr: fmt.Sprintf("%s:%s", host, port),
		auth: auth,
		from: from,
	}
}

func (m *Mailer) Send(to, subject, htmlBody string, timeout time.Duration) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(htmlBody)

	pool, err := email.NewPool(m.addr, 1, m.auth)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Send(e, timeout)
}

type receiptData struct {
	Order        models.Order
	SupportEmail string
	SupportPhone string
}

func renderReceipt(order models.Order, supportEmail, supportPhone string) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, receiptData{
		Order:        order,
		SupportEmail: supportEmail,
		SupportPhone: supportPhone,
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const receiptTemplate = `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Order Confirmation</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Thank you for your order, {{.Order.CustomerName}}!</h2>
  <p>Order reference: <strong>{{.Order.OrderRef}}</strong></p>
  <table border="0" cellpadding="6">
    <tr><th align="left">Item</th><th align="right">Qty</th><th align="right">Price ({{.Order.Currency}})</th></tr>
    {{range .Order.Items}}
    <tr><td>{{.Name}}</td><td align="right">{{.Quantity}}</td><td align="right">{{.Price}}</td></tr>
    {{end}}
  </table>
  <p>Subtotal: {{.Order.Subtotal}} {{.Order.Currency}}<br>
     Shipping: {{.Order.ShippingFee}} {{.Order.Currency}}<br>
     <strong>Total: {{.Order.Total}} {{.Order.Currency}}</strong></p>
  <p>Payment method: {{.Order.PaymentMethod}}</p>
  <p>Delivery to: {{.Order.ShippingAddr.Line1}}, {{.Order.ShippingAddr.City}}, {{.Order.ShippingAddr.Country}}</p>
  {{if .SupportEmail}}<p>Questions? Contact <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>{{if .SupportPhone}} or {{.SupportPhone}}{{end}}.</p>{{end}}
</body>
</html>
`
