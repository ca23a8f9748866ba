package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"florist-backend/internal/domains/notification/model"
)

// Channel-specific rendering of one order confirmation. All three channels
// share the currency and date helpers so amounts never disagree between them.

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmount renders an amount as "<symbol><grouped number>". Unknown
// currencies fall back to the raw code as prefix.
func FormatAmount(currency string, amount decimal.Decimal) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = currency + " "
	}
	return symbol + groupThousands(amount)
}

// groupThousands inserts comma separators into the integer part.
// Whole amounts drop the decimal part entirely.
func groupThousands(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	if fracPart != "00" {
		out += "." + fracPart
	}
	return out
}

// FormatLongDate renders "Monday, January 2, 2006" from a YYYY-MM-DD string,
// passing the input through untouched when it does not parse.
func FormatLongDate(dateStr string) string {
	t, err := parseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Monday, January 2, 2006")
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// ================================================
// EMAIL
// ================================================

// RenderEmail produces the confirmation subject, HTML body and text fallback
func RenderEmail(data model.OrderData) (subject, htmlBody, textBody string) {
	order := data.Order
	ship := order.ShippingDetails

	subject = fmt.Sprintf("Order Confirmed - %s", order.OrderNumber)

	var rows strings.Builder
	for _, item := range data.Items {
		rows.WriteString(fmt.Sprintf(`
        <tr>
          <td style="padding:8px 12px;border-bottom:1px solid #eee;">%s</td>
          <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:center;">%d</td>
          <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:right;">%s</td>
        </tr>`,
			item.Product, item.Quantity, FormatAmount(order.Currency, item.FinalPrice)))
	}

	addressLine := ship.Address
	if ship.Apartment != "" {
		addressLine += ", " + ship.Apartment
	}

	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f7f4ef;font-family:Georgia,serif;color:#333;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;">
    <div style="background:#2d5a3d;padding:24px;text-align:center;">
      <h1 style="color:#ffffff;margin:0;font-size:22px;">Spring Blossoms</h1>
      <p style="color:#cfe3d6;margin:4px 0 0;">Thank you for your order, %s!</p>
    </div>
    <div style="padding:24px;">
      <p style="margin:0 0 4px;">Order <strong>%s</strong> placed on %s</p>
      <table style="width:100%%;border-collapse:collapse;margin:16px 0;">
        <tr style="background:#f0ece4;">
          <th style="padding:8px 12px;text-align:left;">Item</th>
          <th style="padding:8px 12px;text-align:center;">Qty</th>
          <th style="padding:8px 12px;text-align:right;">Price</th>
        </tr>%s
        <tr>
          <td colspan="2" style="padding:12px;text-align:right;font-weight:bold;">Total</td>
          <td style="padding:12px;text-align:right;font-weight:bold;">%s</td>
        </tr>
      </table>
      <div style="background:#f7f4ef;padding:16px;border-radius:4px;">
        <p style="margin:0 0 4px;font-weight:bold;">Delivery Details</p>
        <p style="margin:0;">%s<br>%s<br>%s, %s %s<br>Phone: %s</p>
        <p style="margin:8px 0 0;">Delivery: %s, %s</p>
      </div>
    </div>
    <div style="background:#f0ece4;padding:16px;text-align:center;font-size:12px;color:#777;">
      Spring Blossoms Florist &middot; Made with care, delivered with love
    </div>
  </div>
</body>
</html>`,
		data.Customer.Name,
		order.OrderNumber,
		order.CreatedAt.Format("Monday, January 2, 2006"),
		rows.String(),
		FormatAmount(order.Currency, order.TotalAmount),
		ship.FullName,
		addressLine,
		ship.City, ship.State, ship.ZipCode,
		ship.Phone,
		FormatLongDate(ship.DeliveryDate),
		ship.TimeSlot,
	)

	var text strings.Builder
	text.WriteString(fmt.Sprintf("Thank you for your order, %s!\n\n", data.Customer.Name))
	text.WriteString(fmt.Sprintf("Order %s placed on %s\n\n", order.OrderNumber, order.CreatedAt.Format("Monday, January 2, 2006")))
	for _, item := range data.Items {
		text.WriteString(fmt.Sprintf("- %s x%d: %s\n", item.Product, item.Quantity, FormatAmount(order.Currency, item.FinalPrice)))
	}
	text.WriteString(fmt.Sprintf("\nTotal: %s\n", FormatAmount(order.Currency, order.TotalAmount)))
	text.WriteString(fmt.Sprintf("\nDelivery to: %s, %s, %s, %s %s\n", ship.FullName, addressLine, ship.City, ship.State, ship.ZipCode))
	text.WriteString(fmt.Sprintf("Delivery on: %s, %s\n", FormatLongDate(ship.DeliveryDate), ship.TimeSlot))
	textBody = text.String()

	return subject, htmlBody, textBody
}

// ================================================
// SMS
// ================================================

// RenderSMS produces the compact order confirmation text
func RenderSMS(data model.OrderData) string {
	order := data.Order
	return fmt.Sprintf(
		"Hi %s! Your Spring Blossoms order %s (%s) is confirmed. Delivery: %s, %s. Thank you!",
		data.Customer.Name,
		order.OrderNumber,
		FormatAmount(order.Currency, order.TotalAmount),
		FormatLongDate(order.ShippingDetails.DeliveryDate),
		order.ShippingDetails.TimeSlot,
	)
}

// ================================================
// WHATSAPP
// ================================================

// RenderWhatsApp produces the richer confirmation with *bold* markup
func RenderWhatsApp(data model.OrderData) string {
	order := data.Order
	ship := order.ShippingDetails

	var b strings.Builder
	b.WriteString("*Spring Blossoms - Order Confirmed*\n\n")
	b.WriteString(fmt.Sprintf("Hello %s, thank you for your order!\n\n", data.Customer.Name))
	b.WriteString(fmt.Sprintf("*Order:* %s\n", order.OrderNumber))
	b.WriteString(fmt.Sprintf("*Placed:* %s\n\n", order.CreatedAt.Format("Monday, January 2, 2006")))

	b.WriteString("*Items:*\n")
	for _, item := range data.Items {
		b.WriteString(fmt.Sprintf("- %s x%d: %s\n", item.Product, item.Quantity, FormatAmount(order.Currency, item.FinalPrice)))
	}

	b.WriteString(fmt.Sprintf("\n*Total:* %s\n\n", FormatAmount(order.Currency, order.TotalAmount)))

	addressLine := ship.Address
	if ship.Apartment != "" {
		addressLine += ", " + ship.Apartment
	}
	b.WriteString(fmt.Sprintf("*Delivery:* %s, %s\n", FormatLongDate(ship.DeliveryDate), ship.TimeSlot))
	b.WriteString(fmt.Sprintf("*Address:* %s, %s, %s %s\n", addressLine, ship.City, ship.State, ship.ZipCode))
	if ship.Notes != "" {
		b.WriteString(fmt.Sprintf("*Notes:* %s\n", ship.Notes))
	}

	b.WriteString("\nMade with care, delivered with love.")
	return b.String()
}

// ================================================
// STATUS UPDATE EMAIL
// ================================================

var statusMessages = map[string]string{
	"confirmed":        "Your order has been confirmed and our florists are on it.",
	"processing":       "Your arrangement is being prepared.",
	"out_for_delivery": "Your flowers are out for delivery!",
	"delivered":        "Your order has been delivered. We hope it brought a smile!",
	"cancelled":        "Your order has been cancelled.",
}

// RenderStatusEmail produces the subject/body pair for a status change
func RenderStatusEmail(data model.OrderData, newStatus string) (subject, htmlBody, textBody string) {
	message, ok := statusMessages[newStatus]
	if !ok {
		message = fmt.Sprintf("Your order status is now: %s", newStatus)
	}

	subject = fmt.Sprintf("Order %s - %s", data.Order.OrderNumber, strings.ReplaceAll(newStatus, "_", " "))
	textBody = fmt.Sprintf("Hi %s,\n\n%s\n\nOrder: %s\n\nSpring Blossoms", data.Customer.Name, message, data.Order.OrderNumber)
	htmlBody = fmt.Sprintf(`<!DOCTYPE html>
<html><body style="font-family:Georgia,serif;color:#333;">
<p>Hi %s,</p>
<p>%s</p>
<p>Order: <strong>%s</strong></p>
<p>Spring Blossoms</p>
</body></html>`, data.Customer.Name, message, data.Order.OrderNumber)

	return subject, htmlBody, textBody
}
