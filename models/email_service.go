package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// Send dispatches a single message with both plain-text and HTML bodies.
func (s *EmailService) Send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendContactNotification(adminEmail string, req ContactRequest) error {
	subject := fmt.Sprintf("New contact message from %s", req.FullName)
	text := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", req.FullName, req.Email, req.Phone, req.Message)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #0e7490; }
        .message-box { background-color: #ecfeff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">NovaDent Surgical</div>
        <h2 style="color: #333;">New Contact Message</h2>
        <p><strong>From:</strong> %s &lt;%s&gt;</p>
        <p><strong>Phone:</strong> %s</p>
        <div class="message-box">%s</div>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, req.FullName, req.Email, req.Phone, req.Message)

	return s.Send(adminEmail, subject, text, html)
}

func (s *EmailService) SendContactAck(req ContactRequest) error {
	subject := "We received your message - NovaDent Surgical"
	text := fmt.Sprintf("Hello %s,\n\nThank you for contacting NovaDent Surgical. Our team will get back to you within one business day.\n\nNovaDent Surgical Team", req.FullName)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #0e7490; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">NovaDent Surgical</div>
        <h2 style="color: #333;">Thank you for reaching out</h2>
        <p>Hello %s,</p>
        <p>We have received your message and our team will get back to you within one business day.</p>
        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee;">
            <p style="color: #666; font-size: 14px;">Best regards,<br>NovaDent Surgical Team</p>
        </div>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, req.FullName)

	return s.Send(req.Email, subject, text, html)
}

func (s *EmailService) SendQuoteNotification(supplierEmail string, quote *Quote) error {
	subject := fmt.Sprintf("Quote request %s from %s", quote.QuoteNumber, quote.Customer.FullName)

	var textItems strings.Builder
	var htmlItems strings.Builder
	for _, item := range quote.Items {
		variant := joinVariantNames(item)
		fmt.Fprintf(&textItems, "- %s (SKU %s) x%d %s\n", item.ProductName, item.SKU, item.Quantity, variant)
		fmt.Fprintf(&htmlItems,
			`<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>`,
			item.ProductName, item.SKU, item.Quantity, variant)
	}

	text := fmt.Sprintf("Quote request %s\n\nCustomer: %s <%s>\nPhone: %s\nCompany: %s\n\nShipping: %s, %s, %s %s, %s\n\nItems:\n%s",
		quote.QuoteNumber,
		quote.Customer.FullName, quote.Customer.Email, quote.Customer.Phone, quote.Customer.Company,
		quote.ShippingAddress.Street, quote.ShippingAddress.City, quote.ShippingAddress.State,
		quote.ShippingAddress.PostalCode, quote.ShippingAddress.Country,
		textItems.String())

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #0e7490; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 14px; }
        th { background-color: #ecfeff; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">NovaDent Surgical</div>
        <h2 style="color: #333;">Quote Request %s</h2>
        <p><strong>Customer:</strong> %s &lt;%s&gt;</p>
        <p><strong>Phone:</strong> %s &nbsp; <strong>Company:</strong> %s</p>
        <p><strong>Shipping:</strong> %s, %s, %s %s, %s</p>
        <table>
            <tr><th>Product</th><th>SKU</th><th>Qty</th><th>Options</th></tr>
            %s
        </table>
    </div>
</body>
</html>
	`, quote.QuoteNumber,
		quote.Customer.FullName, quote.Customer.Email,
		quote.Customer.Phone, quote.Customer.Company,
		quote.ShippingAddress.Street, quote.ShippingAddress.City, quote.ShippingAddress.State,
		quote.ShippingAddress.PostalCode, quote.ShippingAddress.Country,
		htmlItems.String())

	return s.Send(supplierEmail, subject, text, html)
}

func (s *EmailService) SendQuoteAck(quote *Quote) error {
	subject := fmt.Sprintf("Quote request received %s - NovaDent Surgical", quote.QuoteNumber)
	text := fmt.Sprintf("Hello %s,\n\nWe received your quote request %s covering %d item(s). Our sales team will review it and follow up with pricing shortly.\n\nNovaDent Surgical Team",
		quote.Customer.FullName, quote.QuoteNumber, len(quote.Items))

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #0e7490; }
        .quote-box { background-color: #ecfeff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">NovaDent Surgical</div>
        <h2 style="color: #333;">Quote Request Received</h2>
        <p>Hello %s,</p>
        <div class="quote-box">
            <p><strong>Quote Number:</strong> %s</p>
            <p><strong>Items:</strong> %d</p>
        </div>
        <p>Our sales team will review your request and follow up with pricing shortly.</p>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, quote.Customer.FullName, quote.QuoteNumber, len(quote.Items))

	return s.Send(quote.Customer.Email, subject, text, html)
}

func (s *EmailService) SendOrderConfirmation(toEmail, orderNumber string, total float64) error {
	subject := fmt.Sprintf("Order Confirmation #%s - NovaDent Surgical", orderNumber)
	text := fmt.Sprintf("Thank you for your order!\n\nOrder Number: %s\nTotal: $%.2f\n\nYour order has been received and is being processed.", orderNumber, total)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #0e7490; }
        .order-box { background-color: #ecfeff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">NovaDent Surgical</div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Thank you for your order!</p>
        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Total Amount:</strong> $%.2f</p>
        </div>
        <p>Your order has been received and is being processed. We'll notify you when it ships.</p>
        <div class="footer">
            <p>&copy; 2026 NovaDent Surgical. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
	`, orderNumber, total)

	return s.Send(toEmail, subject, text, html)
}

func joinVariantNames(item QuoteItem) string {
	var parts []string
	if item.ColorName != "" {
		parts = append(parts, item.ColorName)
	}
	if item.MaterialName != "" {
		parts = append(parts, item.MaterialName)
	}
	if item.TipShapeName != "" {
		parts = append(parts, item.TipShapeName)
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
