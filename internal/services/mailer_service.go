package services

import (
	"fmt"
	"log"
	"time"

	"github.com/DKessler95/limonade-webshop/internal/models"
	"github.com/DKessler95/limonade-webshop/pkg/mailer"
)

// MailerService is the notification gateway. Every send is best-effort:
// delivery runs in the background, failures are logged and never reach
// the caller. Ledger and order writes stay authoritative regardless of
// mail outcome.
type MailerService interface {
	SendRamenReceived(order *models.RamenOrder)
	SendRamenAdminNotification(order *models.RamenOrder, totalBookings int)
	SendRamenInvitation(emails []string, day time.Time)
	SendRamenStatusUpdate(order *models.RamenOrder)
	SendOrderConfirmation(order *models.Order, productName string)
	SendOrderAdminNotification(order *models.Order, productName string)
	SendOrderStatusUpdate(order *models.Order, productName string)
	SendContactNotification(message *models.ContactMessage)
	SendTestEmail() bool
}

type mailerService struct {
	client     *mailer.Client
	adminEmail string
}

func NewMailerService(client *mailer.Client, adminEmail string) MailerService {
	return &mailerService{client: client, adminEmail: adminEmail}
}

// dispatch sends in the background with one retry. Callers never block
// on delivery and never see an error.
func (s *mailerService) dispatch(to []string, subject, textBody, htmlBody string) {
	go func() {
		ok, err := s.client.Send(to, subject, textBody, htmlBody)
		if ok {
			return
		}
		log.Printf("Mail send failed (subject %q, retrying): %v", subject, err)

		time.Sleep(2 * time.Second)
		ok, err = s.client.Send(to, subject, textBody, htmlBody)
		if !ok {
			log.Printf("Mail send failed after retry (subject %q): %v", subject, err)
		}
	}()
}

var dutchDays = map[time.Weekday]string{
	time.Sunday:    "zondag",
	time.Monday:    "maandag",
	time.Tuesday:   "dinsdag",
	time.Wednesday: "woensdag",
	time.Thursday:  "donderdag",
	time.Friday:    "vrijdag",
	time.Saturday:  "zaterdag",
}

var dutchMonths = map[time.Month]string{
	time.January:   "januari",
	time.February:  "februari",
	time.March:     "maart",
	time.April:     "april",
	time.May:       "mei",
	time.June:      "juni",
	time.July:      "juli",
	time.August:    "augustus",
	time.September: "september",
	time.October:   "oktober",
	time.November:  "november",
	time.December:  "december",
}

// formatDutchDate renders a calendar day the way the storefront shows
// dates, e.g. "vrijdag 5 september 2025".
func formatDutchDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d", dutchDays[t.Weekday()], t.Day(), dutchMonths[t.Month()], t.Year())
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *mailerService) SendRamenReceived(order *models.RamenOrder) {
	dateStr := formatDutchDate(order.PreferredDate)

	textBody := fmt.Sprintf(`Hallo %s,

Bedankt voor je ramen reservering bij Pluk & Poot!

Je reservering:
Datum: %s
Aantal personen: %d
Status: In afwachting van bevestiging

We bevestigen je reservering zodra we genoeg personen hebben voor deze datum.
Je ontvangt een bevestigingsmail zodra het evenement definitief doorgaat.

Met vriendelijke groet,
Damian van Pluk & Poot`, order.CustomerName, dateStr, order.Servings)

	htmlBody := fmt.Sprintf(`<h1>🍜 Ramen Reservering Ontvangen</h1>
<p>Hallo %s,</p>
<p>Bedankt voor je ramen reservering bij <strong>Pluk &amp; Poot</strong>!</p>
<p><strong>Datum:</strong> %s<br><strong>Aantal personen:</strong> %d<br><strong>Status:</strong> In afwachting van bevestiging</p>
<p>We bevestigen je reservering zodra we genoeg personen hebben voor deze datum.</p>`,
		order.CustomerName, dateStr, order.Servings)

	s.dispatch([]string{order.CustomerEmail}, "Ramen Reservering Ontvangen - Pluk & Poot 🍜", textBody, htmlBody)
}

func (s *mailerService) SendRamenAdminNotification(order *models.RamenOrder, totalBookings int) {
	dateStr := formatDutchDate(order.PreferredDate)

	textBody := fmt.Sprintf(`Er is een nieuwe ramen boeking binnengekomen op je website!

Klant: %s
Email: %s
Telefoon: %s
Gewenste Datum: %s
Aantal Porties: %d
Opmerkingen: %s
Status: %s
Totaal boekingen voor deze datum: %d

Log in op je admin dashboard om de boeking te bekijken en te beheren.`,
		order.CustomerName, order.CustomerEmail, orDefault(order.CustomerPhone, "Niet opgegeven"),
		dateStr, order.Servings, orDefault(order.Notes, "Geen opmerkingen"), order.Status, totalBookings)

	htmlBody := fmt.Sprintf(`<h1>🔔 Nieuwe Ramen Boeking</h1>
<p><strong>Klant:</strong> %s<br><strong>Email:</strong> %s<br><strong>Datum:</strong> %s<br><strong>Totaal boekingen:</strong> %d</p>`,
		order.CustomerName, order.CustomerEmail, dateStr, totalBookings)

	s.dispatch([]string{s.adminEmail}, "🔔 Nieuwe Ramen Boeking - Pluk & Poot", textBody, htmlBody)
}

func (s *mailerService) SendRamenInvitation(emails []string, day time.Time) {
	dateStr := formatDutchDate(day)
	subject := fmt.Sprintf("🍜 Ramen Ervaring Bevestiging - %s", dateStr)

	textBody := fmt.Sprintf(`Beste ramen liefhebber,

Geweldig nieuws! We hebben genoeg aanmeldingen voor de ramen ervaring op %s.

Details:
- Datum: %s
- Tijd: 18:00 - 20:00
- Locatie: Pluk & Poot, Groningen

We nemen binnenkort contact met je op voor de finale details.

Met vriendelijke groet,
Het Pluk & Poot Team`, dateStr, dateStr)

	htmlBody := fmt.Sprintf(`<h1>🍜 Ramen Ervaring Bevestiging</h1>
<p>Beste ramen liefhebber,</p>
<p><strong>Geweldig nieuws!</strong> We hebben genoeg aanmeldingen voor de ramen ervaring op <strong>%s</strong>.</p>
<ul><li>📅 Datum: %s</li><li>🕕 Tijd: 18:00 - 20:00</li><li>📍 Locatie: Pluk &amp; Poot, Groningen</li></ul>`,
		dateStr, dateStr)

	s.dispatch(emails, subject, textBody, htmlBody)
}

func (s *mailerService) SendRamenStatusUpdate(order *models.RamenOrder) {
	dateStr := formatDutchDate(order.PreferredDate)
	subject := fmt.Sprintf("Status Update Ramen Reservering - %s", dateStr)

	textBody := fmt.Sprintf(`Hallo %s,

De status van je ramen reservering voor %s is bijgewerkt.

Nieuwe status: %s

Met vriendelijke groet,
Het Pluk & Poot Team`, order.CustomerName, dateStr, order.Status)

	htmlBody := fmt.Sprintf(`<h1>Status Update Ramen Reservering</h1>
<p>Hallo %s,</p>
<p>De status van je reservering voor <strong>%s</strong> is nu: <strong>%s</strong>.</p>`,
		order.CustomerName, dateStr, order.Status)

	s.dispatch([]string{order.CustomerEmail}, subject, textBody, htmlBody)
}

func (s *mailerService) SendOrderConfirmation(order *models.Order, productName string) {
	textBody := fmt.Sprintf(`Hallo %s,

Bedankt voor je bestelling bij Pluk & Poot!

Je bestelling:
Product: %s
Aantal: %d
Totaal: €%s
Bezorging: %s
Status: %s

We nemen contact met je op zodra je bestelling klaar staat.

Met vriendelijke groet,
Damian van Pluk & Poot`,
		order.CustomerName, productName, order.Quantity, order.TotalAmount.StringFixed(2),
		deliveryLabel(order.DeliveryMethod), order.Status)

	htmlBody := fmt.Sprintf(`<h1>Bestelling Ontvangen</h1>
<p>Hallo %s,</p>
<p>Bedankt voor je bestelling bij <strong>Pluk &amp; Poot</strong>!</p>
<p><strong>Product:</strong> %s<br><strong>Aantal:</strong> %d<br><strong>Totaal:</strong> €%s<br><strong>Bezorging:</strong> %s</p>`,
		order.CustomerName, productName, order.Quantity, order.TotalAmount.StringFixed(2),
		deliveryLabel(order.DeliveryMethod))

	s.dispatch([]string{order.CustomerEmail}, "Bestelling Ontvangen - Pluk & Poot", textBody, htmlBody)
}

func (s *mailerService) SendOrderAdminNotification(order *models.Order, productName string) {
	textBody := fmt.Sprintf(`Nieuwe Siroop Bestelling!

Klant: %s
Email: %s
Telefoon: %s
Product: %s
Aantal: %d
Totaal: €%s
Bezorging: %s%s
Opmerkingen: %s
Status: %s`,
		order.CustomerName, order.CustomerEmail, orDefault(order.CustomerPhone, "Niet opgegeven"),
		productName, order.Quantity, order.TotalAmount.StringFixed(2),
		deliveryLabel(order.DeliveryMethod), deliveryAddress(order),
		orDefault(order.Notes, "Geen opmerkingen"), order.Status)

	htmlBody := fmt.Sprintf(`<h1>🔔 Nieuwe Siroop Bestelling</h1>
<p><strong>Klant:</strong> %s<br><strong>Product:</strong> %s<br><strong>Aantal:</strong> %d<br><strong>Totaal:</strong> €%s</p>`,
		order.CustomerName, productName, order.Quantity, order.TotalAmount.StringFixed(2))

	s.dispatch([]string{s.adminEmail}, "🔔 Nieuwe Siroop Bestelling - Pluk & Poot", textBody, htmlBody)
}

func (s *mailerService) SendOrderStatusUpdate(order *models.Order, productName string) {
	subject := fmt.Sprintf("Status Update Bestelling #%d - Pluk & Poot", order.ID)

	textBody := fmt.Sprintf(`Hallo %s,

De status van je bestelling is bijgewerkt.

Product: %s
Aantal: %d
Totaal: €%s
Nieuwe status: %s

Met vriendelijke groet,
Het Pluk & Poot Team`,
		order.CustomerName, productName, order.Quantity, order.TotalAmount.StringFixed(2), order.Status)

	htmlBody := fmt.Sprintf(`<h1>Status Update Bestelling</h1>
<p>Hallo %s,</p>
<p>De status van je bestelling (%s) is nu: <strong>%s</strong>.</p>`,
		order.CustomerName, productName, order.Status)

	s.dispatch([]string{order.CustomerEmail}, subject, textBody, htmlBody)
}

func (s *mailerService) SendContactNotification(message *models.ContactMessage) {
	subject := fmt.Sprintf("📬 Nieuw Contact Bericht - %s", message.Subject)

	textBody := fmt.Sprintf(`Er is een nieuw contact bericht binnengekomen via je website!

Naam: %s %s
Email: %s
Onderwerp: %s

Bericht:
%s`, message.FirstName, message.LastName, message.Email, message.Subject, message.Message)

	htmlBody := fmt.Sprintf(`<h1>📬 Nieuw Contact Bericht</h1>
<p><strong>Naam:</strong> %s %s<br><strong>Email:</strong> %s<br><strong>Onderwerp:</strong> %s</p>
<p>%s</p>`, message.FirstName, message.LastName, message.Email, message.Subject, message.Message)

	s.dispatch([]string{s.adminEmail}, subject, textBody, htmlBody)
}

// SendTestEmail is the one synchronous send: the admin dashboard wants
// the actual relay result.
func (s *mailerService) SendTestEmail() bool {
	ok, err := s.client.Send([]string{s.adminEmail},
		"Test Email - Pluk & Poot",
		"Dit is een test email. Als je dit ontvangt werkt de email functionaliteit correct!",
		"<h1>Test Email</h1><p>Als je dit ontvangt werkt de email functionaliteit correct!</p>")
	if err != nil {
		log.Printf("Test email failed: %v", err)
	}
	return ok
}

func deliveryLabel(method string) string {
	if method == string(models.DeliveryDelivery) {
		return "Bezorgen"
	}
	return "Ophalen"
}

func deliveryAddress(order *models.Order) string {
	if order.DeliveryMethod != string(models.DeliveryDelivery) || order.StreetAddress == "" {
		return ""
	}
	return fmt.Sprintf("\nBezorgadres:\n%s\n%s %s\n%s", order.StreetAddress, order.PostalCode, order.City, order.Country)
}
