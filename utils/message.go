package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mkpicture/perfect-bites/models"
)

// Fixed French wording of the WhatsApp order message.
const (
	messageTitle  = "🍽️ *Nouvelle Commande - The Perfect Bites*"
	detailsHeader = "📝 *Détails de la commande:*"

	modeLineDelivery = "🛵 *Mode: Livraison*"
	modeLinePickup   = "🏪 *Mode: À emporter*"

	timeLabelDelivery = "🕐 *Heure de livraison souhaitée: %s*"
	timeLabelPickup   = "🕐 *Heure de récupération: %s*"

	closingPickup          = "🏪 Votre commande sera à récupérer sur place. Merci !"
	closingDeliveryLocated = "📍 Livraison à la localisation indiquée ci-dessus."
	closingDeliveryAddress = "📍 Merci de préciser votre adresse de livraison."
)

// ComposeOrderMessage builds the plain-text order message the vendor
// reads on WhatsApp. Line structure is fixed: title, fulfillment mode,
// then optional client name / requested time / location lines (with a
// separating blank line only when at least one of them is present),
// the order details, the total, and a closing sentence that depends on
// how the order is fulfilled. Returns "" for an empty cart; nothing
// should be dispatched in that case.
func ComposeOrderMessage(lines []models.CartLine, total int64, draft models.DeliveryDraft, coords *models.Coordinates) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(messageTitle)
	b.WriteString("\n")

	if draft.Mode == models.ModePickup {
		b.WriteString(modeLinePickup)
	} else {
		b.WriteString(modeLineDelivery)
	}
	b.WriteString("\n")

	hasLocation := draft.Mode == models.ModeDelivery && coords != nil
	optional := false

	if name := draft.TrimmedName(); name != "" {
		fmt.Fprintf(&b, "👤 *Nom: %s*\n", name)
		optional = true
	}
	if t := draft.TrimmedTime(); t != "" {
		label := timeLabelDelivery
		if draft.Mode == models.ModePickup {
			label = timeLabelPickup
		}
		fmt.Fprintf(&b, label+"\n", t)
		optional = true
	}
	if hasLocation {
		fmt.Fprintf(&b, "📍 *Localisation:* %s\n", BuildMapsURL(*coords))
		optional = true
	}
	if optional {
		b.WriteString("\n")
	}

	b.WriteString(detailsHeader)
	b.WriteString("\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s x%d - %s\n", line.Item.Name, line.Quantity, FormatPrice(line.Item.Price*line.Quantity))
	}

	fmt.Fprintf(&b, "\n💰 *Total: %s*\n\n", FormatPrice(total))

	switch {
	case draft.Mode == models.ModePickup:
		b.WriteString(closingPickup)
	case hasLocation:
		b.WriteString(closingDeliveryLocated)
	default:
		b.WriteString(closingDeliveryAddress)
	}

	return b.String()
}

// BuildMapsURL renders a coordinate pair as a Google Maps link with the
// position as a lat,lng query. Decimal degrees, shortest exact form.
func BuildMapsURL(c models.Coordinates) string {
	lat := strconv.FormatFloat(c.Latitude, 'f', -1, 64)
	lng := strconv.FormatFloat(c.Longitude, 'f', -1, 64)
	return "https://www.google.com/maps?q=" + lat + "," + lng
}

// BuildWhatsAppURL builds the wa.me deep link that opens a chat with
// the shop, pre-filled with message. The message is percent-encoded
// for the query string here; pass it in plain text.
func BuildWhatsAppURL(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
