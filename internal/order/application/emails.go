package application

import (
	"fmt"
	"strings"

	"github.com/trailercraft/storefront/internal/order/domain"
	"github.com/trailercraft/storefront/internal/pricing"
)

func customerSubject(o domain.Order) string {
	return fmt.Sprintf("Your Trailercraft order %s", o.Number)
}

func customerBody(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", o.FirstName)
	fmt.Fprintf(&b, "Thanks for your order! We've received your request for the %s.\n\n", o.TruckName)
	fmt.Fprintf(&b, "Order number: %s\n", o.Number)
	writeOrderSummary(&b, o)
	b.WriteString("\nOur team will reach out within one business day to confirm build details and payment.\n\n")
	b.WriteString("- The Trailercraft Team\n")
	return b.String()
}

func salesSubject(o domain.Order) string {
	return fmt.Sprintf("New order %s from %s %s", o.Number, o.FirstName, o.LastName)
}

func salesBody(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n\n", o.Number)
	fmt.Fprintf(&b, "Customer: %s %s\n", o.FirstName, o.LastName)
	fmt.Fprintf(&b, "Email: %s\nPhone: %s\n", o.Email, o.Phone)
	fmt.Fprintf(&b, "Address: %s, %s, %s %s\n", o.Address, o.City, o.State, o.ZipCode)
	writeOrderSummary(&b, o)
	fmt.Fprintf(&b, "Payment method: %s\n", o.PaymentMethod)
	return b.String()
}

func writeOrderSummary(b *strings.Builder, o domain.Order) {
	fmt.Fprintf(b, "Truck: %s (%s)\n", o.TruckName, o.TruckSize)
	if o.TruckType != "" {
		fmt.Fprintf(b, "Type: %s\n", o.TruckType)
	}
	if len(o.Upgrades) > 0 {
		b.WriteString("Upgrades:\n")
		for _, u := range o.Upgrades {
			fmt.Fprintf(b, "  - %s ($%.2f)\n", u.Name, pricing.Dollars(u.PriceCents))
		}
	}
	fmt.Fprintf(b, "Total: $%.2f\n", pricing.Dollars(o.TotalCents))
}
