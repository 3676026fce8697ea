package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"canteen/internal/order"
)

// Text is the printable invoice body handed to the PDF engine.
func Text(o order.Order) string {
	return fmt.Sprintf(
		"Invoice\n\nOrder ID: %d\nItem: %s\nQuantity: %d\nTotal Price: %s",
		o.ID, o.Item, o.Quantity, FormatPrice(o.TotalPrice),
	)
}

// FormatPrice prints the shortest decimal form, keeping one fractional
// digit for whole amounts (30 -> "30.0").
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func Filename(orderID int) string {
	return fmt.Sprintf("invoice_%d.pdf", orderID)
}
