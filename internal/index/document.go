package index

import (
	"fmt"
	"strings"

	"github.com/ashk12/phone-assistant/internal/domain"
)

// Document builds the textual projection of a product that gets vectorized.
// The projection is deterministic: identical products always produce
// identical documents, which keeps index builds reproducible.
func Document(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s - %.0f\n", p.Brand, p.Name, p.Price)
	fmt.Fprintf(&b, "Camera: %.0fMP\n", p.Camera)
	fmt.Fprintf(&b, "Battery: %.0fmAh with %.0fW charging\n", p.Battery, p.Charging)
	fmt.Fprintf(&b, "RAM: %.0fGB\n", p.RAM)
	fmt.Fprintf(&b, "Screen: %g inches\n", p.ScreenSize)
	fmt.Fprintf(&b, "OS: %s\n", p.OS)
	fmt.Fprintf(&b, "Features: %s\n", strings.Join(p.Features, ", "))
	return b.String()
}
