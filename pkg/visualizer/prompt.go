package visualizer

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the instruction sent alongside the customer photo and
// the paver texture swatch. Product prompts from the catalog are appended
// verbatim so admins can tune results per product.
func BuildPrompt(productName, variantName, productPrompt string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a photo editor for a paver installation company. ")
	fmt.Fprintf(&b, "The first image is a customer's outdoor space. The second image is a paver texture swatch: %s", productName)
	if variantName != "" {
		fmt.Fprintf(&b, " in %s", variantName)
	}
	b.WriteString(". ")
	b.WriteString("Replace the ground surface (driveway, patio, or walkway) in the first image with pavers using the swatch texture, laid in a realistic pattern with correct perspective, scale, and lighting. ")
	b.WriteString("Keep every other element of the photo unchanged. ")
	b.WriteString("Return only the edited image as a base64 data URL.")

	if p := strings.TrimSpace(productPrompt); p != "" {
		b.WriteString(" ")
		b.WriteString(p)
	}
	return b.String()
}
