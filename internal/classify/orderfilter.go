package classify

import "strings"

// orderKeywords marks an email as a probable purchase order. Applied by the
// mail source, never inside the core pipeline: a message that reaches the
// pipeline is always processed.
var orderKeywords = []string{
	"place order", "purchase order", "po#", "po #", "purchase", "order request",
	"order placed", "request to ship", "please supply", "need", "quantity",
}

// IsOrderEmail reports whether the text looks like an order request.
func IsOrderEmail(text string) bool {
	t := strings.ToLower(text)
	for _, kw := range orderKeywords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
