package report

import (
	"strings"
	"time"

	"github.com/de-tools/odoo-reporter/pkg/models/store"
)

// Sentinel display values substituted for missing backend data.
const (
	NotAvailable  = "Not Available"
	NotApplicable = "N/A"
	InvalidDate   = "Invalid Date"
)

var subscriptionStatusLabels = map[string]string{
	"1_draft":   "Draft",
	"2_open":    "Active",
	"3_pending": "Pending",
	"4_close":   "Closed",
	"6_churn":   "Churned",
	statePlaceholder: NotApplicable,
}

var deliveryStatusLabels = map[string]string{
	"draft":     "Draft",
	"waiting":   "Waiting",
	"confirmed": "Confirmed",
	"assigned":  "Preparation",
	"done":      "Delivered",
	"cancel":    "Cancelled",
}

// SubscriptionStatusLabel maps a subscription state code to its display
// label. Unknown codes pass through capitalized; empty stays empty.
func SubscriptionStatusLabel(code string) string {
	if label, ok := subscriptionStatusLabels[code]; ok {
		return label
	}
	return capitalize(code)
}

// DeliveryStatusLabel maps a stock picking state code to its display label.
func DeliveryStatusLabel(code string) string {
	if label, ok := deliveryStatusLabels[code]; ok {
		return label
	}
	return capitalize(code)
}

// FormatDate converts the backend's "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS"
// values to "MM/DD/YYYY".
func FormatDate(raw string) string {
	if raw == "" {
		return NotAvailable
	}

	layout := "2006-01-02"
	if strings.Contains(raw, " ") {
		layout = "2006-01-02 15:04:05"
	}

	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return InvalidDate
	}
	return parsed.Format("01/02/2006")
}

// FormatAddress joins street, street2, city and "<state> (<country>)" with
// commas, dropping empty components. The state/country segment appears only
// when both are present.
func FormatAddress(customer store.Record) string {
	state := customer.Relation("state_id").Label
	country := customer.Relation("country_id").Label

	region := ""
	if state != "" && country != "" {
		region = state + " (" + country + ")"
	}

	parts := []string{
		customer.Str("street", ""),
		customer.Str("street2", ""),
		customer.Str("city", ""),
		region,
	}

	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
