package domain

// Report is the normalized output unit of the reporter. Every field carries
// a defined display value: missing backend data resolves to sentinel strings
// or zero before a Report is constructed, never to an empty field.
type Report struct {
	Name          string
	Status        string
	Plan          string
	StartDate     string
	EndDate       string
	Customer      Customer
	Delivery      Delivery
	Products      []ProductLine
	PaymentTerms  string
	UntaxedAmount float64
	TotalAmount   float64
}

// Customer is the report's partner snapshot. Address is a single formatted
// string with empty components dropped.
type Customer struct {
	Name    string
	Address string
	Phone   string
}

// Delivery is derived from the most recently scheduled outbound shipment
// matching the order, or all sentinels when none exists.
type Delivery struct {
	Name   string
	Status string
	Date   string
}

// ProductLine is one order line; Name is the first line of the backend's
// possibly multi-line description.
type ProductLine struct {
	Name      string
	Quantity  float64
	UnitPrice float64
	Subtotal  float64
}
