package api

type Report struct {
	Name          string        `json:"name"`
	Status        string        `json:"status"`
	Plan          string        `json:"plan"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	Customer      Customer      `json:"customer"`
	Delivery      Delivery      `json:"delivery"`
	Products      []ProductLine `json:"products"`
	PaymentTerms  string        `json:"payment_terms"`
	UntaxedAmount float64       `json:"untaxed_amount"`
	TotalAmount   float64       `json:"total_amount"`
}

type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Delivery struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

type ProductLine struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ExcelFile struct {
	FileContent string `json:"fileContent"`
}

type Error struct {
	Error string `json:"error"`
}
