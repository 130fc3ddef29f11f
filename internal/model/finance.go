package model

// FinancialData holds the monthly income, replaced wholesale on edit.
type FinancialData struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
}
