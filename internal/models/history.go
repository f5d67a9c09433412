package models

// HistoryResponse represents a page of the caller's journal entries
// swagger:model HistoryResponse
type HistoryResponse struct {
	Transactions []TransactionDB `json:"transactions"`
}

// HistoryErrorResponse represents an error response for transaction history
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}
