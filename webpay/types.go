package webpay

type createRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int    `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type CreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// TransactionResponse is the gateway's commit/status payload. A ResponseCode
// of zero means the transaction was approved.
type TransactionResponse struct {
	VCI                string     `json:"vci,omitempty"`
	Amount             int        `json:"amount"`
	Status             string     `json:"status,omitempty"`
	BuyOrder           string     `json:"buy_order"`
	SessionID          string     `json:"session_id,omitempty"`
	CardDetail         CardDetail `json:"card_detail,omitempty"`
	AccountingDate     string     `json:"accounting_date,omitempty"`
	TransactionDate    string     `json:"transaction_date"`
	AuthorizationCode  string     `json:"authorization_code"`
	PaymentTypeCode    string     `json:"payment_type_code"`
	ResponseCode       int        `json:"response_code"`
	InstallmentsNumber int        `json:"installments_number,omitempty"`
}

type CardDetail struct {
	CardNumber string `json:"card_number,omitempty"`
}

// Approved reports whether the gateway accepted the transaction.
func (t TransactionResponse) Approved() bool {
	return t.ResponseCode == 0
}
