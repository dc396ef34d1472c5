package dto

// ResultResponse wraps every successful payload under the "result" key.
type ResultResponse struct {
	Result interface{} `json:"result"`
}

// MessageResponse carries a single human-readable message, used for
// 401 bodies and the route-not-found fallback.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewResultResponse builds the standard success envelope.
func NewResultResponse(result interface{}) ResultResponse {
	return ResultResponse{Result: result}
}
