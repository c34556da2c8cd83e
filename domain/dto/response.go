package dto

// Res is the generic error envelope for non-2xx responses.
type Res struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
}
