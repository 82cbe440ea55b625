package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
