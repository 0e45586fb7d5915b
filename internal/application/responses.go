package application

import "github.com/bnema/void-bridge/internal/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ShutdownResponse struct {
	OK      bool   `json:"ok"`
	Command string `json:"command"`
}

type RegisterResponse struct {
	Stats  domain.Stats         `json:"stats"`
	Events []domain.Event       `json:"events"`
	Top    []domain.RankedEntry `json:"top"`
}

func errorResponse(err *RequestError) ErrorResponse {
	return ErrorResponse{Error: err.Message()}
}
