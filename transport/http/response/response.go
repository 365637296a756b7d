package response

import (
	"encoding/json"
	"net/http"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/logger"
	"sync/atomic"
)

type Data[T any] struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    *T      `json:"data,omitempty"`
}

type Error struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}

type Message struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

var exposeInternal atomic.Bool

// ExposeInternalErrors controls whether 5xx responses carry the underlying error text.
// It is switched on outside production.
func ExposeInternalErrors(expose bool) {
	exposeInternal.Store(expose)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: isSuccess(code), Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Success: isSuccess(code), Data: &jsonPayload})
}

// WithMessageAndJSON sends a JSON object together with a human readable message
func WithMessageAndJSON(writer http.ResponseWriter, code int, message string, jsonPayload interface{}) {
	response(writer, code, Data[any]{Success: isSuccess(code), Message: &message, Data: &jsonPayload})
}

// WithError sends a response with an error message. Errors that are not failures become a 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	payload := Error{}

	if failure.IsFailure(err) {
		message := err.Error()
		payload.Message = &message
	} else {
		message := constant.ResponseErrorInternal
		payload.Message = &message

		if exposeInternal.Load() {
			detail := err.Error()
			payload.Error = &detail
		}
	}

	response(writer, code, payload)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func isSuccess(code int) bool {
	return code < http.StatusBadRequest
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
