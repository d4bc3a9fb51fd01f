package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
)

type Data[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data,omitempty"`
}

type Error struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

type Message struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: true, Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Success: true, Data: &jsonPayload})
}

// WithError sends a response with an error message. Errors without a Failure code are reported as 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Success: false, Error: &errMsg})
}

// WithFile sends data as a downloadable attachment.
func WithFile(writer http.ResponseWriter, fileName, contentType string, data []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	writer.Header().Set("Content-Length", strconv.Itoa(len(data)))
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(data); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{Code: http.StatusTooManyRequests, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithError(writer, &failure.Failure{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload any) {
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
