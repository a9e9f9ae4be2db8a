package httpresponsehandler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Status string

const (
	Success Status = "success"
	Error   Status = "error"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsError() bool {
	return s == Error
}

type ResponseConfig struct {
	StatusCode    int
	StatusMessage Status
	Message       string
	Data          interface{}
	Err           error
}

type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func WriteResponse(w http.ResponseWriter, r *http.Request, logger *zap.Logger, config ResponseConfig) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", config.StatusCode),
		zap.String("message", config.Message),
	}

	switch {
	case config.Err != nil:
		logger.Warn("request failed", append(fields, zap.Error(config.Err))...)
	case config.StatusMessage.IsError():
		logger.Info("request rejected", fields...)
	default:
		logger.Debug("writing response", fields...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(config.StatusCode)
	_ = json.NewEncoder(w).Encode(response{
		Status:  config.StatusMessage.String(),
		Message: config.Message,
		Data:    config.Data,
	})
}
