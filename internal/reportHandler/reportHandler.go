package reporthandler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	httpresponsehandler "github.com/NH-Homelab/subscription-report/internal/httpResponseHandler"
	"github.com/NH-Homelab/subscription-report/internal/jwt"
	"github.com/NH-Homelab/subscription-report/internal/models"
)

const (
	ReportPath     = "/applications/apis"
	authCookieName = "auth_token"
	bearerPrefix   = "Bearer "
)

var ErrNoToken = errors.New("no auth token provided")

// Runner is satisfied by *report.Runner.
type Runner interface {
	Run() ([]models.ApplicationAPIs, error)
}

type ReportHandler struct {
	runner   Runner
	verifier *jwt.Verifier
	logger   *zap.Logger
}

// NewReportHandler serves the report. A nil verifier leaves the endpoint open.
func NewReportHandler(runner Runner, verifier *jwt.Verifier, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{
		runner:   runner,
		verifier: verifier,
		logger:   logger,
	}
}

func tokenFromRequest(r *http.Request) (string, error) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimPrefix(h, bearerPrefix), nil
	}
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

func (rh *ReportHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if rh.verifier == nil {
		return true
	}

	token, err := tokenFromRequest(r)
	if err != nil {
		httpresponsehandler.WriteResponse(w, r, rh.logger, httpresponsehandler.ResponseConfig{
			StatusCode:    http.StatusUnauthorized,
			StatusMessage: httpresponsehandler.Error,
			Message:       "No auth token provided",
		})
		return false
	}

	if _, err := rh.verifier.VerifyToken(token); err != nil {
		httpresponsehandler.WriteResponse(w, r, rh.logger, httpresponsehandler.ResponseConfig{
			StatusCode:    http.StatusUnauthorized,
			StatusMessage: httpresponsehandler.Error,
			Message:       "Invalid auth token",
			Err:           err,
		})
		return false
	}
	return true
}

func (rh *ReportHandler) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc(ReportPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			httpresponsehandler.WriteResponse(w, r, rh.logger, httpresponsehandler.ResponseConfig{
				StatusCode:    http.StatusMethodNotAllowed,
				StatusMessage: httpresponsehandler.Error,
				Message:       "Method not allowed",
			})
			return
		}

		if !rh.authorize(w, r) {
			return
		}

		rows, err := rh.runner.Run()
		if err != nil {
			httpresponsehandler.WriteResponse(w, r, rh.logger, httpresponsehandler.ResponseConfig{
				StatusCode:    http.StatusInternalServerError,
				StatusMessage: httpresponsehandler.Error,
				Message:       "Failed to run application apis report",
				Err:           err,
			})
			return
		}

		httpresponsehandler.WriteResponse(w, r, rh.logger, httpresponsehandler.ResponseConfig{
			StatusCode:    http.StatusOK,
			StatusMessage: httpresponsehandler.Success,
			Data:          rows,
		})
	})
}

// LogRequest logs every incoming request before handing it on.
func LogRequest(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("received request",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.String("remote_addr", r.RemoteAddr))
		next.ServeHTTP(w, r)
	})
}
