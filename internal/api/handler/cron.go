package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/clearpipe/outreach-insights-api/internal/scheduler"
	"github.com/clearpipe/outreach-insights-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

const (
	CronJobTypeCredentialCheck = "credential-check"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	CredentialCheckService *scheduler.CredentialCheckService
}

// RunCronJob triggers one scheduled job out of band.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeCredentialCheck:
			if services.CredentialCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Credential check service not available", nil)
				return
			}

			go services.CredentialCheckService.Run(context.Background())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Unknown cron job type", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("cron job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus exposes each scheduler's last run state.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.CredentialCheckService != nil {
			status[CronJobTypeCredentialCheck] = services.CredentialCheckService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
