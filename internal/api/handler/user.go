package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/clearpipe/outreach-insights-api/internal/domain"
	"github.com/clearpipe/outreach-insights-api/internal/usecases/authenticating"
	"github.com/clearpipe/outreach-insights-api/pkg/apiErrors"
	"github.com/clearpipe/outreach-insights-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers()
		if err != nil {
			logrus.WithError(err).Error("users: failed to list users")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list users", nil)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user domain.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		// Admins can create users without a password; one is generated and
		// returned once in the response.
		var tempPassword string
		if user.PasswordHash == "" {
			generated, err := utils.GenerateTempPassword()
			if err != nil {
				logrus.WithError(err).Error("users: failed to generate temporary password")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to create user", nil)
				return
			}

			tempPassword = generated
			user.PasswordHash = generated
		}

		created, err := service.CreateUser(&user)
		if err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			logrus.WithError(err).Error("users: failed to create user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to create user", nil)
			return
		}

		created.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if tempPassword != "" {
			json.NewEncoder(w).Encode(map[string]any{
				"user":             created,
				"initial_password": tempPassword,
			})
			return
		}

		json.NewEncoder(w).Encode(created)
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")
		userID, err := strconv.Atoi(idParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid user ID", nil)
			return
		}

		user, err := service.GetUserProfile(userID)
		if err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			logrus.WithError(err).Error("users: failed to load user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to load user", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := httprouter.ParamsFromContext(r.Context()).ByName("id")
		userID, err := strconv.Atoi(idParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid user ID", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request format", nil)
			return
		}

		req.ID = userID

		if err := service.UpdateUser(&req); err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}

			logrus.WithError(err).Error("users: failed to update user")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to update user", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "user updated",
		})
	}
}
