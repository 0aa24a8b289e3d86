package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

var (
	ErrUnauthenticated     = errors.New("authentication required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidPassword     = errors.New("password must be 8 to 72 bytes")
	ErrInvalidRequestBody  = errors.New("invalid request body")
	ErrInvalidQueryParam   = errors.New("invalid query parameter")
	ErrNotInTeam           = errors.New("you are not in a team")
	ErrRateLimited         = errors.New("too many requests, try again later")
	errInternalServerError = errors.New("internal server error")
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order with errors.Is. Unlisted errors are internal errors.
var errorMappings = []errorMapping{
	{ErrInvalidRequestBody, http.StatusBadRequest, "invalid_request"},
	{ErrInvalidQueryParam, http.StatusBadRequest, "invalid_query_parameter"},
	{ErrInvalidPassword, http.StatusBadRequest, "invalid_password"},
	{core.ErrInvalidEmail, http.StatusBadRequest, "invalid_email"},
	{core.ErrInvalidDisplayName, http.StatusBadRequest, "invalid_display_name"},
	{core.ErrInvalidTeamName, http.StatusBadRequest, "invalid_team_name"},
	{core.ErrInvalidMaxMembers, http.StatusBadRequest, "invalid_max_members"},
	{core.ErrInviteCodeRequired, http.StatusBadRequest, "invite_code_required"},
	{core.ErrInvalidNotification, http.StatusBadRequest, "invalid_notification"},

	{ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{ErrInvalidSession, http.StatusUnauthorized, "unauthenticated"},
	{ErrSessionExpired, http.StatusUnauthorized, "session_expired"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},

	{core.ErrNotTeamMember, http.StatusForbidden, "not_team_member"},
	{core.ErrNotTeamOwner, http.StatusForbidden, "not_team_owner"},

	{ErrNotInTeam, http.StatusNotFound, "not_in_team"},
	{core.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
	{core.ErrTeamNotFound, http.StatusNotFound, "team_not_found"},
	{core.ErrInviteNotFound, http.StatusNotFound, "invite_not_found"},
	{core.ErrDailySetNotFound, http.StatusNotFound, "daily_set_not_found"},
	{core.ErrQuestItemNotFound, http.StatusNotFound, "quest_item_not_found"},
	{core.ErrNotificationNotFound, http.StatusNotFound, "notification_not_found"},

	{core.ErrEmailAlreadyRegistered, http.StatusConflict, "email_taken"},
	{core.ErrAlreadyInTeam, http.StatusConflict, "already_in_team"},
	{core.ErrTeamFull, http.StatusConflict, "team_full"},
	{core.ErrTeamLocked, http.StatusConflict, "team_locked"},
	{core.ErrTeamDissolved, http.StatusConflict, "team_dissolved"},
	{core.ErrInviteInactive, http.StatusConflict, "invite_inactive"},
	{core.ErrInviteExpired, http.StatusConflict, "invite_expired"},
	{core.ErrInviteCodeTaken, http.StatusConflict, "invite_code_taken"},

	{core.ErrNotEnoughQuests, http.StatusServiceUnavailable, "quest_catalog_exhausted"},
	{core.ErrInviteCodeGenerationFailed, http.StatusServiceUnavailable, "invite_code_unavailable"},

	{ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// statusFor maps err to a status code, a machine-readable code and the message shown to clients.
// Internal errors get a generic message.
func statusFor(err error) (int, string, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code, m.err.Error()
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return httpErr.Code, "http_error", message
	}

	return http.StatusInternalServerError, "internal", errInternalServerError.Error()
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.Error(err),
		)
	}

	if writeErr := c.JSON(status, ErrorResponse{Error: message, Code: code}); writeErr != nil {
		s.logger.Warn("writing error response failed", zap.Error(writeErr))
	}
}
