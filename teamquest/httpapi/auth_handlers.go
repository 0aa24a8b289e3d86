package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/signup"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/myteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/usercredentials"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/userprofile"
)

const (
	minPasswordBytes = 8
	maxPasswordBytes = 72 // bcrypt ignores everything after 72 bytes
)

func validatePassword(password string) error {
	if len(password) < minPasswordBytes || len(password) > maxPasswordBytes {
		return ErrInvalidPassword
	}

	return nil
}

func (s *Server) handleSignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := validatePassword(req.Password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		return err
	}

	now := s.now()
	command := signup.BuildCommand(uuid.NewString(), req.Email, req.DisplayName, string(hash), now)

	if _, err = s.handlers.SignUp.Handle(c.Request().Context(), command); err != nil {
		return err
	}

	if err = s.setSessionCookie(c, command.UserID, now); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, UserResponse{
		UserID:      command.UserID,
		Email:       command.Email,
		DisplayName: command.DisplayName,
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	credentials, err := s.handlers.UserCredentials.Handle(c.Request().Context(), usercredentials.BuildQuery(req.Email))
	if err != nil {
		return err
	}

	if !credentials.Found {
		return ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(credentials.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err = s.setSessionCookie(c, credentials.UserID, s.now()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, UserResponse{
		UserID:      credentials.UserID,
		DisplayName: credentials.DisplayName,
	})
}

func (s *Server) handleLogout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleMe(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	profile, err := s.handlers.UserProfile.Handle(ctx, userprofile.BuildQuery(userID))
	if err != nil {
		return err
	}

	team, err := s.handlers.MyTeam.Handle(ctx, myteam.BuildQuery(userID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MeResponse{
		UserID:      profile.UserID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		SignedUpAt:  profile.SignedUpAt,
		TeamID:      team.TeamID,
		IsTeamOwner: team.IsOwner,
	})
}

func (s *Server) setSessionCookie(c echo.Context, userID string, now time.Time) error {
	value, expiresAt, err := s.sessions.Issue(userID, now)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
