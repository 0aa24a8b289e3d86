package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/createteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/deactivateinvite"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/dissolveteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/jointeam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/regenerateinvite"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/myteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/teamdetail"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

func (s *Server) handleCreateTeam(c echo.Context) error {
	var req CreateTeamRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	userID := currentUserID(c)
	command := createteam.BuildCommand(uuid.NewString(), userID, req.Name, req.MaxMembers, s.now())

	if _, err := s.handlers.CreateTeam.Handle(c.Request().Context(), command); err != nil {
		return err
	}

	return s.respondWithTeam(c, http.StatusCreated, command.TeamID)
}

func (s *Server) handleJoinTeam(c echo.Context) error {
	var req JoinTeamRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	userID := currentUserID(c)

	result, err := s.handlers.JoinTeam.Handle(ctx, jointeam.BuildCommand(userID, req.InviteCode, s.now()))
	if err != nil {
		return err
	}

	if joined, ok := shell.AppendedEvent[core.MemberJoinedTeam](result); ok {
		return s.respondWithTeam(c, http.StatusOK, joined.TeamID)
	}

	// idempotent: the user is already a member of the team behind the code
	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	return s.respondWithTeam(c, http.StatusOK, team.TeamID)
}

func (s *Server) handleTeamDetail(c echo.Context) error {
	return s.respondWithTeam(c, http.StatusOK, c.Param("team_id"))
}

func (s *Server) handleRegenerateInvite(c echo.Context) error {
	teamID := c.Param("team_id")
	command := regenerateinvite.BuildCommand(teamID, currentUserID(c), s.now())

	result, err := s.handlers.RegenerateInvite.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}

	issued, ok := shell.AppendedEvent[core.InviteCodeIssued](result)
	if !ok {
		return s.respondWithTeam(c, http.StatusOK, teamID)
	}

	return c.JSON(http.StatusOK, inviteResponse(issued.InviteCode, true, issued.ExpiresAt))
}

func (s *Server) handleDeactivateInvite(c echo.Context) error {
	command := deactivateinvite.BuildCommand(c.Param("team_id"), currentUserID(c), s.now())

	if _, err := s.handlers.DeactivateInvite.Handle(c.Request().Context(), command); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleDissolveTeam(c echo.Context) error {
	command := dissolveteam.BuildCommand(c.Param("team_id"), currentUserID(c), s.now())

	if _, err := s.handlers.DissolveTeam.Handle(c.Request().Context(), command); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithTeam(c echo.Context, status int, teamID string) error {
	detail, err := s.handlers.TeamDetail.Handle(c.Request().Context(), teamdetail.BuildQuery(teamID, currentUserID(c)))
	if err != nil {
		return err
	}

	return c.JSON(status, teamResponseFrom(detail))
}

// currentTeam returns the team of userID or ErrNotInTeam.
func (s *Server) currentTeam(ctx context.Context, userID string) (myteam.MyTeam, error) {
	team, err := s.handlers.MyTeam.Handle(ctx, myteam.BuildQuery(userID))
	if err != nil {
		return myteam.MyTeam{}, err
	}

	if !team.InTeam() {
		return myteam.MyTeam{}, ErrNotInTeam
	}

	return team, nil
}
