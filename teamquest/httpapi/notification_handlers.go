package httpapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/markallread"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/markread"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/notificationfeed"
)

func (s *Server) handleNotificationFeed(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return ErrInvalidQueryParam
		}
		limit = parsed
	}

	query := notificationfeed.BuildQuery(c.Param("team_id"), currentUserID(c), limit)

	feed, err := s.handlers.NotificationFeed.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedResponseFrom(feed))
}

func (s *Server) handleMarkRead(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	command := markread.BuildCommand(team.TeamID, userID, c.Param("notification_id"), s.now())
	if _, err = s.handlers.MarkRead.Handle(ctx, command); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleMarkAllRead(c echo.Context) error {
	command := markallread.BuildCommand(c.Param("team_id"), currentUserID(c), s.now())

	result, err := s.handlers.MarkAllRead.Handle(c.Request().Context(), command)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MarkAllReadResponse{Marked: len(result.AppendedEvents)})
}
