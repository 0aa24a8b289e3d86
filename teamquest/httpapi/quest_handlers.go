package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/assigndailyquestset"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/completequest"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/notificationfeed"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/teamdetail"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todaymvp"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayprogress"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayset"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

func (s *Server) today() core.SetDateString {
	return core.LocalDate(s.now(), s.config.Location)
}

// ensureTodaySet assigns today's set if the rollover has not done so yet and returns it.
func (s *Server) ensureTodaySet(ctx context.Context, teamID, userID string, date core.SetDateString) (todayset.TodaySet, error) {
	command := assigndailyquestset.BuildCommand(teamID, userID, date, s.now())
	if _, err := s.handlers.AssignDailySet.Handle(ctx, command); err != nil {
		return todayset.TodaySet{}, err
	}

	set, err := s.handlers.TodaySet.Handle(ctx, todayset.BuildQuery(teamID, userID, date))
	if err != nil {
		return todayset.TodaySet{}, err
	}

	if !set.Found {
		return todayset.TodaySet{}, core.ErrDailySetNotFound
	}

	return set, nil
}

func (s *Server) handleTodaySet(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	set, err := s.ensureTodaySet(ctx, team.TeamID, userID, s.today())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todaySetResponseFrom(set))
}

func (s *Server) handleCompleteQuest(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	itemID := c.Param("item_id")
	command := completequest.BuildCommand(team.TeamID, userID, itemID, s.today(), s.now())

	result, err := s.handlers.CompleteQuest.Handle(ctx, command)
	if err != nil {
		return err
	}

	response := CompleteQuestResponse{ItemID: itemID, AlreadyCompleted: result.Idempotent}

	if completed, ok := shell.AppendedEvent[core.QuestCompleted](result); ok {
		response.PointsEarned = completed.Points
		response.TeamTotalPoints = completed.TeamTotalPoints
		response.TeamRank = string(completed.TeamRank)

		if rankedUp, ranked := shell.AppendedEvent[core.TeamRankedUp](result); ranked {
			response.RankedUp = true
			response.PreviousRank = string(rankedUp.From)
		}

		return c.JSON(http.StatusOK, response)
	}

	detail, err := s.handlers.TeamDetail.Handle(ctx, teamdetail.BuildQuery(team.TeamID, userID))
	if err != nil {
		return err
	}

	response.TeamTotalPoints = detail.TotalPoints
	response.TeamRank = string(detail.Rank)

	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleTodayProgress(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	date := s.today()
	if _, err = s.ensureTodaySet(ctx, team.TeamID, userID, date); err != nil {
		return err
	}

	progress, err := s.handlers.TodayProgress.Handle(ctx, todayprogress.BuildQuery(team.TeamID, userID, date))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, progressResponseFrom(progress))
}

func (s *Server) handleTodayMVP(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	date := s.today()
	if _, err = s.ensureTodaySet(ctx, team.TeamID, userID, date); err != nil {
		return err
	}

	mvp, err := s.handlers.TodayMVP.Handle(ctx, todaymvp.BuildQuery(team.TeamID, userID, date))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MVPResponse{MVP: mvpEntryFrom(mvp)})
}

// handleDashboard shows the team and, once the team is unlocked, today's quests with progress and MVP.
func (s *Server) handleDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	team, err := s.currentTeam(ctx, userID)
	if err != nil {
		return err
	}

	detail, err := s.handlers.TeamDetail.Handle(ctx, teamdetail.BuildQuery(team.TeamID, userID))
	if err != nil {
		return err
	}

	feed, err := s.handlers.NotificationFeed.Handle(ctx, notificationfeed.BuildQuery(team.TeamID, userID, 1))
	if err != nil {
		return err
	}

	response := DashboardResponse{
		Team:                teamResponseFrom(detail),
		UnreadNotifications: feed.UnreadCount,
	}

	if !detail.IsUnlocked {
		return c.JSON(http.StatusOK, response)
	}

	date := s.today()

	set, err := s.ensureTodaySet(ctx, team.TeamID, userID, date)
	if err != nil {
		return err
	}

	progress, err := s.handlers.TodayProgress.Handle(ctx, todayprogress.BuildQuery(team.TeamID, userID, date))
	if err != nil {
		return err
	}

	mvp, err := s.handlers.TodayMVP.Handle(ctx, todaymvp.BuildQuery(team.TeamID, userID, date))
	if err != nil {
		return err
	}

	setResponse := todaySetResponseFrom(set)
	progressResponse := progressResponseFrom(progress)
	response.TodaySet = &setResponse
	response.Progress = &progressResponse
	response.MVP = mvpEntryFrom(mvp)

	return c.JSON(http.StatusOK, response)
}
