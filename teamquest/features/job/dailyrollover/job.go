package dailyrollover

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/assigndailyquestset"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/activeteams"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
)

const (
	DefaultInterval = 5 * time.Minute

	logMsgRunCompleted = "daily rollover completed"
	logMsgRunFailed    = "daily rollover failed"
	logMsgAssignFailed = "assigning daily quest set failed"
	logMsgJobStarted   = "daily rollover job started"
	logMsgJobStopped   = "daily rollover job stopped"
)

// ActiveTeamsHandler lists the teams to roll over.
type ActiveTeamsHandler interface {
	Handle(ctx context.Context, query activeteams.Query) (activeteams.ActiveTeams, error)
}

// AssignHandler assigns one daily set.
type AssignHandler interface {
	Handle(ctx context.Context, command assigndailyquestset.Command) (shell.HandlerResult, error)
}

// Summary counts the outcome of one run.
type Summary struct {
	SetDate         core.SetDateString
	Teams           int
	Assigned        int
	AlreadyAssigned int
	Failed          int
}

// Job is the daily rollover.
type Job struct {
	teams    ActiveTeamsHandler
	assign   AssignHandler
	logger   *zap.Logger
	interval time.Duration
	location *time.Location
	now      func() time.Time
}

// Option configures a Job.
type Option func(*Job)

// WithInterval sets the time between runs. Non-positive values keep DefaultInterval.
func WithInterval(interval time.Duration) Option {
	return func(j *Job) {
		if interval > 0 {
			j.interval = interval
		}
	}
}

// WithLocation sets the location the local date is computed in.
func WithLocation(location *time.Location) Option {
	return func(j *Job) {
		if location != nil {
			j.location = location
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(j *Job) {
		j.now = now
	}
}

func NewJob(teams ActiveTeamsHandler, assign AssignHandler, logger *zap.Logger, opts ...Option) *Job {
	job := &Job{
		teams:    teams,
		assign:   assign,
		logger:   logger,
		interval: DefaultInterval,
		location: time.UTC,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(job)
	}

	return job
}

// Run rolls over at once and then on every tick until ctx is canceled. Failed runs are logged and
// do not stop the job. It returns nil on cancellation.
func (j *Job) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info(logMsgJobStarted, zap.Duration("interval", j.interval), zap.String("location", j.location.String()))

	for {
		if _, err := j.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			j.logger.Error(logMsgRunFailed, zap.Error(err))
		}

		select {
		case <-ctx.Done():
			j.logger.Info(logMsgJobStopped)
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce assigns the set of the current local date to every active team.
// Only failing to list the teams is returned as an error, per-team failures are counted and logged.
func (j *Job) RunOnce(ctx context.Context) (Summary, error) {
	now := j.now()
	summary := Summary{SetDate: core.LocalDate(now, j.location)}

	teams, err := j.teams.Handle(ctx, activeteams.BuildQuery())
	if err != nil {
		return summary, err
	}

	summary.Teams = len(teams.TeamIDs)

	for _, teamID := range teams.TeamIDs {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		result, assignErr := j.assign.Handle(ctx, assigndailyquestset.BuildCommand(teamID, "", summary.SetDate, now))

		switch {
		case assignErr != nil:
			summary.Failed++
			j.logger.Warn(
				logMsgAssignFailed,
				zap.String("team_id", teamID),
				zap.String("set_date", summary.SetDate),
				zap.Error(assignErr),
			)
		case result.Idempotent:
			summary.AlreadyAssigned++
		default:
			summary.Assigned++
		}
	}

	j.logger.Info(
		logMsgRunCompleted,
		zap.String("set_date", summary.SetDate),
		zap.Int("teams", summary.Teams),
		zap.Int("assigned", summary.Assigned),
		zap.Int("already_assigned", summary.AlreadyAssigned),
		zap.Int("failed", summary.Failed),
	)

	return summary, nil
}
