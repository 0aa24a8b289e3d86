// Package bundle builds every command and query handler of TeamQuest once, wrapped with observability.
package bundle

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/features/command/assigndailyquestset"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/completequest"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/createteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/deactivateinvite"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/dissolveteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/jointeam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/markallread"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/markread"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/regenerateinvite"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/signup"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/activeteams"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/myteam"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/notificationfeed"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/teamdetail"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todaymvp"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayprogress"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayset"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/usercredentials"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/userprofile"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/observable"
)

// Observability holds the optional collectors. Nil fields disable the concern.
type Observability struct {
	Metrics          shell.MetricsCollector
	Tracing          shell.TracingCollector
	ContextualLogger shell.ContextualLogger
}

// Options configures the handlers.
type Options struct {
	InviteTTL     time.Duration
	Observability Observability
	RetryOptions  []shell.RetryOption
}

// Bundle contains all handlers. Every field is an observable wrapper around the core handler.
type Bundle struct {
	// Command handlers.
	SignUp           shell.CoreCommandHandler[signup.Command]
	CreateTeam       shell.CoreCommandHandler[createteam.Command]
	JoinTeam         shell.CoreCommandHandler[jointeam.Command]
	RegenerateInvite shell.CoreCommandHandler[regenerateinvite.Command]
	DeactivateInvite shell.CoreCommandHandler[deactivateinvite.Command]
	DissolveTeam     shell.CoreCommandHandler[dissolveteam.Command]
	AssignDailySet   shell.CoreCommandHandler[assigndailyquestset.Command]
	CompleteQuest    shell.CoreCommandHandler[completequest.Command]
	MarkRead         shell.CoreCommandHandler[markread.Command]
	MarkAllRead      shell.CoreCommandHandler[markallread.Command]

	// Query handlers.
	UserCredentials  shell.CoreQueryHandler[usercredentials.Query, usercredentials.UserCredentials]
	UserProfile      shell.CoreQueryHandler[userprofile.Query, userprofile.UserProfile]
	MyTeam           shell.CoreQueryHandler[myteam.Query, myteam.MyTeam]
	TeamDetail       shell.CoreQueryHandler[teamdetail.Query, teamdetail.TeamDetail]
	TodaySet         shell.CoreQueryHandler[todayset.Query, todayset.TodaySet]
	TodayProgress    shell.CoreQueryHandler[todayprogress.Query, todayprogress.TodayProgress]
	TodayMVP         shell.CoreQueryHandler[todaymvp.Query, todaymvp.TodayMVP]
	NotificationFeed shell.CoreQueryHandler[notificationfeed.Query, notificationfeed.NotificationFeed]
	ActiveTeams      shell.CoreQueryHandler[activeteams.Query, activeteams.ActiveTeams]
}

// New creates all handlers on top of eventStore.
func New(eventStore shell.EventStore, catalog assigndailyquestset.QuestCatalog, opts Options) *Bundle {
	obs := opts.Observability

	return &Bundle{
		SignUp: wrapCommand[signup.Command](
			signup.NewCommandHandler(eventStore, signup.WithRetryOptions(retryOptions(opts, signup.Command{})...)), obs),
		CreateTeam: wrapCommand[createteam.Command](
			createteam.NewCommandHandler(eventStore,
				createteam.WithRetryOptions(retryOptions(opts, createteam.Command{})...),
				createteam.WithInviteTTL(opts.InviteTTL),
			), obs),
		JoinTeam: wrapCommand[jointeam.Command](
			jointeam.NewCommandHandler(eventStore, jointeam.WithRetryOptions(retryOptions(opts, jointeam.Command{})...)), obs),
		RegenerateInvite: wrapCommand[regenerateinvite.Command](
			regenerateinvite.NewCommandHandler(eventStore,
				regenerateinvite.WithRetryOptions(retryOptions(opts, regenerateinvite.Command{})...),
				regenerateinvite.WithInviteTTL(opts.InviteTTL),
			), obs),
		DeactivateInvite: wrapCommand[deactivateinvite.Command](
			deactivateinvite.NewCommandHandler(eventStore, deactivateinvite.WithRetryOptions(retryOptions(opts, deactivateinvite.Command{})...)), obs),
		DissolveTeam: wrapCommand[dissolveteam.Command](
			dissolveteam.NewCommandHandler(eventStore, dissolveteam.WithRetryOptions(retryOptions(opts, dissolveteam.Command{})...)), obs),
		AssignDailySet: wrapCommand[assigndailyquestset.Command](
			assigndailyquestset.NewCommandHandler(eventStore, catalog, assigndailyquestset.WithRetryOptions(retryOptions(opts, assigndailyquestset.Command{})...)), obs),
		CompleteQuest: wrapCommand[completequest.Command](
			completequest.NewCommandHandler(eventStore, completequest.WithRetryOptions(retryOptions(opts, completequest.Command{})...)), obs),
		MarkRead: wrapCommand[markread.Command](
			markread.NewCommandHandler(eventStore, markread.WithRetryOptions(retryOptions(opts, markread.Command{})...)), obs),
		MarkAllRead: wrapCommand[markallread.Command](
			markallread.NewCommandHandler(eventStore, markallread.WithRetryOptions(retryOptions(opts, markallread.Command{})...)), obs),

		UserCredentials:  wrapQuery[usercredentials.Query, usercredentials.UserCredentials](usercredentials.NewQueryHandler(eventStore), obs),
		UserProfile:      wrapQuery[userprofile.Query, userprofile.UserProfile](userprofile.NewQueryHandler(eventStore), obs),
		MyTeam:           wrapQuery[myteam.Query, myteam.MyTeam](myteam.NewQueryHandler(eventStore), obs),
		TeamDetail:       wrapQuery[teamdetail.Query, teamdetail.TeamDetail](teamdetail.NewQueryHandler(eventStore), obs),
		TodaySet:         wrapQuery[todayset.Query, todayset.TodaySet](todayset.NewQueryHandler(eventStore), obs),
		TodayProgress:    wrapQuery[todayprogress.Query, todayprogress.TodayProgress](todayprogress.NewQueryHandler(eventStore), obs),
		TodayMVP:         wrapQuery[todaymvp.Query, todaymvp.TodayMVP](todaymvp.NewQueryHandler(eventStore), obs),
		NotificationFeed: wrapQuery[notificationfeed.Query, notificationfeed.NotificationFeed](notificationfeed.NewQueryHandler(eventStore), obs),
		ActiveTeams:      wrapQuery[activeteams.Query, activeteams.ActiveTeams](activeteams.NewQueryHandler(eventStore), obs),
	}
}

// retryOptions appends retry metrics for command to the configured retry options.
func retryOptions(opts Options, command shell.Command) []shell.RetryOption {
	retry := append([]shell.RetryOption(nil), opts.RetryOptions...)

	if opts.Observability.Metrics != nil {
		retry = append(retry, shell.WithRetryMetrics(opts.Observability.Metrics, command.CommandType()))
	}

	return retry
}

func wrapCommand[C shell.Command](handler shell.CoreCommandHandler[C], obs Observability) shell.CoreCommandHandler[C] {
	var options []observable.CommandOption[C]

	if obs.Metrics != nil {
		options = append(options, observable.WithCommandMetrics[C](obs.Metrics))
	}
	if obs.Tracing != nil {
		options = append(options, observable.WithCommandTracing[C](obs.Tracing))
	}
	if obs.ContextualLogger != nil {
		options = append(options, observable.WithCommandContextualLogging[C](obs.ContextualLogger))
	}

	return observable.NewCommandWrapper(handler, options...)
}

func wrapQuery[Q shell.Query, R shell.QueryResult](handler shell.CoreQueryHandler[Q, R], obs Observability) shell.CoreQueryHandler[Q, R] {
	var options []observable.QueryOption[Q, R]

	if obs.Metrics != nil {
		options = append(options, observable.WithQueryMetrics[Q, R](obs.Metrics))
	}
	if obs.Tracing != nil {
		options = append(options, observable.WithQueryTracing[Q, R](obs.Tracing))
	}
	if obs.ContextualLogger != nil {
		options = append(options, observable.WithQueryContextualLogging[Q, R](obs.ContextualLogger))
	}

	return observable.NewQueryWrapper(handler, options...)
}
