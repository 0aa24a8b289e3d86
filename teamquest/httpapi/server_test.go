package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/teamquest/teamquest/features/bundle"
	"github.com/AntonStoeckl/teamquest/teamquest/httpapi"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/shell/questcatalog"
	"github.com/AntonStoeckl/teamquest/testutil/memstore"
)

type testClient struct {
	t      *testing.T
	server *httpapi.Server
}

func givenServer(t *testing.T, now time.Time) *testClient {
	t.Helper()

	catalog, err := questcatalog.Default()
	require.NoError(t, err, "error in arranging test data")

	handlers := bundle.New(memstore.New(), catalog, bundle.Options{InviteTTL: 48 * time.Hour})

	server := httpapi.NewServer(
		handlers,
		httpapi.Config{
			SessionSecret: strings.Repeat("k", 32),
			SessionTTL:    24 * time.Hour,
			AuthRateLimit: 1,
			AuthRateBurst: 20,
			Location:      time.UTC,
			BcryptCost:    bcrypt.MinCost,
		},
		zaptest.NewLogger(t),
		prometheus.NewRegistry(),
		httpapi.WithClock(func() time.Time { return now }),
	)

	return &testClient{t: t, server: server}
}

func (c *testClient) do(method, path string, body any, session *http.Cookie) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.AddCookie(session)
	}

	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)

	return rec
}

func (c *testClient) signUp(email, displayName string) *http.Cookie {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/api/v1/auth/signup", httpapi.SignUpRequest{
		Email:       email,
		Password:    "correct horse",
		DisplayName: displayName,
	}, nil)
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	return sessionCookie(c.t, rec)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == httpapi.SessionCookieName {
			return cookie
		}
	}

	require.Fail(t, "no session cookie set")

	return nil
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func Test_Server_Healthz(t *testing.T) {
	// setup
	client := givenServer(t, time.Now())

	// act
	rec := client.do(http.MethodGet, "/healthz", nil, nil)

	// assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func Test_Server_PrivateRoute_WithoutSession_IsUnauthorized(t *testing.T) {
	// setup
	client := givenServer(t, time.Now())

	// act
	rec := client.do(http.MethodGet, "/api/v1/me", nil, nil)

	// assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthenticated", decode[httpapi.ErrorResponse](t, rec).Code)
}

func Test_Server_SignUpAndLogin(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	// arrange
	session := client.signUp("Aki@Example.com", "Aki")

	// act
	me := client.do(http.MethodGet, "/api/v1/me", nil, session)
	duplicate := client.do(http.MethodPost, "/api/v1/auth/signup", httpapi.SignUpRequest{
		Email: "aki@example.com", Password: "another password", DisplayName: "Aki 2",
	}, nil)
	shortPassword := client.do(http.MethodPost, "/api/v1/auth/signup", httpapi.SignUpRequest{
		Email: "ren@example.com", Password: "short", DisplayName: "Ren",
	}, nil)
	wrongPassword := client.do(http.MethodPost, "/api/v1/auth/login", httpapi.LoginRequest{
		Email: "aki@example.com", Password: "wrong horse",
	}, nil)
	unknownEmail := client.do(http.MethodPost, "/api/v1/auth/login", httpapi.LoginRequest{
		Email: "nobody@example.com", Password: "correct horse",
	}, nil)
	login := client.do(http.MethodPost, "/api/v1/auth/login", httpapi.LoginRequest{
		Email: " AKI@example.com ", Password: "correct horse",
	}, nil)

	// assert
	require.Equal(t, http.StatusOK, me.Code, me.Body.String())
	profile := decode[httpapi.MeResponse](t, me)
	assert.Equal(t, "aki@example.com", profile.Email)
	assert.Equal(t, "Aki", profile.DisplayName)
	assert.Empty(t, profile.TeamID)

	assert.Equal(t, http.StatusConflict, duplicate.Code)
	assert.Equal(t, http.StatusBadRequest, shortPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	require.Equal(t, http.StatusOK, login.Code, login.Body.String())
	assert.Equal(t, profile.UserID, decode[httpapi.UserResponse](t, login).UserID)
	assert.NotEmpty(t, sessionCookie(t, login).Value)
}

func Test_Server_Login_IsRateLimitedPerIP(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	// act
	var last *httptest.ResponseRecorder
	for range 21 {
		last = client.do(http.MethodPost, "/api/v1/auth/login", httpapi.LoginRequest{
			Email: "nobody@example.com", Password: "correct horse",
		}, nil)
	}

	// assert
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
}

func Test_Server_Quests_WithoutTeam_IsNotFound(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	session := client.signUp("aki@example.com", "Aki")

	// act
	rec := client.do(http.MethodGet, "/api/v1/quests/today", nil, session)

	// assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_in_team", decode[httpapi.ErrorResponse](t, rec).Code)
}

func Test_Server_TeamAndQuestFlow(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	owner := client.signUp("aki@example.com", "Aki")
	member := client.signUp("ren@example.com", "Ren")

	// act: create a team, which stays locked with one member
	created := client.do(http.MethodPost, "/api/v1/teams", httpapi.CreateTeamRequest{Name: "Crew", MaxMembers: 3}, owner)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	team := decode[httpapi.TeamResponse](t, created)

	locked := client.do(http.MethodGet, "/api/v1/quests/today", nil, owner)

	// act: the second user joins with the invite code
	require.NotNil(t, team.Invite)
	joined := client.do(http.MethodPost, "/api/v1/teams/join", httpapi.JoinTeamRequest{InviteCode: strings.ToLower(team.Invite.InviteCode)}, member)
	joinedAgain := client.do(http.MethodPost, "/api/v1/teams/join", httpapi.JoinTeamRequest{InviteCode: team.Invite.InviteCode}, member)

	// act: today's quests are assigned on first access
	today := client.do(http.MethodGet, "/api/v1/quests/today", nil, member)
	require.Equal(t, http.StatusOK, today.Code, today.Body.String())
	set := decode[httpapi.TodaySetResponse](t, today)
	require.Len(t, set.Items, 4)

	completed := client.do(http.MethodPost, "/api/v1/quests/complete/"+set.Items[0].ItemID, nil, member)
	completedAgain := client.do(http.MethodPost, "/api/v1/quests/complete/"+set.Items[0].ItemID, nil, member)
	progress := client.do(http.MethodGet, "/api/v1/quests/progress", nil, owner)
	mvp := client.do(http.MethodGet, "/api/v1/quests/mvp", nil, owner)
	dashboard := client.do(http.MethodGet, "/api/v1/dashboard", nil, owner)
	feed := client.do(http.MethodGet, "/api/v1/notifications/team/"+team.TeamID+"?limit=10", nil, owner)
	readAll := client.do(http.MethodPost, "/api/v1/notifications/team/"+team.TeamID+"/read-all", nil, owner)
	feedAfterReadAll := client.do(http.MethodGet, "/api/v1/notifications/team/"+team.TeamID, nil, owner)

	// assert
	assert.Equal(t, "Crew", team.Name)
	assert.True(t, team.IsOwner)
	assert.False(t, team.IsUnlocked)
	assert.Equal(t, http.StatusConflict, locked.Code)

	require.Equal(t, http.StatusOK, joined.Code, joined.Body.String())
	joinedTeam := decode[httpapi.TeamResponse](t, joined)
	assert.Equal(t, team.TeamID, joinedTeam.TeamID)
	assert.Equal(t, 2, joinedTeam.MemberCount)
	assert.True(t, joinedTeam.IsUnlocked)
	assert.Nil(t, joinedTeam.Invite, "only the owner sees the invite code")
	assert.Equal(t, http.StatusOK, joinedAgain.Code)

	require.Equal(t, http.StatusOK, completed.Code, completed.Body.String())
	completion := decode[httpapi.CompleteQuestResponse](t, completed)
	assert.False(t, completion.AlreadyCompleted)
	assert.Equal(t, set.Items[0].Points, completion.PointsEarned)
	assert.Equal(t, set.Items[0].Points, completion.TeamTotalPoints)

	require.Equal(t, http.StatusOK, completedAgain.Code)
	again := decode[httpapi.CompleteQuestResponse](t, completedAgain)
	assert.True(t, again.AlreadyCompleted)
	assert.Equal(t, set.Items[0].Points, again.TeamTotalPoints)

	require.Equal(t, http.StatusOK, progress.Code, progress.Body.String())
	progressBody := decode[httpapi.ProgressResponse](t, progress)
	assert.Equal(t, 1, progressBody.CheckedInMembers)
	assert.Equal(t, 0, progressBody.CompletedByMe)
	assert.NotEmpty(t, progressBody.MoodComment)

	require.Equal(t, http.StatusOK, mvp.Code)
	mvpBody := decode[httpapi.MVPResponse](t, mvp)
	require.NotNil(t, mvpBody.MVP)
	assert.Equal(t, "Ren", mvpBody.MVP.DisplayName)

	require.Equal(t, http.StatusOK, dashboard.Code, dashboard.Body.String())
	dashboardBody := decode[httpapi.DashboardResponse](t, dashboard)
	require.NotNil(t, dashboardBody.TodaySet)
	assert.Equal(t, set.DailySetID, dashboardBody.TodaySet.DailySetID, "the set is assigned once per day")
	assert.Positive(t, dashboardBody.UnreadNotifications)

	require.Equal(t, http.StatusOK, feed.Code, feed.Body.String())
	feedBody := decode[httpapi.NotificationFeedResponse](t, feed)
	assert.NotEmpty(t, feedBody.Notifications)
	assert.Equal(t, dashboardBody.UnreadNotifications, feedBody.UnreadCount)

	require.Equal(t, http.StatusOK, readAll.Code)
	assert.Equal(t, feedBody.UnreadCount, decode[httpapi.MarkAllReadResponse](t, readAll).Marked)
	assert.Zero(t, decode[httpapi.NotificationFeedResponse](t, feedAfterReadAll).UnreadCount)
}

func Test_Server_ProgressAndMVP_OfLockedTeam_AreConflict(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	owner := client.signUp("aki@example.com", "Aki")
	created := client.do(http.MethodPost, "/api/v1/teams", httpapi.CreateTeamRequest{Name: "Crew"}, owner)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	// act
	progress := client.do(http.MethodGet, "/api/v1/quests/progress", nil, owner)
	mvp := client.do(http.MethodGet, "/api/v1/quests/mvp", nil, owner)

	// assert
	assert.Equal(t, http.StatusConflict, progress.Code, progress.Body.String())
	assert.Equal(t, "team_locked", decode[httpapi.ErrorResponse](t, progress).Code)
	assert.Equal(t, http.StatusConflict, mvp.Code, mvp.Body.String())
	assert.Equal(t, "team_locked", decode[httpapi.ErrorResponse](t, mvp).Code)
}

func Test_Server_ProgressAndMVP_BeforeTodaySet_AssignTheSet(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	owner := client.signUp("aki@example.com", "Aki")
	member := client.signUp("ren@example.com", "Ren")
	created := client.do(http.MethodPost, "/api/v1/teams", httpapi.CreateTeamRequest{Name: "Crew"}, owner)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	team := decode[httpapi.TeamResponse](t, created)
	require.NotNil(t, team.Invite)
	joined := client.do(http.MethodPost, "/api/v1/teams/join", httpapi.JoinTeamRequest{InviteCode: team.Invite.InviteCode}, member)
	require.Equal(t, http.StatusOK, joined.Code, joined.Body.String())

	// act
	progress := client.do(http.MethodGet, "/api/v1/quests/progress", nil, owner)
	mvp := client.do(http.MethodGet, "/api/v1/quests/mvp", nil, member)
	today := client.do(http.MethodGet, "/api/v1/quests/today", nil, member)

	// assert
	require.Equal(t, http.StatusOK, progress.Code, progress.Body.String())
	progressBody := decode[httpapi.ProgressResponse](t, progress)
	assert.Len(t, progressBody.Items, 4)
	assert.NotEmpty(t, progressBody.Difficulty)
	assert.Equal(t, 2, progressBody.MemberCount)
	assert.Zero(t, progressBody.CheckedInMembers)

	require.Equal(t, http.StatusOK, mvp.Code, mvp.Body.String())
	assert.Nil(t, decode[httpapi.MVPResponse](t, mvp).MVP)

	require.Equal(t, http.StatusOK, today.Code, today.Body.String())
	assert.Equal(t, progressBody.SetDate, decode[httpapi.TodaySetResponse](t, today).SetDate)
}

func Test_Server_TeamDetail_OfOtherTeam_IsForbidden(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	owner := client.signUp("aki@example.com", "Aki")
	stranger := client.signUp("mio@example.com", "Mio")

	created := client.do(http.MethodPost, "/api/v1/teams", httpapi.CreateTeamRequest{Name: "Crew"}, owner)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	team := decode[httpapi.TeamResponse](t, created)

	// act
	detail := client.do(http.MethodGet, "/api/v1/teams/"+team.TeamID, nil, stranger)
	dissolve := client.do(http.MethodPost, "/api/v1/teams/"+team.TeamID+"/dissolve", nil, stranger)
	dissolveByOwner := client.do(http.MethodPost, "/api/v1/teams/"+team.TeamID+"/dissolve", nil, owner)

	// assert
	assert.Equal(t, http.StatusForbidden, detail.Code)
	assert.Equal(t, http.StatusForbidden, dissolve.Code)
	assert.Equal(t, http.StatusNoContent, dissolveByOwner.Code)
}

func Test_Server_Invite_RegenerateAndDeactivate(t *testing.T) {
	// setup
	client := givenServer(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	owner := client.signUp("aki@example.com", "Aki")
	joiner := client.signUp("ren@example.com", "Ren")

	created := client.do(http.MethodPost, "/api/v1/teams", httpapi.CreateTeamRequest{Name: "Crew"}, owner)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())
	team := decode[httpapi.TeamResponse](t, created)

	// act
	regenerated := client.do(http.MethodPost, "/api/v1/teams/"+team.TeamID+"/invite/regenerate", nil, owner)
	deactivated := client.do(http.MethodPost, "/api/v1/teams/"+team.TeamID+"/invite/deactivate", nil, owner)
	invite := decode[httpapi.InviteResponse](t, regenerated)
	join := client.do(http.MethodPost, "/api/v1/teams/join", httpapi.JoinTeamRequest{InviteCode: invite.InviteCode}, joiner)

	// assert
	require.Equal(t, http.StatusOK, regenerated.Code, regenerated.Body.String())
	assert.NotEqual(t, team.Invite.InviteCode, invite.InviteCode)
	require.NotNil(t, invite.ExpiresAt)
	assert.Equal(t, http.StatusNoContent, deactivated.Code)
	assert.Equal(t, http.StatusConflict, join.Code)
	assert.Equal(t, "invite_inactive", decode[httpapi.ErrorResponse](t, join).Code)
}

func Test_Server_Metrics_CountsRequests(t *testing.T) {
	// setup
	client := givenServer(t, time.Now())
	client.do(http.MethodGet, "/healthz", nil, nil)

	// act
	rec := client.do(http.MethodGet, "/metrics", nil, nil)

	// assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `teamquest_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
