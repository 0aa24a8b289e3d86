package httpapi

import (
	"time"

	"github.com/AntonStoeckl/teamquest/teamquest/features/query/notificationfeed"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/teamdetail"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todaymvp"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayprogress"
	"github.com/AntonStoeckl/teamquest/teamquest/features/query/todayset"
)

// Requests.

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTeamRequest struct {
	Name       string `json:"name"`
	MaxMembers int    `json:"max_members"`
}

type JoinTeamRequest struct {
	InviteCode string `json:"invite_code"`
}

// Responses.

type UserResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name"`
}

type MeResponse struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	SignedUpAt  time.Time `json:"signed_up_at"`
	TeamID      string    `json:"team_id,omitempty"`
	IsTeamOwner bool      `json:"is_team_owner"`
}

type MemberResponse struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	IsOwner     bool      `json:"is_owner"`
	JoinedAt    time.Time `json:"joined_at"`
}

type TeamResponse struct {
	TeamID            string           `json:"team_id"`
	Name              string           `json:"name"`
	OwnerID           string           `json:"owner_id"`
	MaxMembers        int              `json:"max_members"`
	MemberCount       int              `json:"member_count"`
	Members           []MemberResponse `json:"members"`
	TotalPoints       int              `json:"total_points"`
	Rank              string           `json:"rank"`
	NextRankThreshold int              `json:"next_rank_threshold"`
	IsActive          bool             `json:"is_active"`
	IsUnlocked        bool             `json:"is_unlocked"`
	IsOwner           bool             `json:"is_owner"`
	Invite            *InviteResponse  `json:"invite,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}

// InviteResponse is only shown to the team owner. A missing expires_at means the code does not expire.
type InviteResponse struct {
	InviteCode string     `json:"invite_code"`
	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type QuestItemResponse struct {
	ItemID     string `json:"item_id"`
	QuestID    string `json:"quest_id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Points     int    `json:"points"`
	SortOrder  int    `json:"sort_order"`
}

type TodaySetResponse struct {
	DailySetID  string              `json:"daily_set_id"`
	TeamID      string              `json:"team_id"`
	SetDate     string              `json:"set_date"`
	Difficulty  string              `json:"difficulty"`
	GeneratedBy string              `json:"generated_by"`
	Items       []QuestItemResponse `json:"items"`
}

type CompleteQuestResponse struct {
	ItemID           string `json:"item_id"`
	AlreadyCompleted bool   `json:"already_completed"`
	PointsEarned     int    `json:"points_earned"`
	TeamTotalPoints  int    `json:"team_total_points"`
	TeamRank         string `json:"team_rank"`
	RankedUp         bool   `json:"ranked_up"`
	PreviousRank     string `json:"previous_rank,omitempty"`
}

type ItemProgressResponse struct {
	ItemID          string `json:"item_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Points          int    `json:"points"`
	CompletedCount  int    `json:"completed_count"`
	MemberCount     int    `json:"member_count"`
	IsCompletedByMe bool   `json:"is_completed_by_me"`
}

type ProgressResponse struct {
	SetDate          string                 `json:"set_date"`
	Difficulty       string                 `json:"difficulty"`
	Items            []ItemProgressResponse `json:"items"`
	MemberCount      int                    `json:"member_count"`
	CheckedInMembers int                    `json:"checked_in_members"`
	CompletedByMe    int                    `json:"completed_by_me"`
	MoodComment      string                 `json:"mood_comment"`
}

// MVPResponse has a nil MVP when nobody completed anything today.
type MVPResponse struct {
	MVP *MVPEntry `json:"mvp"`
}

type MVPEntry struct {
	UserID           string    `json:"user_id"`
	DisplayName      string    `json:"display_name"`
	TotalPoints      int       `json:"total_points"`
	FirstCompletedAt time.Time `json:"first_completed_at"`
}

type DashboardResponse struct {
	Team                TeamResponse      `json:"team"`
	TodaySet            *TodaySetResponse `json:"today_set,omitempty"`
	Progress            *ProgressResponse `json:"progress,omitempty"`
	MVP                 *MVPEntry         `json:"mvp,omitempty"`
	UnreadNotifications int               `json:"unread_notifications"`
}

type NotificationResponse struct {
	NotificationID string    `json:"notification_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	ActorID        string    `json:"actor_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	IsRead         bool      `json:"is_read"`
}

type NotificationFeedResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Total         int                    `json:"total"`
}

type MarkAllReadResponse struct {
	Marked int `json:"marked"`
}

func teamResponseFrom(detail teamdetail.TeamDetail) TeamResponse {
	members := make([]MemberResponse, 0, len(detail.Members))
	for _, m := range detail.Members {
		members = append(members, MemberResponse{
			UserID:      m.UserID,
			DisplayName: m.DisplayName,
			IsOwner:     m.IsOwner,
			JoinedAt:    m.JoinedAt,
		})
	}

	response := TeamResponse{
		TeamID:            detail.TeamID,
		Name:              detail.Name,
		OwnerID:           detail.OwnerID,
		MaxMembers:        detail.MaxMembers,
		MemberCount:       detail.MemberCount,
		Members:           members,
		TotalPoints:       detail.TotalPoints,
		Rank:              string(detail.Rank),
		NextRankThreshold: detail.NextRankThreshold,
		IsActive:          detail.IsActive,
		IsUnlocked:        detail.IsUnlocked,
		IsOwner:           detail.IsOwner,
		CreatedAt:         detail.CreatedAt,
	}

	if detail.IsOwner && detail.InviteCode != "" {
		response.Invite = inviteResponse(detail.InviteCode, detail.InviteActive, detail.InviteExpiresAt)
	}

	return response
}

func inviteResponse(code string, active bool, expiresAt time.Time) *InviteResponse {
	invite := &InviteResponse{InviteCode: code, IsActive: active}
	if !expiresAt.IsZero() {
		invite.ExpiresAt = &expiresAt
	}

	return invite
}

func todaySetResponseFrom(set todayset.TodaySet) TodaySetResponse {
	items := make([]QuestItemResponse, 0, len(set.Items))
	for _, item := range set.Items {
		items = append(items, QuestItemResponse{
			ItemID:     item.ItemID,
			QuestID:    item.QuestID,
			Name:       item.QuestName,
			Category:   string(item.Category),
			Difficulty: string(item.Difficulty),
			Points:     item.Points,
			SortOrder:  item.SortOrder,
		})
	}

	return TodaySetResponse{
		DailySetID:  set.DailySetID,
		TeamID:      set.TeamID,
		SetDate:     set.SetDate,
		Difficulty:  string(set.Difficulty),
		GeneratedBy: set.GeneratedBy,
		Items:       items,
	}
}

func progressResponseFrom(progress todayprogress.TodayProgress) ProgressResponse {
	items := make([]ItemProgressResponse, 0, len(progress.Items))
	for _, item := range progress.Items {
		items = append(items, ItemProgressResponse{
			ItemID:          item.ItemID,
			Name:            item.QuestName,
			Category:        string(item.Category),
			Points:          item.Points,
			CompletedCount:  item.CompletedCount,
			MemberCount:     item.MemberCount,
			IsCompletedByMe: item.IsCompletedByMe,
		})
	}

	return ProgressResponse{
		SetDate:          progress.SetDate,
		Difficulty:       string(progress.Difficulty),
		Items:            items,
		MemberCount:      progress.MemberCount,
		CheckedInMembers: progress.CheckedInMembers,
		CompletedByMe:    progress.CompletedByMe,
		MoodComment:      progress.MoodComment,
	}
}

func mvpEntryFrom(mvp todaymvp.TodayMVP) *MVPEntry {
	if !mvp.Found {
		return nil
	}

	return &MVPEntry{
		UserID:           mvp.UserID,
		DisplayName:      mvp.DisplayName,
		TotalPoints:      mvp.TotalPoints,
		FirstCompletedAt: mvp.FirstCompletedAt,
	}
}

func feedResponseFrom(feed notificationfeed.NotificationFeed) NotificationFeedResponse {
	notifications := make([]NotificationResponse, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		notifications = append(notifications, NotificationResponse{
			NotificationID: e.NotificationID,
			Type:           string(e.Type),
			Message:        e.Message,
			ActorID:        e.ActorID,
			CreatedAt:      e.CreatedAt,
			IsRead:         e.IsRead,
		})
	}

	return NotificationFeedResponse{
		Notifications: notifications,
		UnreadCount:   feed.UnreadCount,
		Total:         feed.Total,
	}
}
