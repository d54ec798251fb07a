package dto

import "mentormatch/internal/usecase"

type DashboardStatsResponse struct {
	ActiveGoals       int     `json:"active_goals"`
	CompletedGoals    int     `json:"completed_goals"`
	AvgProgress       float64 `json:"avg_progress"`
	TotalMatches      int     `json:"total_matches"`
	UpcomingSessions  int     `json:"upcoming_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
}

type DashboardResponse struct {
	Profile          ProfileResponse        `json:"profile"`
	Stats            DashboardStatsResponse `json:"stats"`
	RecentGoals      []GoalResponse         `json:"recent_goals"`
	RecentMatches    []MatchResponse        `json:"recent_matches"`
	UpcomingSessions []SessionResponse      `json:"upcoming_sessions"`
	RecentInsights   []InsightResponse      `json:"recent_insights"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Profile: FromProfile(d.Profile),
		Stats: DashboardStatsResponse{
			ActiveGoals:       d.Stats.ActiveGoals,
			CompletedGoals:    d.Stats.CompletedGoals,
			AvgProgress:       d.Stats.AvgProgress,
			TotalMatches:      d.Stats.TotalMatches,
			UpcomingSessions:  d.Stats.UpcomingSessions,
			CompletedSessions: d.Stats.CompletedSessions,
		},
		RecentGoals:      FromGoals(d.RecentGoals),
		RecentMatches:    FromMatches(d.RecentMatches),
		UpcomingSessions: FromSessions(d.UpcomingSessions),
		RecentInsights:   FromInsights(d.RecentInsights),
	}
}
