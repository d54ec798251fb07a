package gemini

import (
	"fmt"
	"strings"
	"time"

	"mentormatch/internal/domain/goal"
	"mentormatch/internal/domain/profile"
)

const systemInstruction = `You are an AI career advisor and mentorship expert. You help analyze professional profiles,
match mentors with mentees, provide career insights, and generate personalized recommendations.
Always provide practical, actionable advice focused on professional growth and career development.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`

func analyzeProfilePrompt(p profile.Profile) string {
	return fmt.Sprintf(`Analyze this professional profile and provide insights:

Name: %s
Role: %s
Position: %s
Industry: %s
Experience: %d years
Skills: %s
Goals: %s
Bio: %s
Interests: %s

Provide a JSON response with:
1. "communication_style": Inferred communication style (collaborative, direct, analytical, creative)
2. "skill_strengths": Top 3 skill areas
3. "growth_areas": 3 areas for improvement
4. "career_stage": Assessment of career stage
5. "mentorship_readiness": Score 1-10 for giving/receiving mentorship
6. "personality_traits": 3 key professional traits`,
		p.Name, p.Role, p.CurrentPosition, p.Industry, p.ExperienceYears,
		strings.Join(p.Skills, ", "), strings.Join(p.Goals, ", "), p.Bio,
		strings.Join(p.Interests, ", "))
}

func sessionAgendaPrompt(mentor, mentee profile.Profile, sessionNumber int) string {
	return fmt.Sprintf(`Create a mentorship session agenda for:

Mentor: %s - %s (%d years exp)
Mentee: %s - %s (%d years exp)

Mentee Goals: %s
Session Number: %d

Generate 4-6 specific agenda items for a 60-minute session. Focus on actionable discussions.
Return as a JSON array of strings.`,
		mentor.Name, mentor.CurrentPosition, mentor.ExperienceYears,
		mentee.Name, mentee.CurrentPosition, mentee.ExperienceYears,
		strings.Join(mentee.Goals, ", "), sessionNumber)
}

func careerInsightsPrompt(p profile.Profile) string {
	return fmt.Sprintf(`Generate career insights for this professional:

Profile: %s
Position: %s
Industry: %s
Experience: %d years
Skills: %s
Goals: %s

Generate 3-4 career insights as JSON array with:
- insight_type: "skill_gap", "market_trend", "career_path", or "networking"
- title: Brief insight title
- description: Detailed explanation
- recommendations: Array of 2-3 actionable recommendations
- confidence_score: 0.0-1.0 confidence in the insight`,
		p.Name, p.CurrentPosition, p.Industry, p.ExperienceYears,
		strings.Join(p.Skills, ", "), strings.Join(p.Goals, ", "))
}

func goalRecommendationsPrompt(g goal.Goal) string {
	return fmt.Sprintf(`Generate 3-5 specific, actionable recommendations for this career goal:

Title: %s
Description: %s
Category: %s
Target Date: %s

Return as JSON array of recommendation strings.`,
		g.Title, g.Description, g.Category, g.TargetDate.Format(time.RFC3339))
}
