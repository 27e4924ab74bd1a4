package service

import "github.com/amarktai/marketing-backend/internal/models"

type contentTemplate struct {
	Title    string
	Caption  string
	Hashtags []string
}

// contentTemplates is the fixed per-platform generation table. Titles and
// hashtags are part of the UI contract; do not edit them casually.
var contentTemplates = map[models.Platform]contentTemplate{
	models.PlatformYouTube: {
		Title: "How to Boost Productivity with AI Tools",
		Caption: "Your team is busy, but is it productive?\n\n" +
			"In this video we walk through the exact AI workflow that cut our planning time in half: " +
			"automatic task triage, smart prioritization and a daily focus list that builds itself.\n\n" +
			"Try it with your own team and tell us what changed. Link in the description.",
		Hashtags: []string{"Productivity", "AI", "TeamWork", "Innovation"},
	},
	models.PlatformTikTok: {
		Title: "POV: AI Does Your Work",
		Caption: "POV: you open your laptop and the backlog already sorted itself \U0001F916\n\n" +
			"No more Monday triage meetings. The AI reads every ticket, scores it and hands " +
			"each person their top three. Your move, spreadsheet people.",
		Hashtags: []string{"AITools", "WorkLife", "ProductivityHacks"},
	},
	models.PlatformInstagram: {
		Title: "Morning Routine of Successful Teams",
		Caption: "The highest-performing teams we work with share one habit: " +
			"they decide the day's three priorities before the first meeting.\n\n" +
			"Swipe for the full routine, then save this post for Monday.\n\n" +
			"Which step does your team skip? Tell us below \U0001F447",
		Hashtags: []string{"MorningRoutine", "TeamSuccess", "Productivity"},
	},
	models.PlatformFacebook: {
		Title: "Why Smart Teams Choose AI",
		Caption: "Hiring is hard. Burnout is expensive. Meetings multiply.\n\n" +
			"Smart teams are not working longer hours, they are handing the repetitive work to AI " +
			"and spending the saved time on the decisions only humans can make.\n\n" +
			"See how it works for a team like yours.",
		Hashtags: []string{"AI", "BusinessGrowth", "Innovation"},
	},
	models.PlatformTwitter: {
		Title: "Quick Tip",
		Caption: "Quick tip: let AI write the first draft of your sprint plan.\n\n" +
			"You will throw away 30% of it. The other 70% just saved you an hour.",
		Hashtags: []string{"AI", "FutureOfWork", "TeamBuilding"},
	},
	models.PlatformLinkedIn: {
		Title: "The ROI of AI-Powered Teams",
		Caption: "We asked 40 team leads what changed after adopting AI-assisted planning.\n\n" +
			"The average answer: 6 hours per week back, per person.\n\n" +
			"That is not a productivity hack. That is headcount-level ROI hiding in your calendar. " +
			"The teams that measure it first will compound the advantage.",
		Hashtags: []string{"Leadership", "AI", "BusinessStrategy", "Innovation"},
	},
}

// typeForPlatform maps a platform to the content type it receives from
// generation: video for the video-first networks, image elsewhere.
func typeForPlatform(p models.Platform) models.ContentType {
	switch p {
	case models.PlatformYouTube, models.PlatformTikTok:
		return models.TypeVideo
	default:
		return models.TypeImage
	}
}
