package recommend

import "coachassess/internal/model"

// domainContent is the static guidance bundle for one domain
type domainContent struct {
	Practices []string
	Courses   []model.CourseRecommendation
}

// Content is keyed by domain ID, not by a name slug, so renaming a domain in
// the catalog cannot silently drop it into the generic fallback.
var contentByDomain = map[int]domainContent{
	1: { // Active Listening
		Practices: []string{
			"In your next three sessions, wait a full three seconds after your client stops speaking before you respond.",
			"Summarize what you heard in your own words once per session and ask 'did I get that right?'",
			"Record one session (with permission) and count how often you interrupted.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "The Listening Coach", Description: "A deep practicum on presence, silence, and reflective listening."},
			{Title: "Beyond the Words", Description: "Reading tone, pace, and body language in coaching conversations."},
		},
	},
	2: { // Powerful Questioning
		Practices: []string{
			"Replace one 'why' question with a 'what' or 'how' question in every session this week.",
			"Keep a running list of questions that visibly shifted a client's thinking.",
			"Practice asking one question under ten words, then staying silent.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "Questions That Move People", Description: "Crafting short, open questions that create insight."},
			{Title: "The Socratic Coach", Description: "Inquiry frameworks for deeper client discovery."},
		},
	},
	3: { // Goal Setting & Accountability
		Practices: []string{
			"End every session by having the client state their commitment in their own words.",
			"Open every session by reviewing the previous commitment before anything else.",
			"Help one client this week turn a vague aspiration into a measurable outcome.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "Commitments That Stick", Description: "Designing accountability structures clients actually keep."},
			{Title: "From Vision to Milestones", Description: "Breaking long-range goals into trackable steps."},
		},
	},
	4: { // Emotional Intelligence
		Practices: []string{
			"Name the emotion you observe ('you sound frustrated') once per session and check its accuracy.",
			"Before each session, take two minutes to note your own emotional state.",
			"Debrief one emotionally charged session in writing: what you felt, and what the client likely felt.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "The Emotionally Fluent Coach", Description: "Recognizing and working with emotion in the room."},
			{Title: "Self-Regulation for Coaches", Description: "Staying grounded when sessions get intense."},
		},
	},
	5: { // Feedback & Communication
		Practices: []string{
			"Deliver one piece of direct feedback this week using observation, impact, and invitation.",
			"Ask a client 'how did that land?' after giving feedback, and listen without defending.",
			"Trim your next written client communication to half its first-draft length.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "Feedback Without Flinching", Description: "Delivering candid feedback that preserves trust."},
			{Title: "Clear Coaching Conversations", Description: "Structuring messages clients can act on."},
		},
	},
	6: { // Personal Development
		Practices: []string{
			"Book a session with your own coach or mentor this month.",
			"Keep a weekly reflection log: one thing that worked, one thing to change.",
			"Pick one coaching book or paper and apply a single idea from it within two weeks.",
		},
		Courses: []model.CourseRecommendation{
			{Title: "The Coach's Inner Game", Description: "Sustained self-development habits for practitioners."},
			{Title: "Reflective Practice Intensive", Description: "Turning session experience into deliberate growth."},
		},
	},
}

// genericContent is the fallback for any domain without a specific table
// entry. Guarantees a non-empty practice list and at least one course.
var genericContent = domainContent{
	Practices: []string{
		"Block thirty minutes a week to deliberately practice one skill from this domain.",
		"Ask a peer coach to observe a session and give you feedback on this area.",
		"Write down one concrete behavior to change, and review it after five sessions.",
	},
	Courses: []model.CourseRecommendation{
		{Title: "Core Coaching Skills", Description: "A broad refresher covering the fundamentals of professional coaching."},
	},
}

// contentFor returns the static content for a domain, falling back to the
// generic bundle for unknown IDs
func contentFor(domainID int) domainContent {
	if c, ok := contentByDomain[domainID]; ok {
		return c
	}
	return genericContent
}
