// Package catalog holds the static assessment reference data: six coaching
// competency domains and their 55 Likert questions. The seeder loads this
// into MongoDB; at runtime the catalog is always read from the store.
package catalog

import "coachassess/internal/model"

// Domains returns the six competency domains in display order
func Domains() []model.Domain {
	return []model.Domain{
		{ID: 1, Name: "Active Listening", Description: "Hearing what clients say, and what they don't", ColorHex: "#3b82f6", IconEmoji: "👂", DisplayOrder: 1},
		{ID: 2, Name: "Powerful Questioning", Description: "Asking questions that create insight and movement", ColorHex: "#8b5cf6", IconEmoji: "❓", DisplayOrder: 2},
		{ID: 3, Name: "Goal Setting & Accountability", Description: "Turning intentions into commitments clients keep", ColorHex: "#f59e0b", IconEmoji: "🎯", DisplayOrder: 3},
		{ID: 4, Name: "Emotional Intelligence", Description: "Reading, naming, and working with emotion", ColorHex: "#ef4444", IconEmoji: "💛", DisplayOrder: 4},
		{ID: 5, Name: "Feedback & Communication", Description: "Saying hard things clearly and kindly", ColorHex: "#10b981", IconEmoji: "💬", DisplayOrder: 5},
		{ID: 6, Name: "Personal Development", Description: "Growing your own practice deliberately", ColorHex: "#06b6d4", IconEmoji: "🌱", DisplayOrder: 6},
	}
}

// Questions returns the full 55-question catalog, ordered by ID. Each
// question belongs to exactly one domain and question IDs are contiguous
// within a domain.
func Questions() []model.Question {
	texts := []struct {
		domainID int
		items    []string
	}{
		{1, []string{ // Active Listening: 10
			"I give clients my full attention without planning my next response.",
			"I notice and reflect back the emotions behind a client's words.",
			"I am comfortable letting silence sit in a conversation.",
			"I paraphrase what I've heard to confirm my understanding.",
			"I rarely interrupt clients, even when I think I know where they're going.",
			"I pick up on changes in tone, pace, and energy during sessions.",
			"I listen for what the client avoids saying as much as what they say.",
			"I set aside my own agenda when a client needs to be heard.",
			"I remember important details from previous sessions without notes.",
			"Clients tell me they feel genuinely heard in our sessions.",
		}},
		{2, []string{ // Powerful Questioning: 9
			"I ask short, open questions rather than long, leading ones.",
			"My questions regularly surprise clients into new thinking.",
			"I resist the urge to wrap advice inside a question.",
			"I ask about what matters to the client, not what's interesting to me.",
			"I follow a powerful question with silence rather than a second question.",
			"I ask questions that move clients toward action, not just insight.",
			"I adapt my questioning style to each client's way of thinking.",
			"I can name several questions that reliably open up a stuck conversation.",
			"I ask permission before probing into sensitive territory.",
		}},
		{3, []string{ // Goal Setting & Accountability: 9
			"I help clients turn vague aspirations into specific, measurable goals.",
			"Every session ends with a clear commitment the client has stated themselves.",
			"I open sessions by reviewing the commitments from the previous one.",
			"I help clients break large goals into steps they can start this week.",
			"I address missed commitments directly rather than letting them slide.",
			"I help clients design their own accountability structures.",
			"I distinguish between a client's stated goals and their underlying wants.",
			"I track client progress across sessions, not just within them.",
			"I renegotiate goals openly when circumstances genuinely change.",
		}},
		{4, []string{ // Emotional Intelligence: 9
			"I notice my own emotional reactions during sessions without being run by them.",
			"I can name the emotion in the room before the client does.",
			"I stay grounded when a client becomes angry, tearful, or withdrawn.",
			"I recognize when my own state is coloring how I hear a client.",
			"I recover quickly when a session takes an unexpected emotional turn.",
			"I can sit with a client's discomfort without rushing to fix it.",
			"I read what clients communicate through posture and expression.",
			"I know which of my buttons clients can push, and what I do when they're pushed.",
			"I prepare myself emotionally before difficult sessions.",
		}},
		{5, []string{ // Feedback & Communication: 8
			"I deliver direct feedback without softening it into uselessness.",
			"I separate my observations from my interpretations when giving feedback.",
			"I check how feedback landed instead of assuming it was received as intended.",
			"I communicate hard truths in a way that preserves the relationship.",
			"My written communication to clients is clear and concise.",
			"I invite and genuinely consider feedback about my own coaching.",
			"I tailor how I communicate to each client's style and needs.",
			"I say less than I could, and it lands better because of it.",
		}},
		{6, []string{ // Personal Development: 10
			"I have my own coach, mentor, or supervisor.",
			"I reflect on my coaching practice in writing at least weekly.",
			"I actively study coaching through books, courses, or peer groups.",
			"I seek out clients and situations that stretch my current abilities.",
			"I review difficult sessions to understand what I could do differently.",
			"I have a clear picture of the coach I am trying to become.",
			"I invest money and time in my professional development every year.",
			"I ask peers to observe my coaching and tell me what they see.",
			"I notice when I'm coasting on old strengths instead of growing new ones.",
			"I treat my own development with the same rigor I ask of clients.",
		}},
	}

	var questions []model.Question
	id := 1
	for _, group := range texts {
		for i, text := range group.items {
			questions = append(questions, model.Question{
				ID:       id,
				DomainID: group.domainID,
				Text:     text,
				Order:    i + 1,
			})
			id++
		}
	}
	return questions
}
