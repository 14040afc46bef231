// Package templates holds the follow-up message library and its
// personalization against a selected patient outcome.
package templates

import "strings"

// FollowUpTemplate is one reusable follow-up message. Content carries the
// literal placeholders [Patient Name], [Doctor Name] and [Date].
type FollowUpTemplate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// DefaultTemplates returns the built-in follow-up library.
func DefaultTemplates() []FollowUpTemplate {
	return []FollowUpTemplate{
		{
			ID:       "1",
			Title:    "Consult Only Follow-up",
			Category: "Consult Only",
			Content:  "Hi [Patient Name], this is [Doctor Name]'s clinic. We noticed you came in for a consultation on [Date]. We wanted to check in and see if you had any further questions or if you'd like to proceed with the recommended treatment. Feel free to reach out!",
		},
		{
			ID:       "2",
			Title:    "No Show Re-engagement",
			Category: "No Show",
			Content:  "Hi [Patient Name], we missed you at your appointment on [Date] with [Doctor Name]. We hope everything is okay! Would you like to reschedule for another time? Please let us know.",
		},
		{
			ID:       "3",
			Title:    "Post-Treatment Check-in",
			Category: "General",
			Content:  "Hi [Patient Name], how are you feeling after your visit with [Doctor Name] on [Date]? We hope you're doing well. If you have any concerns, please don't hesitate to contact us.",
		},
		{
			ID:       "4",
			Title:    "Appointment Reminder",
			Category: "General",
			Content:  "Hi [Patient Name], this is a friendly reminder of your upcoming appointment with [Doctor Name] on [Date]. We look forward to seeing you!",
		},
	}
}

// Search returns the templates whose title or content contains the query,
// case-insensitively. An empty query matches everything.
func Search(library []FollowUpTemplate, query string) []FollowUpTemplate {
	query = strings.ToLower(query)
	matched := make([]FollowUpTemplate, 0, len(library))
	for _, t := range library {
		if query == "" ||
			strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Content), query) {
			matched = append(matched, t)
		}
	}
	return matched
}

// FindByID returns the template with the given ID, or false.
func FindByID(library []FollowUpTemplate, id string) (FollowUpTemplate, bool) {
	for _, t := range library {
		if t.ID == id {
			return t, true
		}
	}
	return FollowUpTemplate{}, false
}
