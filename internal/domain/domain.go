// Package domain holds the persisted entity types. Each type maps to
// one store collection named by the lowercase entity name.
package domain

const (
	CollectionUserProfile  = "userprofile"
	CollectionReport       = "report"
	CollectionChatMessage  = "chatmessage"
	CollectionSymptomCheck = "symptomcheck"
	CollectionReminder     = "reminder"
)

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
