package eligibility

const urgencyThreshold = 60

const (
	MessageSuccess = "success"
	MessageWarning = "warning"
)

type ActionItem struct {
	Key         string
	Label       string
	Description string
	Urgent      bool
}

// StatusMessage is the user-facing rendering of an eligibility result.
type StatusMessage struct {
	Type    string
	Title   string
	Body    string
	Actions []ActionItem
}

// BuildEligibilityMessage turns an eligibility result into the message shown
// on the mentor dashboard. An unmet requirement is flagged urgent when the
// profile is less than 60% complete.
func BuildEligibilityMessage(result *MentorEligibility) StatusMessage {
	if result.IsEligible {
		return StatusMessage{
			Type:    MessageSuccess,
			Title:   "You are visible in mentor listings",
			Body:    "Your mentor profile meets all listing requirements.",
			Actions: []ActionItem{},
		}
	}

	actions := make([]ActionItem, 0, len(result.UnmetRequirements))
	for _, req := range result.UnmetRequirements {
		actions = append(actions, ActionItem{
			Key:         req.Key,
			Label:       req.Label,
			Description: req.Description,
			Urgent:      result.CompletionPercentage < urgencyThreshold,
		})
	}

	return StatusMessage{
		Type:    MessageWarning,
		Title:   "Your profile is not visible to mentees yet",
		Body:    "Complete the requirements below to appear in mentor listings.",
		Actions: actions,
	}
}
