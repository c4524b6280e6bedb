package services

import "strings"

// chatRule maps trigger keywords to a canned reply. Rules are checked in
// order; the first rule with a matching keyword wins.
type chatRule struct {
	keywords []string
	reply    string
}

const chatFallback = "Thank you for your message! Our travel experts will get back to you shortly."

var chatRules = []chatRule{
	{
		keywords: []string{"package", "tour"},
		reply:    "We have amazing packages including Bali Paradise, Paris Romance, Tokyo Adventure, and more! Would you like me to show you our featured packages?",
	},
	{
		keywords: []string{"book"},
		reply:    "I'd be happy to help you with booking! You can click the 'Book Now' button to start your booking process, or let me know which package interests you.",
	},
	{
		keywords: []string{"price", "cost"},
		reply:    "Our packages range from $899 for Bali Paradise to $4,999 for Maldives Luxury. Each package includes accommodations, meals, and activities. Would you like details about a specific package?",
	},
	{
		keywords: []string{"help", "support"},
		reply:    "I'm here to help! I can assist with package information, booking questions, and travel recommendations. What would you like to know?",
	},
}

// ChatService answers visitor messages with scripted replies chosen by
// case-insensitive substring matching.
type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

func (s *ChatService) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return chatFallback
}
