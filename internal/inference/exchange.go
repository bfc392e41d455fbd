package inference

// SystemPrompt is the fixed instruction sent ahead of every question.
const SystemPrompt = "You are SRE-GPT, an elite site-reliability engineer. " +
	"When the user asks a question, respond with JSON only, using keys: " +
	"cmd, explanation, dangerous."

// Question is what the user asked, with standard input captured when it was piped in.
type Question struct {
	Prompt string
	Stdin  string
}

// Exchange is the system + user message pair sent to the completion service
type Exchange struct {
	Messages []Message
}

// NewExchange composes the system instruction with the user's question.
// A non-empty stdin blob is prefixed to the question and labeled.
func NewExchange(question Question) Exchange {
	content := question.Prompt
	if question.Stdin != "" {
		content = "STDIN:\n" + question.Stdin + "\n\n" + question.Prompt
	}

	return Exchange{
		Messages: []Message{
			{Role: RoleSystem, Content: SystemPrompt},
			{Role: RoleUser, Content: content},
		},
	}
}
