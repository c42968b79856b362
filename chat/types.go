package chat

// Response is what the chat service returns to the HTTP facade and CLI.
type Response struct {
	Answer           string
	Images           []string
	RelevantSections []string
}
