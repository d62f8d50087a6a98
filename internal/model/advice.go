package model

// AdviceList is the structured output required from the model:
// a title plus an ordered list of titled advice items.
type AdviceList struct {
	Title string     `json:"title"`
	List  []ListItem `json:"list"`
}

type ListItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AIMessage is a single role-tagged entry of the conversation history sent to
// the external model.
type AIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
