package domain

// Page is what the rendering layer receives for one word: the word itself,
// the layout to render it with and, when Status is PageStatusOK, the typed
// visual payload. With PageStatusInvalidData, Visual is nil and Issues lists
// what was wrong with visual_data.
type Page struct {
	Word   *Word
	Layout string
	Visual VisualPayload
	Status PageStatus
	Issues []FieldError
}
