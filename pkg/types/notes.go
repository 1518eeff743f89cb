// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageRecord holds the extracted text of one document page.
type PageRecord struct {
	// Page is the 1-based page number in document order.
	Page int `json:"page" yaml:"page"`

	// Meta is reserved and always empty.
	Meta string `json:"meta" yaml:"meta"`

	// Text is the page text with line endings normalized and outer
	// whitespace trimmed. Empty when the page yields no text.
	Text string `json:"text" yaml:"text"`
}

// WorkflowItem is one entry of a workflow section as the notes page renders it.
type WorkflowItem struct {
	Title     string   `json:"title" yaml:"title"`
	Summary   string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Body      string   `json:"body,omitempty" yaml:"body,omitempty"`
	Note      string   `json:"note,omitempty" yaml:"note,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Checklist []string `json:"checklist,omitempty" yaml:"checklist,omitempty"`
	Pitfalls  []string `json:"pitfalls,omitempty" yaml:"pitfalls,omitempty"`
}

// WorkflowSection groups workflow items under a navigable heading.
// The notes builder never populates workflow sections; the type documents
// the shape the notes page accepts.
type WorkflowSection struct {
	ID    string         `json:"id" yaml:"id"`
	Title string         `json:"title" yaml:"title"`
	Emoji string         `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Tags  []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Items []WorkflowItem `json:"items" yaml:"items"`
}

// Payload is the value assigned to window.NOTES_DATA.
type Payload struct {
	// Pages lists one record per document page, in page order.
	Pages []PageRecord `json:"pages" yaml:"pages"`

	// Workflow is reserved. It is always encoded as an empty array.
	Workflow []WorkflowSection `json:"workflow" yaml:"workflow"`
}
