package content

import "encoding/json"

// SectionType discriminates the variants of a Section.
type SectionType string

const (
	SectionConcept SectionType = "concept"
	SectionList    SectionType = "list"
	SectionCode    SectionType = "code"
	SectionTable   SectionType = "table"
)

// Document is one renderable unit of subject matter: a display title, a
// short summary, and an ordered list of typed sections. Section order is
// display order.
type Document struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Sections    []Section `json:"sections"`
}

// Section is a tagged union discriminated by Type. Only the fields
// belonging to the tag are populated; everything else stays zero. Unknown
// tags are preserved so the renderer can skip them without erroring.
type Section struct {
	Type  SectionType
	Title string

	// concept
	Concepts []ConceptItem

	// list
	Items []ListItem

	// code
	Language string
	Code     string

	// table
	Columns []string
	Rows    [][]string
}

// ConceptItem is one card in a concept section.
type ConceptItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListItem is one card in a list section. Examples render as pill tags.
type ListItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

// sectionJSON mirrors the authored JSON shape of a section. Every field
// is optional; hand-authored documents are routinely incomplete.
type sectionJSON struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Content  []ConceptItem `json:"content"`
	Items    []ListItem    `json:"items"`
	Language string        `json:"language"`
	Code     string        `json:"code"`
	Columns  []string      `json:"columns"`
	Rows     [][]string    `json:"rows"`
}

// UnmarshalJSON decodes a section keeping its raw tag. A section whose
// tag is unrecognized, or whose required fields are absent, decodes to a
// degraded value rather than an error.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Type = SectionType(raw.Type)
	s.Title = raw.Title

	switch s.Type {
	case SectionConcept:
		s.Concepts = raw.Content
	case SectionList:
		s.Items = raw.Items
	case SectionCode:
		s.Language = raw.Language
		s.Code = raw.Code
	case SectionTable:
		s.Columns = raw.Columns
		s.Rows = raw.Rows
	}
	return nil
}

// MarshalJSON writes a section back in its authored shape.
func (s Section) MarshalJSON() ([]byte, error) {
	raw := sectionJSON{
		Type:     string(s.Type),
		Title:    s.Title,
		Content:  s.Concepts,
		Items:    s.Items,
		Language: s.Language,
		Code:     s.Code,
		Columns:  s.Columns,
		Rows:     s.Rows,
	}
	return json.Marshal(raw)
}

// TopicKey identifies a document in the store.
type TopicKey struct {
	Section string
	Topic   string
}

func (k TopicKey) String() string { return k.Section + "/" + k.Topic }
