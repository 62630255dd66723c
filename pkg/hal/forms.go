package hal

// Template is a HAL-FORMS affordance.
type Template struct {
	Title       string     `json:"title,omitempty"`
	Method      string     `json:"method"`
	ContentType string     `json:"contentType,omitempty"`
	Target      string     `json:"target,omitempty"`
	Properties  []Property `json:"properties"`
}

type Property struct {
	Name     string   `json:"name"`
	Prompt   string   `json:"prompt,omitempty"`
	Required bool     `json:"required,omitempty"`
	ReadOnly bool     `json:"readOnly,omitempty"`
	Type     string   `json:"type,omitempty"`
	Regex    string   `json:"regex,omitempty"`
	Options  *Options `json:"options,omitempty"`
}

// Options constrain a property's values either to an inline list or to the result of
// following Link, which must return an array of Option.
type Options struct {
	Inline         []any    `json:"inline,omitempty"`
	Link           *Link    `json:"link,omitempty"`
	MinItems       *int     `json:"minItems,omitempty"`
	MaxItems       *int     `json:"maxItems,omitempty"`
	PromptField    string   `json:"promptField,omitempty"`
	ValueField     string   `json:"valueField,omitempty"`
	SelectedValues []string `json:"selectedValues,omitempty"`
}

type Option struct {
	Prompt string `json:"prompt"`
	Value  string `json:"value"`
}

// DefaultTemplate is the key HAL-FORMS clients look up first.
const DefaultTemplate = "default"
