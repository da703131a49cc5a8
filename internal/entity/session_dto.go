package entity

// SessionState is a snapshot of one form session.
// Estimated is the form the current Result was computed from.
type SessionState struct {
	Form      PropertyDescription
	Result    *EstimationResult
	Estimated *PropertyDescription
	Loading   bool
	Error     *string
}

// ViewKind is the mutually exclusive display state of a session
type ViewKind string

const (
	ViewError   ViewKind = "error"
	ViewLoading ViewKind = "loading"
	ViewResult  ViewKind = "result"
	ViewEmpty   ViewKind = "empty"
)

// ResultView is the formatted estimation result
type ResultView struct {
	EstimatedPrice float64 `json:"estimated_price_uah"`
	FormattedPrice string  `json:"formatted_price"`
	PriceRange     string  `json:"price_range"`
	Justification  string  `json:"justification"`
}

// FormView is the form as rendered. Area and Rooms are nil when the
// entered text is not a number.
type FormView struct {
	Type        PropertyType `json:"type"`
	Location    string       `json:"location"`
	Area        *float64     `json:"area"`
	Rooms       *float64     `json:"rooms"`
	Condition   Condition    `json:"condition"`
	Description string       `json:"description"`
}

// SessionView is what the display surface renders for a session
type SessionView struct {
	SessionID     string      `json:"session_id"`
	Kind          ViewKind    `json:"kind"`
	Form          FormView    `json:"form"`
	SubmitEnabled bool        `json:"submit_enabled"`
	SubmitLabel   string      `json:"submit_label"`
	Message       string      `json:"message,omitempty"`
	Result        *ResultView `json:"result,omitempty"`
}

// UpdateFieldRequest is the body of PATCH /sessions/{session_id}/form
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// OptionsResponse lists the closed sets the form offers
type OptionsResponse struct {
	PropertyTypes []PropertyType `json:"property_types"`
	Conditions    []Condition    `json:"conditions"`
}

// ReportFormat is an export format for an estimation report
type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatPDF      ReportFormat = "pdf"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
