package models

// Question family constants
const (
	FamilyMatrix         = "matrix"
	FamilyMultipleChoice = "multiple_choice"
	FamilySingleChoice   = "single_choice"
	FamilyOpenEnded      = "open_ended"
	FamilyDatetime       = "datetime"
)

// Survey detail types

type SurveyDetail struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Pages []DetailPage `json:"pages"`
}

type DetailPage struct {
	ID        string           `json:"id"`
	Questions []DetailQuestion `json:"questions"`
}

type DetailQuestion struct {
	ID       string      `json:"id"`
	Family   string      `json:"family"`
	Headings []Heading   `json:"headings"`
	Answers  *AnswerSpec `json:"answers,omitempty"`
}

type Heading struct {
	Heading string `json:"heading"`
}

// AnswerSpec lists the answer options a question offers. Any of the three
// collections may be absent depending on the family.
type AnswerSpec struct {
	Rows    []Option `json:"rows,omitempty"`
	Choices []Option `json:"choices,omitempty"`
	Other   *Option  `json:"other,omitempty"`
}

type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Response types

type ResponsePage struct {
	Data    []Response `json:"data"`
	Links   PageLinks  `json:"links"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
}

type PageLinks struct {
	Self string `json:"self,omitempty"`
	Next string `json:"next,omitempty"`
}

type Response struct {
	ID             string              `json:"id"`
	DateCreated    string              `json:"date_created"`
	DateModified   string              `json:"date_modified"`
	ResponseStatus string              `json:"response_status"`
	Pages          []ResponsePageBlock `json:"pages"`
}

type ResponsePageBlock struct {
	ID        string             `json:"id"`
	Questions []AnsweredQuestion `json:"questions"`
}

type AnsweredQuestion struct {
	ID      string        `json:"id"`
	Answers []AnswerEntry `json:"answers"`
}

// AnswerEntry is one selected option or typed value. Which fields are set
// depends on the question family.
type AnswerEntry struct {
	ChoiceID string `json:"choice_id,omitempty"`
	RowID    string `json:"row_id,omitempty"`
	OtherID  string `json:"other_id,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Survey listing types

type SurveyList struct {
	Data  []SurveySummary `json:"data"`
	Links PageLinks       `json:"links"`
}

type SurveySummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Nickname string `json:"nickname,omitempty"`
}
