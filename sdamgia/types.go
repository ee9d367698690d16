package sdamgia

import "fmt"

// GiaType selects which national exam variant a subject domain serves.
type GiaType string

const (
	GiaOGE GiaType = "oge"
	GiaEGE GiaType = "ege"
)

// Subject selects the academic partition of the problem database.
type Subject string

const (
	SubjectMath        Subject = "math"
	SubjectMathBase    Subject = "mathb"
	SubjectPhysics     Subject = "phys"
	SubjectInformatics Subject = "inf"
	SubjectBiology     Subject = "bio"
	SubjectLiterature  Subject = "lit"
	SubjectHistory     Subject = "hist"
	SubjectChemistry   Subject = "chem"
	SubjectGeography   Subject = "geo"
	SubjectSocial      Subject = "soc"
	SubjectRussian     Subject = "rus"
	SubjectEnglish     Subject = "en"
	SubjectGerman      Subject = "de"
	SubjectFrench      Subject = "fr"
	SubjectSpanish     Subject = "sp"
)

// Scope is the (exam type, subject) pair a request is issued against,
// together they select the base domain.
type Scope struct {
	GiaType GiaType
	Subject Subject
}

// ProblemPart is the condition or solution fragment of a problem page.
type ProblemPart struct {
	// Text is the recognized plain-text transcript, empty unless text
	// recognition was requested.
	Text string `json:"text"`
	// HTML is the raw fragment with image sources rewritten to
	// absolute urls.
	HTML string `json:"html"`
	// ImageLinks lists the fragment's image urls once each, formula
	// images first in document order.
	ImageLinks []string `json:"image_links"`
}

type Problem struct {
	GiaType   GiaType      `json:"gia_type"`
	Subject   Subject      `json:"subject"`
	ID        int          `json:"problem_id"`
	Condition *ProblemPart `json:"condition"`
	Solution  *ProblemPart `json:"solution"`
	Answer    string       `json:"answer"`
	TopicID   *int         `json:"topic_id"`
	AnalogIDs []int        `json:"analog_ids"`
}

// URL returns the canonical location of the problem page.
func (p Problem) URL() string {
	return fmt.Sprintf("https://%s-%s.%s/problem?id=%d", p.Subject, p.GiaType, baseDomain, p.ID)
}

type Category struct {
	ID   string `json:"category_id"`
	Name string `json:"category_name"`
}

type CatalogEntry struct {
	TopicID    string     `json:"topic_id"`
	TopicName  string     `json:"topic_name"`
	Categories []Category `json:"categories"`
}

// TestSelection picks how many problems of which catalog topics go
// into a generated test. The zero value asks for one problem from
// every topic.
type TestSelection struct {
	// Full requests this many problems from each catalog topic.
	Full int
	// Topics maps topic numbers to problem counts, consulted only
	// when Full is zero.
	Topics map[int]int
}

// PDFLayout selects the page layout of a generated pdf document.
type PDFLayout string

const (
	// PDFLayoutDefault is the standard vertical layout.
	PDFLayoutDefault PDFLayout = ""
	// PDFLayoutWideMargins leaves wide margins for notes.
	PDFLayoutWideMargins PDFLayout = "h"
	// PDFLayoutLargeFont renders with a large font.
	PDFLayoutLargeFont PDFLayout = "z"
	// PDFLayoutLandscape rotates the page.
	PDFLayoutLandscape PDFLayout = "m"
)

// PDFOptions configure the contents of a generated pdf document.
type PDFOptions struct {
	Solutions   bool
	ProblemNums bool
	Answers     bool
	AnswerKey   bool
	Criteria    bool
	Instruction bool
	Footer      string
	Title       string
	Layout      PDFLayout
}
