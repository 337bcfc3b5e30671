package domain

// Syllabus is the document shape shared by the diff, summary and
// relation-extraction families. Field names mirror the backend's JSON
// casing so payloads pass through without remapping.
type Syllabus struct {
	CourseCode        string `json:"courseCode,omitempty"`
	CourseName        string `json:"courseName,omitempty"`
	Description       string `json:"description,omitempty"`
	Objectives        string `json:"objectives,omitempty"`
	Prerequisites     string `json:"prerequisites,omitempty"`
	AssessmentMethods string `json:"assessmentMethods,omitempty"`
	Textbooks         string `json:"textbooks,omitempty"`
	References        string `json:"references,omitempty"`
	Credits           int    `json:"credits,omitempty"`
	Semester          string `json:"semester,omitempty"`
	AcademicYear      string `json:"academicYear,omitempty"`
}

// DiffFields lists the syllabus fields compared by the semantic diff,
// in reporting order.
var DiffFields = []string{
	"description",
	"objectives",
	"prerequisites",
	"assessmentMethods",
	"textbooks",
	"references",
}

// Field returns the value of one of the comparable text fields by its
// JSON name. Unknown names yield the empty string.
func (s Syllabus) Field(name string) string {
	switch name {
	case "description":
		return s.Description
	case "objectives":
		return s.Objectives
	case "prerequisites":
		return s.Prerequisites
	case "assessmentMethods":
		return s.AssessmentMethods
	case "textbooks":
		return s.Textbooks
	case "references":
		return s.References
	default:
		return ""
	}
}

// ContentText returns the description and objectives joined for
// semantic similarity comparisons between courses.
func (s Syllabus) ContentText() string {
	if s.Description == "" {
		return s.Objectives
	}
	if s.Objectives == "" {
		return s.Description
	}
	return s.Description + " " + s.Objectives
}
