package api

import (
	"github.com/smd-system/ai-service/internal/domain"
)

// CLOPLOCheckRequest is the request for submitting a CLO-PLO alignment
// analysis.
type CLOPLOCheckRequest struct {
	CLOs        []domain.CLO `json:"clos"         validate:"dive"`
	PLOs        []domain.PLO `json:"plos"         validate:"dive"`
	CallbackURL string       `json:"callback_url" validate:"omitempty,url"`
}

// SemanticDiffRequest is the request for comparing two syllabus versions.
type SemanticDiffRequest struct {
	Syllabus1   domain.Syllabus `json:"syllabus1"`
	Syllabus2   domain.Syllabus `json:"syllabus2"`
	CallbackURL string          `json:"callback_url" validate:"omitempty,url"`
}

// SummaryRequest is the request for generating a syllabus summary.
// Length bounds are optional; defaults apply when omitted.
type SummaryRequest struct {
	Syllabus    domain.Syllabus `json:"syllabus"`
	MaxLength   *int            `json:"max_length"   validate:"omitempty,gt=0"`
	MinLength   *int            `json:"min_length"   validate:"omitempty,gt=0"`
	CallbackURL string          `json:"callback_url" validate:"omitempty,url"`
}

// RelationExtractRequest is the request for extracting course
// relationships across a set of syllabi.
type RelationExtractRequest struct {
	Syllabi     []domain.Syllabus `json:"syllabi"      validate:"required,min=1"`
	CallbackURL string            `json:"callback_url" validate:"omitempty,url"`
}

// OCRRequest is the request for extracting text from a base64-encoded
// document.
type OCRRequest struct {
	FileData    string `json:"file_data"    validate:"required,base64"`
	FileType    string `json:"file_type"    validate:"required,oneof=pdf image"`
	CallbackURL string `json:"callback_url" validate:"omitempty,url"`
}

// SubmitResponse acknowledges an accepted task submission. The task_id
// is deterministic for identical input, so resubmitting the same
// content addresses the same result.
type SubmitResponse struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
