package ocr

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	courseCodeRegex = regexp.MustCompile(`\b[A-Z]{2,4}\s*\d{3,4}\b`)
	creditsRegex    = regexp.MustCompile(`(?i)(\d+)\s*credits?`)
	semesterRegex   = regexp.MustCompile(`(?i)(fall|spring|summer|winter)\s*\d{4}`)
)

// Section is a titled block of document text.
type Section struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// CourseInfo holds course tokens regex-extracted from the document.
type CourseInfo struct {
	CourseCodes []string `json:"course_codes,omitempty"`
	Credits     string   `json:"credits,omitempty"`
	Semesters   []string `json:"semesters,omitempty"`
}

// Structure is the heuristic segmentation of an extracted document.
type Structure struct {
	Sections     []Section  `json:"sections"`
	CourseInfo   CourseInfo `json:"course_info"`
	HasStructure bool       `json:"has_structure"`
}

// AnalyzeStructure segments text into titled sections. A line is a
// heading when it is fully upper-case and short, or ends with a colon.
// Runs on the raw extraction output so line breaks still exist.
func AnalyzeStructure(text string) Structure {
	if strings.TrimSpace(text) == "" {
		return Structure{}
	}

	var sections []Section
	var current *Section

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if isHeading(line) {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: line}
		} else if current != nil {
			current.Content = append(current.Content, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	return Structure{
		Sections:     sections,
		CourseInfo:   ExtractCourseInfo(text),
		HasStructure: len(sections) > 1,
	}
}

// isHeading applies the section heading heuristic.
func isHeading(line string) bool {
	if strings.HasSuffix(line, ":") {
		return true
	}
	if len(line) >= 50 {
		return false
	}
	hasUpper := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// ExtractCourseInfo pulls course code, credit and semester tokens out
// of the text.
func ExtractCourseInfo(text string) CourseInfo {
	var info CourseInfo

	seen := make(map[string]struct{})
	for _, code := range courseCodeRegex.FindAllString(text, -1) {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		info.CourseCodes = append(info.CourseCodes, code)
	}

	if m := creditsRegex.FindStringSubmatch(text); m != nil {
		info.Credits = m[1]
	}

	// Only the season token is reported; the year is matched but
	// dropped.
	seenSem := make(map[string]struct{})
	for _, m := range semesterRegex.FindAllStringSubmatch(text, -1) {
		season := m[1]
		key := strings.ToLower(season)
		if _, ok := seenSem[key]; ok {
			continue
		}
		seenSem[key] = struct{}{}
		info.Semesters = append(info.Semesters, season)
	}

	return info
}
