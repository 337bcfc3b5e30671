package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/embedding"
)

// Relation type identifiers.
const (
	RelationPrerequisite = "prerequisite"
	RelationSuccessor    = "successor"
	RelationSemantic     = "semantic_similarity"
)

const (
	// semanticRelationFloor is the minimum similarity for a semantic
	// relation to be reported at all.
	semanticRelationFloor = 0.3

	// semanticEdgeFloor is the minimum strength for a semantic relation
	// to appear as a graph edge.
	semanticEdgeFloor = 0.6

	// maxSemanticRelations bounds reported semantic relations per course.
	maxSemanticRelations = 5
)

// prereqCodeRegex matches course codes such as "CS101", "MATH 201" and
// "CS-101". Any run of whitespace between letters and digits counts.
var prereqCodeRegex = regexp.MustCompile(`(?i)\b[A-Z]{2,4}(?:\s*|-)\d{3,4}\b`)

// PrereqCourse is one course code extracted from prerequisites text.
type PrereqCourse struct {
	CourseCode    string  `json:"course_code"`
	RelationType  string  `json:"relation_type"`
	Strength      float64 `json:"strength"`
	ExtractedFrom string  `json:"extracted_from"`
}

// RelatedCourse is a successor or semantically similar course.
type RelatedCourse struct {
	CourseCode   string  `json:"course_code"`
	CourseName   string  `json:"course_name"`
	RelationType string  `json:"relation_type"`
	Strength     float64 `json:"strength"`
}

// CourseRelations collects everything known about one course.
type CourseRelations struct {
	CourseName        string          `json:"course_name"`
	Prerequisites     []PrereqCourse  `json:"prerequisites"`
	SemanticRelations []RelatedCourse `json:"semantic_relations"`
	SuccessorCourses  []RelatedCourse `json:"successor_courses"`
}

// GraphNode is one course in the relationship graph.
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// GraphEdge is one directed relationship in the graph.
type GraphEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// RelationGraph is the node/edge view of the extracted relations.
type RelationGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// RelationStatistics are the aggregate counters of one extraction.
type RelationStatistics struct {
	TotalCourses             int `json:"total_courses"`
	CoursesWithPrerequisites int `json:"courses_with_prerequisites"`
	TotalRelationships       int `json:"total_relationships"`
}

// RelationResult is the payload of a completed relation extraction task.
type RelationResult struct {
	CourseRelations   map[string]*CourseRelations `json:"course_relations"`
	RelationshipGraph RelationGraph               `json:"relationship_graph"`
	Statistics        RelationStatistics          `json:"statistics"`
}

// RelationService extracts prerequisite and semantic relationships
// between the submitted courses.
type RelationService struct {
	newEmbedder EmbedderFactory
	logger      *slog.Logger
}

// NewRelationService creates a RelationService.
func NewRelationService(newEmbedder EmbedderFactory, logger *slog.Logger) *RelationService {
	return &RelationService{
		newEmbedder: newEmbedder,
		logger:      logger.With("component", "relation_service"),
	}
}

// ExtractPrerequisiteCourses regex-extracts course codes from
// prerequisites text, normalized to uppercase with separators removed
// and deduplicated by normalized code.
func ExtractPrerequisiteCourses(prerequisitesText string) []PrereqCourse {
	if prerequisitesText == "" {
		return nil
	}

	var found []PrereqCourse
	seen := make(map[string]struct{})
	for _, match := range prereqCodeRegex.FindAllString(prerequisitesText, -1) {
		code := strings.ToUpper(strings.TrimSpace(match))
		code = strings.ReplaceAll(code, " ", "")
		code = strings.ReplaceAll(code, "-", "")
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		found = append(found, PrereqCourse{
			CourseCode:    code,
			RelationType:  RelationPrerequisite,
			Strength:      1.0,
			ExtractedFrom: match,
		})
	}
	return found
}

// Extract builds the full relation map, the successor pass and the
// relationship graph for the submitted syllabi.
func (s *RelationService) Extract(ctx context.Context, syllabi []domain.Syllabus) (*RelationResult, error) {
	relations := make(map[string]*CourseRelations)
	var order []string

	vectors, err := s.embedContents(ctx, syllabi)
	if err != nil {
		return nil, err
	}

	for i, syllabus := range syllabi {
		code := syllabus.CourseCode
		if code == "" {
			continue
		}
		prereqs := ExtractPrerequisiteCourses(syllabus.Prerequisites)
		if prereqs == nil {
			prereqs = []PrereqCourse{}
		}
		relations[code] = &CourseRelations{
			CourseName:        syllabus.CourseName,
			Prerequisites:     prereqs,
			SemanticRelations: s.semanticRelations(i, syllabi, vectors),
			SuccessorCourses:  []RelatedCourse{},
		}
		order = append(order, code)
	}

	// A course that appears in another course's prerequisites records
	// that other course as its successor.
	for _, code := range order {
		for _, otherCode := range order {
			if code == otherCode {
				continue
			}
			other := relations[otherCode]
			for _, prereq := range other.Prerequisites {
				if prereq.CourseCode == code {
					relations[code].SuccessorCourses = append(relations[code].SuccessorCourses, RelatedCourse{
						CourseCode:   otherCode,
						CourseName:   other.CourseName,
						RelationType: RelationSuccessor,
						Strength:     1.0,
					})
					break
				}
			}
		}
	}

	graph := buildRelationshipGraph(order, relations)

	stats := RelationStatistics{TotalCourses: len(syllabi)}
	for _, rel := range relations {
		if len(rel.Prerequisites) > 0 {
			stats.CoursesWithPrerequisites++
		}
		stats.TotalRelationships += len(rel.Prerequisites) + len(rel.SuccessorCourses)
	}

	return &RelationResult{
		CourseRelations:   relations,
		RelationshipGraph: graph,
		Statistics:        stats,
	}, nil
}

// embedContents embeds each course's description+objectives text.
// Courses without content get a nil vector and are skipped during
// similarity scoring.
func (s *RelationService) embedContents(ctx context.Context, syllabi []domain.Syllabus) ([][]float64, error) {
	vectors := make([][]float64, len(syllabi))

	var corpus []string
	for _, syllabus := range syllabi {
		if text := strings.TrimSpace(syllabus.ContentText()); text != "" {
			corpus = append(corpus, text)
		}
	}
	if len(corpus) == 0 {
		return vectors, nil
	}

	embedder := s.newEmbedder()
	if err := embedder.Prepare(ctx, corpus); err != nil {
		return nil, fmt.Errorf("failed to prepare embedder: %w", err)
	}

	for i, syllabus := range syllabi {
		text := strings.TrimSpace(syllabus.ContentText())
		if text == "" {
			continue
		}
		vec, err := embedder.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed course %s: %w", syllabus.CourseCode, err)
		}
		vectors[i] = vec
	}
	return vectors, nil
}

// semanticRelations scores one course against every other course and
// keeps the strongest matches above the reporting floor.
func (s *RelationService) semanticRelations(
	target int,
	syllabi []domain.Syllabus,
	vectors [][]float64,
) []RelatedCourse {
	targetCode := syllabi[target].CourseCode
	if vectors[target] == nil {
		return []RelatedCourse{}
	}

	related := []RelatedCourse{}
	for i, other := range syllabi {
		if i == target || other.CourseCode == "" || other.CourseCode == targetCode {
			continue
		}
		if vectors[i] == nil {
			continue
		}
		similarity := embedding.Cosine(vectors[target], vectors[i])
		if similarity > semanticRelationFloor {
			related = append(related, RelatedCourse{
				CourseCode:   other.CourseCode,
				CourseName:   other.CourseName,
				RelationType: RelationSemantic,
				Strength:     similarity,
			})
		}
	}

	sort.SliceStable(related, func(a, b int) bool { return related[a].Strength > related[b].Strength })
	if len(related) > maxSemanticRelations {
		related = related[:maxSemanticRelations]
	}
	return related
}

// buildRelationshipGraph assembles nodes and edges: prerequisite edges
// point from the prerequisite to the dependent course, semantic edges
// only appear above the strength floor.
func buildRelationshipGraph(order []string, relations map[string]*CourseRelations) RelationGraph {
	graph := RelationGraph{Nodes: []GraphNode{}, Edges: []GraphEdge{}}

	for _, code := range order {
		rel := relations[code]

		// Labels always carry the ellipsis, even for short names.
		label := rel.CourseName
		if runes := []rune(label); len(runes) > 30 {
			label = string(runes[:30])
		}
		graph.Nodes = append(graph.Nodes, GraphNode{
			ID:    code,
			Label: code + "\n" + label + "...",
			Type:  "course",
		})

		for _, prereq := range rel.Prerequisites {
			graph.Edges = append(graph.Edges, GraphEdge{
				From:     prereq.CourseCode,
				To:       code,
				Type:     RelationPrerequisite,
				Strength: prereq.Strength,
			})
		}
		for _, semantic := range rel.SemanticRelations {
			if semantic.Strength > semanticEdgeFloor {
				graph.Edges = append(graph.Edges, GraphEdge{
					From:     code,
					To:       semantic.CourseCode,
					Type:     "semantic",
					Strength: semantic.Strength,
				})
			}
		}
	}

	return graph
}
