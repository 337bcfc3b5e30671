package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smd-system/ai-service/internal/domain"
)

func TestExtractPrerequisiteCourses(t *testing.T) {
	t.Parallel()

	t.Run("normalizes code formats", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			text string
			code string
		}{
			{"Requires CS101 before enrolling", "CS101"},
			{"Requires MATH 201 before enrolling", "MATH201"},
			{"Requires CS  101 before enrolling", "CS101"},
			{"Requires CS-101 before enrolling", "CS101"},
			{"requires cs101", "CS101"},
		}
		for _, tc := range tests {
			found := ExtractPrerequisiteCourses(tc.text)
			require.Len(t, found, 1, "text %q", tc.text)
			assert.Equal(t, tc.code, found[0].CourseCode)
			assert.Equal(t, RelationPrerequisite, found[0].RelationType)
			assert.Equal(t, 1.0, found[0].Strength)
		}
	})

	t.Run("preserves the matched text", func(t *testing.T) {
		t.Parallel()

		found := ExtractPrerequisiteCourses("Completion of MATH 201 required")
		require.Len(t, found, 1)
		assert.Equal(t, "MATH 201", found[0].ExtractedFrom)
	})

	t.Run("deduplicates by normalized code", func(t *testing.T) {
		t.Parallel()

		found := ExtractPrerequisiteCourses("CS101 or CS-101 or CS 101")
		assert.Len(t, found, 1)
	})

	t.Run("empty and codeless text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ExtractPrerequisiteCourses(""))
		assert.Empty(t, ExtractPrerequisiteCourses("no formal prerequisites"))
	})
}

func TestRelationService_Extract(t *testing.T) {
	t.Parallel()

	t.Run("records successors on the prerequisite course", func(t *testing.T) {
		t.Parallel()

		syllabi := []domain.Syllabus{
			{
				CourseCode:  "CS101",
				CourseName:  "Intro to Programming",
				Description: "basic programming in python",
			},
			{
				CourseCode:    "CS201",
				CourseName:    "Data Structures",
				Description:   "lists trees and graphs",
				Prerequisites: "CS101",
			},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		intro := result.CourseRelations["CS101"]
		require.NotNil(t, intro)
		require.Len(t, intro.SuccessorCourses, 1)
		assert.Equal(t, "CS201", intro.SuccessorCourses[0].CourseCode)
		assert.Equal(t, RelationSuccessor, intro.SuccessorCourses[0].RelationType)

		ds := result.CourseRelations["CS201"]
		require.NotNil(t, ds)
		require.Len(t, ds.Prerequisites, 1)
		assert.Equal(t, "CS101", ds.Prerequisites[0].CourseCode)
		assert.Empty(t, ds.SuccessorCourses)
	})

	t.Run("prerequisite edges point at the dependent course", func(t *testing.T) {
		t.Parallel()

		syllabi := []domain.Syllabus{
			{CourseCode: "CS101", CourseName: "Intro", Description: "programming"},
			{CourseCode: "CS201", CourseName: "Data Structures", Description: "structures", Prerequisites: "CS101"},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		var prereqEdges int
		for _, edge := range result.RelationshipGraph.Edges {
			if edge.Type == RelationPrerequisite {
				prereqEdges++
				assert.Equal(t, "CS101", edge.From)
				assert.Equal(t, "CS201", edge.To)
				assert.Equal(t, 1.0, edge.Strength)
			}
		}
		assert.Equal(t, 1, prereqEdges)

		require.Len(t, result.RelationshipGraph.Nodes, 2)
		assert.Equal(t, "CS101", result.RelationshipGraph.Nodes[0].ID)
		assert.Equal(t, "CS101\nIntro...", result.RelationshipGraph.Nodes[0].Label)
	})

	t.Run("node labels truncate long names and keep the ellipsis", func(t *testing.T) {
		t.Parallel()

		longName := "Advanced Topics in Distributed Database Systems"
		syllabi := []domain.Syllabus{
			{CourseCode: "CS501", CourseName: longName, Description: "distributed databases"},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		require.Len(t, result.RelationshipGraph.Nodes, 1)
		assert.Equal(t, "CS501\n"+longName[:30]+"...", result.RelationshipGraph.Nodes[0].Label)
	})

	t.Run("semantic relations between similar courses", func(t *testing.T) {
		t.Parallel()

		syllabi := []domain.Syllabus{
			{
				CourseCode:  "DB301",
				CourseName:  "Databases",
				Description: "relational database design sql transactions storage",
			},
			{
				CourseCode:  "DB401",
				CourseName:  "Advanced Databases",
				Description: "relational database internals sql query optimization storage",
			},
			{
				CourseCode:  "ART100",
				CourseName:  "Drawing",
				Description: "sketching charcoal figure composition",
			},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		db := result.CourseRelations["DB301"]
		require.NotNil(t, db)
		require.NotEmpty(t, db.SemanticRelations)
		assert.Equal(t, "DB401", db.SemanticRelations[0].CourseCode)
		assert.Equal(t, RelationSemantic, db.SemanticRelations[0].RelationType)
		assert.Greater(t, db.SemanticRelations[0].Strength, semanticRelationFloor)

		for _, rel := range db.SemanticRelations {
			assert.NotEqual(t, "ART100", rel.CourseCode,
				"unrelated course should stay below the reporting floor")
		}
	})

	t.Run("courses without codes are skipped", func(t *testing.T) {
		t.Parallel()

		syllabi := []domain.Syllabus{
			{CourseName: "Unnamed", Description: "something"},
			{CourseCode: "CS101", CourseName: "Intro", Description: "programming"},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		assert.Len(t, result.CourseRelations, 1)
		assert.Equal(t, 2, result.Statistics.TotalCourses)
	})

	t.Run("statistics count prerequisite and successor links", func(t *testing.T) {
		t.Parallel()

		syllabi := []domain.Syllabus{
			{CourseCode: "CS101", CourseName: "Intro", Description: "programming"},
			{CourseCode: "CS201", CourseName: "Data Structures", Description: "structures", Prerequisites: "CS101"},
		}

		svc := NewRelationService(tfidfFactory(), testLogger())
		result, err := svc.Extract(context.Background(), syllabi)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Statistics.CoursesWithPrerequisites)
		// One prerequisite link plus its mirrored successor link.
		assert.Equal(t, 2, result.Statistics.TotalRelationships)
	})
}
