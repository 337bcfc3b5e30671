package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smd-system/ai-service/internal/domain"
)

func TestDiffService_Compare(t *testing.T) {
	t.Parallel()

	t.Run("identical versions yield no changes", func(t *testing.T) {
		t.Parallel()

		syllabus := domain.Syllabus{
			CourseCode:  "CS101",
			Description: "Introductory programming",
			Objectives:  "Write small programs",
		}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), syllabus, syllabus)
		require.NoError(t, err)

		assert.Empty(t, result.Results)
		assert.Zero(t, result.Summary.TotalChanges)
		assert.Zero(t, result.Summary.SemanticChanges)
		assert.Empty(t, result.Summary.FieldsChanged)
	})

	t.Run("added field", func(t *testing.T) {
		t.Parallel()

		oldVersion := domain.Syllabus{Description: "Databases"}
		newVersion := domain.Syllabus{Description: "Databases", Objectives: "Design schemas"}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), oldVersion, newVersion)
		require.NoError(t, err)

		require.Len(t, result.Results, 1)
		change := result.Results[0]
		assert.Equal(t, "objectives", change.Field)
		assert.Equal(t, ChangeAdded, change.ChangeType)
		assert.Empty(t, change.OldValue)
		assert.Equal(t, "Design schemas", change.NewValue)
		assert.Zero(t, change.SimilarityScore)
		assert.True(t, change.SemanticChange)
	})

	t.Run("removed field", func(t *testing.T) {
		t.Parallel()

		oldVersion := domain.Syllabus{Description: "Databases", Textbooks: "Silberschatz"}
		newVersion := domain.Syllabus{Description: "Databases"}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), oldVersion, newVersion)
		require.NoError(t, err)

		require.Len(t, result.Results, 1)
		assert.Equal(t, "textbooks", result.Results[0].Field)
		assert.Equal(t, ChangeRemoved, result.Results[0].ChangeType)
	})

	t.Run("modified field scores similarity", func(t *testing.T) {
		t.Parallel()

		oldVersion := domain.Syllabus{
			Description: "relational database design and SQL queries",
		}
		newVersion := domain.Syllabus{
			Description: "relational database design with SQL queries and indexing",
		}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), oldVersion, newVersion)
		require.NoError(t, err)

		require.Len(t, result.Results, 1)
		change := result.Results[0]
		assert.Equal(t, ChangeModified, change.ChangeType)
		assert.Greater(t, change.SimilarityScore, 0.0)
		assert.Equal(t, change.SimilarityScore < 0.8, change.SemanticChange)
	})

	t.Run("unrelated rewrite is a semantic change", func(t *testing.T) {
		t.Parallel()

		oldVersion := domain.Syllabus{Objectives: "paint with watercolors"}
		newVersion := domain.Syllabus{Objectives: "implement network protocols"}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), oldVersion, newVersion)
		require.NoError(t, err)

		require.Len(t, result.Results, 1)
		assert.True(t, result.Results[0].SemanticChange)
		assert.Equal(t, 1, result.Summary.SemanticChanges)
	})

	t.Run("summary lists changed fields in order", func(t *testing.T) {
		t.Parallel()

		oldVersion := domain.Syllabus{
			Description:   "old description text",
			Prerequisites: "CS100",
		}
		newVersion := domain.Syllabus{
			Description:   "new description text entirely",
			Prerequisites: "CS100 and MATH110",
		}

		svc := NewDiffService(tfidfFactory(), testLogger())
		result, err := svc.Compare(context.Background(), oldVersion, newVersion)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Summary.TotalChanges)
		assert.Equal(t, []string{"description", "prerequisites"}, result.Summary.FieldsChanged)
	})
}
