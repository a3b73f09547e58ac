package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muhammadrohan3/storeManagementSystem/internal/core/entity"
	"github.com/muhammadrohan3/storeManagementSystem/internal/core/id"
)

type MockCatalog struct {
	entity.BaseCatalog
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.Len(t, cols, len(expectedCols))
}

type MockDocument struct {
	entity.Document
	Quantity int64 `db:"quantity" json:"quantity"`
}

// Documents are hard-deleted; their column set must not pick up the
// catalog soft-delete mark.
func TestExtractDBColumns_Document(t *testing.T) {
	cols := ExtractDBColumns[MockDocument]()

	assert.NotContains(t, cols, "deletion_mark")
	assert.Contains(t, cols, "quantity")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "created_at")
}

func TestStructToMap(t *testing.T) {
	cat := MockCatalog{
		BaseCatalog: entity.BaseCatalog{
			BaseEntity: entity.BaseEntity{
				ID:      id.New(),
				Version: 5,
			},
			DeletionMark: true,
		},
		Code: "TEST",
		Name: "Test Name",
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, "Test Name", m["name"])
}

func TestStructToMap_Pointer(t *testing.T) {
	cat := &MockCatalog{Code: "PTR"}

	m := StructToMap(cat)

	assert.Equal(t, "PTR", m["code"])
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	type withUntagged struct {
		Code     string `db:"code"`
		Internal string
		Excluded string `db:"-"`
	}

	m := StructToMap(withUntagged{Code: "X", Internal: "y", Excluded: "z"})

	assert.Equal(t, map[string]any{"code": "X"}, m)
}
