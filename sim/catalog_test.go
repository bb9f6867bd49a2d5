package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeoverMatrix_SameProductAlwaysZero(t *testing.T) {
	// even an explicitly configured same-product entry costs nothing
	m := NewChangeoverMatrix([]ChangeoverConfig{
		{FromProduct: "A", ToProduct: "A", Hours: 99},
		{FromProduct: "A", ToProduct: "B", Hours: 4},
	})
	assert.Equal(t, 0.0, m.Hours("A", "A"))
	assert.Equal(t, 0.0, m.Hours("B", "B"))
}

func TestChangeoverMatrix_MissingEntryDefaultsToZero(t *testing.T) {
	m := NewChangeoverMatrix([]ChangeoverConfig{
		{FromProduct: "A", ToProduct: "B", Hours: 4},
	})
	assert.Equal(t, 4.0, m.Hours("A", "B"))
	assert.Equal(t, 0.0, m.Hours("B", "A"), "unconfigured pair defaults to zero")
	assert.Equal(t, 0.0, m.Hours("C", "D"))
}

func TestChangeoverMatrix_Directional(t *testing.T) {
	m := NewChangeoverMatrix([]ChangeoverConfig{
		{FromProduct: "A", ToProduct: "B", Hours: 4},
		{FromProduct: "B", ToProduct: "A", Hours: 5},
	})
	assert.Equal(t, 4.0, m.Hours("A", "B"))
	assert.Equal(t, 5.0, m.Hours("B", "A"))
}

func TestCatalog_StepsFor(t *testing.T) {
	catalog := testCatalog()

	steps, err := catalog.StepsFor("A")
	assert.NoError(t, err)
	assert.Len(t, steps, 3)
	assert.Equal(t, "Reaction", steps[0].Name)

	_, err = catalog.StepsFor("missing")
	assert.True(t, errors.Is(err, ErrUnknownProduct))
}

func TestProduct_TotalProcessingTime(t *testing.T) {
	catalog := testCatalog()
	p, err := catalog.Product("A")
	assert.NoError(t, err)
	assert.Equal(t, 14.0, p.TotalProcessingTime())
}
