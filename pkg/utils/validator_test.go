package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title  string `json:"title" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Title: "Heat", Rating: 4}))

	errs := ValidateStruct(sample{Rating: 9})
	assert.Equal(t, map[string]string{
		"title":  "This field is required",
		"rating": "Must be at most 5",
	}, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"title":  "This field is required",
		"rating": "Must be at least 1",
	})
	assert.Equal(t, "rating: Must be at least 1; title: This field is required", got)
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
