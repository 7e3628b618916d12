package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSelection(t *testing.T) {
	valid := []string{
		"",
		"World",
		"Latin America and the Caribbean",
		"South-Eastern Asia",
		"Côte d'Ivoire",
		"Korea, Rep.",
		"Bosnia & Herzegovina",
		"Micronesia (Federated States of)",
	}
	for _, v := range valid {
		assert.NoError(t, ValidateSelection(v), v)
	}

	invalid := []string{
		"<script>alert(1)</script>",
		"World; DROP TABLE",
		"a/b",
		strings.Repeat("a", 101),
		string([]byte{0xff, 0xfe}),
	}
	for _, v := range invalid {
		assert.Error(t, ValidateSelection(v), v)
	}
}
