package dbtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSearchPath(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@localhost:5432/app?search_path=s1&sslmode=disable",
		withSearchPath("postgres://u:p@localhost:5432/app?sslmode=disable", "s1"))
	assert.Equal(t,
		"host=localhost dbname=app search_path=s1",
		withSearchPath("host=localhost dbname=app", "s1"))
}
