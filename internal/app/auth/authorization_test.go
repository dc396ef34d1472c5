package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altan/coursehub/internal/app/models"
)

func TestCanModifyCourse(t *testing.T) {
	t.Parallel()

	svc := NewAuthorizationService()
	course := &models.Course{ID: 1, Title: "Build a Basic Bookcase", UserID: 7}

	t.Run("owner may modify", func(t *testing.T) {
		t.Parallel()
		assert.True(t, svc.CanModifyCourse(7, course))
	})

	t.Run("other users may not", func(t *testing.T) {
		t.Parallel()
		assert.False(t, svc.CanModifyCourse(8, course))
	})

	t.Run("nil course is never modifiable", func(t *testing.T) {
		t.Parallel()
		assert.False(t, svc.CanModifyCourse(7, nil))
	})
}
