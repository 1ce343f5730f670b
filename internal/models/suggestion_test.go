package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionLifecycle(t *testing.T) {
	t.Run("Pending ni terminal ni supprimable", func(t *testing.T) {
		s := CitySuggestion{Status: SuggestionPending}
		assert.False(t, s.IsTerminal())
		assert.False(t, s.CanDelete())
	})

	t.Run("Approved terminal et supprimable", func(t *testing.T) {
		s := CitySuggestion{Status: SuggestionApproved}
		assert.True(t, s.IsTerminal())
		assert.True(t, s.CanDelete())
	})

	t.Run("Rejected terminal et supprimable", func(t *testing.T) {
		s := CitySuggestion{Status: SuggestionRejected}
		assert.True(t, s.IsTerminal())
		assert.True(t, s.CanDelete())
	})
}
