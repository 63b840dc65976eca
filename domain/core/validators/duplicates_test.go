package validators

import (
	"testing"

	"github.com/kik369/sankey-kiro-app-sub000/domain/core/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates_NoDuplicates(t *testing.T) {
	flows := []*entities.Flow{
		mustFlow(t, "A", "B", 1),
		mustFlow(t, "B", "C", 2),
	}

	groups := FindDuplicates(flows)

	assert.Empty(t, groups)
}

func TestFindDuplicates_EmptyAndNil(t *testing.T) {
	assert.Empty(t, FindDuplicates(nil))
	assert.Empty(t, FindDuplicates([]*entities.Flow{}))
}

func TestFindDuplicates_GroupsByRoute(t *testing.T) {
	ab1 := mustFlow(t, "A", "B", 1)
	bc := mustFlow(t, "B", "C", 2)
	ab2 := mustFlow(t, "A", "B", 3)
	ab3 := mustFlow(t, "A", "B", 5)

	groups := FindDuplicates([]*entities.Flow{ab1, bc, ab2, ab3})

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 3)
	// Members keep their original relative order
	assert.Same(t, ab1, groups[0][0])
	assert.Same(t, ab2, groups[0][1])
	assert.Same(t, ab3, groups[0][2])
}

func TestFindDuplicates_DirectionMatters(t *testing.T) {
	flows := []*entities.Flow{
		mustFlow(t, "A", "B", 1),
		mustFlow(t, "B", "A", 2),
	}

	groups := FindDuplicates(flows)

	assert.Empty(t, groups)
}

func TestFindDuplicates_GroupOrderFollowsFirstOccurrence(t *testing.T) {
	cd1 := mustFlow(t, "C", "D", 1)
	ab1 := mustFlow(t, "A", "B", 2)
	cd2 := mustFlow(t, "C", "D", 3)
	ab2 := mustFlow(t, "A", "B", 4)

	groups := FindDuplicates([]*entities.Flow{cd1, ab1, cd2, ab2})

	require.Len(t, groups, 2)
	assert.Same(t, cd1, groups[0][0])
	assert.Same(t, ab1, groups[1][0])
}

func TestFindDuplicates_CaseSensitiveRoutes(t *testing.T) {
	flows := []*entities.Flow{
		mustFlow(t, "Solar", "Grid", 1),
		mustFlow(t, "solar", "grid", 2),
	}

	groups := FindDuplicates(flows)

	assert.Empty(t, groups)
}
