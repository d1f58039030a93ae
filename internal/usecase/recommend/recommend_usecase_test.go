package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDeterministic(t *testing.T) {
	uc := NewUseCase()
	req := &Request{City: "moscow", Description: "романтика", Places: 4}

	first := uc.Plan(req)
	second := uc.Plan(req)
	assert.Equal(t, first, second, "same input yields the same plan")
}

func TestPlanVariesWithInput(t *testing.T) {
	uc := NewUseCase()

	a := uc.Plan(&Request{City: "moscow", Description: "романтика", Places: 3})
	b := uc.Plan(&Request{City: "moscow", Description: "активный отдых", Places: 3})
	assert.NotEqual(t, a.Steps, b.Steps)
}

func TestPlanStepCountAndNames(t *testing.T) {
	uc := NewUseCase()
	resp := uc.Plan(&Request{City: "moscow", Description: "d", Places: 5})

	require.Len(t, resp.Steps, 5)
	for i, step := range resp.Steps {
		assert.Equal(t, fmt.Sprintf("Место %d", i+1), step.Name)
	}
	assert.Equal(t, "moscow", resp.City)
	assert.Equal(t, 5, resp.Places)
}

func TestPlanCityCenters(t *testing.T) {
	uc := NewUseCase()

	moscow := uc.Plan(&Request{City: "moscow", Description: "d", Places: 3})
	for _, step := range moscow.Steps {
		assert.InDelta(t, 55.75, step.Coordinate.Lat, 0.02)
		assert.InDelta(t, 37.62, step.Coordinate.Lon, 0.02)
	}

	other := uc.Plan(&Request{City: "kazan", Description: "d", Places: 3})
	for _, step := range other.Steps {
		assert.InDelta(t, 59.93, step.Coordinate.Lat, 0.02)
		assert.InDelta(t, 30.33, step.Coordinate.Lon, 0.02)
	}
}
