package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutePointsRoundTrip(t *testing.T) {
	desc := "завтрак"
	route := &Route{}
	require.NoError(t, route.SetPoints([]RoutePoint{
		{Name: "Кафе", Description: &desc, Lat: 55.75, Lon: 37.62},
		{Name: "Парк", Lat: 55.76, Lon: 37.63},
	}))

	points := route.Points()
	require.Len(t, points, 2)
	assert.Equal(t, "Кафе", points[0].Name)
	require.NotNil(t, points[0].Description)
	assert.Equal(t, "завтрак", *points[0].Description)
	assert.Nil(t, points[1].Description)
}

func TestRoutePointsForgiving(t *testing.T) {
	assert.Empty(t, (&Route{}).Points())

	empty := ""
	assert.Empty(t, (&Route{PointsJSON: &empty}).Points())

	garbage := "{not json"
	assert.Empty(t, (&Route{PointsJSON: &garbage}).Points())

	nullJSON := "null"
	assert.NotNil(t, (&Route{PointsJSON: &nullJSON}).Points())
}

func TestRouteOwnership(t *testing.T) {
	owner := 3
	assert.True(t, (&Route{CreatorUserID: &owner}).IsOwnedBy(3))
	assert.False(t, (&Route{CreatorUserID: &owner}).IsOwnedBy(4))
	assert.False(t, (&Route{}).IsOwnedBy(3), "system routes have no owner")
}

func TestRequestTypeValid(t *testing.T) {
	assert.True(t, RequestTypeFriend.Valid())
	assert.True(t, RequestTypeSoulmate.Valid())
	assert.False(t, RequestType("enemy").Valid())
}
