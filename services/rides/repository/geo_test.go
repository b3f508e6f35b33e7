package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/utils"
)

func TestCoverCells_ContainsCenter(t *testing.T) {
	center := utils.EncodeGeoPoint(utils.GeoPoint{Latitude: 13.082680, Longitude: 80.270721}, geoPrecision)

	cells := coverCells(center, 2)

	assert.Contains(t, cells, center)
	// One ring around the center: 3x3 cells
	assert.Len(t, cells, 9)
	for _, cell := range cells {
		assert.Len(t, cell, geoPrecision)
	}
}

func TestCoverCells_GrowsWithRadius(t *testing.T) {
	center := utils.EncodeGeoPoint(utils.GeoPoint{Latitude: 13.082680, Longitude: 80.270721}, geoPrecision)

	small := coverCells(center, 2)
	large := coverCells(center, 12)

	assert.Greater(t, len(large), len(small))
	for _, cell := range small {
		assert.Contains(t, large, cell)
	}
}

func TestGeoMemberRoundTrip(t *testing.T) {
	rideID := uuid.New()
	member := formatGeoMember(rideID, 13.082680, 80.270721)

	gotID, gotPoint, err := parseGeoMember(member)
	require.NoError(t, err)
	assert.Equal(t, rideID, gotID)
	assert.InDelta(t, 13.082680, gotPoint.Latitude, 0.000001)
	assert.InDelta(t, 80.270721, gotPoint.Longitude, 0.000001)
}

func TestParseGeoMember_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		member string
	}{
		{name: "Missing fields", member: "abc"},
		{name: "Bad ride id", member: "not-a-uuid|13.0|80.2"},
		{name: "Bad latitude", member: uuid.NewString() + "|north|80.2"},
		{name: "Bad longitude", member: uuid.NewString() + "|13.0|east"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseGeoMember(tt.member)
			assert.Error(t, err)
		})
	}
}

func TestCellKeys(t *testing.T) {
	rideID := uuid.New()

	assert.Equal(t, "rides:geo:cell:tf4u2", cellKey("tf4u2"))
	assert.Equal(t, "rides:geo:ride:"+rideID.String(), rideKey(rideID))
}
