package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/constants"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/database"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/internal/utils"
)

// geoPrecision buckets ride sources into geohash cells of roughly
// geoCellWidthKm a side. Searches read the center cell plus enough
// neighbor rings to cover the radius, then filter by exact distance.
const (
	geoPrecision   = 5
	geoCellWidthKm = 4.9
)

// GeoRepo implements rides.GeoIndex on Redis sets keyed by the geohash
// cell of each ride's source point
type GeoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a new ride geo index repository
func NewGeoRepository(redisClient *database.RedisClient) *GeoRepo {
	return &GeoRepo{redisClient: redisClient}
}

// AddRide indexes a ride's source point under its geohash cell
func (g *GeoRepo) AddRide(ctx context.Context, rideID uuid.UUID, lat, lng float64) error {
	hash := utils.EncodeGeoPoint(utils.GeoPoint{Latitude: lat, Longitude: lng}, geoPrecision)
	member := formatGeoMember(rideID, lat, lng)

	if err := g.redisClient.SAdd(ctx, cellKey(hash), member); err != nil {
		return fmt.Errorf("failed to index ride location: %w", err)
	}
	// The reverse entry lets RemoveRide find the cell without the coords
	if err := g.redisClient.Set(ctx, rideKey(rideID), hash+"|"+member, 0); err != nil {
		return fmt.Errorf("failed to store ride location entry: %w", err)
	}
	return nil
}

// RemoveRide drops a ride from the geo index. Removing an unindexed ride
// is a no-op.
func (g *GeoRepo) RemoveRide(ctx context.Context, rideID uuid.UUID) error {
	entry, err := g.redisClient.Get(ctx, rideKey(rideID))
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load ride location entry: %w", err)
	}

	hash, member, found := strings.Cut(entry, "|")
	if !found {
		return fmt.Errorf("malformed ride location entry %q", entry)
	}
	if err := g.redisClient.SRem(ctx, cellKey(hash), member); err != nil {
		return fmt.Errorf("failed to remove ride from geo index: %w", err)
	}
	if err := g.redisClient.Delete(ctx, rideKey(rideID)); err != nil {
		return fmt.Errorf("failed to remove ride location entry: %w", err)
	}
	return nil
}

// Nearby returns rides whose source lies within radiusKm of the point,
// closest first
func (g *GeoRepo) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyRide, error) {
	point := utils.GeoPoint{Latitude: lat, Longitude: lng}
	center := utils.EncodeGeoPoint(point, geoPrecision)

	nearby := []models.NearbyRide{}
	for _, cell := range coverCells(center, radiusKm) {
		members, err := g.redisClient.SMembers(ctx, cellKey(cell))
		if err != nil {
			return nil, fmt.Errorf("failed to read geo cell: %w", err)
		}
		for _, member := range members {
			rideID, source, err := parseGeoMember(member)
			if err != nil {
				// Skip malformed members rather than failing the search
				continue
			}
			dist := utils.CalculateDistance(point, source)
			if dist <= radiusKm {
				nearby = append(nearby, models.NearbyRide{RideID: rideID, Distance: dist})
			}
		}
	}

	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })
	return nearby, nil
}

// coverCells returns the geohash cells whose union contains every point
// within radiusKm of the center cell, expanding neighbor rings until the
// radius is covered
func coverCells(center string, radiusKm float64) []string {
	rings := int(radiusKm/geoCellWidthKm) + 1

	seen := map[string]bool{center: true}
	frontier := []string{center}
	for i := 0; i < rings; i++ {
		var next []string
		for _, cell := range frontier {
			for _, neighbor := range utils.GetNeighbors(cell) {
				if !seen[neighbor] {
					seen[neighbor] = true
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}

	cells := make([]string, 0, len(seen))
	for cell := range seen {
		cells = append(cells, cell)
	}
	sort.Strings(cells)
	return cells
}

func formatGeoMember(rideID uuid.UUID, lat, lng float64) string {
	return fmt.Sprintf("%s|%.6f|%.6f", rideID, lat, lng)
}

func parseGeoMember(member string) (uuid.UUID, utils.GeoPoint, error) {
	parts := strings.Split(member, "|")
	if len(parts) != 3 {
		return uuid.Nil, utils.GeoPoint{}, fmt.Errorf("malformed geo member %q", member)
	}
	rideID, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, utils.GeoPoint{}, err
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return uuid.Nil, utils.GeoPoint{}, err
	}
	lng, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return uuid.Nil, utils.GeoPoint{}, err
	}
	return rideID, utils.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

func cellKey(hash string) string {
	return fmt.Sprintf(constants.KeyRideGeoCell, hash)
}

func rideKey(rideID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyRideGeoRide, rideID)
}
