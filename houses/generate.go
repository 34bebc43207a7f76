package houses

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/furui/fastnoiselite-go"
	"github.com/quasilyte/gmath"
)

// GenerateOptions controls the shape of a generated map.
type GenerateOptions struct {
	// Count is the number of houses to place.
	Count int

	// Width and Height of the area houses are placed in.
	Width, Height float64

	// Neighbours is the number of nearest houses each house gets a road to.
	Neighbours int

	// Speed converts road length to road time.
	Speed float64
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Count:      12,
		Width:      1200,
		Height:     800,
		Neighbours: 2,
		Speed:      25,
	}
}

// Generate places houses where value noise is dense and connects them with
// roads. The result is deterministic for a seed, always valid and connected.
func Generate(seed uint64, opts GenerateOptions) *Map {
	rng := RandWithSeed(seed)

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 0.004

	// keep some space between houses, shrinking it if the area is crowded
	spacing := min(HouseSize*1.5, math.Sqrt(opts.Width*opts.Height/float64(max(1, opts.Count)))*0.5)

	var houses []House

	// give up on density after a while and accept any free spot
	for attempt := 0; len(houses) < opts.Count; attempt++ {
		pos := gmath.Vec{
			X: randf(rng, 0, max(0, opts.Width-HouseSize)),
			Y: randf(rng, 0, max(0, opts.Height-HouseSize)),
		}

		density := (densityAt(noise, pos) + 1) / 2
		if attempt < opts.Count*50 && !prob(rng, density) {
			continue
		}

		if attempt < opts.Count*100 && tooClose(houses, pos, spacing) {
			continue
		}

		houses = append(houses, House{X: math.Round(pos.X), Y: math.Round(pos.Y)})
	}

	return &Map{
		Houses: houses,
		Roads:  connect(houses, opts.Neighbours, opts.Speed),
	}
}

func densityAt(noise *fastnoiselite.FastNoiseLite, point gmath.Vec) float64 {
	value := noise.GetNoise2D(fastnoiselite.FNLfloat(point.X), fastnoiselite.FNLfloat(point.Y))
	return float64(value)
}

func tooClose(houses []House, pos gmath.Vec, spacing float64) bool {
	for _, house := range houses {
		if house.Position().DistanceTo(pos) < spacing {
			return true
		}
	}

	return false
}

// connect links every house to its nearest neighbours and to the closest
// house placed before it, which keeps the map connected.
func connect(houses []House, neighbours int, speed float64) []Road {
	var seen Set[[2]int]
	var roads []Road

	addRoad := func(a, b int) {
		key := [2]int{min(a, b), max(a, b)}
		if a == b || seen.Has(key) {
			return
		}

		seen.Insert(key)

		distance := houses[a].Center().DistanceTo(houses[b].Center())
		roads = append(roads, Road{From: a, To: b, Time: timeOf(distance, speed)})
	}

	for idx := range houses {
		nearest := nearestTo(houses, idx)

		if idx > 0 {
			// nearest house among the ones placed earlier
			earlier := slices.IndexFunc(nearest, func(other int) bool { return other < idx })
			addRoad(nearest[earlier], idx)
		}

		for _, other := range nearest[:min(neighbours, len(nearest))] {
			addRoad(idx, other)
		}
	}

	return roads
}

// nearestTo returns all other houses, ordered by distance to house idx.
func nearestTo(houses []House, idx int) []int {
	others := make([]int, 0, len(houses)-1)
	for other := range houses {
		if other != idx {
			others = append(others, other)
		}
	}

	center := houses[idx].Center()

	slices.SortStableFunc(others, func(a, b int) int {
		return cmp.Compare(
			center.DistanceSquaredTo(houses[a].Center()),
			center.DistanceSquaredTo(houses[b].Center()),
		)
	})

	return others
}

func timeOf(distance, speed float64) float64 {
	if speed <= 0 {
		return math.Ceil(distance)
	}

	return math.Ceil(distance / speed)
}

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf[T ~float64 | ~float32](rng *rand.Rand, min, max T) T {
	return T(rng.Float64())*(max-min) + min
}

func prob(rng *rand.Rand, prop float64) bool {
	return rng.Float64() < prop
}
