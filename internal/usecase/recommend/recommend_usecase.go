package recommend

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// UseCase produces placeholder recommendation steps: deterministic
// pseudo-random points around a city center, seeded by the request so the
// same input always yields the same plan.
type UseCase struct{}

func NewUseCase() *UseCase {
	return &UseCase{}
}

// Request represents recommendation payload
type Request struct {
	City        string `json:"city" binding:"required"`
	Description string `json:"description"`
	Places      int    `json:"places" binding:"required,min=1,max=20"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Step struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
	Hint       string     `json:"hint"`
}

type Response struct {
	City        string `json:"city"`
	Description string `json:"description"`
	Places      int    `json:"places"`
	Steps       []Step `json:"steps"`
}

// Plan builds the step list. Moscow gets its own center, every other city
// falls back to the Saint Petersburg one.
func (uc *UseCase) Plan(req *Request) *Response {
	seed := fnv.New64a()
	fmt.Fprintf(seed, "%s%s%d", req.City, req.Description, req.Places)
	rng := rand.New(rand.NewSource(int64(seed.Sum64())))

	baseLat, baseLon := 59.93, 30.33
	if req.City == "moscow" {
		baseLat, baseLon = 55.75, 37.62
	}

	steps := make([]Step, 0, req.Places)
	for i := 0; i < req.Places; i++ {
		steps = append(steps, Step{
			Name: fmt.Sprintf("Место %d", i+1),
			Coordinate: Coordinate{
				Lat: baseLat + (rng.Float64()*2-1)*0.02,
				Lon: baseLon + (rng.Float64()*2-1)*0.02,
			},
			Hint: "",
		})
	}

	return &Response{
		City:        req.City,
		Description: req.Description,
		Places:      req.Places,
		Steps:       steps,
	}
}
