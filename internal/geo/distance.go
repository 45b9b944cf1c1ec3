// Package geo содержит расчет расстояний до кинотеатров.
package geo

import (
	"math"
	"sort"

	"kinobot/internal/model"
)

const earthRadiusM = 6371000.0

// RankedCinema представляет кинотеатр с расстоянием до него
type RankedCinema struct {
	Cinema     model.Cinema
	DistanceKm int
}

// DistanceMeters возвращает расстояние по дуге большого круга в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// RankByDistance возвращает кинотеатры, отсортированные по возрастанию
// расстояния от точки. Километры считаются целочисленным делением
// метров, порядок входа сохраняется при равных расстояниях.
func RankByDistance(lat, lon float64, cinemas []model.Cinema) []RankedCinema {
	ranked := make([]RankedCinema, len(cinemas))
	for i, c := range cinemas {
		meters := DistanceMeters(lat, lon, c.Lat, c.Lon)
		ranked[i] = RankedCinema{
			Cinema:     c,
			DistanceKm: int(meters) / 1000,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
