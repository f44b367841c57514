package service

import (
	"math"
	"math/rand"
)

const (
	kmeansMaxIterations = 25
	kmeansConvergence   = 1.0
)

// point3 is a point in 3D RGB space.
type point3 struct {
	R, G, B float64
}

func (p point3) distance(other point3) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// kmeansCluster partitions points into exactly k clusters and returns the
// centroids with their population counts. All randomness comes from rng, so
// the same seed and input always produce the same clustering.
func kmeansCluster(points []point3, k int, rng *rand.Rand) ([]point3, []int) {
	centroids := initCentroidsPlusPlus(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recomputeCentroids(points, assignments, k, rng)
		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next
		if movement/float64(k) < kmeansConvergence {
			break
		}
	}

	counts := make([]int, k)
	for _, a := range assignments {
		counts[a]++
	}
	return centroids, counts
}

// initCentroidsPlusPlus seeds centroids with the k-means++ scheme: the first
// is drawn uniformly, the rest proportionally to squared distance from the
// nearest existing centroid.
func initCentroidsPlusPlus(points []point3, k int, rng *rand.Rand) []point3 {
	centroids := make([]point3, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := p.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Every remaining point coincides with a centroid. Duplicate the
			// last one slightly perturbed so exactly k centroids come back.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(p point3, centroids []point3) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := p.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recomputeCentroids(points []point3, assignments []int, k int, rng *rand.Rand) []point3 {
	sums := make([]point3, k)
	counts := make([]int, k)
	for i, p := range points {
		c := assignments[i]
		sums[c].R += p.R
		sums[c].G += p.G
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]point3, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}
	return centroids
}
