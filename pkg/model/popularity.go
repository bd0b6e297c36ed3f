package model

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultOptimalRatio = 1.618
	DefaultSigma        = 0.618
)

// Popularity scores an offering by its enrolled/capacity ratio with a Gaussian bump centered at OptimalRatio.
// The bump is normalized so that its peak is exactly 1.
type Popularity struct {
	OptimalRatio float64
	Sigma        float64
}

func (popularity Popularity) validate() error {
	if popularity.Sigma <= 0 {
		return fmt.Errorf("%w: popularity sigma must be positive, got %v", ErrConfiguration, popularity.Sigma)
	}
	return nil
}

func (popularity Popularity) Score(ratio float64) float64 {
	normal := distuv.Normal{Mu: popularity.OptimalRatio, Sigma: popularity.Sigma}
	return normal.Prob(ratio) / normal.Prob(popularity.OptimalRatio)
}
