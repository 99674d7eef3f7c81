// SPDX-License-Identifier: MIT

package bootstrap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CI computes a two-sided confidence interval from a bootstrap Result.
//
// Description:
//
//	Options are validated first (type, alpha or level, variance); nothing is
//	computed when validation fails. The replicate set is copied and sorted
//	exactly once per call, and every method reads quantiles from that one
//	snapshot with gonum's linear interpolation between order statistics.
//	The Result is never modified, so repeated calls with identical options
//	return identical intervals.
//
// Methods (t = Original, T* = replicates, Q = empirical quantile,
// z = standard normal quantile, Φ = standard normal CDF):
//
//	percentile  [Q(T*, α/2), Q(T*, 1−α/2)]
//	basic       [2t − Q(T*, 1−α/2), 2t − Q(T*, α/2)]
//	normal      t − bias ∓ z(1−α/2)·stdev
//	studentized Z*ᵢ = (T*ᵢ − t)/√vᵢ; [t − Q(Z*, 1−α/2)·stdev, t − Q(Z*, α/2)·stdev]
//	bca         jackknife acceleration a, bias correction z0 = z(#{T* < t}/r),
//	            pₗ = Φ(z0 + (z0+z(α/2))/(1 − a(z0+z(α/2)))), pᵤ likewise,
//	            [Q(T*, pₗ), Q(T*, pᵤ)]
//
// Errors:
//   - ErrInvalidInput if res is nil.
//   - ErrValidation for bad options.
//   - ErrComputation (ErrDegenerateStatistic, ErrDegenerateBias) when BCA is undefined.
//   - Errors from the stored statistic during the BCA jackknife, unmodified.
func CI(res *Result, opts ...CIOption) (Interval, error) {
	if res == nil {
		return Interval{}, bootErrorf(opCI, ErrInvalidInput, "nil result")
	}
	p, err := resolveCI(opCI, opts, res.R())
	if err != nil {
		return Interval{}, err
	}
	return newSnapshot(res).interval(p)
}

// CIAll applies CI element-wise. All options are validated against every
// Result before any interval is computed; the first failure aborts the
// whole call.
func CIAll(rs []*Result, opts ...CIOption) ([]Interval, error) {
	if len(rs) == 0 {
		return nil, bootErrorf(opCIAll, ErrInvalidInput, "no results")
	}
	params := make([]ciParams, len(rs))
	for i, res := range rs {
		if res == nil {
			return nil, bootErrorf(opCIAll, ErrInvalidInput, "nil result at %d", i)
		}
		p, err := resolveCI(opCIAll, opts, res.R())
		if err != nil {
			return nil, err
		}
		params[i] = p
	}

	out := make([]Interval, len(rs))
	for i, res := range rs {
		iv, err := newSnapshot(res).interval(params[i])
		if err != nil {
			return nil, err
		}
		out[i] = iv
	}
	return out, nil
}

// Intervals computes several interval methods from one snapshot; the BCA
// jackknife runs at most once. The type set by opts is ignored. All
// methods are validated before any is computed.
func Intervals(res *Result, types []Type, opts ...CIOption) (map[Type]Interval, error) {
	if res == nil {
		return nil, bootErrorf(opIntervals, ErrInvalidInput, "nil result")
	}
	params := make([]ciParams, len(types))
	for i, t := range types {
		withType := append(opts[:len(opts):len(opts)], WithType(t))
		p, err := resolveCI(opIntervals, withType, res.R())
		if err != nil {
			return nil, err
		}
		params[i] = p
	}

	snap := newSnapshot(res)
	out := make(map[Type]Interval, len(types))
	for _, p := range params {
		iv, err := snap.interval(p)
		if err != nil {
			return nil, err
		}
		out[p.typ] = iv
	}
	return out, nil
}

// estimator computes one interval method from a snapshot.
type estimator func(s *snapshot, p ciParams) (Interval, error)

var estimators = [numTypes]estimator{
	Basic:       basicInterval,
	Percentile:  percentileInterval,
	Normal:      normalInterval,
	Studentized: studentizedInterval,
	BCA:         bcaInterval,
}

// snapshot is the per-call view of a Result: a sorted copy of the
// replicates plus the summary values. accel caches the jackknife
// acceleration across methods within one call.
type snapshot struct {
	res    *Result
	tHat   float64
	bias   float64
	stdev  float64
	sorted []float64

	accel    float64
	accelErr error
	accelSet bool
}

func newSnapshot(res *Result) *snapshot {
	sorted := res.Replicates()
	sort.Float64s(sorted)
	return &snapshot{
		res:    res,
		tHat:   res.original,
		bias:   res.bias,
		stdev:  res.stdev,
		sorted: sorted,
	}
}

func (s *snapshot) interval(p ciParams) (Interval, error) {
	return estimators[p.typ](s, p)
}

// quantile is the empirical quantile of ascending x at probability p,
// interpolating linearly between order statistics.
func quantile(x []float64, p float64) float64 {
	return stat.Quantile(p, stat.LinInterp, x, nil)
}

func percentileInterval(s *snapshot, p ciParams) (Interval, error) {
	return Interval{
		Low:  quantile(s.sorted, p.alpha/2),
		High: quantile(s.sorted, 1-p.alpha/2),
	}, nil
}

func basicInterval(s *snapshot, p ciParams) (Interval, error) {
	return Interval{
		Low:  2*s.tHat - quantile(s.sorted, 1-p.alpha/2),
		High: 2*s.tHat - quantile(s.sorted, p.alpha/2),
	}, nil
}

func normalInterval(s *snapshot, p ciParams) (Interval, error) {
	z := distuv.UnitNormal.Quantile(1 - p.alpha/2)
	center := s.tHat - s.bias
	return Interval{
		Low:  center - z*s.stdev,
		High: center + z*s.stdev,
	}, nil
}

// studentizedInterval pairs replicate i with variance i, so it reads the
// replicates in generation order; only the derived Z* values are sorted.
func studentizedInterval(s *snapshot, p ciParams) (Interval, error) {
	raw := s.res.replicates
	zs := make([]float64, len(raw))
	for i, t := range raw {
		zs[i] = (t - s.tHat) / math.Sqrt(p.variance[i])
	}
	sort.Float64s(zs)
	return Interval{
		Low:  s.tHat - quantile(zs, 1-p.alpha/2)*s.stdev,
		High: s.tHat - quantile(zs, p.alpha/2)*s.stdev,
	}, nil
}

func bcaInterval(s *snapshot, p ciParams) (Interval, error) {
	accel, err := s.acceleration()
	if err != nil {
		return Interval{}, err
	}
	z0, err := s.biasCorrection()
	if err != nil {
		return Interval{}, err
	}

	pLow := bcaAdjust(z0, distuv.UnitNormal.Quantile(p.alpha/2), accel)
	pHigh := bcaAdjust(z0, distuv.UnitNormal.Quantile(1-p.alpha/2), accel)
	if math.IsNaN(pLow) || math.IsNaN(pHigh) {
		return Interval{}, bootErrorf(opCI, ErrComputation, "bca tail probabilities undefined (z0=%v, accel=%v)", z0, accel)
	}

	return Interval{
		Low:  quantile(s.sorted, pLow),
		High: quantile(s.sorted, pHigh),
	}, nil
}

// bcaAdjust maps a normal quantile z to the BCA-adjusted tail probability.
func bcaAdjust(z0, z, accel float64) float64 {
	w := z0 + z
	return distuv.UnitNormal.CDF(z0 + w/(1-accel*w))
}

// biasCorrection returns z0 = Φ⁻¹(#{T*ᵢ < t} / r).
func (s *snapshot) biasCorrection() (float64, error) {
	below := sort.SearchFloat64s(s.sorted, s.tHat) // count of replicates < tHat
	r := len(s.sorted)
	if below == 0 || below == r {
		return 0, bootErrorf(opCI, ErrDegenerateBias, "%d of %d replicates below the estimate", below, r)
	}
	return distuv.UnitNormal.Quantile(float64(below) / float64(r)), nil
}

// acceleration returns the jackknife acceleration, computing it at most
// once per snapshot.
func (s *snapshot) acceleration() (float64, error) {
	if !s.accelSet {
		s.accel, s.accelErr = acceleration(s.res)
		s.accelSet = true
	}
	return s.accel, s.accelErr
}
