package data

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyDataset = errors.New("empty dataset")
)

// FeatureVector is one card holder: a fixed number of numeric features and a
// binary label (1 = defaults on the next bill). It is immutable once built.
type FeatureVector struct {
	features []float64
	label    int
}

func NewFeatureVector(features []float64, label int, dim int) (FeatureVector, error) {
	if len(features) != dim {
		return FeatureVector{}, fmt.Errorf("%w: got %d features, want %d", ErrInvalidInput, len(features), dim)
	}
	if label != 0 && label != 1 {
		return FeatureVector{}, fmt.Errorf("%w: label %d is not binary", ErrInvalidInput, label)
	}
	for i, x := range features {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return FeatureVector{}, fmt.Errorf("%w: feature %d is %v", ErrInvalidInput, i, x)
		}
	}
	f := make([]float64, dim)
	copy(f, features)
	return FeatureVector{features: f, label: label}, nil
}

// MustFeatureVector is like NewFeatureVector with the dimension taken from
// features, but panics if the vector is invalid. It simplifies building
// fixtures and literals that are known to be valid.
func MustFeatureVector(features []float64, label int) FeatureVector {
	v, err := NewFeatureVector(features, label, len(features))
	if err != nil {
		panic(err)
	}
	return v
}

func (v FeatureVector) Feature(i int) float64 { return v.features[i] }
func (v FeatureVector) Dim() int              { return len(v.features) }
func (v FeatureVector) Label() int            { return v.label }

func (v FeatureVector) Features() []float64 {
	out := make([]float64, len(v.features))
	copy(out, v.features)
	return out
}

// Dataset is a collection of vectors sharing one dimension. Splitting a
// dataset always allocates new slices; the receiver is left untouched.
type Dataset []FeatureVector

func (ds Dataset) Dim() int {
	if len(ds) == 0 {
		return 0
	}
	return ds[0].Dim()
}

// Labels counts label-0 and label-1 vectors.
func (ds Dataset) Labels() (n0, n1 int) {
	for _, v := range ds {
		if v.label == 1 {
			n1++
		} else {
			n0++
		}
	}
	return
}

// Pure reports the shared label when every vector carries the same one.
func (ds Dataset) Pure() (int, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	first := ds[0].label
	for _, v := range ds[1:] {
		if v.label != first {
			return 0, false
		}
	}
	return first, true
}

// Split partitions ds by pred into two freshly allocated datasets.
func (ds Dataset) Split(pred func(FeatureVector) bool) (yes, no Dataset) {
	yes = make(Dataset, 0, len(ds))
	no = make(Dataset, 0, len(ds))
	for _, v := range ds {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return yes, no
}
