package data

import (
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// creditDim is the width of a synthetic credit record: limit, education,
// marriage, age, six repayment statuses, six bill amounts, six payments.
const creditDim = 22

// GenerateSyntheticCredit draws n card holders. The label follows a noisy
// score driven by repayment delays and credit utilization, so a tree has
// real structure to find and real noise to overfit.
func GenerateSyntheticCredit(n int, defaultRate float64, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	out := make(Dataset, 0, n)
	for i := 0; i < n; i++ {
		vec := make([]float64, 0, creditDim)

		limit := float64(10000 * (1 + rng.Intn(50)))
		education := float64(1 + rng.Intn(4))
		marriage := float64(1 + rng.Intn(3))
		age := float64(21 + rng.Intn(55))
		vec = append(vec, limit, education, marriage, age)

		// repayment status: -1 paid duly, 1..8 months of delay
		late := rng.Float64() < 0.3
		delays := 0.0
		for m := 0; m < 6; m++ {
			status := -1.0
			if late && rng.Float64() < 0.6 {
				status = float64(1 + rng.Intn(3))
			} else if rng.Float64() < 0.1 {
				status = 0
			}
			if status > 0 {
				delays += status
			}
			vec = append(vec, status)
		}

		util := rng.Float64()
		if late {
			util = math.Min(1, util+0.3)
		}
		bills := make([]float64, 6)
		for m := range bills {
			bills[m] = math.Round(limit * util * (0.8 + 0.4*rng.Float64()))
			vec = append(vec, bills[m])
		}
		paid := 0.0
		for m := range bills {
			p := math.Round(bills[m] * rng.Float64() * 0.3)
			if !late && rng.Float64() < 0.5 {
				p = bills[m]
			}
			paid += p
			vec = append(vec, p)
		}

		score := defaultRate + 0.04*delays
		if util > 0.8 {
			score += 0.15
		}
		if paid < 0.1*sum(bills) {
			score += 0.1
		}
		label := 0
		if delays >= 8 || rng.Float64() < score {
			label = 1
		}

		v, _ := NewFeatureVector(vec, label, creditDim)
		out = append(out, v)
	}
	return out
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// WriteCSVFile writes ds under header, one vector per row with its label last.
func WriteCSVFile(path string, header []string, ds Dataset) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	for _, v := range ds {
		rec := make([]string, 0, v.Dim()+1)
		for _, x := range v.features {
			rec = append(rec, strconv.FormatFloat(x, 'f', -1, 64))
		}
		rec = append(rec, strconv.Itoa(v.label))
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Shuffle returns a permuted copy of ds.
func Shuffle(ds Dataset, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	out := make(Dataset, len(ds))
	for i, j := range rng.Perm(len(ds)) {
		out[i] = ds[j]
	}
	return out
}
