package features

import (
	"fmt"
	"strconv"
	"strings"

	"creditid3/internal/data"
)

// Dim is the number of features per card holder.
const Dim = 22

// Names lists the credit-default columns in record order, label excluded.
var Names = buildNames()

func buildNames() []string {
	names := []string{"LIMIT_BAL", "EDUCATION", "MARRIAGE", "AGE"}
	for _, prefix := range []string{"PAY_", "BILL_AMT", "PAY_AMT"} {
		for m := 1; m <= 6; m++ {
			names = append(names, prefix+strconv.Itoa(m))
		}
	}
	return names
}

// Header is the CSV header written by the generator and accepted by the loader.
func Header() []string {
	h := make([]string, 0, Dim+1)
	h = append(h, Names...)
	return append(h, "DEFAULT")
}

// Name returns the column name for feature i, or x_i when i is outside the
// credit-default schema.
func Name(i int) string {
	if i >= 0 && i < len(Names) {
		return Names[i]
	}
	return "x_" + strconv.Itoa(i)
}

// ParseRecord turns one raw record into a vector: dim numeric cells followed by
// the 0/1 label.
func ParseRecord(record []string, dim int) (data.FeatureVector, error) {
	if len(record) != dim+1 {
		return data.FeatureVector{}, fmt.Errorf("%w: record has %d columns, want %d", data.ErrInvalidInput, len(record), dim+1)
	}
	vec := make([]float64, dim)
	for i := 0; i < dim; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return data.FeatureVector{}, fmt.Errorf("%w: column %s: %v", data.ErrInvalidInput, Name(i), err)
		}
		vec[i] = f
	}
	label, err := strconv.Atoi(strings.TrimSpace(record[dim]))
	if err != nil {
		return data.FeatureVector{}, fmt.Errorf("%w: label: %v", data.ErrInvalidInput, err)
	}
	return data.NewFeatureVector(vec, label, dim)
}
