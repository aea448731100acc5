package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditid3/internal/app"
	"creditid3/internal/data"
	"creditid3/internal/models"
	"creditid3/internal/report"
	"creditid3/pkg/utils"
)

func curveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Curva de aprendizagem: erro de treino e teste por tamanho do treino",
		RunE:  runCurve,
	}
	addDataFlags(cmd)
	cmd.Flags().String("tie-break", "first", "Desempate entre regras de mesma entropia: first|last")
	cmd.Flags().Int("points", 8, "Quantidade de pontos na curva")
	cmd.Flags().Int("min", 50, "Tamanho mínimo do treino")
	cmd.Flags().Int64("seed", 42, "Semente para embaralhar o treino antes dos cortes")
	cmd.Flags().String("out-csv", "data/learning_curve.csv", "CSV de saída")
	cmd.Flags().String("out-img", "data/learning_curve.png", "PNG de saída")
	return cmd
}

func runCurve(cmd *cobra.Command, _ []string) error {
	logger := utils.Logger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	tie, err := models.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return err
	}
	points, _ := cmd.Flags().GetInt("points")
	minSize, _ := cmd.Flags().GetInt("min")
	outCsv, _ := cmd.Flags().GetString("out-csv")
	outImg, _ := cmd.Flags().GetString("out-img")
	seed, _ := cmd.Flags().GetInt64("seed")

	splits, err := app.LoadSplits(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	train := data.Shuffle(splits.Train, seed)
	sizes := curveSizes(len(train), points, minSize)
	trainErr := make([]float64, len(sizes))
	testErr := make([]float64, len(sizes))
	for k, s := range sizes {
		sub := train[:s]
		var mdl models.Model = &models.DecisionTree{TieBreak: tie, Logger: logger}
		if err := mdl.Fit(sub); err != nil {
			return fmt.Errorf("falha treino (n=%d): %w", s, err)
		}
		trainErr[k], _ = models.ErrorRate(sub, mdl.Predict(sub))
		testErr[k], _ = models.ErrorRate(splits.Test, mdl.Predict(splits.Test))
		fmt.Fprintf(cmd.OutOrStdout(), "%s | size=%d | train=%.3f | test=%.3f\n", mdl.Name(), s, trainErr[k], testErr[k])
	}

	if err := writeCurveCSV(outCsv, sizes, trainErr, testErr); err != nil {
		logger.Warn("Falha ao salvar CSV da curva", zap.Error(err))
	}
	if err := report.PlotCurve(outImg, sizes, trainErr, testErr); err != nil {
		logger.Warn("Falha ao salvar PNG da curva", zap.Error(err))
	} else {
		logger.Info("Curva de aprendizagem gerada", zap.String("png", outImg), zap.String("csv", outCsv))
	}
	return nil
}

// curveSizes spreads points sizes evenly over [min, total], strictly
// increasing and ending at total.
func curveSizes(total, points, min int) []int {
	if points < 2 {
		points = 2
	}
	if min < 1 {
		min = 1
	}
	if min > total {
		min = total
	}
	step := float64(total-min) / float64(points-1)
	sizes := make([]int, 0, points)
	last := 0
	for i := 0; i < points; i++ {
		s := int(math.Round(float64(min) + float64(i)*step))
		if s <= last {
			continue
		}
		sizes = append(sizes, s)
		last = s
	}
	if last != total {
		sizes = append(sizes, total)
	}
	return sizes
}

func writeCurveCSV(path string, sizes []int, trainErr, testErr []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"size", "train_error", "test_error"}); err != nil {
		return err
	}
	for i := range sizes {
		rec := []string{strconv.Itoa(sizes[i]), fmt.Sprintf("%.6f", trainErr[i]), fmt.Sprintf("%.6f", testErr[i])}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
