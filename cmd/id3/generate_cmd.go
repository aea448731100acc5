package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditid3/internal/data"
	"creditid3/internal/features"
	"creditid3/pkg/utils"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Gera datasets sintéticos de treino, validação e teste",
		RunE:  runGenerate,
	}
	addDataFlags(cmd)
	cmd.Flags().Int("n", 30000, "Número de registros sintéticos")
	cmd.Flags().Float64("default-rate", 0.08, "Taxa base de inadimplência")
	cmd.Flags().Int64("seed", 0, "Semente aleatória (0 = relógio)")
	cmd.Flags().Float64("train-frac", 0.6, "Fração para treino")
	cmd.Flags().Float64("validation-frac", 0.2, "Fração para validação")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	logger := utils.Logger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	n, _ := cmd.Flags().GetInt("n")
	rate, _ := cmd.Flags().GetFloat64("default-rate")
	seed, _ := cmd.Flags().GetInt64("seed")
	trainFrac, _ := cmd.Flags().GetFloat64("train-frac")
	valFrac, _ := cmd.Flags().GetFloat64("validation-frac")
	if n < 3 || trainFrac <= 0 || valFrac <= 0 || trainFrac+valFrac >= 1 {
		return fmt.Errorf("parâmetros inválidos: n=%d train=%.2f validation=%.2f", n, trainFrac, valFrac)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("Gerando dataset sintético", zap.Int("n", n), zap.Int64("seed", seed))
	all := data.GenerateSyntheticCredit(n, rate, seed)
	nTrain := int(trainFrac * float64(n))
	nVal := int(valFrac * float64(n))
	parts := []struct {
		path string
		ds   data.Dataset
	}{
		{cfg.TrainPath, all[:nTrain]},
		{cfg.ValidationPath, all[nTrain : nTrain+nVal]},
		{cfg.TestPath, all[nTrain+nVal:]},
	}
	header := features.Header()
	if !cfg.Header {
		header = nil
	}
	for _, p := range parts {
		if err := data.WriteCSVFile(p.path, header, p.ds); err != nil {
			logger.Error("Falha ao gravar CSV", zap.String("path", p.path), zap.Error(err))
			return err
		}
		n0, n1 := p.ds.Labels()
		logger.Info("CSV gravado", zap.String("path", p.path), zap.Int("adimplentes", n0), zap.Int("inadimplentes", n1))
	}
	return nil
}
