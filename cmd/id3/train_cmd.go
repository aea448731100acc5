package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditid3/internal/app"
	"creditid3/internal/config"
	"creditid3/internal/features"
	"creditid3/internal/models"
	"creditid3/internal/report"
	"creditid3/pkg/utils"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Treina, avalia e poda a árvore",
		RunE:  runTrain,
	}
	addDataFlags(cmd)
	cmd.Flags().Int("max-prunes", models.DefaultMaxPrunes, "Máximo de podas aceitas (0 = até não melhorar mais)")
	cmd.Flags().String("tie-break", "first", "Desempate entre regras de mesma entropia: first|last")
	cmd.Flags().String("plot", "", "PNG com o erro de validação/teste a cada poda")
	cmd.Flags().Bool("print-tree", false, "Imprimir a árvore podada")
	return cmd
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("train", "", "CSV de treino")
	cmd.Flags().String("validation", "", "CSV de validação")
	cmd.Flags().String("test", "", "CSV de teste")
	cmd.Flags().Bool("no-header", false, "CSVs sem linha de cabeçalho")
}

// loadConfig layers the command's flags over config.Load.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	str := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	str("train", &cfg.TrainPath)
	str("validation", &cfg.ValidationPath)
	str("test", &cfg.TestPath)
	str("tie-break", &cfg.TieBreak)
	str("plot", &cfg.PlotPath)
	if cmd.Flags().Changed("no-header") {
		noHeader, _ := cmd.Flags().GetBool("no-header")
		cfg.Header = !noHeader
	}
	if cmd.Flags().Changed("max-prunes") {
		cfg.MaxPrunes, _ = cmd.Flags().GetInt("max-prunes")
	}
	return cfg, cfg.Validate()
}

func runTrain(cmd *cobra.Command, _ []string) error {
	logger := utils.Logger()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	splits, err := app.LoadSplits(cmd.Context(), cfg)
	if err != nil {
		logger.Error("Falha ao carregar datasets", zap.Error(err))
		return err
	}
	logger.Info("Datasets carregados",
		zap.Int("treino", len(splits.Train)),
		zap.Int("validacao", len(splits.Validation)),
		zap.Int("teste", len(splits.Test)),
	)

	out := cmd.OutOrStdout()
	reporter := models.ReporterFunc(func(r models.PruneReport) {
		_ = report.WritePrunes(out, []models.PruneReport{r}, features.Name)
	})
	res, err := app.Train(splits, cfg, logger, reporter)
	if err != nil {
		logger.Error("Falha ao treinar", zap.Error(err))
		return err
	}

	if err := report.WriteMetrics(out, "Árvore completa", res.Before); err != nil {
		return err
	}
	if err := report.WriteMetrics(out, "Árvore podada", res.After); err != nil {
		return err
	}
	if len(res.Prunes) == 0 {
		_ = report.WritePrunes(out, nil, nil)
	}
	if ok, _ := cmd.Flags().GetBool("print-tree"); ok {
		if err := report.WriteTree(out, res.Tree.Root, features.Name); err != nil {
			return err
		}
	}
	if cfg.PlotPath != "" {
		if err := report.PlotPruning(cfg.PlotPath, res.Before, res.Prunes); err != nil {
			logger.Warn("Falha ao salvar PNG da poda", zap.Error(err))
		} else {
			logger.Info("Gráfico da poda salvo", zap.String("png", cfg.PlotPath))
		}
	}
	return nil
}
