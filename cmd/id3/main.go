package main

import (
	"os"

	"github.com/spf13/cobra"

	"creditid3/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "id3",
		Short:        "Árvore de decisão ID3 para inadimplência de cartão de crédito",
		Long:         "Treina uma árvore ID3 por entropia, avalia nos conjuntos de validação e teste e poda por erro reduzido.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Arquivo YAML de configuração")
	root.AddCommand(trainCmd(), generateCmd(), curveCmd())
	return root
}
