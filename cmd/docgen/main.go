// Package main is the entry point for the docgen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bingoohuang/docgen"
)

// version is set at build time via ldflags.
var version = "dev"

// nolint gochecknoglobals
var setMeteredKey = docgen.SetMeteredKey

// rootCmd writes the sample documents.
var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Create a sample spreadsheet, word documents and a PDF report",
	Long: `docgen writes planilha.xlsx (sheets Dados, Vendas and Resumo),
documento.docx, documento.doc and relatorio.pdf from built-in sample data,
printing a progress line for each file.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := docgen.ParseCreated(viper.GetString("created"))
		if err != nil {
			return err
		}

		g := &docgen.Generator{
			Dir:     viper.GetString("dir"),
			Created: created,
			Out:     cmd.OutOrStdout(),
		}

		return g.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docgen.yaml or ~/.config/docgen/docgen.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().String("dir", ".", "output directory")
	rootCmd.Flags().String("created", "", "creation time recorded in the documents (default: now)")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("dir", rootCmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("created", rootCmd.Flags().Lookup("created"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docgen"))
		}
	}

	viper.SetEnvPrefix("DOCGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.Infof("using config file %s", viper.ConfigFileUsed())
	}
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)

	// the key comes from DOCGEN_UNIDOC_KEY or the config file, never from a flag
	if err := setMeteredKey(viper.GetString("unidoc-key")); err != nil {
		return fmt.Errorf("apply unidoc-key: %w", err)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
