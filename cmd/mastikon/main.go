package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mastikon/internal/cli"
	"mastikon/internal/config"
	"mastikon/internal/llm"
	"mastikon/internal/logger"
	"mastikon/internal/newsroom"
)

var outputFile string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mastikon",
		Short: "Mas Tikon - virtual newsroom assistant for trainee reporters",
		Long: `Mas Tikon turns raw news-gathering notes into an editorial angle,
a field guide, a shot list with interview questions and a TV script.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var templateCmd = &cobra.Command{
		Use:   "template",
		Short: "Print the sample intake as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.WriteIntake(cmd.OutOrStdout(), newsroom.DefaultIntake())
		},
	}
	rootCmd.AddCommand(templateCmd)

	var analyzeCmd = &cobra.Command{
		Use:   "analyze <intake.yaml>",
		Short: "Ask Mas Tikon for editorial direction",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the analysis JSON to this file")
	rootCmd.AddCommand(analyzeCmd)

	var regenerateCmd = &cobra.Command{
		Use:   "regenerate <intake.yaml> <analysis.json>",
		Short: "Rewrite the script with the interview summaries stored in an analysis file",
		Args:  cobra.ExactArgs(2),
		RunE:  runRegenerate,
	}
	regenerateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the updated analysis JSON to this file")
	rootCmd.AddCommand(regenerateCmd)

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func newGenerator() (*newsroom.Generator, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := llm.NewClient(cfg.GeminiAPIKey,
		llm.WithBaseURL(cfg.GeminiBaseURL),
		llm.WithRequestsPerMinute(cfg.GeminiRPM),
	)
	generator := newsroom.NewGenerator(client, cfg.GeminiModel)
	generator.AnalysisTemperature = cfg.AnalysisTemperature
	generator.ScriptTemperature = cfg.ScriptTemperature
	generator.Logger = logger.NewWithWriter(os.Stderr, cfg.LogLevel)
	return generator, nil
}

func explain(err error) error {
	if errors.Is(err, newsroom.ErrMissingCredential) {
		return errors.New(newsroom.MsgMissingCredential)
	}
	return err
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	intake, err := cli.LoadIntake(args[0])
	if err != nil {
		return err
	}

	cli.PrintTitle("Mas Tikon sedang menganalisis")
	cli.PrintInfo("Topik: %s", intake.Topic)
	cli.PrintInfo("Model: %s", generator.Model)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := generator.GenerateEditorialAnalysis(ctx, intake)
	if err != nil {
		return explain(err)
	}

	cli.DisplayAnalysis(&result)

	if outputFile != "" {
		if err := cli.SaveJSON(result, outputFile); err != nil {
			return err
		}
		cli.PrintSuccess("Analisis disimpan ke %s", outputFile)
	}
	return nil
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	intake, err := cli.LoadIntake(args[0])
	if err != nil {
		return err
	}

	var result newsroom.AnalysisResult
	if err := cli.LoadJSON(args[1], &result); err != nil {
		return fmt.Errorf("failed to load analysis file: %w", err)
	}

	if !newsroom.CanRegenerate(&result) {
		cli.PrintWarning("Belum ada rangkuman wawancara (answerSummary) di %s, naskah tidak diubah.", args[1])
		return nil
	}

	cli.PrintTitle("Mas Tikon sedang merevisi naskah dengan SOT")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	script, err := generator.RegenerateScriptWithSOT(ctx, result.TvScript, result.ShotList.Interviews, intake)
	if err != nil {
		return explain(err)
	}
	result.TvScript = script

	cli.DisplayScript(script)

	if outputFile != "" {
		if err := cli.SaveJSON(result, outputFile); err != nil {
			return err
		}
		cli.PrintSuccess("Naskah baru disimpan ke %s", outputFile)
	}
	return nil
}
