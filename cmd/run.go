package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/aggregator"
	"github.com/cliffordnwanna/job-hunter/internal/ai"
	"github.com/cliffordnwanna/job-hunter/internal/ai/gemini"
	"github.com/cliffordnwanna/job-hunter/internal/filtering"
	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	jhlogger "github.com/cliffordnwanna/job-hunter/internal/logger"
	"github.com/cliffordnwanna/job-hunter/internal/materials"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
	"github.com/cliffordnwanna/job-hunter/internal/scoring"
	"github.com/cliffordnwanna/job-hunter/internal/secrets"
	"github.com/cliffordnwanna/job-hunter/internal/sources"
)

const (
	PromptExportCSV      = "Export results to CSV"
	PromptMaterials      = "Generate application materials"
	PromptReportBySource = "Report by source"
	PromptListingsToFile = "Dump listings to file"
	PromptExit           = "Exit"
	PromptBack           = "back"

	defaultCSVFile = "job_results.csv"
	maxTableRows   = 25
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExportCSV, PromptMaterials, PromptReportBySource, PromptListingsToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the job-hunter main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume-file", "r", "", "plain-text resume file to match against")
	runCmd.Flags().StringSliceP("keywords", "k", nil, "search keywords, may be given multiple times")
	runCmd.Flags().StringP("csv-file", "o", defaultCSVFile, "path for the CSV export")
	runCmd.Flags().BoolP("auto-approve", "y", false, "export the results to CSV and exit without prompting")

	viper.BindPFlag("resume.file", runCmd.Flags().Lookup("resume-file"))
	viper.BindPFlag("search.keywords", runCmd.Flags().Lookup("keywords"))
	viper.BindPFlag("csv-file", runCmd.Flags().Lookup("csv-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := jhlogger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the job-hunter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config.Resume.File == "" {
		logger.Fatal("resume file is required",
			zap.String("hint", "pass --resume-file or set resume.file in the configuration file"),
		)
	}

	prof, err := profile.FromFile(config.Resume.File, profile.DefaultTaxonomy())
	if err != nil {
		logger.Fatal("reading the resume", zap.Error(err))
	}

	logger.Info("extracted profile",
		zap.Int("skills", prof.SkillCount()),
		zap.Int("years_experience", prof.YearsExperience),
		zap.Bool("email_found", prof.Email != profile.NotFound),
	)

	listings, counts := searchListings(ctx, config, logger)
	if listings.Len() == 0 {
		logger.Info("exiting",
			zap.String("reason", "no listings matched the search keywords"),
			zap.Any("per_source", counts),
			zap.String("hint", "try fewer or broader keywords"),
		)
		return
	}

	matcher := scoring.NewMatcher(prof, logger)
	matcher.ScoreAll(listings, nil)

	listings = filtering.Run(
		filtering.Deps{Logger: logger, Now: time.Now()},
		filtering.Steps(preferences(config), relaxation(config)),
		listings,
	)
	if listings.Len() == 0 {
		logger.Info("exiting",
			zap.String("reason", "no listings left after filters"),
			zap.String("hint", "loosen the exclude-title-keywords list"),
		)
		return
	}

	printTable(listings)

	action := PromptExportCSV
	autoApprove := cmd.Flag("auto-approve").Value.String() == "true"
	for {
		var err error
		if !autoApprove {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(ctx, action, logger, config, prof, listings); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if autoApprove {
			return
		}
	}
}

func handleAction(ctx context.Context, action string, logger *zap.Logger, config *Config, prof profile.Profile, listings *jobs.Listings) error {
	switch action {
	case PromptExportCSV:
		return exportCSV(logger, listings)
	case PromptMaterials:
		return generateMaterials(ctx, logger, config, prof, listings)
	case PromptReportBySource:
		pretty, _ := json.MarshalIndent(listings.ReportBySource(), "", "  ")
		logger.Info(string(pretty), zap.Int("listings count", listings.Len()))
		return nil
	case PromptListingsToFile:
		filename, err := listings.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// searchListings aggregates every source with the configured limits.
func searchListings(ctx context.Context, config *Config, logger *zap.Logger) (*jobs.Listings, map[string]int) {
	timeout := sources.DefaultTimeout
	if config.Sources.TimeoutSeconds > 0 {
		timeout = time.Duration(config.Sources.TimeoutSeconds) * time.Second
	}

	client := sources.NewClient(logger, timeout)
	agg := aggregator.New(sources.All(client), logger, aggregator.Config{
		Timeout:        timeout,
		Concurrency:    config.Sources.Concurrency,
		PerSourceLimit: config.Sources.PerSourceLimit,
	})

	progress := func(fraction float64, message string) {
		logger.Debug("search progress",
			zap.Int("percent", int(fraction*100)),
			zap.String("message", message),
		)
	}

	logger.Info("starting the search", zap.Strings("keywords", config.Search.Keywords))
	return agg.Aggregate(ctx, config.Search.Keywords, progress)
}

func preferences(config *Config) filtering.Preferences {
	return filtering.Preferences{
		SearchKeywords:       config.Search.Keywords,
		ExcludeTitleKeywords: config.Search.ExcludeTitleKeywords,
		MinScore:             config.Search.MinScore,
		MaxAgeDays:           config.Search.MaxAgeDays,
		RemoteScope:          config.Search.RemoteScope,
	}
}

func relaxation(config *Config) filtering.Relaxation {
	return filtering.Relaxation{
		RecencyFallbackDays: config.Relaxation.RecencyFallbackDays,
		RecencyMinResults:   config.Relaxation.RecencyMinResults,
		MinResults:          config.Relaxation.MinResults,
		ScoreStep:           config.Relaxation.ScoreStep,
		ScoreStepFloor:      config.Relaxation.ScoreStepFloor,
		ScoreFloor:          config.Relaxation.ScoreFloor,
		TopN:                config.Relaxation.TopN,
	}
}

func printTable(listings *jobs.Listings) {
	fmt.Printf("\nFound %d matching jobs:\n\n", listings.Len())
	fmt.Printf("%-5s %-7s %-40s %-25s %-20s %s\n", "#", "Score", "Title", "Company", "Location", "Source")

	for i, l := range listings.Items {
		if i == maxTableRows {
			fmt.Printf("... and %d more (use the CSV export for the full list)\n", listings.Len()-maxTableRows)
			break
		}
		fmt.Printf("%-5d %-7.1f %-40s %-25s %-20s %s\n",
			i+1, l.MatchScore, clip(l.Title, 40), clip(l.Company, 25), clip(l.Location, 20), l.Source)
	}
	fmt.Println()
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}

func exportCSV(logger *zap.Logger, listings *jobs.Listings) error {
	path := viper.GetString("csv-file")
	if path == "" {
		path = defaultCSVFile
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	if err := listings.WriteCSV(file); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	logger.Info("exported results", zap.String("filename", path), zap.Int("count", listings.Len()))
	return nil
}

// generateMaterials lets the user pick a listing and drafts an application
// package for it, optionally polished by the AI writer.
func generateMaterials(ctx context.Context, logger *zap.Logger, config *Config, prof profile.Profile, listings *jobs.Listings) error {
	items := make([]string, 0, listings.Len()+1)
	for i, l := range listings.Items {
		items = append(items, fmt.Sprintf("%d. %s / %s / %.1f", i+1, l.Title, l.Company, l.MatchScore))
	}

	listingPrompt := promptui.Select{
		Label: "Choose a listing and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := listingPrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}
	chosen := listings.Items[idx]

	generator := materials.NewGenerator(config.Materials.ApplicantName, logger)
	pkg, err := generator.Generate(prof, chosen)
	if err != nil {
		return fmt.Errorf("generating materials: %w", err)
	}

	if config.AI != nil && config.AI.Enabled {
		writer, err := newAIWriter(ctx, config.AI, logger)
		if err != nil {
			logger.Warn("skipping AI polish", zap.Error(err))
		} else if draft, err := writer.Compose(ctx, prof, chosen, pkg.CoverLetter); err != nil {
			logger.Warn("AI polish failed, keeping the template letter", zap.Error(err))
		} else {
			pkg.CoverLetter = draft.CoverLetter
		}
	}

	out := pkg.Render()
	fmt.Println(out)

	filename, err := saveMaterials(chosen, out)
	if err != nil {
		return err
	}
	logger.Info("saved application materials", zap.String("filename", filename))
	return nil
}

func saveMaterials(l *jobs.Listing, content string) (string, error) {
	file, err := os.CreateTemp("", "materials_*.txt")
	if err != nil {
		return "", fmt.Errorf("creating materials file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString("Job: " + l.Title + " at " + l.Company + "\nURL: " + l.URL + "\n\n" + content); err != nil {
		return "", fmt.Errorf("writing materials file: %w", err)
	}
	return file.Name(), nil
}

func newAIWriter(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Writer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	writerLogger := jhlogger.WithAIFields(logger, "gemini", generator.Model())

	return gemini.NewWriter(generator, writerLogger, cfg.Gemini.MaxLogLength), nil
}
