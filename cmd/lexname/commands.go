// ABOUTME: Cobra command tree for the naming service
// ABOUTME: serve, generate, parse and the admin-gated sequence commands

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nainya/lexname/internal/config"
	"github.com/nainya/lexname/internal/logger"
	"github.com/nainya/lexname/internal/metrics"
	"github.com/nainya/lexname/internal/server"
	"github.com/nainya/lexname/pkg/codes"
	"github.com/nainya/lexname/pkg/document"
	"github.com/nainya/lexname/pkg/filename"
	"github.com/nainya/lexname/pkg/registry"
	"github.com/nainya/lexname/pkg/sequence"
	"github.com/nainya/lexname/pkg/storage"
)

var (
	configPath string
	metaPath   string

	seqCountry  string
	seqCategory string
	seqYear     int
	seqGlobal   bool
	seqValue    uint64
	seqConfirm  bool

	rootCmd = &cobra.Command{
		Use:   "lexname",
		Short: "Deterministic filename generation for legal documents",
		Long: `lexname assembles structured, parseable filenames for legal
documents (cases, acts, rules, notifications) from scraped metadata,
backed by a durable global-ID sequence store.`,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the naming HTTP API and observability endpoints",
		RunE:  runServe,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a filename from a metadata YAML file",
		RunE:  runGenerate,
	}

	parseCmd = &cobra.Command{
		Use:   "parse [filename]",
		Short: "Parse and validate a filename",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	seqCmd = &cobra.Command{
		Use:   "seq",
		Short: "Inspect and repair sequence counters",
	}

	seqPeekCmd = &cobra.Command{
		Use:   "peek",
		Short: "Read a counter without advancing it",
		RunE:  runSeqPeek,
	}

	seqResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Force a counter to a value (administrative repair)",
		RunE:  runSeqReset,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config YAML")

	generateCmd.Flags().StringVar(&metaPath, "meta", "", "Metadata YAML file (required)")
	generateCmd.MarkFlagRequired("meta")

	for _, c := range []*cobra.Command{seqPeekCmd, seqResetCmd} {
		c.Flags().StringVar(&seqCountry, "country", "BD", "Country code")
		c.Flags().StringVar(&seqCategory, "category", "CAS", "Document category (yearly scope)")
		c.Flags().IntVar(&seqYear, "year", 0, "Year (yearly scope)")
		c.Flags().BoolVar(&seqGlobal, "global", false, "Address the global counter")
	}
	seqResetCmd.Flags().Uint64Var(&seqValue, "value", 0, "Value to set")
	seqResetCmd.Flags().BoolVar(&seqConfirm, "yes", false, "Confirm the reset")

	seqCmd.AddCommand(seqPeekCmd, seqResetCmd)
	rootCmd.AddCommand(serveCmd, generateCmd, parseCmd, seqCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func loadTaxonomy(cfg *config.Config) (*codes.Taxonomy, error) {
	if cfg.TaxonomyPath == "" {
		return codes.DefaultTaxonomy(), nil
	}
	return codes.LoadTaxonomy(cfg.TaxonomyPath)
}

func openStore(cfg *config.Config, zl *logger.Logger) (*storage.DB, error) {
	sc := storage.DefaultConfig(cfg.DataDir)
	if zl != nil {
		sc.Logger = zl.GetZerolog()
	}
	return storage.Open(sc)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger.InitGlobalLogger(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.GetGlobalLogger()

	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	db, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.NewMetrics(nil)
	gen := sequence.NewGenerator(m.InstrumentSequenceStore(sequence.NewBadgerStore(db)))

	reg := registry.NewStore(db)
	if count, err := reg.Count(); err == nil {
		m.RegistryRecordsTotal.Set(float64(count))
	}

	assembler := filename.NewAssembler(gen, taxonomy)
	assembler.OnTruncate = m.TruncationsTotal.Inc

	api := server.NewServer(server.Config{
		Port:      cfg.ListenPort,
		Assembler: assembler,
		Registry:  reg,
		Sequences: gen,
		Taxonomy:  taxonomy,
		Metrics:   m,
		Log:       log,
	})
	obs := server.NewObservabilityServer(cfg.MetricsPort, nil, log)

	errCh := make(chan error, 2)
	go func() { errCh <- api.Start() }()
	go func() { errCh <- obs.Start() }()

	log.LogServerStart(cfg.ListenPort, cfg.DataDir)
	log.LogServerReady(cfg.ListenPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := api.Shutdown(ctx); err != nil {
		return err
	}
	return obs.Shutdown(ctx)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}
	var meta document.Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("parse metadata: %w", err)
	}

	db, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	store := sequence.NewBadgerStore(db)
	assembler := filename.NewAssembler(sequence.NewGenerator(store), taxonomy)

	name, comps, err := assembler.Generate(&meta)
	if err != nil {
		return err
	}

	rec := &registry.Record{
		GlobalID:   comps.GlobalID,
		Filename:   name,
		FolderHint: filename.FolderHint(comps),
		Components: comps,
	}
	if err := registry.NewStore(db).Put(rec); err != nil {
		return err
	}

	fmt.Println(name)
	fmt.Printf("folder: %s\n", rec.FolderHint)
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	comps, errs := filename.ValidateAndParse(args[0], taxonomy)
	if comps == nil {
		return fmt.Errorf("no match: %s", errs[0])
	}

	out, err := json.MarshalIndent(comps, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	fmt.Printf("folder: %s\n", filename.FolderHint(comps))

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "warning: %s\n", e)
		}
	}
	return nil
}

func seqKey() (sequence.Key, error) {
	if seqGlobal {
		return sequence.GlobalKey(codes.NormalizeCountry(seqCountry)), nil
	}
	if seqYear == 0 {
		return sequence.Key{}, errors.New("--year is required for yearly counters (or pass --global)")
	}
	return sequence.YearlyKey(
		codes.NormalizeCountry(seqCountry),
		string(codes.NormalizeDocType(seqCategory)),
		seqYear,
	), nil
}

func runSeqPeek(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	key, err := seqKey()
	if err != nil {
		return err
	}

	db, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	store := sequence.NewBadgerStore(db)
	defer store.Close()

	current, err := store.Peek(key)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %d\n", key.Bytes(), current)
	return nil
}

func runSeqReset(cmd *cobra.Command, args []string) error {
	if !seqConfirm {
		return errors.New("counter resets can mint colliding IDs; re-run with --yes to confirm")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	key, err := seqKey()
	if err != nil {
		return err
	}

	db, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	store := sequence.NewBadgerStore(db)
	defer store.Close()

	if err := store.Reset(key, seqValue); err != nil {
		return err
	}
	fmt.Printf("%s = %d\n", key.Bytes(), seqValue)
	return nil
}
