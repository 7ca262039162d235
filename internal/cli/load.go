package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"obrasgov/internal/config"
	"obrasgov/internal/contract"
	"obrasgov/internal/domain/sqlite"
	"obrasgov/internal/domain/sqlite/repository"
	"obrasgov/internal/service"
	"obrasgov/internal/utils/validators"
)

var loadCmd = &cobra.Command{
	Use:   "load [data_dir]",
	Short: "Load every dataset into the database",
	Long: `Load reads one JSON file per destination table from the data
directory and writes the whole batch in dependency order. Missing files
count as empty datasets. The run assumes exclusive write access to the
database file for its duration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().String("db", "", "database file path (overrides config)")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	// .env is optional; real deployments may rely on the yaml alone.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = config.Default()
	} else if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if len(args) == 1 {
		cfg.DataDir = args[0]
	}
	if dbFlag, _ := cmd.Flags().GetString("db"); dbFlag != "" {
		cfg.DatabasePath = dbFlag
	}

	batch, err := readBatch(cfg.DataDir)
	if err != nil {
		return err
	}

	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	validate := validator.New()
	validators.Register(validate)

	loader := service.NewLoaderService(
		repository.NewInstituicaoRepository(db),
		repository.NewCategoriaRepository(db),
		repository.NewProjetoRepository(db),
		repository.NewVinculoRepository(db),
		repository.NewFonteRepository(db),
		validate,
	)

	report, err := loader.Load(batch)
	if err != nil {
		var lerr *contract.LoadError
		if errors.As(err, &lerr) {
			fmt.Fprintf(os.Stderr, "load aborted: %v\n", lerr)
			fmt.Fprintln(os.Stderr, "fix the dataset and re-run the whole batch; committed tables load idempotently")
		}
		return err
	}

	fmt.Printf("batch %s loaded into %s in %s\n", report.BatchID, cfg.DatabasePath, report.Duration)
	for _, t := range report.Tables {
		fmt.Printf("  %-22s received %6d  inserted %6d  skipped %6d\n",
			t.Table, t.Received, t.Inserted, t.Skipped)
	}
	return nil
}

func readBatch(dir string) (*contract.LoadBatch, error) {
	batch := &contract.LoadBatch{}

	datasets := []struct {
		file string
		dst  any
	}{
		{"instituicoes.json", &batch.Instituicoes},
		{"eixos.json", &batch.Eixos},
		{"tipos.json", &batch.Tipos},
		{"subtipos.json", &batch.Subtipos},
		{"projetos.json", &batch.Projetos},
		{"tomadores.json", &batch.Tomadores},
		{"executores.json", &batch.Executores},
		{"repassadores.json", &batch.Repassadores},
		{"projeto_eixos.json", &batch.ProjetoEixos},
		{"projeto_tipos.json", &batch.ProjetoTipos},
		{"projeto_subtipos.json", &batch.ProjetoSubtipos},
		{"fontes_de_recurso.json", &batch.Fontes},
	}

	for _, ds := range datasets {
		if err := readDataset(dir, ds.file, ds.dst); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

func readDataset(dir, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		log.Warnf("dataset %s not found, loading it as empty", name)
		return nil
	}

	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
