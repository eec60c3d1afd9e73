// Package silver turns one raw bronze partition into a validated, typed,
// columnar silver table, or fails loudly without producing partial output.
package silver

import (
	"context"
	"os"
	"path/filepath"

	"milagros/domain/contract"
	"milagros/domain/partition"
	"milagros/domain/table"
	"milagros/internal"
	"milagros/internal/errors"
	"milagros/internal/profile"
	"milagros/ports"

	"github.com/google/uuid"
)

// RawFileName is the spreadsheet the landing stage placed in the bronze
// partition.
const RawFileName = "Nacimientos_HGM.xlsx"

// OutputFileName is the columnar silver artifact.
const OutputFileName = "milagros_hgm.parquet"

// Fixed hardening sets. Columns absent from the dataset are silently
// skipped; presence is enforced by the contract, not here.
var (
	yearPeriodColumns  = []string{"ano", "periodo_de_reporte"}
	ageColumns         = []string{"edad_madre", "edad_padre"}
	categoricalColumns = []string{
		"sexo",
		"nivel_educativo_madre",
		"nivel_educativo_padre",
		"profesion_certificador",
	}
)

// Pipeline executes the fixed ordered transformation:
// load -> normalize_schema -> standardize_values -> harden_types ->
// validate_contract -> persist. Later steps assume earlier postconditions
// (the contract's range checks rely on hardening having already turned
// unparseable numerics into missing), so the order never varies.
type Pipeline struct {
	Reader   ports.TableReader
	Writer   ports.TableWriter
	Contract contract.Contract

	RawBase    string
	SilverBase string
	Key        partition.Key

	Logger *internal.Logger
}

// Result is the per-run summary reported on success.
type Result struct {
	RunID      string
	Rows       int
	Columns    []string
	OutputPath string
	MarkerPath string
	Summaries  []profile.ColumnSummary
}

// step is one named in-place transformation over the table.
type step struct {
	name string
	run  func(t *table.Table) error
}

// NewPipeline wires the transformation stage for one partition key.
func NewPipeline(reader ports.TableReader, writer ports.TableWriter, rawBase, silverBase string, key partition.Key, logger *internal.Logger) *Pipeline {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Pipeline{
		Reader:     reader,
		Writer:     writer,
		Contract:   contract.Births(),
		RawBase:    rawBase,
		SilverBase: silverBase,
		Key:        key,
		Logger:     logger,
	}
}

// Run executes the stage start to finish. Any step error aborts immediately;
// the parquet file and the completion marker appear, in that order, only
// when every step succeeded.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	rawFile := filepath.Join(p.Key.Dir(p.RawBase), RawFileName)
	outDir := p.Key.Dir(p.SilverBase)
	outPath := filepath.Join(outDir, OutputFileName)
	marker := p.Key.MarkerPath(p.SilverBase)

	p.Logger.Info("run %s: raw_file=%s", runID, rawFile)
	p.Logger.Info("run %s: out_parquet=%s", runID, outPath)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create silver directory %s", outDir)
	}

	t, err := p.Reader.Read(ctx, rawFile)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	p.Logger.Debug("load: %d rows, %d columns", t.NumRows(), t.NumCols())

	for _, s := range p.steps() {
		if err := s.run(t); err != nil {
			return nil, errors.Wrapf(err, "%s failed", s.name)
		}
		p.Logger.Debug("%s: %d rows, %d columns", s.name, t.NumRows(), t.NumCols())
	}

	if err := p.Writer.Write(ctx, t, outPath); err != nil {
		return nil, errors.Wrap(err, "persist failed")
	}
	if err := touch(marker); err != nil {
		return nil, errors.Wrapf(err, "failed to create completion marker %s", marker)
	}

	result := &Result{
		RunID:      runID,
		Rows:       t.NumRows(),
		Columns:    t.Names(),
		OutputPath: outPath,
		MarkerPath: marker,
		Summaries:  profile.Summarize(t),
	}
	p.Logger.Info("run %s: rows=%d cols=%d", runID, result.Rows, len(result.Columns))
	p.Logger.Info("run %s: wrote %s", runID, outPath)
	p.Logger.Info("run %s: wrote %s", runID, marker)
	for _, s := range result.Summaries {
		p.Logger.Info("run %s: column %s", runID, s)
	}
	return result, nil
}

func (p *Pipeline) steps() []step {
	return []step{
		{
			// Precondition: raw headers as loaded. Postcondition: canonical
			// column names, placeholder columns dropped.
			name: "normalize_schema",
			run: func(t *table.Table) error {
				if err := table.NormalizeSchema(t); err != nil {
					return errors.WithCode(errors.CodeContractViolation, err)
				}
				return nil
			},
		},
		{
			// Postcondition: text cells trimmed, empty-after-trim cells
			// converted to missing dataset-wide.
			name: "standardize_values",
			run: func(t *table.Table) error {
				table.TrimText(t)
				table.BlankToMissing(t)
				return nil
			},
		},
		{
			// Postcondition: the named numeric columns hold integer-or-missing
			// only; the named categorical columns hold text-or-missing only.
			name: "harden_types",
			run: func(t *table.Table) error {
				table.CoerceInt(t, yearPeriodColumns...)
				table.CoerceInt(t, ageColumns...)
				table.EnsureText(t, categoricalColumns...)
				return nil
			},
		},
		{
			// Precondition: types hardened. Postcondition: the table satisfies
			// the full data contract.
			name: "validate_contract",
			run: func(t *table.Table) error {
				if err := p.Contract.Validate(t); err != nil {
					return errors.ContractViolation(err)
				}
				return nil
			},
		},
	}
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
