package formatter

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/grouper"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/source"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/utils"
)

// RuleName identifies the diagnostics produced by this tool
const RuleName = "import-groups"

type FormatterConfig struct {
	Rule    grouper.Config // alias prefixes and sort options
	InPlace bool           // whether to apply the fix to the files
	Workers int            // files processed concurrently, defaults to the number of CPUs
}

// Diagnostic is a violation reported for a file
type Diagnostic struct {
	File      string            `json:"file"`
	Rule      string            `json:"rule"`
	Kind      string            `json:"kind"`
	Message   string            `json:"message"`
	Start     int               `json:"start"`
	End       int               `json:"end"`
	Line      int               `json:"line"`
	Column    int               `json:"column"`
	EndLine   int               `json:"endLine"`
	EndColumn int               `json:"endColumn"`
	Fix       *grouper.TextEdit `json:"fix,omitempty"`
	Fixed     bool              `json:"fixed"`
}

// formatter checks the imports of JavaScript and TypeScript files
type formatter struct {
	config FormatterConfig
	logger *zap.Logger
}

// New creates a new formatter. A nil logger discards all logs.
func New(config FormatterConfig, logger *zap.Logger) *formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &formatter{
		config: config,
		logger: logger,
	}
}

func (g *formatter) getInPlace() bool {
	return g.config.InPlace
}

// toDiagnostics converts the violations of a file into diagnostics
func (g *formatter) toDiagnostics(file *grouper.File, violations []grouper.Violation) []Diagnostic {
	diags := make([]Diagnostic, 0, len(violations))
	for _, v := range violations {
		line, column := file.Lines.Position(v.Start)
		endLine, endColumn := file.Lines.Position(v.End)
		diags = append(diags, Diagnostic{
			File:      file.Name,
			Rule:      RuleName,
			Kind:      v.Kind.String(),
			Message:   v.Message(),
			Start:     v.Start,
			End:       v.End,
			Line:      line,
			Column:    column,
			EndLine:   endLine,
			EndColumn: endColumn,
			Fix:       v.Fix,
		})
	}
	return diags
}

// ProcessFile checks a single source file and, in place mode, rewrites its imports
func (g *formatter) ProcessFile(ctx context.Context, path string) ([]Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	file, err := source.Parse(ctx, path, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
	}

	violations := grouper.Check(file, g.config.Rule, true)
	if len(violations) == 0 {
		g.logger.Debug("Imports are grouped", zap.String("file", path), zap.Int("imports", len(file.Imports())))
		return nil, nil
	}
	diags := g.toDiagnostics(file, violations)

	if !g.getInPlace() {
		return diags, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToStatFile, err)
	}
	// every violation carries the same whole-block edit
	output := grouper.Apply(src, violations[0].Fix)
	if err := os.WriteFile(path, output, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	for i := range diags {
		diags[i].Fixed = true
	}
	g.logger.Info(errors.InfoMsgFixedFile, zap.String("file", path), zap.Int("violations", len(diags)))
	return diags, nil
}

// ProcessFiles processes multiple source files concurrently. Diagnostics are
// returned in the order of filePaths. A file that fails is logged and counted,
// and the remaining files are still processed.
func (g *formatter) ProcessFiles(ctx context.Context, filePaths []string) ([]Diagnostic, error) {
	results := make([][]Diagnostic, len(filePaths))
	var errorCount atomic.Int64

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)
	for i, filePath := range filePaths {
		i, filePath := i, filePath
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			diags, err := g.ProcessFile(egctx, filePath)
			if err != nil {
				g.logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				errorCount.Add(1)
				return nil
			}
			results[i] = diags
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var diags []Diagnostic
	for _, r := range results {
		diags = append(diags, r...)
	}
	g.logger.Debug(errors.InfoMsgProcessedCount,
		zap.Int("files", len(filePaths)),
		zap.Int64("errors", errorCount.Load()),
		zap.Int("diagnostics", len(diags)))

	if n := errorCount.Load(); n > 0 {
		return diags, fmt.Errorf(errors.ErrMsgFilesFailedToProcess, n)
	}
	return diags, nil
}

// ProcessPath processes a file or directory path
func (g *formatter) ProcessPath(ctx context.Context, path string) ([]Diagnostic, error) {
	return g.ProcessPaths(ctx, []string{path})
}

// ProcessPaths expands directories into their source files and processes them all
func (g *formatter) ProcessPaths(ctx context.Context, paths []string) ([]Diagnostic, error) {
	var files []string
	for _, path := range paths {
		found, err := g.collectFiles(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return g.ProcessFiles(ctx, files)
}

func (g *formatter) collectFiles(path string) ([]string, error) {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		if !source.IsSupported(path) {
			return nil, fmt.Errorf("%s: %s", errors.ErrMsgUnsupportedFile, path)
		}
		return []string{path}, nil
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindFiles, err)
	}
	if len(files) == 0 {
		g.logger.Info(errors.InfoMsgNoSourceFilesFound, zap.String("path", path))
		return nil, nil
	}
	g.logger.Debug(errors.InfoMsgFoundSourceFiles, zap.String("path", path), zap.Int("files", len(files)))
	return files, nil
}
