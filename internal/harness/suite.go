package harness

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/roach88/spancheck/internal/span"
)

// Suite runs fixture files against one parser.
//
// Rule names in fixtures are resolved through Rules; a fixture naming an
// unknown rule fails rather than being skipped. Each fixture is an
// independent assertion: a failing fixture never stops the run.
type Suite[R comparable] struct {
	Parser span.Parser[R]
	Rules  map[string]R
	Logger *slog.Logger // nil discards logs
}

// Run executes one loaded fixture.
func (s *Suite[R]) Run(f *Fixture, path string) *Result {
	result := NewResult(f.Name, path)
	log := s.logger().With("fixture", f.Name)

	if err := s.run(f); err != nil {
		result.AddError(err.Error())
		log.Warn("fixture failed", "error", firstLine(err.Error()))
		return result
	}

	log.Debug("fixture passed")
	return result
}

func (s *Suite[R]) run(f *Fixture) error {
	rule, err := ResolveRule(s.Rules, f.Rule)
	if err != nil {
		return fmt.Errorf("rule: %w", err)
	}

	if f.Fails != nil {
		positives, err := ResolveRules(s.Rules, f.Fails.Positives)
		if err != nil {
			return fmt.Errorf("fails.positives: %w", err)
		}
		negatives, err := ResolveRules(s.Rules, f.Fails.Negatives)
		if err != nil {
			return fmt.Errorf("fails.negatives: %w", err)
		}
		return VerifyFailsWith(s.Parser, f.Input, rule, positives, negatives, f.Fails.Pos)
	}

	want, err := BuildTree(s.Rules, f.Tokens)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	return VerifyParsesTo(s.Parser, f.Input, rule, want...)
}

// RunFile loads and runs the fixture at path. A fixture that fails to load
// is reported as a failed result named after the file.
func (s *Suite[R]) RunFile(path string) *Result {
	f, err := LoadFixture(path)
	if err != nil {
		result := NewResult(filepath.Base(path), path)
		result.AddError(fmt.Sprintf("failed to load fixture: %v", err))
		s.logger().Warn("fixture load failed", "path", path, "error", err)
		return result
	}
	return s.Run(f, path)
}

// RunDir runs every fixture under dir, in lexical path order. If filter is
// not empty, only fixtures whose base name without extension matches the
// glob are run.
func (s *Suite[R]) RunDir(dir, filter string) (*Report, error) {
	paths, err := findFixtureFiles(dir, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find fixtures: %w", err)
	}

	report := &Report{Results: make([]*Result, 0, len(paths))}
	for _, path := range paths {
		report.Add(s.RunFile(path))
	}

	s.logger().Info("fixtures run", "dir", dir, "passed", report.Passed, "failed", report.Failed)
	return report, nil
}

func (s *Suite[R]) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// findFixtureFiles finds all fixture files in a directory tree.
func findFixtureFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" && ext != ".cue" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}
