package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/assat/assat/internal/rules"
	"github.com/assat/assat/internal/source"
	"github.com/assat/assat/internal/types"
)

// Config controls one scan: where to look, which files to pick and which
// rule set classifies their lines.
type Config struct {
	Root   string
	Set    rules.Set
	Source source.Options
	// Logger receives per-file warnings and the completion summary. Nil
	// discards them.
	Logger logrus.FieldLogger
}

// Scan walks cfg.Root and classifies every line of every selected file.
//
// An unusable root aborts with a *source.PathError before any file is read.
// Files that cannot be read are skipped, logged and listed in
// ScanReport.Skipped; the scan carries on with the next file.
func Scan(cfg Config) (types.ScanReport, error) {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if len(cfg.Set.Rules) == 0 {
		return types.ScanReport{}, fmt.Errorf("rule set %q has no rules", cfg.Set.Name)
	}

	it, err := source.Open(cfg.Root, cfg.Source)
	if err != nil {
		return types.ScanReport{}, err
	}
	log.WithFields(logrus.Fields{"root": cfg.Root, "mode": cfg.Set.Name, "candidates": it.Len()}).Debug("scan started")

	rep := types.ScanReport{
		Root:       cfg.Root,
		Mode:       cfg.Set.Name,
		Categories: cfg.Set.Categories(),
	}
	started := time.Now()
	for {
		f, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var fre *source.FileReadError
			if !errors.As(err, &fre) {
				return types.ScanReport{}, err
			}
			log.WithField("file", fre.Path).WithError(fre.Err).Warn("skipping unreadable file")
			rep.Skipped = append(rep.Skipped, types.SkippedFile{Path: fre.Path, Reason: fre.Err.Error()})
			continue
		}
		res := classifyFile(f, cfg.Set)
		if n := res.Matches(); n > 0 {
			log.WithField("file", f.Path).Debugf("%d matches", n)
		}
		rep.Results = append(rep.Results, res)
		rep.FilesScanned++
	}
	rep.Duration = time.Since(started)

	log.WithFields(logrus.Fields{
		"files":    rep.FilesScanned,
		"matches":  rep.Matches(),
		"skipped":  len(rep.Skipped),
		"digest":   rep.Digest(),
		"duration": rep.Duration.Round(time.Millisecond),
	}).Info("scan complete")
	return rep, nil
}

// classifyFile numbers lines from 0 and files each classified line, trimmed,
// under its category.
func classifyFile(f types.ScannedFile, set rules.Set) types.FileResult {
	res := types.NewFileResult(f.Path, set.Categories())
	for i, line := range f.Lines {
		cat, ok := rules.Classify(line, set.Rules)
		if !ok {
			continue
		}
		res.Add(cat, types.MatchRecord{Line: i, Text: strings.TrimSpace(line)})
	}
	return res
}
