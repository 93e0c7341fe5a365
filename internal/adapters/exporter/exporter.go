// Package exporter serializes the resolved configuration into the process
// environment consumed by the external build scripts.
package exporter

import (
	"strconv"
	"strings"

	"go.trai.ch/k2build/internal/core/domain"
	"go.trai.ch/k2build/internal/core/ports"
	"go.trai.ch/zerr"
)

// Exporter implements ports.ConfigExporter. Besides the configuration
// variables it exports the install directory as KRAKEN2_DIR and prefixes
// PATH with it so the dispatched script finds its sibling programs.
type Exporter struct {
	env        ports.Environment
	installDir string
}

// New creates an Exporter writing to env. installDir is the directory
// holding this binary and the external task programs.
func New(env ports.Environment, installDir string) *Exporter {
	return &Exporter{env: env, installDir: installDir}
}

// Export writes every resolved field to its fixed-name variable. Booleans
// encode as "1" or the empty string, the absent maximum database size as the
// empty string. Export is total and idempotent.
func (e *Exporter) Export(cfg domain.BuildConfiguration) error {
	vars := [][2]string{
		{domain.EnvDBName, cfg.DBName},
		{domain.EnvThreadCount, strconv.Itoa(cfg.ThreadCount)},
		{domain.EnvKmerLen, strconv.Itoa(cfg.KmerLen)},
		{domain.EnvMinimizerLen, strconv.Itoa(cfg.MinimizerLen)},
		{domain.EnvMinimizerSpaces, strconv.Itoa(cfg.MinimizerSpaces)},
		{domain.EnvSeedTemplate, cfg.SeedTemplate},
		{domain.EnvLoadFactor, strconv.FormatFloat(cfg.LoadFactor, 'g', -1, 64)},
		{domain.EnvBlockSize, strconv.Itoa(cfg.BlockSize)},
		{domain.EnvSubblockSize, strconv.Itoa(cfg.SubblockSize)},
		{domain.EnvMinTaxidBits, strconv.Itoa(cfg.MinTaxidBits)},
		{domain.EnvUpdateInterval, strconv.Itoa(cfg.UpdateInterval)},
		{domain.EnvMaxDBSize, encodeMaxDBSize(cfg.MaxDBSize)},
		{domain.EnvProteinDB, encodeBool(cfg.Protein)},
		{domain.EnvMaskLC, encodeBool(cfg.Masking)},
		{domain.EnvUseFTP, encodeBool(cfg.UseFTP)},
		{domain.EnvSkipMaps, encodeBool(cfg.SkipMaps)},
		{domain.EnvFastBuild, encodeBool(cfg.FastBuild)},
		{domain.EnvOnlyEstimate, encodeBool(cfg.OnlyEstimate)},
		{domain.EnvDir, e.installDir},
	}

	for _, kv := range vars {
		if err := e.env.Set(kv[0], kv[1]); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to export configuration variable"), "variable", kv[0])
		}
	}

	return e.prefixPath()
}

// prefixPath puts the install directory at the front of PATH, once.
func (e *Exporter) prefixPath() error {
	path, _ := e.env.Lookup("PATH")
	if first, _, _ := strings.Cut(path, ":"); first == e.installDir {
		return nil
	}
	newPath := e.installDir
	if path != "" {
		newPath += ":" + path
	}
	if err := e.env.Set("PATH", newPath); err != nil {
		return zerr.Wrap(err, "failed to prefix PATH with install directory")
	}
	return nil
}

func encodeBool(v bool) string {
	if v {
		return "1"
	}
	return ""
}

func encodeMaxDBSize(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
