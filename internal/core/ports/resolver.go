package ports

import "go.trai.ch/k2build/internal/core/domain"

// ConfigResolver merges the three configuration tiers into one record.
// Precedence per field: explicit CLI override, then inherited environment,
// then mode-dependent default.
type ConfigResolver interface {
	Resolve(ov domain.Overrides) (domain.BuildConfiguration, error)
}
