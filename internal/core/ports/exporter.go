package ports

import "go.trai.ch/k2build/internal/core/domain"

// ConfigExporter serializes the resolved configuration into the process
// environment consumed by the dispatched external program. Export is total
// (every field has a defined serialization, including absent optionals) and
// idempotent.
type ConfigExporter interface {
	Export(cfg domain.BuildConfiguration) error
}
