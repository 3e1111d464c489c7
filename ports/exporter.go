package ports

import (
	"github.com/Gogonemnem/FDA/domain/scenario"
)

// ResultExporter writes scenario coverage tables for external plotting and
// reporting collaborators.
type ResultExporter interface {
	Export(results []*scenario.Result) error
}
