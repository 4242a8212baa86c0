package repository

import (
	"bytes"
	_ "embed"
	"fmt"

	"stocksuggest/internal/domain"

	"github.com/gocarina/gocsv"
)

// Bundled fundamentals snapshot for the candidate pool. Blank cells
// mean the attribute is unknown for that instrument; the index ETFs
// deliberately carry no fundamentals at all.
//
//go:embed universe.csv
var universeCSV []byte

type UniverseRepository interface {
	List() ([]domain.Instrument, error)
}

type universeRepositoryHandler struct {
	instruments []domain.Instrument
}

func NewUniverseRepository() (UniverseRepository, error) {
	instruments := []domain.Instrument{}
	if err := gocsv.UnmarshalBytes(bytes.TrimSpace(universeCSV), &instruments); err != nil {
		return nil, fmt.Errorf("failed to parse universe snapshot: %w", err)
	}
	if len(instruments) == 0 {
		return nil, fmt.Errorf("universe snapshot is empty")
	}
	return &universeRepositoryHandler{instruments: instruments}, nil
}

func (h *universeRepositoryHandler) List() ([]domain.Instrument, error) {
	return h.instruments, nil
}
