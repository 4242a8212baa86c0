package cmd

import (
	"fmt"

	"stocksuggest/api"
	"stocksuggest/internal/app"
	"stocksuggest/internal/repository"
	"stocksuggest/pkg/yahoo"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	universeRepository, err := repository.NewUniverseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize universe repository: %w", err)
	}

	suggestionHandler := app.SuggestionHandler{
		UniverseRepository: universeRepository,
		PriceProvider:      yahoo.NewClient(),
	}

	return &api.ApiHandler{
		SuggestionHandler: suggestionHandler,
	}, nil
}
