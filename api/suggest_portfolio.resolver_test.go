package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stocksuggest/internal/app"
	mock_app "stocksuggest/internal/app/mocks"
	"stocksuggest/internal/domain"
	"stocksuggest/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postSuggestPortfolio(t *testing.T, handler ApiHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	requestBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/api/v1/suggestPortfolio", bytes.NewReader(requestBytes))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func Test_suggestPortfolio(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceProvider := mock_app.NewMockPriceProvider(ctrl)

		handler := ApiHandler{
			SuggestionHandler: app.SuggestionHandler{
				PriceProvider: priceProvider,
			},
		}

		indexBasket := []string{"VOO", "QQQ", "VTI", "BND", "IVV", "SPY"}
		priceProvider.EXPECT().
			GetLatestPrices(gomock.Any(), indexBasket).
			Return(map[string]float64{"VOO": 500, "QQQ": 450}, nil)

		dates := []time.Time{util.NewDate(2024, 1, 5)}
		history, err := domain.NewFlatHistory(dates, map[string][]*float64{
			"VOO": {util.FloatPointer(495)},
			"QQQ": {util.FloatPointer(445)},
		})
		require.NoError(t, err)
		priceProvider.EXPECT().
			GetDailyHistory(gomock.Any(), indexBasket, gomock.Any()).
			Return(history, nil)

		w := postSuggestPortfolio(t, handler, SuggestPortfolioRequest{
			InvestmentAmount: 10000,
			Strategies:       []string{"Index Investing"},
		})
		require.Equal(t, 200, w.Code)

		response := SuggestPortfolioResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		// every basket ticker keeps its 1/6 weight even though only
		// two have quotes, so each funded ticker targets ~1666.67
		require.Len(t, response.SuggestedHoldings, 2)
		require.Equal(t, "VOO", response.SuggestedHoldings[0].Ticker)
		require.Equal(t, int64(3), response.SuggestedHoldings[0].SharesPurchased)
		require.Equal(t, 1500.0, response.SuggestedHoldings[0].AllocatedUsd)
		require.Equal(t, "QQQ", response.SuggestedHoldings[1].Ticker)
		require.Equal(t, int64(3), response.SuggestedHoldings[1].SharesPurchased)
		require.Equal(t, 1350.0, response.SuggestedHoldings[1].AllocatedUsd)

		require.Equal(t, 3*500+3*450.0, response.CurrentTotalValueUsd)
		require.Len(t, response.WeeklyValueTrend, 1)
		require.Equal(t, "2024-01-05", response.WeeklyValueTrend[0].Date)
		require.Equal(t, 3*495+3*445.0, response.WeeklyValueTrend[0].Value)
		require.Equal(t, 10000-1500-1350.0, response.LeftoverCashUsd)
	})

	t.Run("unknown strategy returns 400", func(t *testing.T) {
		w := postSuggestPortfolio(t, ApiHandler{}, SuggestPortfolioRequest{
			InvestmentAmount: 10000,
			Strategies:       []string{"Meme Investing"},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("strategy count out of range returns 400", func(t *testing.T) {
		w := postSuggestPortfolio(t, ApiHandler{}, SuggestPortfolioRequest{
			InvestmentAmount: 10000,
			Strategies:       []string{},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("amount below minimum returns 400", func(t *testing.T) {
		w := postSuggestPortfolio(t, ApiHandler{}, SuggestPortfolioRequest{
			InvestmentAmount: 100,
			Strategies:       []string{"Index Investing"},
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, "/api/v1/suggestPortfolio", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		ApiHandler{}.InitializeRouterEngine().ServeHTTP(w, req)
		require.Equal(t, 400, w.Code)
	})
}
