//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgeServiceFlow(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/age", map[string]any{
		"pet_type": "dog",
		"pet_age":  1,
	}, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var record struct {
		ID      string `json:"id"`
		Kind    string `json:"kind"`
		Payload struct {
			HumanAge  float64 `json:"human_age"`
			LifeStage string  `json:"life_stage"`
		} `json:"payload"`
	}
	decodeData(t, resp, &record)
	require.Equal(t, "age", record.Kind)
	require.Equal(t, 7.0, record.Payload.HumanAge)
	require.Equal(t, "Senior", record.Payload.LifeStage)

	historyResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/services/age/history", nil, token)
	defer historyResp.Body.Close()

	var history struct {
		Count int `json:"count"`
	}
	decodeData(t, historyResp, &history)
	require.Equal(t, 1, history.Count)

	badResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/age", map[string]any{
		"pet_type": "dragon",
		"pet_age":  1,
	}, token)
	defer badResp.Body.Close()
	require.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}

func TestWeightServiceFlow(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/weight", map[string]any{
		"pet_type": "dog",
		"weight":   20,
	}, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var record struct {
		Payload struct {
			Score     float64 `json:"score"`
			Condition string  `json:"condition"`
		} `json:"payload"`
	}
	decodeData(t, resp, &record)
	require.Equal(t, 100.0, record.Payload.Score)
	require.Equal(t, "Ideal", record.Payload.Condition)
}

func TestNamesAndFavorites(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	genResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/names", map[string]any{
		"preferences": map[string]any{"pet_type": "dog", "style": "cute"},
	}, token)
	defer genResp.Body.Close()
	require.Equal(t, http.StatusCreated, genResp.StatusCode)

	var generated struct {
		Payload struct {
			Names []string `json:"names"`
		} `json:"payload"`
	}
	decodeData(t, genResp, &generated)
	require.NotEmpty(t, generated.Payload.Names)

	favResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/names/favorites", map[string]any{
		"favorites": []string{generated.Payload.Names[0]},
	}, token)
	defer favResp.Body.Close()
	require.Equal(t, http.StatusOK, favResp.StatusCode)

	var favored struct {
		Payload struct {
			Favorites []string `json:"favorites"`
		} `json:"payload"`
	}
	decodeData(t, favResp, &favored)
	require.Equal(t, []string{generated.Payload.Names[0]}, favored.Payload.Favorites)
}

func TestRecipesBreedsGuidesCharts(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	recipeResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/recipes", map[string]any{
		"criteria": map[string]any{"pet_type": "dog"},
	}, token)
	defer recipeResp.Body.Close()
	require.Equal(t, http.StatusCreated, recipeResp.StatusCode)

	breedResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/breeds/manual", map[string]any{
		"traits": map[string]any{"size": "Large"},
	}, token)
	defer breedResp.Body.Close()
	require.Equal(t, http.StatusCreated, breedResp.StatusCode)

	var breed struct {
		Payload struct {
			Manual     bool    `json:"manual"`
			Confidence float64 `json:"confidence"`
		} `json:"payload"`
	}
	decodeData(t, breedResp, &breed)
	require.True(t, breed.Payload.Manual)
	require.Equal(t, 75.0, breed.Payload.Confidence)

	identifyResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/breeds/identify", map[string]any{
		"image_url": "https://example.com/photo.jpg",
	}, token)
	defer identifyResp.Body.Close()
	require.Equal(t, http.StatusCreated, identifyResp.StatusCode)

	guidesResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/services/guides", nil, token)
	defer guidesResp.Body.Close()
	require.Equal(t, http.StatusOK, guidesResp.StatusCode)

	downloadResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/guides/dog-training-complete/download", map[string]any{
		"device_type": "mobile",
	}, token)
	defer downloadResp.Body.Close()
	require.Equal(t, http.StatusCreated, downloadResp.StatusCode)

	missingGuide := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/guides/no-such-guide/download", nil, token)
	defer missingGuide.Body.Close()
	require.Equal(t, http.StatusNotFound, missingGuide.StatusCode)

	chartResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/charts", map[string]any{
		"chart_type": "feeding",
	}, token)
	defer chartResp.Body.Close()
	require.Equal(t, http.StatusCreated, chartResp.StatusCode)

	badChart := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/charts", map[string]any{
		"chart_type": "astrology",
	}, token)
	defer badChart.Body.Close()
	require.Equal(t, http.StatusBadRequest, badChart.StatusCode)
}

func TestDashboardFlow(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	ageResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/services/age", map[string]any{
		"pet_type": "cat",
		"pet_age":  2,
	}, token)
	defer ageResp.Body.Close()
	require.Equal(t, http.StatusCreated, ageResp.StatusCode)

	var record struct {
		ID string `json:"id"`
	}
	decodeData(t, ageResp, &record)

	dataResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/dashboard/data", nil, token)
	defer dataResp.Body.Close()
	require.Equal(t, http.StatusOK, dataResp.StatusCode)

	var data struct {
		AgeCalculations []struct {
			ID string `json:"id"`
		} `json:"age_calculations"`
	}
	decodeData(t, dataResp, &data)
	require.Len(t, data.AgeCalculations, 1)
	require.Equal(t, record.ID, data.AgeCalculations[0].ID)

	updateResp := doJSON(t, http.MethodPut, server.URL+"/api/v1/dashboard/age/"+record.ID, map[string]any{
		"pet_type": "dog",
		"pet_age":  1,
	}, token)
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	// Another account cannot delete the record.
	bobToken := registerUser(t, server, "bob", "bob@example.com")
	bobDelete := doJSON(t, http.MethodDelete, server.URL+"/api/v1/dashboard/age/"+record.ID, nil, bobToken)
	defer bobDelete.Body.Close()
	require.Equal(t, http.StatusNotFound, bobDelete.StatusCode)

	deleteResp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/dashboard/age/"+record.ID, nil, token)
	defer deleteResp.Body.Close()
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)
}
