//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPetLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	createResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/pets", map[string]any{
		"name":  "Rex",
		"type":  "dog",
		"breed": "Labrador",
		"age":   3,
	}, token)
	defer createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	var pet struct {
		ID      string `json:"id"`
		OwnerID string `json:"owner_id"`
		Name    string `json:"name"`
	}
	decodeData(t, createResp, &pet)
	require.NotEmpty(t, pet.ID)
	require.Equal(t, "Rex", pet.Name)

	listResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/pets", nil, token)
	defer listResp.Body.Close()

	var list struct {
		Count int `json:"count"`
	}
	decodeData(t, listResp, &list)
	require.Equal(t, 1, list.Count)

	updateResp := doJSON(t, http.MethodPut, server.URL+"/api/v1/pets/"+pet.ID, map[string]any{
		"name": "Rexford",
	}, token)
	defer updateResp.Body.Close()
	require.Equal(t, http.StatusOK, updateResp.StatusCode)

	var updated struct {
		Name  string `json:"name"`
		Breed string `json:"breed"`
	}
	decodeData(t, updateResp, &updated)
	require.Equal(t, "Rexford", updated.Name)
	require.Equal(t, "Labrador", updated.Breed, "unpatched fields survive")

	deleteResp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/pets/"+pet.ID, nil, token)
	defer deleteResp.Body.Close()
	require.Equal(t, http.StatusOK, deleteResp.StatusCode)

	goneResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/pets/"+pet.ID, nil, token)
	defer goneResp.Body.Close()
	require.Equal(t, http.StatusNotFound, goneResp.StatusCode)
}

func TestPetsAreOwnerScoped(t *testing.T) {
	server := newTestServer(t)
	aliceToken := registerUser(t, server, "alice", "alice@example.com")
	bobToken := registerUser(t, server, "bob", "bob@example.com")

	createResp := doJSON(t, http.MethodPost, server.URL+"/api/v1/pets", map[string]any{
		"name": "Rex",
		"type": "dog",
	}, aliceToken)
	defer createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	var pet struct {
		ID string `json:"id"`
	}
	decodeData(t, createResp, &pet)

	// Bob sees 404, never 403, for Alice's pet.
	getResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/pets/"+pet.ID, nil, bobToken)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusNotFound, getResp.StatusCode)

	delResp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/pets/"+pet.ID, nil, bobToken)
	defer delResp.Body.Close()
	require.Equal(t, http.StatusNotFound, delResp.StatusCode)

	listResp := doJSON(t, http.MethodGet, server.URL+"/api/v1/pets", nil, bobToken)
	defer listResp.Body.Close()

	var list struct {
		Count int `json:"count"`
	}
	decodeData(t, listResp, &list)
	require.Equal(t, 0, list.Count)
}

func TestPetValidation(t *testing.T) {
	server := newTestServer(t)
	token := registerUser(t, server, "alice", "alice@example.com")

	missingType := doJSON(t, http.MethodPost, server.URL+"/api/v1/pets", map[string]any{
		"name": "Rex",
	}, token)
	defer missingType.Body.Close()
	require.Equal(t, http.StatusBadRequest, missingType.StatusCode)

	badType := doJSON(t, http.MethodPost, server.URL+"/api/v1/pets", map[string]any{
		"name": "Rex",
		"type": "dinosaur",
	}, token)
	defer badType.Body.Close()
	require.Equal(t, http.StatusBadRequest, badType.StatusCode)
}
