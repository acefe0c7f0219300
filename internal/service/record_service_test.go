package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"pet-care-api/internal/model"
	"pet-care-api/internal/repository"
)

func newTestRecordService() *RecordService {
	return NewRecordService(repository.NewMemoryRecordRepository())
}

func floatPtr(v float64) *float64 { return &v }

func TestRecordService_CalculateAgePersists(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	record, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "dog", PetAge: floatPtr(1)})
	require.NoError(t, err)
	require.Equal(t, "age", record.Kind)

	payload, ok := record.Payload.(model.AgePayload)
	require.True(t, ok)
	require.Equal(t, 7.0, payload.HumanAge)

	history, err := svc.AgeHistory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, record.ID, history[0].ID)
}

func TestRecordService_AgeHistoryLimitAndOrder(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	var lastID string
	for i := 0; i < 12; i++ {
		record, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "dog", PetAge: floatPtr(float64(i))})
		require.NoError(t, err)
		lastID = record.ID
	}

	history, err := svc.AgeHistory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, ageHistoryLimit)
	require.Equal(t, lastID, history[0].ID, "newest first")
}

func TestRecordService_HistoryIsOwnerScoped(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	_, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "cat", PetAge: floatPtr(2)})
	require.NoError(t, err)

	history, err := svc.AgeHistory(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestRecordService_AssessWeight(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	record, err := svc.AssessWeight(ctx, "alice", model.WeightRequest{PetType: "dog", Weight: floatPtr(20)})
	require.NoError(t, err)

	payload, ok := record.Payload.(model.WeightPayload)
	require.True(t, ok)
	require.Equal(t, "Ideal", payload.Condition)

	history, err := svc.WeightHistory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestRecordService_NameFavorites(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	t.Run("creates a record when none exists", func(t *testing.T) {
		record, err := svc.SaveNameFavorites(ctx, "fresh-user", []string{"Rex"})
		require.NoError(t, err)

		payload, ok := record.Payload.(model.NamePayload)
		require.True(t, ok)
		require.Equal(t, []string{"Rex"}, payload.Favorites)
	})

	t.Run("merges into the latest record without duplicates", func(t *testing.T) {
		_, err := svc.GenerateNames(ctx, "alice", model.NameGenerateRequest{
			Preferences: model.NamePreferences{PetType: "dog", Style: "cute"},
		})
		require.NoError(t, err)

		_, err = svc.SaveNameFavorites(ctx, "alice", []string{"Rex", "Luna"})
		require.NoError(t, err)

		record, err := svc.SaveNameFavorites(ctx, "alice", []string{"Luna", "Max"})
		require.NoError(t, err)

		payload, ok := record.Payload.(model.NamePayload)
		require.True(t, ok)
		require.Equal(t, []string{"Rex", "Luna", "Max"}, payload.Favorites)
	})

	t.Run("rejects empty favorites", func(t *testing.T) {
		_, err := svc.SaveNameFavorites(ctx, "alice", nil)
		require.Error(t, err)
	})
}

func TestRecordService_TrackGuideDownload(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	record, err := svc.TrackGuideDownload(ctx, "alice", "dog-training-complete", "mobile")
	require.NoError(t, err)

	payload, ok := record.Payload.(model.GuidePayload)
	require.True(t, ok)
	require.Equal(t, "Complete Dog Training Guide", payload.GuideTitle)

	_, err = svc.TrackGuideDownload(ctx, "alice", "no-such-guide", "mobile")
	require.Error(t, err)
}

func TestRecordService_GenerateChart(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	_, err := svc.GenerateChart(ctx, "alice", model.ChartGenerateRequest{ChartType: "feeding"})
	require.NoError(t, err)

	_, err = svc.GenerateChart(ctx, "alice", model.ChartGenerateRequest{ChartType: "astrology"})
	require.Error(t, err)
}

func TestRecordService_Dashboard(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "dog", PetAge: floatPtr(float64(i))})
		require.NoError(t, err)
	}
	_, err := svc.AssessWeight(ctx, "alice", model.WeightRequest{PetType: "cat", Weight: floatPtr(4.5)})
	require.NoError(t, err)
	_, err = svc.GenerateNames(ctx, "alice", model.NameGenerateRequest{
		Preferences: model.NamePreferences{PetType: "cat"},
	})
	require.NoError(t, err)
	_, err = svc.GenerateNames(ctx, "alice", model.NameGenerateRequest{
		Preferences: model.NamePreferences{PetType: "dog"},
	})
	require.NoError(t, err)

	data, err := svc.Dashboard(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, data.AgeCalculations, dashboardAgeLimit)
	require.Len(t, data.WeightRecords, 1)
	require.Empty(t, data.RecipeRecords)
	require.Len(t, data.NameRecords, dashboardNameLimit)
}

func TestRecordService_UpdateRecord(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	record, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "dog", PetAge: floatPtr(1)})
	require.NoError(t, err)

	body, err := json.Marshal(model.AgeRequest{PetType: "cat", PetAge: floatPtr(2)})
	require.NoError(t, err)

	updated, err := svc.UpdateRecord(ctx, "alice", "age", record.ID, body)
	require.NoError(t, err)

	payload, ok := updated.Payload.(model.AgePayload)
	require.True(t, ok)
	require.Equal(t, 8.0, payload.HumanAge)

	// Only age and weight records are recalculable.
	_, err = svc.UpdateRecord(ctx, "alice", "recipe", record.ID, body)
	require.Error(t, err)

	// Another owner cannot touch the record.
	_, err = svc.UpdateRecord(ctx, "bob", "age", record.ID, body)
	require.ErrorIs(t, err, model.ErrRecordNotFound)
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	svc := newTestRecordService()
	ctx := context.Background()

	record, err := svc.CalculateAge(ctx, "alice", model.AgeRequest{PetType: "dog", PetAge: floatPtr(1)})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteRecord(ctx, "bob", "age", record.ID), model.ErrRecordNotFound)
	require.NoError(t, svc.DeleteRecord(ctx, "alice", "age", record.ID))
	require.ErrorIs(t, svc.DeleteRecord(ctx, "alice", "age", record.ID), model.ErrRecordNotFound)

	err = svc.DeleteRecord(ctx, "alice", "nonsense", record.ID)
	require.Error(t, err)
}
