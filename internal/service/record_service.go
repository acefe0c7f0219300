package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pet-care-api/internal/care"
	"pet-care-api/internal/model"
	"pet-care-api/pkg/apierror"
)

// History response caps keep list payloads bounded.
const (
	ageHistoryLimit    = 10
	weightHistoryLimit = 20

	dashboardAgeLimit    = 5
	dashboardWeightLimit = 5
	dashboardRecipeLimit = 3
	dashboardNameLimit   = 1
)

// RecordStore is the generic ownership-scoped store for service
// records.
type RecordStore interface {
	Create(ctx context.Context, record model.ServiceRecord) error
	ListByOwner(ctx context.Context, ownerID string, kind model.RecordKind, limit int) ([]model.ServiceRecord, error)
	GetByIDForOwner(ctx context.Context, ownerID string, kind model.RecordKind, recordID string) (model.ServiceRecord, error)
	UpdateForOwner(ctx context.Context, ownerID string, record model.ServiceRecord) error
	DeleteForOwner(ctx context.Context, ownerID string, kind model.RecordKind, recordID string) error
}

// RecordService runs the pet-care computations and persists their
// results as owner-scoped records.
type RecordService struct {
	records RecordStore
}

func NewRecordService(records RecordStore) *RecordService {
	return &RecordService{records: records}
}

// dashboardKinds maps the service-type path segment used by the
// dashboard to a record kind.
var dashboardKinds = map[string]model.RecordKind{
	"age":    model.KindAge,
	"weight": model.KindWeight,
	"recipe": model.KindRecipe,
	"name":   model.KindName,
}

func (s *RecordService) CalculateAge(ctx context.Context, ownerID string, req model.AgeRequest) (model.RecordView, error) {
	payload, err := care.Age(req)
	if err != nil {
		return model.RecordView{}, err
	}
	return s.save(ctx, ownerID, model.KindAge, payload)
}

func (s *RecordService) AgeHistory(ctx context.Context, ownerID string) ([]model.RecordView, error) {
	return s.history(ctx, ownerID, model.KindAge, ageHistoryLimit)
}

func (s *RecordService) AssessWeight(ctx context.Context, ownerID string, req model.WeightRequest) (model.RecordView, error) {
	payload, err := care.Weight(req)
	if err != nil {
		return model.RecordView{}, err
	}
	return s.save(ctx, ownerID, model.KindWeight, payload)
}

func (s *RecordService) WeightHistory(ctx context.Context, ownerID string) ([]model.RecordView, error) {
	return s.history(ctx, ownerID, model.KindWeight, weightHistoryLimit)
}

func (s *RecordService) GenerateNames(ctx context.Context, ownerID string, req model.NameGenerateRequest) (model.RecordView, error) {
	names, err := care.GenerateNames(req.Preferences)
	if err != nil {
		return model.RecordView{}, err
	}

	return s.save(ctx, ownerID, model.KindName, model.NamePayload{
		Preferences: req.Preferences,
		Names:       names,
	})
}

// SaveNameFavorites merges favorites into the owner's latest name
// record, creating one when none exists yet.
func (s *RecordService) SaveNameFavorites(ctx context.Context, ownerID string, favorites []string) (model.RecordView, error) {
	if len(favorites) == 0 {
		return model.RecordView{}, apierror.Validation("favorites are required", "favorites")
	}

	latest, err := s.records.ListByOwner(ctx, ownerID, model.KindName, 1)
	if err != nil {
		return model.RecordView{}, fmt.Errorf("load name records: %w", err)
	}

	if len(latest) == 0 {
		return s.save(ctx, ownerID, model.KindName, model.NamePayload{Favorites: favorites})
	}

	record := latest[0]
	var payload model.NamePayload
	if err := json.Unmarshal(record.Payload, &payload); err != nil {
		return model.RecordView{}, fmt.Errorf("decode name payload: %w", err)
	}

	payload.Favorites = mergeUnique(payload.Favorites, favorites)

	raw, err := json.Marshal(payload)
	if err != nil {
		return model.RecordView{}, fmt.Errorf("encode name payload: %w", err)
	}
	record.Payload = raw
	record.UpdatedAt = time.Now().UTC()

	if err := s.records.UpdateForOwner(ctx, ownerID, record); err != nil {
		return model.RecordView{}, err
	}
	return view(record, payload), nil
}

func (s *RecordService) GenerateRecipes(ctx context.Context, ownerID string, req model.RecipeGenerateRequest) (model.RecordView, error) {
	recipes, err := care.GenerateRecipes(req.Criteria)
	if err != nil {
		return model.RecordView{}, err
	}

	return s.save(ctx, ownerID, model.KindRecipe, model.RecipePayload{
		Criteria: req.Criteria,
		Recipes:  recipes,
	})
}

func (s *RecordService) IdentifyBreed(ctx context.Context, ownerID string, imageURL string) (model.RecordView, error) {
	breed := care.IdentifyBreed()

	return s.save(ctx, ownerID, model.KindBreed, model.BreedPayload{
		ImageURL:   imageURL,
		Breed:      breed,
		Confidence: breed.Confidence,
	})
}

func (s *RecordService) IdentifyBreedManual(ctx context.Context, ownerID string, traits model.BreedTraits) (model.RecordView, error) {
	breed := care.MatchBreedByTraits(traits)

	return s.save(ctx, ownerID, model.KindBreed, model.BreedPayload{
		Breed:      breed,
		Confidence: breed.Confidence,
		Manual:     true,
		Traits:     traits,
	})
}

func (s *RecordService) Guides() []model.Guide {
	return care.Guides()
}

func (s *RecordService) TrackGuideDownload(ctx context.Context, ownerID string, guideID string, deviceType string) (model.RecordView, error) {
	guide, ok := care.FindGuide(guideID)
	if !ok {
		return model.RecordView{}, apierror.NotFound("guide not found")
	}

	return s.save(ctx, ownerID, model.KindGuide, model.GuidePayload{
		GuideID:    guide.ID,
		GuideTitle: guide.Title,
		DeviceType: deviceType,
	})
}

func (s *RecordService) GenerateChart(ctx context.Context, ownerID string, req model.ChartGenerateRequest) (model.RecordView, error) {
	if !model.IsValidChartType(req.ChartType) {
		return model.RecordView{}, apierror.Validation("unknown chart type", "chart_type")
	}

	return s.save(ctx, ownerID, model.KindChart, model.ChartPayload{
		ChartType: req.ChartType,
		Data:      req.Data,
	})
}

// Dashboard aggregates the owner's most recent records per service.
func (s *RecordService) Dashboard(ctx context.Context, ownerID string) (model.DashboardData, error) {
	ages, err := s.history(ctx, ownerID, model.KindAge, dashboardAgeLimit)
	if err != nil {
		return model.DashboardData{}, err
	}
	weights, err := s.history(ctx, ownerID, model.KindWeight, dashboardWeightLimit)
	if err != nil {
		return model.DashboardData{}, err
	}
	recipes, err := s.history(ctx, ownerID, model.KindRecipe, dashboardRecipeLimit)
	if err != nil {
		return model.DashboardData{}, err
	}
	names, err := s.history(ctx, ownerID, model.KindName, dashboardNameLimit)
	if err != nil {
		return model.DashboardData{}, err
	}

	return model.DashboardData{
		AgeCalculations: ages,
		WeightRecords:   weights,
		RecipeRecords:   recipes,
		NameRecords:     names,
	}, nil
}

// UpdateRecord recomputes and replaces an age or weight record. Only
// those two kinds are recalculable from caller input.
func (s *RecordService) UpdateRecord(ctx context.Context, ownerID string, serviceType string, recordID string, body json.RawMessage) (model.RecordView, error) {
	kind, ok := dashboardKinds[serviceType]
	if !ok || (kind != model.KindAge && kind != model.KindWeight) {
		return model.RecordView{}, apierror.Validation("invalid service type for update", "service_type")
	}

	record, err := s.records.GetByIDForOwner(ctx, ownerID, kind, recordID)
	if err != nil {
		return model.RecordView{}, err
	}

	var payload any
	switch kind {
	case model.KindAge:
		var req model.AgeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return model.RecordView{}, apierror.Validation("invalid JSON body")
		}
		payload, err = care.Age(req)
	case model.KindWeight:
		var req model.WeightRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return model.RecordView{}, apierror.Validation("invalid JSON body")
		}
		payload, err = care.Weight(req)
	}
	if err != nil {
		return model.RecordView{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return model.RecordView{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	record.Payload = raw
	record.UpdatedAt = time.Now().UTC()

	if err := s.records.UpdateForOwner(ctx, ownerID, record); err != nil {
		return model.RecordView{}, err
	}
	return view(record, payload), nil
}

func (s *RecordService) DeleteRecord(ctx context.Context, ownerID string, serviceType string, recordID string) error {
	kind, ok := dashboardKinds[serviceType]
	if !ok {
		return apierror.Validation("invalid service type", "service_type")
	}

	return s.records.DeleteForOwner(ctx, ownerID, kind, recordID)
}

func (s *RecordService) save(ctx context.Context, ownerID string, kind model.RecordKind, payload any) (model.RecordView, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return model.RecordView{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	now := time.Now().UTC()
	record := model.ServiceRecord{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Kind:      kind,
		Payload:   raw,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.records.Create(ctx, record); err != nil {
		return model.RecordView{}, fmt.Errorf("save %s record: %w", kind, err)
	}
	return view(record, payload), nil
}

func (s *RecordService) history(ctx context.Context, ownerID string, kind model.RecordKind, limit int) ([]model.RecordView, error) {
	records, err := s.records.ListByOwner(ctx, ownerID, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", kind, err)
	}

	views := make([]model.RecordView, 0, len(records))
	for _, record := range records {
		payload, err := decodePayload(record)
		if err != nil {
			return nil, err
		}
		views = append(views, view(record, payload))
	}
	return views, nil
}

func decodePayload(record model.ServiceRecord) (any, error) {
	var payload any
	switch record.Kind {
	case model.KindAge:
		payload = &model.AgePayload{}
	case model.KindWeight:
		payload = &model.WeightPayload{}
	case model.KindBreed:
		payload = &model.BreedPayload{}
	case model.KindRecipe:
		payload = &model.RecipePayload{}
	case model.KindName:
		payload = &model.NamePayload{}
	case model.KindGuide:
		payload = &model.GuidePayload{}
	case model.KindChart:
		payload = &model.ChartPayload{}
	default:
		payload = &map[string]any{}
	}

	if err := json.Unmarshal(record.Payload, payload); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", record.Kind, err)
	}
	return payload, nil
}

func view(record model.ServiceRecord, payload any) model.RecordView {
	return model.RecordView{
		ID:        record.ID,
		Kind:      string(record.Kind),
		CreatedAt: record.CreatedAt,
		Payload:   payload,
	}
}

func mergeUnique(existing []string, extra []string) []string {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]string, 0, len(existing)+len(extra))
	for _, s := range existing {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	for _, s := range extra {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	return merged
}
