package impl

import (
	"context"
	"sort"
	"testing"
	"time"

	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"
	"sapzurro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccommodationRepo struct {
	rows map[uuid.UUID]entity.Accommodation
}

func (r *fakeAccommodationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Accommodation, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrAccommodationNotFound
	}

	return &row, nil
}

func (r *fakeAccommodationRepo) List(_ context.Context, onlyActive bool) ([]*entity.Accommodation, error) {
	out := make([]*entity.Accommodation, 0, len(r.rows))
	for _, row := range r.rows {
		if onlyActive && !row.Status.IsActive() {
			continue
		}
		copied := row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeAccommodationRepo) Create(_ context.Context, accommodation *entity.Accommodation) error {
	accommodation.ID = uuid.New()
	accommodation.CreatedAt = time.Now()
	r.rows[accommodation.ID] = *accommodation

	return nil
}

func (r *fakeAccommodationRepo) Update(_ context.Context, accommodation *entity.Accommodation) error {
	if _, ok := r.rows[accommodation.ID]; !ok {
		return repository.ErrAccommodationNotFound
	}
	r.rows[accommodation.ID] = *accommodation

	return nil
}

func (r *fakeAccommodationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RecordStatus) error {
	row, ok := r.rows[id]
	if !ok {
		return repository.ErrAccommodationNotFound
	}
	row.Status = status
	r.rows[id] = row

	return nil
}

type fakeActivityRepo struct {
	activities map[uuid.UUID]entity.Activity
	types      map[uuid.UUID]entity.ActivityType
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Activity, error) {
	row, ok := r.activities[id]
	if !ok {
		return nil, repository.ErrActivityNotFound
	}

	return &row, nil
}

func (r *fakeActivityRepo) List(_ context.Context, onlyActive bool) ([]*entity.Activity, error) {
	out := make([]*entity.Activity, 0, len(r.activities))
	for _, row := range r.activities {
		if onlyActive && !row.Status.IsActive() {
			continue
		}
		copied := row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	activity.ID = uuid.New()
	activity.CreatedAt = time.Now()
	r.activities[activity.ID] = *activity

	return nil
}

func (r *fakeActivityRepo) Update(_ context.Context, activity *entity.Activity) error {
	if _, ok := r.activities[activity.ID]; !ok {
		return repository.ErrActivityNotFound
	}
	r.activities[activity.ID] = *activity

	return nil
}

func (r *fakeActivityRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RecordStatus) error {
	row, ok := r.activities[id]
	if !ok {
		return repository.ErrActivityNotFound
	}
	row.Status = status
	r.activities[id] = row

	return nil
}

func (r *fakeActivityRepo) FindTypeByID(_ context.Context, id uuid.UUID) (*entity.ActivityType, error) {
	row, ok := r.types[id]
	if !ok {
		return nil, repository.ErrActivityTypeNotFound
	}

	return &row, nil
}

func (r *fakeActivityRepo) ListTypes(_ context.Context, onlyActive bool) ([]*entity.ActivityType, error) {
	out := make([]*entity.ActivityType, 0, len(r.types))
	for _, row := range r.types {
		if onlyActive && !row.Status.IsActive() {
			continue
		}
		copied := row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeActivityRepo) CreateType(_ context.Context, activityType *entity.ActivityType) error {
	activityType.ID = uuid.New()
	activityType.CreatedAt = time.Now()
	r.types[activityType.ID] = *activityType

	return nil
}

func (r *fakeActivityRepo) UpdateType(_ context.Context, activityType *entity.ActivityType) error {
	if _, ok := r.types[activityType.ID]; !ok {
		return repository.ErrActivityTypeNotFound
	}
	r.types[activityType.ID] = *activityType

	return nil
}

func (r *fakeActivityRepo) UpdateTypeStatus(_ context.Context, id uuid.UUID, status entity.RecordStatus) error {
	row, ok := r.types[id]
	if !ok {
		return repository.ErrActivityTypeNotFound
	}
	row.Status = status
	r.types[id] = row

	return nil
}

type fakeTourRouteRepo struct {
	rows map[uuid.UUID]entity.TourRoute
}

func (r *fakeTourRouteRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TourRoute, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrTourRouteNotFound
	}

	return &row, nil
}

func (r *fakeTourRouteRepo) List(_ context.Context, onlyActive bool) ([]*entity.TourRoute, error) {
	out := make([]*entity.TourRoute, 0, len(r.rows))
	for _, row := range r.rows {
		if onlyActive && !row.Status.IsActive() {
			continue
		}
		copied := row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeTourRouteRepo) Create(_ context.Context, route *entity.TourRoute) error {
	route.ID = uuid.New()
	route.CreatedAt = time.Now()
	r.rows[route.ID] = *route

	return nil
}

func (r *fakeTourRouteRepo) Update(_ context.Context, route *entity.TourRoute) error {
	if _, ok := r.rows[route.ID]; !ok {
		return repository.ErrTourRouteNotFound
	}
	r.rows[route.ID] = *route

	return nil
}

func (r *fakeTourRouteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RecordStatus) error {
	row, ok := r.rows[id]
	if !ok {
		return repository.ErrTourRouteNotFound
	}
	row.Status = status
	r.rows[id] = row

	return nil
}

type catalogFixture struct {
	svc            usecase.CatalogUsecase
	accommodations *fakeAccommodationRepo
	activities     *fakeActivityRepo
	routes         *fakeTourRouteRepo
	store          *fakeStore
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	accommodations := &fakeAccommodationRepo{rows: make(map[uuid.UUID]entity.Accommodation)}
	activities := &fakeActivityRepo{
		activities: make(map[uuid.UUID]entity.Activity),
		types:      make(map[uuid.UUID]entity.ActivityType),
	}
	routes := &fakeTourRouteRepo{rows: make(map[uuid.UUID]entity.TourRoute)}

	store := newFakeStore()
	store.seedProfile(entity.ProfileUser)
	store.seedProfile(entity.ProfileAdministrator)

	svc := NewCatalogService(CatalogServiceParams{
		AccommodationRepo: accommodations,
		ActivityRepo:      activities,
		TourRouteRepo:     routes,
		ProfileRepo:       &fakeProfileRepo{store: store},
		Logger:            newDiscardLogger(),
	})

	return &catalogFixture{
		svc:            svc,
		accommodations: accommodations,
		activities:     activities,
		routes:         routes,
		store:          store,
	}
}

func (f *catalogFixture) seedActivityType(name string, status entity.RecordStatus) uuid.UUID {
	id := uuid.New()
	f.activities.types[id] = entity.ActivityType{ID: id, Name: name, Status: status}

	return id
}

func TestCatalogService_AccommodationLifecycle(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAccommodation(ctx, usecase.AccommodationInput{
		Name:     "Cabana Frente al Mar",
		Address:  "Playa principal",
		Capacity: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RecordStatusActive, created.Status)

	got, err := f.svc.GetAccommodation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cabana Frente al Mar", got.Name)

	updated, err := f.svc.UpdateAccommodation(ctx, created.ID, usecase.AccommodationInput{
		Name:     "Cabana Frente al Mar",
		Capacity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Capacity)

	require.NoError(t, f.svc.DeactivateAccommodation(ctx, created.ID))

	active, err := f.svc.ListAccommodations(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active, "deactivated rows must not appear in the active listing")

	all, err := f.svc.ListAccommodations(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, entity.RecordStatusInactive, all[0].Status)
}

func TestCatalogService_AccommodationValidationAndNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateAccommodation(ctx, usecase.AccommodationInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.svc.GetAccommodation(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = f.svc.DeactivateAccommodation(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_CreateActivityChecksType(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateActivity(ctx, usecase.ActivityInput{Name: "Buceo"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.svc.CreateActivity(ctx, usecase.ActivityInput{Name: "Buceo", ActivityTypeID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	inactiveType := f.seedActivityType("pesca", entity.RecordStatusInactive)
	_, err = f.svc.CreateActivity(ctx, usecase.ActivityInput{Name: "Pesca nocturna", ActivityTypeID: inactiveType})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	divingType := f.seedActivityType("buceo", entity.RecordStatusActive)
	activity, err := f.svc.CreateActivity(ctx, usecase.ActivityInput{
		Name:            "Buceo en arrecife",
		ActivityTypeID:  divingType,
		DurationMinutes: 120,
		Price:           250000,
	})
	require.NoError(t, err)
	assert.Equal(t, divingType, activity.ActivityTypeID)
	assert.Equal(t, entity.RecordStatusActive, activity.Status)
}

func TestCatalogService_UpdateActivityRevalidatesChangedType(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	divingType := f.seedActivityType("buceo", entity.RecordStatusActive)
	activity, err := f.svc.CreateActivity(ctx, usecase.ActivityInput{
		Name:           "Buceo en arrecife",
		ActivityTypeID: divingType,
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateActivity(ctx, activity.ID, usecase.ActivityInput{
		Name:           "Buceo en arrecife",
		ActivityTypeID: uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	hikingType := f.seedActivityType("senderismo", entity.RecordStatusActive)
	updated, err := f.svc.UpdateActivity(ctx, activity.ID, usecase.ActivityInput{
		Name:           "Caminata al mirador",
		ActivityTypeID: hikingType,
	})
	require.NoError(t, err)
	assert.Equal(t, hikingType, updated.ActivityTypeID)
	assert.Equal(t, "Caminata al mirador", updated.Name)
}

func TestCatalogService_DeactivateActivityHidesFromListing(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	divingType := f.seedActivityType("buceo", entity.RecordStatusActive)
	activity, err := f.svc.CreateActivity(ctx, usecase.ActivityInput{
		Name:           "Buceo en arrecife",
		ActivityTypeID: divingType,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeactivateActivity(ctx, activity.ID))

	active, err := f.svc.ListActivities(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestCatalogService_ActivityTypeLifecycle(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateActivityType(ctx, usecase.ActivityTypeInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	created, err := f.svc.CreateActivityType(ctx, usecase.ActivityTypeInput{Name: "gastronomia"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateActivityType(ctx, created.ID, usecase.ActivityTypeInput{
		Name:        "gastronomia",
		Description: "Cocina local",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cocina local", updated.Description)

	require.NoError(t, f.svc.DeactivateActivityType(ctx, created.ID))

	active, err := f.svc.ListActivityTypes(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	err = f.svc.DeactivateActivityType(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_TourRouteLifecycle(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateTourRoute(ctx, usecase.TourRouteInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	created, err := f.svc.CreateTourRoute(ctx, usecase.TourRouteInput{
		Name:            "Sendero a La Miel",
		DurationMinutes: 90,
		Difficulty:      "media",
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateTourRoute(ctx, created.ID, usecase.TourRouteInput{
		Name:            "Sendero a La Miel",
		DurationMinutes: 120,
		Difficulty:      "alta",
	})
	require.NoError(t, err)
	assert.Equal(t, "alta", updated.Difficulty)

	require.NoError(t, f.svc.DeactivateTourRoute(ctx, created.ID))

	active, err := f.svc.ListTourRoutes(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = f.svc.GetTourRoute(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_ListProfiles(t *testing.T) {
	f := newCatalogFixture(t)

	profiles, err := f.svc.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, entity.ProfileAdministrator, profiles[0].Name)
	assert.Equal(t, entity.ProfileUser, profiles[1].Name)
}
