// Package catchlog contains catch logging use cases.
package catchlog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fishmate/backend/internal/application/adapter"
	"github.com/fishmate/backend/internal/domain/entity"
	domainerror "github.com/fishmate/backend/internal/domain/error"
)

// fakeCatchRepository is an in-memory CatchRepository for use case tests.
type fakeCatchRepository struct {
	catches map[uuid.UUID]*entity.Catch
	err     error
	deleted []uuid.UUID
}

func newFakeCatchRepository() *fakeCatchRepository {
	return &fakeCatchRepository{catches: make(map[uuid.UUID]*entity.Catch)}
}

func (f *fakeCatchRepository) Create(ctx context.Context, c *entity.Catch) error {
	if f.err != nil {
		return f.err
	}
	f.catches[c.ID] = c
	return nil
}

func (f *fakeCatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Catch, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.catches[id]
	if !ok {
		return nil, domainerror.ErrCatchNotFound
	}
	return c, nil
}

func (f *fakeCatchRepository) FindByFilter(ctx context.Context, filter adapter.CatchFilter, pagination adapter.CatchPagination) (*entity.CatchListResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	catches := make([]*entity.Catch, 0, len(f.catches))
	for _, c := range f.catches {
		catches = append(catches, c)
	}
	return &entity.CatchListResult{
		Catches:    catches,
		Total:      int64(len(catches)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (f *fakeCatchRepository) Update(ctx context.Context, c *entity.Catch) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.catches[c.ID]; !ok {
		return domainerror.ErrCatchNotFound
	}
	f.catches[c.ID] = c
	return nil
}

func (f *fakeCatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.catches[id]; !ok {
		return domainerror.ErrCatchNotFound
	}
	delete(f.catches, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func validCreateInput(userID uuid.UUID) CreateCatchInput {
	return CreateCatchInput{
		UserID:     userID,
		Species:    "Rohu",
		Quantity:   3,
		WeightKg:   decimal.NewFromFloat(4.5),
		TotalPrice: decimal.NewFromInt(600),
	}
}

func TestCreateCatchUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists a valid catch", func(t *testing.T) {
		repo := newFakeCatchRepository()
		uc := NewCreateCatchUseCase(repo)

		output, err := uc.Execute(ctx, validCreateInput(userID))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.Catch.Species != "Rohu" {
			t.Errorf("expected species Rohu, got %s", output.Catch.Species)
		}
		if output.Catch.ID == uuid.Nil {
			t.Error("expected a generated catch id")
		}
		if len(repo.catches) != 1 {
			t.Errorf("expected 1 persisted catch, got %d", len(repo.catches))
		}
	})

	t.Run("trims species whitespace before validating", func(t *testing.T) {
		repo := newFakeCatchRepository()
		uc := NewCreateCatchUseCase(repo)

		input := validCreateInput(userID)
		input.Species = "  Catla  "

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Catch.Species != "Catla" {
			t.Errorf("expected trimmed species Catla, got %q", output.Catch.Species)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		longSpecies := make([]byte, MaxSpeciesLength+1)
		for i := range longSpecies {
			longSpecies[i] = 'a'
		}
		lat := 10.0

		tests := []struct {
			name     string
			mutate   func(*CreateCatchInput)
			wantCode domainerror.CatchErrorCode
		}{
			{
				name:     "empty species",
				mutate:   func(in *CreateCatchInput) { in.Species = "   " },
				wantCode: domainerror.ErrCodeSpeciesRequired,
			},
			{
				name:     "species too long",
				mutate:   func(in *CreateCatchInput) { in.Species = string(longSpecies) },
				wantCode: domainerror.ErrCodeSpeciesTooLong,
			},
			{
				name:     "zero quantity",
				mutate:   func(in *CreateCatchInput) { in.Quantity = 0 },
				wantCode: domainerror.ErrCodeInvalidQuantity,
			},
			{
				name:     "negative quantity",
				mutate:   func(in *CreateCatchInput) { in.Quantity = -2 },
				wantCode: domainerror.ErrCodeInvalidQuantity,
			},
			{
				name:     "negative weight",
				mutate:   func(in *CreateCatchInput) { in.WeightKg = decimal.NewFromFloat(-0.5) },
				wantCode: domainerror.ErrCodeNegativeWeight,
			},
			{
				name:     "negative price",
				mutate:   func(in *CreateCatchInput) { in.TotalPrice = decimal.NewFromInt(-10) },
				wantCode: domainerror.ErrCodeNegativePrice,
			},
			{
				name:     "latitude without longitude",
				mutate:   func(in *CreateCatchInput) { in.Latitude = &lat },
				wantCode: domainerror.ErrCodeInvalidCoordinates,
			},
			{
				name: "latitude out of range",
				mutate: func(in *CreateCatchInput) {
					bad := 91.0
					lon := 20.0
					in.Latitude = &bad
					in.Longitude = &lon
				},
				wantCode: domainerror.ErrCodeInvalidCoordinates,
			},
			{
				name: "longitude out of range",
				mutate: func(in *CreateCatchInput) {
					lat := 20.0
					bad := -181.0
					in.Latitude = &lat
					in.Longitude = &bad
				},
				wantCode: domainerror.ErrCodeInvalidCoordinates,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeCatchRepository()
				uc := NewCreateCatchUseCase(repo)

				input := validCreateInput(userID)
				tt.mutate(&input)

				_, err := uc.Execute(ctx, input)
				if err == nil {
					t.Fatal("expected a validation error")
				}

				var catchErr *domainerror.CatchError
				if !errors.As(err, &catchErr) {
					t.Fatalf("expected CatchError, got %T", err)
				}
				if catchErr.Code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, catchErr.Code)
				}
				if len(repo.catches) != 0 {
					t.Error("expected nothing persisted on validation failure")
				}
			})
		}
	})

	t.Run("zero weight and price are allowed", func(t *testing.T) {
		repo := newFakeCatchRepository()
		uc := NewCreateCatchUseCase(repo)

		input := validCreateInput(userID)
		input.WeightKg = decimal.Zero
		input.TotalPrice = decimal.Zero

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("expected no error for zero weight and price, got %v", err)
		}
	})

	t.Run("complete in-range coordinates are accepted", func(t *testing.T) {
		repo := newFakeCatchRepository()
		uc := NewCreateCatchUseCase(repo)

		lat, lon := 21.17, 72.83
		input := validCreateInput(userID)
		input.Latitude = &lat
		input.Longitude = &lon

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Catch.Latitude == nil || *output.Catch.Latitude != lat {
			t.Errorf("expected latitude %v, got %v", lat, output.Catch.Latitude)
		}
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		repo := newFakeCatchRepository()
		repo.err = errors.New("disk full")
		uc := NewCreateCatchUseCase(repo)

		_, err := uc.Execute(ctx, validCreateInput(userID))
		if err == nil {
			t.Fatal("expected an error when the repository fails")
		}
	})
}
