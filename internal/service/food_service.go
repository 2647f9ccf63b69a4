package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/dto"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/model"
	"github.com/dadinjaenudin/FoodBeverages-CMS/internal/repository"
)

// FoodService defines business operations for food items.
type FoodService interface {
	Create(ctx context.Context, req dto.CreateFoodRequest) (*dto.FoodResponse, error)
	List(ctx context.Context) ([]dto.FoodResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateFoodRequest) (*dto.FoodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodService struct {
	repo       repository.FoodRepository
	categories repository.CategoryRepository
}

func NewFoodService(repo repository.FoodRepository, categories repository.CategoryRepository) FoodService {
	return &foodService{repo: repo, categories: categories}
}

// mapFood converts a model to a response, populating the category reference
// to {id, name}. Name stays empty for dangling references.
func mapFood(f model.Food, names map[uuid.UUID]string) dto.FoodResponse {
	return dto.FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    dto.CategoryRef{ID: f.CategoryID, Name: names[f.CategoryID]},
		Image:       f.Image,
		Ingredients: f.Ingredients,
		Allergens:   f.Allergens,
		Nutrition:   f.Nutrition,
		IsAvailable: f.IsAvailable,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func (s *foodService) categoryNames(ctx context.Context) (map[uuid.UUID]string, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(list))
	for _, c := range list {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *foodService) Create(ctx context.Context, req dto.CreateFoodRequest) (*dto.FoodResponse, error) {
	// The category id is stored verbatim — no existence check, by contract.
	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return nil, errors.New("Category must be a valid id")
	}

	f := &model.Food{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		CategoryID:  categoryID,
		Image:       req.Image,
		Ingredients: emptyIfNil(req.Ingredients),
		Allergens:   emptyIfNil(req.Allergens),
		Nutrition:   req.Nutrition,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		f.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	resp := mapFood(*f, names)
	return &resp, nil
}

func (s *foodService) List(ctx context.Context) ([]dto.FoodResponse, error) {
	foods, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FoodResponse, 0, len(foods))
	for _, f := range foods {
		result = append(result, mapFood(f, names))
	}
	return result, nil
}

func (s *foodService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FoodResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	resp := mapFood(*f, names)
	return &resp, nil
}

func (s *foodService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFoodRequest) (*dto.FoodResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	// Partial merge: only fields present in the payload change.
	if req.Name != nil {
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		f.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		f.Price = *req.Price
	}
	if req.Category != nil {
		categoryID, err := uuid.Parse(*req.Category)
		if err != nil {
			return nil, errors.New("Category must be a valid id")
		}
		f.CategoryID = categoryID
	}
	if req.Image != nil {
		f.Image = req.Image
	}
	if req.Ingredients != nil {
		f.Ingredients = req.Ingredients
	}
	if req.Allergens != nil {
		f.Allergens = req.Allergens
	}
	if req.Nutrition != nil {
		f.Nutrition = req.Nutrition
	}
	if req.IsAvailable != nil {
		f.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	resp := mapFood(*f, names)
	return &resp, nil
}

func (s *foodService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
