package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
)

var (
	ErrCompareListFull = errors.New("compare list already holds the maximum number of products")

	// ErrCompareCategoryMismatch rejects cross-category comparisons; a
	// side-by-side table of a phone and a fridge is meaningless.
	ErrCompareCategoryMismatch = errors.New("product belongs to a different category than the compared products")
)

type CompareService struct {
	compareRepo repositories.CompareRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewCompareService(compareRepo repositories.CompareRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CompareService {
	return &CompareService{
		compareRepo: compareRepo,
		productRepo: productRepo,
	}
}

func (s *CompareService) Add(ctx context.Context, userID, productID string) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	existing, err := s.compareRepo.Find(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to check compare entry: %w", err)
	}
	if existing != nil {
		return nil
	}

	entries, err := s.compareRepo.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load compare list: %w", err)
	}
	if len(entries) >= models.MaxCompareItems {
		return ErrCompareListFull
	}
	if len(entries) > 0 && entries[0].Product.CategoryID != product.CategoryID {
		return ErrCompareCategoryMismatch
	}

	entry := &models.CompareItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.compareRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to add compare entry: %w", err)
	}
	return nil
}

func (s *CompareService) Remove(ctx context.Context, userID, productID string) error {
	return s.compareRepo.Delete(ctx, userID, productID)
}

func (s *CompareService) Clear(ctx context.Context, userID string) error {
	return s.compareRepo.Clear(ctx, userID)
}

// SpecRow is one line of the comparison table: a spec name and the value each
// compared product reports for it, in compare-list order. HasDifferences is
// true when the products disagree.
type SpecRow struct {
	Name           string   `json:"name"`
	Values         []string `json:"values"`
	HasDifferences bool     `json:"hasDifferences"`
}

type SpecGroup struct {
	GroupName string    `json:"groupName"`
	Rows      []SpecRow `json:"rows"`
}

type Comparison struct {
	Products []models.Product `json:"products"`
	Groups   []SpecGroup      `json:"groups"`
}

func (s *CompareService) GetComparison(ctx context.Context, userID string) (*Comparison, error) {
	entries, err := s.compareRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load compare list: %w", err)
	}

	products := make([]models.Product, 0, len(entries))
	for _, entry := range entries {
		products = append(products, entry.Product)
	}

	return &Comparison{
		Products: products,
		Groups:   buildSpecGroups(products),
	}, nil
}

func buildSpecGroups(products []models.Product) []SpecGroup {
	type rowKey struct {
		group string
		name  string
	}

	values := make(map[rowKey][]string)
	groupOrder := []string{}
	rowOrder := make(map[string][]string)

	for i, product := range products {
		for _, spec := range product.Specifications {
			key := rowKey{group: spec.GroupName, name: spec.Name}
			if _, seen := values[key]; !seen {
				values[key] = make([]string, len(products))
				if _, ok := rowOrder[spec.GroupName]; !ok {
					groupOrder = append(groupOrder, spec.GroupName)
				}
				rowOrder[spec.GroupName] = append(rowOrder[spec.GroupName], spec.Name)
			}
			values[key][i] = spec.Value
		}
	}
	sort.Strings(groupOrder)

	groups := make([]SpecGroup, 0, len(groupOrder))
	for _, groupName := range groupOrder {
		group := SpecGroup{GroupName: groupName}
		for _, name := range rowOrder[groupName] {
			vals := values[rowKey{group: groupName, name: name}]
			group.Rows = append(group.Rows, SpecRow{
				Name:           name,
				Values:         vals,
				HasDifferences: hasDistinctValues(vals),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

func hasDistinctValues(values []string) bool {
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	return len(distinct) > 1
}
