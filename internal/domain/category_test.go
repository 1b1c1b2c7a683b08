package domain

import (
	"errors"
	"testing"
)

func TestNewCategory(t *testing.T) {
	cat, err := NewCategory(7, " Спорт ", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cat.Name != "Спорт" {
		t.Errorf("Expected trimmed name %q, got %q", "Спорт", cat.Name)
	}
	if cat.UserID != 7 {
		t.Errorf("Expected user ID 7, got %d", cat.UserID)
	}
	if cat.Color != DefaultCategoryColor {
		t.Errorf("Expected default color, got %q", cat.Color)
	}

	cat, err = NewCategory(7, "Спорт", "bg-red-500")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cat.Color != "bg-red-500" {
		t.Errorf("Expected explicit color to be kept, got %q", cat.Color)
	}

	_, err = NewCategory(7, "   ", "")
	if !errors.Is(err, ErrEmptyCategoryName) {
		t.Errorf("Expected error %v, got %v", ErrEmptyCategoryName, err)
	}
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories(42)

	if len(categories) != 4 {
		t.Fatalf("Expected 4 default categories, got %d", len(categories))
	}

	expectedNames := []string{"Животные", "Еда", "Путешествия", "Работа"}
	for i, cat := range categories {
		if cat.Name != expectedNames[i] {
			t.Errorf("Expected category %q at index %d, got %q", expectedNames[i], i, cat.Name)
		}
		if cat.UserID != 42 {
			t.Errorf("Expected owner 42, got %d", cat.UserID)
		}
		if cat.Color == "" {
			t.Errorf("Expected a color for %q", cat.Name)
		}
		if err := cat.Validate(); err != nil {
			t.Errorf("Expected default category %q to be valid, got %v", cat.Name, err)
		}
	}
}
