package application

import "github.com/SSebia/adsite-cli/internal/domain"

// CategoryStore is the session-local collection of categories. It populates
// selection and resolves a listing's category name after a rename.
type CategoryStore struct {
	categories []domain.Category
}

func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

func (s *CategoryStore) Load(categories []domain.Category) {
	s.categories = make([]domain.Category, len(categories))
	copy(s.categories, categories)
}

func (s *CategoryStore) Insert(category domain.Category) {
	s.categories = append(s.categories, category)
}

// Replace renames the category with the given id and reports whether it was
// found.
func (s *CategoryStore) Replace(id domain.CategoryID, name string) bool {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].Name = name
			return true
		}
	}
	return false
}

func (s *CategoryStore) Remove(id domain.CategoryID) {
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}

func (s *CategoryStore) Get(id domain.CategoryID) (domain.Category, bool) {
	for _, category := range s.categories {
		if category.ID == id {
			return category, true
		}
	}
	return domain.Category{}, false
}

// NameOf resolves a category id to its current name.
func (s *CategoryStore) NameOf(id domain.CategoryID) (string, bool) {
	category, ok := s.Get(id)
	return category.Name, ok
}

func (s *CategoryStore) All() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}
