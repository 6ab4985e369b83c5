package repositories

import (
	"gorm.io/gorm"
)

// ResourceRepository is the CRUD surface shared by the CV, skill and about
// resources, which need nothing beyond ordered listing.
type ResourceRepository[T any] interface {
	List(scopes ...func(*gorm.DB) *gorm.DB) ([]T, error)
	Get(id uint) (*T, error)
	Create(item *T) error
	Save(item *T) error
	Replace(id uint, item *T) error
	Delete(id uint) error
}

// Store is a GORM-backed ResourceRepository
type Store[T any] struct {
	db    *gorm.DB
	order []string
}

// NewStore creates a Store listing rows in the given order clauses
func NewStore[T any](db *gorm.DB, order ...string) *Store[T] {
	if len(order) == 0 {
		order = []string{"id ASC"}
	}
	return &Store[T]{db: db, order: order}
}

func (s *Store[T]) List(scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	q := s.db.Model(new(T)).Scopes(scopes...)
	for _, o := range s.order {
		q = q.Order(o)
	}
	items := make([]T, 0)
	err := q.Find(&items).Error
	return items, err
}

func (s *Store[T]) Get(id uint) (*T, error) {
	item := new(T)
	if err := s.db.First(item, id).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store[T]) Create(item *T) error {
	return s.db.Create(item).Error
}

func (s *Store[T]) Save(item *T) error {
	return s.db.Save(item).Error
}

// Replace overwrites every column of row id with item, zero values
// included, keeping the row's id and created_at.
func (s *Store[T]) Replace(id uint, item *T) error {
	res := s.db.Model(new(T)).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store[T]) Delete(id uint) error {
	res := s.db.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActiveOnly restricts a listing to rows with is_active set
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
