package postgres

import (
	"context"
	"errors"

	entityDomain "ams-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type EntityRepository struct{ db *gorm.DB }

func NewEntityRepository(db *gorm.DB) *EntityRepository { return &EntityRepository{db: db} }

func (r *EntityRepository) GetByID(ctx context.Context, entityID uint64) (*entityDomain.Record, error) {
	var base entityDomain.Entity
	res := r.db.WithContext(ctx).Where("entity_id = ?", entityID).First(&base)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entityDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return r.resolve(ctx, &base)
}

func (r *EntityRepository) GetIncarceratedByDOC(ctx context.Context, docNumber string) (*entityDomain.Record, error) {
	var inc entityDomain.Incarcerated
	res := r.db.WithContext(ctx).Where("doc_number = ?", docNumber).First(&inc)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, entityDomain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}

	var base entityDomain.Entity
	if err := r.db.WithContext(ctx).Where("entity_id = ?", inc.EntityID).First(&base).Error; err != nil {
		return nil, err
	}

	rec := &entityDomain.Record{Entity: base, Incarcerated: &inc}
	var user entityDomain.User
	if err := r.db.WithContext(ctx).Where("entity_id = ?", inc.EntityID).First(&user).Error; err == nil {
		rec.User = &user
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return rec, nil
}

// resolve loads the variant payload matching the base row's type.
func (r *EntityRepository) resolve(ctx context.Context, base *entityDomain.Entity) (*entityDomain.Record, error) {
	rec := &entityDomain.Record{Entity: *base}

	switch base.EntityType {
	case entityDomain.TypeIncarcerated:
		var inc entityDomain.Incarcerated
		if err := r.db.WithContext(ctx).Where("entity_id = ?", base.EntityID).First(&inc).Error; err != nil {
			return nil, err
		}
		rec.Incarcerated = &inc
	case entityDomain.TypeEmployee:
		var emp entityDomain.Employee
		if err := r.db.WithContext(ctx).Where("entity_id = ?", base.EntityID).First(&emp).Error; err != nil {
			return nil, err
		}
		rec.Employee = &emp
	case entityDomain.TypeLocation:
		var loc entityDomain.Location
		if err := r.db.WithContext(ctx).Where("entity_id = ?", base.EntityID).First(&loc).Error; err != nil {
			return nil, err
		}
		rec.Location = &loc
		return rec, nil
	default:
		return nil, entityDomain.ErrNotFound
	}

	var user entityDomain.User
	if err := r.db.WithContext(ctx).Where("entity_id = ?", base.EntityID).First(&user).Error; err == nil {
		rec.User = &user
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return rec, nil
}
