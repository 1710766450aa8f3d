package repository

import (
	"context"

	"boatyard/internal/app/ds"
)

func (r *Repository) GetBoats(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).WithCaptain().Find()
}

func (r *Repository) GetBoat(ctx context.Context, id uint) (ds.Boat, error) {
	boat := ds.Boat{}
	err := r.db.WithContext(ctx).
		Preload(AssocCaptain).
		Preload(AssocClassifications).
		Where("boats.id = ?", id).
		First(&boat).Error
	if err != nil {
		if isNotFound(err) {
			return ds.Boat{}, ErrBoatNotFound
		}
		return ds.Boat{}, storageErr(err)
	}
	return boat, nil
}

// FirstFive - не более 5 лодок
func (r *Repository) FirstFive(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).FirstFive().Find()
}

// Dinghies - лодки короче 20
func (r *Repository) Dinghies(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).Dinghy().Find()
}

// Ships - лодки от 20 и длиннее
func (r *Repository) Ships(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).Ship().Find()
}

// LastThreeAlphabetically - три лодки по имени Z-A
func (r *Repository) LastThreeAlphabetically(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).LastThreeAlphabetically().Find()
}

// WithoutACaptain - лодки без капитана
func (r *Repository) WithoutACaptain(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).WithoutACaptain().Find()
}

// Sailboats - парусники с подгруженными классификациями
func (r *Repository) Sailboats(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).Sailboats().Find()
}

// WithThreeClassifications - лодки ровно с тремя классификациями
func (r *Repository) WithThreeClassifications(ctx context.Context) ([]ds.Boat, error) {
	return r.Boats(ctx).WithThreeClassifications().Find()
}

// NonSailboats - все лодки, кроме парусников
func (r *Repository) NonSailboats(ctx context.Context) ([]ds.Boat, error) {
	q, err := r.Boats(ctx).NonSailboats()
	if err != nil {
		return nil, err
	}
	return q.Find()
}

// Longest - самая длинная лодка, nil если лодок нет
func (r *Repository) Longest(ctx context.Context) (*ds.Boat, error) {
	return r.Boats(ctx).Longest()
}
