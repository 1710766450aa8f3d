package repository

import (
	"context"

	"boatyard/internal/app/ds"
	"boatyard/internal/app/scope"

	"gorm.io/gorm"
)

// Ассоциации для подгрузки
const (
	AssocCaptain         = "Captain"
	AssocClassifications = "Classifications"
)

// BoatQuery - ленивый запрос по лодкам. Билдеры возвращают новый BoatQuery
// и не обращаются к БД, выполняют запрос Find, IDs, Count и Longest.
// Нулевое значение не используется, начинать с Repository.Boats.
//
// Preload хранится отдельно и применяется только при выборке лодок целиком:
// один дополнительный запрос на ассоциацию для всей выборки.
type BoatQuery struct {
	db       *gorm.DB
	preloads []string
}

// Boats - начальный запрос по всем лодкам
func (r *Repository) Boats(ctx context.Context) BoatQuery {
	return BoatQuery{db: r.db.WithContext(ctx).Model(&ds.Boat{}).Session(&gorm.Session{})}
}

// Scopes - применить произвольные gorm-скоупы
func (q BoatQuery) Scopes(funcs ...func(*gorm.DB) *gorm.DB) BoatQuery {
	// Session делает цепочку переиспользуемой: каждый билдер клонирует Statement
	return BoatQuery{db: q.db.Scopes(funcs...).Session(&gorm.Session{}), preloads: q.preloads}
}

// Preload - подгрузить ассоциацию при выполнении
func (q BoatQuery) Preload(assoc string) BoatQuery {
	for _, p := range q.preloads {
		if p == assoc {
			return q
		}
	}
	preloads := make([]string, 0, len(q.preloads)+1)
	preloads = append(preloads, q.preloads...)
	return BoatQuery{db: q.db, preloads: append(preloads, assoc)}
}

func (q BoatQuery) FirstFive() BoatQuery {
	return q.Scopes(scope.FirstFive)
}

func (q BoatQuery) Dinghy() BoatQuery {
	return q.Scopes(scope.Dinghy)
}

func (q BoatQuery) Ship() BoatQuery {
	return q.Scopes(scope.Ship)
}

func (q BoatQuery) LastThreeAlphabetically() BoatQuery {
	return q.Scopes(scope.LastThreeAlphabetically)
}

func (q BoatQuery) WithoutACaptain() BoatQuery {
	return q.Scopes(scope.WithoutACaptain)
}

// Sailboats - парусники с подгрузкой классификаций
func (q BoatQuery) Sailboats() BoatQuery {
	return q.Scopes(scope.Sailboats).Preload(AssocClassifications)
}

func (q BoatQuery) WithThreeClassifications() BoatQuery {
	return q.Scopes(scope.WithThreeClassifications)
}

func (q BoatQuery) WithCaptain() BoatQuery {
	return q.Preload(AssocCaptain)
}

func (q BoatQuery) WithClassifications() BoatQuery {
	return q.Preload(AssocClassifications)
}

// Excluding - исключить лодки с данными id
func (q BoatQuery) Excluding(ids []uint) BoatQuery {
	return q.Scopes(scope.IDNotIn(ids))
}

// NonSailboats - в два прохода: сначала id парусников (один запрос),
// затем ленивый запрос без них.
func (q BoatQuery) NonSailboats() (BoatQuery, error) {
	var ids []uint
	err := q.db.Session(&gorm.Session{NewDB: true}).
		Model(&ds.Boat{}).
		Scopes(scope.Sailboats).
		Pluck("boats.id", &ids).Error
	if err != nil {
		return BoatQuery{}, storageErr(err)
	}
	return q.Excluding(ids), nil
}

// Find - выполнить запрос
func (q BoatQuery) Find() ([]ds.Boat, error) {
	boats := []ds.Boat{}
	if err := q.withPreloads().Find(&boats).Error; err != nil {
		return nil, storageErr(err)
	}
	return boats, nil
}

// IDs - только идентификаторы, в порядке запроса
func (q BoatQuery) IDs() ([]uint, error) {
	ids := []uint{}
	if err := q.db.Pluck("boats.id", &ids).Error; err != nil {
		return nil, storageErr(err)
	}
	return ids, nil
}

// Count - число лодок в выборке (с учетом limit и group)
func (q BoatQuery) Count() (int64, error) {
	ids, err := q.IDs()
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

// Longest - самая длинная лодка выборки, nil если выборка пуста
func (q BoatQuery) Longest() (*ds.Boat, error) {
	var boats []ds.Boat
	if err := q.withPreloads().Scopes(scope.Longest).Find(&boats).Error; err != nil {
		return nil, storageErr(err)
	}
	if len(boats) == 0 {
		return nil, nil
	}
	return &boats[0], nil
}

func (q BoatQuery) withPreloads() *gorm.DB {
	tx := q.db
	for _, p := range q.preloads {
		tx = tx.Preload(p)
	}
	return tx
}
