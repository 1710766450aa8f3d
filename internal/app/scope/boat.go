// Package scope - именованные gorm-скоупы по таблице boats.
//
// Скоуп только добавляет условия в запрос, выполняется он в Find/Pluck.
// Колонки всегда с именем таблицы, чтобы скоупы с join сочетались с остальными.
package scope

import (
	"boatyard/internal/app/ds"

	"gorm.io/gorm"
)

const (
	FirstFiveLimit      = 5
	DinghyMaxLength     = 20 // длина < 20 - шлюпка, >= 20 - судно
	LastThreeLimit      = 3
	ClassificationCount = 3
)

// FirstFive - первые 5 лодок в порядке хранилища
func FirstFive(db *gorm.DB) *gorm.DB {
	return db.Limit(FirstFiveLimit)
}

// Dinghy - лодки короче 20. NULL-длина не попадает ни сюда, ни в Ship.
func Dinghy(db *gorm.DB) *gorm.DB {
	return db.Where("boats.length < ?", DinghyMaxLength)
}

// Ship - лодки длиной от 20 включительно
func Ship(db *gorm.DB) *gorm.DB {
	return db.Where("boats.length >= ?", DinghyMaxLength)
}

// LastThreeAlphabetically - три последние лодки по имени (Z-A)
func LastThreeAlphabetically(db *gorm.DB) *gorm.DB {
	return db.Order("boats.name DESC").Limit(LastThreeLimit)
}

// WithoutACaptain - лодки без капитана
func WithoutACaptain(db *gorm.DB) *gorm.DB {
	return db.Where("boats.captain_id IS NULL")
}

// Sailboats - лодки хотя бы с одной классификацией "Sailboat".
// Фильтр через подзапрос по таблице связи: лодка в выборке один раз.
func Sailboats(db *gorm.DB) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).
		Model(&ds.BoatClassification{}).
		Select("boat_classifications.boat_id").
		Joins("JOIN classifications ON classifications.id = boat_classifications.classification_id").
		Where("classifications.name = ?", ds.SailboatClassification)
	return db.Where("boats.id IN (?)", sub)
}

// WithThreeClassifications - лодки ровно с тремя строками в таблице связи.
// При join gorm сам выбирает колонки boats с префиксом таблицы.
func WithThreeClassifications(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN boat_classifications ON boat_classifications.boat_id = boats.id").
		Joins("JOIN classifications ON classifications.id = boat_classifications.classification_id").
		Group("boats.id").
		Having("COUNT(*) = ?", ClassificationCount)
}

// IDNotIn - исключить лодки по id. Пустой список ничего не исключает.
func IDNotIn(ids []uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		return db.Where("boats.id NOT IN ?", ids)
	}
}

// Longest - одна лодка с наибольшей длиной. Без длины не учитываются,
// при равной длине - меньший id.
func Longest(db *gorm.DB) *gorm.DB {
	return db.
		Where("boats.length IS NOT NULL").
		Order("boats.length DESC").
		Order("boats.id").
		Limit(1)
}
