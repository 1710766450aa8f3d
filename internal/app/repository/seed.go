package repository

import (
	"context"
	"fmt"

	"boatyard/internal/app/ds"

	"gorm.io/gorm"
)

// Fleet - набор данных для начального заполнения базы
type Fleet struct {
	Captains        []ds.Captain
	Classifications []ds.Classification
	Boats           []SeedBoat
}

// SeedBoat - лодка с именами капитана и классификаций
type SeedBoat struct {
	Name            string
	Length          *float64
	Captain         string
	Classifications []string
}

// Seed - заполнение базы в одной транзакции. Используется командой migrate -seed и тестами.
func (r *Repository) Seed(ctx context.Context, fleet Fleet) error {
	if err := fleet.validate(); err != nil {
		return err
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		captains := map[string]uint{}
		for i := range fleet.Captains {
			if err := tx.Create(&fleet.Captains[i]).Error; err != nil {
				return err
			}
			captains[fleet.Captains[i].Name] = fleet.Captains[i].ID
		}
		classifications := map[string]uint{}
		for i := range fleet.Classifications {
			if err := tx.Create(&fleet.Classifications[i]).Error; err != nil {
				return err
			}
			classifications[fleet.Classifications[i].Name] = fleet.Classifications[i].ID
		}
		for _, sb := range fleet.Boats {
			boat := ds.Boat{Name: sb.Name, Length: sb.Length}
			if sb.Captain != "" {
				id := captains[sb.Captain]
				boat.CaptainID = &id
			}
			if err := tx.Omit("Captain", "Classifications").Create(&boat).Error; err != nil {
				return err
			}
			for _, name := range sb.Classifications {
				link := ds.BoatClassification{BoatID: boat.ID, ClassificationID: classifications[name]}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return storageErr(err)
}

func (f Fleet) validate() error {
	captains := map[string]bool{}
	for _, c := range f.Captains {
		captains[c.Name] = true
	}
	classifications := map[string]bool{}
	for _, c := range f.Classifications {
		classifications[c.Name] = true
	}
	for _, b := range f.Boats {
		if b.Captain != "" && !captains[b.Captain] {
			return fmt.Errorf("boat %q: unknown captain %q", b.Name, b.Captain)
		}
		for _, name := range b.Classifications {
			if !classifications[name] {
				return fmt.Errorf("boat %q: unknown classification %q", b.Name, name)
			}
		}
	}
	return nil
}

// Float - указатель на длину для литералов
func Float(v float64) *float64 {
	return &v
}

// DefaultFleet - демонстрационный флот
func DefaultFleet() Fleet {
	return Fleet{
		Captains: []ds.Captain{
			{Name: "Captain Cook"},
			{Name: "Captain Kidd"},
			{Name: "Captain Jack Sparrow"},
			{Name: "Captain Ahab"},
		},
		Classifications: []ds.Classification{
			{Name: "Sailboat"},
			{Name: "Catamaran"},
			{Name: "Motorboat"},
			{Name: "Trawler"},
			{Name: "Ketch"},
			{Name: "Sloop"},
			{Name: "RIB"},
		},
		Boats: []SeedBoat{
			{Name: "H 28", Length: Float(27), Captain: "Captain Cook", Classifications: []string{"Sailboat", "Ketch"}},
			{Name: "Nacra 17", Length: Float(17), Captain: "Captain Kidd", Classifications: []string{"Sailboat", "Catamaran"}},
			{Name: "Regulator 34SS", Length: Float(34), Captain: "Captain Jack Sparrow", Classifications: []string{"Motorboat"}},
			{Name: "Zodiac CZ7", Length: Float(23), Classifications: []string{"Motorboat", "RIB"}},
			{Name: "Sunfish", Length: Float(14), Captain: "Captain Kidd", Classifications: []string{"Sailboat"}},
			{Name: "Laser", Length: Float(13), Classifications: []string{"Sailboat", "Sloop", "Catamaran"}},
			{Name: "Pequod", Length: Float(68), Captain: "Captain Ahab", Classifications: []string{"Sailboat", "Ketch", "Trawler"}},
			{Name: "Harpoon 4.7", Length: Float(15), Captain: "Captain Cook", Classifications: []string{"Sailboat"}},
			{Name: "Boston Whaler", Length: Float(20), Classifications: []string{"Motorboat"}},
			{Name: "Unmeasured Dory"},
		},
	}
}
