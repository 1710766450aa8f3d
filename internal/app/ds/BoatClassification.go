package ds

// BoatClassification - связь м-м лодки и классификации.
// Составной первичный ключ: пара (boat_id, classification_id) встречается один раз.
type BoatClassification struct {
	BoatID           uint `gorm:"primaryKey;column:boat_id"`
	ClassificationID uint `gorm:"primaryKey;column:classification_id"`
}

func (BoatClassification) TableName() string {
	return "boat_classifications"
}
