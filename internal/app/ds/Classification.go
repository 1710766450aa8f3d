package ds

// SailboatClassification - имя классификации парусников
const SailboatClassification = "Sailboat"

// @Schema(description="Classification model, a named boat category")
type Classification struct {
	ID    uint   `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Boats []Boat `gorm:"many2many:boat_classifications;joinForeignKey:ClassificationID;joinReferences:BoatID" json:"boats,omitempty"`
}

func (Classification) TableName() string {
	return "classifications"
}
