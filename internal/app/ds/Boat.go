package ds

// @Schema(description="Boat model, optionally commanded by a captain and tagged with classifications")
type Boat struct {
	ID              uint             `gorm:"primaryKey;column:id" json:"id"`
	Name            string           `gorm:"column:name" json:"name"`
	Length          *float64         `gorm:"column:length" json:"length"` // NULL - длина неизвестна
	CaptainID       *uint            `gorm:"column:captain_id;index" json:"captain_id"`
	Captain         *Captain         `gorm:"foreignKey:CaptainID;constraint:OnDelete:SET NULL" json:"captain,omitempty"`
	Classifications []Classification `gorm:"many2many:boat_classifications;joinForeignKey:BoatID;joinReferences:ClassificationID" json:"classifications,omitempty"`
}

func (Boat) TableName() string {
	return "boats"
}
