package ds

// @Schema(description="Captain model, referenced by boats through captain_id")
type Captain struct {
	ID    uint   `gorm:"primaryKey;column:id" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Boats []Boat `gorm:"foreignKey:CaptainID" json:"boats,omitempty"`
}

func (Captain) TableName() string {
	return "captains"
}
