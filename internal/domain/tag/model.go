package tag

const DefaultColor = "#111827"

type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Color string `gorm:"size:20;not null;default:'#111827'" json:"color"`
}
