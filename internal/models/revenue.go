package models

// Revenue is one aggregate row per period.
type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `json:"revenue"`
}

func (Revenue) TableName() string { return "revenue" }
