package sqlstore

import "time"

// KVEntryModel is the GORM-specific struct for the 'kv_entries' table.
// Each row holds one JSON-encoded state slice.
type KVEntryModel struct {
	Key       string    `gorm:"column:entry_key;type:varchar(64);primaryKey"`
	Value     []byte    `gorm:"column:entry_value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName explicitly sets the table name for GORM.
func (KVEntryModel) TableName() string {
	return "kv_entries"
}
