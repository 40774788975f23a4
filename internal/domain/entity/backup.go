package entity

import "time"

// BackupVersion is written into every exported backup document.
const BackupVersion = "1.0"

// Backup is the single JSON document used for export and restore.
type Backup struct {
	Version  string    `json:"version"`
	Date     time.Time `json:"date"`
	Products Catalog   `json:"products"`
	Orders   Orders    `json:"orders"`
	Settings *Settings `json:"settings,omitempty"`
}

// BackupArchive describes a backup stored in the archive bucket.
type BackupArchive struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}
