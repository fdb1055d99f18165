package models

// Satu baris per sequence. LastNumber hanya boleh berubah lewat
// service.NextSequence di dalam transaksi.
type Counter struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nama       string `gorm:"uniqueIndex;size:40;not null" json:"nama"`
	LastNumber int64  `gorm:"not null;default:0" json:"last_number"`
}
