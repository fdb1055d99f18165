package models

import "time"

type Pelanggan struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	IDPelanggan string `gorm:"uniqueIndex;size:20;not null" json:"id_pelanggan"` // PLG-00001
	Nama        string `gorm:"size:180;not null" json:"nama"`
	NamaToko    string `gorm:"size:180" json:"nama_toko"`
	NIB         string `gorm:"size:30" json:"nib"`
	Alamat      string `gorm:"size:255" json:"alamat"`
	NoTelp      string `gorm:"size:30" json:"no_telp"`
	Email       string `gorm:"size:120" json:"email,omitempty"`

	Status string `gorm:"size:10;not null;default:aktif" json:"status"` // aktif | nonaktif

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
