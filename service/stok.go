package service

import (
	"errors"
	"sort"

	"go-postgres-trading/models"

	"gorm.io/gorm"
)

func (s *Service) resolveItems(tx *gorm.DB, items []ItemInput, jenis Jenis) ([]resolvedItem, error) {
	resolved := make([]resolvedItem, 0, len(items))
	for _, it := range items {
		r, err := s.resolver.Resolve(tx, it, jenis)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// Produk yang sama boleh muncul di lebih dari satu baris; validasi dan
// delta stok selalu bekerja pada agregat per produk.
func totalQtyPerProduk(items []resolvedItem) map[uint]int {
	agg := make(map[uint]int, len(items))
	for _, it := range items {
		agg[it.ProdukID] += it.Qty
	}
	return agg
}

func qtyPerProdukDetail(details []models.PenjualanDetail) map[uint]int {
	agg := make(map[uint]int, len(details))
	for _, d := range details {
		agg[d.ProdukID] += d.Qty
	}
	return agg
}

func qtyPerProdukDetailPembelian(details []models.PembelianDetail) map[uint]int {
	agg := make(map[uint]int, len(details))
	for _, d := range details {
		agg[d.ProdukID] += d.Qty
	}
	return agg
}

func sortedProdukIDs(sets ...map[uint]int) []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, set := range sets {
		for id := range set {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// kunciProduk mengunci baris produk satu per satu dengan urutan ID naik,
// supaya dua transaksi konkuren yang menyentuh produk yang sama tidak
// saling deadlock. Semua pembacaan ini terjadi sebelum tulisan apa pun.
func kunciProduk(tx *gorm.DB, ids []uint) (map[uint]models.Produk, error) {
	out := make(map[uint]models.Produk, len(ids))
	for _, id := range ids {
		var p models.Produk
		if err := lockForUpdate(tx).First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProdukNotFound
			}
			return nil, err
		}
		out[id] = p
	}
	return out, nil
}

// Stok hanya boleh berubah lewat delta relatif di dalam transaksi, tidak
// pernah lewat read-modify-write terpisah.
func applyDeltaStok(tx *gorm.DB, produkID uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return tx.Model(&models.Produk{}).
		Where("id = ?", produkID).
		UpdateColumn("stok", gorm.Expr("stok + ?", delta)).Error
}
