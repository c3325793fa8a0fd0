package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxDimension  = 800
	webpQuality   = 80
)

// ImageStore menyimpan foto profil yang di-upload lewat form multipart.
// Gambar di-decode, di-resize bila terlalu besar, di-encode ulang sebagai
// WebP, lalu disimpan di Dir. Yang dipersist ke DB hanya nama file-nya.
type ImageStore struct {
	Dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{Dir: dir}
}

// Save menerima file upload dan mengembalikan reference stabil (filename).
// Ditulis dulu ke file temporer; kalau gagal di tengah, temp dibersihkan
// dan tidak ada artefak yang tersisa.
func (s *ImageStore) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran gambar melebihi %dMB", maxUploadSize/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("gagal decode gambar: %w", err)
	}
	if img.Bounds().Dx() > maxDimension || img.Bounds().Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "upload-*.tmp")
	if err != nil {
		return "", fmt.Errorf("gagal membuat file temporer: %w", err)
	}
	tmpName := tmp.Name()

	if err := webp.Encode(tmp, img, &webp.Options{Quality: webpQuality}); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	ref := uuid.New().String() + ".webp"
	if err := os.Rename(tmpName, filepath.Join(s.Dir, ref)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}
	return ref, nil
}

// SaveOrFallback dipakai controller form: kalau tidak ada upload,
// pakai ref lama (kasus edit) atau string kosong (kasus create).
func (s *ImageStore) SaveOrFallback(fileHeader *multipart.FileHeader, fallback string) (string, error) {
	if fileHeader == nil {
		return fallback, nil
	}
	return s.Save(fileHeader)
}
