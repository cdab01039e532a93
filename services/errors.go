package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound dikembalikan saat id target operasi tidak ada di tabel.
var ErrNotFound = errors.New("data tidak ditemukan")

// ValidationError berisi daftar field wajib yang belum diisi.
// Dikembalikan sebelum ada panggilan apa pun ke store.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "field wajib belum diisi: " + strings.Join(e.Fields, ", ")
}

// StorageError: upload atau hapus file di bucket gagal.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s gagal: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// StoreError: operasi tabel di database gagal.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("operasi %s gagal: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
