package services

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"

	"github.com/minhajulhaq/ppm-backend/models"
)

type fakeBlobStorage struct {
	removed   []string
	removeErr error
}

func (f *fakeBlobStorage) UploadRecording(fileHeader *multipart.FileHeader) (string, string, error) {
	return "obj.mp3", "http://storage.test/obj.mp3", nil
}

func (f *fakeBlobStorage) RemoveRecording(name string) error {
	f.removed = append(f.removed, name)
	return f.removeErr
}

func newTestService() (*RecordingService, *InMemoryRecordingStore, *fakeBlobStorage) {
	store := NewInMemoryRecordingStore()
	storage := &fakeBlobStorage{}
	return NewRecordingService(store, storage), store, storage
}

func publishInput(title string) PublishInput {
	return PublishInput{
		Title:     title,
		Speaker:   "Pak Asa",
		Date:      "2024-01-10",
		Kelas:     models.KelasCepatan,
		Mangkulan: models.MangkulanQuran,
		Duration:  "1:02:03",
	}
}

func countActive(t *testing.T, svc *RecordingService) int {
	t.Helper()
	recs, err := svc.List(RecordingFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	n := 0
	for _, r := range recs {
		if r.IsActive {
			n++
		}
	}
	return n
}

func TestPublishFirstRecording(t *testing.T) {
	svc, _, _ := newTestService()

	rec, err := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if !rec.IsActive {
		t.Error("recording baru harus aktif")
	}
	if rec.PlayCount != 0 {
		t.Errorf("play_count = %d, harusnya 0", rec.PlayCount)
	}
	if rec.ID == uuid.Nil {
		t.Error("id harus terisi setelah publish")
	}

	recs, _ := svc.List(RecordingFilter{})
	if len(recs) != 1 {
		t.Fatalf("List() = %d baris, harusnya 1", len(recs))
	}
}

func TestPublishArchivesPreviousActive(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	if err != nil {
		t.Fatalf("Publish() pertama error = %v", err)
	}
	second, err := svc.Publish("admin", publishInput("Tafsir 2"), "http://storage.test/b.mp3", "b.mp3")
	if err != nil {
		t.Fatalf("Publish() kedua error = %v", err)
	}

	got, _ := svc.Get(first.ID)
	if got.IsActive {
		t.Error("recording pertama harus terarsip setelah publish kedua")
	}
	if n := countActive(t, svc); n != 1 {
		t.Errorf("jumlah recording aktif = %d, harusnya 1", n)
	}

	active, _ := svc.List(RecordingFilter{ActiveOnly: true})
	if len(active) != 1 || active[0].ID != second.ID {
		t.Error("List(active) harus mengembalikan tepat recording kedua")
	}
}

func TestPublishValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PublishInput)
		missing string
	}{
		{"tanpa title", func(in *PublishInput) { in.Title = "" }, "title"},
		{"title spasi saja", func(in *PublishInput) { in.Title = "   " }, "title"},
		{"tanpa speaker", func(in *PublishInput) { in.Speaker = "" }, "speaker"},
		{"tanpa date", func(in *PublishInput) { in.Date = "" }, "date"},
		{"tanpa kelas", func(in *PublishInput) { in.Kelas = "" }, "kelas"},
		{"tanpa mangkulan", func(in *PublishInput) { in.Mangkulan = "" }, "mangkulan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _ := newTestService()

			in := publishInput("Tafsir 1")
			tt.mutate(&in)

			_, err := svc.Publish("admin", in, "http://storage.test/a.mp3", "a.mp3")
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Publish() error = %v, harusnya ValidationError", err)
			}
			found := false
			for _, f := range vErr.Fields {
				if f == tt.missing {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidationError.Fields = %v, harus memuat %q", vErr.Fields, tt.missing)
			}

			// validasi gagal sebelum ada panggilan store
			recs, _ := store.List(RecordingFilter{})
			if len(recs) != 0 {
				t.Error("store harus tetap kosong saat validasi gagal")
			}
		})
	}
}

func TestPublishInsertFailureKeepsPreviousActive(t *testing.T) {
	svc, store, _ := newTestService()

	first, err := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	store.CreateErr = errors.New("insert gagal")
	if _, err := svc.Publish("admin", publishInput("Tafsir 2"), "http://storage.test/b.mp3", "b.mp3"); err == nil {
		t.Fatal("Publish() harus gagal saat insert gagal")
	}
	store.CreateErr = nil

	// transaksi di-rollback: recording lama tetap aktif
	got, _ := svc.Get(first.ID)
	if !got.IsActive {
		t.Error("recording lama harus tetap aktif setelah publish gagal")
	}
	if n := countActive(t, svc); n != 1 {
		t.Errorf("jumlah recording aktif = %d, harusnya 1", n)
	}
}

func TestRestoreSwapsActivation(t *testing.T) {
	svc, _, _ := newTestService()

	first, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	second, _ := svc.Publish("admin", publishInput("Tafsir 2"), "http://storage.test/b.mp3", "b.mp3")

	restored, err := svc.Restore("admin", first.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !restored.IsActive {
		t.Error("recording yang direstore harus aktif")
	}

	got, _ := svc.Get(second.ID)
	if got.IsActive {
		t.Error("recording kedua harus terarsip setelah restore")
	}
	if n := countActive(t, svc); n != 1 {
		t.Errorf("jumlah recording aktif = %d, harusnya 1", n)
	}
}

func TestRestoreNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Restore("admin", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore() error = %v, harusnya ErrNotFound", err)
	}
}

func TestIncrementPlayCountMonotonic(t *testing.T) {
	svc, _, _ := newTestService()

	rec, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")

	for i := 1; i <= 3; i++ {
		updated, err := svc.IncrementPlayCount(rec.ID)
		if err != nil {
			t.Fatalf("IncrementPlayCount() ke-%d error = %v", i, err)
		}
		if updated.PlayCount != i {
			t.Errorf("play_count = %d setelah %d kali, harusnya %d", updated.PlayCount, i, i)
		}
	}
}

func TestIncrementPlayCountNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.IncrementPlayCount(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("IncrementPlayCount() error = %v, harusnya ErrNotFound", err)
	}
}

func TestUpdateMetadataDoesNotTouchActivation(t *testing.T) {
	svc, _, _ := newTestService()

	first, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	svc.Publish("admin", publishInput("Tafsir 2"), "http://storage.test/b.mp3", "b.mp3")

	newTitle := "Tafsir 1 (revisi)"
	updated, err := svc.UpdateMetadata(first.ID, MetadataPatch{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateMetadata() error = %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("title = %q, harusnya %q", updated.Title, newTitle)
	}
	if updated.IsActive {
		t.Error("patch metadata tidak boleh mengaktifkan recording arsip")
	}
	if updated.Speaker != "Pak Asa" {
		t.Error("field yang tidak di-patch tidak boleh berubah")
	}
}

func TestDeleteRemovesRowAndBlob(t *testing.T) {
	svc, _, storage := newTestService()

	rec, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")

	if err := svc.Delete("admin", rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	recs, _ := svc.List(RecordingFilter{})
	if len(recs) != 0 {
		t.Error("recording masih muncul di List() setelah dihapus")
	}
	if len(storage.removed) != 1 || storage.removed[0] != "a.mp3" {
		t.Errorf("storage.removed = %v, harusnya [a.mp3]", storage.removed)
	}
}

func TestDeleteMissingIsNoop(t *testing.T) {
	svc, _, storage := newTestService()

	if err := svc.Delete("admin", uuid.New()); err != nil {
		t.Errorf("Delete() id tak dikenal = %v, harusnya nil (idempoten)", err)
	}
	if len(storage.removed) != 0 {
		t.Error("tidak boleh ada panggilan hapus file untuk id tak dikenal")
	}
}

func TestDeleteBlobFailureStillDeletesRow(t *testing.T) {
	svc, _, storage := newTestService()
	storage.removeErr = errors.New("storage down")

	rec, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")

	if err := svc.Delete("admin", rec.ID); err != nil {
		t.Fatalf("Delete() error = %v, gagal hapus file tidak boleh memblokir", err)
	}
	if _, err := svc.Get(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Error("baris recording harus tetap terhapus walau file gagal dihapus")
	}
}

func TestListFilter(t *testing.T) {
	svc, _, _ := newTestService()

	inA := publishInput("Quran Cepatan")
	inB := publishInput("Hadits Cepatan")
	inB.Mangkulan = models.MangkulanHadits
	inC := publishInput("Quran Lambatan")
	inC.Kelas = models.KelasLambatan

	svc.Publish("admin", inA, "http://storage.test/a.mp3", "a.mp3")
	svc.Publish("admin", inB, "http://storage.test/b.mp3", "b.mp3")
	svc.Publish("admin", inC, "http://storage.test/c.mp3", "c.mp3")

	tests := []struct {
		name   string
		filter RecordingFilter
		want   []string
	}{
		{"tanpa filter", RecordingFilter{}, []string{"Quran Lambatan", "Hadits Cepatan", "Quran Cepatan"}},
		{"kelas cepatan", RecordingFilter{Kelas: models.KelasCepatan}, []string{"Hadits Cepatan", "Quran Cepatan"}},
		{"kelas + mangkulan", RecordingFilter{Kelas: models.KelasCepatan, Mangkulan: models.MangkulanQuran}, []string{"Quran Cepatan"}},
		{"hanya aktif", RecordingFilter{ActiveOnly: true}, []string{"Quran Lambatan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := svc.List(tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(recs) != len(tt.want) {
				t.Fatalf("List() = %d baris, harusnya %d", len(recs), len(tt.want))
			}
			for i, title := range tt.want {
				if recs[i].Title != title {
					t.Errorf("urutan[%d] = %q, harusnya %q", i, recs[i].Title, title)
				}
			}
		})
	}
}

func TestOnActiveChangedHook(t *testing.T) {
	svc, _, _ := newTestService()

	var notified []string
	svc.OnActiveChanged = func(rec *models.Recording) {
		notified = append(notified, rec.Title)
	}

	first, _ := svc.Publish("admin", publishInput("Tafsir 1"), "http://storage.test/a.mp3", "a.mp3")
	svc.Publish("admin", publishInput("Tafsir 2"), "http://storage.test/b.mp3", "b.mp3")
	svc.Restore("admin", first.ID)

	want := []string{"Tafsir 1", "Tafsir 2", "Tafsir 1"}
	if len(notified) != len(want) {
		t.Fatalf("hook dipanggil %d kali, harusnya %d", len(notified), len(want))
	}
	for i := range want {
		if notified[i] != want[i] {
			t.Errorf("notifikasi[%d] = %q, harusnya %q", i, notified[i], want[i])
		}
	}
}
