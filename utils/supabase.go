package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// Bucket publik tempat semua file audio recording disimpan.
const RecordingsBucket = "recordings"

// SupabaseStorage mengimplementasikan services.BlobStorage di atas
// Supabase Storage. Butuh SUPABASE_URL dan SUPABASE_KEY di ENV.
type SupabaseStorage struct{}

// sanitizeFileName mengganti spasi supaya nama object aman dipakai di URL.
func sanitizeFileName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
}

// UploadRecording menyimpan file audio di bucket recordings dan
// mengembalikan nama object beserta URL publiknya. Nama object diawali
// UUID supaya dua upload dengan nama file sama tidak tabrakan.
func (SupabaseStorage) UploadRecording(fileHeader *multipart.FileHeader) (string, string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return "", "", fmt.Errorf("SUPABASE_URL atau SUPABASE_KEY belum dikonfigurasi")
	}

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeFileName(fileHeader.Filename))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient.UploadFile(RecordingsBucket, objectName, &buf, options); err != nil {
		return "", "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", supabaseURL, RecordingsBucket, objectName)
	return objectName, publicURL, nil
}

// RemoveRecording menghapus object dari bucket recordings lewat API
// Supabase Storage. Status 200 atau 204 dianggap sukses.
func (SupabaseStorage) RemoveRecording(objectName string) error {
	if objectName == "" {
		return nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL atau SUPABASE_KEY belum dikonfigurasi")
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s",
		strings.TrimRight(supabaseURL, "/"), RecordingsBucket, objectName)

	req, err := http.NewRequest("DELETE", deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("apikey", supabaseKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("hapus file di Supabase gagal: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
