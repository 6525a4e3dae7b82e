package backup_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nguyendan07/seminary-management-system/internal/backup"
)

func TestSealOpen(t *testing.T) {
	plaintext := `{"students": [{"id": "SV001", "name": "Nguyễn Văn An"}]}`

	t.Run("round-trips through a passphrase", func(t *testing.T) {
		var sealed bytes.Buffer
		err := backup.Seal(&sealed, strings.NewReader(plaintext), "tin-mừng-2024")
		if err != nil {
			t.Fatalf("Seal() error = %v", err)
		}

		if bytes.Contains(sealed.Bytes(), []byte("SV001")) {
			t.Error("sealed output contains plaintext")
		}

		var opened bytes.Buffer
		if err := backup.Open(&opened, &sealed, "tin-mừng-2024"); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if opened.String() != plaintext {
			t.Errorf("Open() = %q, want original plaintext", opened.String())
		}
	})

	t.Run("rejects a wrong passphrase", func(t *testing.T) {
		var sealed bytes.Buffer
		if err := backup.Seal(&sealed, strings.NewReader(plaintext), "correct"); err != nil {
			t.Fatalf("Seal() error = %v", err)
		}

		var opened bytes.Buffer
		if err := backup.Open(&opened, &sealed, "wrong"); err == nil {
			t.Error("Open() with wrong passphrase: expected error")
		}
	})

	t.Run("rejects data that is not a backup", func(t *testing.T) {
		var opened bytes.Buffer
		err := backup.Open(&opened, strings.NewReader("just some text"), "any")
		if err == nil {
			t.Error("Open() on garbage input: expected error")
		}
	})
}
