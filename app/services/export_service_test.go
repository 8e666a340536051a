package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories/jsonrepo"
)

func TestBuildWorkbookLayout(t *testing.T) {
	store := jsonrepo.NewStore(
		filepath.Join(t.TempDir(), "database.json"),
		models.Admin{Username: "admin", Password: "hash"},
	)
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := store.Statistics().TrackClick(ctx, 1, "Kahveler", day); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Statistics().TrackClick(ctx, 2, "Tatlılar", day.Add(24*time.Hour)); err != nil {
		t.Fatal(err)
	}

	f, filename, err := NewExportService(store.Statistics()).BuildWorkbook(ctx)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	if !strings.HasPrefix(filename, "istatistikler-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %q", filename)
	}

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Toplam İstatistikler" || sheets[1] != "Günlük Detaylar" {
		t.Fatalf("sheets = %v", sheets)
	}

	// Totals sorted by click count, most clicked first, data from row 3.
	name, _ := f.GetCellValue("Toplam İstatistikler", "A3")
	count, _ := f.GetCellValue("Toplam İstatistikler", "B3")
	if name != "Kahveler" || count != "3" {
		t.Errorf("first totals row = %q / %q", name, count)
	}
	second, _ := f.GetCellValue("Toplam İstatistikler", "A4")
	if second != "Tatlılar" {
		t.Errorf("second totals row = %q", second)
	}

	// Daily sheet lists the newest day first.
	firstDay, _ := f.GetCellValue("Günlük Detaylar", "A3")
	if firstDay != "2025-06-02" {
		t.Errorf("first daily row day = %q", firstDay)
	}
}

func TestBuildWorkbookEmptyStatistics(t *testing.T) {
	store := jsonrepo.NewStore(
		filepath.Join(t.TempDir(), "database.json"),
		models.Admin{Username: "admin", Password: "hash"},
	)

	f, _, err := NewExportService(store.Statistics()).BuildWorkbook(context.Background())
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Toplam İstatistikler", "A2")
	if header != "Kategori Adı" {
		t.Errorf("header = %q", header)
	}
	empty, _ := f.GetCellValue("Toplam İstatistikler", "A3")
	if empty != "" {
		t.Errorf("row 3 = %q, want empty", empty)
	}
}
