package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/zeylcoffee/qrmenu/app/repositories"
)

const (
	totalsSheet = "Toplam İstatistikler"
	dailySheet  = "Günlük Detaylar"
)

// ExportService serializes the click statistics into a two-sheet workbook:
// aggregate per-category totals and the per-day breakdown.
type ExportService struct {
	statsRepo repositories.StatisticsRepository
}

func NewExportService(statsRepo repositories.StatisticsRepository) *ExportService {
	return &ExportService{statsRepo: statsRepo}
}

// BuildWorkbook returns the workbook and its date-stamped download name.
func (s *ExportService) BuildWorkbook(ctx context.Context) (*excelize.File, string, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", totalsSheet)

	f.SetCellValue(totalsSheet, "A2", "Kategori Adı")
	f.SetCellValue(totalsSheet, "B2", "Toplam Tıklama")
	f.SetCellValue(totalsSheet, "C2", "Son Tıklama")
	f.SetColWidth(totalsSheet, "A", "A", 25)
	f.SetColWidth(totalsSheet, "B", "B", 15)
	f.SetColWidth(totalsSheet, "C", "C", 25)

	type totalRow struct {
		name        string
		clicks      int
		lastClicked *time.Time
	}
	totals := make([]totalRow, 0, len(stats.CategoryClicks))
	for _, c := range stats.CategoryClicks {
		totals = append(totals, totalRow{name: c.Name, clicks: c.TotalClicks, lastClicked: c.LastClicked})
	}
	// Most clicked first.
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].clicks > totals[j].clicks })

	for i, row := range totals {
		line := i + 3
		last := "Hiç tıklanmadı"
		if row.lastClicked != nil {
			last = row.lastClicked.Format("02.01.2006 15:04")
		}
		f.SetCellValue(totalsSheet, fmt.Sprintf("A%d", line), row.name)
		f.SetCellValue(totalsSheet, fmt.Sprintf("B%d", line), row.clicks)
		f.SetCellValue(totalsSheet, fmt.Sprintf("C%d", line), last)
	}

	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, "", err
	}
	f.SetCellValue(dailySheet, "A2", "Tarih")
	f.SetCellValue(dailySheet, "B2", "Kategori")
	f.SetCellValue(dailySheet, "C2", "Tıklama Sayısı")
	f.SetColWidth(dailySheet, "A", "A", 15)
	f.SetColWidth(dailySheet, "B", "B", 25)
	f.SetColWidth(dailySheet, "C", "C", 15)

	days := make([]string, 0, len(stats.DailyClicks))
	for day := range stats.DailyClicks {
		days = append(days, day)
	}
	// Newest day first.
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	line := 3
	for _, day := range days {
		categories := stats.DailyClicks[day]
		keys := make([]string, 0, len(categories))
		for k := range categories {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			f.SetCellValue(dailySheet, fmt.Sprintf("A%d", line), day)
			f.SetCellValue(dailySheet, fmt.Sprintf("B%d", line), categories[k].Name)
			f.SetCellValue(dailySheet, fmt.Sprintf("C%d", line), categories[k].Clicks)
			line++
		}
	}

	filename := fmt.Sprintf("istatistikler-%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}
