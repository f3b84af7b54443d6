package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	entriesSheet    = "Entries"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type exportService struct {
	BaseService
	entryRepo portsrepo.EntryReader
	now       func() time.Time
}

func NewExportService(entryRepo portsrepo.EntryReader, authorizer portssvc.CashbookAuthorizerSvc) portssvc.ExportSvc {
	return &exportService{
		BaseService: BaseService{CashbookAuthorizer: authorizer},
		entryRepo:   entryRepo,
		now:         time.Now,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportEntries renders every entry of a cashbook into an XLSX workbook with
// a totals block below the rows.
func (s *exportService) ExportEntries(ctx context.Context, cashbookID string, requestingUserID string) (*domain.ExportFile, error) {
	access, err := s.AuthorizeCashbook(ctx, requestingUserID, cashbookID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.FindAllEntriesByCashbook(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for export", slog.String("cashbook_id", cashbookID))
		return nil, err
	}

	content, err := renderEntriesWorkbook(entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to render workbook", slog.String("cashbook_id", cashbookID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbook exported",
		slog.String("cashbook_id", cashbookID),
		slog.Int("entry_count", len(entries)))
	return &domain.ExportFile{
		FileName:    exportFileName(access.Cashbook.Name, s.now()),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

func exportFileName(cashbookName string, at time.Time) string {
	base := unsafeFileChars.ReplaceAllString(cashbookName, "_")
	if base == "" || base == "_" {
		base = "cashbook"
	}
	return fmt.Sprintf("%s_%s.xlsx", base, at.Format("20060102"))
}

func renderEntriesWorkbook(entries []domain.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", entriesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Date", "Type", "Amount", "Payment Method", "Description", "Verified"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(entriesSheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(entriesSheet, "A1", "F1", headerStyle); err != nil {
		return nil, err
	}

	row := 2
	for _, e := range entries {
		values := []any{
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			string(e.Type),
			e.Amount.InexactFloat64(),
			string(e.PaymentMethod),
			e.Description,
			yesNo(e.IsVerified),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(entriesSheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	balance := domain.SummarizeEntries(entries)
	totals := [][2]any{
		{"Total In", balance.TotalIn.InexactFloat64()},
		{"Total Out", balance.TotalOut.InexactFloat64()},
		{"Balance", balance.Balance.InexactFloat64()},
	}
	row++
	for _, t := range totals {
		if err := f.SetCellValue(entriesSheet, fmt.Sprintf("B%d", row), t[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(entriesSheet, fmt.Sprintf("C%d", row), t[1]); err != nil {
			return nil, err
		}
		row++
	}

	_ = f.SetColWidth(entriesSheet, "A", "A", 20)
	_ = f.SetColWidth(entriesSheet, "B", "B", 10)
	_ = f.SetColWidth(entriesSheet, "C", "C", 14)
	_ = f.SetColWidth(entriesSheet, "D", "D", 18)
	_ = f.SetColWidth(entriesSheet, "E", "E", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
