package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go-campfire/internal/common/scope"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/user"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReportService interface {
	// ExportEnrollmentRoster builds an xlsx workbook of the enrollments
	// visible to the user, optionally scoped to one faction by slug.
	ExportEnrollmentRoster(ctx context.Context, u *user.User, profile *user.Profile, factionSlug string) ([]byte, string, error)
}

type ReportServiceImpl struct {
	EnrollmentRepo enrollment.EnrollmentRepository
	FactionRepo    faction.FactionRepository
	Logger         *zap.Logger
}

func NewReportService(enrollmentRepo enrollment.EnrollmentRepository, factionRepo faction.FactionRepository, logger *zap.Logger) ReportService {
	return &ReportServiceImpl{
		EnrollmentRepo: enrollmentRepo,
		FactionRepo:    factionRepo,
		Logger:         logger,
	}
}

func (s *ReportServiceImpl) ExportEnrollmentRoster(ctx context.Context, u *user.User, profile *user.Profile, factionSlug string) ([]byte, string, error) {
	filter := scope.FactionFilter(ctx, s.FactionRepo, factionSlug, profile)
	factionID, scoped := filter["faction_id"].(primitive.ObjectID)
	if !scoped {
		return nil, "", fmt.Errorf("no faction in scope")
	}

	rows, err := s.EnrollmentRepo.ListFactionEnrollments(ctx, factionID)
	if err != nil {
		return nil, "", err
	}

	return s.writeWorkbook(rows)
}

func (s *ReportServiceImpl) writeWorkbook(rows []enrollment.FactionEnrollment) ([]byte, string, error) {
	book := excelize.NewFile()
	defer book.Close()

	sheet := "Enrollments"
	index, err := book.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	book.SetActiveSheet(index)
	book.DeleteSheet("Sheet1")

	headerStyle, _ := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	headers := []string{"Session", "Week Assigned", "Quarters Assigned", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		book.SetCellValue(sheet, cell, h)
		book.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, e := range rows {
		values := []interface{}{
			e.Name,
			e.WeekID != nil,
			e.QuartersID != nil,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			book.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := book.Write(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("enrollments_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
