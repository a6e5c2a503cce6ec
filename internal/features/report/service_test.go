package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"go-campfire/internal/features/enrollment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestWriteWorkbook(t *testing.T) {
	weekID := primitive.NewObjectID()
	svc := &ReportServiceImpl{Logger: zap.NewNop()}
	rows := []enrollment.FactionEnrollment{
		{Name: "Week One", WeekID: &weekID, CreatedAt: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)},
		{Name: "Week Two", CreatedAt: time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC)},
	}

	data, filename, err := svc.writeWorkbook(rows)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "enrollments_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	header, err := book.GetCellValue("Enrollments", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Session", header)

	name, err := book.GetCellValue("Enrollments", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Week One", name)

	scheduled, err := book.GetCellValue("Enrollments", "B2")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", scheduled)

	unscheduled, err := book.GetCellValue("Enrollments", "B3")
	require.NoError(t, err)
	assert.Equal(t, "FALSE", unscheduled)
}
