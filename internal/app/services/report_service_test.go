package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yassine/schoolhub/internal/app/models/dto"
	"github.com/yassine/schoolhub/internal/app/repositories"
)

func TestBuildCycleFieldReport(t *testing.T) {
	rows := []repositories.CycleFieldReportRow{
		{CycleID: 1, CycleName: "Primary", FieldName: "General", StudentCount: 120},
		{CycleID: 1, CycleName: "Primary", FieldName: "Languages", StudentCount: 40},
		{CycleID: 2, CycleName: "Secondary", FieldName: "Sciences", StudentCount: 75},
	}

	report := buildCycleFieldReport(rows)

	assert.Equal(t, []dto.CycleFieldCount{
		{
			CycleID:   1,
			CycleName: "Primary",
			Fields: []dto.FieldCount{
				{FieldName: "General", StudentCount: 120},
				{FieldName: "Languages", StudentCount: 40},
			},
		},
		{
			CycleID:   2,
			CycleName: "Secondary",
			Fields: []dto.FieldCount{
				{FieldName: "Sciences", StudentCount: 75},
			},
		},
	}, report)
}

func TestBuildCycleFieldReportPreservesTotals(t *testing.T) {
	rows := []repositories.CycleFieldReportRow{
		{CycleID: 1, CycleName: "Primary", FieldName: "General", StudentCount: 120},
		{CycleID: 1, CycleName: "Primary", FieldName: "Languages", StudentCount: 40},
		{CycleID: 2, CycleName: "Secondary", FieldName: "Sciences", StudentCount: 75},
		{CycleID: 3, CycleName: "High", FieldName: "Sciences", StudentCount: 62},
	}

	report := buildCycleFieldReport(rows)

	// Grouping must not gain or lose students.
	var want, got int64
	for _, row := range rows {
		want += row.StudentCount
	}
	for _, cycle := range report {
		for _, field := range cycle.Fields {
			got += field.StudentCount
		}
	}
	assert.Equal(t, want, got)
}

func TestBuildCycleFieldReport_Empty(t *testing.T) {
	report := buildCycleFieldReport(nil)
	assert.NotNil(t, report)
	assert.Empty(t, report)
}

func TestBuildCycleFieldReport_SingleCycle(t *testing.T) {
	rows := []repositories.CycleFieldReportRow{
		{CycleID: 7, CycleName: "Preschool", FieldName: "General", StudentCount: 12},
	}

	report := buildCycleFieldReport(rows)

	assert.Len(t, report, 1)
	assert.Equal(t, int64(7), report[0].CycleID)
	assert.Len(t, report[0].Fields, 1)
}
