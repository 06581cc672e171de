package checks

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"manifest-sync/core/database"
	"manifest-sync/feature/manifest/models"

	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the history check runs without a database.
var ErrNoDatabase = errors.New("database connection is nil")

// HistoryReport is the result of a run history schema check.
type HistoryReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// CheckHistorySchema compares the live run history table against models.ManifestRun.
func CheckHistorySchema(db *gorm.DB) (*HistoryReport, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	table := models.ManifestRun{}.TableName()
	actual, err := database.GetTableColumns(db, table)
	if err != nil {
		return nil, err
	}
	actualMap := make(map[string]string, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col.Type
	}

	report := &HistoryReport{
		Table:          table,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
	}

	val := reflect.TypeOf(models.ManifestRun{})
	for i := 0; i < val.NumField(); i++ {
		tag := val.Field(i).Tag.Get("gorm")
		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		actType, exists := actualMap[colName]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		// Only columns with an explicit type are compared; the rest vary per driver.
		expType := strings.ToLower(parseGormType(tag))
		if expType != "" && !strings.Contains(actType, expType) {
			report.TypeMismatches = append(report.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", colName, expType, actType))
			report.Matched = false
		}
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	return gormSetting(tag, "column:")
}

func parseGormType(tag string) string {
	return gormSetting(tag, "type:")
}

func gormSetting(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
