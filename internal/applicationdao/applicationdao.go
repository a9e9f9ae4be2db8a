package applicationdao

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/NH-Homelab/subscription-report/internal/database"
	"github.com/NH-Homelab/subscription-report/internal/models"
)

var (
	ErrQueryApplication = errors.New("failed to query application from db")
	ErrScanApplication  = errors.New("failed to scan application from db response")
)

const (
	getApplicationsQuery = "SELECT id, name FROM application;"

	// Same two stages as report.Lookup and report.Project:
	//   LEFT JOIN ... ON a.id = ANY(s.applications)   lookup; keeps unmatched
	//       applications and matches a subscription once per application even
	//       when its array repeats the id.
	//   GROUP BY a.id, a.name                          one row per application.
	//   array_agg(...) FILTER (WHERE ... IS NOT NULL)   projection of api
	//       identifiers; NULL identifiers and the all-NULL row of an unmatched
	//       application are skipped.
	//   COALESCE(..., '{}')                            no match gives [] not NULL.
	getApplicationAPIsQuery = "SELECT a.id, a.name, " +
		"COALESCE(array_agg(s.api_identifier) FILTER (WHERE s.api_identifier IS NOT NULL), '{}') AS apis " +
		"FROM application a LEFT JOIN subscription s ON a.id = ANY(s.applications) " +
		"GROUP BY a.id, a.name;"
)

// GetApplications fetches every application in table scan order.
func GetApplications(db database.DatabaseConnection) ([]models.Application, error) {
	res, err := db.Query(getApplicationsQuery)
	if err != nil {
		return nil, fmt.Errorf("GetApplications: %w -- %v", ErrQueryApplication, err)
	}
	defer res.Close()

	apps := []models.Application{}
	for res.Next() {
		var app models.Application
		var name sql.NullString
		if err := res.Scan(&app.ID, &name); err != nil {
			return nil, fmt.Errorf("GetApplications: %w -- %v", ErrScanApplication, err)
		}
		app.Name = name.String
		apps = append(apps, app)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("GetApplications: %w -- %v", ErrQueryApplication, err)
	}

	return apps, nil
}

// GetApplicationAPIs runs the whole report inside Postgres.
func GetApplicationAPIs(db database.DatabaseConnection) ([]models.ApplicationAPIs, error) {
	res, err := db.Query(getApplicationAPIsQuery)
	if err != nil {
		return nil, fmt.Errorf("GetApplicationAPIs: %w -- %v", ErrQueryApplication, err)
	}
	defer res.Close()

	rows := []models.ApplicationAPIs{}
	for res.Next() {
		var row models.ApplicationAPIs
		var name sql.NullString
		var apis pq.StringArray
		if err := res.Scan(&row.ID, &name, &apis); err != nil {
			return nil, fmt.Errorf("GetApplicationAPIs: %w -- %v", ErrScanApplication, err)
		}
		row.Name = name.String
		row.APIs = []string(apis)
		if row.APIs == nil {
			row.APIs = []string{}
		}
		rows = append(rows, row)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("GetApplicationAPIs: %w -- %v", ErrQueryApplication, err)
	}

	return rows, nil
}
