package subscriptiondao

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/NH-Homelab/subscription-report/internal/database"
	"github.com/NH-Homelab/subscription-report/internal/models"
)

// Const SQL queries
const (
	getSubscriptionsQuery = "SELECT applications, api_identifier FROM subscription;"
)

// Error Types
var (
	ErrScanSubscription  = errors.New("failed to scan subscription from DB response")
	ErrQuerySubscription = errors.New("failed to query subscription from db")
)

// GetSubscriptions fetches every subscription in table scan order.
func GetSubscriptions(db database.DatabaseConnection) ([]models.Subscription, error) {
	res, err := db.Query(getSubscriptionsQuery)
	if err != nil {
		return nil, fmt.Errorf("GetSubscriptions: %w -- %v", ErrQuerySubscription, err)
	}
	defer res.Close()

	subs := []models.Subscription{}

	for res.Next() {
		var sub models.Subscription
		var apiIdentifier sql.NullString
		if err := res.Scan(pq.Array(&sub.Applications), &apiIdentifier); err != nil {
			return nil, fmt.Errorf("GetSubscriptions: %w -- %v", ErrScanSubscription, err)
		}
		if apiIdentifier.Valid {
			sub.APIIdentifier = &apiIdentifier.String
		}
		subs = append(subs, sub)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("GetSubscriptions: %w -- %v", ErrQuerySubscription, err)
	}

	return subs, nil
}
