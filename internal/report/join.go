// Package report builds the application to subscribed-API report: an outer
// correlation of applications with the subscriptions that list them, followed
// by a projection down to {id, name, apis}.
package report

import "github.com/NH-Homelab/subscription-report/internal/models"

// Joined is one application together with every subscription whose
// applications list contains its id, in subscription order.
type Joined struct {
	Application    models.Application
	SubscribedApis []models.Subscription
}

// Lookup correlates each application with its matching subscriptions. Every
// application yields exactly one Joined, with an empty SubscribedApis when
// nothing matches. A subscription naming the same application twice is
// attached to it once.
func Lookup(apps []models.Application, subs []models.Subscription) []Joined {
	byApp := make(map[string][]int, len(apps))
	for i, sub := range subs {
		seen := make(map[string]struct{}, len(sub.Applications))
		for _, appID := range sub.Applications {
			if _, dup := seen[appID]; dup {
				continue
			}
			seen[appID] = struct{}{}
			byApp[appID] = append(byApp[appID], i)
		}
	}

	joined := make([]Joined, 0, len(apps))
	for _, app := range apps {
		matches := make([]models.Subscription, 0, len(byApp[app.ID]))
		for _, i := range byApp[app.ID] {
			matches = append(matches, subs[i])
		}
		joined = append(joined, Joined{Application: app, SubscribedApis: matches})
	}
	return joined
}

// Project reduces each Joined to its report row. Subscriptions without an api
// identifier match but add nothing to APIs.
func Project(joined []Joined) []models.ApplicationAPIs {
	rows := make([]models.ApplicationAPIs, 0, len(joined))
	for _, j := range joined {
		apis := make([]string, 0, len(j.SubscribedApis))
		for _, sub := range j.SubscribedApis {
			if sub.APIIdentifier != nil {
				apis = append(apis, *sub.APIIdentifier)
			}
		}
		rows = append(rows, models.ApplicationAPIs{
			ID:   j.Application.ID,
			Name: j.Application.Name,
			APIs: apis,
		})
	}
	return rows
}

// Join runs Lookup then Project.
func Join(apps []models.Application, subs []models.Subscription) []models.ApplicationAPIs {
	return Project(Lookup(apps, subs))
}
