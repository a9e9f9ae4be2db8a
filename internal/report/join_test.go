package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NH-Homelab/subscription-report/internal/models"
)

func api(s string) *string { return &s }

func exampleData() ([]models.Application, []models.Subscription) {
	apps := []models.Application{
		{ID: "a1", Name: "App1"},
		{ID: "a2", Name: "App2"},
	}
	subs := []models.Subscription{
		{Applications: []string{"a1"}, APIIdentifier: api("apiX")},
		{Applications: []string{"a1", "a2"}, APIIdentifier: api("apiY")},
	}
	return apps, subs
}

func TestJoin_Example(t *testing.T) {
	apps, subs := exampleData()

	rows := Join(apps, subs)

	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0].ID)
	assert.Equal(t, "App1", rows[0].Name)
	assert.ElementsMatch(t, []string{"apiX", "apiY"}, rows[0].APIs)
	assert.Equal(t, models.ApplicationAPIs{ID: "a2", Name: "App2", APIs: []string{"apiY"}}, rows[1])
}

func TestJoin_OneRowPerApplication(t *testing.T) {
	apps := []models.Application{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}
	subs := []models.Subscription{
		{Applications: []string{"a1"}, APIIdentifier: api("x")},
		{Applications: []string{"a1"}, APIIdentifier: api("y")},
		{Applications: []string{"a1", "a2"}, APIIdentifier: api("z")},
		{Applications: []string{"unknown"}, APIIdentifier: api("w")},
	}

	rows := Join(apps, subs)

	require.Len(t, rows, len(apps))
	for i, row := range rows {
		assert.Equal(t, apps[i].ID, row.ID)
	}
}

func TestJoin_EmptyMatchIsEmptyArray(t *testing.T) {
	rows := Join([]models.Application{{ID: "lonely", Name: "Lonely"}}, nil)

	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].APIs)
	assert.Empty(t, rows[0].APIs)

	out, err := json.Marshal(rows[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"lonely","name":"Lonely","apis":[]}`, string(out))
}

func TestJoin_NoInternalIdentifier(t *testing.T) {
	apps, subs := exampleData()

	out, err := json.Marshal(Join(apps, subs))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	for _, row := range decoded {
		assert.NotContains(t, row, "_id")
		assert.Len(t, row, 3)
	}
}

func TestJoin_ProjectsOnlyMatchingSubscriptions(t *testing.T) {
	apps := []models.Application{{ID: "a1"}, {ID: "a2"}}
	subs := []models.Subscription{
		{Applications: []string{"a2"}, APIIdentifier: api("only-a2")},
		{Applications: []string{"a1"}, APIIdentifier: api("only-a1")},
		{Applications: nil, APIIdentifier: api("nobody")},
	}

	rows := Join(apps, subs)

	assert.Equal(t, []string{"only-a1"}, rows[0].APIs)
	assert.Equal(t, []string{"only-a2"}, rows[1].APIs)
}

func TestJoin_DuplicateReferenceMatchesOnce(t *testing.T) {
	apps := []models.Application{{ID: "a1"}}
	subs := []models.Subscription{
		{Applications: []string{"a1", "a1"}, APIIdentifier: api("apiX")},
	}

	rows := Join(apps, subs)

	assert.Equal(t, []string{"apiX"}, rows[0].APIs)
}

func TestJoin_MissingAPIIdentifierContributesNothing(t *testing.T) {
	apps := []models.Application{{ID: "a1"}}
	subs := []models.Subscription{
		{Applications: []string{"a1"}},
		{Applications: []string{"a1"}, APIIdentifier: api("apiX")},
	}

	joined := Lookup(apps, subs)
	require.Len(t, joined[0].SubscribedApis, 2)

	rows := Project(joined)
	assert.Equal(t, []string{"apiX"}, rows[0].APIs)
}

func TestJoin_EmptyApplications(t *testing.T) {
	_, subs := exampleData()

	rows := Join(nil, subs)

	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestLookup_KeepsApplicationOrder(t *testing.T) {
	apps := []models.Application{{ID: "c"}, {ID: "a"}, {ID: "b"}}

	joined := Lookup(apps, nil)

	require.Len(t, joined, 3)
	assert.Equal(t, "c", joined[0].Application.ID)
	assert.Equal(t, "a", joined[1].Application.ID)
	assert.Equal(t, "b", joined[2].Application.ID)
	for _, j := range joined {
		assert.NotNil(t, j.SubscribedApis)
		assert.Empty(t, j.SubscribedApis)
	}
}
