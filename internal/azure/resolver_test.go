package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionClient struct {
	subs []Subscription
	err  error
}

func (f *fakeSubscriptionClient) ListEnabled(_ context.Context) ([]Subscription, error) {
	return f.subs, f.err
}

func TestResolveTargets_ByDisplayName(t *testing.T) {
	client := &fakeSubscriptionClient{subs: []Subscription{
		{DisplayName: "SLProd", ID: "sub-1", State: "Enabled"},
		{DisplayName: "SLSharedDR", ID: "sub-2", State: "Enabled"},
	}}

	found, err := ResolveTargets(context.Background(), client, []string{"SLProd"}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"sub-1"}, found)
}

func TestResolveTargets_ByID(t *testing.T) {
	client := &fakeSubscriptionClient{subs: []Subscription{
		{DisplayName: "SLProd", ID: "sub-1", State: "Enabled"},
	}}

	found, err := ResolveTargets(context.Background(), client, []string{"sub-1"}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"sub-1"}, found)
}

func TestResolveTargets_PreservesTargetOrder(t *testing.T) {
	client := &fakeSubscriptionClient{subs: []Subscription{
		{DisplayName: "A", ID: "sub-a", State: "Enabled"},
		{DisplayName: "B", ID: "sub-b", State: "Enabled"},
		{DisplayName: "C", ID: "sub-c", State: "Enabled"},
	}}

	found, err := ResolveTargets(context.Background(), client, []string{"C", "A", "B"}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"sub-c", "sub-a", "sub-b"}, found)
}

func TestResolveTargets_SkipsMissing(t *testing.T) {
	client := &fakeSubscriptionClient{subs: []Subscription{
		{DisplayName: "SLProd", ID: "sub-1", State: "Enabled"},
	}}

	found, err := ResolveTargets(context.Background(), client, []string{"Nope", "SLProd", "AlsoNope"}, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, []string{"sub-1"}, found)
}

func TestResolveTargets_EmptyResultIsValid(t *testing.T) {
	client := &fakeSubscriptionClient{}

	found, err := ResolveTargets(context.Background(), client, []string{"SLProd"}, zerolog.Nop())

	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestResolveTargets_ListFailure(t *testing.T) {
	client := &fakeSubscriptionClient{err: errors.New("directory unavailable")}

	_, err := ResolveTargets(context.Background(), client, []string{"SLProd"}, zerolog.Nop())

	assert.Error(t, err)
}
