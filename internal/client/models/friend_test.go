package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendship_Counterparty(t *testing.T) {
	self := uuid.New()
	other := uuid.New()
	f := Friendship{
		User1: Friend{ID: self, Name: "me"},
		User2: Friend{ID: other, Name: "them"},
	}

	assert.Equal(t, other, f.Counterparty(self).ID)
	assert.Equal(t, self, f.Counterparty(other).ID)
}

func TestFriendCandidate_StatusAbsentMeansUnrelated(t *testing.T) {
	var c FriendCandidate
	require.NoError(t, json.Unmarshal([]byte(`{"uuid":"7f9c24e5-2f2b-4b3a-9a7c-111111111111","name":"Ana","email":"a@b.com"}`), &c))
	assert.Nil(t, c.Status)
	assert.True(t, c.CanRequest())
}

func TestFriendCandidate_StatusPresentDisablesRequest(t *testing.T) {
	var c FriendCandidate
	require.NoError(t, json.Unmarshal([]byte(`{"uuid":"7f9c24e5-2f2b-4b3a-9a7c-111111111111","name":"Ana","email":"a@b.com","status":"PENDING"}`), &c))
	require.NotNil(t, c.Status)
	assert.Equal(t, StatusPending, *c.Status)
	assert.False(t, c.CanRequest())
}
