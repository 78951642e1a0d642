package invites

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

func strPtr(s string) *string { return &s }

func TestResolveParticipantsDedupesAndMatchesBids(t *testing.T) {
	partnerID := uuid.New()
	branchID := uuid.New()
	amount := decimal.NewFromInt(4200)

	invites := []models.QuoteInvite{
		{
			ID:                 uuid.New(),
			LogisticsPartnerID: &partnerID,
			BranchOrgID:        &branchID,
			PartnerName:        strPtr("Crated & Co"),
			BranchName:         strPtr("Crated Paris"),
		},
		{
			// duplicate solicitation of the same pair
			ID:                 uuid.New(),
			LogisticsPartnerID: &partnerID,
			BranchOrgID:        &branchID,
			PartnerName:        strPtr("Crated & Co"),
		},
	}
	bids := []models.Bid{
		{
			ID:                 uuid.New(),
			LogisticsPartnerID: partnerID,
			BranchOrgID:        &branchID,
			Status:             enums.BidStatusSubmitted,
			Amount:             &amount,
		},
	}

	participants := ResolveParticipants(invites, bids)
	require.Len(t, participants, 1)
	p := participants[0]
	assert.True(t, p.HasBid)
	require.NotNil(t, p.BidStatus)
	assert.Equal(t, enums.BidStatusSubmitted, *p.BidStatus)
	require.NotNil(t, p.BidAmount)
	assert.True(t, amount.Equal(*p.BidAmount))
	assert.Equal(t, "Crated & Co - Crated Paris", p.DisplayName())
}

func TestResolveParticipantsInviteIDFallback(t *testing.T) {
	inviteID := uuid.New()
	invites := []models.QuoteInvite{
		{ID: inviteID, PartnerName: strPtr("Unregistered Mover")},
	}
	participants := ResolveParticipants(invites, nil)
	require.Len(t, participants, 1)
	assert.Equal(t, "invite:"+inviteID.String(), participants[0].Key)
	assert.False(t, participants[0].HasBid)
}

func TestResolveParticipantsSortBidFirstThenAlpha(t *testing.T) {
	aID, bID, cID := uuid.New(), uuid.New(), uuid.New()
	invites := []models.QuoteInvite{
		{ID: uuid.New(), LogisticsPartnerID: &aID, PartnerName: strPtr("Zebra Logistics")},
		{ID: uuid.New(), LogisticsPartnerID: &bID, PartnerName: strPtr("Alpine Art Movers")},
		{ID: uuid.New(), LogisticsPartnerID: &cID, PartnerName: strPtr("Basel Freight")},
	}
	bids := []models.Bid{
		{ID: uuid.New(), LogisticsPartnerID: aID, Status: enums.BidStatusSubmitted},
	}

	participants := ResolveParticipants(invites, bids)
	require.Len(t, participants, 3)
	assert.Equal(t, "Zebra Logistics", participants[0].DisplayName())
	assert.Equal(t, "Alpine Art Movers", participants[1].DisplayName())
	assert.Equal(t, "Basel Freight", participants[2].DisplayName())
}

func TestResolveParticipantsAcceptedCollapsesVisibility(t *testing.T) {
	winnerID, loserID := uuid.New(), uuid.New()
	invites := []models.QuoteInvite{
		{ID: uuid.New(), LogisticsPartnerID: &winnerID, PartnerName: strPtr("Winner Shipping")},
		{ID: uuid.New(), LogisticsPartnerID: &loserID, PartnerName: strPtr("Loser Freight")},
	}
	bids := []models.Bid{
		{ID: uuid.New(), LogisticsPartnerID: winnerID, Status: enums.BidStatusAccepted},
		{ID: uuid.New(), LogisticsPartnerID: loserID, Status: enums.BidStatusSubmitted},
	}

	participants := ResolveParticipants(invites, bids)
	require.Len(t, participants, 1)
	assert.Equal(t, "Winner Shipping", participants[0].DisplayName())
}

func TestResolveParticipantsIgnoresCounterOfferBids(t *testing.T) {
	partnerID := uuid.New()
	crID := uuid.New()
	invites := []models.QuoteInvite{
		{ID: uuid.New(), LogisticsPartnerID: &partnerID, PartnerName: strPtr("Crated & Co")},
	}
	bids := []models.Bid{
		{
			ID:                        uuid.New(),
			LogisticsPartnerID:        partnerID,
			Status:                    enums.BidStatusCounterOffer,
			CounterForChangeRequestID: &crID,
		},
	}

	participants := ResolveParticipants(invites, bids)
	require.Len(t, participants, 1)
	assert.False(t, participants[0].HasBid)
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "CC", Abbreviate("Crated Co"))
	assert.Equal(t, "AAM", Abbreviate("Alpine Art Movers GmbH"))
	assert.Equal(t, "Z", Abbreviate("zebra"))
	assert.Equal(t, "", Abbreviate(""))
}

func TestDisplayNamePrefersDistinctCompanyName(t *testing.T) {
	branch := "Crated Paris"
	same := Participant{Identity: Identity{CompanyName: "Crated Paris", BranchName: &branch}}
	assert.Equal(t, "Crated Paris", same.DisplayName())

	distinct := Participant{Identity: Identity{CompanyName: "Crated & Co", BranchName: &branch}}
	assert.Equal(t, "Crated & Co - Crated Paris", distinct.DisplayName())
}
