package invites

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/artmovehq/artmove-backend/pkg/db/models"
	"github.com/artmovehq/artmove-backend/pkg/enums"
)

// Identity is the canonical display record resolved from an invite or bid.
// Downstream code never sees the raw denormalized invite columns.
type Identity struct {
	CompanyName  string  `json:"company_name"`
	BranchName   *string `json:"branch_name,omitempty"`
	Abbreviation string  `json:"abbreviation"`
	BrandColor   *string `json:"brand_color,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

// Participant is one solicited partner/branch pair with its bid state.
type Participant struct {
	Key         string           `json:"key"`
	PartnerID   *uuid.UUID       `json:"partner_id,omitempty"`
	BranchOrgID *uuid.UUID       `json:"branch_org_id,omitempty"`
	InviteID    uuid.UUID        `json:"invite_id"`
	Identity    Identity         `json:"identity"`
	HasBid      bool             `json:"has_bid"`
	BidID       *uuid.UUID       `json:"bid_id,omitempty"`
	BidStatus   *enums.BidStatus `json:"bid_status,omitempty"`
	BidAmount   *decimal.Decimal `json:"bid_amount,omitempty"`
}

// DisplayName prefers the company name when it differs from the branch
// label; otherwise the branch name alone identifies the participant.
func (p Participant) DisplayName() string {
	name := p.Identity.CompanyName
	if p.Identity.BranchName != nil {
		branch := *p.Identity.BranchName
		if name == "" || strings.EqualFold(name, branch) {
			return branch
		}
		return name + " - " + branch
	}
	return name
}

// ResolveParticipants computes the deduplicated participant view for a
// quote. Participants that placed a bid sort first, then alphabetically by
// display name. Once any bid is accepted only the accepted participants
// remain visible.
func ResolveParticipants(invites []models.QuoteInvite, bids []models.Bid) []Participant {
	bidsByKey := map[string]*models.Bid{}
	for i := range bids {
		bid := &bids[i]
		if bid.CounterForChangeRequestID != nil {
			continue
		}
		key := participantKey(&bid.LogisticsPartnerID, bid.BranchOrgID, uuid.Nil)
		bidsByKey[key] = bid
	}

	seen := map[string]bool{}
	participants := make([]Participant, 0, len(invites))
	for _, invite := range invites {
		key := participantKey(invite.LogisticsPartnerID, invite.BranchOrgID, invite.ID)
		if seen[key] {
			continue
		}
		seen[key] = true

		p := Participant{
			Key:         key,
			PartnerID:   invite.LogisticsPartnerID,
			BranchOrgID: invite.BranchOrgID,
			InviteID:    invite.ID,
			Identity:    normalizeIdentity(invite),
		}
		if bid, ok := bidsByKey[key]; ok {
			status := bid.Status
			p.HasBid = true
			bidID := bid.ID
			p.BidID = &bidID
			p.BidStatus = &status
			p.BidAmount = bid.Amount
		}
		participants = append(participants, p)
	}

	// bids without a matching invite still show up as participants
	for key, bid := range bidsByKey {
		if seen[key] {
			continue
		}
		seen[key] = true
		status := bid.Status
		bidID := bid.ID
		partnerID := bid.LogisticsPartnerID
		p := Participant{
			Key:         key,
			PartnerID:   &partnerID,
			BranchOrgID: bid.BranchOrgID,
			HasBid:      true,
			BidID:       &bidID,
			BidStatus:   &status,
			BidAmount:   bid.Amount,
			Identity:    identityFromBid(bid),
		}
		participants = append(participants, p)
	}

	if anyAccepted(participants) {
		accepted := participants[:0]
		for _, p := range participants {
			if p.BidStatus != nil && *p.BidStatus == enums.BidStatusAccepted {
				accepted = append(accepted, p)
			}
		}
		participants = accepted
	}

	sort.SliceStable(participants, func(i, j int) bool {
		if participants[i].HasBid != participants[j].HasBid {
			return participants[i].HasBid
		}
		return strings.ToLower(participants[i].DisplayName()) < strings.ToLower(participants[j].DisplayName())
	})
	return participants
}

func anyAccepted(participants []Participant) bool {
	for _, p := range participants {
		if p.BidStatus != nil && *p.BidStatus == enums.BidStatusAccepted {
			return true
		}
	}
	return false
}

// participantKey prefers the (partner, branch) pair and falls back to the
// invite id when the partner is not yet registered.
func participantKey(partnerID, branchID *uuid.UUID, inviteID uuid.UUID) string {
	if partnerID == nil {
		return "invite:" + inviteID.String()
	}
	key := partnerID.String()
	if branchID != nil {
		key += ":" + branchID.String()
	}
	return key
}

func normalizeIdentity(invite models.QuoteInvite) Identity {
	identity := Identity{
		BranchName: invite.BranchName,
		BrandColor: invite.BrandColor,
		LogoURL:    invite.LogoURL,
	}
	if invite.PartnerName != nil {
		identity.CompanyName = *invite.PartnerName
	}
	if invite.Abbreviation != nil && *invite.Abbreviation != "" {
		identity.Abbreviation = strings.ToUpper(*invite.Abbreviation)
	} else {
		identity.Abbreviation = Abbreviate(fallbackName(identity))
	}
	return identity
}

func identityFromBid(bid *models.Bid) Identity {
	identity := Identity{}
	if bid.Partner != nil {
		identity.CompanyName = bid.Partner.Name
		identity.BrandColor = bid.Partner.BrandColor
		identity.LogoURL = bid.Partner.LogoURL
		if bid.Partner.Abbreviation != nil && *bid.Partner.Abbreviation != "" {
			identity.Abbreviation = strings.ToUpper(*bid.Partner.Abbreviation)
		}
	}
	if bid.Branch != nil {
		name := bid.Branch.Name
		identity.BranchName = &name
		if identity.LogoURL == nil {
			identity.LogoURL = bid.Branch.LogoURL
		}
	}
	if identity.Abbreviation == "" {
		identity.Abbreviation = Abbreviate(fallbackName(identity))
	}
	return identity
}

func fallbackName(identity Identity) string {
	if identity.CompanyName != "" {
		return identity.CompanyName
	}
	if identity.BranchName != nil {
		return *identity.BranchName
	}
	return ""
}

// Abbreviate derives up to three uppercase initials from a display name.
func Abbreviate(name string) string {
	var initials []rune
	for _, field := range strings.Fields(name) {
		for _, r := range field {
			initials = append(initials, r)
			break
		}
		if len(initials) == 3 {
			break
		}
	}
	return strings.ToUpper(string(initials))
}
