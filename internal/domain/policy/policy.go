// Package policy contains the pure access-control rules of the system.
// The functions here perform in-memory set-membership checks only; all
// record loading happens in the usecase layer before a decision is asked for.
package policy

import "github.com/google/uuid"

// CanViewUser decides whether the requester may read the target account's
// profile. Access is granted when any single rule holds:
//   - self-access: requester and target are the same account
//   - creator rule: the target belongs to an organisation the requester created
//   - peer rule: requester and target share at least one organisation membership
//
// Rules are an unprioritized logical OR; everything else is a denial.
func CanViewUser(requesterID, targetID uuid.UUID, requesterOrgIDs, targetOrgIDs, requesterCreatedOrgIDs []uuid.UUID) bool {
	if requesterID == targetID {
		return true
	}

	targetOrgs := toSet(targetOrgIDs)

	for _, orgID := range requesterCreatedOrgIDs {
		if _, ok := targetOrgs[orgID]; ok {
			return true
		}
	}

	for _, orgID := range requesterOrgIDs {
		if _, ok := targetOrgs[orgID]; ok {
			return true
		}
	}

	return false
}

// CanViewOrganisation decides whether the requester may read an
// organisation's record. Membership is the only grant: creatorship alone is
// insufficient, so a creator who never joined their organisation is denied.
func CanViewOrganisation(orgID uuid.UUID, requesterOrgIDs []uuid.UUID) bool {
	for _, id := range requesterOrgIDs {
		if id == orgID {
			return true
		}
	}

	return false
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
