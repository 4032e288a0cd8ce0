package models

// ChangeKind classifies what a PATCH is trying to do to a review or comment.
type ChangeKind int

const (
	ChangeVote ChangeKind = iota
	ChangeContent
)

// AuthorizeChange applies the ownership rules shared by reviews and comments:
// owners may edit their own content but never vote on it, everyone else may
// vote but never edit.
func AuthorizeChange(actingUser, owner string, kind ChangeKind) *APIError {
	switch kind {
	case ChangeVote:
		if actingUser == owner {
			return forbidden("Voting on your own content is not allowed")
		}
	case ChangeContent:
		if actingUser != owner {
			return forbidden("Only the owner can edit this content")
		}
	}
	return nil
}
