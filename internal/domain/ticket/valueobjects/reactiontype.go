package valueobjects

import "fmt"

// ReactionType is the marker a user can toggle on a message. A repeated
// identical (message, user, type) reaction removes the existing one.
type ReactionType string

const (
	ReactionHelpful  ReactionType = "HELPFUL"
	ReactionThanks   ReactionType = "THANKS"
	ReactionAgree    ReactionType = "AGREE"
	ReactionResolved ReactionType = "RESOLVED"
)

var validReactionTypes = map[ReactionType]bool{
	ReactionHelpful:  true,
	ReactionThanks:   true,
	ReactionAgree:    true,
	ReactionResolved: true,
}

func (rt ReactionType) String() string {
	return string(rt)
}

func (rt ReactionType) IsValid() bool {
	return validReactionTypes[rt]
}

func NewReactionType(s string) (ReactionType, error) {
	rt := ReactionType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid reaction type: %s", s)
	}
	return rt, nil
}
